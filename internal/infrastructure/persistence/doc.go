// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store key metadata, with validation
// and logging for traceability.
package persistence
