// Package keys defines the domain entities and service contracts for
// managing RSA key pairs: metadata records, queries over them, and the
// services that generate, store, list and apply keys.
package keys
