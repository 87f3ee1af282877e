// Package crypto defines the core contracts and key structures of the RSA
// engine: arbitrary-precision key material, the external randomness and
// hash-digest providers, and the PKCS#1 v1.5 encrypt/decrypt/sign/verify
// operations.
package crypto
