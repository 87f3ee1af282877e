package crypto

import (
	"context"
	"math/big"
)

// RandomSource supplies cryptographically secure random data. Implementations
// may block while the underlying entropy pool fills; that blocking propagates
// synchronously to the caller.
type RandomSource interface {
	// ReadBytes returns n freshly and independently drawn random bytes.
	ReadBytes(n int) ([]byte, error)

	// Below returns an integer uniformly distributed in [0, max], obtained
	// by rejection sampling over byte-aligned draws.
	Below(max *big.Int) (*big.Int, error)
}

// HashProvider computes message digests for named algorithms.
type HashProvider interface {
	// Digest computes the digest of message using the named algorithm.
	// Supported names are MD5, SHA-1, SHA-256, SHA-384 and SHA-512.
	Digest(algorithm string, message []byte) ([]byte, error)
}

// PrimeGenerator produces probable primes of a requested bit length.
type PrimeGenerator interface {
	// GeneratePrime returns an integer of exactly bits bits that passed the
	// probabilistic primality test. The search retries indefinitely until a
	// candidate is accepted or ctx is cancelled.
	GeneratePrime(ctx context.Context, bits int) (*big.Int, error)
}

// KeyGenerator derives RSA key pairs satisfying the algebraic relations
// documented on PrivateKey.
type KeyGenerator interface {
	// GenerateKeyPair generates two primes of bits/2 bits each and derives a
	// key pair from them. The modulus bit length is bits or bits-1. The
	// search honors ctx cancellation between candidates.
	GenerateKeyPair(ctx context.Context, bits int) (*PublicKey, *PrivateKey, error)
}

// PKCS1Processor implements PKCS#1 v1.5 message encryption and signatures.
// Every operation is a pure function of its inputs and the injected
// providers; processors hold no state between calls and may be used
// concurrently.
type PKCS1Processor interface {
	// Encrypt encrypts message with the type-2 (random nonzero padding)
	// encoding. The message may be at most ByteSize(n)-11 bytes long;
	// longer messages fail with ErrMessageTooLong. The ciphertext is
	// exactly ByteSize(n) bytes.
	Encrypt(message []byte, publicKey *PublicKey) ([]byte, error)

	// Decrypt reverses Encrypt using CRT-accelerated private-key
	// exponentiation. Any structural defect yields the generic
	// ErrDecryption.
	Decrypt(ciphertext []byte, privateKey *PrivateKey) ([]byte, error)

	// Sign hashes message with the named algorithm, wraps the digest in its
	// DigestInfo prefix and signs it with the type-1 (0xFF padding)
	// encoding. Signing is deterministic: equal inputs yield equal
	// signatures.
	Sign(message []byte, privateKey *PrivateKey, hashAlgorithm string) ([]byte, error)

	// Verify checks signature against message. The hash algorithm is
	// recovered from the DigestInfo embedded in the signature. Success is
	// the absence of an error; any defect yields the generic
	// ErrVerification.
	Verify(message, signature []byte, publicKey *PublicKey) error
}
