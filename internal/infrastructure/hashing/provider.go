// Package hashing provides the digest provider for the hash algorithms the
// signature operations accept.
package hashing

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"

	"github.com/gsutil-mirrors/rsa/internal/domain/crypto"
)

type hashProvider struct{}

// NewHashProvider returns a HashProvider supporting MD5, SHA-1, SHA-256,
// SHA-384 and SHA-512.
func NewHashProvider() crypto.HashProvider {
	return &hashProvider{}
}

// Digest computes the digest of message using the named algorithm.
func (p *hashProvider) Digest(algorithm string, message []byte) ([]byte, error) {
	var h hash.Hash

	switch algorithm {
	case crypto.HashMD5:
		h = md5.New()
	case crypto.HashSHA1:
		h = sha1.New()
	case crypto.HashSHA256:
		h = sha256.New()
	case crypto.HashSHA384:
		h = sha512.New384()
	case crypto.HashSHA512:
		h = sha512.New()
	default:
		return nil, fmt.Errorf("%w: unsupported hash algorithm %q", crypto.ErrInvalidArgument, algorithm)
	}

	h.Write(message)
	return h.Sum(nil), nil
}
