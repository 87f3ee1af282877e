package cryptography

import (
	"bytes"
	"fmt"
	"math/big"

	"github.com/gsutil-mirrors/rsa/internal/domain/crypto"
	"github.com/gsutil-mirrors/rsa/internal/pkg/logger"
)

// Block type markers for the PKCS#1 v1.5 encoding.
const (
	blockTypeSignature  = 0x01
	blockTypeEncryption = 0x02
)

// encryptionOverhead is the minimum number of bytes the type-2 encoding
// adds: two header bytes, at least eight padding bytes and the separator.
const encryptionOverhead = 11

// digestInfoPrefixes holds the DER-encoded DigestInfo header identifying
// each hash algorithm. The raw digest follows the prefix directly.
var digestInfoPrefixes = map[string][]byte{
	crypto.HashMD5: {
		0x30, 0x20, 0x30, 0x0c, 0x06, 0x08, 0x2a, 0x86, 0x48, 0x86,
		0xf7, 0x0d, 0x02, 0x05, 0x05, 0x00, 0x04, 0x10,
	},
	crypto.HashSHA1: {
		0x30, 0x21, 0x30, 0x09, 0x06, 0x05, 0x2b, 0x0e, 0x03, 0x02,
		0x1a, 0x05, 0x00, 0x04, 0x14,
	},
	crypto.HashSHA256: {
		0x30, 0x31, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01,
		0x65, 0x03, 0x04, 0x02, 0x01, 0x05, 0x00, 0x04, 0x20,
	},
	crypto.HashSHA384: {
		0x30, 0x41, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01,
		0x65, 0x03, 0x04, 0x02, 0x02, 0x05, 0x00, 0x04, 0x30,
	},
	crypto.HashSHA512: {
		0x30, 0x51, 0x30, 0x0d, 0x06, 0x09, 0x60, 0x86, 0x48, 0x01,
		0x65, 0x03, 0x04, 0x02, 0x03, 0x05, 0x00, 0x04, 0x40,
	},
}

// pkcs1Processor implements crypto.PKCS1Processor. It holds no state between
// calls; key material is passed into every operation.
type pkcs1Processor struct {
	randomSource crypto.RandomSource
	hashProvider crypto.HashProvider
	logger       logger.Logger
}

// NewPKCS1Processor creates and returns a new instance of pkcs1Processor.
func NewPKCS1Processor(randomSource crypto.RandomSource, hashProvider crypto.HashProvider, logger logger.Logger) (crypto.PKCS1Processor, error) {
	if randomSource == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	if hashProvider == nil {
		return nil, fmt.Errorf("hash provider cannot be nil")
	}
	return &pkcs1Processor{
		randomSource: randomSource,
		hashProvider: hashProvider,
		logger:       logger,
	}, nil
}

// Encrypt builds the block 0x00 || 0x02 || PS || 0x00 || message with PS
// drawn fresh from the random source, raises it to the public exponent and
// returns the result encoded to exactly ByteSize(n) bytes.
func (p *pkcs1Processor) Encrypt(message []byte, publicKey *crypto.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, fmt.Errorf("%w: public key cannot be nil", crypto.ErrInvalidArgument)
	}

	k, err := ByteSize(publicKey.N)
	if err != nil {
		return nil, err
	}
	if len(message) > k-encryptionOverhead {
		return nil, fmt.Errorf("%w: %d bytes exceed the %d-byte maximum for this modulus",
			crypto.ErrMessageTooLong, len(message), k-encryptionOverhead)
	}

	padding, err := p.nonzeroPadding(k - len(message) - 3)
	if err != nil {
		return nil, err
	}

	block := make([]byte, 0, k)
	block = append(block, 0x00, blockTypeEncryption)
	block = append(block, padding...)
	block = append(block, 0x00)
	block = append(block, message...)

	m := BytesToInt(block)
	c := new(big.Int).Exp(m, publicKey.E, publicKey.N)

	return IntToBytes(c, k)
}

// Decrypt undoes Encrypt via CRT-accelerated exponentiation. Every
// structural defect collapses into the same ErrDecryption so callers cannot
// be used as a padding oracle.
func (p *pkcs1Processor) Decrypt(ciphertext []byte, privateKey *crypto.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("%w: private key cannot be nil", crypto.ErrInvalidArgument)
	}

	k, err := ByteSize(privateKey.N)
	if err != nil {
		return nil, err
	}
	if len(ciphertext) != k {
		return nil, crypto.ErrDecryption
	}

	c := BytesToInt(ciphertext)
	m := exponentiateCRT(c, privateKey)

	block, err := IntToBytes(m, k)
	if err != nil {
		return nil, crypto.ErrDecryption
	}

	if block[0] != 0x00 || block[1] != blockTypeEncryption {
		return nil, crypto.ErrDecryption
	}

	separator := bytes.IndexByte(block[2:], 0x00)
	if separator < 0 {
		return nil, crypto.ErrDecryption
	}

	return block[2+separator+1:], nil
}

// Sign wraps the message digest in its DigestInfo prefix, builds the block
// 0x00 || 0x01 || 0xFF..0xFF || 0x00 || digestInfo and exponentiates it with
// the private key. The fixed padding makes signing deterministic.
func (p *pkcs1Processor) Sign(message []byte, privateKey *crypto.PrivateKey, hashAlgorithm string) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("%w: private key cannot be nil", crypto.ErrInvalidArgument)
	}

	prefix, ok := digestInfoPrefixes[hashAlgorithm]
	if !ok {
		return nil, fmt.Errorf("%w: unsupported hash algorithm %q", crypto.ErrInvalidArgument, hashAlgorithm)
	}

	digest, err := p.hashProvider.Digest(hashAlgorithm, message)
	if err != nil {
		return nil, err
	}

	digestInfo := make([]byte, 0, len(prefix)+len(digest))
	digestInfo = append(digestInfo, prefix...)
	digestInfo = append(digestInfo, digest...)

	k, err := ByteSize(privateKey.N)
	if err != nil {
		return nil, err
	}
	if k < len(digestInfo)+encryptionOverhead {
		return nil, fmt.Errorf("%w: %s digest needs a modulus of at least %d bytes, have %d",
			crypto.ErrMessageTooLong, hashAlgorithm, len(digestInfo)+encryptionOverhead, k)
	}

	block := make([]byte, 0, k)
	block = append(block, 0x00, blockTypeSignature)
	for i := 0; i < k-len(digestInfo)-3; i++ {
		block = append(block, 0xff)
	}
	block = append(block, 0x00)
	block = append(block, digestInfo...)

	m := BytesToInt(block)
	s := exponentiateCRT(m, privateKey)

	return IntToBytes(s, k)
}

// Verify recovers the signed block with the public exponent, validates the
// 0x00 0x01 <0xFF-run> 0x00 <digestInfo> structure, identifies the hash
// algorithm from the DigestInfo prefix and compares digests. Every defect
// collapses into the same ErrVerification.
func (p *pkcs1Processor) Verify(message, signature []byte, publicKey *crypto.PublicKey) error {
	if publicKey == nil {
		return fmt.Errorf("%w: public key cannot be nil", crypto.ErrInvalidArgument)
	}

	k, err := ByteSize(publicKey.N)
	if err != nil {
		return err
	}
	if len(signature) != k {
		return crypto.ErrVerification
	}

	s := BytesToInt(signature)
	m := new(big.Int).Exp(s, publicKey.E, publicKey.N)

	block, err := IntToBytes(m, k)
	if err != nil {
		return crypto.ErrVerification
	}

	if block[0] != 0x00 || block[1] != blockTypeSignature {
		return crypto.ErrVerification
	}

	idx := 2
	for idx < len(block) && block[idx] == 0xff {
		idx++
	}
	if idx >= len(block) || block[idx] != 0x00 {
		return crypto.ErrVerification
	}
	digestInfo := block[idx+1:]

	for algorithm, prefix := range digestInfoPrefixes {
		if !bytes.HasPrefix(digestInfo, prefix) {
			continue
		}

		expected := digestInfo[len(prefix):]
		actual, digestErr := p.hashProvider.Digest(algorithm, message)
		if digestErr != nil {
			return crypto.ErrVerification
		}
		if !bytes.Equal(expected, actual) {
			return crypto.ErrVerification
		}
		return nil
	}

	// no known DigestInfo prefix matched
	return crypto.ErrVerification
}

// nonzeroPadding draws n padding bytes from the random source, redrawing any
// zero byte: the separator after the padding run must stay unambiguous.
func (p *pkcs1Processor) nonzeroPadding(n int) ([]byte, error) {
	padding := make([]byte, 0, n)

	for len(padding) < n {
		chunk, err := p.randomSource.ReadBytes(n - len(padding))
		if err != nil {
			return nil, err
		}
		for _, b := range chunk {
			if b != 0x00 {
				padding = append(padding, b)
			}
		}
	}
	return padding, nil
}

// exponentiateCRT computes c^d mod n through the Chinese Remainder Theorem:
// two half-size exponentiations modulo p and q recombined with the
// precomputed q^-1 mod p, roughly four times cheaper than the direct form.
func exponentiateCRT(c *big.Int, key *crypto.PrivateKey) *big.Int {
	m1 := new(big.Int).Exp(c, key.Exp1, key.P)
	m2 := new(big.Int).Exp(c, key.Exp2, key.Q)

	h := new(big.Int).Sub(m1, m2)
	h.Mul(h, key.Coef)
	h.Mod(h, key.P)

	m := new(big.Int).Mul(h, key.Q)
	return m.Add(m, m2)
}
