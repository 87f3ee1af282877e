// Package entropy provides the production randomness source backed by the
// operating system's CSPRNG.
package entropy

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"

	"github.com/gsutil-mirrors/rsa/internal/domain/crypto"
)

type cryptoRandSource struct{}

// NewRandomSource returns a RandomSource reading from crypto/rand.
func NewRandomSource() crypto.RandomSource {
	return &cryptoRandSource{}
}

// ReadBytes returns n bytes from the system CSPRNG.
func (s *cryptoRandSource) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative byte count %d", crypto.ErrInvalidArgument, n)
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}
	return buf, nil
}

// Below returns an integer uniformly distributed in [0, max] by rejection
// sampling: it draws just enough bytes to cover max's bit length, discards
// the excess high bits, and redraws until the value is in range.
func (s *cryptoRandSource) Below(max *big.Int) (*big.Int, error) {
	if max == nil || max.Sign() < 0 {
		return nil, fmt.Errorf("%w: upper bound must be nonnegative", crypto.ErrInvalidArgument)
	}
	if max.Sign() == 0 {
		return big.NewInt(0), nil
	}

	bits := max.BitLen()
	nbytes := (bits + 7) / 8
	shift := uint(nbytes*8 - bits)

	for {
		buf, err := s.ReadBytes(nbytes)
		if err != nil {
			return nil, err
		}

		value := new(big.Int).SetBytes(buf)
		value.Rsh(value, shift)
		if value.Cmp(max) <= 0 {
			return value, nil
		}
	}
}
