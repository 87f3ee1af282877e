package cryptography

import (
	"fmt"
	"math/big"

	"github.com/gsutil-mirrors/rsa/internal/domain/crypto"
)

// BytesToInt interprets data as a big-endian unsigned integer.
func BytesToInt(data []byte) *big.Int {
	return new(big.Int).SetBytes(data)
}

// IntToBytes returns the minimal big-endian encoding of number. When
// blockSize is positive the result is left-padded with zero bytes to exactly
// blockSize bytes; it fails with ErrOverflow when the number needs more
// bytes than that.
func IntToBytes(number *big.Int, blockSize int) ([]byte, error) {
	if number.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative number %s", crypto.ErrInvalidArgument, number)
	}

	raw := number.Bytes()
	if blockSize <= 0 {
		return raw, nil
	}

	needed, err := ByteSize(number)
	if err != nil {
		return nil, err
	}
	if needed > blockSize {
		return nil, fmt.Errorf("%w: needed %d bytes for number, but block size is %d",
			crypto.ErrOverflow, needed, blockSize)
	}

	block := make([]byte, blockSize)
	copy(block[blockSize-len(raw):], raw)
	return block, nil
}

// BitSize returns the number of bits required to hold number. Zero needs a
// single bit. Negative input fails with ErrInvalidArgument.
func BitSize(number *big.Int) (int, error) {
	if number.Sign() < 0 {
		return 0, fmt.Errorf("%w: negative number %s", crypto.ErrInvalidArgument, number)
	}
	if number.Sign() == 0 {
		return 1, nil
	}
	return number.BitLen(), nil
}

// ByteSize returns the number of bytes required to hold number, rounded up.
func ByteSize(number *big.Int) (int, error) {
	bits, err := BitSize(number)
	if err != nil {
		return 0, err
	}
	return (bits + 7) / 8, nil
}
