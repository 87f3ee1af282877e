//go:build unit
// +build unit

package cryptography

import (
	"math/big"
	"testing"

	"github.com/gsutil-mirrors/rsa/internal/domain/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBytesToInt(t *testing.T) {
	assert.Equal(t, int64(8405007), BytesToInt([]byte{128, 64, 15}).Int64())
	assert.Equal(t, int64(0), BytesToInt(nil).Int64())
	assert.Equal(t, int64(1), BytesToInt([]byte{0, 0, 0, 1}).Int64())
}

func TestIntToBytesMinimal(t *testing.T) {
	encoded, err := IntToBytes(big.NewInt(123456789), 0)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x07, 0x5b, 0xcd, 0x15}, encoded)

	roundtrip := BytesToInt(encoded)
	assert.Equal(t, int64(123456789), roundtrip.Int64())
}

func TestIntToBytesBlockPadding(t *testing.T) {
	encoded, err := IntToBytes(big.NewInt(123456789), 6)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x00, 0x00, 0x07, 0x5b, 0xcd, 0x15}, encoded)

	encoded, err = IntToBytes(big.NewInt(0), 4)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0}, encoded)
}

func TestIntToBytesOverflow(t *testing.T) {
	_, err := IntToBytes(big.NewInt(123456789), 3)
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrOverflow)
}

func TestIntToBytesNegative(t *testing.T) {
	_, err := IntToBytes(big.NewInt(-1), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrInvalidArgument)
}

func TestBitSize(t *testing.T) {
	tests := []struct {
		number *big.Int
		want   int
	}{
		{big.NewInt(0), 1},
		{big.NewInt(1023), 10},
		{big.NewInt(1024), 11},
		{big.NewInt(1025), 11},
		{new(big.Int).Lsh(one, 1024), 1025},
		{new(big.Int).Sub(new(big.Int).Lsh(one, 1024), one), 1024},
	}

	for _, tt := range tests {
		got, err := BitSize(tt.number)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := BitSize(big.NewInt(-5))
	assert.ErrorIs(t, err, crypto.ErrInvalidArgument)
}

func TestByteSize(t *testing.T) {
	size, err := ByteSize(new(big.Int).Lsh(one, 1023))
	require.NoError(t, err)
	assert.Equal(t, 128, size)

	size, err = ByteSize(new(big.Int).Sub(new(big.Int).Lsh(one, 1024), one))
	require.NoError(t, err)
	assert.Equal(t, 128, size)

	size, err = ByteSize(new(big.Int).Lsh(one, 1024))
	require.NoError(t, err)
	assert.Equal(t, 129, size)
}
