//go:build unit
// +build unit

package entropy

import (
	"math/big"
	"testing"

	"github.com/gsutil-mirrors/rsa/internal/domain/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadBytesLength(t *testing.T) {
	source := NewRandomSource()

	for _, n := range []int{0, 1, 16, 127} {
		buf, err := source.ReadBytes(n)
		require.NoError(t, err)
		assert.Len(t, buf, n)
	}
}

func TestReadBytesNegative(t *testing.T) {
	source := NewRandomSource()

	_, err := source.ReadBytes(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrInvalidArgument)
}

func TestBelowStaysInRange(t *testing.T) {
	source := NewRandomSource()
	max := big.NewInt(1000)

	for i := 0; i < 200; i++ {
		value, err := source.Below(max)
		require.NoError(t, err)
		assert.True(t, value.Sign() >= 0)
		assert.True(t, value.Cmp(max) <= 0)
	}
}

func TestBelowZero(t *testing.T) {
	source := NewRandomSource()

	value, err := source.Below(big.NewInt(0))
	require.NoError(t, err)
	assert.Equal(t, int64(0), value.Int64())
}

func TestBelowNegative(t *testing.T) {
	source := NewRandomSource()

	_, err := source.Below(big.NewInt(-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrInvalidArgument)
}
