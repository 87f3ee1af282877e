//go:build unit
// +build unit

package cryptography

import (
	"context"
	"math/big"
	"testing"

	"github.com/gsutil-mirrors/rsa/internal/domain/crypto"
	"github.com/gsutil-mirrors/rsa/internal/infrastructure/entropy"
	"github.com/gsutil-mirrors/rsa/internal/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupKeyGenerator(t *testing.T) crypto.KeyGenerator {
	t.Helper()

	log := testutil.SetupTestLogger(t)
	primeGenerator, err := NewPrimeGenerator(entropy.NewRandomSource(), log)
	require.NoError(t, err)

	keyGenerator, err := NewKeyGenerator(primeGenerator, log)
	require.NoError(t, err)
	return keyGenerator
}

func TestGenerateKeyPairInvariants(t *testing.T) {
	generator := setupKeyGenerator(t)

	const bits = 256
	for i := 0; i < 3; i++ {
		pub, priv, err := generator.GenerateKeyPair(context.Background(), bits)
		require.NoError(t, err)

		assert.NotEqual(t, 0, priv.P.Cmp(priv.Q), "primes must differ")
		assert.Equal(t, 0, new(big.Int).Mul(priv.P, priv.Q).Cmp(pub.N))
		assert.Contains(t, []int{bits, bits - 1}, pub.N.BitLen())
		assert.Equal(t, int64(crypto.DefaultPublicExponent), pub.E.Int64())

		require.NoError(t, priv.Validate())
	}
}

func TestGenerateKeyPairExpCoefRelations(t *testing.T) {
	generator := setupKeyGenerator(t)

	_, priv, err := generator.GenerateKeyPair(context.Background(), 256)
	require.NoError(t, err)

	pMinusOne := new(big.Int).Sub(priv.P, big.NewInt(1))
	qMinusOne := new(big.Int).Sub(priv.Q, big.NewInt(1))

	assert.Equal(t, int64(1), GCD(priv.Exp1, pMinusOne).Int64())
	assert.Equal(t, int64(1), GCD(priv.Exp2, qMinusOne).Int64())

	assert.Equal(t, 0, new(big.Int).Mod(priv.D, pMinusOne).Cmp(priv.Exp1))
	assert.Equal(t, 0, new(big.Int).Mod(priv.D, qMinusOne).Cmp(priv.Exp2))

	// exp1 and exp2 have the same parity since p-1 and q-1 are both even
	assert.Equal(t, priv.Exp1.Bit(0), priv.Exp2.Bit(0))
}

func TestGenerateKeyPairTooSmall(t *testing.T) {
	generator := setupKeyGenerator(t)

	_, _, err := generator.GenerateKeyPair(context.Background(), 8)
	require.Error(t, err)
	assert.ErrorIs(t, err, crypto.ErrInvalidArgument)
}

func TestGenerateKeyPairHonorsCancellation(t *testing.T) {
	generator := setupKeyGenerator(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := generator.GenerateKeyPair(ctx, 256)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
