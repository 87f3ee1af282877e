package cryptography

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gsutil-mirrors/rsa/internal/domain/crypto"
	"github.com/gsutil-mirrors/rsa/internal/pkg/logger"
)

// keyGenerator implements crypto.KeyGenerator.
type keyGenerator struct {
	primeGenerator crypto.PrimeGenerator
	logger         logger.Logger
}

// NewKeyGenerator creates and returns a new instance of keyGenerator.
func NewKeyGenerator(primeGenerator crypto.PrimeGenerator, logger logger.Logger) (crypto.KeyGenerator, error) {
	if primeGenerator == nil {
		return nil, fmt.Errorf("prime generator cannot be nil")
	}
	return &keyGenerator{
		primeGenerator: primeGenerator,
		logger:         logger,
	}, nil
}

// GenerateKeyPair derives an RSA key pair with a modulus of bits or bits-1
// bits. Prime pairs that collide or whose totient shares a factor with the
// public exponent are discarded and regenerated; those retries are internal
// and never surface as errors.
func (g *keyGenerator) GenerateKeyPair(ctx context.Context, bits int) (*crypto.PublicKey, *crypto.PrivateKey, error) {
	if bits < 16 {
		return nil, nil, fmt.Errorf("%w: key size %d bits is too small", crypto.ErrInvalidArgument, bits)
	}

	e := big.NewInt(crypto.DefaultPublicExponent)

	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, fmt.Errorf("key generation aborted: %w", err)
		}

		p, err := g.primeGenerator.GeneratePrime(ctx, bits/2)
		if err != nil {
			return nil, nil, err
		}
		q, err := g.primeGenerator.GeneratePrime(ctx, bits/2)
		if err != nil {
			return nil, nil, err
		}

		if p.Cmp(q) == 0 {
			continue
		}

		pMinusOne := new(big.Int).Sub(p, one)
		qMinusOne := new(big.Int).Sub(q, one)

		// e must be invertible modulo (p-1)(q-1). Rare for e = 65537, but it
		// happens and must trigger a fresh prime pair.
		if GCD(e, pMinusOne).Cmp(one) != 0 || GCD(e, qMinusOne).Cmp(one) != 0 {
			g.logger.Warn("Public exponent shares a factor with the totient, regenerating primes")
			continue
		}

		phi := new(big.Int).Mul(pMinusOne, qMinusOne)
		d, err := Inverse(e, phi)
		if err != nil {
			return nil, nil, err
		}

		coef, err := Inverse(q, p)
		if err != nil {
			return nil, nil, err
		}

		n := new(big.Int).Mul(p, q)

		publicKey := &crypto.PublicKey{
			N: n,
			E: new(big.Int).Set(e),
		}
		privateKey := &crypto.PrivateKey{
			N:    n,
			E:    new(big.Int).Set(e),
			D:    d,
			P:    p,
			Q:    q,
			Exp1: new(big.Int).Mod(d, pMinusOne),
			Exp2: new(big.Int).Mod(d, qMinusOne),
			Coef: coef,
		}

		g.logger.Info("Generated RSA key pair with ", n.BitLen(), "-bit modulus")
		return publicKey, privateKey, nil
	}
}
