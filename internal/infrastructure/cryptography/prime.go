package cryptography

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gsutil-mirrors/rsa/internal/domain/crypto"
	"github.com/gsutil-mirrors/rsa/internal/pkg/logger"
)

// DefaultPrimalityTrials is the number of Jacobi-witness trials per prime
// candidate. Each trial only detects a composite Euler pseudo-prime with
// probability at least 1/2, so the effective error bound is weaker than the
// naive 2^-trials estimate. A stronger witness test (e.g. Miller-Rabin)
// would tighten the bound at the cost of changing accept/reject behavior.
const DefaultPrimalityTrials = 6

// primeGenerator implements crypto.PrimeGenerator with a Solovay-Strassen
// style probabilistic test over the Jacobi symbol.
type primeGenerator struct {
	randomSource crypto.RandomSource
	trials       int
	logger       logger.Logger
}

// NewPrimeGenerator creates and returns a new instance of primeGenerator.
func NewPrimeGenerator(randomSource crypto.RandomSource, logger logger.Logger) (crypto.PrimeGenerator, error) {
	if randomSource == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	return &primeGenerator{
		randomSource: randomSource,
		trials:       DefaultPrimalityTrials,
		logger:       logger,
	}, nil
}

// GeneratePrime returns an integer of exactly bits bits that passed the
// primality test. The top bit is forced to fix the bit length and the low
// bit is forced to guarantee oddness. The search retries indefinitely until
// ctx is cancelled.
func (g *primeGenerator) GeneratePrime(ctx context.Context, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: prime bit length %d", crypto.ErrInvalidArgument, bits)
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("prime search aborted: %w", err)
		}

		candidate, err := g.randomInt(bits)
		if err != nil {
			return nil, err
		}

		candidate.SetBit(candidate, bits-1, 1)
		candidate.SetBit(candidate, 0, 1)

		prime, err := g.isProbablyPrime(candidate)
		if err != nil {
			return nil, err
		}
		if prime {
			return candidate, nil
		}
	}
}

// randomInt draws a uniform integer of at most bits bits.
func (g *primeGenerator) randomInt(bits int) (*big.Int, error) {
	nbytes := (bits + 7) / 8

	buf, err := g.randomSource.ReadBytes(nbytes)
	if err != nil {
		return nil, err
	}

	value := new(big.Int).SetBytes(buf)
	return value.Rsh(value, uint(nbytes*8-bits)), nil
}

// isProbablyPrime runs the configured number of Jacobi-witness trials
// against the odd candidate n. A single failing witness proves
// compositeness; n is accepted only when every trial agrees.
func (g *primeGenerator) isProbablyPrime(n *big.Int) (bool, error) {
	nMinusOne := new(big.Int).Sub(n, one)

	for trial := 0; trial < g.trials; trial++ {
		witness, err := g.drawWitness(nMinusOne)
		if err != nil {
			return false, err
		}
		if jacobiWitness(witness, n) {
			return false, nil
		}
	}
	return true, nil
}

// drawWitness returns a uniform integer in [1, max].
func (g *primeGenerator) drawWitness(max *big.Int) (*big.Int, error) {
	for {
		witness, err := g.randomSource.Below(max)
		if err != nil {
			return nil, err
		}
		if witness.Sign() != 0 {
			return witness, nil
		}
	}
}

// jacobiWitness reports whether x proves the compositeness of n: it compares
// the Jacobi symbol (x/n), reduced modulo n, against x^((n-1)/2) mod n. A
// mismatch is impossible for prime n.
func jacobiWitness(x, n *big.Int) bool {
	j := new(big.Int).SetInt64(int64(jacobi(x, n)))
	j.Mod(j, n)

	exponent := new(big.Int).Sub(n, one)
	exponent.Rsh(exponent, 1)
	f := new(big.Int).Exp(x, exponent, n)

	return j.Cmp(f) != 0
}

// jacobi computes the Jacobi symbol (a/b) for nonnegative a and odd positive
// b, by iterative reduction with the quadratic reciprocity rules. The result
// is -1, 0 or 1.
func jacobi(a, b *big.Int) int {
	if a.Sign() == 0 {
		return 0
	}

	a = new(big.Int).Set(a)
	b = new(big.Int).Set(b)
	result := 1

	for a.Cmp(one) > 0 {
		if a.Bit(0) == 1 {
			// flip when (a-1)(b-1)/4 is odd
			t := new(big.Int).Sub(a, one)
			t.Mul(t, new(big.Int).Sub(b, one))
			t.Rsh(t, 2)
			if t.Bit(0) == 1 {
				result = -result
			}
			a, b = new(big.Int).Mod(b, a), a
		} else {
			// flip when (b*b-1)/8 is odd
			t := new(big.Int).Mul(b, b)
			t.Sub(t, one)
			t.Rsh(t, 3)
			if t.Bit(0) == 1 {
				result = -result
			}
			a.Rsh(a, 1)
		}
	}

	if a.Sign() == 0 {
		return 0
	}
	return result
}
