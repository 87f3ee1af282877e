package cryptography

import (
	"fmt"
	"math/big"

	"github.com/gsutil-mirrors/rsa/internal/domain/crypto"
)

var one = big.NewInt(1)

// GCD returns the greatest common divisor of p and q using the iterative
// Euclidean algorithm. Both operands must be nonnegative.
func GCD(p, q *big.Int) *big.Int {
	a := new(big.Int).Set(p)
	b := new(big.Int).Set(q)
	for b.Sign() != 0 {
		if a.Cmp(b) < 0 {
			a, b = b, a
		}
		a.Mod(a, b)
		a, b = b, a
	}
	return a
}

// ExtendedGCD returns (r, i, j) such that r = gcd(a, b) = i*a + j*b. The
// cofactors i and j are normalized into the nonnegative range modulo b and a
// respectively.
func ExtendedGCD(a, b *big.Int) (r, i, j *big.Int) {
	x, lastX := big.NewInt(0), big.NewInt(1)
	y, lastY := big.NewInt(1), big.NewInt(0)

	origA := new(big.Int).Set(a)
	origB := new(big.Int).Set(b)
	remA := new(big.Int).Set(a)
	remB := new(big.Int).Set(b)

	for remB.Sign() != 0 {
		q := new(big.Int).Div(remA, remB)
		remA, remB = remB, new(big.Int).Sub(remA, new(big.Int).Mul(q, remB))
		x, lastX = new(big.Int).Sub(lastX, new(big.Int).Mul(q, x)), x
		y, lastY = new(big.Int).Sub(lastY, new(big.Int).Mul(q, y)), y
	}

	if lastX.Sign() < 0 {
		lastX.Add(lastX, origB)
	}
	if lastY.Sign() < 0 {
		lastY.Add(lastY, origA)
	}

	return remA, lastX, lastY
}

// Inverse returns x^-1 mod n. It fails with ErrNotCoprime when gcd(x, n) != 1.
func Inverse(x, n *big.Int) (*big.Int, error) {
	divider, inv, _ := ExtendedGCD(x, n)
	if divider.Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: %s and %s", crypto.ErrNotCoprime, x, n)
	}
	return inv, nil
}

// CRT applies the Chinese Remainder Theorem: given pairwise coprime moduli
// m_i and residues a_i it returns the unique x in [0, prod(m_i)) with
// x = a_i (mod m_i) for every i.
func CRT(residues, moduli []*big.Int) (*big.Int, error) {
	if len(residues) != len(moduli) {
		return nil, fmt.Errorf("%w: %d residues for %d moduli",
			crypto.ErrInvalidArgument, len(residues), len(moduli))
	}

	m := big.NewInt(1)
	for _, modulus := range moduli {
		m.Mul(m, modulus)
	}

	x := new(big.Int)
	for idx, modulus := range moduli {
		mi := new(big.Int).Div(m, modulus)
		inv, err := Inverse(mi, modulus)
		if err != nil {
			return nil, err
		}

		term := new(big.Int).Mul(residues[idx], mi)
		term.Mul(term, inv)
		x.Add(x, term)
	}

	return x.Mod(x, m), nil
}
