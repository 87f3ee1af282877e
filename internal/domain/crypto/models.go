package crypto

import (
	"fmt"
	"math/big"
)

// PublicKey is the public half of an RSA key pair. It is immutable after
// creation and safe for concurrent read-only use.
type PublicKey struct {
	// N is the modulus, the product of two distinct primes.
	N *big.Int
	// E is the public exponent, 65537 unless configured otherwise.
	E *big.Int
}

// PrivateKey is the private half of an RSA key pair. The CRT fields Exp1,
// Exp2 and Coef exist purely to speed up private-key exponentiation; they
// are fully determined by D, P and Q. Immutable after creation and safe for
// concurrent read-only use.
type PrivateKey struct {
	N *big.Int
	E *big.Int
	// D is the private exponent, the inverse of E modulo (P-1)(Q-1).
	D *big.Int
	P *big.Int
	Q *big.Int
	// Exp1 = D mod (P-1)
	Exp1 *big.Int
	// Exp2 = D mod (Q-1)
	Exp2 *big.Int
	// Coef = Q^-1 mod P
	Coef *big.Int
}

// Public returns the public half of the key pair.
func (k *PrivateKey) Public() *PublicKey {
	return &PublicKey{N: k.N, E: k.E}
}

// Validate checks the algebraic relations that must hold for the lifetime of
// the key: N = P*Q, P != Q, E*D = 1 mod lcm(P-1, Q-1), and the CRT fields
// matching their definitions.
func (k *PrivateKey) Validate() error {
	one := big.NewInt(1)

	if k.P.Cmp(k.Q) == 0 {
		return fmt.Errorf("prime factors are equal")
	}

	n := new(big.Int).Mul(k.P, k.Q)
	if n.Cmp(k.N) != 0 {
		return fmt.Errorf("modulus is not the product of the prime factors")
	}

	pMinusOne := new(big.Int).Sub(k.P, one)
	qMinusOne := new(big.Int).Sub(k.Q, one)

	// lcm(p-1, q-1) = (p-1)(q-1) / gcd(p-1, q-1)
	lcm := new(big.Int).Mul(pMinusOne, qMinusOne)
	lcm.Div(lcm, new(big.Int).GCD(nil, nil, pMinusOne, qMinusOne))

	ed := new(big.Int).Mul(k.E, k.D)
	if ed.Mod(ed, lcm).Cmp(one) != 0 {
		return fmt.Errorf("public and private exponents are not inverses")
	}

	if new(big.Int).Mod(k.D, pMinusOne).Cmp(k.Exp1) != 0 {
		return fmt.Errorf("exp1 does not equal d mod (p-1)")
	}
	if new(big.Int).Mod(k.D, qMinusOne).Cmp(k.Exp2) != 0 {
		return fmt.Errorf("exp2 does not equal d mod (q-1)")
	}

	qCoef := new(big.Int).Mul(k.Q, k.Coef)
	if qCoef.Mod(qCoef, k.P).Cmp(one) != 0 {
		return fmt.Errorf("coef is not the inverse of q mod p")
	}

	return nil
}
