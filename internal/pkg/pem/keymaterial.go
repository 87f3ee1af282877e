package pem

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/gsutil-mirrors/rsa/internal/domain/crypto"
)

// Key material wire form: a fixed-order sequence of integers, each encoded
// as a 4-byte big-endian length followed by the integer's minimal big-endian
// bytes. Public keys carry (n, e); private keys carry
// (n, e, d, p, q, exp1, exp2, coef).

// MarshalPublicKey encodes the public key tuple.
func MarshalPublicKey(key *crypto.PublicKey) []byte {
	return marshalInts(key.N, key.E)
}

// UnmarshalPublicKey decodes a public key tuple.
func UnmarshalPublicKey(material []byte) (*crypto.PublicKey, error) {
	values, err := unmarshalInts(material, 2)
	if err != nil {
		return nil, fmt.Errorf("malformed public key material: %w", err)
	}
	return &crypto.PublicKey{N: values[0], E: values[1]}, nil
}

// MarshalPrivateKey encodes the private key tuple including the CRT fields.
func MarshalPrivateKey(key *crypto.PrivateKey) []byte {
	return marshalInts(key.N, key.E, key.D, key.P, key.Q, key.Exp1, key.Exp2, key.Coef)
}

// UnmarshalPrivateKey decodes a private key tuple.
func UnmarshalPrivateKey(material []byte) (*crypto.PrivateKey, error) {
	values, err := unmarshalInts(material, 8)
	if err != nil {
		return nil, fmt.Errorf("malformed private key material: %w", err)
	}
	return &crypto.PrivateKey{
		N:    values[0],
		E:    values[1],
		D:    values[2],
		P:    values[3],
		Q:    values[4],
		Exp1: values[5],
		Exp2: values[6],
		Coef: values[7],
	}, nil
}

func marshalInts(values ...*big.Int) []byte {
	var out []byte
	for _, value := range values {
		raw := value.Bytes()
		out = binary.BigEndian.AppendUint32(out, uint32(len(raw)))
		out = append(out, raw...)
	}
	return out
}

func unmarshalInts(material []byte, count int) ([]*big.Int, error) {
	values := make([]*big.Int, 0, count)

	for len(material) > 0 {
		if len(material) < 4 {
			return nil, fmt.Errorf("truncated length prefix")
		}
		length := int(binary.BigEndian.Uint32(material))
		material = material[4:]

		if length > len(material) {
			return nil, fmt.Errorf("integer length %d exceeds remaining %d bytes", length, len(material))
		}
		values = append(values, new(big.Int).SetBytes(material[:length]))
		material = material[length:]
	}

	if len(values) != count {
		return nil, fmt.Errorf("expected %d integers, found %d", count, len(values))
	}
	return values, nil
}
