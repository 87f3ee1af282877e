package testutil

import (
	"fmt"
	"math/big"

	"github.com/gsutil-mirrors/rsa/internal/domain/crypto"
)

// ScriptedRandomSource replays a fixed byte script, wrapping around when the
// script is exhausted. It makes padding construction and prime-search paths
// reproducible in tests.
type ScriptedRandomSource struct {
	script []byte
	pos    int
}

// NewScriptedRandomSource creates a source replaying script.
func NewScriptedRandomSource(script ...byte) *ScriptedRandomSource {
	return &ScriptedRandomSource{script: script}
}

// ReadBytes returns the next n bytes of the script.
func (s *ScriptedRandomSource) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative byte count %d", crypto.ErrInvalidArgument, n)
	}
	if len(s.script) == 0 {
		return nil, fmt.Errorf("scripted random source has no script")
	}

	out := make([]byte, n)
	for i := range out {
		out[i] = s.script[s.pos]
		s.pos = (s.pos + 1) % len(s.script)
	}
	return out, nil
}

// Below returns an integer in [0, max] by rejection sampling over script
// bytes, mirroring the production source.
func (s *ScriptedRandomSource) Below(max *big.Int) (*big.Int, error) {
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
