//go:build unit
// +build unit

package validators

import (
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keySpec struct {
	Algorithm string
	KeySize   uint32 `validate:"keySizeValidation"`
}

func TestKeySizeValidation(t *testing.T) {
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("keySizeValidation", KeySizeValidation))

	tests := []struct {
		algorithm string
		keySize   uint32
		valid     bool
	}{
		{"RSA", 512, true},
		{"RSA", 1024, true},
		{"RSA", 2048, true},
		{"RSA", 3072, true},
		{"RSA", 4096, true},
		{"RSA", 0, false},
		{"RSA", 1000, false},
		{"DSA", 1024, false},
		{"", 2048, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s_%d", tt.algorithm, tt.keySize), func(t *testing.T) {
			err := validate.Struct(&keySpec{Algorithm: tt.algorithm, KeySize: tt.keySize})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
