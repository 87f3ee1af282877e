// Package validators provides custom validation functions registered with
// the go-playground validator.
package validators

import (
	"github.com/go-playground/validator/v10"
)

// KeySizeValidation validates the key size based on the algorithm type.
func KeySizeValidation(fl validator.FieldLevel) bool {
	algorithm := fl.Parent().FieldByName("Algorithm").String()
	keySize := fl.Field().Uint()

	switch algorithm {
	case "RSA":
		return keySize == 512 || keySize == 1024 || keySize == 2048 || keySize == 3072 || keySize == 4096
	default:
		return false
	}
}
