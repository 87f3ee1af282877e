package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gsutil-mirrors/rsa/internal/pkg/validators"
)

// GenerateKeyRequest represents the payload for generating a new key pair.
type GenerateKeyRequest struct {
	Algorithm string `json:"algorithm" validate:"omitempty,oneof=RSA"`
	KeySize   uint32 `json:"key_size" validate:"omitempty,keySizeValidation"`
}

// Validate for validating GenerateKeyRequest payload
func (r *GenerateKeyRequest) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("keySizeValidation", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	if err := validate.Struct(r); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// EncryptRequest carries a base64 encoded plaintext message.
type EncryptRequest struct {
	Data string `json:"data" binding:"required" validate:"required,base64"`
}

// DecryptRequest carries a base64 encoded ciphertext.
type DecryptRequest struct {
	Ciphertext string `json:"ciphertext" binding:"required" validate:"required,base64"`
}

// SignRequest carries a base64 encoded message and the hash algorithm used
// for the signature digest.
type SignRequest struct {
	Message       string `json:"message" binding:"required" validate:"required,base64"`
	HashAlgorithm string `json:"hash_algorithm" validate:"omitempty,oneof=MD5 SHA-1 SHA-256 SHA-384 SHA-512"`
}

// VerifyRequest carries a base64 encoded message and signature.
type VerifyRequest struct {
	Message   string `json:"message" binding:"required" validate:"required,base64"`
	Signature string `json:"signature" binding:"required" validate:"required,base64"`
}

// KeyMetaResponse is the API representation of key metadata.
type KeyMetaResponse struct {
	ID              string    `json:"id"`
	KeyPairID       string    `json:"key_pair_id"`
	Algorithm       string    `json:"algorithm"`
	KeySize         uint32    `json:"key_size"`
	Type            string    `json:"type"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// EncryptResponse carries the base64 encoded ciphertext.
type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
}

// DecryptResponse carries the base64 encoded plaintext.
type DecryptResponse struct {
	Data string `json:"data"`
}

// SignResponse carries the base64 encoded signature.
type SignResponse struct {
	Signature string `json:"signature"`
}

// VerifyResponse reports the outcome of a signature verification.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// ErrorResponse is the generic error payload.
type ErrorResponse struct {
	Message string `json:"message"`
}

// InfoResponse is the generic informational payload.
type InfoResponse struct {
	Message string `json:"message"`
}

func validateRequest(request any) error {
	validate := validator.New()

	if err := validate.Struct(request); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}
	return nil
}

// Validate for validating EncryptRequest payload
func (r *EncryptRequest) Validate() error { return validateRequest(r) }

// Validate for validating DecryptRequest payload
func (r *DecryptRequest) Validate() error { return validateRequest(r) }

// Validate for validating SignRequest payload
func (r *SignRequest) Validate() error { return validateRequest(r) }

// Validate for validating VerifyRequest payload
func (r *VerifyRequest) Validate() error { return validateRequest(r) }
