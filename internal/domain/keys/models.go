package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gsutil-mirrors/rsa/internal/pkg/validators"
)

// KeyMeta describes a single stored key. The private and public halves of a
// pair share a KeyPairID and differ in Type.
type KeyMeta struct {
	ID              string    `validate:"required,uuid4"`
	KeyPairID       string    `validate:"required,uuid4"`
	Algorithm       string    `validate:"required,oneof=RSA"`
	KeySize         uint32    `validate:"required,keySizeValidation"`
	Type            string    `validate:"required,oneof=private public"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating KeyMeta struct
func (k *KeyMeta) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("keySizeValidation", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(k)
	if err != nil {
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

// KeyQuery represents the parameters used to filter and paginate key
// metadata listings.
type KeyQuery struct {
	Algorithm       string    `validate:"omitempty,oneof=RSA"`
	Type            string    `validate:"omitempty,oneof=private public"`
	KeyPairID       string    `validate:"omitempty,uuid4"`
	DateTimeCreated time.Time `validate:"omitempty"`

	Limit  int `validate:"omitempty,min=1"`
	Offset int `validate:"omitempty,min=0"`

	SortBy    string `validate:"omitempty,oneof=key_size type date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewKeyQuery creates a KeyQuery with sensible pagination defaults.
func NewKeyQuery() *KeyQuery {
	return &KeyQuery{
		Limit:     10,
		Offset:    0,
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating KeyQuery struct
func (q *KeyQuery) Validate() error {
	validate := validator.New()

	err := validate.Struct(q)
	if err != nil {
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
