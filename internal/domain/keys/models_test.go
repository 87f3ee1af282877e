//go:build unit
// +build unit

package keys

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validKeyMeta() *KeyMeta {
	return &KeyMeta{
		ID:              uuid.New().String(),
		KeyPairID:       uuid.New().String(),
		Algorithm:       "RSA",
		KeySize:         2048,
		Type:            "private",
		DateTimeCreated: time.Now(),
	}
}

func TestKeyMetaValidation(t *testing.T) {
	require.NoError(t, validKeyMeta().Validate())

	tests := []struct {
		name   string
		mutate func(*KeyMeta)
	}{
		{"missing id", func(k *KeyMeta) { k.ID = "" }},
		{"non uuid id", func(k *KeyMeta) { k.ID = "not-a-uuid" }},
		{"missing pair id", func(k *KeyMeta) { k.KeyPairID = "" }},
		{"unknown algorithm", func(k *KeyMeta) { k.Algorithm = "DSA" }},
		{"unsupported key size", func(k *KeyMeta) { k.KeySize = 1000 }},
		{"unknown type", func(k *KeyMeta) { k.Type = "secret" }},
		{"missing timestamp", func(k *KeyMeta) { k.DateTimeCreated = time.Time{} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := validKeyMeta()
			tt.mutate(meta)
			assert.Error(t, meta.Validate())
		})
	}
}

func TestNewKeyQueryDefaults(t *testing.T) {
	query := NewKeyQuery()

	assert.Equal(t, 10, query.Limit)
	assert.Equal(t, 0, query.Offset)
	assert.Equal(t, "date_time_created", query.SortBy)
	assert.Equal(t, "desc", query.SortOrder)
	require.NoError(t, query.Validate())
}

func TestKeyQueryValidation(t *testing.T) {
	assert.NoError(t, (&KeyQuery{}).Validate())
	assert.NoError(t, (&KeyQuery{Algorithm: "RSA", Type: "public", Limit: 5}).Validate())

	assert.Error(t, (&KeyQuery{Algorithm: "DSA"}).Validate())
	assert.Error(t, (&KeyQuery{Type: "secret"}).Validate())
	assert.Error(t, (&KeyQuery{KeyPairID: "not-a-uuid"}).Validate())
	assert.Error(t, (&KeyQuery{SortBy: "name"}).Validate())
	assert.Error(t, (&KeyQuery{SortOrder: "sideways"}).Validate())
	assert.Error(t, (&KeyQuery{Limit: -1}).Validate())
}
