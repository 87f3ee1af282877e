package keys

import (
	"context"
)

// KeyGenerationService defines methods for generating new RSA key pairs.
type KeyGenerationService interface {
	// GenerateKeyPair generates an RSA key pair of the given size, stores
	// both halves in the vault and records their metadata.
	// It returns the metadata of the private and public key in that order.
	GenerateKeyPair(ctx context.Context, keySize uint32) ([]*KeyMeta, error)
}

// KeyMetadataService defines methods for managing key metadata and deleting keys.
type KeyMetadataService interface {
	// List retrieves all key metadata considering a query filter when set.
	List(ctx context.Context, query *KeyQuery) ([]*KeyMeta, error)

	// GetByID retrieves the metadata of a key by its unique ID.
	GetByID(ctx context.Context, keyID string) (*KeyMeta, error)

	// DeleteByID deletes a key and its associated metadata by ID.
	DeleteByID(ctx context.Context, keyID string) error
}

// KeyDownloadService defines methods for retrieving stored key material.
type KeyDownloadService interface {
	// DownloadByID retrieves a key's PEM-encoded material by its ID.
	DownloadByID(ctx context.Context, keyID string) ([]byte, error)
}

// CryptoOperationService applies stored key pairs to data: encryption and
// signing down to the raw operations, addressed by key pair ID.
type CryptoOperationService interface {
	// Encrypt encrypts data with the public half of the key pair.
	Encrypt(ctx context.Context, keyPairID string, data []byte) ([]byte, error)

	// Decrypt decrypts ciphertext with the private half of the key pair.
	Decrypt(ctx context.Context, keyPairID string, ciphertext []byte) ([]byte, error)

	// Sign signs the message digest with the private half of the key pair
	// using the named hash algorithm.
	Sign(ctx context.Context, keyPairID string, message []byte, hashAlgorithm string) ([]byte, error)

	// Verify checks the signature over message with the public half of the
	// key pair. A nil error means the signature is valid.
	Verify(ctx context.Context, keyPairID string, message, signature []byte) error
}

// KeyRepository defines the interface for key metadata persistence.
type KeyRepository interface {
	Create(ctx context.Context, key *KeyMeta) error
	List(ctx context.Context, query *KeyQuery) ([]*KeyMeta, error)
	GetByID(ctx context.Context, keyID string) (*KeyMeta, error)
	// GetByPair retrieves one half of a key pair by pair ID and key type.
	GetByPair(ctx context.Context, keyPairID, keyType string) (*KeyMeta, error)
	DeleteByID(ctx context.Context, keyID string) error
}

// KeyVault is an interface for the storage holding the key material itself.
// The current implementation writes PEM files to the local filesystem, but
// it may be replaced with a cloud key management system.
type KeyVault interface {
	// Store persists PEM-encoded key material for the given key.
	Store(ctx context.Context, material []byte, keyID, keyPairID, keyType string) error

	// Fetch retrieves a key's material by its IDs and type.
	Fetch(ctx context.Context, keyID, keyPairID, keyType string) ([]byte, error)

	// Delete removes a key's material from the vault.
	Delete(ctx context.Context, keyID, keyPairID, keyType string) error
}
