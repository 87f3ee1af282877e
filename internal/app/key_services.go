// Package app wires the domain services together: key pair generation,
// metadata management, key material download and the cryptographic
// operations exposed over the APIs.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gsutil-mirrors/rsa/internal/domain/crypto"
	"github.com/gsutil-mirrors/rsa/internal/domain/keys"
	"github.com/gsutil-mirrors/rsa/internal/pkg/logger"
	"github.com/gsutil-mirrors/rsa/internal/pkg/pem"
)

// keyGenerationService implements the KeyGenerationService interface.
type keyGenerationService struct {
	vault        keys.KeyVault
	keyRepo      keys.KeyRepository
	keyGenerator crypto.KeyGenerator
	logger       logger.Logger
}

// NewKeyGenerationService creates a new keyGenerationService instance
func NewKeyGenerationService(
	vault keys.KeyVault,
	keyRepo keys.KeyRepository,
	keyGenerator crypto.KeyGenerator,
	logger logger.Logger,
) (keys.KeyGenerationService, error) {
	return &keyGenerationService{
		vault:        vault,
		keyRepo:      keyRepo,
		keyGenerator: keyGenerator,
		logger:       logger,
	}, nil
}

// GenerateKeyPair generates an RSA key pair, stores both halves as PEM in
// the vault and records their metadata. It returns the metadata of the
// private and public key in that order.
func (s *keyGenerationService) GenerateKeyPair(ctx context.Context, keySize uint32) ([]*keys.KeyMeta, error) {
	publicKey, privateKey, err := s.keyGenerator.GenerateKeyPair(ctx, int(keySize))
	if err != nil {
		return nil, fmt.Errorf("failed to generate key pair: %w", err)
	}

	keyPairID := uuid.New().String()

	privateMeta, err := s.storeKey(ctx, keyPairID, crypto.KeyTypePrivate, keySize,
		pem.Encode(pem.MarshalPrivateKey(privateKey), pem.MarkerPrivateKey))
	if err != nil {
		return nil, err
	}

	publicMeta, err := s.storeKey(ctx, keyPairID, crypto.KeyTypePublic, keySize,
		pem.Encode(pem.MarshalPublicKey(publicKey), pem.MarkerPublicKey))
	if err != nil {
		return nil, err
	}

	s.logger.Info("Generated key pair with id ", keyPairID)
	return []*keys.KeyMeta{privateMeta, publicMeta}, nil
}

func (s *keyGenerationService) storeKey(ctx context.Context, keyPairID, keyType string, keySize uint32, envelope string) (*keys.KeyMeta, error) {
	meta := &keys.KeyMeta{
		ID:              uuid.New().String(),
		KeyPairID:       keyPairID,
		Algorithm:       crypto.AlgorithmRSA,
		KeySize:         keySize,
		Type:            keyType,
		DateTimeCreated: time.Now(),
	}

	if err := s.vault.Store(ctx, []byte(envelope), meta.ID, keyPairID, keyType); err != nil {
		return nil, fmt.Errorf("failed to store %s key material: %w", keyType, err)
	}

	if err := s.keyRepo.Create(ctx, meta); err != nil {
		return nil, fmt.Errorf("failed to record %s key metadata: %w", keyType, err)
	}

	return meta, nil
}

// keyMetadataService implements the KeyMetadataService interface.
type keyMetadataService struct {
	vault   keys.KeyVault
	keyRepo keys.KeyRepository
	logger  logger.Logger
}

// NewKeyMetadataService creates a new keyMetadataService instance
func NewKeyMetadataService(vault keys.KeyVault, keyRepo keys.KeyRepository, logger logger.Logger) (keys.KeyMetadataService, error) {
	return &keyMetadataService{
		vault:   vault,
		keyRepo: keyRepo,
		logger:  logger,
	}, nil
}

// List retrieves key metadata based on a query.
func (s *keyMetadataService) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	keyMetas, err := s.keyRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return keyMetas, nil
}

// GetByID retrieves the metadata of a key by its ID.
func (s *keyMetadataService) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	keyMeta, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return keyMeta, nil
}

// DeleteByID deletes a key's material and metadata by its ID.
func (s *keyMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	keyMeta, err := s.GetByID(ctx, keyID)
	if err != nil {
		return fmt.Errorf("failed to get key metadata: %w", err)
	}

	err = s.vault.Delete(ctx, keyID, keyMeta.KeyPairID, keyMeta.Type)
	if err != nil {
		return fmt.Errorf("failed to delete key from vault: %w", err)
	}

	err = s.keyRepo.DeleteByID(ctx, keyID)
	if err != nil {
		return fmt.Errorf("failed to delete key from database: %w", err)
	}
	return nil
}

// keyDownloadService implements the KeyDownloadService interface.
type keyDownloadService struct {
	vault   keys.KeyVault
	keyRepo keys.KeyRepository
	logger  logger.Logger
}

// NewKeyDownloadService creates a new keyDownloadService instance
func NewKeyDownloadService(vault keys.KeyVault, keyRepo keys.KeyRepository, logger logger.Logger) (keys.KeyDownloadService, error) {
	return &keyDownloadService{
		vault:   vault,
		keyRepo: keyRepo,
		logger:  logger,
	}, nil
}

// DownloadByID retrieves a key's PEM-encoded material by its ID.
func (s *keyDownloadService) DownloadByID(ctx context.Context, keyID string) ([]byte, error) {
	keyMeta, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	material, err := s.vault.Fetch(ctx, keyMeta.ID, keyMeta.KeyPairID, keyMeta.Type)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return material, nil
}
