package app

import (
	"context"
	"fmt"

	"github.com/gsutil-mirrors/rsa/internal/domain/crypto"
	"github.com/gsutil-mirrors/rsa/internal/domain/keys"
	"github.com/gsutil-mirrors/rsa/internal/pkg/logger"
	"github.com/gsutil-mirrors/rsa/internal/pkg/pem"
)

// cryptoOperationService implements the CryptoOperationService interface.
// It resolves stored key pairs and applies the PKCS#1 v1.5 operations.
type cryptoOperationService struct {
	vault     keys.KeyVault
	keyRepo   keys.KeyRepository
	processor crypto.PKCS1Processor
	logger    logger.Logger
}

// NewCryptoOperationService creates a new cryptoOperationService instance
func NewCryptoOperationService(
	vault keys.KeyVault,
	keyRepo keys.KeyRepository,
	processor crypto.PKCS1Processor,
	logger logger.Logger,
) (keys.CryptoOperationService, error) {
	return &cryptoOperationService{
		vault:     vault,
		keyRepo:   keyRepo,
		processor: processor,
		logger:    logger,
	}, nil
}

// Encrypt encrypts data with the public half of the key pair.
func (s *cryptoOperationService) Encrypt(ctx context.Context, keyPairID string, data []byte) ([]byte, error) {
	publicKey, err := s.loadPublicKey(ctx, keyPairID)
	if err != nil {
		return nil, err
	}

	ciphertext, err := s.processor.Encrypt(data, publicKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return ciphertext, nil
}

// Decrypt decrypts ciphertext with the private half of the key pair.
func (s *cryptoOperationService) Decrypt(ctx context.Context, keyPairID string, ciphertext []byte) ([]byte, error) {
	privateKey, err := s.loadPrivateKey(ctx, keyPairID)
	if err != nil {
		return nil, err
	}

	message, err := s.processor.Decrypt(ciphertext, privateKey)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return message, nil
}

// Sign signs the message with the private half of the key pair using the
// named hash algorithm.
func (s *cryptoOperationService) Sign(ctx context.Context, keyPairID string, message []byte, hashAlgorithm string) ([]byte, error) {
	privateKey, err := s.loadPrivateKey(ctx, keyPairID)
	if err != nil {
		return nil, err
	}

	signature, err := s.processor.Sign(message, privateKey, hashAlgorithm)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return signature, nil
}

// Verify checks the signature over message with the public half of the key
// pair.
func (s *cryptoOperationService) Verify(ctx context.Context, keyPairID string, message, signature []byte) error {
	publicKey, err := s.loadPublicKey(ctx, keyPairID)
	if err != nil {
		return err
	}

	if err := s.processor.Verify(message, signature, publicKey); err != nil {
		return fmt.Errorf("%w", err)
	}

	return nil
}

func (s *cryptoOperationService) loadPublicKey(ctx context.Context, keyPairID string) (*crypto.PublicKey, error) {
	material, err := s.loadMaterial(ctx, keyPairID, crypto.KeyTypePublic)
	if err != nil {
		return nil, err
	}

	contents, err := pem.Decode(string(material), pem.MarkerPublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode public key envelope: %w", err)
	}

	publicKey, err := pem.UnmarshalPublicKey(contents)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return publicKey, nil
}

func (s *cryptoOperationService) loadPrivateKey(ctx context.Context, keyPairID string) (*crypto.PrivateKey, error) {
	material, err := s.loadMaterial(ctx, keyPairID, crypto.KeyTypePrivate)
	if err != nil {
		return nil, err
	}

	contents, err := pem.Decode(string(material), pem.MarkerPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key envelope: %w", err)
	}

	privateKey, err := pem.UnmarshalPrivateKey(contents)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return privateKey, nil
}

func (s *cryptoOperationService) loadMaterial(ctx context.Context, keyPairID, keyType string) ([]byte, error) {
	keyMeta, err := s.keyRepo.GetByPair(ctx, keyPairID, keyType)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	material, err := s.vault.Fetch(ctx, keyMeta.ID, keyMeta.KeyPairID, keyMeta.Type)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	return material, nil
}
