//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/gsutil-mirrors/rsa/internal/domain/keys"
	"github.com/stretchr/testify/mock"
)

// MockKeyGenerationService is a mock implementation of KeyGenerationService
type MockKeyGenerationService struct {
	mock.Mock
}

func (m *MockKeyGenerationService) GenerateKeyPair(ctx context.Context, keySize uint32) ([]*keys.KeyMeta, error) {
	args := m.Called(ctx, keySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyMeta), args.Error(1)
}

// MockKeyMetadataService is a mock implementation of KeyMetadataService
type MockKeyMetadataService struct {
	mock.Mock
}

func (m *MockKeyMetadataService) List(ctx context.Context, query *keys.KeyQuery) ([]*keys.KeyMeta, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyMeta), args.Error(1)
}

func (m *MockKeyMetadataService) GetByID(ctx context.Context, keyID string) (*keys.KeyMeta, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyMeta), args.Error(1)
}

func (m *MockKeyMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

// MockKeyDownloadService is a mock implementation of KeyDownloadService
type MockKeyDownloadService struct {
	mock.Mock
}

func (m *MockKeyDownloadService) DownloadByID(ctx context.Context, keyID string) ([]byte, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockCryptoOperationService is a mock implementation of CryptoOperationService
type MockCryptoOperationService struct {
	mock.Mock
}

func (m *MockCryptoOperationService) Encrypt(ctx context.Context, keyPairID string, data []byte) ([]byte, error) {
	args := m.Called(ctx, keyPairID, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCryptoOperationService) Decrypt(ctx context.Context, keyPairID string, ciphertext []byte) ([]byte, error) {
	args := m.Called(ctx, keyPairID, ciphertext)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCryptoOperationService) Sign(ctx context.Context, keyPairID string, message []byte, hashAlgorithm string) ([]byte, error) {
	args := m.Called(ctx, keyPairID, message, hashAlgorithm)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCryptoOperationService) Verify(ctx context.Context, keyPairID string, message, signature []byte) error {
	args := m.Called(ctx, keyPairID, message, signature)
	return args.Error(0)
}
