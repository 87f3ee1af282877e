//go:build integration
// +build integration

package app

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gsutil-mirrors/rsa/internal/domain/crypto"
	"github.com/gsutil-mirrors/rsa/internal/domain/keys"
	"github.com/gsutil-mirrors/rsa/internal/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeySize = 512

func TestKeyGenerationService_GenerateKeyPair(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	keyMetas, err := services.KeyGenerationService.GenerateKeyPair(ctx, testKeySize)
	require.NoError(t, err)
	require.Len(t, keyMetas, 2)

	privateMeta, publicMeta := keyMetas[0], keyMetas[1]
	assert.Equal(t, crypto.KeyTypePrivate, privateMeta.Type)
	assert.Equal(t, crypto.KeyTypePublic, publicMeta.Type)
	assert.Equal(t, privateMeta.KeyPairID, publicMeta.KeyPairID)
	assert.Equal(t, uint32(testKeySize), privateMeta.KeySize)
	assert.Equal(t, crypto.AlgorithmRSA, privateMeta.Algorithm)

	for _, meta := range keyMetas {
		require.NoError(t, meta.Validate())

		fetched, err := services.KeyMetadataService.GetByID(ctx, meta.ID)
		require.NoError(t, err)
		assert.Equal(t, meta.ID, fetched.ID)
	}
}

func TestKeyGenerationService_UnsupportedKeySize(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.KeyGenerationService.GenerateKeyPair(context.Background(), 8)
	assert.Error(t, err)
}

func TestKeyDownloadService_DownloadByID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	keyMetas, err := services.KeyGenerationService.GenerateKeyPair(ctx, testKeySize)
	require.NoError(t, err)

	for _, meta := range keyMetas {
		material, err := services.KeyDownloadService.DownloadByID(ctx, meta.ID)
		require.NoError(t, err)

		envelope := string(material)
		assert.True(t, strings.HasPrefix(envelope, "-----BEGIN RSA "))
		assert.Contains(t, envelope, "-----END RSA ")
	}

	_, err = services.KeyDownloadService.DownloadByID(ctx, uuid.NewString())
	assert.Error(t, err)
}

func TestKeyMetadataService_ListAndDelete(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	keyMetas, err := services.KeyGenerationService.GenerateKeyPair(ctx, testKeySize)
	require.NoError(t, err)

	query := &keys.KeyQuery{}
	listed, err := services.KeyMetadataService.List(ctx, query)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	query = &keys.KeyQuery{Type: crypto.KeyTypePrivate}
	listed, err = services.KeyMetadataService.List(ctx, query)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, crypto.KeyTypePrivate, listed[0].Type)

	for _, meta := range keyMetas {
		require.NoError(t, services.KeyMetadataService.DeleteByID(ctx, meta.ID))

		_, err := services.KeyMetadataService.GetByID(ctx, meta.ID)
		assert.Error(t, err)

		_, err = services.KeyDownloadService.DownloadByID(ctx, meta.ID)
		assert.Error(t, err)
	}
}

func TestCryptoOperationService_EncryptDecrypt(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	keyMetas, err := services.KeyGenerationService.GenerateKeyPair(ctx, testKeySize)
	require.NoError(t, err)
	keyPairID := keyMetas[0].KeyPairID

	message := []byte("hello vault")
	ciphertext, err := services.CryptoOperationService.Encrypt(ctx, keyPairID, message)
	require.NoError(t, err)
	assert.NotEqual(t, message, ciphertext)

	decrypted, err := services.CryptoOperationService.Decrypt(ctx, keyPairID, ciphertext)
	require.NoError(t, err)
	assert.Equal(t, message, decrypted)
}

func TestCryptoOperationService_SignVerify(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	keyMetas, err := services.KeyGenerationService.GenerateKeyPair(ctx, testKeySize)
	require.NoError(t, err)
	keyPairID := keyMetas[0].KeyPairID

	message := []byte("signed payload")
	signature, err := services.CryptoOperationService.Sign(ctx, keyPairID, message, crypto.HashSHA256)
	require.NoError(t, err)

	require.NoError(t, services.CryptoOperationService.Verify(ctx, keyPairID, message, signature))

	err = services.CryptoOperationService.Verify(ctx, keyPairID, []byte("tampered payload"), signature)
	assert.ErrorIs(t, err, crypto.ErrVerification)
}

func TestCryptoOperationService_UnknownKeyPair(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	_, err := services.CryptoOperationService.Encrypt(ctx, uuid.NewString(), []byte("message"))
	assert.Error(t, err)

	err = services.CryptoOperationService.Verify(ctx, uuid.NewString(), []byte("message"), []byte("signature"))
	assert.Error(t, err)
}
