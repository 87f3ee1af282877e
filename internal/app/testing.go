//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/gsutil-mirrors/rsa/internal/domain/keys"
	"github.com/gsutil-mirrors/rsa/internal/infrastructure/connector"
	"github.com/gsutil-mirrors/rsa/internal/infrastructure/cryptography"
	"github.com/gsutil-mirrors/rsa/internal/infrastructure/entropy"
	"github.com/gsutil-mirrors/rsa/internal/infrastructure/hashing"
	"github.com/gsutil-mirrors/rsa/internal/infrastructure/persistence"
	"github.com/gsutil-mirrors/rsa/internal/pkg/testutil"
	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	KeyGenerationService   keys.KeyGenerationService
	KeyMetadataService     keys.KeyMetadataService
	KeyDownloadService     keys.KeyDownloadService
	CryptoOperationService keys.CryptoOperationService

	DBContext *persistence.TestContext
	Vault     keys.KeyVault
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	log := testutil.SetupTestLogger(t)

	dbContext := persistence.SetupTestDB(t, dbType)

	vault, err := connector.NewFileKeyVault(t.TempDir(), log)
	require.NoError(t, err, "Failed to create file key vault")

	randomSource := entropy.NewRandomSource()
	hashProvider := hashing.NewHashProvider()

	primeGenerator, err := cryptography.NewPrimeGenerator(randomSource, log)
	require.NoError(t, err, "Failed to create prime generator")

	keyGenerator, err := cryptography.NewKeyGenerator(primeGenerator, log)
	require.NoError(t, err, "Failed to create key generator")

	processor, err := cryptography.NewPKCS1Processor(randomSource, hashProvider, log)
	require.NoError(t, err, "Failed to create PKCS#1 processor")

	keyGenerationService, err := NewKeyGenerationService(vault, dbContext.KeyRepo, keyGenerator, log)
	require.NoError(t, err, "Failed to create KeyGenerationService")

	keyMetadataService, err := NewKeyMetadataService(vault, dbContext.KeyRepo, log)
	require.NoError(t, err, "Failed to create KeyMetadataService")

	keyDownloadService, err := NewKeyDownloadService(vault, dbContext.KeyRepo, log)
	require.NoError(t, err, "Failed to create KeyDownloadService")

	cryptoOperationService, err := NewCryptoOperationService(vault, dbContext.KeyRepo, processor, log)
	require.NoError(t, err, "Failed to create CryptoOperationService")

	return &TestServices{
		KeyGenerationService:   keyGenerationService,
		KeyMetadataService:     keyMetadataService,
		KeyDownloadService:     keyDownloadService,
		CryptoOperationService: cryptoOperationService,
		DBContext:              dbContext,
		Vault:                  vault,
	}
}
