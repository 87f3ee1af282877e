//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gsutil-mirrors/rsa/internal/domain/keys"
	"github.com/gsutil-mirrors/rsa/internal/infrastructure/persistence/models"
	"github.com/gsutil-mirrors/rsa/internal/pkg/config"
	"github.com/gsutil-mirrors/rsa/internal/pkg/testutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// Test constants
const (
	TestKeySize512  = 512
	TestKeySize1024 = 1024
	TestKeySize2048 = 2048

	TestKeyTypePublic  = "public"
	TestKeyTypePrivate = "private"

	TestAlgorithmRSA = "RSA"
)

// TestContext holds the test database and repository
type TestContext struct {
	DB      *gorm.DB
	KeyRepo keys.KeyRepository
}

// SetupTestDB initializes a test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = db.AutoMigrate(&models.KeyModel{})
	require.NoError(t, err, "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	keyRepo, err := NewGormKeyRepository(db, log)
	require.NoError(t, err, "Failed to create key repository")

	return &TestContext{
		DB:      db,
		KeyRepo: keyRepo,
	}
}

// CreateTestKey creates key metadata with default values
func CreateTestKey(t *testing.T) *keys.KeyMeta {
	t.Helper()

	return &keys.KeyMeta{
		ID:              uuid.NewString(),
		KeyPairID:       uuid.NewString(),
		Type:            TestKeyTypePublic,
		Algorithm:       TestAlgorithmRSA,
		KeySize:         TestKeySize2048,
		DateTimeCreated: time.Now(),
	}
}

// CreateTestKeyWithOptions creates key metadata with custom options
func CreateTestKeyWithOptions(t *testing.T, keyPairID, keyType string, keySize uint32) *keys.KeyMeta {
	t.Helper()

	return &keys.KeyMeta{
		ID:              uuid.NewString(),
		KeyPairID:       keyPairID,
		Type:            keyType,
		Algorithm:       TestAlgorithmRSA,
		KeySize:         keySize,
		DateTimeCreated: time.Now(),
	}
}
