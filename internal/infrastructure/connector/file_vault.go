// Package connector provides implementations of the key vault storage
// backends. The current backend writes key material to the local
// filesystem; the interface allows swapping in a cloud key vault.
package connector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gsutil-mirrors/rsa/internal/domain/keys"
	"github.com/gsutil-mirrors/rsa/internal/pkg/logger"
)

const (
	vaultDirPerm  = 0o700
	vaultFilePerm = 0o600
)

type fileKeyVault struct {
	baseDir string
	logger  logger.Logger
}

// NewFileKeyVault creates a KeyVault that stores key material as files
// under baseDir, one directory per key pair. The base directory is created
// if it does not exist.
func NewFileKeyVault(baseDir string, logger logger.Logger) (keys.KeyVault, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("vault base directory must not be empty")
	}

	if err := os.MkdirAll(baseDir, vaultDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create vault directory %s: %w", baseDir, err)
	}

	return &fileKeyVault{
		baseDir: baseDir,
		logger:  logger,
	}, nil
}

func (v *fileKeyVault) Store(ctx context.Context, material []byte, keyID, keyPairID, keyType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := v.materialPath(keyID, keyPairID, keyType)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), vaultDirPerm); err != nil {
		return fmt.Errorf("failed to create key pair directory: %w", err)
	}

	if err := os.WriteFile(path, material, vaultFilePerm); err != nil {
		return fmt.Errorf("failed to write key material: %w", err)
	}

	v.logger.Info("Stored key material for key id ", keyID)
	return nil
}

func (v *fileKeyVault) Fetch(ctx context.Context, keyID, keyPairID, keyType string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := v.materialPath(keyID, keyPairID, keyType)
	if err != nil {
		return nil, err
	}

	material, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("key material for key %s not found", keyID)
		}
		return nil, fmt.Errorf("failed to read key material: %w", err)
	}

	return material, nil
}

func (v *fileKeyVault) Delete(ctx context.Context, keyID, keyPairID, keyType string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := v.materialPath(keyID, keyPairID, keyType)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("key material for key %s not found", keyID)
		}
		return fmt.Errorf("failed to delete key material: %w", err)
	}

	// Drop the pair directory once both halves are gone.
	_ = os.Remove(filepath.Dir(path))

	v.logger.Info("Deleted key material for key id ", keyID)
	return nil
}

// materialPath resolves the file path for a key and rejects IDs that would
// escape the vault directory.
func (v *fileKeyVault) materialPath(keyID, keyPairID, keyType string) (string, error) {
	if keyID == "" || keyPairID == "" || keyType == "" {
		return "", fmt.Errorf("key id, key pair id and key type must not be empty")
	}

	name := fmt.Sprintf("%s-%s.pem", keyID, keyType)
	path := filepath.Join(v.baseDir, keyPairID, name)

	cleaned, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve key material path: %w", err)
	}
	base, err := filepath.Abs(v.baseDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve vault directory: %w", err)
	}
	if !strings.HasPrefix(cleaned, base+string(filepath.Separator)) {
		return "", fmt.Errorf("key identifiers resolve outside the vault directory")
	}

	return cleaned, nil
}
