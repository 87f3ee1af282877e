// Package commands implements the sub-commands of the rsa-cli tool: key
// pair generation, encryption, decryption, signing and verification over
// PEM key files on disk.
package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gsutil-mirrors/rsa/internal/domain/crypto"
	"github.com/gsutil-mirrors/rsa/internal/pkg/config"
	"github.com/gsutil-mirrors/rsa/internal/pkg/logger"
	"github.com/gsutil-mirrors/rsa/internal/pkg/pem"
)

func setupLogger() (logger.Logger, error) {
	settings := &config.LoggerSettings{
		LogLevel: "info",
		LogType:  "console",
		FilePath: "",
	}

	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// readPublicKey loads a PEM encoded public key from disk.
func readPublicKey(path string) (*crypto.PublicKey, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read public key file: %w", err)
	}

	material, err := pem.Decode(string(contents), pem.MarkerPublicKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode public key envelope: %w", err)
	}

	return pem.UnmarshalPublicKey(material)
}

// readPrivateKey loads a PEM encoded private key from disk.
func readPrivateKey(path string) (*crypto.PrivateKey, error) {
	contents, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file: %w", err)
	}

	material, err := pem.Decode(string(contents), pem.MarkerPrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key envelope: %w", err)
	}

	return pem.UnmarshalPrivateKey(material)
}

// writePublicKey persists a PEM encoded public key to disk.
func writePublicKey(key *crypto.PublicKey, path string) error {
	envelope := pem.Encode(pem.MarshalPublicKey(key), pem.MarkerPublicKey)
	if err := os.WriteFile(path, []byte(envelope), 0600); err != nil {
		return fmt.Errorf("failed to write public key file: %w", err)
	}
	return nil
}

// writePrivateKey persists a PEM encoded private key to disk.
func writePrivateKey(key *crypto.PrivateKey, path string) error {
	envelope := pem.Encode(pem.MarshalPrivateKey(key), pem.MarkerPrivateKey)
	if err := os.WriteFile(path, []byte(envelope), 0600); err != nil {
		return fmt.Errorf("failed to write private key file: %w", err)
	}
	return nil
}
