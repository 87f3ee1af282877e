package commands

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/gsutil-mirrors/rsa/internal/domain/crypto"
	"github.com/gsutil-mirrors/rsa/internal/infrastructure/cryptography"
	"github.com/gsutil-mirrors/rsa/internal/infrastructure/entropy"
	"github.com/gsutil-mirrors/rsa/internal/pkg/logger"
	"github.com/spf13/cobra"
)

// KeyCommandHandler encapsulates logic for generating RSA key pairs via CLI.
type KeyCommandHandler struct {
	keyGenerator crypto.KeyGenerator
	logger       logger.Logger
}

// NewKeyCommandHandler initializes a new KeyCommandHandler with logging and
// the key generator.
func NewKeyCommandHandler() (*KeyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	primeGenerator, err := cryptography.NewPrimeGenerator(entropy.NewRandomSource(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create prime generator: %w", err)
	}

	keyGenerator, err := cryptography.NewKeyGenerator(primeGenerator, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generator: %w", err)
	}

	return &KeyCommandHandler{
		keyGenerator: keyGenerator,
		logger:       loggerInstance,
	}, nil
}

// GenerateKeysCmd generates an RSA key pair and persists it in a selected directory
func (commandHandler *KeyCommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag: %v", err)
		return
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag: %v", err)
		return
	}

	uniqueID := uuid.New()

	publicKey, privateKey, err := commandHandler.keyGenerator.GenerateKeyPair(cmd.Context(), keySize)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	privateKeyFilePath := fmt.Sprintf("%s/%s-private-key.pem", keyDir, uniqueID.String())
	if err := writePrivateKey(privateKey, privateKeyFilePath); err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	publicKeyFilePath := fmt.Sprintf("%s/%s-public-key.pem", keyDir, uniqueID.String())
	if err := writePublicKey(publicKey, publicKeyFilePath); err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	commandHandler.logger.Info("Key pair saved at ", keyDir)
}

// InitKeyCommands registers key generation commands
func InitKeyCommands(rootCmd *cobra.Command) error {
	handler, err := NewKeyCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create key command handler %w", err)
	}

	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate an RSA key pair",
		Run:   handler.GenerateKeysCmd,
	}
	generateKeysCmd.Flags().IntP("key-size", "", 2048, "RSA key size in bits (default 2048 for RSA-2048)")
	generateKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the RSA keys")
	rootCmd.AddCommand(generateKeysCmd)

	return nil
}
