package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gsutil-mirrors/rsa/internal/domain/crypto"
	"github.com/gsutil-mirrors/rsa/internal/infrastructure/cryptography"
	"github.com/gsutil-mirrors/rsa/internal/infrastructure/entropy"
	"github.com/gsutil-mirrors/rsa/internal/infrastructure/hashing"
	"github.com/gsutil-mirrors/rsa/internal/pkg/logger"
	"github.com/spf13/cobra"
)

// CryptoCommandHandler encapsulates logic for encryption and signature
// operations via CLI.
type CryptoCommandHandler struct {
	processor crypto.PKCS1Processor
	logger    logger.Logger
}

// NewCryptoCommandHandler initializes a new CryptoCommandHandler with
// logging and the PKCS#1 processor.
func NewCryptoCommandHandler() (*CryptoCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	processor, err := cryptography.NewPKCS1Processor(entropy.NewRandomSource(), hashing.NewHashProvider(), loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create PKCS#1 processor: %w", err)
	}

	return &CryptoCommandHandler{
		processor: processor,
		logger:    loggerInstance,
	}, nil
}

// EncryptCmd encrypts a file using the public key
func (commandHandler *CryptoCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: %v", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: %v", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: %v", err)
		return
	}

	publicKey, err := readPublicKey(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	encryptedData, err := commandHandler.processor.Encrypt(plainText, publicKey)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	err = os.WriteFile(outputFile, encryptedData, 0600)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	commandHandler.logger.Info("Encrypted data path ", outputFile)
}

// DecryptCmd decrypts a file using the private key
func (commandHandler *CryptoCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: %v", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: %v", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: %v", err)
		return
	}

	privateKey, err := readPrivateKey(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	encryptedData, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	decryptedData, err := commandHandler.processor.Decrypt(encryptedData, privateKey)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	err = os.WriteFile(outputFile, decryptedData, 0600)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	commandHandler.logger.Info("Decrypted data path ", outputFile)
}

// SignCmd signs a file and saves the signature
func (commandHandler *CryptoCommandHandler) SignCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: %v", err)
		return
	}
	signatureFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: %v", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: %v", err)
		return
	}
	hashAlgorithm, err := cmd.Flags().GetString("hash-algorithm")
	if err != nil {
		commandHandler.logger.Error("invalid hash-algorithm flag: %v", err)
		return
	}

	privateKey, err := readPrivateKey(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	signature, err := commandHandler.processor.Sign(data, privateKey, hashAlgorithm)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	err = os.WriteFile(signatureFilePath, signature, 0600)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	commandHandler.logger.Info("Signature saved at ", signatureFilePath)
}

// VerifyCmd verifies a signature over a file
func (commandHandler *CryptoCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: %v", err)
		return
	}
	signatureFilePath, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		commandHandler.logger.Error("invalid signature-file flag: %v", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: %v", err)
		return
	}

	publicKey, err := readPublicKey(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	signature, err := os.ReadFile(filepath.Clean(signatureFilePath))
	if err != nil {
		commandHandler.logger.Error("%v", err)
		return
	}

	err = commandHandler.processor.Verify(data, signature, publicKey)
	if err != nil {
		if errors.Is(err, crypto.ErrVerification) {
			commandHandler.logger.Error("Signature is invalid")
			return
		}
		commandHandler.logger.Error("%v", err)
		return
	}

	commandHandler.logger.Info("Signature is valid")
}

// InitCryptoCommands registers encryption and signature commands
func InitCryptoCommands(rootCmd *cobra.Command) error {
	handler, err := NewCryptoCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create crypto command handler %w", err)
	}

	var encryptFileCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file with an RSA public key",
		Run:   handler.EncryptCmd,
	}
	encryptFileCmd.Flags().StringP("input-file", "", "", "Path to input file which needs to be encrypted")
	encryptFileCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptFileCmd.Flags().StringP("public-key", "", "", "Path to RSA public key")
	rootCmd.AddCommand(encryptFileCmd)

	var decryptFileCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a file with an RSA private key",
		Run:   handler.DecryptCmd,
	}
	decryptFileCmd.Flags().StringP("input-file", "", "", "Path to encrypted file")
	decryptFileCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptFileCmd.Flags().StringP("private-key", "", "", "Path to RSA private key")
	rootCmd.AddCommand(decryptFileCmd)

	var signFileCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign a file with an RSA private key",
		Run:   handler.SignCmd,
	}
	signFileCmd.Flags().StringP("input-file", "", "", "Path to file which needs to be signed")
	signFileCmd.Flags().StringP("output-file", "", "", "Path to signature output file")
	signFileCmd.Flags().StringP("private-key", "", "", "Path to RSA private key")
	signFileCmd.Flags().StringP("hash-algorithm", "", "SHA-256", "Hash algorithm for the signature digest (MD5, SHA-1, SHA-256, SHA-384, SHA-512)")
	rootCmd.AddCommand(signFileCmd)

	var verifyFileCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify a file signature with an RSA public key",
		Run:   handler.VerifyCmd,
	}
	verifyFileCmd.Flags().StringP("input-file", "", "", "Path to file which needs to be validated")
	verifyFileCmd.Flags().StringP("signature-file", "", "", "Path to signature input file")
	verifyFileCmd.Flags().StringP("public-key", "", "", "Path to RSA public key")
	rootCmd.AddCommand(verifyFileCmd)

	return nil
}
