// Package main is the entry point for the rsa-cli application.
// It initializes the root command, registers the key generation and
// cryptographic operation sub-commands and executes the command-line
// interface.
package main

import (
	"fmt"
	"log"
	"os"

	commands "github.com/gsutil-mirrors/rsa/cmd/rsa-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-cli",
		Short: "RSA operations CLI tool",
		Long: `rsa-cli is a command-line tool for RSA operations.
Supports key pair generation, PKCS#1 v1.5 encryption and decryption of
files, and signing and verification with MD5, SHA-1, SHA-256, SHA-384 or
SHA-512 digests. Keys are stored as PEM files.`,
	}

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitKeyCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize key commands: %w", err)
	}

	if err := commands.InitCryptoCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize crypto commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	// Set log flags for better error messages
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure proper exit codes on errors
	log.SetOutput(os.Stderr)
}
