// Package main is the entry point for the rsa-engine-cli application.
// It initializes the root command, registers the key and engine
// sub-commands, then executes the command-line interface.
package main

import (
	"fmt"
	"log"

	commands "rsa_engine_service/cmd/rsa-engine-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-engine-cli",
		Short: "Textbook RSA operations CLI tool",
		Long: `rsa-engine-cli is a command-line tool for textbook (unpadded) RSA.
Supports key pair generation, encryption, decryption, signing and
verification. Keys travel as Base64 strings over JSON with decimal-string
fields; ciphertexts and signatures are Base64 strings.

Textbook RSA is deterministic and unpadded: it is a demonstration
primitive, not a production security boundary.`,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

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

	if err := commands.InitEngineCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize engine commands: %w", err)
	}

	return nil
}
