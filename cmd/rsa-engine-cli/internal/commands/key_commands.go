package commands

import (
	"fmt"
	"os"

	"rsa_engine_service/internal/domain/keys"
	"rsa_engine_service/internal/infrastructure/cryptography"
	"rsa_engine_service/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// KeyCommandHandler encapsulates logic for handling key generation via CLI.
type KeyCommandHandler struct {
	keyGenerator keys.KeyGenerator
	keyCodec     keys.KeyCodec
	logger       logger.Logger
}

// NewKeyCommandHandler initializes a new KeyCommandHandler with logging,
// a key generator and a key codec.
func NewKeyCommandHandler() (*KeyCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	keyGenerator, err := cryptography.NewKeyGenerator(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key generator: %w", err)
	}

	keyCodec, err := cryptography.NewKeyCodec(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create key codec: %w", err)
	}

	return &KeyCommandHandler{
		keyGenerator: keyGenerator,
		keyCodec:     keyCodec,
		logger:       loggerInstance,
	}, nil
}

// GenerateKeysCmd generates an RSA key pair and persists both halves as
// Base64 export strings in a selected directory
func (commandHandler *KeyCommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) {
	keySize, err := cmd.Flags().GetInt("key-size")
	if err != nil {
		commandHandler.logger.Error("invalid key-size flag: ", err)
		return
	}
	keyDir, err := cmd.Flags().GetString("key-dir")
	if err != nil {
		commandHandler.logger.Error("invalid key-dir flag: ", err)
		return
	}

	uniqueID := uuid.New()

	pair, err := commandHandler.keyGenerator.GenerateKeyPair(cmd.Context(), keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicKey, err := commandHandler.keyCodec.ExportPublicKey(pair.Public)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}
	privateKey, err := commandHandler.keyCodec.ExportPrivateKey(pair.Private)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	publicKeyFilePath := fmt.Sprintf("%s/%s-public-key.b64", keyDir, uniqueID.String())
	if err := os.WriteFile(publicKeyFilePath, []byte(publicKey+"\n"), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	privateKeyFilePath := fmt.Sprintf("%s/%s-private-key.b64", keyDir, uniqueID.String())
	if err := os.WriteFile(privateKeyFilePath, []byte(privateKey+"\n"), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Saved key pair ", uniqueID.String(), " in ", keyDir)
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
	generateKeysCmd.Flags().IntP("key-size", "", 2048, "Total modulus bit length (each prime gets half)")
	generateKeysCmd.Flags().StringP("key-dir", "", "", "Directory to store the exported key strings")
	rootCmd.AddCommand(generateKeysCmd)

	return nil
}
