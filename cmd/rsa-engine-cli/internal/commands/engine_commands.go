package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"rsa_engine_service/internal/domain/keys"
	"rsa_engine_service/internal/infrastructure/cryptography"
	"rsa_engine_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// EngineCommandHandler encapsulates logic for handling encrypt, decrypt,
// sign and verify operations via CLI. File contents are treated as string
// payloads.
type EngineCommandHandler struct {
	transformers keys.TransformerFactory
	logger       logger.Logger
}

// NewEngineCommandHandler initializes a new EngineCommandHandler with
// logging and a transformer factory.
func NewEngineCommandHandler() (*EngineCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	transformers, err := cryptography.NewTransformerFactory(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create transformer factory: %w", err)
	}

	return &EngineCommandHandler{
		transformers: transformers,
		logger:       loggerInstance,
	}, nil
}

// EncryptCmd encrypts a file's contents under an exported public key string
func (commandHandler *EngineCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: ", err)
		return
	}

	publicKey, err := readKeyString(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	engine, err := commandHandler.transformers.FromStrings(publicKey, "")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	plainText, err := os.ReadFile(filepath.Clean(inputFile))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ciphertext, err := engine.Encrypt(string(plainText))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFile, []byte(ciphertext+"\n"), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Encrypted data path ", outputFile)
}

// DecryptCmd decrypts a ciphertext file under an exported private key string
func (commandHandler *EngineCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) {
	inputFile, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	outputFile, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: ", err)
		return
	}

	privateKey, err := readKeyString(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	engine, err := commandHandler.transformers.FromStrings("", privateKey)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	ciphertext, err := readKeyString(inputFile) // same trimmed-string format
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	data, err := engine.Decrypt(ciphertext)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(outputFile, []byte(fmt.Sprint(data)), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Decrypted data path ", outputFile)
}

// SignCmd signs a file's contents and saves the signature string
func (commandHandler *EngineCommandHandler) SignCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	signatureFilePath, err := cmd.Flags().GetString("output-file")
	if err != nil {
		commandHandler.logger.Error("invalid output-file flag: ", err)
		return
	}
	privateKeyPath, err := cmd.Flags().GetString("private-key")
	if err != nil {
		commandHandler.logger.Error("invalid private-key flag: ", err)
		return
	}

	privateKey, err := readKeyString(privateKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	engine, err := commandHandler.transformers.FromStrings("", privateKey)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	signature, err := engine.Sign(string(data))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if err := os.WriteFile(signatureFilePath, []byte(signature+"\n"), 0600); err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Signature saved at ", signatureFilePath)
}

// VerifyCmd verifies a signature string against a file's contents
func (commandHandler *EngineCommandHandler) VerifyCmd(cmd *cobra.Command, _ []string) {
	inputFilePath, err := cmd.Flags().GetString("input-file")
	if err != nil {
		commandHandler.logger.Error("invalid input-file flag: ", err)
		return
	}
	signatureFilePath, err := cmd.Flags().GetString("signature-file")
	if err != nil {
		commandHandler.logger.Error("invalid signature-file flag: ", err)
		return
	}
	publicKeyPath, err := cmd.Flags().GetString("public-key")
	if err != nil {
		commandHandler.logger.Error("invalid public-key flag: ", err)
		return
	}

	publicKey, err := readKeyString(publicKeyPath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	engine, err := commandHandler.transformers.FromStrings(publicKey, "")
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	data, err := os.ReadFile(filepath.Clean(inputFilePath))
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	signature, err := readKeyString(signatureFilePath)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	valid, err := engine.Verify(string(data), signature)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	if valid {
		commandHandler.logger.Info("Signature is valid")
	} else {
		commandHandler.logger.Error("Signature is invalid")
	}
}

// InitEngineCommands registers encrypt, decrypt, sign and verify commands
func InitEngineCommands(rootCmd *cobra.Command) error {
	handler, err := NewEngineCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create engine command handler %w", err)
	}

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt a file using a public key string",
		Run:   handler.EncryptCmd,
	}
	encryptCmd.Flags().StringP("input-file", "", "", "Path to input file which needs to be encrypted")
	encryptCmd.Flags().StringP("output-file", "", "", "Path to encrypted output file")
	encryptCmd.Flags().StringP("public-key", "", "", "Path to exported public key string")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a ciphertext file using a private key string",
		Run:   handler.DecryptCmd,
	}
	decryptCmd.Flags().StringP("input-file", "", "", "Path to encrypted file")
	decryptCmd.Flags().StringP("output-file", "", "", "Path to decrypted output file")
	decryptCmd.Flags().StringP("private-key", "", "", "Path to exported private key string")
	rootCmd.AddCommand(decryptCmd)

	var signCmd = &cobra.Command{
		Use:   "sign",
		Short: "Sign a file using a private key string",
		Run:   handler.SignCmd,
	}
	signCmd.Flags().StringP("input-file", "", "", "Path to file which needs to be signed")
	signCmd.Flags().StringP("output-file", "", "", "Path to signature output file")
	signCmd.Flags().StringP("private-key", "", "", "Path to exported private key string")
	rootCmd.AddCommand(signCmd)

	var verifyCmd = &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature against a file",
		Run:   handler.VerifyCmd,
	}
	verifyCmd.Flags().StringP("input-file", "", "", "Path to signed file")
	verifyCmd.Flags().StringP("signature-file", "", "", "Path to signature file")
	verifyCmd.Flags().StringP("public-key", "", "", "Path to exported public key string")
	rootCmd.AddCommand(verifyCmd)

	return nil
}
