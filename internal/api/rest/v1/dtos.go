package v1

import (
	"fmt"

	"rsa_engine_service/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// GenerateKeysRequest carries the parameters for key pair generation.
// A zero key size requests the default (2048 bits).
type GenerateKeysRequest struct {
	KeySize uint32 `json:"key_size" validate:"omitempty,rsakeysize"`
}

// EncryptRequest carries data to encrypt under an exported public key string.
// Data may be a plain string or any JSON value.
type EncryptRequest struct {
	Data      any    `json:"data"`
	PublicKey string `json:"public_key" validate:"required,base64"`
}

// DecryptRequest carries a ciphertext string and the matching private key.
type DecryptRequest struct {
	Ciphertext string `json:"ciphertext"`
	PrivateKey string `json:"private_key" validate:"required,base64"`
}

// SignRequest carries data to sign under an exported private key string.
type SignRequest struct {
	Data       any    `json:"data"`
	PrivateKey string `json:"private_key" validate:"required,base64"`
}

// VerifyRequest carries data, a signature string and the signer's public key.
type VerifyRequest struct {
	Data      any    `json:"data"`
	Signature string `json:"signature"`
	PublicKey string `json:"public_key" validate:"required,base64"`
}

// GenerateKeysResponse returns both halves of a freshly generated pair as
// exported Base64 strings.
type GenerateKeysResponse struct {
	KeyPairID  string `json:"key_pair_id"`
	KeySize    int    `json:"key_size"`
	PublicKey  string `json:"public_key"`
	PrivateKey string `json:"private_key"`
}

// EncryptResponse returns the ciphertext transport string.
type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
}

// DecryptResponse returns the recovered logical value.
type DecryptResponse struct {
	Data any `json:"data"`
}

// SignResponse returns the signature transport string.
type SignResponse struct {
	Signature string `json:"signature"`
}

// VerifyResponse reports whether the signature matched.
type VerifyResponse struct {
	Valid bool `json:"valid"`
}

// ErrorResponse represents the structure of an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

func newRequestValidator() *validator.Validate {
	validate := validator.New()
	// Registration only fails for empty tags or nil functions.
	_ = validate.RegisterValidation("rsakeysize", validators.RSAKeySizeValidation)
	return validate
}

// Validate checks the request fields against their validation tags.
func (r *GenerateKeysRequest) Validate() error {
	if err := newRequestValidator().Struct(r); err != nil {
		return fmt.Errorf("validation failed for GenerateKeysRequest: %w", err)
	}
	return nil
}

// Validate checks the request fields against their validation tags.
func (r *EncryptRequest) Validate() error {
	if err := newRequestValidator().Struct(r); err != nil {
		return fmt.Errorf("validation failed for EncryptRequest: %w", err)
	}
	return nil
}

// Validate checks the request fields against their validation tags.
func (r *DecryptRequest) Validate() error {
	if err := newRequestValidator().Struct(r); err != nil {
		return fmt.Errorf("validation failed for DecryptRequest: %w", err)
	}
	return nil
}

// Validate checks the request fields against their validation tags.
func (r *SignRequest) Validate() error {
	if err := newRequestValidator().Struct(r); err != nil {
		return fmt.Errorf("validation failed for SignRequest: %w", err)
	}
	return nil
}

// Validate checks the request fields against their validation tags.
func (r *VerifyRequest) Validate() error {
	if err := newRequestValidator().Struct(r); err != nil {
		return fmt.Errorf("validation failed for VerifyRequest: %w", err)
	}
	return nil
}
