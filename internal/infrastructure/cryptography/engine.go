package cryptography

import (
	"fmt"
	"math/big"

	"rsa_engine_service/internal/domain/keys"
	"rsa_engine_service/internal/pkg/logger"
)

// engine struct that implements the keys.Transformer interface. The key
// fields are set once at construction and never written afterwards, so an
// engine is safe for concurrent use.
type engine struct {
	publicKey  *keys.PublicKey
	privateKey *keys.PrivateKey
	logger     logger.Logger
}

// NewEngine creates a Transformer from structured keys. Either key may be
// nil; operations that need the missing key fail with the matching sentinel
// error. Non-nil keys are validated up front.
func NewEngine(publicKey *keys.PublicKey, privateKey *keys.PrivateKey, logger logger.Logger) (keys.Transformer, error) {
	if publicKey != nil {
		if err := publicKey.Validate(); err != nil {
			return nil, err
		}
	}
	if privateKey != nil {
		if err := privateKey.Validate(); err != nil {
			return nil, err
		}
	}
	return &engine{
		publicKey:  publicKey,
		privateKey: privateKey,
		logger:     logger,
	}, nil
}

// NewEngineFromStrings creates a Transformer from exported Base64 key
// strings. Either string may be empty, leaving that key unloaded. The
// resulting engine state is identical to passing the corresponding key
// objects to NewEngine; import errors propagate.
func NewEngineFromStrings(publicKey, privateKey string, logger logger.Logger) (keys.Transformer, error) {
	codec, err := NewKeyCodec(logger)
	if err != nil {
		return nil, err
	}

	var pub *keys.PublicKey
	var priv *keys.PrivateKey
	if publicKey != "" {
		if pub, err = codec.ImportPublicKey(publicKey); err != nil {
			return nil, err
		}
	}
	if privateKey != "" {
		if priv, err = codec.ImportPrivateKey(privateKey); err != nil {
			return nil, err
		}
	}
	return NewEngine(pub, priv, logger)
}

// Encrypt encodes data to an integer m and computes m^e mod n. The result
// is rendered as a Base64 transport string. Textbook RSA cannot represent
// values at or above the modulus, so encoded data of at least n bits fails
// with keys.ErrMessageTooLarge; this is a hard ceiling, not retryable.
func (e *engine) Encrypt(data any) (string, error) {
	if e.publicKey == nil {
		return "", fmt.Errorf("encrypt requires a public key: %w", keys.ErrNoPublicKey)
	}
	m, err := EncodeToInt(data)
	if err != nil {
		return "", fmt.Errorf("failed to encode plaintext: %w", err)
	}
	if m.Cmp(e.publicKey.N) >= 0 {
		return "", fmt.Errorf("encrypt: %w", keys.ErrMessageTooLarge)
	}
	c := new(big.Int).Exp(m, e.publicKey.E, e.publicKey.N)
	e.logger.Info("RSA encryption succeeded")
	return intToBase64(c), nil
}

// Decrypt reverses Encrypt: c^d mod n, decoded back to the original logical
// value. A crafted ciphertext whose integer is >= n decrypts to garbage
// rather than failing; unpadded modular exponentiation cannot detect it.
func (e *engine) Decrypt(ciphertext string) (any, error) {
	if e.privateKey == nil {
		return nil, fmt.Errorf("decrypt requires a private key: %w", keys.ErrNoPrivateKey)
	}
	c, err := base64ToInt(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}
	m := new(big.Int).Exp(c, e.privateKey.D, e.privateKey.N)
	e.logger.Info("RSA decryption succeeded")
	return DecodeFromInt(m), nil
}

// Sign encodes data exactly as Encrypt does and computes m^d mod n, the
// textbook RSA signature primitive. Data whose encoding is >= n still signs
// (the exponentiation reduces mod n) but cannot verify meaningfully.
func (e *engine) Sign(data any) (string, error) {
	if e.privateKey == nil {
		return "", fmt.Errorf("sign requires a private key: %w", keys.ErrNoPrivateKey)
	}
	m, err := EncodeToInt(data)
	if err != nil {
		return "", fmt.Errorf("failed to encode data for signing: %w", err)
	}
	s := new(big.Int).Exp(m, e.privateKey.D, e.privateKey.N)
	e.logger.Info("RSA signing succeeded")
	return intToBase64(s), nil
}

// Verify re-encodes data and reports whether signature^e mod n equals it
// exactly. A signature string that does not decode is a failed check, not
// an error; verification never fails on attacker-controlled input.
func (e *engine) Verify(data any, signature string) (bool, error) {
	if e.publicKey == nil {
		return false, fmt.Errorf("verify requires a public key: %w", keys.ErrNoPublicKey)
	}
	m, err := EncodeToInt(data)
	if err != nil {
		return false, fmt.Errorf("failed to encode data for verification: %w", err)
	}
	s, err := base64ToInt(signature)
	if err != nil {
		return false, nil
	}
	recovered := new(big.Int).Exp(s, e.publicKey.E, e.publicKey.N)
	return recovered.Cmp(m) == 0, nil
}

// transformerFactory struct that implements the keys.TransformerFactory interface
type transformerFactory struct {
	logger logger.Logger
}

// NewTransformerFactory creates and returns a new instance of transformerFactory
func NewTransformerFactory(logger logger.Logger) (keys.TransformerFactory, error) {
	return &transformerFactory{
		logger: logger,
	}, nil
}

// FromStrings builds a Transformer from exported key strings.
func (f *transformerFactory) FromStrings(publicKey, privateKey string) (keys.Transformer, error) {
	return NewEngineFromStrings(publicKey, privateKey, f.logger)
}
