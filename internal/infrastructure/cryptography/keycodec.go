package cryptography

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"rsa_engine_service/internal/domain/keys"
	"rsa_engine_service/internal/pkg/logger"
)

// Exported key strings are Base64 over a JSON object whose fields hold
// decimal-string integers. Decimal strings rather than JSON numbers keep
// arbitrary-precision values exact in any JSON parser.
type exportedPublicKey struct {
	E string `json:"e"`
	N string `json:"n"`
}

type exportedPrivateKey struct {
	D string `json:"d"`
	N string `json:"n"`
}

// keyCodec struct that implements the keys.KeyCodec interface
type keyCodec struct {
	logger logger.Logger
}

// NewKeyCodec creates and returns a new instance of keyCodec
func NewKeyCodec(logger logger.Logger) (keys.KeyCodec, error) {
	return &keyCodec{
		logger: logger,
	}, nil
}

// ExportPublicKey serializes a public key to its Base64 transport form.
func (c *keyCodec) ExportPublicKey(key *keys.PublicKey) (string, error) {
	if key == nil {
		return "", errors.New("public key cannot be nil")
	}
	if err := key.Validate(); err != nil {
		return "", err
	}
	out, err := json.Marshal(exportedPublicKey{E: key.E.String(), N: key.N.String()})
	if err != nil {
		return "", fmt.Errorf("failed to serialize public key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(out), nil
}

// ExportPrivateKey serializes a private key to its Base64 transport form.
func (c *keyCodec) ExportPrivateKey(key *keys.PrivateKey) (string, error) {
	if key == nil {
		return "", errors.New("private key cannot be nil")
	}
	if err := key.Validate(); err != nil {
		return "", err
	}
	out, err := json.Marshal(exportedPrivateKey{D: key.D.String(), N: key.N.String()})
	if err != nil {
		return "", fmt.Errorf("failed to serialize private key: %w", err)
	}
	return base64.StdEncoding.EncodeToString(out), nil
}

// ImportPublicKey reverses ExportPublicKey. Malformed key material is a hard
// failure: invalid Base64, invalid JSON or non-decimal fields all propagate.
func (c *keyCodec) ImportPublicKey(encoded string) (*keys.PublicKey, error) {
	var fields exportedPublicKey
	if err := decodeKeyFields(encoded, &fields); err != nil {
		return nil, fmt.Errorf("failed to import public key: %w", err)
	}
	e, err := parseDecimal(fields.E, "e")
	if err != nil {
		return nil, fmt.Errorf("failed to import public key: %w", err)
	}
	n, err := parseDecimal(fields.N, "n")
	if err != nil {
		return nil, fmt.Errorf("failed to import public key: %w", err)
	}
	key := &keys.PublicKey{E: e, N: n}
	if err := key.Validate(); err != nil {
		return nil, err
	}
	return key, nil
}

// ImportPrivateKey reverses ExportPrivateKey. The transport form carries no
// tag distinguishing key kinds, so the caller must pick the matching import.
func (c *keyCodec) ImportPrivateKey(encoded string) (*keys.PrivateKey, error) {
	var fields exportedPrivateKey
	if err := decodeKeyFields(encoded, &fields); err != nil {
		return nil, fmt.Errorf("failed to import private key: %w", err)
	}
	d, err := parseDecimal(fields.D, "d")
	if err != nil {
		return nil, fmt.Errorf("failed to import private key: %w", err)
	}
	n, err := parseDecimal(fields.N, "n")
	if err != nil {
		return nil, fmt.Errorf("failed to import private key: %w", err)
	}
	key := &keys.PrivateKey{D: d, N: n}
	if err := key.Validate(); err != nil {
		return nil, err
	}
	return key, nil
}

func decodeKeyFields(encoded string, fields any) error {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return fmt.Errorf("invalid base64 key material: %w", err)
	}
	if err := json.Unmarshal(raw, fields); err != nil {
		return fmt.Errorf("invalid key JSON: %w", err)
	}
	return nil
}

func parseDecimal(value, field string) (*big.Int, error) {
	z, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("field %q is not a decimal integer", field)
	}
	return z, nil
}
