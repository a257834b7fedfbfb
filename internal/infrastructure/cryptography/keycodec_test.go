//go:build unit
// +build unit

package cryptography

import (
	"context"
	"encoding/base64"
	"testing"

	"rsa_engine_service/internal/domain/keys"
	"rsa_engine_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupKeyCodec(t *testing.T) keys.KeyCodec {
	t.Helper()
	log := testutil.SetupTestLogger(t)
	codec, err := NewKeyCodec(log)
	require.NoError(t, err)
	return codec
}

func generateTestPair(t *testing.T) *keys.KeyPair {
	t.Helper()
	generator := setupKeyGenerator(t)
	pair, err := generator.GenerateKeyPair(context.Background(), testKeySize)
	require.NoError(t, err)
	return pair
}

func TestKeyCodec(t *testing.T) {
	codec := setupKeyCodec(t)
	pair := generateTestPair(t)

	t.Run("PublicKeyRoundTrip", func(t *testing.T) {
		encoded, err := codec.ExportPublicKey(pair.Public)
		require.NoError(t, err)

		imported, err := codec.ImportPublicKey(encoded)
		require.NoError(t, err)
		assert.True(t, pair.Public.Equal(imported))
	})

	t.Run("PrivateKeyRoundTrip", func(t *testing.T) {
		encoded, err := codec.ExportPrivateKey(pair.Private)
		require.NoError(t, err)

		imported, err := codec.ImportPrivateKey(encoded)
		require.NoError(t, err)
		assert.True(t, pair.Private.Equal(imported))
	})

	t.Run("ExportedFormIsBase64JSON", func(t *testing.T) {
		encoded, err := codec.ExportPublicKey(pair.Public)
		require.NoError(t, err)

		raw, err := base64.StdEncoding.DecodeString(encoded)
		require.NoError(t, err)
		assert.Contains(t, string(raw), `"e":"65537"`)
		assert.Contains(t, string(raw), `"n":"`+pair.Public.N.String()+`"`)
	})

	t.Run("ExportNilKey", func(t *testing.T) {
		_, err := codec.ExportPublicKey(nil)
		assert.Error(t, err)
		_, err = codec.ExportPrivateKey(nil)
		assert.Error(t, err)
	})
}

func TestKeyCodec_ImportFailures(t *testing.T) {
	codec := setupKeyCodec(t)

	tests := []struct {
		name    string
		encoded string
	}{
		{"invalid base64", "not a valid base64 string"},
		{"invalid JSON", base64.StdEncoding.EncodeToString([]byte("not json"))},
		{"non-decimal fields", base64.StdEncoding.EncodeToString([]byte(`{"e":"abc","n":"xyz"}`))},
		{"missing fields", base64.StdEncoding.EncodeToString([]byte(`{}`))},
		{"negative modulus", base64.StdEncoding.EncodeToString([]byte(`{"e":"65537","n":"-5"}`))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.ImportPublicKey(tt.encoded)
			assert.Error(t, err)
			_, err = codec.ImportPrivateKey(tt.encoded)
			assert.Error(t, err)
		})
	}
}
