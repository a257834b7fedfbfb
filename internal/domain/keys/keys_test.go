//go:build unit
// +build unit

package keys

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicKeyValidation(t *testing.T) {
	tests := []struct {
		name          string
		key           *PublicKey
		expectedError bool
	}{
		{
			name:          "valid key",
			key:           &PublicKey{E: big.NewInt(65537), N: big.NewInt(3233)},
			expectedError: false,
		},
		{
			name:          "missing exponent",
			key:           &PublicKey{N: big.NewInt(3233)},
			expectedError: true,
		},
		{
			name:          "missing modulus",
			key:           &PublicKey{E: big.NewInt(65537)},
			expectedError: true,
		},
		{
			name:          "negative modulus",
			key:           &PublicKey{E: big.NewInt(65537), N: big.NewInt(-1)},
			expectedError: true,
		},
		{
			name:          "zero exponent",
			key:           &PublicKey{E: big.NewInt(0), N: big.NewInt(3233)},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.key.Validate()
			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestPrivateKeyValidation(t *testing.T) {
	tests := []struct {
		name          string
		key           *PrivateKey
		expectedError bool
	}{
		{
			name:          "valid key",
			key:           &PrivateKey{D: big.NewInt(2753), N: big.NewInt(3233)},
			expectedError: false,
		},
		{
			name:          "missing exponent",
			key:           &PrivateKey{N: big.NewInt(3233)},
			expectedError: true,
		},
		{
			name:          "missing modulus",
			key:           &PrivateKey{D: big.NewInt(2753)},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.key.Validate()
			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestKeyPairValidation(t *testing.T) {
	pub := &PublicKey{E: big.NewInt(65537), N: big.NewInt(3233)}
	priv := &PrivateKey{D: big.NewInt(2753), N: big.NewInt(3233)}

	t.Run("valid pair", func(t *testing.T) {
		pair := &KeyPair{Public: pub, Private: priv}
		require.NoError(t, pair.Validate())
	})

	t.Run("missing private key", func(t *testing.T) {
		pair := &KeyPair{Public: pub}
		require.Error(t, pair.Validate())
	})

	t.Run("modulus mismatch", func(t *testing.T) {
		other := &PrivateKey{D: big.NewInt(2753), N: big.NewInt(3127)}
		pair := &KeyPair{Public: pub, Private: other}
		require.Error(t, pair.Validate())
	})
}

func TestKeyEquality(t *testing.T) {
	pub := &PublicKey{E: big.NewInt(65537), N: big.NewInt(3233)}
	priv := &PrivateKey{D: big.NewInt(2753), N: big.NewInt(3233)}

	assert.True(t, pub.Equal(&PublicKey{E: big.NewInt(65537), N: big.NewInt(3233)}))
	assert.False(t, pub.Equal(&PublicKey{E: big.NewInt(3), N: big.NewInt(3233)}))
	assert.False(t, pub.Equal(nil))

	assert.True(t, priv.Equal(&PrivateKey{D: big.NewInt(2753), N: big.NewInt(3233)}))
	assert.False(t, priv.Equal(&PrivateKey{D: big.NewInt(2753), N: big.NewInt(3127)}))
	assert.False(t, priv.Equal(nil))
}
