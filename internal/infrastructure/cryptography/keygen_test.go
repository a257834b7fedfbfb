//go:build unit
// +build unit

package cryptography

import (
	"context"
	"crypto/rand"
	"math/big"
	"testing"
	"time"

	"rsa_engine_service/internal/domain/keys"
	"rsa_engine_service/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeySize = 512

func setupKeyGenerator(t *testing.T) keys.KeyGenerator {
	t.Helper()
	log := testutil.SetupTestLogger(t)
	generator, err := NewKeyGenerator(log)
	require.NoError(t, err)
	return generator
}

func TestKeyGenerator(t *testing.T) {
	generator := setupKeyGenerator(t)

	t.Run("GenerateKeyPair", func(t *testing.T) {
		pair, err := generator.GenerateKeyPair(context.Background(), testKeySize)
		require.NoError(t, err)
		require.NoError(t, pair.Validate())

		assert.Equal(t, testKeySize, pair.Public.N.BitLen())
		assert.Equal(t, big.NewInt(keys.DefaultExponent), pair.Public.E)
		assert.Equal(t, 0, pair.Public.N.Cmp(pair.Private.N))
	})

	t.Run("ExponentiationInverts", func(t *testing.T) {
		pair, err := generator.GenerateKeyPair(context.Background(), testKeySize)
		require.NoError(t, err)

		// (m^e)^d mod n == m for sampled m < n
		for i := 0; i < 8; i++ {
			m, err := rand.Int(rand.Reader, pair.Public.N)
			require.NoError(t, err)

			c := new(big.Int).Exp(m, pair.Public.E, pair.Public.N)
			recovered := new(big.Int).Exp(c, pair.Private.D, pair.Private.N)
			assert.Equal(t, 0, m.Cmp(recovered))
		}
	})

	t.Run("OddBitLengthFloors", func(t *testing.T) {
		// 513/2 = 256 prime bits per half, so the modulus gets 512 bits.
		pair, err := generator.GenerateKeyPair(context.Background(), 513)
		require.NoError(t, err)
		assert.Equal(t, 512, pair.Public.N.BitLen())
	})

	t.Run("DefaultSizeWhenUnset", func(t *testing.T) {
		pair, err := generator.GenerateKeyPair(context.Background(), 0)
		require.NoError(t, err)
		assert.Equal(t, keys.DefaultKeySize, pair.Public.N.BitLen())
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := generator.GenerateKeyPair(ctx, testKeySize)
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("Async", func(t *testing.T) {
		results := generator.GenerateKeyPairAsync(context.Background(), testKeySize)

		select {
		case result := <-results:
			require.NoError(t, result.Err)
			require.NoError(t, result.KeyPair.Validate())
		case <-time.After(30 * time.Second):
			t.Fatal("timed out waiting for key generation")
		}

		// channel is closed after the single result
		_, open := <-results
		assert.False(t, open)
	})

	t.Run("AsyncIndependentGenerations", func(t *testing.T) {
		first := generator.GenerateKeyPairAsync(context.Background(), testKeySize)
		second := generator.GenerateKeyPairAsync(context.Background(), testKeySize)

		resultA := <-first
		resultB := <-second
		require.NoError(t, resultA.Err)
		require.NoError(t, resultB.Err)
		assert.NotEqual(t, 0, resultA.KeyPair.Public.N.Cmp(resultB.KeyPair.Public.N))
	})
}
