package cryptography

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"

	"rsa_engine_service/internal/domain/keys"
	"rsa_engine_service/internal/pkg/logger"
)

// keyGenerator struct that implements the keys.KeyGenerator interface
type keyGenerator struct {
	logger logger.Logger
}

// NewKeyGenerator creates and returns a new instance of keyGenerator
func NewKeyGenerator(logger logger.Logger) (keys.KeyGenerator, error) {
	return &keyGenerator{
		logger: logger,
	}, nil
}

// GenerateKeyPair generates an RSA key pair with the requested total modulus
// bit length (default 2048 when bits <= 0). Each prime receives bits/2 bits,
// so an odd bit length loses one bit. The generator draws primes from
// crypto/rand.Prime until they are distinct and 65537 is invertible mod
// phi(n); ctx is checked between attempts, which is the only cancellation
// point. The generator applies no minimum-size policy; callers validate
// sizes where policy applies.
func (g *keyGenerator) GenerateKeyPair(ctx context.Context, bits int) (*keys.KeyPair, error) {
	if bits <= 0 {
		bits = keys.DefaultKeySize
	}
	primeBits := bits / 2
	e := big.NewInt(keys.DefaultExponent)

	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("key generation canceled: %w", ctx.Err())
		default:
		}

		p, err := rand.Prime(rand.Reader, primeBits)
		if err != nil {
			return nil, fmt.Errorf("failed to generate prime: %w", err)
		}
		q, err := rand.Prime(rand.Reader, primeBits)
		if err != nil {
			return nil, fmt.Errorf("failed to generate prime: %w", err)
		}
		if p.Cmp(q) == 0 {
			continue
		}

		pMinusOne := new(big.Int).Sub(p, big.NewInt(1))
		qMinusOne := new(big.Int).Sub(q, big.NewInt(1))
		phi := new(big.Int).Mul(pMinusOne, qMinusOne)

		// ModInverse returns nil when gcd(e, phi) != 1; redraw primes.
		d := new(big.Int).ModInverse(e, phi)
		if d == nil {
			continue
		}

		n := new(big.Int).Mul(p, q)
		g.logger.Info("Generated RSA key pair with ", n.BitLen(), "-bit modulus")

		return &keys.KeyPair{
			Public:  &keys.PublicKey{E: e, N: n},
			Private: &keys.PrivateKey{D: d, N: n},
		}, nil
	}
}

// GenerateKeyPairAsync runs the prime search on its own goroutine so callers
// can await the result without blocking other work. The returned channel is
// buffered and closed after the single result is delivered.
func (g *keyGenerator) GenerateKeyPairAsync(ctx context.Context, bits int) <-chan keys.KeyPairResult {
	results := make(chan keys.KeyPairResult, 1)
	go func() {
		defer close(results)
		pair, err := g.GenerateKeyPair(ctx, bits)
		results <- keys.KeyPairResult{KeyPair: pair, Err: err}
	}()
	return results
}
