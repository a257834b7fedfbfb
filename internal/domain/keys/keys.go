package keys

import (
	"fmt"
	"math/big"
)

// PublicKey holds the public half of an RSA key pair. The generator always
// produces E = 65537, but imported keys may carry any compatible exponent.
// Fields are never mutated after construction.
type PublicKey struct {
	E *big.Int
	N *big.Int
}

// PrivateKey holds the private half of an RSA key pair: the private
// exponent D and the shared modulus N. Fields are never mutated after
// construction.
type PrivateKey struct {
	D *big.Int
	N *big.Int
}

// KeyPair bundles a public and private key sharing the same modulus,
// so that (m^E)^D ≡ m (mod N) for all m < N.
type KeyPair struct {
	Public  *PublicKey
	Private *PrivateKey
}

// KeyPairResult carries the outcome of an asynchronous key generation.
type KeyPairResult struct {
	KeyPair *KeyPair
	Err     error
}

// Validate checks that both exponent and modulus are present and positive.
func (k *PublicKey) Validate() error {
	if k.E == nil || k.E.Sign() <= 0 {
		return fmt.Errorf("public key: exponent must be a positive integer")
	}
	if k.N == nil || k.N.Sign() <= 0 {
		return fmt.Errorf("public key: modulus must be a positive integer")
	}
	return nil
}

// Validate checks that both exponent and modulus are present and positive.
func (k *PrivateKey) Validate() error {
	if k.D == nil || k.D.Sign() <= 0 {
		return fmt.Errorf("private key: exponent must be a positive integer")
	}
	if k.N == nil || k.N.Sign() <= 0 {
		return fmt.Errorf("private key: modulus must be a positive integer")
	}
	return nil
}

// Validate checks both halves of the pair and that they share a modulus.
func (p *KeyPair) Validate() error {
	if p.Public == nil || p.Private == nil {
		return fmt.Errorf("key pair: both public and private keys are required")
	}
	if err := p.Public.Validate(); err != nil {
		return err
	}
	if err := p.Private.Validate(); err != nil {
		return err
	}
	if p.Public.N.Cmp(p.Private.N) != 0 {
		return fmt.Errorf("key pair: public and private moduli differ")
	}
	return nil
}

// Equal reports whether two public keys have identical exponent and modulus.
func (k *PublicKey) Equal(other *PublicKey) bool {
	if other == nil {
		return false
	}
	return k.E.Cmp(other.E) == 0 && k.N.Cmp(other.N) == 0
}

// Equal reports whether two private keys have identical exponent and modulus.
func (k *PrivateKey) Equal(other *PrivateKey) bool {
	if other == nil {
		return false
	}
	return k.D.Cmp(other.D) == 0 && k.N.Cmp(other.N) == 0
}
