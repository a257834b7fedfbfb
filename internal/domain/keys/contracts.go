package keys

import (
	"context"
)

// KeyGenerator defines methods for producing RSA key pairs.
type KeyGenerator interface {
	// GenerateKeyPair generates a key pair with the given total modulus bit
	// length. Each prime gets bits/2 bits (integer division, so an odd size
	// loses one bit). Prime search retries until the primes are distinct and
	// the public exponent is invertible mod phi(n); ctx is checked between
	// attempts.
	GenerateKeyPair(ctx context.Context, bits int) (*KeyPair, error)

	// GenerateKeyPairAsync runs GenerateKeyPair on its own goroutine and
	// returns a buffered channel that delivers the single result, so callers
	// can await completion without blocking other work.
	GenerateKeyPairAsync(ctx context.Context, bits int) <-chan KeyPairResult
}

// Transformer applies modular exponentiation to structured data. Instances
// carry zero, one or two keys, fixed at construction, and each operation
// requires the corresponding key to be loaded.
type Transformer interface {
	// Encrypt encodes data (string or JSON-serializable value) to an integer
	// and raises it to the public exponent. The result is a Base64 string of
	// the big-endian byte form. Requires a public key.
	Encrypt(data any) (string, error)

	// Decrypt reverses Encrypt with the private exponent and decodes the
	// recovered integer back to the original logical value. Requires a
	// private key.
	Decrypt(ciphertext string) (any, error)

	// Sign encodes data exactly as Encrypt does and raises it to the private
	// exponent. Requires a private key.
	Sign(data any) (string, error)

	// Verify re-encodes data and compares it against the signature raised to
	// the public exponent. Malformed signature input yields (false, nil);
	// verification is a predicate and never fails on attacker-controlled
	// input. Requires a public key.
	Verify(data any, signature string) (bool, error)
}

// TransformerFactory builds Transformers from exported key strings. Either
// string may be empty, leaving the corresponding key unloaded.
type TransformerFactory interface {
	FromStrings(publicKey, privateKey string) (Transformer, error)
}

// KeyCodec converts key material to and from the compact Base64 transport
// form: Base64 over a JSON object whose fields are decimal strings.
type KeyCodec interface {
	ExportPublicKey(key *PublicKey) (string, error)
	ExportPrivateKey(key *PrivateKey) (string, error)

	// ImportPublicKey reverses ExportPublicKey. Invalid Base64, invalid JSON
	// or non-decimal field values are hard errors; key material is never
	// silently accepted.
	ImportPublicKey(encoded string) (*PublicKey, error)

	// ImportPrivateKey reverses ExportPrivateKey. The exported forms carry no
	// self-describing tag, so the caller must pick the import matching the
	// key kind.
	ImportPrivateKey(encoded string) (*PrivateKey, error)
}
