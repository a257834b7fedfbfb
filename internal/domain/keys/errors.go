package keys

import "errors"

// ErrNoPublicKey is returned when an operation that needs a public key
// (encrypt, verify) is invoked on an engine constructed without one.
var ErrNoPublicKey = errors.New("no public key loaded")

// ErrNoPrivateKey is returned when an operation that needs a private key
// (decrypt, sign) is invoked on an engine constructed without one.
var ErrNoPrivateKey = errors.New("no private key loaded")

// ErrMessageTooLarge is returned by encrypt when the encoded plaintext
// integer is not smaller than the modulus. Unpadded RSA cannot represent
// values >= n; callers must chunk the data or use a larger key.
var ErrMessageTooLarge = errors.New("data too large for key size")
