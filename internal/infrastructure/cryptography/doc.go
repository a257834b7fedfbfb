// Package cryptography implements the engine core: the codec mapping
// application data onto the big-integer domain, probabilistic RSA key pair
// generation, the modular-exponentiation transform engine (encrypt, decrypt,
// sign, verify) and the Base64 key import/export codec.
//
// The RSA here is textbook (unpadded): deterministic, malleable and not a
// production security boundary. Arbitrary-precision arithmetic is delegated
// to math/big; primes come from crypto/rand.Prime.
package cryptography
