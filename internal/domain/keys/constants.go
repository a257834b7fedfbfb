package keys

// DefaultExponent is the public exponent used by the key generator.
const DefaultExponent = 65537

// DefaultKeySize is the modulus bit length used when no size is requested.
const DefaultKeySize = 2048

// KeyTypePublic represents a public key
const KeyTypePublic = "public"

// KeyTypePrivate represents a private key
const KeyTypePrivate = "private"
