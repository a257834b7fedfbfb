// Package keys defines the RSA key model and the contracts for key
// generation, data transformation (encrypt, decrypt, sign, verify) and
// key import/export used throughout the engine.
package keys
