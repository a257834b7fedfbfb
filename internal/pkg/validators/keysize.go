package validators

import (
	"github.com/go-playground/validator/v10"
)

// RSAKeySizeValidation validates the modulus bit length requested for key
// generation. The engine core accepts any size; this policy applies only at
// the API and CLI boundaries.
func RSAKeySizeValidation(fl validator.FieldLevel) bool {
	keySize := fl.Field().Uint()

	switch keySize {
	case 512, 1024, 2048, 3072, 4096:
		return true
	default:
		return false
	}
}
