package v1

import (
	"rsa_engine_service/internal/domain/keys"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	keyGenerator keys.KeyGenerator,
	keyCodec keys.KeyCodec,
	transformers keys.TransformerFactory) {

	v1 := r.Group(BasePath) // lookup in version file

	engineHandler := NewEngineHandler(keyGenerator, keyCodec, transformers)
	v1.POST("/keys", engineHandler.GenerateKeys)
	v1.POST("/encrypt", engineHandler.Encrypt)
	v1.POST("/decrypt", engineHandler.Decrypt)
	v1.POST("/sign", engineHandler.Sign)
	v1.POST("/verify", engineHandler.Verify)
}
