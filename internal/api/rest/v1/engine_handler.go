package v1

import (
	"fmt"
	"net/http"

	"rsa_engine_service/internal/domain/keys"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// EngineHandler defines the interface for handling RSA engine operations
type EngineHandler interface {
	GenerateKeys(ctx *gin.Context)
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
}

// engineHandler struct holds the key generator, key codec and transformer factory
type engineHandler struct {
	keyGenerator keys.KeyGenerator
	keyCodec     keys.KeyCodec
	transformers keys.TransformerFactory
}

// NewEngineHandler creates a new EngineHandler
func NewEngineHandler(keyGenerator keys.KeyGenerator, keyCodec keys.KeyCodec, transformers keys.TransformerFactory) EngineHandler {
	return &engineHandler{
		keyGenerator: keyGenerator,
		keyCodec:     keyCodec,
		transformers: transformers,
	}
}

// GenerateKeys handles the POST request to generate an RSA key pair
// @Summary Generate an RSA key pair
// @Description Generate a key pair of the requested modulus bit length and return both halves as Base64 export strings.
// @Tags Engine
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeysRequest true "Key generation parameters"
// @Success 201 {object} GenerateKeysResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *engineHandler) GenerateKeys(ctx *gin.Context) {
	var request GenerateKeysRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, fmt.Sprintf("invalid key generation request: %v", err))
		return
	}

	if err := request.Validate(); err != nil {
		respondError(ctx, fmt.Sprintf("validation failed: %v", err))
		return
	}

	keySize := int(request.KeySize)
	if keySize == 0 {
		keySize = keys.DefaultKeySize
	}

	pair, err := handler.keyGenerator.GenerateKeyPair(ctx, keySize)
	if err != nil {
		respondError(ctx, fmt.Sprintf("error generating key pair: %v", err))
		return
	}

	publicKey, err := handler.keyCodec.ExportPublicKey(pair.Public)
	if err != nil {
		respondError(ctx, fmt.Sprintf("error exporting public key: %v", err))
		return
	}
	privateKey, err := handler.keyCodec.ExportPrivateKey(pair.Private)
	if err != nil {
		respondError(ctx, fmt.Sprintf("error exporting private key: %v", err))
		return
	}

	ctx.JSON(http.StatusCreated, GenerateKeysResponse{
		KeyPairID:  uuid.New().String(),
		KeySize:    keySize,
		PublicKey:  publicKey,
		PrivateKey: privateKey,
	})
}

// Encrypt handles the POST request to encrypt data under a public key
// @Summary Encrypt data
// @Description Encrypt a string or JSON value under an exported public key string.
// @Tags Engine
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Data and public key"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /encrypt [post]
func (handler *engineHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, fmt.Sprintf("invalid encrypt request: %v", err))
		return
	}

	if err := request.Validate(); err != nil {
		respondError(ctx, fmt.Sprintf("validation failed: %v", err))
		return
	}

	engine, err := handler.transformers.FromStrings(request.PublicKey, "")
	if err != nil {
		respondError(ctx, fmt.Sprintf("error loading public key: %v", err))
		return
	}

	ciphertext, err := engine.Encrypt(request.Data)
	if err != nil {
		respondError(ctx, fmt.Sprintf("error encrypting data: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{Ciphertext: ciphertext})
}

// Decrypt handles the POST request to decrypt a ciphertext string
// @Summary Decrypt a ciphertext
// @Description Decrypt a ciphertext transport string under an exported private key string.
// @Tags Engine
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Ciphertext and private key"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /decrypt [post]
func (handler *engineHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, fmt.Sprintf("invalid decrypt request: %v", err))
		return
	}

	if err := request.Validate(); err != nil {
		respondError(ctx, fmt.Sprintf("validation failed: %v", err))
		return
	}

	engine, err := handler.transformers.FromStrings("", request.PrivateKey)
	if err != nil {
		respondError(ctx, fmt.Sprintf("error loading private key: %v", err))
		return
	}

	data, err := engine.Decrypt(request.Ciphertext)
	if err != nil {
		respondError(ctx, fmt.Sprintf("error decrypting data: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{Data: data})
}

// Sign handles the POST request to sign data under a private key
// @Summary Sign data
// @Description Sign a string or JSON value under an exported private key string.
// @Tags Engine
// @Accept json
// @Produce json
// @Param requestBody body SignRequest true "Data and private key"
// @Success 200 {object} SignResponse
// @Failure 400 {object} ErrorResponse
// @Router /sign [post]
func (handler *engineHandler) Sign(ctx *gin.Context) {
	var request SignRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, fmt.Sprintf("invalid sign request: %v", err))
		return
	}

	if err := request.Validate(); err != nil {
		respondError(ctx, fmt.Sprintf("validation failed: %v", err))
		return
	}

	engine, err := handler.transformers.FromStrings("", request.PrivateKey)
	if err != nil {
		respondError(ctx, fmt.Sprintf("error loading private key: %v", err))
		return
	}

	signature, err := engine.Sign(request.Data)
	if err != nil {
		respondError(ctx, fmt.Sprintf("error signing data: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, SignResponse{Signature: signature})
}

// Verify handles the POST request to verify a signature
// @Summary Verify a signature
// @Description Check a signature string against data under an exported public key string. A malformed signature yields valid=false, not an error.
// @Tags Engine
// @Accept json
// @Produce json
// @Param requestBody body VerifyRequest true "Data, signature and public key"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /verify [post]
func (handler *engineHandler) Verify(ctx *gin.Context) {
	var request VerifyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, fmt.Sprintf("invalid verify request: %v", err))
		return
	}

	if err := request.Validate(); err != nil {
		respondError(ctx, fmt.Sprintf("validation failed: %v", err))
		return
	}

	engine, err := handler.transformers.FromStrings(request.PublicKey, "")
	if err != nil {
		respondError(ctx, fmt.Sprintf("error loading public key: %v", err))
		return
	}

	valid, err := engine.Verify(request.Data, request.Signature)
	if err != nil {
		respondError(ctx, fmt.Sprintf("error verifying signature: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{Valid: valid})
}

func respondError(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: message})
}
