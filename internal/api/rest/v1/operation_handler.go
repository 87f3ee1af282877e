package v1

import (
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gsutil-mirrors/rsa/internal/domain/crypto"
	"github.com/gsutil-mirrors/rsa/internal/domain/keys"
)

// OperationHandler defines the interface for applying stored key pairs to data
type OperationHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
	Sign(ctx *gin.Context)
	Verify(ctx *gin.Context)
}

// operationHandler struct holds the crypto operation service
type operationHandler struct {
	cryptoOperationService keys.CryptoOperationService
}

// NewOperationHandler creates a new OperationHandler
func NewOperationHandler(cryptoOperationService keys.CryptoOperationService) OperationHandler {
	return &operationHandler{
		cryptoOperationService: cryptoOperationService,
	}
}

// Encrypt handles the POST request to encrypt data with a stored key pair
// @Summary Encrypt data with the public half of a key pair
// @Description Encrypt base64 encoded data with PKCS#1 v1.5 using the public key of the pair.
// @Tags Operation
// @Accept json
// @Produce json
// @Param keyPairId path string true "Key Pair ID"
// @Param requestBody body EncryptRequest true "Encryption Payload"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /key-pairs/{keyPairId}/encrypt [post]
func (handler *operationHandler) Encrypt(ctx *gin.Context) {
	keyPairID := ctx.Param("keyPairId")

	var request EncryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err.Error())})
		return
	}

	data, err := base64.StdEncoding.DecodeString(request.Data)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "data must be base64 encoded"})
		return
	}

	ciphertext, err := handler.cryptoOperationService.Encrypt(ctx, keyPairID, data)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("encryption failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{Ciphertext: base64.StdEncoding.EncodeToString(ciphertext)})
}

// Decrypt handles the POST request to decrypt data with a stored key pair
// @Summary Decrypt data with the private half of a key pair
// @Description Decrypt base64 encoded PKCS#1 v1.5 ciphertext using the private key of the pair.
// @Tags Operation
// @Accept json
// @Produce json
// @Param keyPairId path string true "Key Pair ID"
// @Param requestBody body DecryptRequest true "Decryption Payload"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /key-pairs/{keyPairId}/decrypt [post]
func (handler *operationHandler) Decrypt(ctx *gin.Context) {
	keyPairID := ctx.Param("keyPairId")

	var request DecryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err.Error())})
		return
	}

	ciphertext, err := base64.StdEncoding.DecodeString(request.Ciphertext)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "ciphertext must be base64 encoded"})
		return
	}

	data, err := handler.cryptoOperationService.Decrypt(ctx, keyPairID, ciphertext)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("decryption failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{Data: base64.StdEncoding.EncodeToString(data)})
}

// Sign handles the POST request to sign a message with a stored key pair
// @Summary Sign a message with the private half of a key pair
// @Description Sign a base64 encoded message with PKCS#1 v1.5 using the private key of the pair.
// @Tags Operation
// @Accept json
// @Produce json
// @Param keyPairId path string true "Key Pair ID"
// @Param requestBody body SignRequest true "Signing Payload"
// @Success 200 {object} SignResponse
// @Failure 400 {object} ErrorResponse
// @Router /key-pairs/{keyPairId}/sign [post]
func (handler *operationHandler) Sign(ctx *gin.Context) {
	keyPairID := ctx.Param("keyPairId")

	var request SignRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err.Error())})
		return
	}

	if request.HashAlgorithm == "" {
		request.HashAlgorithm = crypto.HashSHA256
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("validation failed: %v", err.Error())})
		return
	}

	message, err := base64.StdEncoding.DecodeString(request.Message)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "message must be base64 encoded"})
		return
	}

	signature, err := handler.cryptoOperationService.Sign(ctx, keyPairID, message, request.HashAlgorithm)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("signing failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, SignResponse{Signature: base64.StdEncoding.EncodeToString(signature)})
}

// Verify handles the POST request to verify a signature with a stored key pair
// @Summary Verify a signature with the public half of a key pair
// @Description Verify a base64 encoded PKCS#1 v1.5 signature against a message using the public key of the pair.
// @Tags Operation
// @Accept json
// @Produce json
// @Param keyPairId path string true "Key Pair ID"
// @Param requestBody body VerifyRequest true "Verification Payload"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} ErrorResponse
// @Router /key-pairs/{keyPairId}/verify [post]
func (handler *operationHandler) Verify(ctx *gin.Context) {
	keyPairID := ctx.Param("keyPairId")

	var request VerifyRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("invalid request: %v", err.Error())})
		return
	}

	message, err := base64.StdEncoding.DecodeString(request.Message)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "message must be base64 encoded"})
		return
	}

	signature, err := base64.StdEncoding.DecodeString(request.Signature)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: "signature must be base64 encoded"})
		return
	}

	err = handler.cryptoOperationService.Verify(ctx, keyPairID, message, signature)
	if err != nil {
		if errors.Is(err, crypto.ErrVerification) {
			ctx.JSON(http.StatusOK, VerifyResponse{Valid: false})
			return
		}
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: fmt.Sprintf("verification failed: %v", err.Error())})
		return
	}

	ctx.JSON(http.StatusOK, VerifyResponse{Valid: true})
}
