package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/gsutil-mirrors/rsa/internal/domain/keys"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	keyGenerationService keys.KeyGenerationService,
	keyDownloadService keys.KeyDownloadService,
	keyMetadataService keys.KeyMetadataService,
	cryptoOperationService keys.CryptoOperationService) {

	v1 := r.Group(BasePath) // lookup in version file

	// Keys Routes
	keyHandler := NewKeyHandler(keyGenerationService, keyDownloadService, keyMetadataService)
	v1.POST("/keys", keyHandler.GenerateKeys)
	v1.GET("/keys", keyHandler.ListMetadata)
	v1.GET("/keys/:id", keyHandler.GetMetadataByID)
	v1.GET("/keys/:id/file", keyHandler.DownloadByID)
	v1.DELETE("/keys/:id", keyHandler.DeleteByID)

	// Operation Routes
	operationHandler := NewOperationHandler(cryptoOperationService)
	v1.POST("/key-pairs/:keyPairId/encrypt", operationHandler.Encrypt)
	v1.POST("/key-pairs/:keyPairId/decrypt", operationHandler.Decrypt)
	v1.POST("/key-pairs/:keyPairId/sign", operationHandler.Sign)
	v1.POST("/key-pairs/:keyPairId/verify", operationHandler.Verify)
}
