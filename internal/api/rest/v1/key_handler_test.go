//go:build unit
// +build unit

package v1

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gsutil-mirrors/rsa/internal/domain/keys"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testKeyMeta(keyType string) *keys.KeyMeta {
	return &keys.KeyMeta{
		ID:              "abc-123",
		KeyPairID:       "pair-123",
		Algorithm:       "RSA",
		KeySize:         2048,
		Type:            keyType,
		DateTimeCreated: time.Now(),
	}
}

func TestKeyHandler_GenerateKeys_Success(t *testing.T) {
	mockGenerationService := new(MockKeyGenerationService)
	mockDownloadService := new(MockKeyDownloadService)
	mockMetadataService := new(MockKeyMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockDownloadService, mockMetadataService)

	requestBody := `{"algorithm": "RSA", "key_size": 2048}`

	mockGenerationService.
		On("GenerateKeyPair", mock.Anything, uint32(2048)).
		Return([]*keys.KeyMeta{testKeyMeta("private"), testKeyMeta("public")}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keys", bytes.NewBufferString(requestBody))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GenerateKeys(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")
	mockGenerationService.AssertExpectations(t)
}

func TestKeyHandler_GenerateKeys_Defaults(t *testing.T) {
	mockGenerationService := new(MockKeyGenerationService)
	mockDownloadService := new(MockKeyDownloadService)
	mockMetadataService := new(MockKeyMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockDownloadService, mockMetadataService)

	mockGenerationService.
		On("GenerateKeyPair", mock.Anything, uint32(2048)).
		Return([]*keys.KeyMeta{testKeyMeta("private"), testKeyMeta("public")}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keys", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GenerateKeys(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockGenerationService.AssertExpectations(t)
}

func TestKeyHandler_GenerateKeys_InvalidKeySize(t *testing.T) {
	mockGenerationService := new(MockKeyGenerationService)
	mockDownloadService := new(MockKeyDownloadService)
	mockMetadataService := new(MockKeyMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockDownloadService, mockMetadataService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keys", bytes.NewBufferString(`{"key_size": 1234}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GenerateKeys(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation failed")
	mockGenerationService.AssertNotCalled(t, "GenerateKeyPair")
}

func TestKeyHandler_ListMetadata_Success(t *testing.T) {
	mockGenerationService := new(MockKeyGenerationService)
	mockDownloadService := new(MockKeyDownloadService)
	mockMetadataService := new(MockKeyMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockDownloadService, mockMetadataService)

	mockMetadataService.
		On("List", mock.Anything, mock.Anything).
		Return([]*keys.KeyMeta{testKeyMeta("private")}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListMetadata(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")
	mockMetadataService.AssertExpectations(t)
}

func TestKeyHandler_ListMetadata_InvalidQuery(t *testing.T) {
	mockGenerationService := new(MockKeyGenerationService)
	mockDownloadService := new(MockKeyDownloadService)
	mockMetadataService := new(MockKeyMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockDownloadService, mockMetadataService)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys?type=secret", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListMetadata(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockMetadataService.AssertNotCalled(t, "List")
}

func TestKeyHandler_GetMetadataByID_Success(t *testing.T) {
	mockGenerationService := new(MockKeyGenerationService)
	mockDownloadService := new(MockKeyDownloadService)
	mockMetadataService := new(MockKeyMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockDownloadService, mockMetadataService)

	mockMetadataService.
		On("GetByID", mock.Anything, "abc-123").
		Return(testKeyMeta("public"), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys/abc-123", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "abc-123"}}

	handler.GetMetadataByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pair-123")
	mockMetadataService.AssertExpectations(t)
}

func TestKeyHandler_GetMetadataByID_NotFound(t *testing.T) {
	mockGenerationService := new(MockKeyGenerationService)
	mockDownloadService := new(MockKeyDownloadService)
	mockMetadataService := new(MockKeyMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockDownloadService, mockMetadataService)

	mockMetadataService.
		On("GetByID", mock.Anything, "missing").
		Return(nil, errors.New("not found"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys/missing", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.GetMetadataByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestKeyHandler_DownloadByID_PublicKey(t *testing.T) {
	mockGenerationService := new(MockKeyGenerationService)
	mockDownloadService := new(MockKeyDownloadService)
	mockMetadataService := new(MockKeyMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockDownloadService, mockMetadataService)

	pemContent := []byte("-----BEGIN RSA PUBLIC KEY-----\nYWJj\n-----END RSA PUBLIC KEY-----\n")

	mockMetadataService.
		On("GetByID", mock.Anything, "abc-123").
		Return(testKeyMeta("public"), nil)
	mockDownloadService.
		On("DownloadByID", mock.Anything, "abc-123").
		Return(pemContent, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys/abc-123/file", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "abc-123"}}

	handler.DownloadByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/x-pem-file", w.Header().Get("Content-Type"))
	assert.Equal(t, string(pemContent), w.Body.String())
	mockDownloadService.AssertExpectations(t)
}

func TestKeyHandler_DownloadByID_PrivateKeyForbidden(t *testing.T) {
	mockGenerationService := new(MockKeyGenerationService)
	mockDownloadService := new(MockKeyDownloadService)
	mockMetadataService := new(MockKeyMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockDownloadService, mockMetadataService)

	mockMetadataService.
		On("GetByID", mock.Anything, "abc-123").
		Return(testKeyMeta("private"), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys/abc-123/file", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "abc-123"}}

	handler.DownloadByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "forbidden")
	mockDownloadService.AssertNotCalled(t, "DownloadByID")
}

func TestKeyHandler_DeleteByID_Success(t *testing.T) {
	mockGenerationService := new(MockKeyGenerationService)
	mockDownloadService := new(MockKeyDownloadService)
	mockMetadataService := new(MockKeyMetadataService)

	handler := NewKeyHandler(mockGenerationService, mockDownloadService, mockMetadataService)

	mockMetadataService.
		On("DeleteByID", mock.Anything, "abc-123").
		Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/keys/abc-123", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "abc-123"}}

	handler.DeleteByID(c)

	assert.Equal(t, http.StatusNoContent, w.Code)
	mockMetadataService.AssertExpectations(t)
}
