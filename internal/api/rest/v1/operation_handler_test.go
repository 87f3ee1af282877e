//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gsutil-mirrors/rsa/internal/domain/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func operationContext(t *testing.T, method, path, body string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{{Key: "keyPairId", Value: "pair-123"}}

	return c, w
}

func TestOperationHandler_Encrypt_Success(t *testing.T) {
	mockOperationService := new(MockCryptoOperationService)
	handler := NewOperationHandler(mockOperationService)

	data := []byte("hello")
	ciphertext := []byte("sealed")

	mockOperationService.
		On("Encrypt", mock.Anything, "pair-123", data).
		Return(ciphertext, nil)

	body := fmt.Sprintf(`{"data": %q}`, base64.StdEncoding.EncodeToString(data))
	c, w := operationContext(t, "POST", "/key-pairs/pair-123/encrypt", body)

	handler.Encrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), base64.StdEncoding.EncodeToString(ciphertext))
	mockOperationService.AssertExpectations(t)
}

func TestOperationHandler_Encrypt_InvalidBase64(t *testing.T) {
	mockOperationService := new(MockCryptoOperationService)
	handler := NewOperationHandler(mockOperationService)

	c, w := operationContext(t, "POST", "/key-pairs/pair-123/encrypt", `{"data": "not base64!!"}`)

	handler.Encrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockOperationService.AssertNotCalled(t, "Encrypt")
}

func TestOperationHandler_Encrypt_MissingData(t *testing.T) {
	mockOperationService := new(MockCryptoOperationService)
	handler := NewOperationHandler(mockOperationService)

	c, w := operationContext(t, "POST", "/key-pairs/pair-123/encrypt", `{}`)

	handler.Encrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockOperationService.AssertNotCalled(t, "Encrypt")
}

func TestOperationHandler_Decrypt_Success(t *testing.T) {
	mockOperationService := new(MockCryptoOperationService)
	handler := NewOperationHandler(mockOperationService)

	ciphertext := []byte("sealed")
	data := []byte("hello")

	mockOperationService.
		On("Decrypt", mock.Anything, "pair-123", ciphertext).
		Return(data, nil)

	body := fmt.Sprintf(`{"ciphertext": %q}`, base64.StdEncoding.EncodeToString(ciphertext))
	c, w := operationContext(t, "POST", "/key-pairs/pair-123/decrypt", body)

	handler.Decrypt(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), base64.StdEncoding.EncodeToString(data))
	mockOperationService.AssertExpectations(t)
}

func TestOperationHandler_Decrypt_Failure(t *testing.T) {
	mockOperationService := new(MockCryptoOperationService)
	handler := NewOperationHandler(mockOperationService)

	ciphertext := []byte("garbage")

	mockOperationService.
		On("Decrypt", mock.Anything, "pair-123", ciphertext).
		Return(nil, crypto.ErrDecryption)

	body := fmt.Sprintf(`{"ciphertext": %q}`, base64.StdEncoding.EncodeToString(ciphertext))
	c, w := operationContext(t, "POST", "/key-pairs/pair-123/decrypt", body)

	handler.Decrypt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "decryption failed")
}

func TestOperationHandler_Sign_Success(t *testing.T) {
	mockOperationService := new(MockCryptoOperationService)
	handler := NewOperationHandler(mockOperationService)

	message := []byte("payload")
	signature := []byte("signature")

	mockOperationService.
		On("Sign", mock.Anything, "pair-123", message, crypto.HashSHA256).
		Return(signature, nil)

	body := fmt.Sprintf(`{"message": %q, "hash_algorithm": "SHA-256"}`, base64.StdEncoding.EncodeToString(message))
	c, w := operationContext(t, "POST", "/key-pairs/pair-123/sign", body)

	handler.Sign(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), base64.StdEncoding.EncodeToString(signature))
	mockOperationService.AssertExpectations(t)
}

func TestOperationHandler_Sign_DefaultsToSHA256(t *testing.T) {
	mockOperationService := new(MockCryptoOperationService)
	handler := NewOperationHandler(mockOperationService)

	message := []byte("payload")

	mockOperationService.
		On("Sign", mock.Anything, "pair-123", message, crypto.HashSHA256).
		Return([]byte("signature"), nil)

	body := fmt.Sprintf(`{"message": %q}`, base64.StdEncoding.EncodeToString(message))
	c, w := operationContext(t, "POST", "/key-pairs/pair-123/sign", body)

	handler.Sign(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockOperationService.AssertExpectations(t)
}

func TestOperationHandler_Sign_UnknownHashAlgorithm(t *testing.T) {
	mockOperationService := new(MockCryptoOperationService)
	handler := NewOperationHandler(mockOperationService)

	body := fmt.Sprintf(`{"message": %q, "hash_algorithm": "SHA-3"}`, base64.StdEncoding.EncodeToString([]byte("payload")))
	c, w := operationContext(t, "POST", "/key-pairs/pair-123/sign", body)

	handler.Sign(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockOperationService.AssertNotCalled(t, "Sign")
}

func TestOperationHandler_Verify_Valid(t *testing.T) {
	mockOperationService := new(MockCryptoOperationService)
	handler := NewOperationHandler(mockOperationService)

	message := []byte("payload")
	signature := []byte("signature")

	mockOperationService.
		On("Verify", mock.Anything, "pair-123", message, signature).
		Return(nil)

	body := fmt.Sprintf(`{"message": %q, "signature": %q}`,
		base64.StdEncoding.EncodeToString(message), base64.StdEncoding.EncodeToString(signature))
	c, w := operationContext(t, "POST", "/key-pairs/pair-123/verify", body)

	handler.Verify(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":true`)
	mockOperationService.AssertExpectations(t)
}

func TestOperationHandler_Verify_Invalid(t *testing.T) {
	mockOperationService := new(MockCryptoOperationService)
	handler := NewOperationHandler(mockOperationService)

	message := []byte("payload")
	signature := []byte("forged")

	mockOperationService.
		On("Verify", mock.Anything, "pair-123", message, signature).
		Return(fmt.Errorf("%w", crypto.ErrVerification))

	body := fmt.Sprintf(`{"message": %q, "signature": %q}`,
		base64.StdEncoding.EncodeToString(message), base64.StdEncoding.EncodeToString(signature))
	c, w := operationContext(t, "POST", "/key-pairs/pair-123/verify", body)

	handler.Verify(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"valid":false`)
}

func TestOperationHandler_Verify_UnknownKeyPair(t *testing.T) {
	mockOperationService := new(MockCryptoOperationService)
	handler := NewOperationHandler(mockOperationService)

	message := []byte("payload")
	signature := []byte("signature")

	mockOperationService.
		On("Verify", mock.Anything, "pair-123", message, signature).
		Return(fmt.Errorf("public key for pair pair-123 not found"))

	body := fmt.Sprintf(`{"message": %q, "signature": %q}`,
		base64.StdEncoding.EncodeToString(message), base64.StdEncoding.EncodeToString(signature))
	c, w := operationContext(t, "POST", "/key-pairs/pair-123/verify", body)

	handler.Verify(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "verification failed")
}
