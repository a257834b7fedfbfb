//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockGenerator := new(MockKeyGenerator)
	mockCodec := new(MockKeyCodec)
	mockFactory := new(MockTransformerFactory)

	gin.SetMode(gin.TestMode)
	r := gin.New()

	SetupRoutes(r, mockGenerator, mockCodec, mockFactory)

	// Bodies fail validation on purpose; a registered route answers 400,
	// an unregistered one 404.
	tests := []struct {
		method string
		url    string
		body   string
	}{
		{"POST", "/api/v1/keys", `{"key_size": 7}`},
		{"POST", "/api/v1/encrypt", `{}`},
		{"POST", "/api/v1/decrypt", `{}`},
		{"POST", "/api/v1/sign", `{}`},
		{"POST", "/api/v1/verify", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
