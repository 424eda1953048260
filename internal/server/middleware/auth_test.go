package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubValidator struct {
	valid string
}

func (v *stubValidator) ValidateToken(token string) error {
	if token == v.valid {
		return nil
	}
	return fmt.Errorf("invalid token")
}

func TestRequireAuth(t *testing.T) {
	handler := RequireAuth(&stubValidator{valid: "good-token"})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))

	tests := []struct {
		name       string
		authHeader string
		expected   int
	}{
		{"no header", "", http.StatusUnauthorized},
		{"valid bearer", "Bearer good-token", http.StatusOK},
		{"lowercase bearer", "bearer good-token", http.StatusOK},
		{"wrong token", "Bearer bad-token", http.StatusUnauthorized},
		{"missing token", "Bearer", http.StatusUnauthorized},
		{"wrong scheme", "Basic good-token", http.StatusUnauthorized},
		{"extra parts", "Bearer good-token extra", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
