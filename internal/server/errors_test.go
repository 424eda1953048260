package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"invalid credentials", &ErrInvalidCredentials{}, http.StatusUnauthorized},
		{"not found", &ErrNotFound{Resource: "interview", ID: id}, http.StatusNotFound},
		{"validation", &ErrValidation{Field: "email", Message: "required"}, http.StatusBadRequest},
		{"upstream", &ErrUpstream{Cause: fmt.Errorf("timeout")}, http.StatusBadGateway},
		{"unknown", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestErrorMessages(t *testing.T) {
	id := uuid.New()

	assert.Contains(t, (&ErrNotFound{Resource: "interview", ID: id}).Error(), id.String())
	assert.Contains(t, (&ErrValidation{Field: "email", Message: "required"}).Error(), "email")

	upstream := &ErrUpstream{Cause: fmt.Errorf("timeout")}
	assert.Contains(t, upstream.Error(), "timeout")
	assert.Equal(t, "timeout", upstream.Unwrap().Error())
}
