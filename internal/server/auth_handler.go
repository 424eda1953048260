package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/interview-agent/internal/config"
)

// AuthHandler exchanges the shared reviewer passphrase for a session token.
type AuthHandler struct {
	passwordConfig *config.PasswordConfig
	passphraseHash string
	jwtService     *JWTService
	validator      *validator.Validate
}

// NewAuthHandler creates an AuthHandler verifying against the given bcrypt
// hash.
func NewAuthHandler(passwordConfig *config.PasswordConfig, passphraseHash string, jwtService *JWTService) *AuthHandler {
	return &AuthHandler{
		passwordConfig: passwordConfig,
		passphraseHash: passphraseHash,
		jwtService:     jwtService,
		validator:      validator.New(),
	}
}

type loginRequest struct {
	Passphrase string `json:"passphrase" validate:"required"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login handles reviewer login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	if !h.passwordConfig.VerifyPassphrase(req.Passphrase, h.passphraseHash) {
		err := &ErrInvalidCredentials{}
		http.Error(w, err.Error(), HTTPStatus(err))
		return
	}

	token, err := h.jwtService.GenerateToken()
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(loginResponse{Token: token}); err != nil {
		// Response already sent
		return
	}
}

// extractValidationErrors extracts validation error messages from validator
// errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
