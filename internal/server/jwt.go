package server

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jonathan/interview-agent/internal/config"
)

// reviewerSubject is the claims subject for reviewer session tokens. There is
// one shared reviewer role, not per-user accounts.
const reviewerSubject = "reviewer"

// JWTService issues and validates reviewer session tokens.
type JWTService struct {
	config *config.JWTConfig
}

// NewJWTService creates a JWT service with the given configuration.
func NewJWTService(cfg *config.JWTConfig) *JWTService {
	return &JWTService{config: cfg}
}

// GenerateToken issues a signed reviewer token.
func (s *JWTService) GenerateToken() (string, error) {
	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Subject:   reviewerSubject,
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL())),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken checks a token's signature, expiry and subject. Implements
// middleware.TokenValidator.
func (s *JWTService) ValidateToken(tokenString string) error {
	if tokenString == "" {
		return fmt.Errorf("token string is empty")
	}

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return fmt.Errorf("token is not valid")
	}
	if claims.Subject != reviewerSubject {
		return fmt.Errorf("unexpected token subject: %q", claims.Subject)
	}
	return nil
}
