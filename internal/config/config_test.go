package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("REVIEWER_PASSWORD_HASH", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.APIKey)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/interviews")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("REVIEWER_PASSWORD_HASH", "$2a$12$abcdefghijklmnopqrstuv")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost:5432/interviews", cfg.DatabaseURL)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.NoError(t, cfg.RequireServer())
}

func TestLoad_InvalidPort(t *testing.T) {
	tests := []struct {
		name string
		port string
	}{
		{"not a number", "eight thousand"},
		{"zero", "0"},
		{"negative", "-1"},
		{"too large", "70000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("PORT", tt.port)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestConfig_RequireServer(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			"missing api key",
			Config{Port: 8080, DatabaseURL: "postgres://x", ReviewerPasswordHash: "hash"},
			"GEMINI_API_KEY",
		},
		{
			"missing database url",
			Config{Port: 8080, APIKey: "k", ReviewerPasswordHash: "hash"},
			"DATABASE_URL",
		},
		{
			"missing reviewer hash",
			Config{Port: 8080, APIKey: "k", DatabaseURL: "postgres://x"},
			"REVIEWER_PASSWORD_HASH",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.RequireServer()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_RequireAPIKey(t *testing.T) {
	cfg := Config{Port: 8080, APIKey: "k"}
	assert.NoError(t, cfg.RequireAPIKey())

	cfg.APIKey = ""
	assert.Error(t, cfg.RequireAPIKey())
}
