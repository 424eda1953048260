package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		json  bool
		debug bool
		level zapcore.Level
	}{
		{"console info", false, false, zapcore.InfoLevel},
		{"json info", true, false, zapcore.InfoLevel},
		{"console debug", false, true, zapcore.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(tt.json, tt.debug)
			require.NoError(t, err)
			assert.True(t, log.Core().Enabled(tt.level))
			if tt.level == zapcore.InfoLevel {
				assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
			}
		})
	}
}

func TestTruncateForLog(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		limit    int
		expected string
	}{
		{"shorter than limit", "abc", 10, "abc"},
		{"exactly limit", "abcde", 5, "abcde"},
		{"truncated", "abcdefgh", 5, "abcde..."},
		{"trims whitespace first", "  abc  ", 10, "abc"},
		{"zero limit", "abc", 0, ""},
		{"multibyte runes", "résumé text here", 6, "résumé..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateForLog(tt.in, tt.limit))
		})
	}
}
