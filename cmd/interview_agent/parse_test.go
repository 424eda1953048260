package main

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildParseRequest(t *testing.T) {
	raw := []byte("resume bytes")

	t.Run("plain text file", func(t *testing.T) {
		req := buildParseRequest("/tmp/resume.txt", raw)

		assert.Equal(t, "resume bytes", req.Content)
		assert.Equal(t, "resume.txt", req.FileName)
		assert.Equal(t, "text/plain", req.DeclaredType)
		assert.False(t, req.IsEncoded)
	})

	t.Run("pdf is base64 encoded", func(t *testing.T) {
		req := buildParseRequest("/tmp/resume.pdf", raw)

		assert.Equal(t, base64.StdEncoding.EncodeToString(raw), req.Content)
		assert.Equal(t, "application/pdf", req.DeclaredType)
		assert.True(t, req.IsEncoded)
	})

	t.Run("docx is base64 encoded", func(t *testing.T) {
		req := buildParseRequest("/tmp/Resume.DOCX", raw)

		assert.True(t, req.IsEncoded)
		assert.Contains(t, req.DeclaredType, "wordprocessingml")
	})

	t.Run("unknown extension treated as text", func(t *testing.T) {
		req := buildParseRequest("/tmp/resume.md", raw)

		assert.False(t, req.IsEncoded)
		assert.Equal(t, "text/plain", req.DeclaredType)
	})
}

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.json")

	require.NoError(t, writeOutput(path, []byte(`{"ok":true}`)))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(data))
}
