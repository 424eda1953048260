// Package normalize turns raw uploaded resume content into a best-effort
// printable text buffer. PDF and DOCX uploads arrive as opaque base64 blobs;
// no structural parsing is attempted, only printable-text recovery.
package normalize

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	// maxEncodedLen caps how much of an encoded payload is decoded
	maxEncodedLen = 200000
	// minPrintableLen is the minimum recovered text length considered usable
	minPrintableLen = 100
	// placeholderSampleLen is how much raw payload the placeholder embeds
	placeholderSampleLen = 10000
)

// Normalize converts uploaded content into printable text. Plain text passes
// through unchanged. Encoded content is base64-decoded with every byte outside
// printable ASCII (plus tab/newline/carriage-return) replaced by a space. When
// decoding fails or recovers too little text, a synthetic placeholder is
// returned so downstream model extraction still has something to reason over.
// Never fails; always returns a string.
func Normalize(content, declaredType string, isEncoded bool) string {
	if !isEncoded || content == "" {
		return content
	}

	slice := content
	if len(slice) > maxEncodedLen {
		slice = slice[:maxEncodedLen]
	}

	printable := decodePrintable(slice)
	if len(strings.TrimSpace(printable)) > minPrintableLen {
		return printable
	}

	return placeholder(content, declaredType)
}

// decodePrintable base64-decodes the payload and strips unprintable bytes.
// Returns empty string when the payload is not valid base64.
func decodePrintable(payload string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, payload)

	decoded, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		decoded, err = base64.RawStdEncoding.DecodeString(cleaned)
		if err != nil {
			return ""
		}
	}

	out := make([]byte, len(decoded))
	for i, b := range decoded {
		if b == '\t' || b == '\n' || b == '\r' || (b >= 0x20 && b <= 0x7E) {
			out[i] = b
		} else {
			out[i] = ' '
		}
	}
	return string(out)
}

// placeholder builds the fallback text for undecodable uploads. Heuristic
// extraction finds nothing meaningful in it, which is the intended outcome.
func placeholder(content, declaredType string) string {
	kind := "document"
	lower := strings.ToLower(declaredType)
	switch {
	case strings.Contains(lower, "pdf"):
		kind = "PDF"
	case strings.Contains(lower, "word"), strings.Contains(lower, "docx"):
		kind = "DOCX"
	case declaredType != "":
		kind = declaredType
	}

	sample := content
	if len(sample) > placeholderSampleLen {
		sample = sample[:placeholderSampleLen]
	}

	return fmt.Sprintf("This is a %s resume file. The content below is base64 encoded. Try to infer readable text.\n\nBase64 sample (first %d chars):\n%s",
		kind, placeholderSampleLen, sample)
}
