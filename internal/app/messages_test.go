package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileTooLarge(t *testing.T) {
	assert.Equal(t, `🚫 File "name.pdf" exceeds 50MB limit.`, FileTooLarge("name.pdf", 50*1024*1024))
	assert.Equal(t, `🚫 File "a.pdf" exceeds 10MB limit.`, FileTooLarge("a.pdf", 10<<20))
	assert.Equal(t, `🚫 File "a.pdf" exceeds 0.5MB limit.`, FileTooLarge("a.pdf", 512*1024))
}

func TestTooManyFiles(t *testing.T) {
	assert.Equal(t, "🚫 Too many files. Maximum is 10.", TooManyFiles(10))
}

func TestFileNotPDF(t *testing.T) {
	assert.Equal(t, `🚫 File "notes.txt" is not a PDF.`, FileNotPDF("notes.txt"))
}

func TestNetworkError(t *testing.T) {
	assert.Equal(t, "❌ Network error: connection refused", NetworkError("connection refused"))
}

func TestAuthFailed(t *testing.T) {
	assert.Equal(t, "Authentication failed (csrf_state_mismatch). Please sign in again.", AuthFailed("csrf_state_mismatch"))
}
