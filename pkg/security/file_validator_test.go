package security

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var pngHeader = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}

func TestInspectFileKeepsDeclaredType(t *testing.T) {
	got := InspectFile("Logo.PNG", "image/png", pngHeader)

	assert.Equal(t, ".png", got.Extension)
	assert.Equal(t, "image/png", got.ContentType)
	assert.Equal(t, "image/png", got.DetectedMIME)
	assert.False(t, got.Mismatch())
}

func TestInspectFileFallsBackToDetection(t *testing.T) {
	got := InspectFile("logo", "", pngHeader)

	assert.Equal(t, "image/png", got.ContentType)
	assert.False(t, got.Mismatch())
}

func TestInspectFileFlagsSpoofedType(t *testing.T) {
	got := InspectFile("logo.jpg", "image/jpeg", []byte("%PDF-1.7\n%âãÏÓ\n"))

	assert.Equal(t, "image/jpeg", got.ContentType)
	assert.Equal(t, "application/pdf", got.DetectedMIME)
	assert.True(t, got.Mismatch())
}

func TestInspectFileOctetStreamIsNeverMismatch(t *testing.T) {
	got := InspectFile("logo.ai", "application/octet-stream", pngHeader)

	assert.Equal(t, "application/octet-stream", got.ContentType)
	assert.False(t, got.Mismatch())
}
