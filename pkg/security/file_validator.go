package security

import (
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// FileInspection describes an uploaded file as declared by the client and as
// detected from its content.
type FileInspection struct {
	Filename     string
	Extension    string
	DeclaredMIME string
	DetectedMIME string
	ContentType  string // what gets forwarded with the attachment

	detected *mimetype.MIME
}

// Mismatch reports whether the declared type disagrees with the content
// (e.g. a .png that is really a zip). Uploads are still forwarded as-is.
func (f FileInspection) Mismatch() bool {
	if f.DeclaredMIME == "" || f.DeclaredMIME == "application/octet-stream" || f.detected == nil {
		return false
	}
	// docx is detected as docx but often declared as its zip parent
	for m := f.detected; m != nil; m = m.Parent() {
		if m.Is(f.DeclaredMIME) {
			return false
		}
	}
	return true
}

// InspectFile keeps the client's declared content type, since uploads are relayed
// unchanged, and falls back to content sniffing when none was sent.
func InspectFile(filename, declaredMIME string, data []byte) FileInspection {
	detected := mimetype.Detect(data)

	result := FileInspection{
		Filename:     filename,
		Extension:    strings.ToLower(filepath.Ext(filename)),
		DeclaredMIME: strings.TrimSpace(declaredMIME),
		DetectedMIME: detected.String(),
		detected:     detected,
	}

	result.ContentType = result.DeclaredMIME
	if result.ContentType == "" {
		result.ContentType = detected.String()
	}
	return result
}
