// Package resume converts resumes between transport encoding (base64 text)
// and storage encoding (raw bytes) and builds the download headers. The
// payload itself is treated as an opaque blob.
package resume

import (
	"encoding/base64"
	"fmt"

	"github.com/jobdeck/jobdeck-api/internal/apperr"
)

const (
	DefaultContentType = "application/pdf"
	DefaultFilename    = "resume.pdf"

	// MaxUploadSize caps decoded resume payloads at 5 MiB.
	MaxUploadSize = 5 << 20
)

// Decode turns the transport form back into raw bytes.
func Decode(encoded string) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: resume is not valid base64", apperr.ErrInvalidInput)
	}
	return data, nil
}

// Encode is the inverse of Decode and never fails.
func Encode(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// ValidateUpload enforces the upload rules before anything is stored: PDF
// only, and no more than MaxUploadSize decoded bytes.
func ValidateUpload(data []byte, contentType *string) error {
	if len(data) > MaxUploadSize {
		return fmt.Errorf("%w: resume exceeds the 5 MiB limit", apperr.ErrInvalidInput)
	}
	if contentType != nil && *contentType != DefaultContentType {
		return fmt.Errorf("%w: only PDF resumes are accepted", apperr.ErrInvalidInput)
	}
	return nil
}

// ContentType returns the stored content type, defaulting to PDF.
func ContentType(stored *string) string {
	if stored != nil && *stored != "" {
		return *stored
	}
	return DefaultContentType
}

// Filename returns the stored filename, defaulting to resume.pdf.
func Filename(stored *string) string {
	if stored != nil && *stored != "" {
		return *stored
	}
	return DefaultFilename
}

// ContentDisposition builds the inline disposition header for downloads.
func ContentDisposition(stored *string) string {
	return fmt.Sprintf("inline; filename=%q", Filename(stored))
}
