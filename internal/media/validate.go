package media

import (
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

const (
	MaxResumeSize = 5 * 1024 * 1024
	MaxImageSize  = 10 * 1024 * 1024
)

var (
	ErrResumeNotPDF    = errors.New("Resume must be a PDF file")
	ErrResumeTooLarge  = errors.New("Resume size must be below 5MB")
	ErrImageNotImage   = errors.New("Upload a valid image. The file you uploaded was either not an image or a corrupted image.")
	ErrImageTooLarge   = errors.New("Image size must be below 10MB")
	ErrFileUnreadable  = errors.New("The submitted file could not be read")
	ErrFileNameMissing = errors.New("The submitted file has no name")
)

// ValidateResume accepts a resume when its name ends in .pdf (any case) and it is at most MaxResumeSize bytes.
func ValidateResume(name string, size int64) error {
	if !strings.HasSuffix(strings.ToLower(name), ".pdf") {
		return ErrResumeNotPDF
	}
	if size > MaxResumeSize {
		return ErrResumeTooLarge
	}
	return nil
}

// ValidateImage sniffs the content and rejects anything that is not image/*.
// r is consumed only up to the mimetype read limit.
func ValidateImage(r io.Reader, size int64) error {
	if size > MaxImageSize {
		return ErrImageTooLarge
	}

	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return ErrFileUnreadable
	}
	if !strings.HasPrefix(mt.String(), "image/") {
		return ErrImageNotImage
	}
	return nil
}
