package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/yakoovad/orgsite/internal/service"
)

// formUpload opens the named multipart file. A missing file yields a nil upload
// so the service can report the field as required.
func formUpload(e echo.Context, field string) (*service.Upload, func(), error) {
	fh, err := e.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil, func() {}, nil
	}
	if err != nil {
		return nil, func() {}, service.NewError(service.ErrorCodeInvalidBody, "invalid multipart body")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, func() {}, service.NewFieldError(field, "The submitted file could not be read.")
	}

	return &service.Upload{
		Name:    fh.Filename,
		Size:    fh.Size,
		Content: f,
	}, func() { _ = f.Close() }, nil
}
