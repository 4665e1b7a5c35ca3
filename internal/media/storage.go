package media

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	ResumeDir  = "resumes"
	GalleryDir = "gallery"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Storage keeps uploaded files. Paths it returns are relative and slash separated.
type Storage interface {
	Save(ctx context.Context, dir, name string, r io.Reader) (string, error)
	Delete(ctx context.Context, p string) error
}

type localStorage struct {
	root string
}

func NewLocalStorage(root string) Storage {
	return &localStorage{root: root}
}

func (s *localStorage) Save(ctx context.Context, dir, name string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	clean := sanitizeName(name)
	if clean == "" {
		return "", ErrFileNameMissing
	}

	rel := path.Join(dir, uuid.NewString()+"-"+clean)
	full := filepath.Join(s.root, filepath.FromSlash(rel))

	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create media directory")
	}

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", errors.Wrap(err, "failed to create media file")
	}

	if _, err = io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(full)
		return "", errors.Wrap(err, "failed to write media file")
	}

	if err = f.Close(); err != nil {
		_ = os.Remove(full)
		return "", errors.Wrap(err, "failed to close media file")
	}

	return rel, nil
}

func (s *localStorage) Delete(_ context.Context, p string) error {
	full := filepath.Join(s.root, filepath.FromSlash(path.Clean("/"+p)))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "failed to delete media file")
	}
	return nil
}

func sanitizeName(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if base == "." || base == "/" {
		return ""
	}
	return strings.Trim(unsafeChars.ReplaceAllString(base, "_"), "_")
}
