package media

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStorage(root)
	ctx := context.Background()

	p, err := s.Save(ctx, ResumeDir, "John Doe CV.pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(p, "resumes/"))
	assert.True(t, strings.HasSuffix(p, "-John_Doe_CV.pdf"))

	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(p)))
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(data))

	require.NoError(t, s.Delete(ctx, p))
	_, err = os.Stat(filepath.Join(root, filepath.FromSlash(p)))
	assert.True(t, os.IsNotExist(err))

	// deleting twice is fine
	assert.NoError(t, s.Delete(ctx, p))
}

func TestLocalStorage_SaveUniqueNames(t *testing.T) {
	s := NewLocalStorage(t.TempDir())

	first, err := s.Save(context.Background(), GalleryDir, "photo.png", strings.NewReader("a"))
	require.NoError(t, err)
	second, err := s.Save(context.Background(), GalleryDir, "photo.png", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalStorage_SaveStripsDirectories(t *testing.T) {
	root := t.TempDir()
	s := NewLocalStorage(root)

	p, err := s.Save(context.Background(), GalleryDir, `..\..\evil.png`, strings.NewReader("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p, "gallery/"))
	assert.True(t, strings.HasSuffix(p, "-evil.png"))

	p, err = s.Save(context.Background(), GalleryDir, "../../etc/passwd", strings.NewReader("x"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(p, "gallery/"))
	assert.NotContains(t, p, "..")
}

func TestLocalStorage_SaveRejectsEmptyName(t *testing.T) {
	s := NewLocalStorage(t.TempDir())

	_, err := s.Save(context.Background(), ResumeDir, "", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrFileNameMissing)
}

func TestLocalStorage_SaveCancelled(t *testing.T) {
	s := NewLocalStorage(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Save(ctx, ResumeDir, "cv.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
