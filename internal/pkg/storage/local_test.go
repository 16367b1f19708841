package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()

	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	return s
}

func TestLocalStorage_UploadAndDelete(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)
	ctx := context.Background()

	path, err := s.Upload(ctx, strings.NewReader("audio bytes"), "standups/user-1/2026-02-17-x.webm", "audio/webm")
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(s.basePath, path))
	require.NoError(t, err)
	assert.Equal(t, "audio bytes", string(data))

	require.NoError(t, s.Delete(ctx, path))
	_, err = os.Stat(filepath.Join(s.basePath, path))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_DeleteMissingFileIsNoop(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)

	assert.NoError(t, s.Delete(context.Background(), "standups/user-1/gone.webm"))
}

func TestLocalStorage_UploadRejectsTraversal(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)

	_, err := s.Upload(context.Background(), strings.NewReader("x"), "../../etc/passwd", "text/plain")
	assert.Error(t, err)
}

func TestLocalStorage_GetURL(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)

	url, err := s.GetURL(context.Background(), "standups/user-1/2026-02-17-x.webm", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/standups/user-1/2026-02-17-x.webm", url)
}
