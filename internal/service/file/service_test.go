package file

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStorage struct {
	uploadedPath        string
	uploadedContentType string
	deletedPath         string
}

func (f *fakeStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	f.uploadedPath = path
	f.uploadedContentType = contentType
	return path, nil
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error {
	f.deletedPath = path
	return nil
}

func (f *fakeStorage) GetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "http://localhost:8080/uploads/" + path, nil
}

func TestUploadStandupMedia_Audio(t *testing.T) {
	t.Parallel()

	storage := &fakeStorage{}
	svc := NewFileService(storage)
	date := time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC)

	path, err := svc.UploadStandupMedia(context.Background(), "user-1", date, strings.NewReader("data"), "recording.webm", "audio")

	require.NoError(t, err)
	assert.Equal(t, storage.uploadedPath, path)
	assert.Contains(t, path, "standups/user-1/2026-02-17-")
	assert.True(t, strings.HasSuffix(path, ".webm"))
	assert.Equal(t, "audio/webm", storage.uploadedContentType)
}

func TestUploadStandupMedia_Image(t *testing.T) {
	t.Parallel()

	storage := &fakeStorage{}
	svc := NewFileService(storage)
	date := time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC)

	path, err := svc.UploadStandupMedia(context.Background(), "user-1", date, strings.NewReader("data"), "whiteboard.png", "image")

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".png"))
	assert.Equal(t, "image/png", storage.uploadedContentType)
}

func TestUploadStandupMedia_RejectsMismatchedExtension(t *testing.T) {
	t.Parallel()

	svc := NewFileService(&fakeStorage{})
	date := time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC)

	// An image extension is not a valid audio upload, and vice versa
	_, err := svc.UploadStandupMedia(context.Background(), "user-1", date, strings.NewReader("data"), "photo.png", "audio")
	assert.Error(t, err)

	_, err = svc.UploadStandupMedia(context.Background(), "user-1", date, strings.NewReader("data"), "recording.mp3", "image")
	assert.Error(t, err)
}

func TestUploadStandupMedia_RejectsUnknownMediaType(t *testing.T) {
	t.Parallel()

	svc := NewFileService(&fakeStorage{})
	date := time.Date(2026, 2, 17, 0, 0, 0, 0, time.UTC)

	_, err := svc.UploadStandupMedia(context.Background(), "user-1", date, strings.NewReader("data"), "notes.pdf", "document")
	assert.Error(t, err)
}

func TestDeleteFile_DelegatesToStorage(t *testing.T) {
	t.Parallel()

	storage := &fakeStorage{}
	svc := NewFileService(storage)

	err := svc.DeleteFile(context.Background(), "standups/user-1/2026-02-17-x.webm")

	require.NoError(t, err)
	assert.Equal(t, "standups/user-1/2026-02-17-x.webm", storage.deletedPath)
}
