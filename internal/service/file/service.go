package file

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/teampulse/standup-backend-go/internal/pkg/storage"
)

var (
	audioExts = []string{".mp3", ".m4a", ".ogg", ".wav", ".webm"}
	imageExts = []string{".jpg", ".jpeg", ".png"}
)

type FileService interface {
	// Standup media uploads (audio recordings and whiteboard photos)
	UploadStandupMedia(ctx context.Context, userID string, date time.Time, file io.Reader, filename string, mediaType string) (string, error)

	// Generic operations
	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadStandupMedia uploads a standup audio/image attachment
func (s *fileServiceImpl) UploadStandupMedia(ctx context.Context, userID string, date time.Time, file io.Reader, filename string, mediaType string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	var allowed []string
	switch mediaType {
	case "audio":
		allowed = audioExts
	case "image":
		allowed = imageExts
	default:
		return "", fmt.Errorf("invalid media type: %s", mediaType)
	}

	isValid := false
	for _, a := range allowed {
		if ext == a {
			isValid = true
			break
		}
	}
	if !isValid {
		return "", fmt.Errorf("invalid file type %s for %s upload", ext, mediaType)
	}

	uniqueID := uuid.New().String()
	newFilename := fmt.Sprintf("%s-%s%s", date.Format("2006-01-02"), uniqueID, ext)
	path := filepath.Join("standups", userID, newFilename)

	contentType := contentTypeForExt(ext)

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload standup media: %w", err)
	}

	return uploadedPath, nil
}

func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".mp3":
		return "audio/mpeg"
	case ".m4a":
		return "audio/mp4"
	case ".ogg":
		return "audio/ogg"
	case ".wav":
		return "audio/wav"
	case ".webm":
		return "audio/webm"
	default:
		return "application/octet-stream"
	}
}
