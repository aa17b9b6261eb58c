package gallery

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/safe/backend/internal/domain/identity"
	"github.com/safe/backend/internal/domain/shared"
)

// ObjectStorage abstracts the object store used for post images
type ObjectStorage interface {
	// GenerateUploadURL returns a presigned PUT URL for the given key
	GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error)

	// GenerateDownloadURL returns a presigned GET URL for the given key
	GenerateDownloadURL(ctx context.Context, storageKey string, expiresIn time.Duration) (string, time.Time, error)

	// DeleteObject removes an object
	DeleteObject(ctx context.Context, storageKey string) error

	// ObjectExists checks if an object exists
	ObjectExists(ctx context.Context, storageKey string) (bool, error)
}

// Content types accepted for post images
var allowedImageTypes = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

// PresignUploadInput contains input for an upload URL request
type PresignUploadInput struct {
	FileName    string
	ContentType string
}

// PresignUploadResult contains the presigned upload target
type PresignUploadResult struct {
	UploadURL  string    `json:"upload_url"`
	StorageKey string    `json:"storage_key"`
	ImageURL   string    `json:"image_url"`
	ExpiresAt  time.Time `json:"expires_at"`
}

// UploadServiceConfig holds upload service settings
type UploadServiceConfig struct {
	PresignExpiry time.Duration
	PublicBaseURL string
}

// UploadService issues presigned upload URLs for post images
type UploadService struct {
	storage ObjectStorage
	config  UploadServiceConfig
	logger  *zap.Logger
}

// NewUploadService creates a new upload service
func NewUploadService(storage ObjectStorage, config UploadServiceConfig, logger *zap.Logger) *UploadService {
	if config.PresignExpiry <= 0 {
		config.PresignExpiry = 15 * time.Minute
	}
	return &UploadService{
		storage: storage,
		config:  config,
		logger:  logger,
	}
}

// PresignUpload returns a presigned PUT URL for an image the caller is
// about to upload. Keys are namespaced per user so uploads never collide
// across accounts.
func (s *UploadService) PresignUpload(ctx context.Context, caller identity.Caller, input PresignUploadInput) (*PresignUploadResult, error) {
	ext, ok := allowedImageTypes[strings.ToLower(strings.TrimSpace(input.ContentType))]
	if !ok {
		return nil, shared.NewDomainError("UNSUPPORTED_CONTENT_TYPE", "Only JPEG, PNG, WebP and GIF images can be uploaded")
	}

	key := fmt.Sprintf("%s/%d.%s", caller.UserID, time.Now().UnixNano(), ext)

	uploadURL, expiresAt, err := s.storage.GenerateUploadURL(ctx, key, input.ContentType, s.config.PresignExpiry)
	if err != nil {
		s.logger.Error("Failed to presign upload",
			zap.String("user_id", caller.UserID.String()),
			zap.Error(err))
		return nil, err
	}

	return &PresignUploadResult{
		UploadURL:  uploadURL,
		StorageKey: key,
		ImageURL:   s.imageURL(ctx, key, expiresAt),
		ExpiresAt:  expiresAt,
	}, nil
}

// imageURL derives the URL under which the uploaded image will be served.
// With a public base URL the object is addressed directly; otherwise a
// presigned download URL is issued.
func (s *UploadService) imageURL(ctx context.Context, key string, expiresAt time.Time) string {
	if s.config.PublicBaseURL != "" {
		base := strings.TrimSuffix(s.config.PublicBaseURL, "/")
		return base + "/" + path.Clean(key)
	}

	url, _, err := s.storage.GenerateDownloadURL(ctx, key, time.Until(expiresAt))
	if err != nil {
		s.logger.Warn("Failed to presign download", zap.String("key", key), zap.Error(err))
		return ""
	}
	return url
}
