package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Default expiry duration for presigned URLs
const DefaultPresignedURLExpiry = 15 * time.Minute

// ErrPresignUnsupported is returned by providers that cannot hand out
// presigned URLs; callers fall back to server-side Upload.
var ErrPresignUnsupported = errors.New("presigned URLs not supported by this storage provider")

// FileStorage is the binary asset store behind cover images and activity
// photos: a blob goes in at a caller-chosen key, a retrievable URL comes out.
type FileStorage interface {
	// Upload stores the blob under objectKey and returns the URL it can be
	// retrieved at.
	Upload(ctx context.Context, objectKey string, contentType string, body io.Reader) (string, error)

	// GeneratePresignedUploadURL creates a temporary URL that allows PUT
	// requests for uploading an object directly to the storage provider.
	GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error)

	// GeneratePresignedDownloadURL creates a temporary URL that allows GET
	// requests for downloading an object directly from the storage provider.
	GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error)

	// DeleteObject removes an object from the storage provider.
	DeleteObject(ctx context.Context, objectKey string) error
}
