package storage

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"voyago/travel-planner/internal/config"
)

// cloudinaryStorage implements the FileStorage interface using Cloudinary.
// Cloudinary handles image delivery/transformation itself, so there are no
// presigned URLs; uploads go through the server.
type cloudinaryStorage struct {
	cld    *cloudinary.Cloudinary
	folder string
}

// NewCloudinaryStorage creates a new Cloudinary storage service instance.
func NewCloudinaryStorage(cfg config.CloudinaryConfig) (FileStorage, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		log.Printf("ERROR: Failed to initialize Cloudinary: %v", err)
		return nil, err
	}

	log.Printf("Cloudinary storage initialized for cloud: %s, folder: %s", cfg.CloudName, cfg.Folder)

	return &cloudinaryStorage{
		cld:    cld,
		folder: cfg.Folder,
	}, nil
}

// Upload stores the blob under objectKey and returns its delivery URL.
func (c *cloudinaryStorage) Upload(ctx context.Context, objectKey string, contentType string, body io.Reader) (string, error) {
	resp, err := c.cld.Upload.Upload(ctx, body, uploader.UploadParams{
		PublicID: objectKey,
		Folder:   c.folder,
	})
	if err != nil {
		log.Printf("ERROR: Failed to upload '%s' to Cloudinary: %v", objectKey, err)
		return "", err
	}
	return resp.SecureURL, nil
}

// GeneratePresignedUploadURL is not available on Cloudinary.
func (c *cloudinaryStorage) GeneratePresignedUploadURL(ctx context.Context, objectKey string, contentType string, expires time.Duration) (string, error) {
	return "", ErrPresignUnsupported
}

// GeneratePresignedDownloadURL is not available on Cloudinary; delivery URLs
// returned by Upload are already public.
func (c *cloudinaryStorage) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	return "", ErrPresignUnsupported
}

// DeleteObject removes an asset by its public ID.
func (c *cloudinaryStorage) DeleteObject(ctx context.Context, objectKey string) error {
	_, err := c.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: objectKey,
	})
	if err != nil {
		log.Printf("ERROR: Failed to delete '%s' from Cloudinary: %v", objectKey, err)
		return err
	}
	return nil
}
