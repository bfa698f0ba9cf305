package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"bwi2-seattrack/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// AttachmentService stores supporting documents in an S3-compatible object
// store and hands out time-limited retrieval URLs for notification payloads.
type AttachmentService struct {
	client        *minio.Client
	bucket        string
	presignExpiry time.Duration
}

// NewAttachmentService creates a new attachment service from the object
// store configuration.
func NewAttachmentService(cfg config.ObjectStoreConfig) (*AttachmentService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create object store client: %w", err)
	}

	log.Printf("✅ Object store configured [%s/%s]", cfg.Endpoint, cfg.Bucket)
	return &AttachmentService{
		client:        client,
		bucket:        cfg.Bucket,
		presignExpiry: time.Duration(cfg.PresignMinutes) * time.Minute,
	}, nil
}

// StoredAttachment describes an uploaded supporting document
type StoredAttachment struct {
	Key string
	URL string
}

// Store uploads the document under a timestamp + original-filename key and
// returns a presigned GET URL valid for the configured expiry.
func (s *AttachmentService) Store(ctx context.Context, filename string, size int64, reader io.Reader, contentType string) (*StoredAttachment, error) {
	key := fmt.Sprintf("%s_%s_%s",
		time.Now().UTC().Format("20060102T150405"),
		uuid.NewString()[:8],
		sanitizeFilename(filename),
	)

	if _, err := s.client.PutObject(ctx, s.bucket, key, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	}); err != nil {
		return nil, fmt.Errorf("failed to upload attachment: %w", err)
	}

	presigned, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.presignExpiry, url.Values{})
	if err != nil {
		return nil, fmt.Errorf("failed to presign attachment url: %w", err)
	}

	log.Printf("📎 Stored supporting document: %s", key)
	return &StoredAttachment{Key: key, URL: presigned.String()}, nil
}

// sanitizeFilename keeps object keys flat and free of path or whitespace
// surprises from user-supplied filenames.
func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	base = strings.ReplaceAll(base, " ", "_")
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "attachment"
	}
	return base
}
