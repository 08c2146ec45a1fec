package infra

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStorage hands out presigned URLs so clients upload and download file
// bytes directly against the bucket; the API only stores file metadata.
type ObjectStorage interface {
	PresignedUploadURL(ctx context.Context, object string, expiry time.Duration) (string, error)
	PresignedDownloadURL(ctx context.Context, object string, expiry time.Duration) (string, error)
}

type minioStorage struct {
	client *minio.Client
	bucket string
}

func NewObjectStorage(cfg StorageConfig) (ObjectStorage, error) {
	// minio expects the endpoint without a scheme
	endpoint := strings.TrimPrefix(cfg.Endpoint, "http://")
	endpoint = strings.TrimPrefix(endpoint, "https://")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	return &minioStorage{client: client, bucket: cfg.Bucket}, nil
}

func (s *minioStorage) PresignedUploadURL(ctx context.Context, object string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedPutObject(ctx, s.bucket, object, expiry)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func (s *minioStorage) PresignedDownloadURL(ctx context.Context, object string, expiry time.Duration) (string, error) {
	u, err := s.client.PresignedGetObject(ctx, s.bucket, object, expiry, url.Values{})
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
