package storage

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"marketstall/internal/domain"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinioConfig carries connection settings for an S3-compatible store.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	UploadTTL time.Duration
}

type minioStore struct {
	client *minio.Client
	bucket string
	ttl    time.Duration
}

// NewMinio connects to the object store and ensures the bucket exists.
func NewMinio(ctx context.Context, cfg MinioConfig) (FileStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect object store: %w", err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %q: %w", cfg.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %q: %w", cfg.Bucket, err)
		}
	}

	ttl := cfg.UploadTTL
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &minioStore{client: client, bucket: cfg.Bucket, ttl: ttl}, nil
}

func (s *minioStore) GenerateUploadURL(ctx context.Context) (*UploadTarget, error) {
	storageID := uuid.NewString()
	u, err := s.client.PresignedPutObject(ctx, s.bucket, storageID, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("presign upload: %w", err)
	}
	return &UploadTarget{URL: u.String(), StorageID: storageID}, nil
}

func (s *minioStore) ResolveURL(ctx context.Context, storageID string) (string, error) {
	// Presigning alone would succeed for a deleted object, so check first.
	if _, err := s.client.StatObject(ctx, s.bucket, storageID, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return "", domain.ErrNotFound
		}
		return "", fmt.Errorf("stat %q: %w", storageID, err)
	}
	u, err := s.client.PresignedGetObject(ctx, s.bucket, storageID, s.ttl, url.Values{})
	if err != nil {
		return "", fmt.Errorf("presign get %q: %w", storageID, err)
	}
	return u.String(), nil
}

func (s *minioStore) Delete(ctx context.Context, storageID string) error {
	if err := s.client.RemoveObject(ctx, s.bucket, storageID, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("remove %q: %w", storageID, err)
	}
	return nil
}
