package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"sungraze_backend/pkg/config"
)

var ErrNotConfigured = errors.New("object storage is not configured")

// ObjectStore reads and writes objects in a Cloudflare R2 bucket through the
// S3 API.
type ObjectStore struct {
	client *s3.Client
	bucket string
}

func NewObjectStore(ctx context.Context, cfg config.StorageConfig) (*ObjectStore, error) {
	if cfg.AccountID == "" || cfg.Bucket == "" {
		return nil, ErrNotConfigured
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID))
		o.UsePathStyle = true
		o.Region = "auto"
	})

	return &ObjectStore{client: client, bucket: cfg.Bucket}, nil
}

// GetObject downloads a whole object into memory.
func (s *ObjectStore) GetObject(ctx context.Context, key string) ([]byte, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("could not get %s from R2: %w", key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read %s: %w", key, err)
	}
	return data, nil
}

// PutObject uploads body under key.
func (s *ObjectStore) PutObject(ctx context.Context, key string, body []byte, contentType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("could not upload %s to R2: %w", key, err)
	}
	return nil
}
