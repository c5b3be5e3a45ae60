package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Config configures the sanction-letter bucket. EndpointURL and the static
// credentials are for S3-compatible servers (e.g. "http://127.0.0.1:9000"
// for minio); leave them empty to use the ambient AWS credential chain.
type S3Config struct {
	Bucket      string
	Region      string
	EndpointURL string
	AccessKey   string
	SecretKey   string
}

// S3Store is an ObjectStore backed by an S3 bucket.
type S3Store struct {
	cfg    S3Config
	client *s3.Client
}

func NewS3Store(cfg S3Config) *S3Store {
	client := s3.NewFromConfig(aws.Config{Region: cfg.Region}, func(o *s3.Options) {
		if cfg.EndpointURL != "" {
			o.BaseEndpoint = aws.String(cfg.EndpointURL)
		}
		if cfg.AccessKey != "" {
			o.Credentials = credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")
		}
	})
	return &S3Store{cfg: cfg, client: client}
}

func (s *S3Store) Put(ctx context.Context, key string, data []byte) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", key, err)
	}
	return s.url(key), nil
}

func (s *S3Store) url(key string) string {
	if s.cfg.EndpointURL != "" {
		return fmt.Sprintf("%s/%s/%s", s.cfg.EndpointURL, s.cfg.Bucket, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.cfg.Bucket, s.cfg.Region, key)
}
