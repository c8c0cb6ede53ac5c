package adapter

import (
	"CivicConnectAPI/internal/config"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type StorageAdapter struct {
	client       *s3.Client
	bucket       string
	region       string
	endpoint     string
	publicDomain string
}

func NewStorageAdapter(cfg *config.AppConfig, s3Client *s3.Client) *StorageAdapter {
	return &StorageAdapter{
		client:       s3Client,
		bucket:       cfg.S3Bucket,
		region:       cfg.S3Region,
		endpoint:     cfg.S3Endpoint,
		publicDomain: cfg.S3PublicDomain,
	}
}

func (s *StorageAdapter) Store(ctx context.Context, file *multipart.FileHeader, path string) error {
	fileOpened, err := file.Open()
	if err != nil {
		return err
	}
	defer fileOpened.Close()

	contentType := file.Header.Get("Content-Type")
	return s.StoreFromReader(ctx, fileOpened, contentType, path)
}

func (s *StorageAdapter) StoreFromReader(ctx context.Context, reader io.Reader, contentType string, path string) error {
	if s.client == nil {
		return errors.New("s3 client is not initialized")
	}

	s3Key := filepath.ToSlash(path)
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s3Key),
		Body:        reader,
		ContentType: aws.String(contentType),
	})
	return err
}

func (s *StorageAdapter) Delete(ctx context.Context, path string) error {
	if s.client == nil {
		return errors.New("s3 client is not initialized")
	}

	s3Key := filepath.ToSlash(path)

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s3Key),
	})
	return err
}

// PublicURL builds the stable URL stored on the report for an uploaded object.
func (s *StorageAdapter) PublicURL(path string) string {
	s3Key := filepath.ToSlash(path)

	if s.publicDomain != "" {
		return fmt.Sprintf("%s/%s", strings.TrimRight(s.publicDomain, "/"), s3Key)
	}

	if s.endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(s.endpoint, "/"), s.bucket, s3Key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, s3Key)
}
