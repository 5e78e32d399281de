package storage

import (
	"context"
	"hra-service/internal/app/contracts"
	"hra-service/internal/pkg/exceptions"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

const presignedURLExpiry = 24 * time.Hour

type minioStorage struct {
	MinioClient *minio.Client
}

func NewMinioStorage(minioClient *minio.Client) contracts.Storage {
	return &minioStorage{
		MinioClient: minioClient,
	}
}

func (m *minioStorage) CreateObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, contentType string) error {
	_, err := m.MinioClient.PutObject(ctx, bucketName, objectName, reader, objectSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return nil
}

func (m *minioStorage) GetPresignedURL(ctx context.Context, bucketName, objectName string) (string, error) {
	url, err := m.MinioClient.PresignedGetObject(ctx, bucketName, objectName, presignedURLExpiry, nil)
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, bucketName)
	}

	return url.String(), nil
}
