package contracts

import (
	"context"
	"io"
)

type Storage interface {
	CreateObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, contentType string) error
	GetPresignedURL(ctx context.Context, bucketName, objectName string) (string, error)
}
