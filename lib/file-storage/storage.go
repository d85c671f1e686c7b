package filestorage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"interview-tracker-backend/config"
	s3client "interview-tracker-backend/s3"
)

type Provider interface {
	UploadProfilePicture(ctx context.Context, userID int, fileReader io.Reader, fileSize int64, contentType string) (objectName string, err error)
	GetFile(ctx context.Context, objectName string) (body []byte, contentType string, err error)
	DeleteFile(ctx context.Context, objectName string) error
}

var Instance Provider

var ErrStorageUnavailable = errors.New("file storage is not configured")

func NewHandler() {
	Instance = NewInstance(s3client.Client, config.Conf.S3.BucketName)
}

func NewInstance(client *minio.Client, bucketName string) Provider {
	return &impl{
		s3client:   client,
		bucketName: bucketName,
	}
}

type impl struct {
	s3client   *minio.Client
	bucketName string
}

func (i impl) UploadProfilePicture(ctx context.Context, userID int, fileReader io.Reader, fileSize int64, contentType string) (string, error) {
	if i.s3client == nil {
		return "", ErrStorageUnavailable
	}
	objectName := fmt.Sprintf("profile-pictures/%d/%s%s", userID, uuid.NewString(), pictureExt(contentType))
	_, err := i.s3client.PutObject(ctx, i.bucketName, objectName, fileReader, fileSize, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to upload file")
	}
	return objectName, nil
}

func (i impl) GetFile(ctx context.Context, objectName string) ([]byte, string, error) {
	if i.s3client == nil {
		return nil, "", ErrStorageUnavailable
	}
	object, err := i.s3client.GetObject(ctx, i.bucketName, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to get file")
	}
	defer object.Close()
	info, err := object.Stat()
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to stat file")
	}
	body, err := io.ReadAll(object)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read file")
	}
	return body, info.ContentType, nil
}

func (i impl) DeleteFile(ctx context.Context, objectName string) error {
	if i.s3client == nil {
		return ErrStorageUnavailable
	}
	err := i.s3client.RemoveObject(ctx, i.bucketName, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return errors.Wrap(err, "failed to delete file")
	}
	return nil
}

var pictureTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

func IsPictureContentType(contentType string) bool {
	_, ok := pictureTypes[normalizeContentType(contentType)]
	return ok
}

func pictureExt(contentType string) string {
	return pictureTypes[normalizeContentType(contentType)]
}

func normalizeContentType(contentType string) string {
	contentType, _, _ = strings.Cut(contentType, ";")
	return strings.ToLower(strings.TrimSpace(contentType))
}
