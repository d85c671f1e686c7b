package initializers

import (
	"context"

	log "github.com/sirupsen/logrus"
	"interview-tracker-backend/config"
	s3client "interview-tracker-backend/s3"
)

// InitS3 leaves s3client.Client nil when storage is unreachable, profile
// pictures are then reported as unavailable.
func InitS3(ctx context.Context) {
	if config.Conf.S3.AccessKeyID == "" {
		log.Warn("S3 credentials are not set, profile pictures are disabled")
		return
	}
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("failed to create S3 client")
		return
	}

	err = s3client.MakeBucket(ctx, minioClient, config.Conf.S3.BucketName)
	if err != nil {
		log.
			WithField("bucket", config.Conf.S3.BucketName).
			WithError(err).
			Error("S3 bucket check failed")
		return
	}

	s3client.Client = minioClient
	log.Info("S3 client initialized")
}
