package initializers

import (
	"context"
	"hr-ops-backend/config"
	filestorage "hr-ops-backend/lib/file-storage"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

func InitS3(ctx context.Context) {
	minioClient, err := minio.New(config.Conf.S3.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV2(config.Conf.S3.AccessKeyID, config.Conf.S3.SecretAccessKey, ""),
		Secure: *config.Conf.S3.UseSSL,
	})
	if err != nil {
		log.WithError(err).Error("failed to initialize the S3 client")
		return
	}

	filestorage.NewHandler(minioClient)
	if err = filestorage.Instance.EnsureBucket(ctx); err != nil {
		log.WithError(err).Error("S3 connection failed, the attachment bucket is unavailable")
		return
	}
	log.Info("S3 client initialized")
}
