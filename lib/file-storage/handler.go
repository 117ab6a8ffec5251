package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"hr-ops-backend/config"
	"hr-ops-backend/db"
	attachmentstore "hr-ops-backend/lib/file-storage/store"
	dbmodels "hr-ops-backend/models/db"
)

// Supporting documents (receipts, evidence) attached to requests. The
// object body lives in S3 under the request id prefix, the metadata
// row in the attachments table.
type Provider interface {
	Upload(ctx context.Context, requestID, fileName, uploadedBy string, file []byte) (id string, err error)
	Get(ctx context.Context, attachmentID string) (file []byte, fileName string, err error)
	ListForRequest(requestID string) (list []dbmodels.Attachment, err error)
	EnsureBucket(ctx context.Context) error
}

var Instance Provider

func NewHandler(s3client *minio.Client) {
	Instance = impl{
		s3client: s3client,
		store:    attachmentstore.NewInstance(db.DB),
	}
}

type impl struct {
	s3client *minio.Client
	store    attachmentstore.Provider
}

func (i impl) Upload(ctx context.Context, requestID, fileName, uploadedBy string, file []byte) (string, error) {
	objectKey := fmt.Sprintf("%s/%s", requestID, fileName)
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectKey,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return "", errors.Wrap(err, "failed to store the attachment object")
	}
	rec := dbmodels.Attachment{
		RequestID:  requestID,
		FileName:   fileName,
		ObjectKey:  objectKey,
		Size:       int64(len(file)),
		UploadedBy: uploadedBy,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", errors.Wrap(err, "failed to save attachment metadata")
	}
	log.
		WithField("request_id", requestID).
		WithField("attachment_id", id).
		Info("attachment uploaded")
	return id, nil
}

func (i impl) Get(ctx context.Context, attachmentID string) ([]byte, string, error) {
	rec, err := i.store.GetByID(attachmentID)
	if err != nil {
		return nil, "", err
	}
	if rec == nil {
		return nil, "", errors.New("attachment not found")
	}
	obj, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, rec.ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to fetch the attachment object")
	}
	defer obj.Close()
	file, err := io.ReadAll(obj)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to read the attachment object")
	}
	return file, rec.FileName, nil
}

func (i impl) ListForRequest(requestID string) ([]dbmodels.Attachment, error) {
	return i.store.ListForRequest(requestID)
}

func (i impl) EnsureBucket(ctx context.Context) error {
	bucketName := config.Conf.S3.BucketName
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
}
