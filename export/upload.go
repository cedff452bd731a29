package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"fleetdash/config"
)

var ErrUploadDisabled = errors.New("export upload not configured")

// Uploader stores exports in an S3-compatible bucket.
type Uploader struct {
	client *minio.Client
	bucket string
	expiry time.Duration
	log    *zap.SugaredLogger
}

func NewUploader(cfg config.S3Config, log *zap.SugaredLogger) (*Uploader, error) {
	if cfg.Endpoint == "" {
		return nil, ErrUploadDisabled
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("export: s3 client: %w", err)
	}
	expiry := cfg.Expiry
	if expiry <= 0 {
		expiry = 24 * time.Hour
	}
	return &Uploader{client: client, bucket: cfg.Bucket, expiry: expiry, log: log}, nil
}

// EnsureBucket creates the bucket if it does not exist yet.
func (u *Uploader) EnsureBucket(ctx context.Context) error {
	exists, err := u.client.BucketExists(ctx, u.bucket)
	if err != nil {
		return fmt.Errorf("export: check bucket: %w", err)
	}
	if !exists {
		u.log.Infof("export: creating bucket %s", u.bucket)
		if err := u.client.MakeBucket(ctx, u.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("export: create bucket: %w", err)
		}
	}
	return nil
}

// Upload stores r under key and returns a presigned download URL.
func (u *Uploader) Upload(ctx context.Context, key string, r io.Reader, size int64) (string, error) {
	if err := u.EnsureBucket(ctx); err != nil {
		return "", err
	}
	_, err := u.client.PutObject(ctx, u.bucket, key, r, size, minio.PutObjectOptions{ContentType: ContentType})
	if err != nil {
		return "", fmt.Errorf("export: put %s: %w", key, err)
	}
	params := make(url.Values)
	params.Set("response-content-disposition", fmt.Sprintf("attachment; filename=%q", key))
	signed, err := u.client.PresignedGetObject(ctx, u.bucket, key, u.expiry, params)
	if err != nil {
		return "", fmt.Errorf("export: presign %s: %w", key, err)
	}
	u.log.Infof("export: uploaded %s/%s", u.bucket, key)
	return signed.String(), nil
}
