package importer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// MinioConfig holds the object storage settings for upload archiving.
type MinioConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// MinioArchiver copies bulk uploads to <bucket>/bulk/<date>/<uuid><ext>.
type MinioArchiver struct {
	client *minio.Client
	bucket string
	now    func() time.Time
}

func NewMinioClient(cfg MinioConfig) (*minio.Client, error) {
	return minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
}

// NewMinioArchiver creates the bucket when it does not exist yet.
func NewMinioArchiver(ctx context.Context, client *minio.Client, bucket string) (*MinioArchiver, error) {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("checking bucket %s: %w", bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("creating bucket %s: %w", bucket, err)
		}
		logrus.WithField("bucket", bucket).Info("minio bucket created")
	}
	return &MinioArchiver{client: client, bucket: bucket, now: time.Now}, nil
}

func (a *MinioArchiver) Archive(ctx context.Context, path string) (string, error) {
	object := ObjectName(a.now(), path)
	_, err := a.client.FPutObject(ctx, a.bucket, object, path, minio.PutObjectOptions{
		ContentType: contentType(path),
	})
	if err != nil {
		return "", err
	}
	return object, nil
}

// ObjectName builds the archive key for an upload saved at path.
func ObjectName(at time.Time, path string) string {
	return fmt.Sprintf("bulk/%s/%s%s", at.UTC().Format("2006-01-02"), uuid.New().String(), strings.ToLower(filepath.Ext(path)))
}

func contentType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return "text/csv"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/octet-stream"
	}
}
