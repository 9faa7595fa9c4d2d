package store

import (
	"context"
	"fmt"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
)

// Content type set on uploaded bundle archives.
const archiveContentType = "application/gzip"

// Uploads bundles to an S3-compatible object store.
type ObjectStore struct {
	client *minio.Client
	bucket string
}

// Creates an object store client for the given endpoint and bucket.
//
// Credentials are static; the bucket must already exist.
func NewObjectStore(endpoint, accessKey, secretKey, bucket string, secure bool) (*ObjectStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpload, err)
	}

	return &ObjectStore{client: client, bucket: bucket}, nil
}

// Uploads the bundle directory as a single object named "<name>.tar.gz".
//
// The bundle is archived to a temporary file first, so a failed upload
// leaves nothing behind in the bucket.
func (s *ObjectStore) Upload(ctx context.Context, name, dir string) (*Handle, error) {
	tmp, err := os.CreateTemp("", name+"-*"+archiveExt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpload, err)
	}
	tmp.Close()
	defer os.Remove(tmp.Name())

	if err := writeArchive(tmp.Name(), dir); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchive, err)
	}

	key := name + archiveExt
	info, err := s.client.FPutObject(ctx, s.bucket, key, tmp.Name(), minio.PutObjectOptions{
		ContentType: archiveContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpload, err)
	}

	location := fmt.Sprintf("s3://%s/%s", s.bucket, key)
	log.Info().Str("artifact", name).Str("location", location).Int64("size", info.Size).Msg("artifact uploaded")

	return &Handle{
		Name:     name,
		Location: location,
		Size:     info.Size,
	}, nil
}
