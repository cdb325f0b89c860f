package avatar

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/trainer-marketplace/internal/storage"
)

const contentType = "image/webp"

// Store saves an encoded avatar under name and returns the URL clients use to
// fetch it.
type Store interface {
	Put(ctx context.Context, name string, data []byte) (string, error)
}

// ======================================================
// LOCAL DIRECTORY
// ======================================================

// LocalStore writes into dir. The router serves dir under baseURL.
type LocalStore struct {
	dir     string
	baseURL string
}

func NewLocalStore(dir, baseURL string) *LocalStore {
	return &LocalStore{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Put(_ context.Context, name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create avatar dir: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("write avatar: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("write avatar: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("write avatar: %w", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return "", fmt.Errorf("write avatar: %w", err)
	}

	return s.baseURL + "/" + name, nil
}

// ======================================================
// S3
// ======================================================

type S3Store struct {
	client  storage.ObjectAPI
	bucket  string
	prefix  string
	baseURL string
}

// NewS3Store puts objects at <prefix>avatars/<name>. baseURL is the public
// address of the bucket (or its CDN) and is joined with the object key.
func NewS3Store(client storage.ObjectAPI, bucket, prefix, baseURL string) *S3Store {
	return &S3Store{
		client:  client,
		bucket:  bucket,
		prefix:  prefix,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

func (s *S3Store) Put(ctx context.Context, name string, data []byte) (string, error) {
	key := path.Join(s.prefix, "avatars", name)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("put avatar %s: %w", key, err)
	}

	return s.baseURL + "/" + key, nil
}
