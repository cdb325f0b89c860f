package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ObjectAPI is the subset of *s3.Client used by S3Object and the avatar store.
type ObjectAPI interface {
	GetObject(ctx context.Context, in *s3.GetObjectInput, opts ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Object[T any] struct {
	client ObjectAPI
	bucket string
	key    string
}

func NewS3Object[T any](client ObjectAPI, bucket, prefix, name string) *S3Object[T] {
	return &S3Object[T]{
		client: client,
		bucket: bucket,
		key:    prefix + name + ".json",
	}
}

func (o *S3Object[T]) LoadAll(ctx context.Context) ([]T, error) {
	out, err := o.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(o.bucket),
		Key:    aws.String(o.key),
	})
	if err != nil {
		var nsk *types.NoSuchKey
		if errors.As(err, &nsk) {
			if err := o.SaveAll(ctx, nil); err != nil {
				slog.WarnContext(ctx, "could not initialise collection object",
					"bucket", o.bucket,
					"key", o.key,
					"error", err,
				)
			}
			return []T{}, nil
		}

		return nil, fmt.Errorf("%w: get s3://%s/%s: %v", ErrRead, o.bucket, o.key, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read s3://%s/%s: %v", ErrRead, o.bucket, o.key, err)
	}

	return decode[T](ctx, o.key, data), nil
}

func (o *S3Object[T]) SaveAll(ctx context.Context, items []T) error {
	data, err := encode(items)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrWrite, o.key, err)
	}

	_, err = o.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(o.bucket),
		Key:         aws.String(o.key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("%w: put s3://%s/%s: %v", ErrWrite, o.bucket, o.key, err)
	}
	return nil
}

var _ Collection[struct{}] = (*S3Object[struct{}])(nil)
