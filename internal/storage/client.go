package storage

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BruksfildServices01/trainer-marketplace/internal/config"
)

// NewS3Client builds a client from static credentials. A custom endpoint
// switches to path-style addressing for MinIO and similar servers.
func NewS3Client(cfg *config.Config) *s3.Client {
	awsCfg := aws.Config{
		Region: cfg.S3Region,
	}
	if cfg.S3AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true
		}
	})
}
