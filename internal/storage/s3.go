package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/instaguera/turnos-api/internal/config"
)

type S3Uploader struct {
	client *s3.Client
	bucket string
	region string
}

// NewS3Uploader devuelve nil si no hay bucket configurado; el endpoint
// de uploads responde 503 en ese caso.
func NewS3Uploader(cfg *config.Config) *S3Uploader {
	if cfg.S3Bucket == "" {
		return nil
	}

	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		),
	})

	return &S3Uploader{
		client: client,
		bucket: cfg.S3Bucket,
		region: cfg.S3Region,
	}
}

// UploadWebP sube la imagen bajo una key aleatoria y devuelve la URL
// pública del objeto.
func (u *S3Uploader) UploadWebP(
	ctx context.Context,
	prefix string,
	data []byte,
) (string, error) {

	key := fmt.Sprintf("%s/%s.webp", prefix, uuid.New().String())

	_, err := u.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", u.bucket, u.region, key), nil
}
