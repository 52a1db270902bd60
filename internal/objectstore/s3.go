package objectstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/resume-keeper/internal/config"
	"github.com/MKhiriev/resume-keeper/internal/logger"
	"github.com/MKhiriev/resume-keeper/models"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// s3Storage stores resumes in an AWS S3 bucket or an S3 compatible service
// such as Cloudflare R2.
type s3Storage struct {
	client     *s3.Client
	bucket     string
	folder     string
	publicBase string
	now        func() time.Time
}

// NewS3Storage loads the AWS configuration and returns an [ObjectStorage]
// writing into cfg.Bucket. Static credentials are used when both keys are
// set, otherwise the default AWS credential chain applies.
func NewS3Storage(ctx context.Context, cfg config.Objects) (ObjectStorage, error) {
	opts := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: load aws config: %w", ErrStorage, err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Storage(client, cfg), nil
}

func newS3Storage(client *s3.Client, cfg config.Objects) *s3Storage {
	publicBase := cfg.PublicBaseURL
	switch {
	case publicBase != "":
	case cfg.Endpoint != "":
		publicBase = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
	default:
		publicBase = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}

	return &s3Storage{
		client:     client,
		bucket:     cfg.Bucket,
		folder:     cfg.Folder,
		publicBase: strings.TrimRight(publicBase, "/"),
		now:        time.Now,
	}
}

func (s *s3Storage) Store(ctx context.Context, file models.UploadFile) (models.StoredObject, error) {
	class := ClassFor(file.ContentType)
	key := ObjectKey(s.folder, class, file.Filename, file.ContentType, s.now())

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(file.Data),
		ContentLength: aws.Int64(file.Size()),
		ContentType:   aws.String(file.ContentType),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*s3Storage.Store").Str("key", key).Msg("error putting object")
		return models.StoredObject{}, fmt.Errorf("%w: put object %q: %w", ErrStorage, key, err)
	}

	return models.StoredObject{
		URL:           s.publicBase + "/" + key,
		Key:           key,
		ResourceClass: class,
	}, nil
}

func (s *s3Storage) Delete(ctx context.Context, key string, class models.ResourceClass) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return nil
		}
		logger.FromContext(ctx).Err(err).Str("func", "*s3Storage.Delete").
			Str("key", key).Str("class", string(class)).Msg("error deleting object")
		return fmt.Errorf("%w: delete object %q: %w", ErrStorage, key, err)
	}
	return nil
}
