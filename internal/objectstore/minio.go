// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package objectstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/resume-keeper/internal/config"
	"github.com/MKhiriev/resume-keeper/internal/logger"
	"github.com/MKhiriev/resume-keeper/models"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// minioStorage stores resumes in a MinIO bucket, or any service speaking
// the S3 API that minio-go supports.
type minioStorage struct {
	client     *minio.Client
	bucket     string
	folder     string
	publicBase string
	now        func() time.Time
	logger     *logger.Logger
}

// NewMinIOStorage creates a MinIO client, ensures the bucket exists with a
// public-read policy and returns an [ObjectStorage] writing into it.
func NewMinIOStorage(ctx context.Context, cfg config.Objects, log *logger.Logger) (ObjectStorage, error) {
	client, err := newMinIOClient(cfg)
	if err != nil {
		return nil, err
	}

	if err = ensureBucket(ctx, client, cfg.Bucket, cfg.Region, log); err != nil {
		return nil, err
	}

	return newMinIOStorage(client, cfg, log), nil
}

func newMinIOClient(cfg config.Objects) (*minio.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:        credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:       cfg.UseSSL,
		Region:       cfg.Region,
		BucketLookup: minio.BucketLookupPath,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create minio client: %w", ErrStorage, err)
	}
	return client, nil
}

func newMinIOStorage(client *minio.Client, cfg config.Objects, log *logger.Logger) *minioStorage {
	publicBase := cfg.PublicBaseURL
	if publicBase == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicBase = fmt.Sprintf("%s://%s/%s", scheme, cfg.Endpoint, cfg.Bucket)
	}

	return &minioStorage{
		client:     client,
		bucket:     cfg.Bucket,
		folder:     cfg.Folder,
		publicBase: strings.TrimRight(publicBase, "/"),
		now:        time.Now,
		logger:     log,
	}
}

func ensureBucket(ctx context.Context, client *minio.Client, bucket, region string, log *logger.Logger) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("%w: check bucket existence: %w", ErrStorage, err)
	}
	if !exists {
		if err = client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{Region: region}); err != nil {
			return fmt.Errorf("%w: create bucket %q: %w", ErrStorage, bucket, err)
		}
		log.Info().Str("func", "ensureBucket").Str("bucket", bucket).Msg("created bucket")
	}

	if err = client.SetBucketPolicy(ctx, bucket, publicReadPolicy(bucket)); err != nil {
		return fmt.Errorf("%w: set bucket policy: %w", ErrStorage, err)
	}
	return nil
}

func (s *minioStorage) Store(ctx context.Context, file models.UploadFile) (models.StoredObject, error) {
	class := ClassFor(file.ContentType)
	key := ObjectKey(s.folder, class, file.Filename, file.ContentType, s.now())

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(file.Data), file.Size(), minio.PutObjectOptions{
		ContentType: file.ContentType,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*minioStorage.Store").Str("key", key).Msg("error putting object")
		return models.StoredObject{}, fmt.Errorf("%w: put object %q: %w", ErrStorage, key, err)
	}

	return models.StoredObject{
		URL:           s.publicURL(key),
		Key:           key,
		ResourceClass: class,
	}, nil
}

// Delete removes the object at key. The bucket holds every class, so class
// only takes part in logging.
func (s *minioStorage) Delete(ctx context.Context, key string, class models.ResourceClass) error {
	err := s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil
		}
		logger.FromContext(ctx).Err(err).Str("func", "*minioStorage.Delete").
			Str("key", key).Str("class", string(class)).Msg("error removing object")
		return fmt.Errorf("%w: remove object %q: %w", ErrStorage, key, err)
	}
	return nil
}

func (s *minioStorage) publicURL(key string) string {
	return s.publicBase + "/" + key
}

// publicReadPolicy returns a bucket policy allowing anonymous GET on every object.
func publicReadPolicy(bucket string) string {
	policy := map[string]any{
		"Version": "2012-10-17",
		"Statement": []map[string]any{
			{
				"Effect":    "Allow",
				"Principal": map[string]any{"AWS": []string{"*"}},
				"Action":    []string{"s3:GetObject"},
				"Resource":  []string{fmt.Sprintf("arn:aws:s3:::%s/*", bucket)},
			},
		},
	}
	b, _ := json.Marshal(policy)
	return string(b)
}
