package objectstore

import (
	"context"
	"testing"

	"github.com/MKhiriev/resume-keeper/internal/config"
	"github.com/MKhiriev/resume-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestNewObjectStorage_UnknownProvider(t *testing.T) {
	_, err := NewObjectStorage(context.Background(), config.Objects{Provider: "ftp"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnknownProvider)
}

func TestNewObjectStorage_S3(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", "/dev/null")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "/dev/null")

	s, err := NewObjectStorage(context.Background(), config.Objects{
		Provider:  "S3",
		Region:    "us-east-1",
		Bucket:    "resumes",
		AccessKey: "access",
		SecretKey: "secret",
	}, logger.Nop())

	assert.NoError(t, err)
	assert.IsType(t, &s3Storage{}, s)
}
