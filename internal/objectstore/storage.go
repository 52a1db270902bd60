// Package objectstore uploads resumes to a remote object storage provider
// and removes them again. The provider client is built once at startup by
// NewObjectStorage and injected into the service layer.
package objectstore

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/resume-keeper/internal/config"
	"github.com/MKhiriev/resume-keeper/internal/logger"
)

// NewObjectStorage builds the [ObjectStorage] selected by cfg.Provider.
func NewObjectStorage(ctx context.Context, cfg config.Objects, log *logger.Logger) (ObjectStorage, error) {
	switch strings.ToLower(cfg.Provider) {
	case config.ProviderMinIO:
		log.Debug().Str("func", "NewObjectStorage").Str("endpoint", cfg.Endpoint).Msg("using minio object storage")
		return NewMinIOStorage(ctx, cfg, log)
	case config.ProviderS3:
		log.Debug().Str("func", "NewObjectStorage").Str("region", cfg.Region).Msg("using s3 object storage")
		return NewS3Storage(ctx, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Provider)
	}
}
