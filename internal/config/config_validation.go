// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the merged config before the server starts.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: token sign key is required", ErrInvalidAppConfigs)
	}
	if cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token issuer and a positive token duration are required", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" {
		return fmt.Errorf("%w: address is required", ErrInvalidServerConfigs)
	}
	if cfg.Server.UploadLimit <= 0 || cfg.Server.JSONBodyLimit <= 0 {
		return fmt.Errorf("%w: body limits must be positive", ErrInvalidServerConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	return cfg.Storage.Objects.validate()
}

func (o Objects) validate() error {
	if o.Bucket == "" {
		return fmt.Errorf("%w: bucket is required", ErrInvalidObjectStorageConfigs)
	}

	switch o.Provider {
	case ProviderMinIO:
		if o.Endpoint == "" || o.AccessKey == "" || o.SecretKey == "" {
			return fmt.Errorf("%w: minio needs endpoint, access key and secret key", ErrInvalidObjectStorageConfigs)
		}
	case ProviderS3:
		if o.Region == "" {
			return fmt.Errorf("%w: s3 needs a region", ErrInvalidObjectStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidObjectStorageConfigs, o.Provider)
	}

	return nil
}

func (cfg *StructuredConfig) validateClient() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
