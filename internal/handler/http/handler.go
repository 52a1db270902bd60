package http

import (
	"time"

	"github.com/MKhiriev/resume-keeper/internal/config"
	"github.com/MKhiriev/resume-keeper/internal/logger"
	"github.com/MKhiriev/resume-keeper/internal/objectstore"
	"github.com/MKhiriev/resume-keeper/internal/service"
)

// Settings carries the transport knobs taken from the configuration.
type Settings struct {
	AllowedOrigins []string
	RequestTimeout time.Duration

	JSONBodyLimit int64
	UploadLimit   int64
	AllowImages   bool

	// SecureCookie sets the Secure attribute on the auth cookie.
	SecureCookie bool
	// TokenDuration is the lifetime of the auth cookie.
	TokenDuration time.Duration
}

// SettingsFromConfig extracts the handler settings from cfg.
func SettingsFromConfig(cfg config.StructuredConfig) Settings {
	return Settings{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		RequestTimeout: cfg.Server.RequestTimeout,
		JSONBodyLimit:  cfg.Server.JSONBodyLimit,
		UploadLimit:    cfg.Server.UploadLimit,
		AllowImages:    cfg.Storage.Objects.AllowImages,
		SecureCookie:   cfg.App.IsProduction(),
		TokenDuration:  cfg.App.TokenDuration,
	}
}

type Handler struct {
	services *service.Services
	settings Settings

	// uploadPolicy is the transport-level filter applied before a file is read.
	uploadPolicy objectstore.Policy

	logger *logger.Logger
}

func NewHandler(services *service.Services, settings Settings, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		settings:     settings,
		uploadPolicy: objectstore.NewPolicy(settings.UploadLimit, settings.AllowImages),
		logger:       logger,
	}
}
