package service

import (
	"context"

	"github.com/MKhiriev/resume-keeper/internal/app"
	"github.com/MKhiriev/resume-keeper/internal/config"
	"github.com/MKhiriev/resume-keeper/internal/logger"
	"github.com/MKhiriev/resume-keeper/models"
)

type healthService struct {
	appVersion string

	logger *logger.Logger
}

func NewHealthService(cfg config.App, logger *logger.Logger) HealthService {
	return &healthService{
		appVersion: cfg.Version,
		logger:     logger,
	}
}

func (s *healthService) Status(ctx context.Context) models.HealthResponse {
	return models.HealthResponse{
		Response: models.Response{Success: true, Message: app.MsgBackendRunning},
		Status:   app.MsgStatusOK,
		Version:  s.appVersion,
	}
}
