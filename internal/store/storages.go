package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/resume-keeper/internal/config"
	"github.com/MKhiriev/resume-keeper/internal/logger"
)

// Storages aggregates the repositories handed to the service layer.
type Storages struct {
	UserRepository   UserRepository
	ResumeRepository ResumeRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		ResumeRepository: NewResumeRepository(db, log),
		db:               db,
	}, nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
