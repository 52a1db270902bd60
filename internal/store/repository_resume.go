// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/resume-keeper/internal/logger"
	"github.com/MKhiriev/resume-keeper/internal/utils"
	"github.com/MKhiriev/resume-keeper/models"
)

// resumeRepository is the PostgreSQL implementation of [ResumeRepository]
// backed by the "resumes" table.
type resumeRepository struct {
	db     *DB
	ids    *utils.UUIDGenerator
	logger *logger.Logger
}

// NewResumeRepository constructs a [ResumeRepository] on top of db.
func NewResumeRepository(db *DB, logger *logger.Logger) ResumeRepository {
	logger.Debug().Msg("creating resume repository")
	return &resumeRepository{
		db:     db,
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}
}

func (r *resumeRepository) Insert(ctx context.Context, resume models.Resume) (models.Resume, error) {
	log := logger.FromContext(ctx)

	if resume.ID == "" {
		resume.ID = r.ids.Generate()
	}
	if resume.UploadedAt.IsZero() {
		resume.UploadedAt = time.Now().UTC()
	}
	if resume.ResourceClass == "" {
		resume.ResourceClass = models.ResourceClassRaw
	}

	query, args, err := buildInsertResumeQuery(resume)
	if err != nil {
		return models.Resume{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*resumeRepository.Insert").Str("pg_code", postgresError(err)).Msg("error inserting resume")
		return models.Resume{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return resume, nil
}

// ListAll reads the whole catalog in one statement, newest first.
func (r *resumeRepository) ListAll(ctx context.Context) ([]models.Resume, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectResumesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*resumeRepository.ListAll").Msg("error selecting resumes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	resumes := make([]models.Resume, 0)
	for rows.Next() {
		resume, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		resumes = append(resumes, resume)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return resumes, nil
}

func (r *resumeRepository) FindByID(ctx context.Context, id string) (models.Resume, error) {
	if !utils.IsUUID(id) {
		return models.Resume{}, ErrResumeNotFound
	}

	query, args, err := buildSelectResumeByIDQuery(id)
	if err != nil {
		return models.Resume{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	resume, err := scanResume(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Resume{}, ErrResumeNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*resumeRepository.FindByID").Msg("error selecting resume")
		return models.Resume{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return resume, nil
}

func (r *resumeRepository) DeleteByID(ctx context.Context, id string) error {
	if !utils.IsUUID(id) {
		return ErrResumeNotFound
	}

	query, args, err := buildDeleteResumeQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*resumeRepository.DeleteByID").Msg("error deleting resume")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrResumeNotFound
	}

	return nil
}
