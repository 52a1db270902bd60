// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/resume-keeper/internal/logger"
	"github.com/MKhiriev/resume-keeper/internal/objectstore"
	"github.com/MKhiriev/resume-keeper/internal/store"
	"github.com/MKhiriev/resume-keeper/internal/utils"
	"github.com/MKhiriev/resume-keeper/models"
)

// cleanupTimeout bounds the compensating delete issued after a failed
// catalog insert. It runs detached from the request deadline.
const cleanupTimeout = 10 * time.Second

type resumeService struct {
	resumeRepository store.ResumeRepository
	objectStorage    objectstore.ObjectStorage

	logger *logger.Logger
}

// NewResumeService builds a ResumeService. The object storage client is
// constructed once at startup and injected here.
func NewResumeService(resumeRepository store.ResumeRepository, objectStorage objectstore.ObjectStorage, logger *logger.Logger) ResumeService {
	return &resumeService{
		resumeRepository: resumeRepository,
		objectStorage:    objectStorage,
		logger:           logger,
	}
}

// Upload stores file and inserts its catalog record. When the insert fails
// the stored object is removed again, best effort, and the insert error is
// returned.
func (s *resumeService) Upload(ctx context.Context, file models.UploadFile) (models.Resume, error) {
	log := logger.FromContext(ctx)

	if file.UploadedBy == "" {
		if principal, ok := utils.GetPrincipalFromContext(ctx); ok {
			file.UploadedBy = principal.ID
		}
	}

	stored, err := s.objectStorage.Store(ctx, file)
	if err != nil {
		log.Err(err).Str("func", "*resumeService.Upload").Str("filename", file.Filename).Msg("error storing file")
		return models.Resume{}, fmt.Errorf("error storing file: %w", err)
	}

	resume, err := s.resumeRepository.Insert(ctx, models.Resume{
		Filename:      file.Filename,
		URL:           stored.URL,
		StorageKey:    stored.Key,
		ResourceClass: stored.ResourceClass,
		Size:          file.Size(),
		MimeType:      file.ContentType,
		UploadedBy:    file.UploadedBy,
	})
	if err != nil {
		log.Err(err).Str("func", "*resumeService.Upload").Str("key", stored.Key).Msg("error saving resume record")
		s.discardObject(ctx, stored)
		return models.Resume{}, fmt.Errorf("error saving resume record: %w", err)
	}

	log.Info().Str("func", "*resumeService.Upload").Str("id", resume.ID).Str("key", stored.Key).Msg("resume uploaded")
	return resume, nil
}

func (s *resumeService) List(ctx context.Context) ([]models.Resume, error) {
	resumes, err := s.resumeRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing resumes: %w", err)
	}
	return resumes, nil
}

// Delete removes the catalog record with id. A failure to remove the stored
// object is logged and does not fail the call.
func (s *resumeService) Delete(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	resume, err := s.resumeRepository.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrResumeNotFound) {
			return ErrResumeNotFound
		}
		return fmt.Errorf("error finding resume: %w", err)
	}

	if resume.StorageKey != "" {
		if err = s.objectStorage.Delete(ctx, resume.StorageKey, resume.ResourceClass); err != nil {
			log.Warn().Err(err).Str("func", "*resumeService.Delete").Str("id", id).
				Str("key", resume.StorageKey).Msg("stored object was not removed")
		}
	}

	if err = s.resumeRepository.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrResumeNotFound) {
			// removed concurrently
			return nil
		}
		return fmt.Errorf("error deleting resume: %w", err)
	}

	return nil
}

func (s *resumeService) discardObject(ctx context.Context, stored models.StoredObject) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cleanupTimeout)
	defer cancel()

	if err := s.objectStorage.Delete(ctx, stored.Key, stored.ResourceClass); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*resumeService.discardObject").
			Str("key", stored.Key).Msg("orphaned object left in storage")
	}
}
