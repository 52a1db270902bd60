// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/MKhiriev/resume-keeper/internal/app"
	"github.com/MKhiriev/resume-keeper/internal/objectstore"
	"github.com/MKhiriev/resume-keeper/internal/utils"
	"github.com/MKhiriev/resume-keeper/internal/validators"
	"github.com/MKhiriev/resume-keeper/models"
	"github.com/go-chi/chi/v5"
)

const (
	// resumeFormField is the multipart field carrying the file.
	resumeFormField = "resume"

	// multipartOverhead is the room left for boundaries and part headers on
	// top of the upload limit.
	multipartOverhead = 64 << 10
)

func (h *Handler) uploadResume(w http.ResponseWriter, r *http.Request) {
	file, err := h.readUpload(w, r)
	if err != nil {
		writeError(w, r, err, app.MsgServerError)
		return
	}

	resume, err := h.services.ResumeService.Upload(r.Context(), file)
	if err != nil {
		writeError(w, r, err, app.MsgServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.ResumeUploadResponse{
		Response: models.Response{Success: true, Message: app.MsgResumeUploaded},
		Resume:   resume.Summary(),
	}, http.StatusOK)
}

// readUpload parses the multipart body and returns the single file sent in
// the resume field. The body is capped before parsing so an oversized upload
// is rejected without being buffered.
func (h *Handler) readUpload(w http.ResponseWriter, r *http.Request) (models.UploadFile, error) {
	limit := h.uploadPolicy.MaxSize
	tooLarge := fmt.Errorf("%w: limit is %d bytes", objectstore.ErrPayloadTooLarge, limit)

	if r.ContentLength > limit+multipartOverhead {
		return models.UploadFile{}, tooLarge
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit+multipartOverhead)

	if err := r.ParseMultipartForm(limit + multipartOverhead); err != nil {
		var maxBytesErr *http.MaxBytesError
		switch {
		case errors.As(err, &maxBytesErr):
			return models.UploadFile{}, tooLarge
		case errors.Is(err, http.ErrNotMultipart), errors.Is(err, http.ErrMissingBoundary):
			return models.UploadFile{}, validators.ErrNoFileUploaded
		default:
			return models.UploadFile{}, fmt.Errorf("%w: %w", ErrInvalidMultipartForm, err)
		}
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	headers := r.MultipartForm.File[resumeFormField]
	switch {
	case len(headers) == 0:
		return models.UploadFile{}, validators.ErrNoFileUploaded
	case len(headers) > 1:
		return models.UploadFile{}, ErrTooManyFiles
	}

	header := headers[0]
	contentType := header.Header.Get("Content-Type")

	if err := h.uploadPolicy.CheckType(contentType); err != nil {
		return models.UploadFile{}, err
	}
	if header.Size > limit {
		return models.UploadFile{}, tooLarge
	}

	data, err := readFormFile(header)
	if err != nil {
		return models.UploadFile{}, err
	}

	return models.UploadFile{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

func readFormFile(header *multipart.FileHeader) ([]byte, error) {
	f, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("error opening uploaded file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("error reading uploaded file: %w", err)
	}
	return data, nil
}

func (h *Handler) listResumes(w http.ResponseWriter, r *http.Request) {
	resumes, err := h.services.ResumeService.List(r.Context())
	if err != nil {
		writeError(w, r, err, app.MsgServerError)
		return
	}
	if resumes == nil {
		resumes = []models.Resume{}
	}

	_, _ = utils.WriteJSON(w, models.ResumeListResponse{
		Response: models.Response{Success: true, Message: app.MsgResumesFetched},
		Resumes:  resumes,
	}, http.StatusOK)
}

func (h *Handler) deleteResume(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.ResumeService.Delete(r.Context(), id); err != nil {
		writeError(w, r, err, app.MsgServerError)
		return
	}

	_, _ = utils.WriteJSON(w, models.Response{Success: true, Message: app.MsgResumeDeleted}, http.StatusOK)
}
