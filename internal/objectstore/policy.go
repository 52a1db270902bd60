// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package objectstore

import (
	"fmt"
	"mime"
	"path"
	"strings"

	"github.com/MKhiriev/resume-keeper/models"
)

// Accepted content types.
const (
	MimePDF  = "application/pdf"
	MimeDOC  = "application/msword"
	MimeDOCX = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeJPEG = "image/jpeg"
	MimePNG  = "image/png"
)

// DefaultMaxSize is the upload cap applied when no limit is configured.
const DefaultMaxSize int64 = 5 << 20

var documentTypes = map[string]string{
	MimePDF:  "pdf",
	MimeDOC:  "doc",
	MimeDOCX: "docx",
}

var imageTypes = map[string]string{
	MimeJPEG: "jpg",
	MimePNG:  "png",
}

// Policy decides which uploads are accepted.
type Policy struct {
	MaxSize     int64
	AllowImages bool
}

// NewPolicy returns a Policy capping uploads at maxSize bytes. A non-positive
// maxSize falls back to DefaultMaxSize.
func NewPolicy(maxSize int64, allowImages bool) Policy {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	return Policy{MaxSize: maxSize, AllowImages: allowImages}
}

// Allows reports whether contentType is on the allow-list. Parameters such
// as charset are ignored.
func (p Policy) Allows(contentType string) bool {
	mt := normalizeMime(contentType)
	if _, ok := documentTypes[mt]; ok {
		return true
	}
	if _, ok := imageTypes[mt]; ok {
		return p.AllowImages
	}
	return false
}

// CheckType returns ErrUnsupportedType naming contentType when it is not
// on the allow-list.
func (p Policy) CheckType(contentType string) error {
	if !p.Allows(contentType) {
		return fmt.Errorf("%w %q: only PDF, DOC and DOCX files are allowed", ErrUnsupportedType, contentType)
	}
	return nil
}

// Check validates file against the allow-list and the size cap.
func (p Policy) Check(file models.UploadFile) error {
	if err := p.CheckType(file.ContentType); err != nil {
		return err
	}
	if file.Size() == 0 {
		return ErrEmptyFile
	}
	if file.Size() > p.MaxSize {
		return fmt.Errorf("%w: %d bytes, limit is %d", ErrPayloadTooLarge, file.Size(), p.MaxSize)
	}
	return nil
}

// ClassFor returns the resource class objects of contentType are stored under.
func ClassFor(contentType string) models.ResourceClass {
	if _, ok := imageTypes[normalizeMime(contentType)]; ok {
		return models.ResourceClassImage
	}
	return models.ResourceClassRaw
}

// extensionFor prefers the extension implied by the content type and falls
// back to the one in filename.
func extensionFor(contentType, filename string) string {
	mt := normalizeMime(contentType)
	if ext, ok := documentTypes[mt]; ok {
		return ext
	}
	if ext, ok := imageTypes[mt]; ok {
		return ext
	}
	return strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
}

func normalizeMime(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(contentType))
	}
	return mt
}

// ContentTypeFor guesses the content type of filename from its extension.
// Unknown extensions yield application/octet-stream.
func ContentTypeFor(filename string) string {
	ext := strings.ToLower(strings.TrimPrefix(path.Ext(filename), "."))
	if ext == "jpeg" {
		ext = "jpg"
	}
	for _, types := range []map[string]string{documentTypes, imageTypes} {
		for mt, e := range types {
			if e == ext {
				return mt
			}
		}
	}
	return "application/octet-stream"
}
