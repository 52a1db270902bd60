// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ResourceClass is the provider-side classification an object was stored
// under. Deletion must use the same class the object was uploaded with.
type ResourceClass string

const (
	// ResourceClassRaw covers documents (pdf, doc, docx).
	ResourceClassRaw ResourceClass = "raw"
	// ResourceClassImage covers jpeg and png uploads.
	ResourceClassImage ResourceClass = "image"
)

// Resume is a catalog record pointing at an uploaded document in object
// storage. The record existing does not guarantee the remote object does.
type Resume struct {
	ID string `json:"id"`

	// Filename is the name supplied by the client, kept as is.
	Filename string `json:"filename"`

	// URL is the public address of the stored object.
	URL string `json:"url"`

	// StorageKey identifies the object at the provider. Empty means there is
	// nothing to remove remotely on delete.
	StorageKey string `json:"-"`

	ResourceClass ResourceClass `json:"-"`

	Size     int64  `json:"size"`
	MimeType string `json:"mimetype"`

	UploadedAt time.Time `json:"uploadedAt"`

	// UploadedBy is the id of the principal that uploaded the file, if any.
	UploadedBy string `json:"-"`
}

// TableName returns the name of the database table backing Resume.
func (r Resume) TableName() string {
	return "resumes"
}

// Summary projects the record to the shape returned after an upload.
func (r Resume) Summary() ResumeSummary {
	return ResumeSummary{
		ID:         r.ID,
		Filename:   r.Filename,
		URL:        r.URL,
		UploadedAt: r.UploadedAt,
	}
}

// ResumeSummary is the upload acknowledgement.
type ResumeSummary struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// UploadFile is a single file received from a client, fully buffered.
type UploadFile struct {
	Filename    string
	ContentType string
	Data        []byte

	// UploadedBy is the principal id when the request was authenticated.
	UploadedBy string
}

// Size returns the payload length in bytes.
func (f UploadFile) Size() int64 {
	return int64(len(f.Data))
}

// StoredObject describes an object accepted by the object storage provider.
type StoredObject struct {
	URL           string
	Key           string
	ResourceClass ResourceClass
}
