package objectstore

import (
	"bytes"
	"testing"

	"github.com/MKhiriev/resume-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolicy_DefaultSize(t *testing.T) {
	assert.Equal(t, DefaultMaxSize, NewPolicy(0, false).MaxSize)
	assert.Equal(t, DefaultMaxSize, NewPolicy(-1, false).MaxSize)
	assert.Equal(t, int64(1024), NewPolicy(1024, false).MaxSize)
}

func TestPolicy_Allows(t *testing.T) {
	docs := NewPolicy(0, false)
	withImages := NewPolicy(0, true)

	tests := []struct {
		contentType string
		docs        bool
		images      bool
	}{
		{MimePDF, true, true},
		{MimeDOC, true, true},
		{MimeDOCX, true, true},
		{"application/pdf; charset=binary", true, true},
		{"APPLICATION/PDF", true, true},
		{MimeJPEG, false, true},
		{MimePNG, false, true},
		{"text/plain", false, false},
		{"image/gif", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.contentType, func(t *testing.T) {
			assert.Equal(t, tt.docs, docs.Allows(tt.contentType))
			assert.Equal(t, tt.images, withImages.Allows(tt.contentType))
		})
	}
}

func TestPolicy_Check(t *testing.T) {
	p := NewPolicy(10, false)

	tests := []struct {
		name    string
		file    models.UploadFile
		wantErr error
	}{
		{
			name: "valid pdf",
			file: models.UploadFile{Filename: "cv.pdf", ContentType: MimePDF, Data: []byte("%PDF-1.4")},
		},
		{
			name: "exactly at the limit",
			file: models.UploadFile{Filename: "cv.pdf", ContentType: MimePDF, Data: bytes.Repeat([]byte("a"), 10)},
		},
		{
			name:    "one byte over",
			file:    models.UploadFile{Filename: "cv.pdf", ContentType: MimePDF, Data: bytes.Repeat([]byte("a"), 11)},
			wantErr: ErrPayloadTooLarge,
		},
		{
			name:    "unsupported type",
			file:    models.UploadFile{Filename: "notes.txt", ContentType: "text/plain", Data: []byte("hi")},
			wantErr: ErrUnsupportedType,
		},
		{
			name:    "empty file",
			file:    models.UploadFile{Filename: "cv.pdf", ContentType: MimePDF},
			wantErr: ErrEmptyFile,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.Check(tt.file)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPolicy_CheckType(t *testing.T) {
	p := NewPolicy(0, false)

	require.NoError(t, p.CheckType(MimeDOC))

	err := p.CheckType("application/zip")
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Contains(t, err.Error(), `"application/zip"`)
}

func TestClassFor(t *testing.T) {
	assert.Equal(t, models.ResourceClassRaw, ClassFor(MimePDF))
	assert.Equal(t, models.ResourceClassRaw, ClassFor(MimeDOCX))
	assert.Equal(t, models.ResourceClassImage, ClassFor(MimePNG))
	assert.Equal(t, models.ResourceClassImage, ClassFor("image/jpeg; q=1"))
	assert.Equal(t, models.ResourceClassRaw, ClassFor("application/octet-stream"))
}

func TestContentTypeFor(t *testing.T) {
	tests := []struct {
		filename string
		want     string
	}{
		{filename: "cv.pdf", want: MimePDF},
		{filename: "CV.PDF", want: MimePDF},
		{filename: "letter.doc", want: MimeDOC},
		{filename: "/home/alice/resume.docx", want: MimeDOCX},
		{filename: "photo.jpeg", want: MimeJPEG},
		{filename: "photo.png", want: MimePNG},
		{filename: "notes.txt", want: "application/octet-stream"},
		{filename: "README", want: "application/octet-stream"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.want, ContentTypeFor(tt.filename))
		})
	}
}
