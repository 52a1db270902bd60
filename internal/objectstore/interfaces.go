package objectstore

import (
	"context"

	"github.com/MKhiriev/resume-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/objectstore_mock.go -package=mock

// ObjectStorage is the remote store resumes are uploaded to.
type ObjectStorage interface {
	// Store uploads file and returns its public URL, key and resource class.
	// The file must already have passed the upload Policy.
	Store(ctx context.Context, file models.UploadFile) (models.StoredObject, error)
	// Delete removes the object at key. class must be the one the object was
	// stored with. Removing a missing object is not an error.
	Delete(ctx context.Context, key string, class models.ResourceClass) error
}
