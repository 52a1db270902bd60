package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/resume-keeper/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var userColumns = []string{"id", "username", "email", "password_hash", "created_at"}

var resumeColumns = []string{
	"id",
	"filename",
	"url",
	"storage_key",
	"resource_class",
	"size",
	"mimetype",
	"uploaded_at",
	"uploaded_by",
}

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(models.User{}.TableName()).
		Columns(userColumns...).
		Values(user.ID, user.Username, user.Email, user.PasswordHash, user.CreatedAt).
		ToSql()
}

func buildSelectUserQuery(where sq.Eq) (string, []any, error) {
	return psql.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(where).
		ToSql()
}

func buildInsertResumeQuery(resume models.Resume) (string, []any, error) {
	return psql.Insert(models.Resume{}.TableName()).
		Columns(resumeColumns...).
		Values(
			resume.ID,
			resume.Filename,
			resume.URL,
			nullString(resume.StorageKey),
			string(resume.ResourceClass),
			resume.Size,
			resume.MimeType,
			resume.UploadedAt,
			nullString(resume.UploadedBy),
		).
		ToSql()
}

// buildSelectResumesQuery lists the catalog newest first. id breaks ties
// between records uploaded within the same timestamp resolution.
func buildSelectResumesQuery() (string, []any, error) {
	return psql.Select(resumeColumns...).
		From(models.Resume{}.TableName()).
		OrderBy("uploaded_at DESC", "id DESC").
		ToSql()
}

func buildSelectResumeByIDQuery(id string) (string, []any, error) {
	return psql.Select(resumeColumns...).
		From(models.Resume{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildDeleteResumeQuery(id string) (string, []any, error) {
	return psql.Delete(models.Resume{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (models.Resume, error) {
	var (
		resume        models.Resume
		storageKey    sql.NullString
		resourceClass string
		uploadedBy    sql.NullString
	)

	err := row.Scan(
		&resume.ID,
		&resume.Filename,
		&resume.URL,
		&storageKey,
		&resourceClass,
		&resume.Size,
		&resume.MimeType,
		&resume.UploadedAt,
		&uploadedBy,
	)
	if err != nil {
		return models.Resume{}, err
	}

	resume.StorageKey = storageKey.String
	resume.ResourceClass = models.ResourceClass(resourceClass)
	resume.UploadedBy = uploadedBy.String
	return resume, nil
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash, &user.CreatedAt)
	return user, err
}
