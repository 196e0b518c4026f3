package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres. Head order is approximated with a
// monotonically increasing sequence column: newest insert, highest seq.
type PGRepo struct {
	DB *sql.DB
}

const documentColumns = `
id, name, folder, client_id, frequency, due_date,
uploaded_by, uploaded_at, mime_type, size_bytes, size_label, storage_key,
requested_by, requested_at, request_description,
update_requested_by, update_requested_at, update_description, requested_version,
created_at`

// InsertFront inserts a new document; seq assignment keeps it at the head.
func (r *PGRepo) InsertFront(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
    id, name, folder, client_id, frequency, due_date,
    uploaded_by, uploaded_at, mime_type, size_bytes, size_label, storage_key,
    requested_by, requested_at, request_description,
    update_requested_by, update_requested_at, update_description, requested_version,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	args := documentArgs(doc)
	_, err := r.DB.ExecContext(ctx, query, args...)
	return err
}

// Get fetches a document by ID.
func (r *PGRepo) Get(ctx context.Context, id string) (Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents WHERE id = $1 LIMIT 1`
	doc, err := scanDocument(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

// Update overwrites all mutable fields of a document.
func (r *PGRepo) Update(ctx context.Context, doc Document) error {
	const query = `
UPDATE documents SET
    name = $2, folder = $3, client_id = $4, frequency = $5, due_date = $6,
    uploaded_by = $7, uploaded_at = $8, mime_type = $9, size_bytes = $10, size_label = $11, storage_key = $12,
    requested_by = $13, requested_at = $14, request_description = $15,
    update_requested_by = $16, update_requested_at = $17, update_description = $18, requested_version = $19,
    created_at = $20
WHERE id = $1`

	args := documentArgs(doc)
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a document by ID. Unknown IDs are not an error.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, id)
	return err
}

// List returns documents newest-first, optionally filtered by client.
func (r *PGRepo) List(ctx context.Context, filter Filter) ([]Document, error) {
	query := `SELECT ` + documentColumns + ` FROM documents`
	var args []any
	if filter.ClientID != "" {
		query += ` WHERE client_id = $1`
		args = append(args, filter.ClientID)
	}
	query += ` ORDER BY seq DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var (
		doc       Document
		clientID  sql.NullString
		frequency sql.NullString
		dueDate   sql.NullTime

		uploadedBy sql.NullString
		uploadedAt sql.NullTime
		mimeType   sql.NullString
		sizeBytes  sql.NullInt64
		sizeLabel  sql.NullString
		storageKey sql.NullString

		requestedBy sql.NullString
		requestedAt sql.NullTime
		requestDesc sql.NullString

		updBy      sql.NullString
		updAt      sql.NullTime
		updDesc    sql.NullString
		updVersion sql.NullString
	)

	err := row.Scan(
		&doc.ID, &doc.Name, &doc.Folder, &clientID, &frequency, &dueDate,
		&uploadedBy, &uploadedAt, &mimeType, &sizeBytes, &sizeLabel, &storageKey,
		&requestedBy, &requestedAt, &requestDesc,
		&updBy, &updAt, &updDesc, &updVersion,
		&doc.CreatedAt,
	)
	if err != nil {
		return Document{}, err
	}

	if clientID.Valid {
		doc.ClientID = clientID.String
	}
	if frequency.Valid {
		doc.Frequency = Frequency(frequency.String)
	}
	if dueDate.Valid {
		t := dueDate.Time
		doc.DueDate = &t
	}
	if uploadedAt.Valid {
		doc.Upload = &UploadInfo{
			UploadedBy: uploadedBy.String,
			UploadedAt: uploadedAt.Time,
			MimeType:   mimeType.String,
			SizeBytes:  sizeBytes.Int64,
			SizeLabel:  sizeLabel.String,
			StorageKey: storageKey.String,
		}
	}
	if requestedAt.Valid {
		doc.Request = &RequestInfo{
			RequestedBy: requestedBy.String,
			RequestedAt: requestedAt.Time,
			Description: requestDesc.String,
		}
	}
	if updAt.Valid {
		doc.UpdateRequest = &UpdateRequestInfo{
			RequestedBy:      updBy.String,
			RequestedAt:      updAt.Time,
			Description:      updDesc.String,
			RequestedVersion: updVersion.String,
		}
	}
	return doc, nil
}

func documentArgs(doc Document) []any {
	var (
		clientID  = nullString(doc.ClientID)
		frequency = nullString(string(doc.Frequency))
		dueDate   sql.NullTime

		uploadedBy sql.NullString
		uploadedAt sql.NullTime
		mimeType   sql.NullString
		sizeBytes  sql.NullInt64
		sizeLabel  sql.NullString
		storageKey sql.NullString

		requestedBy sql.NullString
		requestedAt sql.NullTime
		requestDesc sql.NullString

		updBy      sql.NullString
		updAt      sql.NullTime
		updDesc    sql.NullString
		updVersion sql.NullString
	)

	if doc.DueDate != nil {
		dueDate = sql.NullTime{Time: *doc.DueDate, Valid: true}
	}
	if doc.Upload != nil {
		uploadedBy = nullString(doc.Upload.UploadedBy)
		uploadedAt = sql.NullTime{Time: doc.Upload.UploadedAt, Valid: true}
		mimeType = nullString(doc.Upload.MimeType)
		sizeBytes = sql.NullInt64{Int64: doc.Upload.SizeBytes, Valid: true}
		sizeLabel = nullString(doc.Upload.SizeLabel)
		storageKey = nullString(doc.Upload.StorageKey)
	}
	if doc.Request != nil {
		requestedBy = nullString(doc.Request.RequestedBy)
		requestedAt = sql.NullTime{Time: doc.Request.RequestedAt, Valid: true}
		requestDesc = nullString(doc.Request.Description)
	}
	if doc.UpdateRequest != nil {
		updBy = nullString(doc.UpdateRequest.RequestedBy)
		updAt = sql.NullTime{Time: doc.UpdateRequest.RequestedAt, Valid: true}
		updDesc = nullString(doc.UpdateRequest.Description)
		updVersion = nullString(doc.UpdateRequest.RequestedVersion)
	}

	return []any{
		doc.ID, doc.Name, doc.Folder, clientID, frequency, dueDate,
		uploadedBy, uploadedAt, mimeType, sizeBytes, sizeLabel, storageKey,
		requestedBy, requestedAt, requestDesc,
		updBy, updAt, updDesc, updVersion,
		doc.CreatedAt,
	}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

var _ Repo = (*PGRepo)(nil)
