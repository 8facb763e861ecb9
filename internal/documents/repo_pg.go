package documents

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const documentColumns = `
id, workspace_id, filename, content_type, size_bytes, extracted_text,
processing_status, uploaded_by, corrected_text, corrected_at, corrected_by,
corrections_count, created_at, updated_at`

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
    id,
    workspace_id,
    filename,
    content_type,
    size_bytes,
    extracted_text,
    processing_status,
    uploaded_by,
    corrections_count,
    created_at,
    updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	status := doc.ProcessingStatus
	if status == "" {
		status = StatusPending
	}

	var extracted sql.NullString
	if doc.ExtractedText != "" {
		extracted = sql.NullString{String: doc.ExtractedText, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.WorkspaceID,
		doc.Filename,
		doc.ContentType,
		doc.SizeBytes,
		extracted,
		status,
		doc.UploadedBy,
		doc.CorrectionsCount,
		doc.CreatedAt,
		doc.UpdatedAt,
	)
	return err
}

// GetByID returns a document scoped by workspace.
func (r *PGRepo) GetByID(ctx context.Context, id, workspaceID string) (Document, error) {
	const query = `
SELECT` + documentColumns + `
FROM documents
WHERE id = $1 AND workspace_id = $2
LIMIT 1`

	row := r.DB.QueryRowContext(ctx, query, id, workspaceID)
	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

// List returns workspace documents ordered newest-first.
func (r *PGRepo) List(ctx context.Context, workspaceID string, limit, offset int) ([]Document, error) {
	const query = `
SELECT` + documentColumns + `
FROM documents
WHERE workspace_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, workspaceID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

// UpdateCorrection overwrites the correction fields on a document. The
// predicate includes workspace_id so a colliding id from another workspace is
// never touched.
func (r *PGRepo) UpdateCorrection(ctx context.Context, id, workspaceID string, patch CorrectionPatch) error {
	const query = `
UPDATE documents
SET corrected_text = $3,
    corrected_at = $4,
    corrected_by = $5,
    corrections_count = $6,
    updated_at = $7
WHERE id = $1 AND workspace_id = $2`

	res, err := r.DB.ExecContext(
		ctx,
		query,
		id,
		workspaceID,
		patch.CorrectedText,
		patch.CorrectedAt,
		patch.CorrectedBy,
		patch.CorrectionsCount,
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (Document, error) {
	var doc Document
	var contentType sql.NullString
	var extracted sql.NullString
	var uploadedBy sql.NullString
	var correctedText sql.NullString
	var correctedAt sql.NullTime
	var correctedBy sql.NullString

	err := row.Scan(
		&doc.ID,
		&doc.WorkspaceID,
		&doc.Filename,
		&contentType,
		&doc.SizeBytes,
		&extracted,
		&doc.ProcessingStatus,
		&uploadedBy,
		&correctedText,
		&correctedAt,
		&correctedBy,
		&doc.CorrectionsCount,
		&doc.CreatedAt,
		&doc.UpdatedAt,
	)
	if err != nil {
		return Document{}, err
	}

	doc.ContentType = contentType.String
	doc.ExtractedText = extracted.String
	doc.UploadedBy = uploadedBy.String
	if correctedText.Valid {
		doc.CorrectedText = &correctedText.String
	}
	if correctedAt.Valid {
		t := correctedAt.Time
		doc.CorrectedAt = &t
	}
	if correctedBy.Valid {
		doc.CorrectedBy = &correctedBy.String
	}
	return doc, nil
}

var _ Repo = (*PGRepo)(nil)
