package documents

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"compliance-backend/internal/extract"
	"compliance-backend/internal/shared/telemetry"
)

// Service contains business logic for documents.
type Service struct {
	Repo Repo
}

// Ingest extracts plain text from the payload and records the document as
// completed. This is the synchronous seam for seeding extracted_text; the
// production ingestion pipeline writes the same columns from outside.
func (s *Service) Ingest(ctx context.Context, workspaceID, userID, filename, contentType string, data []byte) (Document, error) {
	if filename == "" || len(data) == 0 {
		return Document{}, ErrInvalidInput
	}

	text, err := extract.ExtractTextFromBytes(ctx, data, contentType, filename)
	if err != nil {
		return Document{}, fmt.Errorf("%w: %s", ErrInvalidInput, err)
	}
	if text == "" {
		return Document{}, fmt.Errorf("%w: document has no extractable text", ErrInvalidInput)
	}

	now := time.Now().UTC()
	doc := Document{
		ID:               uuid.NewString(),
		WorkspaceID:      workspaceID,
		Filename:         filename,
		ContentType:      contentType,
		SizeBytes:        int64(len(data)),
		ExtractedText:    text,
		ProcessingStatus: StatusCompleted,
		UploadedBy:       userID,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	telemetry.Info("document.ingested", map[string]any{
		"document_id":  doc.ID,
		"workspace_id": workspaceID,
		"filename":     filename,
		"size_bytes":   doc.SizeBytes,
		"text_chars":   len(text),
	})
	return doc, nil
}

// Get returns a document scoped by workspace.
func (s *Service) Get(ctx context.Context, id, workspaceID string) (Document, error) {
	if id == "" || workspaceID == "" {
		return Document{}, errors.New("document id and workspace id are required")
	}
	return s.Repo.GetByID(ctx, id, workspaceID)
}

// List returns workspace documents, newest first.
func (s *Service) List(ctx context.Context, workspaceID string, limit, offset int) ([]Document, error) {
	if workspaceID == "" {
		return nil, errors.New("workspace id is required")
	}
	return s.Repo.List(ctx, workspaceID, limit, offset)
}
