package documents

import "context"

// Repo defines persistence operations for documents. All lookups are scoped
// by workspace id; a document id from another workspace must not resolve.
type Repo interface {
	Create(ctx context.Context, doc Document) error
	GetByID(ctx context.Context, id, workspaceID string) (Document, error)
	List(ctx context.Context, workspaceID string, limit, offset int) ([]Document, error)
	UpdateCorrection(ctx context.Context, id, workspaceID string, patch CorrectionPatch) error
}
