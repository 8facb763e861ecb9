package documents

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo used when no database is
// configured (dev) and by handler tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Document // id -> document
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Document),
	}
}

// Create stores a new document.
func (r *MemoryRepo) Create(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[doc.ID] = doc
	return nil
}

// GetByID returns a document scoped by workspace.
func (r *MemoryRepo) GetByID(ctx context.Context, id, workspaceID string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.data[id]
	if !ok || doc.WorkspaceID != workspaceID {
		return Document{}, ErrNotFound
	}
	return doc, nil
}

// List returns workspace documents ordered newest-first.
func (r *MemoryRepo) List(ctx context.Context, workspaceID string, limit, offset int) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	docs := make([]Document, 0)
	for _, doc := range r.data {
		if doc.WorkspaceID == workspaceID {
			docs = append(docs, doc)
		}
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})

	if offset >= len(docs) {
		return []Document{}, nil
	}
	docs = docs[offset:]
	if limit > 0 && limit < len(docs) {
		docs = docs[:limit]
	}
	return docs, nil
}

// UpdateCorrection overwrites the correction fields on a document.
func (r *MemoryRepo) UpdateCorrection(ctx context.Context, id, workspaceID string, patch CorrectionPatch) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	doc, ok := r.data[id]
	if !ok || doc.WorkspaceID != workspaceID {
		return ErrNotFound
	}
	text := patch.CorrectedText
	correctedBy := patch.CorrectedBy
	correctedAt := patch.CorrectedAt
	doc.CorrectedText = &text
	doc.CorrectedAt = &correctedAt
	doc.CorrectedBy = &correctedBy
	doc.CorrectionsCount = patch.CorrectionsCount
	doc.UpdatedAt = time.Now().UTC()
	r.data[id] = doc
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
