package compliance

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu     sync.RWMutex
	checks map[string]Check
	issues map[string]Issue
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		checks: make(map[string]Check),
		issues: make(map[string]Issue),
	}
}

// CreateCheck stores a check.
func (r *MemoryRepo) CreateCheck(ctx context.Context, check Check) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks[check.ID] = check
	return nil
}

// CreateIssue stores an issue.
func (r *MemoryRepo) CreateIssue(ctx context.Context, issue Issue) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.issues[issue.ID] = issue
	return nil
}

// GetCompletedChecks returns completed checks for a document.
func (r *MemoryRepo) GetCompletedChecks(ctx context.Context, documentID, workspaceID string) ([]Check, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Check
	for _, check := range r.checks {
		if check.DocumentID == documentID && check.WorkspaceID == workspaceID && check.Status == StatusCompleted {
			out = append(out, check)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// GetIssuesForChecks returns issues whose parent check is in checkIDs.
func (r *MemoryRepo) GetIssuesForChecks(ctx context.Context, checkIDs []string) ([]Issue, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(checkIDs) == 0 {
		return nil, nil
	}
	wanted := make(map[string]struct{}, len(checkIDs))
	for _, id := range checkIDs {
		wanted[id] = struct{}{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Issue
	for _, issue := range r.issues {
		if _, ok := wanted[issue.CheckID]; ok {
			out = append(out, issue)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CheckID != out[j].CheckID {
			return out[i].CheckID < out[j].CheckID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
