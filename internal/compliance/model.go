package compliance

import "time"

// Check status values written by the upstream analyzer. Correction only
// consumes completed checks.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Check is one analysis run of a document against one framework.
type Check struct {
	ID          string
	DocumentID  string
	WorkspaceID string
	Framework   string
	Status      string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// Issue is one finding produced by a check. LLMResponse is an opaque field
// whose shape has drifted across analyzer versions; use ResolveSuggestedText
// to read a fix snippet out of it.
type Issue struct {
	ID             string
	CheckID        string
	Title          string
	Severity       string
	Category       string
	Description    string
	Recommendation string
	LLMResponse    string
	CreatedAt      time.Time
}

// IssueWithFramework is an issue joined to its parent check's framework,
// with the suggested fix text already resolved.
type IssueWithFramework struct {
	Issue
	Framework     string
	SuggestedText string
}
