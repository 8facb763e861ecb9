package documents

import "time"

// Processing status values mirrored from the ingestion pipeline. Correction
// only runs against completed documents.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
	StatusFailed     = "failed"
)

// Document represents a workspace-owned document with its extracted text and
// the last correction written against it.
type Document struct {
	ID               string
	WorkspaceID      string
	Filename         string
	ContentType      string
	SizeBytes        int64
	ExtractedText    string
	ProcessingStatus string
	UploadedBy       string
	CorrectedText    *string
	CorrectedAt      *time.Time
	CorrectedBy      *string
	CorrectionsCount int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// CorrectionPatch is the overwrite applied by a successful correction run.
type CorrectionPatch struct {
	CorrectedText    string
	CorrectedAt      time.Time
	CorrectedBy      string
	CorrectionsCount int
}
