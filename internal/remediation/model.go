package remediation

import "time"

// CorrectionResult is the outcome of one correction run. It is returned to
// the caller and never persisted as its own entity; the document row keeps
// only the last corrected text.
type CorrectionResult struct {
	Success            bool      `json:"success"`
	CorrectedText      string    `json:"correctedText,omitempty"`
	CorrectionsApplied []string  `json:"correctionsApplied,omitempty"`
	GeneratedAt        time.Time `json:"generatedAt"`
	ModelUsed          string    `json:"modelUsed,omitempty"`
	IssuesAddressed    int       `json:"issuesAddressed"`
	Error              string    `json:"error,omitempty"`
}

// CorrectionView is the stored correction read back from a document.
type CorrectionView struct {
	DocumentID       string    `json:"documentId"`
	CorrectedText    string    `json:"correctedText"`
	CorrectedAt      time.Time `json:"correctedAt"`
	CorrectedBy      string    `json:"correctedBy"`
	CorrectionsCount int       `json:"correctionsCount"`
}
