package remediation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"compliance-backend/internal/compliance"
	"compliance-backend/internal/documents"
	"compliance-backend/internal/llm"
	"compliance-backend/internal/shared/metrics"
	"compliance-backend/internal/shared/telemetry"
)

// Service runs the correction pipeline: aggregate document and issues,
// compile the prompt, call the model, persist the overwrite.
type Service struct {
	Docs             documents.Repo
	Compliance       compliance.Repo
	LLM              llm.Client
	SystemPromptFile string
}

// GenerateCorrection produces a corrected version of the document that
// addresses every completed-check issue. The result is always structured;
// failures carry a message classifiable via Classify. Persistence is the
// last step and only runs on a fully validated model response, so a failed
// run never mutates the document.
func (s *Service) GenerateCorrection(ctx context.Context, documentID, workspaceID, userID string) CorrectionResult {
	start := time.Now()
	metrics.IncCorrectionStarted()

	result, err := s.generate(ctx, documentID, workspaceID, userID)
	durationMs := metrics.SinceMillis(start)
	metrics.ObserveCorrectionDurationMs(durationMs)

	if err != nil {
		metrics.IncCorrectionFailed()
		telemetry.Error("correction.failed", map[string]any{
			"document_id":  documentID,
			"workspace_id": workspaceID,
			"user_id":      userID,
			"error":        err.Error(),
			"code":         string(Classify(err.Error())),
			"duration_ms":  durationMs,
		})
		return CorrectionResult{
			Success:     false,
			GeneratedAt: time.Now().UTC(),
			Error:       err.Error(),
		}
	}

	metrics.IncCorrectionCompleted()
	telemetry.Info("correction.completed", map[string]any{
		"document_id":      documentID,
		"workspace_id":     workspaceID,
		"user_id":          userID,
		"issues_addressed": result.IssuesAddressed,
		"model":            result.ModelUsed,
		"duration_ms":      durationMs,
	})
	return result
}

func (s *Service) generate(ctx context.Context, documentID, workspaceID, userID string) (CorrectionResult, error) {
	if documentID == "" || workspaceID == "" {
		return CorrectionResult{}, errors.New("document id and workspace id are required")
	}

	doc, err := s.Docs.GetByID(ctx, documentID, workspaceID)
	if err != nil {
		if errors.Is(err, documents.ErrNotFound) {
			return CorrectionResult{}, errors.New("document not found")
		}
		return CorrectionResult{}, fmt.Errorf("document lookup: %w", err)
	}

	// The ingestion pipeline may still be writing extracted_text; refuse to
	// race it.
	if doc.ProcessingStatus != documents.StatusCompleted {
		return CorrectionResult{}, fmt.Errorf("document is still processing (status %s)", doc.ProcessingStatus)
	}
	if strings.TrimSpace(doc.ExtractedText) == "" {
		return CorrectionResult{}, errors.New("document has no extracted text")
	}

	checks, err := s.Compliance.GetCompletedChecks(ctx, documentID, workspaceID)
	if err != nil {
		return CorrectionResult{}, fmt.Errorf("check lookup: %w", err)
	}
	if len(checks) == 0 {
		return CorrectionResult{}, errors.New("No compliance checks found for this document")
	}

	checkIDs := make([]string, 0, len(checks))
	for _, check := range checks {
		checkIDs = append(checkIDs, check.ID)
	}
	issues, err := s.Compliance.GetIssuesForChecks(ctx, checkIDs)
	if err != nil {
		return CorrectionResult{}, fmt.Errorf("issue lookup: %w", err)
	}
	if len(issues) == 0 {
		return CorrectionResult{}, errors.New("No compliance issues found - document appears compliant")
	}

	joined := compliance.JoinIssues(checks, issues)
	userPrompt := BuildCorrectionPrompt(doc.ExtractedText, joined, doc.Filename)
	systemPrompt := llm.CorrectionSystemPrompt(s.SystemPromptFile)

	correctedText, err := s.LLM.CorrectDocument(ctx, llm.CorrectInput{
		SystemPrompt: systemPrompt,
		UserPrompt:   userPrompt,
	})
	if err != nil {
		return CorrectionResult{}, err
	}

	generatedAt := time.Now().UTC()
	if err := s.Docs.UpdateCorrection(ctx, documentID, workspaceID, documents.CorrectionPatch{
		CorrectedText:    correctedText,
		CorrectedAt:      generatedAt,
		CorrectedBy:      userID,
		CorrectionsCount: len(joined),
	}); err != nil {
		return CorrectionResult{}, fmt.Errorf("persist correction: %w", err)
	}

	labels := make([]string, 0, len(joined))
	for _, issue := range joined {
		labels = append(labels, fmt.Sprintf("%s: %s", issue.Severity, issue.Title))
	}

	return CorrectionResult{
		Success:            true,
		CorrectedText:      correctedText,
		CorrectionsApplied: labels,
		GeneratedAt:        generatedAt,
		ModelUsed:          s.LLM.Model(),
		IssuesAddressed:    len(joined),
	}, nil
}

// GetCorrection returns the stored correction for a document, if any.
func (s *Service) GetCorrection(ctx context.Context, documentID, workspaceID string) (CorrectionView, error) {
	doc, err := s.Docs.GetByID(ctx, documentID, workspaceID)
	if err != nil {
		return CorrectionView{}, err
	}
	if doc.CorrectedText == nil || doc.CorrectedAt == nil {
		return CorrectionView{}, documents.ErrNotFound
	}

	view := CorrectionView{
		DocumentID:       doc.ID,
		CorrectedText:    *doc.CorrectedText,
		CorrectedAt:      *doc.CorrectedAt,
		CorrectionsCount: doc.CorrectionsCount,
	}
	if doc.CorrectedBy != nil {
		view.CorrectedBy = *doc.CorrectedBy
	}
	return view, nil
}
