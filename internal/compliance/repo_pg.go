package compliance

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// CreateCheck inserts a new check.
func (r *PGRepo) CreateCheck(ctx context.Context, check Check) error {
	const query = `
INSERT INTO compliance_checks (
    id, document_id, workspace_id, framework, status, created_at, completed_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	status := check.Status
	if status == "" {
		status = StatusPending
	}

	var completedAt sql.NullTime
	if check.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *check.CompletedAt, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		check.ID,
		check.DocumentID,
		check.WorkspaceID,
		check.Framework,
		status,
		check.CreatedAt,
		completedAt,
	)
	return err
}

// CreateIssue inserts a new issue.
func (r *PGRepo) CreateIssue(ctx context.Context, issue Issue) error {
	const query = `
INSERT INTO compliance_issues (
    id, check_id, title, severity, category, description, recommendation, llm_response, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	var llmResponse sql.NullString
	if issue.LLMResponse != "" {
		llmResponse = sql.NullString{String: issue.LLMResponse, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		issue.ID,
		issue.CheckID,
		issue.Title,
		issue.Severity,
		issue.Category,
		issue.Description,
		issue.Recommendation,
		llmResponse,
		issue.CreatedAt,
	)
	return err
}

// GetCompletedChecks returns completed checks for a document, oldest first.
func (r *PGRepo) GetCompletedChecks(ctx context.Context, documentID, workspaceID string) ([]Check, error) {
	const query = `
SELECT id, document_id, workspace_id, framework, status, created_at, completed_at
FROM compliance_checks
WHERE document_id = $1 AND workspace_id = $2 AND status = $3
ORDER BY created_at ASC`

	rows, err := r.DB.QueryContext(ctx, query, documentID, workspaceID, StatusCompleted)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var checks []Check
	for rows.Next() {
		var check Check
		var completedAt sql.NullTime
		if err := rows.Scan(
			&check.ID,
			&check.DocumentID,
			&check.WorkspaceID,
			&check.Framework,
			&check.Status,
			&check.CreatedAt,
			&completedAt,
		); err != nil {
			return nil, err
		}
		if completedAt.Valid {
			t := completedAt.Time
			check.CompletedAt = &t
		}
		checks = append(checks, check)
	}
	return checks, rows.Err()
}

// GetIssuesForChecks returns issues whose parent check is in checkIDs.
func (r *PGRepo) GetIssuesForChecks(ctx context.Context, checkIDs []string) ([]Issue, error) {
	if len(checkIDs) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(checkIDs))
	args := make([]any, len(checkIDs))
	for i, id := range checkIDs {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`
SELECT id, check_id, title, severity, category, description, recommendation, llm_response, created_at
FROM compliance_issues
WHERE check_id IN (%s)
ORDER BY check_id, created_at ASC`, strings.Join(placeholders, ", "))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var issues []Issue
	for rows.Next() {
		var issue Issue
		var category sql.NullString
		var description sql.NullString
		var recommendation sql.NullString
		var llmResponse sql.NullString
		if err := rows.Scan(
			&issue.ID,
			&issue.CheckID,
			&issue.Title,
			&issue.Severity,
			&category,
			&description,
			&recommendation,
			&llmResponse,
			&issue.CreatedAt,
		); err != nil {
			return nil, err
		}
		issue.Category = category.String
		issue.Description = description.String
		issue.Recommendation = recommendation.String
		issue.LLMResponse = llmResponse.String
		issues = append(issues, issue)
	}
	return issues, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
