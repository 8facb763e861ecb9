package compliance

import "context"

// Repo defines persistence operations for compliance checks and issues. The
// upstream analyzer writes these rows; this service reads them and, in dev,
// seeds them for local testing.
type Repo interface {
	CreateCheck(ctx context.Context, check Check) error
	CreateIssue(ctx context.Context, issue Issue) error
	GetCompletedChecks(ctx context.Context, documentID, workspaceID string) ([]Check, error)
	GetIssuesForChecks(ctx context.Context, checkIDs []string) ([]Issue, error)
}

// JoinIssues attaches each issue's framework by looking up its parent check
// and resolves the suggested fix text.
func JoinIssues(checks []Check, issues []Issue) []IssueWithFramework {
	frameworkByCheck := make(map[string]string, len(checks))
	for _, check := range checks {
		frameworkByCheck[check.ID] = check.Framework
	}

	joined := make([]IssueWithFramework, 0, len(issues))
	for _, issue := range issues {
		joined = append(joined, IssueWithFramework{
			Issue:         issue,
			Framework:     frameworkByCheck[issue.CheckID],
			SuggestedText: ResolveSuggestedText(issue.LLMResponse),
		})
	}
	return joined
}
