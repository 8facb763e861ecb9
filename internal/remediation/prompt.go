package remediation

import (
	"fmt"
	"strings"

	"compliance-backend/internal/compliance"
)

// BuildCorrectionPrompt renders the document and its issues into a single
// remediation instruction. Pure function, no I/O; the footer's issue count
// always equals the number of numbered blocks rendered.
func BuildCorrectionPrompt(documentText string, issues []compliance.IssueWithFramework, filename string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Below is the document %q (%d characters) followed by the compliance issues found in it.\n\n", filename, len(documentText))
	b.WriteString("ORIGINAL DOCUMENT:\n")
	b.WriteString(documentText)
	b.WriteString("\n\nCOMPLIANCE ISSUES TO FIX:\n")

	for i, issue := range issues {
		fmt.Fprintf(&b, "\nIssue %d: %s\n", i+1, issue.Title)
		fmt.Fprintf(&b, "Severity: %s\n", issue.Severity)
		if issue.Framework != "" {
			fmt.Fprintf(&b, "Framework: %s\n", issue.Framework)
		}
		if issue.Category != "" {
			fmt.Fprintf(&b, "Category: %s\n", issue.Category)
		}
		if issue.Description != "" {
			fmt.Fprintf(&b, "Description: %s\n", issue.Description)
		}
		if issue.Recommendation != "" {
			fmt.Fprintf(&b, "Recommendation: %s\n", issue.Recommendation)
		}
		if issue.SuggestedText != "" {
			fmt.Fprintf(&b, "Suggested Text: %s\n", issue.SuggestedText)
		}
	}

	count := len(issues)
	fmt.Fprintf(&b, "\nINSTRUCTIONS:\nRewrite the document so that all %d issues above are resolved.\n", count)
	b.WriteString("- Preserve the document's structure and any content that is already compliant.\n")
	b.WriteString("- Add missing sections where gaps exist, such as data retention schedules, breach notification procedures, or access control policies.\n")
	b.WriteString("- Use markdown heading levels (#, ##, ###) consistently.\n")
	b.WriteString("- Return only the corrected document, with no commentary before or after.\n")
	fmt.Fprintf(&b, "- Address every one of the %d numbered issues.\n", count)

	return b.String()
}
