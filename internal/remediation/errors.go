package remediation

import (
	"net/http"
	"strings"
)

// ErrorCode is the closed failure taxonomy surfaced to callers.
type ErrorCode string

const (
	CodeDocumentNotFound ErrorCode = "DOCUMENT_NOT_FOUND"
	CodeNoExtractedText  ErrorCode = "NO_EXTRACTED_TEXT"
	CodeNoIssuesFound    ErrorCode = "NO_ISSUES_FOUND"
	CodeLLMError         ErrorCode = "LLM_ERROR"
	CodeCorrectionFailed ErrorCode = "CORRECTION_FAILED"
)

// Classify maps an internal failure message to an error code. Unmatched
// causes fall through to CORRECTION_FAILED.
func Classify(message string) ErrorCode {
	switch {
	case strings.Contains(message, "not found"):
		return CodeDocumentNotFound
	case strings.Contains(message, "no extracted text"):
		return CodeNoExtractedText
	case strings.Contains(message, "No compliance"):
		return CodeNoIssuesFound
	case strings.Contains(message, "openai"):
		return CodeLLMError
	default:
		return CodeCorrectionFailed
	}
}

// HTTPStatus chooses the response status for a classified failure: 400 for
// every classified business error, 500 for the catch-all.
func HTTPStatus(code ErrorCode) int {
	if code == CodeCorrectionFailed {
		return http.StatusInternalServerError
	}
	return http.StatusBadRequest
}
