package compliance

import (
	"encoding/json"
	"strings"
)

// ResolveSuggestedText extracts a fix snippet from the analyzer's stored
// llm_response. The field's shape has changed across analyzer versions:
// newer rows hold a JSON object with a "suggested_text" key, older ones used
// "fix", and the oldest stored raw text. Malformed JSON degrades to the raw
// string verbatim; this function never errors.
func ResolveSuggestedText(llmResponse string) string {
	raw := strings.TrimSpace(llmResponse)
	if raw == "" {
		return ""
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return raw
	}

	if text, ok := parsed["suggested_text"].(string); ok && strings.TrimSpace(text) != "" {
		return strings.TrimSpace(text)
	}
	if text, ok := parsed["fix"].(string); ok && strings.TrimSpace(text) != "" {
		return strings.TrimSpace(text)
	}
	return ""
}
