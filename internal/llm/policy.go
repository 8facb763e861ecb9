package llm

import (
	_ "embed"
	"log"
	"os"
	"strings"
)

//go:embed prompts/correction_system.txt
var correctionSystemPrompt string

// CorrectionSystemPrompt returns the system policy for correction calls.
// The embedded ten-point policy is the default; CORRECTION_SYSTEM_PROMPT_FILE
// (or the explicit path argument) overrides it so the policy can be tuned
// without a redeploy.
func CorrectionSystemPrompt(overridePath string) string {
	path := strings.TrimSpace(overridePath)
	if path == "" {
		path = strings.TrimSpace(os.Getenv("CORRECTION_SYSTEM_PROMPT_FILE"))
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			log.Printf("correction system prompt override %s unreadable, using embedded policy: %v", path, err)
		} else if text := strings.TrimSpace(string(raw)); text != "" {
			return text
		}
	}
	return strings.TrimSpace(correctionSystemPrompt)
}
