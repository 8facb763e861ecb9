package llm

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCorrectionSystemPromptDefault(t *testing.T) {
	prompt := CorrectionSystemPrompt("")
	if prompt == "" {
		t.Fatal("embedded policy must not be empty")
	}
	if !strings.Contains(prompt, "compliance") {
		t.Errorf("embedded policy looks wrong: %q", prompt[:60])
	}
}

func TestCorrectionSystemPromptFileOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "policy.txt")
	if err := os.WriteFile(path, []byte("custom policy\n"), 0o600); err != nil {
		t.Fatalf("write override: %v", err)
	}

	if got := CorrectionSystemPrompt(path); got != "custom policy" {
		t.Errorf("override = %q", got)
	}
}

func TestCorrectionSystemPromptUnreadableOverrideFallsBack(t *testing.T) {
	got := CorrectionSystemPrompt(filepath.Join(t.TempDir(), "missing.txt"))
	if got != CorrectionSystemPrompt("") {
		t.Errorf("unreadable override should fall back to the embedded policy")
	}
}

func TestCorrectionSystemPromptEmptyOverrideFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("   \n"), 0o600); err != nil {
		t.Fatalf("write override: %v", err)
	}
	if got := CorrectionSystemPrompt(path); got != CorrectionSystemPrompt("") {
		t.Errorf("blank override should fall back to the embedded policy")
	}
}
