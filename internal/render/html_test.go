package render

import (
	"strings"
	"testing"
)

func TestTerminalConvertsParagraphs(t *testing.T) {
	got := Terminal("<h1>Rabbit Hole</h1><p>Down we go.</p>")

	if !strings.Contains(got, "Rabbit Hole") {
		t.Errorf("Terminal() = %q, want heading text preserved", got)
	}
	if !strings.Contains(got, "Down we go.") {
		t.Errorf("Terminal() = %q, want paragraph text preserved", got)
	}
	if strings.Contains(got, "<p>") {
		t.Errorf("Terminal() = %q, tags should be stripped", got)
	}
}

func TestTerminalEmptyInput(t *testing.T) {
	if got := Terminal(""); got != "" {
		t.Errorf("Terminal(\"\") = %q, want empty", got)
	}

	if got := Terminal("   \n  "); got != "" {
		t.Errorf("Terminal(whitespace) = %q, want empty", got)
	}
}

func TestHeightHint(t *testing.T) {
	if got := HeightHint(""); got != 1 {
		t.Errorf("HeightHint(empty) = %d, want 1", got)
	}

	multi := "<p>one</p><p>two</p><p>three</p>"
	if got := HeightHint(multi); got < 3 {
		t.Errorf("HeightHint(three paragraphs) = %d, want at least 3", got)
	}
}
