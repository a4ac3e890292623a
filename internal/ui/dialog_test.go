package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestAlertResolvesOnEnter(t *testing.T) {
	d := NewAlert("Save failed", "unexpected status code 500")

	if got := d.Update(key("x")); got != ResultNone {
		t.Errorf("unbound key resolved alert with %v", got)
	}
	if got := d.Update(key("enter")); got != ResultDismissed {
		t.Errorf("enter on alert = %v, want ResultDismissed", got)
	}
}

func TestAlertResolvesOnEsc(t *testing.T) {
	d := NewAlert("Edit conflict", "the article changed while you were editing")
	if got := d.Update(key("esc")); got != ResultDismissed {
		t.Errorf("esc on alert = %v, want ResultDismissed", got)
	}
}

func TestConfirmDefaultsToNo(t *testing.T) {
	d := NewConfirm("Discard changes?", "You have unsaved changes.")

	// Reflexive Enter must not discard
	if got := d.Update(key("enter")); got != ResultNo {
		t.Errorf("enter on fresh confirm = %v, want ResultNo", got)
	}
}

func TestConfirmNavigateToYes(t *testing.T) {
	d := NewConfirm("Discard changes?", "You have unsaved changes.")

	if got := d.Update(key("left")); got != ResultNone {
		t.Fatalf("cursor move resolved dialog with %v", got)
	}
	if got := d.Update(key("enter")); got != ResultYes {
		t.Errorf("enter on Yes button = %v, want ResultYes", got)
	}
}

func TestConfirmShortcuts(t *testing.T) {
	d := NewConfirm("Discard changes?", "You have unsaved changes.")
	if got := d.Update(key("y")); got != ResultYes {
		t.Errorf("y = %v, want ResultYes", got)
	}
	if got := d.Update(key("n")); got != ResultNo {
		t.Errorf("n = %v, want ResultNo", got)
	}
	if got := d.Update(key("esc")); got != ResultNo {
		t.Errorf("esc on confirm = %v, want ResultNo (the safe exit)", got)
	}
}

func TestLoginPromptOffersOpen(t *testing.T) {
	d := NewLoginPrompt("https://wiki.example.com/login")

	// Cursor starts on "Open login page"
	if got := d.Update(key("enter")); got != ResultOpenLogin {
		t.Errorf("enter on login prompt = %v, want ResultOpenLogin", got)
	}
	if got := d.Update(key("o")); got != ResultOpenLogin {
		t.Errorf("o = %v, want ResultOpenLogin", got)
	}
	if got := d.Update(key("esc")); got != ResultDismissed {
		t.Errorf("esc on login prompt = %v, want ResultDismissed", got)
	}
}

func TestLoginPromptNotNow(t *testing.T) {
	d := NewLoginPrompt("https://wiki.example.com/login")

	d.Update(key("right"))
	if got := d.Update(key("enter")); got != ResultDismissed {
		t.Errorf("enter on Not now = %v, want ResultDismissed", got)
	}
}

func TestCursorStaysInBounds(t *testing.T) {
	d := NewConfirm("Discard changes?", "You have unsaved changes.")

	// Way past both edges
	for i := 0; i < 5; i++ {
		d.Update(key("right"))
	}
	if got := d.Update(key("enter")); got != ResultNo {
		t.Errorf("enter after overshooting right = %v, want ResultNo", got)
	}
	for i := 0; i < 5; i++ {
		d.Update(key("left"))
	}
	if got := d.Update(key("enter")); got != ResultYes {
		t.Errorf("enter after overshooting left = %v, want ResultYes", got)
	}
}

func TestViewContainsContent(t *testing.T) {
	d := NewLoginPrompt("https://wiki.example.com/login")
	view := d.View(80, 24)

	if !strings.Contains(view, "Session expired") {
		t.Error("View() missing dialog title")
	}
	if !strings.Contains(view, "wiki.example.com/login") {
		t.Error("View() missing login URL")
	}
}
