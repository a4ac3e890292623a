package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/wikied/wikied/internal/article"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func existingSnapshot() *article.Snapshot {
	return &article.Snapshot{
		Title:       "Rabbit Hole",
		Slug:        "rabbit-hole",
		Body:        "down we go",
		Rendered:    "<p>down we go</p>",
		Revision:    5,
		LastUpdated: "2026-08-23T10:00:00Z",
	}
}

// step runs one Update and narrows the result back to Model. Commands are
// returned but never executed, so sessions with a nil client are safe.
func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, want editor.Model", updated)
	}
	return next
}

func fetched(t *testing.T, snap *article.Snapshot) Model {
	t.Helper()
	m := New(nil, snap.Slug)
	return step(t, m, fetchFinishedMsg{snapshot: snap})
}

// editing returns a session that has fetched and opened the editor.
func editing(t *testing.T, snap *article.Snapshot) Model {
	t.Helper()
	m := fetched(t, snap)
	return step(t, m, keyMsg("e"))
}

func TestFetchShowsArticle(t *testing.T) {
	m := fetched(t, existingSnapshot())

	if m.State() != StateViewing {
		t.Errorf("state = %v, want viewing", m.State())
	}
	if m.Snapshot().Revision != 5 {
		t.Errorf("snapshot revision = %d, want 5", m.Snapshot().Revision)
	}

	view := m.View()
	if !strings.Contains(view, "Rabbit Hole") {
		t.Error("view missing article title")
	}
	if !strings.Contains(view, "Last updated") {
		t.Error("view missing last-updated footer")
	}
}

func TestFetchMissingArticleOpensEditor(t *testing.T) {
	m := New(nil, "rabbit-hole")
	m = step(t, m, fetchFinishedMsg{snapshot: article.NewArticle("rabbit-hole")})

	if m.State() != StateEditing {
		t.Errorf("state after fetching a missing article = %v, want editing", m.State())
	}
}

func TestOpenAndCancelWithoutChanges(t *testing.T) {
	m := editing(t, existingSnapshot())
	if m.State() != StateEditing {
		t.Fatalf("state = %v, want editing", m.State())
	}

	m = step(t, m, keyMsg("esc"))
	if m.State() != StateViewing {
		t.Errorf("esc with a clean form should close the editor, state = %v", m.State())
	}
	if m.dialog != nil {
		t.Error("esc with a clean form should not ask for confirmation")
	}
}

func TestTypingMakesDirty(t *testing.T) {
	m := editing(t, existingSnapshot())

	if m.Dirty() {
		t.Fatal("fresh editor should be clean")
	}

	// Body textarea has focus after opening
	m = step(t, m, keyMsg("x"))
	if !m.Dirty() {
		t.Error("typing into the body should make the session dirty")
	}
}

func TestCancelWithChangesAsksFirst(t *testing.T) {
	m := editing(t, existingSnapshot())
	m = step(t, m, keyMsg("x"))

	m = step(t, m, keyMsg("esc"))
	if m.dialog == nil {
		t.Fatal("esc with unsaved changes should open a confirm dialog")
	}
	if m.State() != StateEditing {
		t.Error("editor should stay open while the dialog is up")
	}

	// Decline: keep editing, text intact
	m = step(t, m, keyMsg("n"))
	if m.dialog != nil {
		t.Error("answering the dialog should close it")
	}
	if m.State() != StateEditing {
		t.Error("declining the discard should keep the editor open")
	}
	if !m.Dirty() {
		t.Error("declining the discard should keep the changes")
	}
}

func TestConfirmDiscardClosesEditor(t *testing.T) {
	m := editing(t, existingSnapshot())
	m = step(t, m, keyMsg("x"))
	m = step(t, m, keyMsg("esc"))

	m = step(t, m, keyMsg("y"))
	if m.State() != StateViewing {
		t.Errorf("confirming the discard should close the editor, state = %v", m.State())
	}
	if m.Dirty() {
		t.Error("discarded session should be clean again")
	}
}

func TestSubmitFreezesInput(t *testing.T) {
	m := editing(t, existingSnapshot())
	m = step(t, m, keyMsg("x"))

	m = step(t, m, keyMsg("ctrl+s"))
	if !m.submitting {
		t.Fatal("ctrl+s should mark the save in flight")
	}

	before := m.bodyInput.Value()
	m = step(t, m, keyMsg("z"))
	if m.bodyInput.Value() != before {
		t.Error("typing during an in-flight save should be ignored")
	}
}

func TestSavedClosesEditorAndAdvancesRevision(t *testing.T) {
	m := editing(t, existingSnapshot())
	m = step(t, m, keyMsg("x"))
	m = step(t, m, keyMsg("ctrl+s"))

	saved := existingSnapshot()
	saved.Body = "xdown we go"
	saved.Revision = 6
	m = step(t, m, saveFinishedMsg{result: &article.SaveResult{
		Outcome:  article.OutcomeSaved,
		Snapshot: saved,
	}})

	if m.submitting {
		t.Error("save completion should clear the in-flight flag")
	}
	if m.State() != StateViewing {
		t.Errorf("clean save should close the editor, state = %v", m.State())
	}
	if m.Snapshot().Revision != 6 {
		t.Errorf("snapshot revision = %d, want 6", m.Snapshot().Revision)
	}
	if got := m.form.Value("base_revision"); got != "6" {
		t.Errorf("next base_revision = %q, want 6", got)
	}
	if !strings.Contains(m.View(), "Saved revision 6") {
		t.Error("view should flash the saved revision")
	}
}

func TestConflictReseedsAndStaysOpen(t *testing.T) {
	m := editing(t, existingSnapshot())
	m = step(t, m, keyMsg("x"))
	m = step(t, m, keyMsg("ctrl+s"))

	theirs := existingSnapshot()
	theirs.Body = "their version"
	theirs.Revision = 7
	theirs.Conflict = true
	m = step(t, m, saveFinishedMsg{result: &article.SaveResult{
		Outcome:  article.OutcomeConflict,
		Snapshot: theirs,
	}})

	if m.submitting {
		t.Error("conflict should clear the in-flight flag")
	}
	if m.State() != StateEditing {
		t.Errorf("conflict should keep the editor open, state = %v", m.State())
	}
	if m.dialog == nil {
		t.Fatal("conflict should raise an alert dialog")
	}
	if got := m.bodyInput.Value(); got != "their version" {
		t.Errorf("body after conflict = %q, want the server's text", got)
	}
	if got := m.form.Value("base_revision"); got != "7" {
		t.Errorf("base_revision after conflict = %q, want 7 so the retry is based on it", got)
	}

	// Dismissing the alert leaves a clean editor seeded with server state
	m = step(t, m, keyMsg("enter"))
	if m.dialog != nil {
		t.Error("alert should close on enter")
	}
	if m.Dirty() {
		t.Error("reseeded editor should be clean against the server state")
	}
}

func TestReauthKeepsEdits(t *testing.T) {
	m := editing(t, existingSnapshot())
	m = step(t, m, keyMsg("x"))
	m = step(t, m, keyMsg("ctrl+s"))

	m = step(t, m, saveFinishedMsg{result: &article.SaveResult{
		Outcome:  article.OutcomeReauthRequired,
		LoginURL: "https://wiki.example.com/login",
	}})

	if m.dialog == nil {
		t.Fatal("reauth should raise the login dialog")
	}
	if m.loginURL != "https://wiki.example.com/login" {
		t.Errorf("loginURL = %q, want the redirect target", m.loginURL)
	}
	if !strings.Contains(m.bodyInput.Value(), "x") {
		t.Error("reauth must not touch the user's text")
	}

	// "Not now" keeps the editor open with the edits
	m = step(t, m, keyMsg("esc"))
	if m.State() != StateEditing || !m.Dirty() {
		t.Error("dismissing the login prompt should keep the dirty editor open")
	}
}

func TestFailedSaveShowsReason(t *testing.T) {
	m := editing(t, existingSnapshot())
	m = step(t, m, keyMsg("x"))
	m = step(t, m, keyMsg("ctrl+s"))

	m = step(t, m, saveFinishedMsg{result: &article.SaveResult{
		Outcome: article.OutcomeFailed,
		Reason:  "unexpected status code 500",
	}})

	if m.dialog == nil {
		t.Fatal("failed save should raise an alert")
	}
	if !strings.Contains(m.dialog.Message, "500") {
		t.Errorf("alert message = %q, want the failure reason", m.dialog.Message)
	}

	m = step(t, m, keyMsg("enter"))
	if m.State() != StateEditing || !m.Dirty() {
		t.Error("failed save should leave the dirty editor open for a retry")
	}
}

func TestSavedSlugFollowsServer(t *testing.T) {
	m := editing(t, existingSnapshot())
	m = step(t, m, keyMsg("ctrl+s"))

	moved := existingSnapshot()
	moved.Slug = "rabbit-warren"
	moved.Revision = 6
	m = step(t, m, saveFinishedMsg{result: &article.SaveResult{
		Outcome:  article.OutcomeSaved,
		Snapshot: moved,
	}})

	if m.Slug != "rabbit-warren" {
		t.Errorf("Slug = %q, want the server's canonical slug", m.Slug)
	}
}

func TestFetchReauthShowsLoginPrompt(t *testing.T) {
	m := New(nil, "rabbit-hole")
	m = step(t, m, fetchFinishedMsg{err: article.NewReauthError("https://wiki.example.com/login")})

	if m.dialog == nil {
		t.Fatal("reauth on fetch should raise the login dialog")
	}
	if m.loginURL != "https://wiki.example.com/login" {
		t.Errorf("loginURL = %q, want the redirect target", m.loginURL)
	}
}

func TestNewSeedsTerminalSize(t *testing.T) {
	m := New(nil, "rabbit-hole")

	// Before any WindowSizeMsg the model must already carry a usable
	// size, probed from the terminal with a headless fallback.
	if m.width < 1 || m.height < 1 {
		t.Errorf("initial size = %dx%d, want a positive probe result", m.width, m.height)
	}
	if m.contentWidth() < 1 {
		t.Errorf("contentWidth() = %d, want positive", m.contentWidth())
	}
}

func TestEditSurfaceIsBordered(t *testing.T) {
	m := editing(t, existingSnapshot())

	view := m.View()
	if !strings.Contains(view, "╭") {
		t.Error("edit view missing the bordered surface")
	}
}

func TestCtrlCQuitsThroughDialog(t *testing.T) {
	m := editing(t, existingSnapshot())
	m = step(t, m, keyMsg("x"))
	m = step(t, m, keyMsg("esc"))
	if m.dialog == nil {
		t.Fatal("esc with unsaved changes should open a confirm dialog")
	}

	_, cmd := m.Update(keyMsg("ctrl+c"))
	if cmd == nil {
		t.Fatal("ctrl+c under a dialog should produce a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c under a dialog should force-quit")
	}
}

func TestTabSwitchesFocus(t *testing.T) {
	m := editing(t, existingSnapshot())

	if m.titleInput.Focused() {
		t.Fatal("body should have focus when the editor opens")
	}

	m = step(t, m, keyMsg("tab"))
	if !m.titleInput.Focused() {
		t.Error("tab should move focus to the title")
	}

	m = step(t, m, keyMsg("tab"))
	if m.titleInput.Focused() {
		t.Error("tab should move focus back to the body")
	}
}
