package editor

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wikied/wikied/internal/article"
	"github.com/wikied/wikied/internal/form"
	"github.com/wikied/wikied/internal/logging"
	"github.com/wikied/wikied/internal/render"
	"github.com/wikied/wikied/internal/ui"
	"github.com/wikied/wikied/internal/urls"
)

// State is the editor's top-level mode.
type State int

const (
	// StateViewing shows the rendered article.
	StateViewing State = iota
	// StateEditing shows the title and body inputs.
	StateEditing
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateViewing:
		return "viewing"
	case StateEditing:
		return "editing"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// dialogAction records what a pending confirm dialog decides, so the
// answer can be interpreted when it arrives.
type dialogAction int

const (
	actionNone dialogAction = iota
	// actionDiscardClose discards unsaved changes and returns to viewing.
	actionDiscardClose
	// actionDiscardQuit discards unsaved changes and quits the program.
	actionDiscardQuit
	// actionOpenLogin offers to open the login page after a session expiry.
	actionOpenLogin
)

// keyMap defines the editor key bindings.
type keyMap struct {
	Edit   key.Binding
	Save   key.Binding
	Cancel key.Binding
	Switch key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Save, k.Cancel, k.Switch, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Edit, k.Save}, {k.Cancel, k.Switch, k.Quit}}
}

func newKeyMap() keyMap {
	return keyMap{
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "edit"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "title/body"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model is the editor session for a single article. It is an immutable
// bubbletea model: Update returns a modified copy.
type Model struct {
	// Client talks to the wiki server. Left nil in tests that inject
	// messages directly; Update never dereferences it outside commands.
	Client *article.Client

	// Slug identifies the article being edited. Updated from the server
	// snapshot after a save, mirroring the address-bar rewrite a browser
	// client would do.
	Slug string

	// LoginPath is the server's login page path, used when a save hits a
	// redirect whose target the server didn't reveal usefully.
	LoginPath string

	// BrowserCommand overrides the OS browser for opening login pages.
	BrowserCommand string

	state    State
	snapshot *article.Snapshot
	form     *form.Form

	titleInput textinput.Model
	bodyInput  textarea.Model
	spinner    spinner.Model
	help       help.Model
	keys       keyMap

	// submitting disables all editing input while a save is in flight.
	// Cleared on every saveFinishedMsg path.
	submitting bool

	// bodySized is set once the textarea height has been seeded from the
	// rendered article, so later re-opens keep the user's size.
	bodySized bool

	// dialog is the single modal slot. While non-nil it owns all key
	// input; dialogAction says what a Yes/OpenLogin answer means.
	dialog       *ui.Dialog
	dialogAction dialogAction

	// loginURL is kept from the last reauth detection for the login dialog.
	loginURL string

	// status is a transient line shown under the article after a save.
	status    string
	statusErr bool

	// loading is true until the initial fetch completes.
	loading bool
	// fatalErr aborts the session; shown with a quit hint.
	fatalErr error

	width  int
	height int
}

// New creates an editor session for the given slug. The article is
// fetched when the program starts. The initial size is probed from the
// terminal so the first frame renders at the right width; bubbletea's
// WindowSizeMsg takes over from there.
func New(client *article.Client, slug string) Model {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.CharLimit = 200

	ta := textarea.New()
	ta.Placeholder = "Write the article body here."
	ta.ShowLineNumbers = false

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	width, height := ui.GetTerminalSize()

	return Model{
		Slug:       slug,
		Client:     client,
		state:      StateViewing,
		titleInput: ti,
		bodyInput:  ta,
		spinner:    sp,
		help:       help.New(),
		keys:       newKeyMap(),
		loading:    true,
		width:      width,
		height:     height,
	}
}

// Init starts the spinner and the initial fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.fetchCmd())
}

// fetchCmd fetches the article snapshot in the background.
func (m Model) fetchCmd() tea.Cmd {
	client, slug := m.Client, m.Slug
	return func() tea.Msg {
		snapshot, err := client.Fetch(context.Background(), slug)
		return fetchFinishedMsg{snapshot: snapshot, err: err}
	}
}

// saveCmd submits the form in the background. Editing input is frozen
// while the save is in flight, so the form is not mutated under the
// command goroutine.
func (m Model) saveCmd() tea.Cmd {
	client, slug, f := m.Client, m.Slug, m.form
	return func() tea.Msg {
		return saveFinishedMsg{result: client.Save(context.Background(), slug, f)}
	}
}

// openLoginCmd opens the login page in a browser.
func (m Model) openLoginCmd(target string) tea.Cmd {
	command := m.BrowserCommand
	return func() tea.Msg {
		return browserOpenedMsg{err: urls.OpenInBrowser(command, target)}
	}
}

// Update handles one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.titleInput.Width = m.contentWidth() - 4
		m.bodyInput.SetWidth(m.contentWidth() - 4)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case fetchFinishedMsg:
		return m.handleFetchFinished(msg)

	case saveFinishedMsg:
		return m.handleSaveFinished(msg)

	case browserOpenedMsg:
		if msg.err != nil {
			m.dialog = ui.NewAlert("Browser", fmt.Sprintf("Could not open the browser: %v", msg.err))
			m.dialogAction = actionNone
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a key press according to the modal state.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// A fatal error leaves only quitting
	if m.fatalErr != nil {
		return m, tea.Quit
	}

	// A visible dialog owns all input, except the force quit
	if m.dialog != nil {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleDialogKey(msg)
	}

	// While a save is in flight, editing input is frozen; only a force
	// quit gets through
	if m.submitting {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.state {
	case StateViewing:
		return m.handleViewingKey(msg)
	case StateEditing:
		return m.handleEditingKey(msg)
	}
	return m, nil
}

// handleDialogKey feeds a key press to the open dialog and acts on the
// resolution.
func (m Model) handleDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	result := m.dialog.Update(msg)
	if result == ui.ResultNone {
		return m, nil
	}

	action := m.dialogAction
	m.dialog = nil
	m.dialogAction = actionNone

	// The login prompt can appear before any snapshot exists (session
	// expired at startup); once it resolves, try the fetch again
	var retry tea.Cmd
	if action == actionOpenLogin && m.snapshot == nil {
		m.loading = true
		retry = tea.Batch(m.spinner.Tick, m.fetchCmd())
	}

	switch result {
	case ui.ResultYes:
		switch action {
		case actionDiscardClose:
			return m.closeEditor(), nil
		case actionDiscardQuit:
			return m, tea.Quit
		}

	case ui.ResultOpenLogin:
		return m, tea.Batch(m.openLoginCmd(m.loginURL), retry)
	}

	// ResultNo and ResultDismissed just close the dialog
	return m, retry
}

// handleViewingKey handles input while the rendered article is shown.
func (m Model) handleViewingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Edit):
		if m.loading {
			return m, nil
		}
		return m.openEditor()
	}
	return m, nil
}

// handleEditingKey handles input while the edit surface is open.
func (m Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		return m.submit()

	case "esc":
		return m.requestClose()

	case "ctrl+c":
		m.syncForm()
		if m.form.IsDirty() {
			m.dialog = ui.NewConfirm("Discard changes?",
				"You have unsaved changes. Discard them and quit?")
			m.dialogAction = actionDiscardQuit
			return m, nil
		}
		return m, tea.Quit

	case "tab":
		// Move focus between title and body
		if m.titleInput.Focused() {
			m.titleInput.Blur()
			return m, m.bodyInput.Focus()
		}
		m.bodyInput.Blur()
		return m, m.titleInput.Focus()
	}

	// Everything else goes to the focused widget
	var cmd tea.Cmd
	if m.titleInput.Focused() {
		m.titleInput, cmd = m.titleInput.Update(msg)
	} else {
		m.bodyInput, cmd = m.bodyInput.Update(msg)
	}
	return m, cmd
}

// handleFetchFinished adopts the fetched snapshot or surfaces the error.
func (m Model) handleFetchFinished(msg fetchFinishedMsg) (tea.Model, tea.Cmd) {
	m.loading = false

	if msg.err != nil {
		if article.IsReauthError(msg.err) {
			var pe *article.ProtocolError
			if errors.As(msg.err, &pe) {
				m.loginURL = pe.LoginURL
			}
			m.dialog = ui.NewLoginPrompt(m.loginURL)
			m.dialogAction = actionOpenLogin
			return m, nil
		}
		m.fatalErr = msg.err
		return m, nil
	}

	m.adoptSnapshot(msg.snapshot)

	// A slug with no article behind it goes straight into editing
	if msg.snapshot.New {
		return m.openEditor()
	}
	return m, nil
}

// handleSaveFinished classifies the save result. Every path clears the
// in-flight flag; the editing surface only closes on a clean save.
func (m Model) handleSaveFinished(msg saveFinishedMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	result := msg.result

	logging.LogEditorTransition(m.state.String(), m.state.String(), "save "+result.Outcome.String())

	switch result.Outcome {
	case article.OutcomeSaved:
		m.adoptSnapshot(result.Snapshot)
		m = m.closeEditor()
		m.status = fmt.Sprintf("Saved revision %d", result.Snapshot.Revision)
		m.statusErr = false
		return m, nil

	case article.OutcomeConflict:
		// The server's reconciled state replaces the edit wholesale; the
		// form and widgets re-seed so the next save is based on it
		m.adoptSnapshot(result.Snapshot)
		m.titleInput.SetValue(m.form.Value("title"))
		m.bodyInput.SetValue(m.form.Value("body"))
		m.dialog = ui.NewAlert("Edit conflict",
			"Someone else saved this article while you were editing. "+
				"The latest version has been loaded; re-apply your changes and save again.")
		m.dialogAction = actionNone
		return m, nil

	case article.OutcomeReauthRequired:
		// Keep the user's text; after signing in they can retry as-is
		m.loginURL = result.LoginURL
		if m.loginURL == "" {
			m.loginURL = urls.Login(m.Client.BaseURL, m.LoginPath)
		}
		m.dialog = ui.NewLoginPrompt(m.loginURL)
		m.dialogAction = actionOpenLogin
		return m, nil

	default:
		m.dialog = ui.NewAlert("Save failed", result.Reason)
		m.dialogAction = actionNone
		return m, nil
	}
}

// submit syncs the widgets into the form and starts the save.
func (m Model) submit() (tea.Model, tea.Cmd) {
	m.syncForm()
	logging.LogSaveAttempt(m.Slug, m.form.Value("base_revision"), m.form.IsDirty())

	m.submitting = true
	m.status = ""
	return m, tea.Batch(m.spinner.Tick, m.saveCmd())
}

// requestClose closes the editor, asking first when there are unsaved
// changes.
func (m Model) requestClose() (tea.Model, tea.Cmd) {
	m.syncForm()
	if m.form.IsDirty() {
		m.dialog = ui.NewConfirm("Discard changes?",
			"You have unsaved changes. Discard them and close the editor?")
		m.dialogAction = actionDiscardClose
		return m, nil
	}
	return m.closeEditor(), nil
}

// openEditor switches to editing, seeding the widgets from the form.
func (m Model) openEditor() (tea.Model, tea.Cmd) {
	logging.LogEditorTransition(m.state.String(), StateEditing.String(), "open")
	m.state = StateEditing
	m.status = ""

	m.titleInput.SetValue(m.form.Value("title"))
	m.bodyInput.SetValue(m.form.Value("body"))

	if !m.bodySized {
		// Open the body at roughly the height of the view it replaces
		h := render.HeightHint(m.snapshot.Rendered)
		if h < 5 {
			h = 5
		}
		if h > m.height-10 && m.height > 15 {
			h = m.height - 10
		}
		m.bodyInput.SetHeight(h)
		m.bodySized = true
	}
	m.titleInput.Width = m.contentWidth() - 4
	m.bodyInput.SetWidth(m.contentWidth() - 4)

	m.titleInput.Blur()
	return m, m.bodyInput.Focus()
}

// closeEditor returns to viewing, restores the form to its baselines and
// re-seeds the widgets so no stale edit text survives into the next open.
func (m Model) closeEditor() Model {
	logging.LogEditorTransition(m.state.String(), StateViewing.String(), "close")
	m.state = StateViewing
	m.titleInput.Blur()
	m.bodyInput.Blur()
	m.form.Reset()
	m.titleInput.SetValue(m.form.Value("title"))
	m.bodyInput.SetValue(m.form.Value("body"))
	return m
}

// adoptSnapshot makes a server snapshot the session's canonical state:
// the slug follows the server, and the form re-seeds with fresh baselines.
func (m *Model) adoptSnapshot(s *article.Snapshot) {
	m.snapshot = s
	if s.Slug != "" {
		m.Slug = s.Slug
	}
	if m.form == nil {
		m.form = s.EditForm()
		return
	}
	s.Reseed(m.form)
}

// syncForm copies the widget contents into the form. Baselines are not
// touched, so dirtiness still compares against the last server state.
func (m *Model) syncForm() {
	if m.form == nil {
		return
	}
	m.form.Set("title", m.titleInput.Value())
	m.form.Set("body", m.bodyInput.Value())
}

// contentWidth is the usable width after capping.
func (m Model) contentWidth() int {
	w := m.width
	if w > ui.MaxContentWidth {
		w = ui.MaxContentWidth
	}
	if w < ui.MinTerminalWidth {
		w = ui.MinTerminalWidth
	}
	return w
}

// State reports the current mode. Exposed for the command layer and tests.
func (m Model) State() State {
	return m.state
}

// Snapshot returns the current canonical article state.
func (m Model) Snapshot() *article.Snapshot {
	return m.snapshot
}

// Dirty reports whether the edit surface holds unsaved changes.
func (m Model) Dirty() bool {
	if m.form == nil {
		return false
	}
	m.syncForm()
	return m.form.IsDirty()
}
