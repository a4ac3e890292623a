package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Kind selects the dialog flavor. At most one dialog is ever visible; the
// editor holds a single slot and refuses to stack a second one.
type Kind int

const (
	// DialogAlert is a single-button notice (conflict, failed save).
	DialogAlert Kind = iota
	// DialogConfirm is a yes/no question (discard unsaved changes).
	DialogConfirm
	// DialogLogin offers to open the login page in a browser.
	DialogLogin
)

// Result is what a resolved dialog amounts to. ResultNone means the
// dialog is still open.
type Result int

const (
	ResultNone Result = iota
	// ResultDismissed closes the dialog with no further action.
	ResultDismissed
	// ResultYes confirms the question.
	ResultYes
	// ResultNo declines the question.
	ResultNo
	// ResultOpenLogin asks for the login page to be opened.
	ResultOpenLogin
)

// Dialog is a modal overlay. It owns focus while visible: the editor routes
// every key press here and touches nothing else until a Result comes back.
type Dialog struct {
	Kind    Kind
	Title   string
	Message string

	// LoginURL is shown in DialogLogin so the user can see where they
	// are being sent before agreeing.
	LoginURL string

	// cursor selects the highlighted button, left to right.
	cursor int
}

// NewAlert creates a single-button notice dialog.
func NewAlert(title, message string) *Dialog {
	return &Dialog{Kind: DialogAlert, Title: title, Message: message}
}

// NewConfirm creates a yes/no dialog. The cursor starts on "No" so that
// a reflexive Enter never discards anything.
func NewConfirm(title, message string) *Dialog {
	return &Dialog{Kind: DialogConfirm, Title: title, Message: message, cursor: 1}
}

// NewLoginPrompt creates a dialog offering to open the login page.
func NewLoginPrompt(loginURL string) *Dialog {
	return &Dialog{
		Kind:     DialogLogin,
		Title:    "Session expired",
		Message:  "Your session has expired. Sign in again in your browser, then retry the save. Your edits are kept.",
		LoginURL: loginURL,
	}
}

// buttons returns the labels for this dialog kind, left to right.
func (d *Dialog) buttons() []string {
	switch d.Kind {
	case DialogConfirm:
		return []string{"Yes", "No"}
	case DialogLogin:
		return []string{"Open login page", "Not now"}
	default:
		return []string{"OK"}
	}
}

// Update handles one key press and reports whether it resolved the dialog.
// ResultNone means the dialog stays open.
func (d *Dialog) Update(msg tea.KeyMsg) Result {
	switch msg.String() {
	case "left", "h", "shift+tab":
		if d.cursor > 0 {
			d.cursor--
		}
		return ResultNone

	case "right", "l", "tab":
		if d.cursor < len(d.buttons())-1 {
			d.cursor++
		}
		return ResultNone

	case "esc":
		// Escape always takes the safe exit
		switch d.Kind {
		case DialogConfirm:
			return ResultNo
		default:
			return ResultDismissed
		}

	case "enter", " ":
		return d.activate()

	case "y":
		if d.Kind == DialogConfirm {
			return ResultYes
		}
	case "n":
		if d.Kind == DialogConfirm {
			return ResultNo
		}
	case "o":
		if d.Kind == DialogLogin {
			return ResultOpenLogin
		}
	}
	return ResultNone
}

// activate resolves the dialog according to the highlighted button.
func (d *Dialog) activate() Result {
	switch d.Kind {
	case DialogConfirm:
		if d.cursor == 0 {
			return ResultYes
		}
		return ResultNo
	case DialogLogin:
		if d.cursor == 0 {
			return ResultOpenLogin
		}
		return ResultDismissed
	default:
		return ResultDismissed
	}
}

// View renders the dialog centered over a dimmed backdrop.
func (d *Dialog) View(terminalWidth, terminalHeight int) string {
	width := terminalWidth - 20
	if width < 40 {
		width = 40
	}
	if width > 70 {
		width = 70
	}

	borderColor := PrimaryColor
	if d.Kind == DialogAlert {
		borderColor = WarningColor
	}

	var lines []string

	titleStyle := lipgloss.NewStyle().
		Foreground(TextColor).
		Bold(true)
	lines = append(lines, titleStyle.Render(d.Title))
	lines = append(lines, "")

	messageStyle := lipgloss.NewStyle().
		Foreground(TextColor).
		Width(width - 6)
	lines = append(lines, messageStyle.Render(d.Message))

	if d.LoginURL != "" {
		lines = append(lines, "")
		urlStyle := lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)
		lines = append(lines, urlStyle.Render(d.LoginURL))
	}

	lines = append(lines, "")
	lines = append(lines, d.renderButtons())

	content := strings.Join(lines, "\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Width(width).
		Padding(1, 2).
		Render(content)

	return RenderOverlay(box, terminalWidth, terminalHeight)
}

// renderButtons renders the button row with the cursor highlighted.
func (d *Dialog) renderButtons() string {
	selected := lipgloss.NewStyle().
		Foreground(TextColor).
		Background(PrimaryColor).
		Bold(true).
		Padding(0, 2)
	unselected := lipgloss.NewStyle().
		Foreground(MutedColor).
		Padding(0, 2)

	var rendered []string
	for i, label := range d.buttons() {
		if i == d.cursor {
			rendered = append(rendered, selected.Render(label))
		} else {
			rendered = append(rendered, unselected.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
