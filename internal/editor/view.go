package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/wikied/wikied/internal/render"
	"github.com/wikied/wikied/internal/ui"
	"github.com/wikied/wikied/internal/urls"
)

// View renders the session.
func (m Model) View() string {
	if m.fatalErr != nil {
		return fmt.Sprintf("\n%s\n\n%s\n",
			ui.StatusErrorStyle.Render("  Could not load the article: "+m.fatalErr.Error()),
			ui.HelpStyle.Render("press any key to quit"))
	}

	// A dialog replaces the whole screen with a dimmed overlay
	if m.dialog != nil {
		return m.dialog.View(m.width, m.height)
	}

	if m.loading || m.snapshot == nil {
		return fmt.Sprintf("\n  %s Fetching %s...\n",
			m.spinner.View(),
			urls.Canonical(m.Slug))
	}

	switch m.state {
	case StateEditing:
		return m.viewEditing()
	default:
		return m.viewViewing()
	}
}

// viewViewing renders the read surface.
func (m Model) viewViewing() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.renderHeader(false))
	b.WriteString("\n")

	body := render.Terminal(m.snapshot.Rendered)
	b.WriteString(ui.BodyStyle.Width(m.contentWidth()).Render(body))
	b.WriteString("\n")

	if m.snapshot.LastUpdated != "" {
		b.WriteString(ui.FooterStyle.Render("Last updated " + m.snapshot.LastUpdated))
		b.WriteString("\n")
	}

	if m.status != "" {
		style := ui.StatusSavedStyle
		if m.statusErr {
			style = ui.StatusErrorStyle
		}
		b.WriteString("  " + style.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(m.help.View(viewingKeys{m.keys}))
	b.WriteString("\n")
	return b.String()
}

// viewingKeys narrows the key map to the bindings that apply in view mode.
type viewingKeys struct{ k keyMap }

func (v viewingKeys) ShortHelp() []key.Binding {
	return []key.Binding{v.k.Edit, v.k.Quit}
}

func (v viewingKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{v.k.Edit, v.k.Quit}}
}

// viewEditing renders the edit surface.
func (m Model) viewEditing() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(m.renderHeader(true))
	b.WriteString("\n")

	var surface strings.Builder
	surface.WriteString(ui.LabelStyle.Render("Title"))
	surface.WriteString("\n  ")
	surface.WriteString(m.titleInput.View())
	surface.WriteString("\n\n")
	surface.WriteString(ui.LabelStyle.Render("Body"))
	surface.WriteString("\n")
	surface.WriteString(m.bodyInput.View())

	b.WriteString(ui.EditorBorderStyle(m.contentWidth()).Render(surface.String()))
	b.WriteString("\n\n")

	if m.submitting {
		b.WriteString(fmt.Sprintf("  %s Saving...\n\n", m.spinner.View()))
	} else {
		b.WriteString("  ")
		b.WriteString(m.help.View(editingKeys{m.keys}))
		b.WriteString("\n")
	}
	return b.String()
}

// editingKeys narrows the key map to the bindings that apply in edit mode.
type editingKeys struct{ k keyMap }

func (e editingKeys) ShortHelp() []key.Binding {
	return []key.Binding{e.k.Save, e.k.Cancel, e.k.Switch}
}

func (e editingKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{e.k.Save, e.k.Cancel, e.k.Switch}}
}

// renderHeader renders the title line with the canonical slug and, in edit
// mode, the unsaved-changes marker.
func (m Model) renderHeader(editing bool) string {
	title := m.snapshot.Title
	if editing && m.titleInput.Value() != "" {
		title = m.titleInput.Value()
	}

	line := ui.TitleStyle.Render(title) +
		ui.SlugStyle.Render("("+urls.Canonical(m.Slug)+")")

	if editing && m.Dirty() {
		line += " " + ui.DirtyMarkerStyle.Render("*")
	}
	return line + "\n"
}
