// Package ui provides the shared terminal UI building blocks for the
// wikied editor: the color palette, lipgloss styles, terminal sizing
// helpers, and the modal dialog overlay.
//
// # Dialogs
//
// Dialog is a modal overlay used for notices, confirmations and the
// session-expired login prompt. While a dialog is visible it owns focus:
// the editor routes every key press to Dialog.Update and acts on the
// returned Result. Dialogs never stack; the editor holds a single slot.
//
//	dialog := ui.NewConfirm("Discard changes?",
//	    "You have unsaved changes. Discard them and close the editor?")
//	// in Update:
//	switch dialog.Update(keyMsg) {
//	case ui.ResultYes:
//	    // discard
//	case ui.ResultNo:
//	    // keep editing
//	}
//
// # Styles
//
// The package exposes one shared palette and a set of named styles so the
// editor renders consistently. Terminal width is capped to MaxContentWidth
// to keep long article lines readable on wide screens.
package ui
