// Package editor implements the interactive article session: a bubbletea
// model that shows the rendered article, flips into an in-place edit
// surface, and drives the optimistic-concurrency save protocol.
//
// # States
//
// The session has two modes. StateViewing shows the rendered article with
// a last-updated footer. StateEditing swaps in a title input and a body
// textarea seeded from the form; the form keeps the baselines, so
// dirtiness always means "differs from the last server state".
//
// # Save lifecycle
//
// ctrl+s syncs the widgets into the form and submits it. While the save
// is in flight all editing input is frozen and a spinner shows. The
// classified result decides what happens next:
//
//   - Saved: the editor closes and the view re-syncs to the new snapshot.
//   - Conflict: the server's reconciled state replaces the edit, the
//     editor stays open, and an alert explains what happened.
//   - ReauthRequired: the user's text is kept untouched and a dialog
//     offers to open the login page in a browser.
//   - Failed: an alert shows the reason; the edit is kept for a retry.
//
// # Dialogs
//
// At most one dialog is visible at a time. While it is up it owns all key
// input; the session records what a positive answer means (discard and
// close, discard and quit, open the login page) and acts when the dialog
// resolves.
package editor
