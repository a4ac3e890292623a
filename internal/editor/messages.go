package editor

import "github.com/wikied/wikied/internal/article"

// fetchFinishedMsg carries the result of the initial article fetch.
type fetchFinishedMsg struct {
	snapshot *article.Snapshot
	err      error
}

// saveFinishedMsg carries the classified result of a save attempt.
// Every attempt produces exactly one of these; there is no error path.
type saveFinishedMsg struct {
	result *article.SaveResult
}

// browserOpenedMsg reports the attempt to open the login page.
type browserOpenedMsg struct {
	err error
}
