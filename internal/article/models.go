package article

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/wikied/wikied/internal/form"
	"github.com/wikied/wikied/internal/urls"
)

// Snapshot is the server's canonical view of an article at one revision.
// This matches the JSON the wiki server returns from both GET (with JSON
// content negotiation) and PUT responses.
//
// Revision strictly increases with each successful save; the client always
// echoes the last revision it was handed as base_revision on the next save.
type Snapshot struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Body        string `json:"body"`     // raw article source
	Rendered    string `json:"rendered"` // pre-rendered markup, trusted
	Revision    int    `json:"revision"`
	LastUpdated string `json:"last_updated"`

	// Conflict is set on PUT responses when the submitted base_revision
	// was stale. The rest of the snapshot is still the now-current state.
	Conflict bool `json:"conflict"`

	// New marks a snapshot for an article that doesn't exist on the
	// server yet. Never sent on the wire.
	New bool `json:"-"`
}

// NewArticle returns the snapshot the editor starts from when the slug has
// no article behind it: revision 0, a title derived from the slug, and a
// placeholder for the view pane.
func NewArticle(slug string) *Snapshot {
	return &Snapshot{
		Title:    urls.TitleFromSlug(slug),
		Slug:     slug,
		Rendered: "<p>There's no article here yet. Save your edit to create one.</p>",
		Revision: 0,
		New:      true,
	}
}

// ParseSnapshot decodes a snapshot from a response body.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, NewParseError("failed to decode article snapshot", err)
	}
	return &s, nil
}

// EditForm builds the form for editing this snapshot: title, body and the
// echoed base_revision, in the order they are submitted.
func (s *Snapshot) EditForm() *form.Form {
	f := form.New()
	f.Add("title", s.Title)
	f.Add("body", s.Body)
	f.Add("base_revision", strconv.Itoa(s.Revision))
	return f
}

// Reseed replaces the form's contents with this snapshot's values and
// fresh baselines, discarding whatever the form held. Used after a save
// response so the form tracks the server's canonical state.
func (s *Snapshot) Reseed(f *form.Form) {
	f.Set("title", s.Title)
	f.Set("body", s.Body)
	f.Set("base_revision", strconv.Itoa(s.Revision))
	f.Commit()
}

// String returns a short identification used in logs.
func (s *Snapshot) String() string {
	return fmt.Sprintf("%s@r%d", urls.Canonical(s.Slug), s.Revision)
}
