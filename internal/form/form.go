// Package form implements an ordered field snapshot with baseline tracking.
//
// A Form holds the fields that will be submitted with a save, in submission
// order, and remembers for each field the baseline value it started from.
// Dirty detection compares current values against baselines; a commit
// advances the baselines after a clean save. The form is a plain value
// object with no presentation attached, so dirty-tracking and serialization
// are testable without any UI.
package form

import (
	"net/url"
	"strings"
)

// Field is a single named form value. The baseline is the value the field
// had when it was seeded or last committed; the user's unsaved edit is the
// difference between Value and the baseline.
type Field struct {
	Name     string
	Value    string
	baseline string
}

// Form is an ordered collection of fields. Order is preserved through
// serialization and duplicate names are allowed, matching standard form
// submission semantics.
type Form struct {
	fields []*Field
}

// New returns an empty form.
func New() *Form {
	return &Form{}
}

// Add appends a field with the given name and value. The baseline starts
// equal to the value, so a freshly added field is clean.
func (f *Form) Add(name, value string) {
	f.fields = append(f.fields, &Field{Name: name, Value: value, baseline: value})
}

// Set updates the current value of the first field with the given name.
// It is a no-op if no such field exists; setting never touches baselines.
func (f *Form) Set(name, value string) {
	for _, fld := range f.fields {
		if fld.Name == name {
			fld.Value = value
			return
		}
	}
}

// Value returns the current value of the first field with the given name,
// or the empty string if the field doesn't exist.
func (f *Form) Value(name string) string {
	for _, fld := range f.fields {
		if fld.Name == name {
			return fld.Value
		}
	}
	return ""
}

// Baseline returns the baseline value of the first field with the given
// name, or the empty string if the field doesn't exist.
func (f *Form) Baseline(name string) string {
	for _, fld := range f.fields {
		if fld.Name == name {
			return fld.baseline
		}
	}
	return ""
}

// Serialize produces an application/x-www-form-urlencoded body from all
// named fields, in insertion order, percent-encoding both names and
// values. Unnamed fields are skipped; duplicate names are preserved
// positionally.
func (f *Form) Serialize() string {
	var b strings.Builder
	for _, fld := range f.fields {
		if fld.Name == "" {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(fld.Name))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(fld.Value))
	}
	return b.String()
}

// IsDirty reports whether any named field's current value differs from its
// baseline.
func (f *Form) IsDirty() bool {
	for _, fld := range f.fields {
		if fld.Name == "" {
			continue
		}
		if fld.Value != fld.baseline {
			return true
		}
	}
	return false
}

// Commit advances every field's baseline to its current value. Called only
// after a conflict-free successful save; the form is clean afterwards.
func (f *Form) Commit() {
	for _, fld := range f.fields {
		fld.baseline = fld.Value
	}
}

// Reset discards unsaved edits by restoring every field's current value
// from its baseline.
func (f *Form) Reset() {
	for _, fld := range f.fields {
		fld.Value = fld.baseline
	}
}

// Fields returns a copy of the fields in order. Mutating the returned
// slice does not affect the form.
func (f *Form) Fields() []Field {
	out := make([]Field, len(f.fields))
	for i, fld := range f.fields {
		out[i] = *fld
	}
	return out
}
