// Copyright © 2026 migralint authors

package model

import "sort"

// Revision is the unique identifier of one migration step.
//
// Revisions are opaque: nothing is assumed about their internal structure
// beyond equality and lexicographic ordering.
type Revision string

func (r Revision) String() string {
	return string(r)
}

// Revisions is a sortable collection of revision identifiers
type Revisions []Revision

// Sort revisions in ascending lexicographic order
func (rr Revisions) Sort() {
	sort.Slice(rr, func(i, j int) bool { return rr[i] < rr[j] })
}

// Strings yields the revisions as plain strings, e.g. to feed strings.Join
func (rr Revisions) Strings() []string {
	out := make([]string, 0, len(rr))
	for _, r := range rr {
		out = append(out, string(r))
	}
	return out
}

// MigrationFile is the outcome of parsing one migration file.
type MigrationFile struct {
	// Name is the base name of the file the fields were extracted from
	Name string

	// Revision is the unique identifier declared by the file
	Revision Revision

	// DownRevision is the identifier of the predecessor migration.
	// It is empty for an initial migration (down_revision = None):
	// an explicitly empty down_revision string is rejected at parse time,
	// so the empty value is unambiguous here.
	DownRevision Revision
}

// IsInitial indicates whether the migration declares no predecessor
func (m MigrationFile) IsInitial() bool {
	return m.DownRevision == ""
}
