package migration

import (
	"path/filepath"
	"strings"
)

// TouchesDir reports whether any of the given paths equals the migrations
// directory or lies somewhere beneath it.
//
// It is used by pre-commit style invocations to skip validation entirely when
// a changeset does not touch the migrations tree.
func TouchesDir(paths []string, dir string) bool {
	d := filepath.Clean(dir)
	for _, p := range paths {
		p = filepath.Clean(p)
		if p == d {
			return true
		}
		rel, err := filepath.Rel(d, p)
		if err != nil {
			continue
		}
		if rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}
	return false
}
