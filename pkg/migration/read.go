// Copyright © 2026 migralint authors

package migration

import (
	"regexp"

	"github.com/migralint/migralint/pkg/errors"
	"github.com/migralint/migralint/pkg/migration/status"
	"github.com/migralint/migralint/pkg/model"
)

var revisionRe, downRevisionRe *regexp.Regexp

func init() {
	revisionRe = regexp.MustCompile(`revision\s*=\s*["']([^"']+)["']`)
	downRevisionRe = regexp.MustCompile(`down_revision\s*=\s*(?:None|["']([^"']*)["'])`)
}

// Read extracts the revision and down_revision fields from the content of a
// single migration file.
//
// A file without a down_revision declaration, or declaring down_revision = None,
// yields an initial migration. A quoted empty down_revision string is rejected:
// it would be indistinguishable from a missing predecessor further down the
// pipeline.
func Read(name string, content []byte) (model.MigrationFile, error) {
	m := model.MigrationFile{Name: name}

	rev := revisionRe.FindSubmatch(content)
	if rev == nil {
		return m, errors.Newf("Could not find revision in %s", name).
			Wrap(status.ErrNoRevision)
	}
	m.Revision = model.Revision(rev[1])

	down := downRevisionRe.FindSubmatch(content)
	if down != nil && down[1] != nil {
		if len(down[1]) == 0 {
			return m, errors.Newf("Empty down_revision found in %s. Perhaps you meant to use None?", name).
				Wrap(status.ErrEmptyDownRevision)
		}
		m.DownRevision = model.Revision(down[1])
	}

	return m, nil
}
