// Copyright © 2026 migralint authors

package migration

import (
	"path/filepath"
	"sort"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/migralint/migralint/pkg/errors"
	"github.com/migralint/migralint/pkg/migration/status"
	"github.com/migralint/migralint/pkg/model"
)

// DefaultPattern is the filename glob matched when scanning a migrations directory
const DefaultPattern = "*.py"

// Scanner walks a migrations directory and extracts revision metadata from
// every matching file.
type Scanner struct {
	fs      afero.Fs
	pattern string
	l       *zap.Logger
}

// Option to configure a Scanner
type Option func(*Scanner)

// WithFS overrides the file system the scanner reads from (default: OS file system)
func WithFS(fs afero.Fs) Option {
	return func(s *Scanner) {
		if fs != nil {
			s.fs = fs
		}
	}
}

// WithPattern overrides the filename glob matched within the directory
func WithPattern(pattern string) Option {
	return func(s *Scanner) {
		if pattern != "" {
			s.pattern = pattern
		}
	}
}

// WithLogger sets the logger used by the scanner (default: no logging)
func WithLogger(l *zap.Logger) Option {
	return func(s *Scanner) {
		if l != nil {
			s.l = l
		}
	}
}

// NewScanner builds a Scanner with the given options
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{
		fs:      afero.NewOsFs(),
		pattern: DefaultPattern,
		l:       zap.NewNop(),
	}
	for _, apply := range opts {
		apply(s)
	}
	return s
}

// Scan reads every file matching the scanner's pattern in dir and extracts its
// revision fields.
//
// Results come back sorted by file name: insertion order into the chain is
// part of the observable duplicate-detection behavior, and directory
// enumeration order is not deterministic on every file system.
func (s *Scanner) Scan(dir string) ([]model.MigrationFile, error) {
	exists, err := afero.DirExists(s.fs, dir)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.Newf("Migrations directory not found: %s", dir).
			Wrap(status.ErrNotFound)
	}

	matches, err := afero.Glob(s.fs, filepath.Join(dir, s.pattern))
	if err != nil {
		return nil, err
	}
	sort.Strings(matches)

	files := make([]model.MigrationFile, 0, len(matches))
	for _, path := range matches {
		content, err := afero.ReadFile(s.fs, path)
		if err != nil {
			s.l.Warn("unreadable migration file", zap.String("path", path), zap.Error(err))
			return nil, errors.Newf("Could not read migration file %s", filepath.Base(path)).
				Wrap(status.ErrMigrationFile)
		}
		m, err := Read(filepath.Base(path), content)
		if err != nil {
			return nil, err
		}
		s.l.Debug("parsed migration file",
			zap.String("file", m.Name),
			zap.String("revision", string(m.Revision)),
			zap.String("down_revision", string(m.DownRevision)))
		files = append(files, m)
	}
	s.l.Debug("scanned migrations directory", zap.String("dir", dir), zap.Int("files", len(files)))
	return files, nil
}
