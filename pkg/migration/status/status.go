// Package status exports errors produced by the migration package.
package status

import (
	"github.com/migralint/migralint/pkg/errors"
)

var (
	// ErrNotFound indicates that the migrations directory does not exist
	ErrNotFound = errors.New("migrations directory not found")

	// ErrMigrationFile indicates an error reading or parsing an individual migration file
	ErrMigrationFile = errors.New("invalid migration file")

	// ErrNoRevision indicates that a migration file does not declare a revision identifier
	ErrNoRevision = errors.New("could not find revision").Wrap(ErrMigrationFile)

	// ErrEmptyDownRevision indicates that a migration file declares an explicitly
	// empty down_revision string, which is ambiguous with None and rejected
	ErrEmptyDownRevision = errors.New("empty down_revision").Wrap(ErrMigrationFile)
)
