// Package status exports errors produced by the chain package.
package status

import (
	"github.com/migralint/migralint/pkg/errors"
)

var (
	// ErrInvalidChain is the common ancestor of all structural chain errors
	ErrInvalidChain = errors.New("invalid migration chain")

	// ErrDuplicateRevision indicates that a revision identifier appears in more than one file
	ErrDuplicateRevision = errors.New("duplicate revision")

	// ErrDuplicateDownRevision indicates that two migrations declare the same predecessor
	ErrDuplicateDownRevision = errors.New("duplicate down_revision").Wrap(ErrInvalidChain)

	// ErrMultipleInitialMigrations indicates more than one migration with no predecessor
	ErrMultipleInitialMigrations = errors.New("multiple initial migrations").Wrap(ErrInvalidChain)

	// ErrMissingDownRevision indicates a down-link pointing to a revision that does not exist
	ErrMissingDownRevision = errors.New("missing down_revision").Wrap(ErrInvalidChain)

	// ErrCircularDependency indicates that following down-links revisits a revision
	ErrCircularDependency = errors.New("circular dependency").Wrap(ErrInvalidChain)
)
