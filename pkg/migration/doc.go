// Package migration extracts revision metadata from a directory of schema
// migration files.
//
// Each file is expected to declare a unique revision identifier and a
// down-link to its predecessor, alembic-style:
//
//	revision = "ae1027a6acf"
//	down_revision = "1975ea83b712"   # or None for the initial migration
//
// The scanner yields parsed files in filename order, so that downstream
// duplicate detection behaves deterministically regardless of how the
// underlying file system enumerates the directory.
package migration
