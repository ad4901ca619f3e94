// Package model describes the metadata declared by schema migration files:
// the revision identifier of each migration and the down-link it declares
// to its predecessor.
package model
