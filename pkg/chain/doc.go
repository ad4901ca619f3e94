// Package chain builds and validates the revision chain declared by a set of
// migration files.
//
// A healthy chain is shaped like a singly linked list: exactly one initial
// migration, every down-link resolving to a known revision, no two migrations
// sharing a predecessor, and no cycles. The builder rejects pairwise
// duplicates as files are inserted; Validate then checks the global
// invariants over the completed chain, reporting the first violation found
// in a fixed priority order.
package chain
