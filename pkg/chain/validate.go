// Copyright © 2026 migralint authors

package chain

import (
	"strings"

	"github.com/migralint/migralint/pkg/chain/status"
	"github.com/migralint/migralint/pkg/errors"
	"github.com/migralint/migralint/pkg/model"
)

// Validate checks the global structural invariants of a completed chain and
// reports the first violation found, in this fixed order:
//
//  1. more than one initial migration
//  2. a down-link pointing to a revision not in the chain
//  3. a cycle in the down-links
//  4. two migrations sharing the same down_revision
//
// At most one violation is reported per run; fix and re-run to surface the
// next one. An empty chain is trivially valid. Validate has no state of its
// own: re-validating an unchanged chain yields the same result.
func (c *Chain) Validate() error {
	if c == nil || len(c.links) == 0 {
		return nil
	}

	sorted := c.Revisions()

	if err := c.checkInitial(sorted); err != nil {
		return err
	}
	if err := c.checkLinks(sorted); err != nil {
		return err
	}
	if err := c.checkCycles(sorted); err != nil {
		return err
	}
	return c.checkDuplicateDowns(sorted)
}

func (c *Chain) checkInitial(sorted model.Revisions) error {
	initial := make(model.Revisions, 0, 1)
	for _, rev := range sorted {
		if c.links[rev] == "" {
			initial = append(initial, rev)
		}
	}
	if len(initial) > 1 {
		return errors.Newf("Multiple initial migrations found (with None as down_revision): %s",
			strings.Join(initial.Strings(), ", ")).
			Wrap(status.ErrMultipleInitialMigrations)
	}
	return nil
}

func (c *Chain) checkLinks(sorted model.Revisions) error {
	for _, rev := range sorted {
		down := c.links[rev]
		if down == "" {
			continue
		}
		if _, ok := c.links[down]; !ok {
			return errors.Newf("Migration '%s' points to non-existent revision '%s'", rev, down).
				Wrap(status.ErrMissingDownRevision)
		}
	}
	return nil
}

// checkCycles walks the down-links from every revision. Starting points are
// taken in ascending order, which pins the rotation of the reported cycle.
func (c *Chain) checkCycles(sorted model.Revisions) error {
	for _, start := range sorted {
		if cycle := c.walk(start); cycle != nil {
			return errors.Newf("Circular dependency found: %s",
				strings.Join(cycle.Strings(), " -> ")).
				Wrap(status.ErrCircularDependency)
		}
	}
	return nil
}

// walk follows down-links from start and reports the cyclic subsequence, from
// the first occurrence of the revisited revision through the repeat, or nil
// when the walk terminates.
func (c *Chain) walk(start model.Revision) model.Revisions {
	path := make(model.Revisions, 0, len(c.links))
	cur := start
	for cur != "" {
		for i, seen := range path {
			if seen == cur {
				return append(path[i:], cur)
			}
		}
		path = append(path, cur)
		next, ok := c.links[cur]
		if !ok {
			// dangling link, already reported by checkLinks
			return nil
		}
		cur = next
	}
	return nil
}

func (c *Chain) checkDuplicateDowns(sorted model.Revisions) error {
	byDown := make(map[model.Revision]model.Revisions, len(sorted))
	order := make(model.Revisions, 0, len(sorted))
	for _, rev := range sorted {
		down := c.links[rev]
		if down == "" {
			continue
		}
		if _, ok := byDown[down]; !ok {
			order = append(order, down)
		}
		byDown[down] = append(byDown[down], rev)
	}
	for _, down := range order {
		if sharers := byDown[down]; len(sharers) > 1 {
			return errors.Newf("Multiple migrations have the same down_revision '%s': %s",
				down, strings.Join(sharers.Strings(), ", ")).
				Wrap(status.ErrDuplicateDownRevision)
		}
	}
	return nil
}
