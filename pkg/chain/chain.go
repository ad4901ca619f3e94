// Copyright © 2026 migralint authors

package chain

import (
	"go.uber.org/zap"

	"github.com/migralint/migralint/pkg/chain/status"
	"github.com/migralint/migralint/pkg/errors"
	"github.com/migralint/migralint/pkg/model"
)

// Chain maps every revision to the revision it is applied after.
//
// The empty revision is the internal sentinel for "no predecessor": parsing
// rejects explicitly empty down_revision strings before they can get here.
// A Chain is built once per run, validated once and discarded.
type Chain struct {
	links map[model.Revision]model.Revision
	downs map[model.Revision]struct{}
}

// New yields an empty chain
func New() *Chain {
	return &Chain{
		links: make(map[model.Revision]model.Revision),
		downs: make(map[model.Revision]struct{}),
	}
}

// FromLinks yields a chain over an existing revision mapping, bypassing the
// builder's pairwise duplicate checks. Useful to validate a mapping assembled
// elsewhere: Validate performs the complete grouping checks either way.
func FromLinks(links map[model.Revision]model.Revision) *Chain {
	c := New()
	for rev, down := range links {
		c.links[rev] = down
		c.downs[down] = struct{}{}
	}
	return c
}

// Len is the number of revisions in the chain
func (c *Chain) Len() int {
	return len(c.links)
}

// Down yields the predecessor of rev. The second value is false when rev is
// not part of the chain. An empty predecessor denotes an initial migration.
func (c *Chain) Down(rev model.Revision) (model.Revision, bool) {
	down, ok := c.links[rev]
	return down, ok
}

// Revisions lists all revisions in the chain in ascending order
func (c *Chain) Revisions() model.Revisions {
	rr := make(model.Revisions, 0, len(c.links))
	for rev := range c.links {
		rr = append(rr, rev)
	}
	rr.Sort()
	return rr
}

// Builder inserts (revision, down_revision) pairs into a chain, catching
// pairwise duplicates as early as possible.
//
// Insertion order is observable: which of two conflicting files is reported
// depends on which came second. Callers are expected to insert in filename
// order (the scanner already yields files sorted) so that the outcome does
// not depend on directory enumeration order.
type Builder struct {
	chain *Chain
	l     *zap.Logger
}

// BuilderOption configures a Builder
type BuilderOption func(*Builder)

// WithLogger sets the logger used by the builder (default: no logging)
func WithLogger(l *zap.Logger) BuilderOption {
	return func(b *Builder) {
		if l != nil {
			b.l = l
		}
	}
}

// NewBuilder yields a Builder over a fresh chain
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		chain: New(),
		l:     zap.NewNop(),
	}
	for _, apply := range opts {
		apply(b)
	}
	return b
}

// Add inserts one revision and its predecessor into the chain under
// construction.
//
// It fails when the revision is already present, or when the predecessor
// value (including the "no predecessor" case) was already declared by an
// earlier insertion. The second check is a strictly pairwise, early version
// of the grouping check performed by Validate: both are kept because they
// select different errors for the same broken input depending on order.
func (b *Builder) Add(rev, down model.Revision) error {
	if _, ok := b.chain.links[rev]; ok {
		return errors.Newf("Duplicate revision '%s' found.", rev).
			Wrap(status.ErrDuplicateRevision)
	}
	if _, ok := b.chain.downs[down]; ok {
		return errors.Newf("Duplicate down_revision '%s' found.", printable(down)).
			Wrap(status.ErrDuplicateDownRevision)
	}
	b.chain.links[rev] = down
	b.chain.downs[down] = struct{}{}
	b.l.Debug("migration added to chain",
		zap.String("revision", string(rev)),
		zap.String("down_revision", string(down)))
	return nil
}

// Chain yields the chain built so far
func (b *Builder) Chain() *Chain {
	return b.chain
}

// Build inserts all parsed migration files, in the order given, into a fresh
// chain.
func Build(files []model.MigrationFile, opts ...BuilderOption) (*Chain, error) {
	b := NewBuilder(opts...)
	for _, m := range files {
		if err := b.Add(m.Revision, m.DownRevision); err != nil {
			return nil, err
		}
	}
	return b.Chain(), nil
}

// printable renders the "no predecessor" sentinel the way users declare it
func printable(down model.Revision) string {
	if down == "" {
		return "None"
	}
	return string(down)
}
