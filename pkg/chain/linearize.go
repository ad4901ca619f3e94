package chain

import (
	"github.com/migralint/migralint/pkg/chain/status"
	"github.com/migralint/migralint/pkg/errors"
	"github.com/migralint/migralint/pkg/model"
)

// Linearize yields the revisions of a valid chain in application order, from
// the initial migration to the head.
//
// The chain is validated first: linearizing a broken chain yields the usual
// validation error instead of a partial ordering.
func (c *Chain) Linearize() (model.Revisions, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if len(c.links) == 0 {
		return nil, nil
	}

	up := make(map[model.Revision]model.Revision, len(c.links))
	var initial model.Revision
	for rev, down := range c.links {
		if down == "" {
			initial = rev
			continue
		}
		up[down] = rev
	}
	if initial == "" {
		// no initial migration at all: every down-link resolves, so the chain
		// closes on itself and cycle detection would have caught it. Kept as a
		// guard for mappings assembled through FromLinks.
		return nil, errors.New("No initial migration found (with None as down_revision)").
			Wrap(status.ErrInvalidChain)
	}

	ordered := make(model.Revisions, 0, len(c.links))
	for rev := initial; ; {
		ordered = append(ordered, rev)
		next, ok := up[rev]
		if !ok {
			break
		}
		rev = next
	}
	return ordered, nil
}

// Head yields the most recent revision of a valid chain, i.e. the one no
// other migration declares as its predecessor.
func (c *Chain) Head() (model.Revision, error) {
	ordered, err := c.Linearize()
	if err != nil {
		return "", err
	}
	if len(ordered) == 0 {
		return "", nil
	}
	return ordered[len(ordered)-1], nil
}
