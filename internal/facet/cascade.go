package facet

import (
	"fmt"

	"showroom/internal/debug"
	appErrors "showroom/internal/errors"
	"showroom/internal/inventory"
)

// Change describes the outcome of one cascade step. Cleared lists every
// downstream facet whose stored value the form must drop.
type Change struct {
	Facet      Facet
	Value      string
	Cleared    []Facet
	Candidates Candidates
}

// Cascade owns the fixed selection for one search form and recomputes the
// candidate sets from scratch after every commit. It is not safe for
// concurrent use; each form owns its own Cascade.
//
// A fixed value that falls out of its own candidate set after Reload is left
// standing. Stale reports such facets so the form can flag them.
type Cascade struct {
	records    []inventory.Record
	selection  Selection
	candidates Candidates
}

// NewCascade starts a cascade with nothing fixed.
func NewCascade(idx *inventory.Index) *Cascade {
	c := &Cascade{records: idx.Records()}
	c.recompute()
	return c
}

// Selection returns the current fixed selection.
func (c *Cascade) Selection() Selection {
	return c.selection
}

// Candidates returns the candidate sets for the current selection.
func (c *Cascade) Candidates() Candidates {
	return c.candidates
}

// Len returns the size of the record set the cascade runs over.
func (c *Cascade) Len() int {
	return len(c.records)
}

// Matches returns the records satisfying every fixed facet.
func (c *Cascade) Matches() []inventory.Record {
	return Narrow(c.records, c.selection)
}

// Commit fixes f to value, clears every downstream facet and recomputes.
// value must be one of f's current candidates.
func (c *Cascade) Commit(f Facet, value string) (Change, error) {
	if !f.valid() {
		return Change{}, appErrors.New(appErrors.CodeUnknownFacet, fmt.Sprintf("unknown facet %d", int(f)), nil)
	}
	if !c.candidates.Contains(f, value) {
		return Change{}, appErrors.New(appErrors.CodeInvalidSelection,
			fmt.Sprintf("%q is not a valid %s for the current selection", value, f), nil)
	}

	sel := c.selection.With(f, value)
	downstream := f.Downstream()
	for _, d := range downstream {
		sel = sel.Without(d)
	}
	c.selection = sel
	c.recompute()

	debug.Debug("facet commit", "facet", f.String(), "value", value, "selection", c.selection.String(), "matches", len(c.Matches()))
	return Change{Facet: f, Value: value, Cleared: downstream, Candidates: c.candidates}, nil
}

// Clear unfixes f and every facet downstream of it, then recomputes.
func (c *Cascade) Clear(f Facet) Change {
	if !f.valid() {
		return Change{Facet: f, Candidates: c.candidates}
	}
	sel := c.selection.Without(f)
	downstream := f.Downstream()
	for _, d := range downstream {
		sel = sel.Without(d)
	}
	c.selection = sel
	c.recompute()

	debug.Debug("facet clear", "facet", f.String(), "selection", c.selection.String())
	return Change{Facet: f, Cleared: downstream, Candidates: c.candidates}
}

// Reset unfixes every facet.
func (c *Cascade) Reset() Change {
	return c.Clear(Brand)
}

// Reload swaps in a new record set, keeping the current selection.
func (c *Cascade) Reload(idx *inventory.Index) Change {
	c.records = idx.Records()
	c.recompute()
	if stale := c.Stale(); len(stale) > 0 {
		debug.Debug("stale facets after reload", "facets", fmt.Sprint(stale), "records", len(c.records))
	}
	return Change{Facet: -1, Candidates: c.candidates}
}

// Stale lists fixed facets whose value is absent from their own candidate set.
func (c *Cascade) Stale() []Facet {
	var out []Facet
	for _, f := range c.selection.Fixed() {
		v, _ := c.selection.Value(f)
		if !c.candidates.Contains(f, v) {
			out = append(out, f)
		}
	}
	return out
}

func (c *Cascade) recompute() {
	c.candidates = Compute(c.records, c.selection)
}
