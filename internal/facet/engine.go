package facet

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"showroom/internal/inventory"
)

// Candidates holds the ordered, de-duplicated valid values for every facet.
type Candidates struct {
	sets [facetCount][]string
}

// For returns the candidate values of f. The returned slice is a copy.
func (c Candidates) For(f Facet) []string {
	if !f.valid() {
		return nil
	}
	return slices.Clone(c.sets[f])
}

// Contains reports whether value is a candidate for f.
func (c Candidates) Contains(f Facet, value string) bool {
	if !f.valid() {
		return false
	}
	return slices.Contains(c.sets[f], value)
}

// Len returns the number of candidates for f.
func (c Candidates) Len(f Facet) int {
	if !f.valid() {
		return 0
	}
	return len(c.sets[f])
}

// Compute derives the candidate set of every facet from records given sel.
// A record contributes to facet F only if it matches every fixed facet
// other than F. Output depends on nothing but (records, sel).
func Compute(records []inventory.Record, sel Selection) Candidates {
	var seen [facetCount]map[string]struct{}
	for i := range seen {
		seen[i] = make(map[string]struct{})
	}

	for _, r := range records {
		mismatches := 0
		mismatched := Facet(-1)
		for _, f := range Order {
			if !sel.fixed[f] || matches(r, f, sel.values[f]) {
				continue
			}
			mismatches++
			mismatched = f
			if mismatches > 1 {
				break
			}
		}
		if mismatches > 1 {
			continue
		}
		for _, f := range Order {
			// With exactly one mismatch the record only counts toward the
			// facet that mismatched, since that facet's own value is excluded
			// from its eligibility check.
			if mismatches == 1 && f != mismatched {
				continue
			}
			if v := ValueOf(r, f); v != "" {
				seen[f][v] = struct{}{}
			}
		}
	}

	var out Candidates
	for _, f := range Order {
		out.sets[f] = sortValues(f, seen[f])
	}
	return out
}

// ComputeIndex is Compute over every record of idx.
func ComputeIndex(idx *inventory.Index, sel Selection) Candidates {
	return Compute(idx.Records(), sel)
}

// Narrow returns the records matching every fixed facet of sel, in input order.
func Narrow(records []inventory.Record, sel Selection) []inventory.Record {
	out := make([]inventory.Record, 0, len(records))
	for _, r := range records {
		if Matches(r, sel) {
			out = append(out, r)
		}
	}
	return out
}

// Matches reports whether r satisfies every fixed facet of sel.
func Matches(r inventory.Record, sel Selection) bool {
	for _, f := range Order {
		if sel.fixed[f] && !matches(r, f, sel.values[f]) {
			return false
		}
	}
	return true
}

func matches(r inventory.Record, f Facet, value string) bool {
	switch f {
	case Brand:
		return r.Brand == value
	case Model:
		return r.ModelLabel() == value
	case Year:
		year, err := strconv.Atoi(strings.TrimSpace(value))
		return err == nil && r.Year == year
	case PriceRange:
		band, ok := ParseBand(value)
		return ok && band.Contains(r.Price)
	}
	return false
}

// SortRecords orders records by brand, model label, year (newest first) and
// price, returning a new slice.
func SortRecords(records []inventory.Record) []inventory.Record {
	out := slices.Clone(records)
	slices.SortStableFunc(out, func(a, b inventory.Record) int {
		return cmp.Or(
			strings.Compare(a.Brand, b.Brand),
			strings.Compare(a.ModelLabel(), b.ModelLabel()),
			cmp.Compare(b.Year, a.Year),
			cmp.Compare(a.Price, b.Price),
		)
	})
	return out
}

func sortValues(f Facet, set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	switch f {
	case Year:
		slices.SortFunc(out, func(a, b string) int {
			ai, _ := strconv.Atoi(a)
			bi, _ := strconv.Atoi(b)
			return cmp.Compare(bi, ai)
		})
	case PriceRange:
		slices.SortFunc(out, func(a, b string) int {
			ab, _ := ParseBand(a)
			bb, _ := ParseBand(b)
			return cmp.Compare(ab, bb)
		})
	default:
		slices.Sort(out)
	}
	return out
}
