package facet

import "strings"

// Selection maps each facet to an optional fixed value. It is a value type:
// With and Without return modified copies.
type Selection struct {
	values [facetCount]string
	fixed  [facetCount]bool
}

// With returns a copy of s with f fixed to value.
func (s Selection) With(f Facet, value string) Selection {
	if !f.valid() {
		return s
	}
	s.values[f] = value
	s.fixed[f] = true
	return s
}

// Without returns a copy of s with f unfixed.
func (s Selection) Without(f Facet) Selection {
	if !f.valid() {
		return s
	}
	s.values[f] = ""
	s.fixed[f] = false
	return s
}

// Value returns the fixed value of f and whether f is fixed.
func (s Selection) Value(f Facet) (string, bool) {
	if !f.valid() {
		return "", false
	}
	return s.values[f], s.fixed[f]
}

// IsFixed reports whether f has a fixed value.
func (s Selection) IsFixed(f Facet) bool {
	return f.valid() && s.fixed[f]
}

// Fixed lists the fixed facets in cascade order.
func (s Selection) Fixed() []Facet {
	var out []Facet
	for _, f := range Order {
		if s.fixed[f] {
			out = append(out, f)
		}
	}
	return out
}

// IsEmpty reports whether no facet is fixed.
func (s Selection) IsEmpty() bool {
	return len(s.Fixed()) == 0
}

// Map returns the fixed values keyed by facet wire name.
func (s Selection) Map() map[string]string {
	out := make(map[string]string)
	for _, f := range s.Fixed() {
		out[f.String()] = s.values[f]
	}
	return out
}

// String renders the fixed facets as "brand=Toyota, year=2023".
func (s Selection) String() string {
	var parts []string
	for _, f := range s.Fixed() {
		parts = append(parts, f.String()+"="+s.values[f])
	}
	return strings.Join(parts, ", ")
}
