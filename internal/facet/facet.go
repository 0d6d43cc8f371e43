// Package facet derives, for a partial selection over an inventory, the
// ordered set of values still valid for every facet, and cascades commits
// from one facet into its downstream facets.
package facet

import (
	"fmt"
	"strconv"

	appErrors "showroom/internal/errors"
	"showroom/internal/inventory"
)

// Facet is one independently selectable record attribute.
type Facet int

const (
	Brand Facet = iota
	Model
	Year
	PriceRange

	facetCount = 4
)

// Order is the fixed cascade order. A facet clears every facet after it
// when committed.
var Order = [facetCount]Facet{Brand, Model, Year, PriceRange}

var facetNames = [facetCount]string{"brand", "model", "year", "priceRange"}

var facetLabels = [facetCount]string{"Brand", "Model", "Year", "Price range"}

func (f Facet) valid() bool {
	return f >= Brand && f <= PriceRange
}

// String returns the wire name of the facet (brand, model, year, priceRange).
func (f Facet) String() string {
	if !f.valid() {
		return fmt.Sprintf("facet(%d)", int(f))
	}
	return facetNames[f]
}

// Label is the human readable field label.
func (f Facet) Label() string {
	if !f.valid() {
		return f.String()
	}
	return facetLabels[f]
}

// ParseFacet maps a wire name back to a Facet.
func ParseFacet(name string) (Facet, error) {
	for i, n := range facetNames {
		if n == name {
			return Facet(i), nil
		}
	}
	return 0, appErrors.New(appErrors.CodeUnknownFacet, fmt.Sprintf("unknown facet %q", name), nil)
}

// Downstream returns the facets after f in Order.
func (f Facet) Downstream() []Facet {
	if !f.valid() {
		return nil
	}
	return append([]Facet(nil), Order[f+1:]...)
}

// ValueOf returns the facet value a record contributes: the brand, the model
// label, the year as a decimal string, or the price band label. An empty
// string means the record offers no value for that facet.
func ValueOf(r inventory.Record, f Facet) string {
	switch f {
	case Brand:
		return r.Brand
	case Model:
		return r.ModelLabel()
	case Year:
		if r.Year <= 0 {
			return ""
		}
		return strconv.Itoa(r.Year)
	case PriceRange:
		return BandOf(r.Price).Label()
	}
	return ""
}
