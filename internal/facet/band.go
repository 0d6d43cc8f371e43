package facet

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Band is one of the six fixed, half-open price bands.
type Band int

const (
	BandUnder50k Band = iota
	Band50kTo100k
	Band100kTo150k
	Band150kTo200k
	Band200kTo250k
	BandOver250k

	bandCount = 6
)

// bandFloors holds the inclusive lower bound of each band; the upper bound is
// the next floor.
var bandFloors = [bandCount]float64{0, 50_000, 100_000, 150_000, 200_000, 250_000}

var (
	brlPrinter = message.NewPrinter(language.BrazilianPortuguese)
	bandLabels = buildBandLabels()
)

// FormatPrice renders a price in whole reais with pt-BR digit grouping.
func FormatPrice(price float64) string {
	return brlPrinter.Sprintf("R$ %d", int64(math.Round(price)))
}

func buildBandLabels() [bandCount]string {
	brl := func(v float64) string { return brlPrinter.Sprintf("R$ %d", int64(v)) }

	var labels [bandCount]string
	labels[BandUnder50k] = "Até " + brl(bandFloors[Band50kTo100k])
	for b := Band50kTo100k; b < BandOver250k; b++ {
		labels[b] = brl(bandFloors[b]) + " - " + brl(bandFloors[b+1])
	}
	labels[BandOver250k] = "Acima de " + brl(bandFloors[BandOver250k])
	return labels
}

// Bands returns every band in ascending order.
func Bands() []Band {
	out := make([]Band, bandCount)
	for i := range out {
		out[i] = Band(i)
	}
	return out
}

// BandOf maps a price to exactly one band. Prices below zero (and NaN) fall
// into the lowest band.
func BandOf(price float64) Band {
	for b := BandOver250k; b > BandUnder50k; b-- {
		if price >= bandFloors[b] {
			return b
		}
	}
	return BandUnder50k
}

// Label is the display string used as the priceRange facet value.
func (b Band) Label() string {
	if b < BandUnder50k || b > BandOver250k {
		return ""
	}
	return bandLabels[b]
}

// Contains reports whether price falls inside the band.
func (b Band) Contains(price float64) bool {
	return BandOf(price) == b
}

// ParseBand maps a label back to its band.
func ParseBand(label string) (Band, bool) {
	for i, l := range bandLabels {
		if l == label {
			return Band(i), true
		}
	}
	return 0, false
}
