package facet

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	appErrors "showroom/internal/errors"
	"showroom/internal/inventory"
)

func scenarioRecords() []inventory.Record {
	return []inventory.Record{
		{Brand: "Toyota", Model: "Corolla", Version: "v1", Year: 2023, Price: 95000},
		{Brand: "Toyota", Model: "Hilux", Version: "v1", Year: 2022, Price: 180000},
		{Brand: "Honda", Model: "Civic", Version: "v1", Year: 2023, Price: 120000},
	}
}

// lotRecords is a larger, deliberately messy inventory for property checks.
func lotRecords() []inventory.Record {
	brands := []string{"Toyota", "Honda", "Fiat", "Jeep", "BMW"}
	models := []string{"A", "B", "C"}
	versions := []string{"", "Sport", "Base"}
	var out []inventory.Record
	for i := 0; i < 240; i++ {
		out = append(out, inventory.Record{
			Brand:   brands[i%len(brands)],
			Model:   brands[i%len(brands)] + " " + models[(i/5)%len(models)],
			Version: versions[(i/3)%len(versions)],
			Year:    2015 + (i*7)%10,
			Price:   float64((i * 13_337) % 320_000),
		})
	}
	return out
}

func TestComputeNothingFixed(t *testing.T) {
	got := Compute(scenarioRecords(), Selection{})

	assertCandidates(t, got, Brand, []string{"Honda", "Toyota"})
	assertCandidates(t, got, Model, []string{"Civic - v1", "Corolla - v1", "Hilux - v1"})
	assertCandidates(t, got, Year, []string{"2023", "2022"})
	assertCandidates(t, got, PriceRange, []string{
		"R$ 50.000 - R$ 100.000",
		"R$ 100.000 - R$ 150.000",
		"R$ 150.000 - R$ 200.000",
	})
}

func TestComputeBrandFixed(t *testing.T) {
	got := Compute(scenarioRecords(), Selection{}.With(Brand, "Toyota"))

	// The fixed facet's own candidates ignore its own value.
	assertCandidates(t, got, Brand, []string{"Honda", "Toyota"})
	assertCandidates(t, got, Model, []string{"Corolla - v1", "Hilux - v1"})
	assertCandidates(t, got, Year, []string{"2023", "2022"})
	assertCandidates(t, got, PriceRange, []string{"R$ 50.000 - R$ 100.000", "R$ 150.000 - R$ 200.000"})
}

func TestComputeBrandAndModelFixed(t *testing.T) {
	sel := Selection{}.With(Brand, "Toyota").With(Model, "Hilux - v1")
	got := Compute(scenarioRecords(), sel)

	assertCandidates(t, got, Year, []string{"2022"})
	assertCandidates(t, got, PriceRange, []string{"R$ 150.000 - R$ 200.000"})
	assertCandidates(t, got, Model, []string{"Corolla - v1", "Hilux - v1"})
}

func TestComputeMatchingRules(t *testing.T) {
	records := []inventory.Record{
		{Brand: "Fiat", Model: "Uno", Year: 2010, Price: 20000},
		{Brand: "Fiat", Model: "Uno", Version: "Way", Year: 2012, Price: 30000},
		{Brand: "fiat", Model: "Palio", Year: 2011, Price: 25000},
	}

	t.Run("model without version matches raw model", func(t *testing.T) {
		got := Compute(records, Selection{}.With(Model, "Uno"))
		assertCandidates(t, got, Year, []string{"2010"})
	})
	t.Run("model label includes version", func(t *testing.T) {
		got := Compute(records, Selection{}.With(Model, "Uno - Way"))
		assertCandidates(t, got, Year, []string{"2012"})
	})
	t.Run("brand is case sensitive", func(t *testing.T) {
		got := Compute(records, Selection{}.With(Brand, "Fiat"))
		assertCandidates(t, got, Model, []string{"Uno", "Uno - Way"})
	})
	t.Run("year matches numerically", func(t *testing.T) {
		got := Compute(records, Selection{}.With(Year, " 2011"))
		assertCandidates(t, got, Brand, []string{"fiat"})
	})
	t.Run("price matches by band membership", func(t *testing.T) {
		got := Compute(records, Selection{}.With(PriceRange, BandUnder50k.Label()))
		assertCandidates(t, got, Brand, []string{"Fiat", "fiat"})
	})
}

func TestComputeSkipsEmptyValues(t *testing.T) {
	records := []inventory.Record{
		{Brand: "Jeep", Model: "Renegade", Year: 0, Price: 99000},
	}
	got := Compute(records, Selection{})
	assertCandidates(t, got, Year, []string{})
	assertCandidates(t, got, Brand, []string{"Jeep"})
}

func TestComputeStaleSelectionYieldsEmptyDependents(t *testing.T) {
	got := Compute(scenarioRecords(), Selection{}.With(Brand, "Ferrari"))

	assertCandidates(t, got, Brand, []string{"Honda", "Toyota"})
	for _, f := range []Facet{Model, Year, PriceRange} {
		if got.For(f) == nil || len(got.For(f)) != 0 {
			t.Fatalf("expected empty (non-nil) candidates for %s, got %#v", f, got.For(f))
		}
	}
}

func TestComputeEmptyInput(t *testing.T) {
	got := Compute(nil, Selection{})
	for _, f := range Order {
		if got.Len(f) != 0 {
			t.Fatalf("expected no candidates for %s, got %v", f, got.For(f))
		}
	}
}

func TestComputeDeterministic(t *testing.T) {
	records := lotRecords()
	selections := []Selection{
		{},
		Selection{}.With(Brand, "Honda"),
		Selection{}.With(Year, "2019").With(PriceRange, Band100kTo150k.Label()),
	}
	for _, sel := range selections {
		first := Compute(records, sel)
		for i := 0; i < 20; i++ {
			again := Compute(records, sel)
			for _, f := range Order {
				if diff := cmp.Diff(first.For(f), again.For(f)); diff != "" {
					t.Fatalf("run %d differs for %s with %s (-first +again):\n%s", i, f, sel, diff)
				}
			}
		}
	}
}

func TestComputeNarrowingIsMonotonic(t *testing.T) {
	records := lotRecords()
	base := Compute(records, Selection{})

	for _, fix := range Order {
		for _, value := range base.For(fix) {
			sel := Selection{}.With(fix, value)
			narrowed := Compute(records, sel)
			for _, other := range Order {
				if other == fix {
					continue
				}
				if narrowed.Len(other) > base.Len(other) {
					t.Fatalf("fixing %s=%s grew %s from %d to %d", fix, value, other, base.Len(other), narrowed.Len(other))
				}
				for _, v := range narrowed.For(other) {
					if !base.Contains(other, v) {
						t.Fatalf("fixing %s=%s introduced %s=%s", fix, value, other, v)
					}
				}
			}

			// Second-level narrowing stays monotonic too.
			for _, next := range Order {
				if next == fix || narrowed.Len(next) == 0 {
					continue
				}
				deeper := Compute(records, sel.With(next, narrowed.For(next)[0]))
				for _, other := range Order {
					if other == fix || other == next {
						continue
					}
					if deeper.Len(other) > narrowed.Len(other) {
						t.Fatalf("fixing %s after %s=%s grew %s", next, fix, value, other)
					}
				}
			}
		}
	}
}

func TestComputeOrdering(t *testing.T) {
	got := Compute(lotRecords(), Selection{})

	years := got.For(Year)
	for i := 1; i < len(years); i++ {
		if years[i-1] <= years[i] {
			t.Fatalf("years not strictly descending: %v", years)
		}
	}
	brands := got.For(Brand)
	for i := 1; i < len(brands); i++ {
		if brands[i-1] >= brands[i] {
			t.Fatalf("brands not strictly ascending: %v", brands)
		}
	}
	var prev Band = -1
	for _, label := range got.For(PriceRange) {
		b, ok := ParseBand(label)
		if !ok || b <= prev {
			t.Fatalf("price bands out of band order: %v", got.For(PriceRange))
		}
		prev = b
	}
}

func TestPriceBandCoverage(t *testing.T) {
	records := lotRecords()
	want := map[string]bool{}
	for _, r := range records {
		hits := 0
		for _, b := range Bands() {
			if b.Contains(r.Price) {
				hits++
				want[b.Label()] = true
			}
		}
		if hits != 1 {
			t.Fatalf("price %.2f landed in %d bands", r.Price, hits)
		}
	}

	got := Compute(records, Selection{}).For(PriceRange)
	if len(got) != len(want) {
		t.Fatalf("expected %d bands, got %v", len(want), got)
	}
	for _, label := range got {
		if !want[label] {
			t.Fatalf("emitted band %q with no record in it", label)
		}
	}
}

func TestBandOf(t *testing.T) {
	tests := []struct {
		price float64
		want  Band
	}{
		{-10, BandUnder50k},
		{math.NaN(), BandUnder50k},
		{0, BandUnder50k},
		{49_999.99, BandUnder50k},
		{50_000, Band50kTo100k},
		{99_999.99, Band50kTo100k},
		{100_000, Band100kTo150k},
		{150_000, Band150kTo200k},
		{199_999, Band150kTo200k},
		{200_000, Band200kTo250k},
		{250_000, BandOver250k},
		{9_999_999, BandOver250k},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.price), func(t *testing.T) {
			if got := BandOf(tt.price); got != tt.want {
				t.Fatalf("BandOf(%v) = %v, want %v", tt.price, got, tt.want)
			}
		})
	}
}

func TestBandLabels(t *testing.T) {
	want := []string{
		"Até R$ 50.000",
		"R$ 50.000 - R$ 100.000",
		"R$ 100.000 - R$ 150.000",
		"R$ 150.000 - R$ 200.000",
		"R$ 200.000 - R$ 250.000",
		"Acima de R$ 250.000",
	}
	for i, b := range Bands() {
		if b.Label() != want[i] {
			t.Errorf("band %d label = %q, want %q", i, b.Label(), want[i])
		}
		parsed, ok := ParseBand(want[i])
		if !ok || parsed != b {
			t.Errorf("ParseBand(%q) = %v, %v", want[i], parsed, ok)
		}
	}
	if _, ok := ParseBand("R$ 1 - R$ 2"); ok {
		t.Error("expected unknown label to be rejected")
	}
}

func TestNarrowAndSortRecords(t *testing.T) {
	records := scenarioRecords()
	got := Narrow(records, Selection{}.With(Year, "2023"))
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %v", got)
	}
	sorted := SortRecords(got)
	if sorted[0].Brand != "Honda" || sorted[1].Brand != "Toyota" {
		t.Fatalf("unexpected order %v", sorted)
	}
	if got[0].Brand != "Toyota" {
		t.Fatal("SortRecords must not reorder its input")
	}
	if len(Narrow(records, Selection{})) != len(records) {
		t.Fatal("empty selection should keep every record")
	}
}

func TestParseFacet(t *testing.T) {
	for _, f := range Order {
		got, err := ParseFacet(f.String())
		if err != nil || got != f {
			t.Fatalf("ParseFacet(%q) = %v, %v", f.String(), got, err)
		}
	}
	if _, err := ParseFacet("color"); !appErrors.IsCode(err, appErrors.CodeUnknownFacet) {
		t.Fatalf("expected unknown facet error, got %v", err)
	}
}

func TestDownstream(t *testing.T) {
	if diff := cmp.Diff([]Facet{Model, Year, PriceRange}, Brand.Downstream()); diff != "" {
		t.Fatalf("brand downstream mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]Facet{PriceRange}, Year.Downstream()); diff != "" {
		t.Fatalf("year downstream mismatch:\n%s", diff)
	}
	if len(PriceRange.Downstream()) != 0 {
		t.Fatal("priceRange has nothing downstream")
	}
}

func assertCandidates(t *testing.T, got Candidates, f Facet, want []string) {
	t.Helper()
	if diff := cmp.Diff(want, got.For(f)); diff != "" {
		t.Fatalf("%s candidates mismatch (-want +got):\n%s", f, diff)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := map[float64]string{
		95000:     "R$ 95.000",
		1234567.6: "R$ 1.234.568",
		0:         "R$ 0",
	}
	for price, want := range tests {
		if got := FormatPrice(price); got != want {
			t.Errorf("FormatPrice(%v) = %q, want %q", price, got, want)
		}
	}
}
