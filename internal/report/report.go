// Package report turns a cascade state into markdown or JSON summaries for
// the non-interactive commands and the clipboard.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"showroom/internal/facet"
	"showroom/internal/inventory"
)

// Match is one narrowed record as printed in reports.
type Match struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
	Year  int    `json:"year,omitempty"`
	Price string `json:"price"`
}

// Summary is the report of one cascade state.
type Summary struct {
	Selection  map[string]string   `json:"selection"`
	Candidates map[string][]string `json:"candidates"`
	Stale      []string            `json:"stale,omitempty"`
	Total      int                 `json:"total"`
	Matches    int                 `json:"matches"`
	Shown      []Match             `json:"shown"`
}

// Build summarizes c, listing at most limit matches (all when limit <= 0).
func Build(c *facet.Cascade, limit int) Summary {
	candidates := c.Candidates()
	s := Summary{
		Selection:  c.Selection().Map(),
		Candidates: make(map[string][]string, len(facet.Order)),
		Total:      c.Len(),
	}
	for _, f := range facet.Order {
		s.Candidates[f.String()] = candidates.For(f)
	}
	for _, f := range c.Stale() {
		s.Stale = append(s.Stale, f.String())
	}

	matches := facet.SortRecords(c.Matches())
	s.Matches = len(matches)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	s.Shown = make([]Match, 0, len(matches))
	for _, r := range matches {
		s.Shown = append(s.Shown, MatchOf(r))
	}
	return s
}

// MatchOf formats one record.
func MatchOf(r inventory.Record) Match {
	return Match{
		Brand: r.Brand,
		Model: r.ModelLabel(),
		Year:  r.Year,
		Price: facet.FormatPrice(r.Price),
	}
}

// Line renders a match as a single line for list views.
func (m Match) Line() string {
	year := "-"
	if m.Year > 0 {
		year = strconv.Itoa(m.Year)
	}
	return fmt.Sprintf("%s %s · %s · %s", m.Brand, m.Model, year, m.Price)
}

// Markdown renders s as a markdown document.
func Markdown(s Summary) string {
	var b strings.Builder
	b.WriteString("# Showroom search\n\n")

	if len(s.Selection) == 0 {
		b.WriteString("_No filters selected._\n\n")
	} else {
		b.WriteString("## Selection\n\n")
		for _, f := range facet.Order {
			if v, ok := s.Selection[f.String()]; ok {
				fmt.Fprintf(&b, "- **%s:** %s\n", f.Label(), v)
			}
		}
		b.WriteString("\n")
	}
	if len(s.Stale) > 0 {
		fmt.Fprintf(&b, "> No longer available: %s\n\n", strings.Join(s.Stale, ", "))
	}

	b.WriteString("## Options\n\n| Field | Count | Values |\n|---|---|---|\n")
	for _, f := range facet.Order {
		values := s.Candidates[f.String()]
		cell := strings.Join(values, ", ")
		if cell == "" {
			cell = "_none_"
		}
		fmt.Fprintf(&b, "| %s | %d | %s |\n", f.Label(), len(values), escapeCell(cell))
	}

	fmt.Fprintf(&b, "\n## Matches (%d of %d)\n\n", s.Matches, s.Total)
	if len(s.Shown) == 0 {
		b.WriteString("_No vehicles match._\n")
		return b.String()
	}
	b.WriteString("| Brand | Model | Year | Price |\n|---|---|---|---|\n")
	for _, m := range s.Shown {
		year := "-"
		if m.Year > 0 {
			year = strconv.Itoa(m.Year)
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s |\n", escapeCell(m.Brand), escapeCell(m.Model), year, m.Price)
	}
	if s.Matches > len(s.Shown) {
		fmt.Fprintf(&b, "\n_%d more not shown._\n", s.Matches-len(s.Shown))
	}
	return b.String()
}

// WriteJSON writes s as indented JSON.
func WriteJSON(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
