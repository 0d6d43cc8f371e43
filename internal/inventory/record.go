// Package inventory holds the vehicle records the facet search runs over and
// the sources that load them.
package inventory

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	appErrors "showroom/internal/errors"
)

// Record is one inventory item. Values are immutable once loaded.
type Record struct {
	Brand   string  `json:"brand" yaml:"brand"`
	Model   string  `json:"model" yaml:"model"`
	Version string  `json:"version" yaml:"version"`
	Year    int     `json:"year" yaml:"year"`
	Price   float64 `json:"price" yaml:"price"`
}

// ModelLabel is the display label used for the model facet: "Model - Version"
// when both are present, otherwise the raw model.
func (r Record) ModelLabel() string {
	model := strings.TrimSpace(r.Model)
	version := strings.TrimSpace(r.Version)
	if model != "" && version != "" {
		return model + " - " + version
	}
	return model
}

// Validate reports whether the record carries the attributes every facet needs.
func (r Record) Validate() error {
	if strings.TrimSpace(r.Brand) == "" {
		return invalidRecordError("brand is required")
	}
	if strings.TrimSpace(r.Model) == "" {
		return invalidRecordError("model is required")
	}
	return nil
}

func (r Record) String() string {
	return fmt.Sprintf("%s %s %d (%.2f)", r.Brand, r.ModelLabel(), r.Year, r.Price)
}

// Index is the immutable snapshot of searchable records for one search
// session. Narrowing produces new slices; the index itself never changes.
type Index struct {
	records []Record
}

// NewIndex copies records into a new Index.
func NewIndex(records []Record) *Index {
	return &Index{records: slices.Clone(records)}
}

// Len returns the number of records in the index.
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.records)
}

// Records returns a copy of the indexed records in load order.
func (idx *Index) Records() []Record {
	if idx == nil {
		return nil
	}
	return slices.Clone(idx.records)
}

// All iterates the records without copying.
func (idx *Index) All() iter.Seq2[int, Record] {
	return func(yield func(int, Record) bool) {
		if idx == nil {
			return
		}
		for i, r := range idx.records {
			if !yield(i, r) {
				return
			}
		}
	}
}

func invalidRecordError(reason string) error {
	return appErrors.New(appErrors.CodeInvalidRecord, "invalid record: "+reason, nil)
}
