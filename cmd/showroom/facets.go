package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"showroom/internal/config"
	appErrors "showroom/internal/errors"
	"showroom/internal/facet"
	"showroom/internal/inventory"
	"showroom/internal/report"

	"github.com/spf13/cobra"
)

const (
	loadTimeout   = 30 * time.Second
	reportWidth   = 100
	maxHints      = 3
	facetsExample = `  showroom facets -i lot.yaml --brand Toyota
  showroom facets -i lot.db --brand Toyota --model "Corolla - v1" --json
  showroom facets -i lot.yaml --price "Até R$ 50.000"`
)

// facetFlags names the command-line flag of each facet.
var facetFlags = map[facet.Facet]string{
	facet.Brand:      "brand",
	facet.Model:      "model",
	facet.Year:       "year",
	facet.PriceRange: "price",
}

type facetsOptions struct {
	values     map[facet.Facet]*string
	jsonOutput bool
	limit      int
}

// newFacetsCmd prints the options left for each field after committing the
// given values in cascade order, without opening the form.
func newFacetsCmd() *cobra.Command {
	opts := &facetsOptions{values: make(map[facet.Facet]*string, len(facet.Order))}
	cmd := &cobra.Command{
		Use:     "facets",
		Short:   "Print the remaining options for a selection",
		Example: facetsExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := inventory.Open(config.GetString(config.KeyInventoryPath))
			if err != nil {
				return err
			}
			return runFacets(cmd, src, opts)
		},
	}
	for _, f := range facet.Order {
		opts.values[f] = cmd.Flags().String(facetFlags[f], "", fmt.Sprintf("%s to commit", f.Label()))
	}
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the report as JSON")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Matches to list (0 uses results.limit)")
	return cmd
}

func runFacets(cmd *cobra.Command, src inventory.Source, opts *facetsOptions) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), loadTimeout)
	defer cancel()
	idx, stats, err := inventory.Load(ctx, src)
	if err != nil {
		return err
	}
	if stats.Skipped > 0 {
		cmd.PrintErrf("skipped %d invalid records in %s\n", stats.Skipped, stats.Source)
	}

	c := facet.NewCascade(idx)
	if err := applySelection(c, opts.values); err != nil {
		return err
	}

	limit := opts.limit
	if limit <= 0 {
		limit = config.GetInt(config.KeyResultsLimit)
	}
	summary := report.Build(c, limit)
	out := cmd.OutOrStdout()
	if opts.jsonOutput {
		return report.WriteJSON(out, summary)
	}
	render := report.NewRenderer(config.GetString(config.KeyOutputFormat), reportWidth)
	_, err = fmt.Fprint(out, render(report.Markdown(summary)))
	return err
}

// applySelection commits the non-empty values in cascade order, so a model
// is checked against the brand committed before it.
func applySelection(c *facet.Cascade, values map[facet.Facet]*string) error {
	for _, f := range facet.Order {
		p := values[f]
		if p == nil {
			continue
		}
		v := strings.TrimSpace(*p)
		if v == "" {
			continue
		}
		if _, err := c.Commit(f, v); err != nil {
			valid := c.Candidates().For(f)
			if len(valid) == 0 {
				return fmt.Errorf("--%s: %w", facetFlags[f], err)
			}
			hint := "choose from: " + strings.Join(valid, ", ")
			if near := facet.Closest(v, valid, maxHints); len(near) > 0 {
				hint = "did you mean: " + strings.Join(near, ", ")
			}
			return appErrors.New(appErrors.CodeInvalidSelection,
				fmt.Sprintf("--%s %q is not available (%s)", facetFlags[f], v, hint), err)
		}
	}
	return nil
}
