package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"showroom/internal/config"
	appErrors "showroom/internal/errors"
	"showroom/internal/report"
	"showroom/internal/ui/theme"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
)

func executeRoot(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(config.ResetForTesting(t))
	prev := theme.Current().Name
	t.Cleanup(func() { theme.SetTheme(prev) })

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestFacetsCommandJSON(t *testing.T) {
	lot := writeLot(t)
	out, errOut, err := executeRoot(t, "facets", "-i", lot, "--brand", "Toyota", "--json")
	if err != nil {
		t.Fatalf("facets: %v", err)
	}
	if !strings.Contains(errOut, "skipped 1 invalid records") {
		t.Errorf("expected skipped notice on stderr, got %q", errOut)
	}

	var got report.Summary
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if diff := cmp.Diff([]string{"Corolla - v1", "Hilux - v1"}, got.Candidates["model"]); diff != "" {
		t.Fatalf("model candidates mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Honda", "Toyota"}, got.Candidates["brand"]); diff != "" {
		t.Fatalf("brand candidates must stay unfiltered:\n%s", diff)
	}
	if got.Matches != 2 || got.Total != 3 {
		t.Fatalf("unexpected counts: %d of %d", got.Matches, got.Total)
	}
}

func TestFacetsCommandMarkdown(t *testing.T) {
	lot := writeLot(t)
	out, _, err := executeRoot(t, "facets", "-i", lot, "--output-format", "plain", "--brand", "Toyota", "--model", "Hilux - v1", "--limit", "1")
	if err != nil {
		t.Fatalf("facets: %v", err)
	}
	for _, want := range []string{"# Showroom search", "**Model:** Hilux - v1", "## Matches (1 of 3)", "R$ 180.000"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestFacetsCommandRejectsUnavailableValue(t *testing.T) {
	lot := writeLot(t)
	_, _, err := executeRoot(t, "facets", "-i", lot, "--brand", "Honda", "--model", "Hilux - v1")
	if !appErrors.IsCode(err, appErrors.CodeInvalidSelection) {
		t.Fatalf("expected invalid selection, got %v", err)
	}
	if !strings.Contains(err.Error(), "--model") || !strings.Contains(err.Error(), "choose from: Civic - v1") {
		t.Fatalf("error should name the flag and the valid choices: %v", err)
	}
}

func TestFacetsCommandSuggestsCloseValues(t *testing.T) {
	lot := writeLot(t)
	_, _, err := executeRoot(t, "facets", "-i", lot, "--brand", "toyta")
	if err == nil || !strings.Contains(err.Error(), "did you mean: Toyota") {
		t.Fatalf("expected a close match hint, got %v", err)
	}
}

func TestFacetsCommandMissingInventory(t *testing.T) {
	_, _, err := executeRoot(t, "facets", "-i", "/nonexistent/lot.yaml")
	if !appErrors.IsCode(err, appErrors.CodeInventoryNotFound) {
		t.Fatalf("expected inventory not found, got %v", err)
	}
}

func TestRootRejectsUnknownTheme(t *testing.T) {
	_, _, err := executeRoot(t, "facets", "--theme", "nope")
	if !appErrors.IsCode(err, appErrors.CodeConfigurationError) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestRootThemeFlag(t *testing.T) {
	lot := writeLot(t)
	if _, _, err := executeRoot(t, "facets", "-i", lot, "--json", "--theme", "nord"); err != nil {
		t.Fatalf("facets: %v", err)
	}
	if theme.Current().Name != "nord" {
		t.Fatalf("expected nord theme, got %s", theme.Current().Name)
	}
}

func TestFlagOverridesOnlyChangedFlags(t *testing.T) {
	opts := &rootOptions{}
	cmd := &cobra.Command{Use: "showroom"}
	bindRootFlags(cmd, opts)
	if err := cmd.ParseFlags([]string{"--blur-grace", "300ms", "-i", " lot.db "}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	got := flagOverrides(cmd, opts)
	want := map[string]any{
		config.KeyBlurGrace:     300 * time.Millisecond,
		config.KeyInventoryPath: "lot.db",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("overrides mismatch:\n%s", diff)
	}
}

func TestVersionCommandSkipsSetup(t *testing.T) {
	out, _, err := executeRoot(t, "version", "--theme", "nope")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "showroom version") {
		t.Fatalf("unexpected version output %q", out)
	}
}
