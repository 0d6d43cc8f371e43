package inventory

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"showroom/internal/debug"
	appErrors "showroom/internal/errors"
)

// Source retrieves the full record set once per session.
type Source interface {
	Load(ctx context.Context) ([]Record, error)
	Describe() string
}

// Stats summarizes one load.
type Stats struct {
	Source  string
	Loaded  int
	Skipped int
}

// Open picks a Source for path based on its extension.
func Open(path string) (Source, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, appErrors.New(appErrors.CodeConfigurationError, "no inventory path configured (use --inventory or inventory.path)", nil)
	}
	info, err := os.Stat(trimmed)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, appErrors.New(appErrors.CodeInventoryNotFound, fmt.Sprintf("inventory %s does not exist", trimmed), err)
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", trimmed, err)
	}
	if info.IsDir() {
		return nil, appErrors.New(appErrors.CodeInventoryUnsupported, fmt.Sprintf("inventory %s is a directory", trimmed), nil)
	}

	switch strings.ToLower(filepath.Ext(trimmed)) {
	case ".db", ".sqlite", ".sqlite3":
		return NewSQLiteSource(trimmed), nil
	case ".yaml", ".yml", ".json":
		return NewFileSource(trimmed), nil
	default:
		return nil, appErrors.New(appErrors.CodeInventoryUnsupported,
			fmt.Sprintf("unsupported inventory format %q (want .db, .sqlite, .yaml, .yml or .json)", filepath.Ext(trimmed)), nil)
	}
}

// Load pulls every record from src, drops the ones that fail Validate, and
// returns them as an Index.
func Load(ctx context.Context, src Source) (*Index, Stats, error) {
	stats := Stats{Source: src.Describe()}
	raw, err := src.Load(ctx)
	if err != nil {
		return nil, stats, fmt.Errorf("load inventory from %s: %w", stats.Source, err)
	}

	kept := make([]Record, 0, len(raw))
	for i, r := range raw {
		if err := r.Validate(); err != nil {
			stats.Skipped++
			debug.Debug("skipping record", "source", stats.Source, "row", i, "reason", err.Error())
			continue
		}
		kept = append(kept, normalize(r))
	}
	stats.Loaded = len(kept)
	debug.Debug("inventory loaded", "source", stats.Source, "loaded", stats.Loaded, "skipped", stats.Skipped)
	return NewIndex(kept), stats, nil
}

func normalize(r Record) Record {
	r.Brand = strings.TrimSpace(r.Brand)
	r.Model = strings.TrimSpace(r.Model)
	r.Version = strings.TrimSpace(r.Version)
	return r
}
