package inventory

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	appErrors "showroom/internal/errors"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const vehiclesQuery = `
	SELECT brand, model, COALESCE(version, ''), COALESCE(year, 0), COALESCE(price, 0)
	FROM vehicles
	ORDER BY rowid`

// SQLiteSource reads the vehicles table from a SQLite database opened
// read-only, so a running back-office writer is never blocked.
type SQLiteSource struct {
	dbPath string
	dsn    string
}

// NewSQLiteSource constructs a source for the database at dbPath.
func NewSQLiteSource(dbPath string) *SQLiteSource {
	trimmed := strings.TrimSpace(dbPath)
	return &SQLiteSource{
		dbPath: trimmed,
		dsn:    buildReadOnlyDSN(trimmed),
	}
}

// buildReadOnlyDSN creates a read-only WAL DSN for the given path.
func buildReadOnlyDSN(dbPath string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	q.Set("mode", "ro")
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "3000")
	u.RawQuery = q.Encode()
	return u.String()
}

// Describe implements Source.
func (s *SQLiteSource) Describe() string {
	return "sqlite:" + s.dbPath
}

// Load implements Source.
func (s *SQLiteSource) Load(ctx context.Context) ([]Record, error) {
	db, err := sql.Open("sqlite", s.dsn)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeInventoryQuery, "open sqlite db", err)
	}
	defer func() {
		_ = db.Close()
	}()
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		return nil, appErrors.New(appErrors.CodeInventoryQuery, "ping sqlite db", err)
	}

	rows, err := db.QueryContext(ctx, vehiclesQuery)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeInventoryQuery, fmt.Sprintf("query vehicles: %v", err), err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var records []Record
	for rows.Next() {
		var r Record
		var brand, model sql.NullString
		if err := rows.Scan(&brand, &model, &r.Version, &r.Year, &r.Price); err != nil {
			return nil, appErrors.New(appErrors.CodeInventoryQuery, "scan vehicle", err)
		}
		r.Brand = brand.String
		r.Model = model.String
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.New(appErrors.CodeInventoryQuery, "iterate vehicles", err)
	}
	return records, nil
}
