package backup

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
	"go.uber.org/multierr"
)

const (
	snapshotVersion = 1
	filePrefix      = "backup-"
	fileSuffix      = ".json.gz"
	fileTimeLayout  = "20060102-150405"
)

// Snapshot is the on-disk backup document.
type Snapshot struct {
	Version   int                         `json:"version"`
	CreatedAt time.Time                   `json:"createdAt"`
	Counts    map[string]int              `json:"counts"`
	Tables    map[string][]map[string]any `json:"tables"`
}

// ValidationResult is the outcome of checking one backup file.
type ValidationResult struct {
	File      string    `json:"file"`
	Valid     bool      `json:"valid"`
	Tables    int       `json:"tables"`
	Rows      int       `json:"rows"`
	Errors    []string  `json:"errors"`
	CheckedAt time.Time `json:"checkedAt"`
}

// readSnapshot copies every table inside one read transaction, so the
// snapshot is consistent even while requests keep writing.
func readSnapshot(ctx context.Context, db *sql.DB, tables []string, now time.Time) (Snapshot, error) {
	snap := Snapshot{
		Version:   snapshotVersion,
		CreatedAt: now,
		Counts:    make(map[string]int, len(tables)),
		Tables:    make(map[string][]map[string]any, len(tables)),
	}

	tx, err := db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		return snap, fmt.Errorf("begin snapshot: %w", err)
	}
	defer tx.Rollback()

	for _, table := range tables {
		rows, err := readTable(ctx, tx, table)
		if err != nil {
			return snap, err
		}
		snap.Tables[table] = rows
		snap.Counts[table] = len(rows)
	}
	return snap, nil
}

func readTable(ctx context.Context, tx *sql.Tx, table string) ([]map[string]any, error) {
	rows, err := tx.QueryContext(ctx, "SELECT * FROM "+table)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("columns of %s: %w", table, err)
	}

	out := []map[string]any{}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning %s: %w", table, err)
		}
		row := make(map[string]any, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
				continue
			}
			row[col] = values[i]
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", table, err)
	}
	return out, nil
}

// writeSnapshot writes snap gzip-compressed to a temp file in dir and
// renames it into place. It returns the final path.
func writeSnapshot(dir string, snap Snapshot) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating backup dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".backup-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	gz := gzip.NewWriter(tmp)
	encErr := json.NewEncoder(gz).Encode(snap)
	encErr = multierr.Append(encErr, gz.Close())
	encErr = multierr.Append(encErr, tmp.Close())
	if encErr != nil {
		return "", fmt.Errorf("writing backup: %w", encErr)
	}

	path := uniqueName(dir, snap.CreatedAt)
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("renaming backup: %w", err)
	}
	return path, nil
}

func uniqueName(dir string, t time.Time) string {
	base := filePrefix + t.Format(fileTimeLayout)
	path := filepath.Join(dir, base+fileSuffix)
	for i := 2; ; i++ {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return path
		}
		path = filepath.Join(dir, fmt.Sprintf("%s-%d%s", base, i, fileSuffix))
	}
}

// validateFile re-reads a backup and checks it against the expected tables.
func validateFile(path string, tables []string, now time.Time) ValidationResult {
	res := ValidationResult{File: filepath.Base(path), CheckedAt: now, Errors: []string{}}

	snap, err := readFile(path)
	if err != nil {
		res.Errors = append(res.Errors, err.Error())
		return res
	}

	var problems error
	if snap.Version != snapshotVersion {
		problems = multierr.Append(problems, fmt.Errorf("unsupported version %d", snap.Version))
	}
	for _, table := range tables {
		rows, ok := snap.Tables[table]
		if !ok {
			problems = multierr.Append(problems, fmt.Errorf("table %s missing", table))
			continue
		}
		if n := snap.Counts[table]; n != len(rows) {
			problems = multierr.Append(problems, fmt.Errorf("table %s: count %d, found %d rows", table, n, len(rows)))
		}
		for i, row := range rows {
			if id, _ := row["id"].(string); strings.TrimSpace(id) == "" {
				problems = multierr.Append(problems, fmt.Errorf("table %s: row %d has no id", table, i))
			}
		}
		res.Tables++
		res.Rows += len(rows)
	}

	for _, p := range multierr.Errors(problems) {
		res.Errors = append(res.Errors, p.Error())
	}
	res.Valid = len(res.Errors) == 0
	return res
}

func readFile(path string) (Snapshot, error) {
	var snap Snapshot
	f, err := os.Open(path)
	if err != nil {
		return snap, fmt.Errorf("opening backup: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return snap, fmt.Errorf("reading gzip: %w", err)
	}
	defer gz.Close()

	if err := json.NewDecoder(gz).Decode(&snap); err != nil {
		return snap, fmt.Errorf("decoding backup: %w", err)
	}
	return snap, nil
}
