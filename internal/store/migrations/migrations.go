package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

//go:embed sql/*.sql
var migrationFiles embed.FS

// migration is one embedded file named <version>_<name>.sql.
type migration struct {
	version int
	file    string
}

// Run applies every pending migration in version order, each in its own
// transaction.
func Run(ctx context.Context, db *sql.DB) error {
	log := zap.S().Named("migrations")

	if _, err := db.ExecContext(ctx, querySchemaMigrations); err != nil {
		return fmt.Errorf("creating migrations table: %w", err)
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return fmt.Errorf("reading applied versions: %w", err)
	}

	pending, err := load()
	if err != nil {
		return fmt.Errorf("loading migration files: %w", err)
	}

	for _, m := range pending {
		if applied[m.version] {
			log.Debugw("migration already applied", "version", m.version)
			continue
		}
		if err := apply(ctx, db, m); err != nil {
			return fmt.Errorf("migration %s failed: %w", m.file, err)
		}
		log.Infow("applied migration", "file", m.file, "version", m.version)
	}

	return nil
}

const querySchemaMigrations = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER PRIMARY KEY,
		applied_at TIMESTAMP DEFAULT now()
	)`

func appliedVersions(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	rows, err := db.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

// load lists the embedded migrations sorted by version. Files without a
// numeric prefix are skipped; duplicate versions are an error.
func load() ([]migration, error) {
	entries, err := fs.ReadDir(migrationFiles, "sql")
	if err != nil {
		return nil, err
	}

	seen := make(map[int]string)
	var out []migration
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".sql") {
			continue
		}
		prefix, _, _ := strings.Cut(e.Name(), "_")
		v, err := strconv.Atoi(prefix)
		if err != nil || v <= 0 {
			zap.S().Named("migrations").Warnw("skipping invalid migration file", "file", e.Name())
			continue
		}
		if other, ok := seen[v]; ok {
			return nil, fmt.Errorf("duplicate migration version %d: %s and %s", v, other, e.Name())
		}
		seen[v] = e.Name()
		out = append(out, migration{version: v, file: path.Join("sql", e.Name())})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].version < out[j].version })
	return out, nil
}

func apply(ctx context.Context, db *sql.DB, m migration) error {
	content, err := migrationFiles.ReadFile(m.file)
	if err != nil {
		return fmt.Errorf("reading migration file: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("executing migration: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO schema_migrations (version) VALUES (?)`, m.version); err != nil {
		return fmt.Errorf("recording migration: %w", err)
	}

	return tx.Commit()
}
