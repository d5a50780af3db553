package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/awrigley/markwright/internal/document"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db  *sql.DB
	cfg Config
}

// Schema for the history database.
const schema = `
CREATE TABLE IF NOT EXISTS documents (
    path TEXT PRIMARY KEY,
    opened_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
    open_count INTEGER DEFAULT 0
);

CREATE TABLE IF NOT EXISTS snapshots (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    path TEXT NOT NULL REFERENCES documents(path) ON DELETE CASCADE,
    word_count INTEGER DEFAULT 0,
    char_count INTEGER DEFAULT 0,
    line_count INTEGER DEFAULT 0,
    reading_time INTEGER DEFAULT 0,
    h1 INTEGER DEFAULT 0,
    h2 INTEGER DEFAULT 0,
    h3 INTEGER DEFAULT 0,
    h4 INTEGER DEFAULT 0,
    h5 INTEGER DEFAULT 0,
    h6 INTEGER DEFAULT 0,
    link_count INTEGER DEFAULT 0,
    image_count INTEGER DEFAULT 0,
    code_block_count INTEGER DEFAULT 0,
    list_item_count INTEGER DEFAULT 0,
    blockquote_lines INTEGER DEFAULT 0,
    table_count INTEGER DEFAULT 0,
    readability_score INTEGER DEFAULT 0,
    structure_quality TEXT,
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_documents_updated_at ON documents(updated_at DESC);
CREATE INDEX IF NOT EXISTS idx_snapshots_path ON snapshots(path, created_at DESC);
`

// NewSQLiteStore creates a new SQLite-based history store.
func NewSQLiteStore(cfg Config) (*SQLiteStore, error) {
	dbPath := cfg.Path
	if dbPath == "" {
		var err error
		dbPath, err = GetDBPath()
		if err != nil {
			return nil, fmt.Errorf("get db path: %w", err)
		}
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Initialize schema and run migrations
	if err := initSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	store := &SQLiteStore{db: db, cfg: cfg}

	// Trim up front so lowering max_entries takes effect immediately,
	// not only after the next open.
	if err := store.pruneDocuments(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "warning: history prune failed: %v\n", err)
	}

	return store, nil
}

// schemaVersion is the current schema version.
// - Fresh databases get the full schema from `schema` const and start at this version
// - Existing databases run migrations to reach this version
// Increment when adding new migrations.
const schemaVersion = 2

// migration represents a schema migration.
type migration struct {
	version     int
	description string
	up          func(db *sql.DB) error
}

// migrations defines schema migrations for upgrading existing databases.
// The base `schema` const always contains the FULL current schema, so
// fresh databases never run these. Version 1 was the initial shape and
// has no entry.
var migrations = []migration{
	{
		// Migration 2: count how often each document is opened
		version:     2,
		description: "add open_count column to documents",
		up: func(db *sql.DB) error {
			if _, err := db.Exec("ALTER TABLE documents ADD COLUMN open_count INTEGER DEFAULT 0"); err != nil {
				if !isDuplicateColumnError(err) {
					return err
				}
			}
			return nil
		},
	},
}

// initSchema initializes the database schema and runs any pending migrations.
// Optimized for the common case: schema already current = single SELECT query.
func initSchema(db *sql.DB) error {
	// Fast path: check if schema is already current
	var currentVersion int
	err := db.QueryRow("SELECT version FROM schema_version").Scan(&currentVersion)
	if err == nil && currentVersion >= schemaVersion {
		return nil
	}

	// Slow path: need to initialize or migrate
	return initSchemaFull(db, err, currentVersion)
}

// initSchemaFull handles schema creation and migrations.
// Only called when schema needs initialization or migration.
func initSchemaFull(db *sql.DB, versionErr error, currentVersion int) error {
	// Create base schema (uses IF NOT EXISTS, safe to run multiple times)
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("create base schema: %w", err)
	}

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`)
	if err != nil {
		return fmt.Errorf("create schema_version table: %w", err)
	}

	// versionErr is non-nil if schema_version doesn't exist or has no rows
	if versionErr != nil && (versionErr == sql.ErrNoRows || strings.Contains(versionErr.Error(), "no such table")) {
		// No version record - check if this is a fresh DB or one created
		// before schema versioning existed
		var tableCount int
		err = db.QueryRow(`
			SELECT COUNT(*) FROM sqlite_master
			WHERE type='table' AND name='documents'
		`).Scan(&tableCount)
		if err != nil {
			return fmt.Errorf("check documents table: %w", err)
		}

		if tableCount > 0 {
			// Pre-versioning DB - start at 0, run all migrations
			currentVersion = 0
		} else {
			// Fresh DB - schema already has all columns, start at latest
			currentVersion = schemaVersion
		}

		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", currentVersion); err != nil {
			return fmt.Errorf("insert initial version: %w", err)
		}
	} else if versionErr != nil {
		return fmt.Errorf("get current version: %w", versionErr)
	}

	// Run pending migrations
	for _, m := range migrations {
		if m.version > currentVersion {
			if err := m.up(db); err != nil {
				return fmt.Errorf("migration %d (%s): %w", m.version, m.description, err)
			}

			if _, err := db.Exec("UPDATE schema_version SET version = ?", m.version); err != nil {
				return fmt.Errorf("update version to %d: %w", m.version, err)
			}
		}
	}

	return nil
}

// isDuplicateColumnError checks if an error is due to a column already existing.
func isDuplicateColumnError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "duplicate column") ||
		strings.Contains(errStr, "already exists")
}

// Touch records that path was opened: it creates or refreshes the
// document entry and trims the recent list to the configured size.
func (s *SQLiteStore) Touch(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	now := time.Now()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (path, opened_at, updated_at, open_count)
		VALUES (?, ?, ?, 1)
		ON CONFLICT(path) DO UPDATE SET
		       updated_at = excluded.updated_at,
		       open_count = open_count + 1`,
		abs, now, now)
	if err != nil {
		return fmt.Errorf("touch document: %w", err)
	}

	return s.pruneDocuments(ctx)
}

// pruneDocuments keeps only the most recently used documents. Snapshots
// of pruned documents go with them through the foreign key cascade.
func (s *SQLiteStore) pruneDocuments(ctx context.Context) error {
	if s.cfg.MaxEntries <= 0 {
		return nil
	}
	_, err := s.db.ExecContext(ctx, `
		DELETE FROM documents WHERE path IN (
			SELECT path FROM documents
			ORDER BY updated_at DESC
			LIMIT -1 OFFSET ?
		)`, s.cfg.MaxEntries)
	if err != nil {
		return fmt.Errorf("prune documents: %w", err)
	}
	return nil
}

// Recent returns the most recently opened documents, newest first.
func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]Document, error) {
	if limit <= 0 {
		limit = 10 // Default
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT path, opened_at, updated_at, open_count
		FROM documents
		ORDER BY updated_at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	var docs []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.Path, &d.OpenedAt, &d.UpdatedAt, &d.OpenCount); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		docs = append(docs, d)
	}
	return docs, rows.Err()
}

// Forget removes a document and its snapshots. Forgetting a path that
// was never tracked is not an error.
func (s *SQLiteStore) Forget(ctx context.Context, path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, "DELETE FROM documents WHERE path = ?", abs); err != nil {
		return fmt.Errorf("forget document: %w", err)
	}
	return nil
}

// RecordSnapshot stores the metrics of one analysis run. The document
// row is created if needed, without counting as an open. Issues are
// recomputed from the text on demand and are not persisted.
func (s *SQLiteStore) RecordSnapshot(ctx context.Context, path string, m document.Metrics) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	_, err = tx.ExecContext(ctx, `
		INSERT INTO documents (path, opened_at, updated_at, open_count)
		VALUES (?, ?, ?, 0)
		ON CONFLICT(path) DO UPDATE SET updated_at = excluded.updated_at`,
		abs, now, now)
	if err != nil {
		return fmt.Errorf("upsert document: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO snapshots (path, word_count, char_count, line_count, reading_time,
		       h1, h2, h3, h4, h5, h6,
		       link_count, image_count, code_block_count, list_item_count, blockquote_lines, table_count,
		       readability_score, structure_quality, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		abs, m.WordCount, m.CharCount, m.LineCount, m.ReadingTime,
		m.Headings.H1, m.Headings.H2, m.Headings.H3, m.Headings.H4, m.Headings.H5, m.Headings.H6,
		m.LinkCount, m.ImageCount, m.CodeBlockCount, m.ListItemCount, m.BlockquoteLines, m.TableCount,
		m.Readability, m.Structure, now)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	// Keep only the newest snapshots per document
	if s.cfg.MaxSnapshots > 0 {
		_, err = tx.ExecContext(ctx, `
			DELETE FROM snapshots WHERE id IN (
				SELECT id FROM snapshots
				WHERE path = ?
				ORDER BY id DESC
				LIMIT -1 OFFSET ?
			)`, abs, s.cfg.MaxSnapshots)
		if err != nil {
			return fmt.Errorf("prune snapshots: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// Snapshots returns the stored metrics for path, newest first.
func (s *SQLiteStore) Snapshots(ctx context.Context, path string, limit int) ([]Snapshot, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve path: %w", err)
	}
	if limit <= 0 {
		limit = 20 // Default
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, path, word_count, char_count, line_count, reading_time,
		       h1, h2, h3, h4, h5, h6,
		       link_count, image_count, code_block_count, list_item_count, blockquote_lines, table_count,
		       readability_score, structure_quality, created_at
		FROM snapshots
		WHERE path = ?
		ORDER BY id DESC
		LIMIT ?`, abs, limit)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var snaps []Snapshot
	for rows.Next() {
		var sn Snapshot
		var structure sql.NullString
		err := rows.Scan(&sn.ID, &sn.Path,
			&sn.Metrics.WordCount, &sn.Metrics.CharCount, &sn.Metrics.LineCount, &sn.Metrics.ReadingTime,
			&sn.Metrics.Headings.H1, &sn.Metrics.Headings.H2, &sn.Metrics.Headings.H3,
			&sn.Metrics.Headings.H4, &sn.Metrics.Headings.H5, &sn.Metrics.Headings.H6,
			&sn.Metrics.LinkCount, &sn.Metrics.ImageCount, &sn.Metrics.CodeBlockCount,
			&sn.Metrics.ListItemCount, &sn.Metrics.BlockquoteLines, &sn.Metrics.TableCount,
			&sn.Metrics.Readability, &structure, &sn.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		if structure.Valid {
			sn.Metrics.Structure = structure.String
		}
		snaps = append(snaps, sn)
	}
	return snaps, rows.Err()
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
