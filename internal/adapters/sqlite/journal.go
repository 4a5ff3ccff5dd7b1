package sqlite

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"accesstrack/internal/config"
	"accesstrack/internal/domain"
	"accesstrack/internal/ports"

	_ "modernc.org/sqlite"
)

const schemaVersion = "1"

// Journal implements ports.AccessJournal using SQLite. Times are stored as
// epoch milliseconds keyed by unit path.
type Journal struct {
	db      *sql.DB
	baseDir string
	dbPath  string
}

// Ensure Journal implements AccessJournal
var _ ports.AccessJournal = (*Journal)(nil)

// NewJournal creates a new, unopened SQLite journal
func NewJournal() *Journal {
	return &Journal{}
}

// Open initializes the journal for baseDir. If dbPath is empty the database
// lives in the XDG data directory under a name derived from baseDir.
func (j *Journal) Open(baseDir, dbPath string) error {
	baseDir, err := config.ExpandHome(baseDir)
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	if abs, err := filepath.Abs(baseDir); err == nil {
		baseDir = abs
	}

	j.baseDir = baseDir
	j.dbPath = dbPath
	if j.dbPath == "" {
		j.dbPath = databasePath(baseDir)
	}

	if err := os.MkdirAll(filepath.Dir(j.dbPath), 0755); err != nil {
		return fmt.Errorf("failed to create journal directory: %w", err)
	}

	// Pragmas in the DSN apply to every pooled connection. WAL lets concurrent
	// trackers append while a reader lists.
	db, err := sql.Open("sqlite", j.dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	j.db = db

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS access (
			path TEXT PRIMARY KEY,
			last_access INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_access_last ON access(last_access);
	`)
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to setup database: %w", err)
	}

	if err := j.updateMeta(); err != nil {
		db.Close()
		return fmt.Errorf("failed to update metadata: %w", err)
	}

	return nil
}

// Close closes the database connection
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Path returns the database file location
func (j *Journal) Path() string {
	return j.dbPath
}

// SchemaVersion returns the schema version recorded in the database
func (j *Journal) SchemaVersion(ctx context.Context) (string, error) {
	var version string
	err := j.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&version)
	return version, err
}

// JournalMode returns the SQLite journal mode of the connection
func (j *Journal) JournalMode(ctx context.Context) (string, error) {
	var mode string
	err := j.db.QueryRowContext(ctx, `PRAGMA journal_mode`).Scan(&mode)
	return mode, err
}

// SetLastAccessTime records t for path. An older t never replaces a newer one.
func (j *Journal) SetLastAccessTime(ctx context.Context, path string, t time.Time) error {
	_, err := j.db.ExecContext(ctx, `
		INSERT INTO access (path, last_access) VALUES (?, ?)
		ON CONFLICT(path) DO UPDATE SET last_access = MAX(last_access, excluded.last_access)
	`, path, t.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to journal %s: %w", path, err)
	}
	return nil
}

// LastAccessTime returns the journaled time for path
func (j *Journal) LastAccessTime(ctx context.Context, path string) (time.Time, bool, error) {
	var millis int64
	err := j.db.QueryRowContext(ctx, `SELECT last_access FROM access WHERE path = ?`, path).Scan(&millis)
	if err == sql.ErrNoRows {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	return time.UnixMilli(millis), true, nil
}

// DeleteLastAccessTime removes the entry for path
func (j *Journal) DeleteLastAccessTime(ctx context.Context, path string) error {
	_, err := j.db.ExecContext(ctx, `DELETE FROM access WHERE path = ?`, path)
	return err
}

// List returns all records, least recently accessed first
func (j *Journal) List(ctx context.Context) ([]domain.AccessRecord, error) {
	rows, err := j.db.QueryContext(ctx, `
		SELECT path, last_access FROM access ORDER BY last_access ASC, path ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.AccessRecord
	for rows.Next() {
		var r domain.AccessRecord
		var millis int64
		if err := rows.Scan(&r.Path, &millis); err != nil {
			return nil, err
		}
		r.LastAccess = time.UnixMilli(millis)
		records = append(records, r)
	}

	return records, rows.Err()
}

// databasePath returns the default path for the SQLite database
func databasePath(baseDir string) string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}

	return filepath.Join(dataHome, "accesstrack", hashBaseDir(baseDir)+".db")
}

// hashBaseDir returns a short hash of the base directory
func hashBaseDir(baseDir string) string {
	h := sha256.Sum256([]byte(baseDir))
	return hex.EncodeToString(h[:8]) // First 8 bytes = 16 hex chars
}

func (j *Journal) updateMeta() error {
	_, err := j.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('base_dir', ?);
	`, schemaVersion, j.baseDir)
	return err
}
