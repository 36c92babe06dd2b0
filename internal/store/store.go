package store

import (
	"database/sql"
	_ "embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// migration upgrades the report schema from version-1 to version.
type migration struct {
	version    int
	statements []string
}

// migrations run in order; user_version records the last one applied.
var migrations = []migration{
	{
		// Reports saved before version 1 did not record the table size;
		// they read back with rule_count 0.
		version: 1,
		statements: []string{
			`ALTER TABLE reports ADD COLUMN rule_count INTEGER NOT NULL DEFAULT 0`,
		},
	},
	{
		// ListReports counts used elements per report.
		version: 2,
		statements: []string{
			`CREATE INDEX IF NOT EXISTS idx_report_elements_used ON report_elements(report_id, used)`,
		},
	},
}

// currentSchemaVersion is the user_version of a fully migrated database.
var currentSchemaVersion = migrations[len(migrations)-1].version

// Store persists usage reports in SQLite.
type Store struct {
	db *sql.DB
}

// Open opens the report database at path, creating it if needed, and
// upgrades its schema to the current version. ":memory:" gives a private
// in-memory database.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open report database: %w", err)
	}

	// One connection: SQLite has a single writer, and ":memory:" databases
	// are per connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := initialize(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("open report database %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func initialize(db *sql.DB) error {
	for _, pragma := range []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("%s: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("create baseline schema: %w", err)
	}
	return migrate(db)
}

// migrate applies every migration newer than the database's user_version,
// each in its own transaction together with the version bump.
func migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow("PRAGMA user_version").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version > currentSchemaVersion {
		return fmt.Errorf("schema version %d is newer than supported version %d", version, currentSchemaVersion)
	}

	for _, m := range migrations {
		if m.version <= version {
			continue
		}
		if err := m.apply(db); err != nil {
			return fmt.Errorf("migrate to schema version %d: %w", m.version, err)
		}
	}
	return nil
}

func (m migration) apply(db *sql.DB) (err error) {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, stmt := range m.statements {
		if _, err = tx.Exec(stmt); err != nil {
			return err
		}
	}
	if _, err = tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", m.version)); err != nil {
		return err
	}
	return tx.Commit()
}
