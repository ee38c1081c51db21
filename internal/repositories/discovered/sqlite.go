package discovered

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3" // sqlite3 driver

	"github.com/KirkDiggler/monster-codex/internal/entities"
	"github.com/KirkDiggler/monster-codex/internal/errors"
	"github.com/KirkDiggler/monster-codex/internal/pkg/clock"
)

// SQLiteConfig configures the SQLite-backed archive
type SQLiteConfig struct {
	// Path to the database file
	Path  string
	Clock clock.Clock
}

// Validate validates the SQLiteConfig and sets defaults
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Path == "" {
		return errors.InvalidArgument("path is required")
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	return nil
}

// SQLiteRepository implements Repository on a local SQLite file
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// NewSQLite opens (creating if needed) the archive database and migrates it
func NewSQLite(cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open archive database")
	}
	// sqlite serializes writers anyway
	db.SetMaxOpenConns(1)

	repo := &SQLiteRepository{db: db, clock: cfg.Clock}
	if err := repo.migrate(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to run archive migrations")
	}

	return repo, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteRepository) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS discovered_monsters (
			monster_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			query TEXT,
			data TEXT NOT NULL,
			discovered_at INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_discovered_name ON discovered_monsters(name)`,
		`CREATE INDEX IF NOT EXISTS idx_discovered_at ON discovered_monsters(discovered_at)`,
	}

	for _, m := range migrations {
		if _, err := r.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// Save stores a discovery
func (r *SQLiteRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Monster)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode monster")
	}
	now := r.clock.Now()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to begin archive transaction")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM discovered_monsters WHERE name = ? AND monster_id <> ?`,
		input.Monster.Name, input.Monster.MonsterID,
	); err != nil {
		return nil, errors.Wrapf(err, "failed to replace %s", input.Monster.Name)
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO discovered_monsters (monster_id, name, query, data, discovered_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(monster_id) DO UPDATE SET
			name = excluded.name,
			query = excluded.query,
			data = excluded.data,
			discovered_at = excluded.discovered_at
	`, input.Monster.MonsterID, input.Monster.Name, input.Query, string(data), now.UnixNano()); err != nil {
		return nil, errors.Wrapf(err, "failed to save %s", input.Monster.Name)
	}

	if err := tx.Commit(); err != nil {
		return nil, errors.Wrap(err, "failed to commit archive transaction")
	}

	return &SaveOutput{Entry: &Entry{
		Monster:      input.Monster.Clone(),
		Query:        input.Query,
		DiscoveredAt: now,
	}}, nil
}

// Get retrieves a discovery by id, then by name
func (r *SQLiteRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if err := validateGet(input); err != nil {
		return nil, err
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT query, data, discovered_at FROM discovered_monsters
		WHERE monster_id = ? OR name = ?
		ORDER BY CASE WHEN monster_id = ? THEN 0 ELSE 1 END, discovered_at DESC
		LIMIT 1
	`, input.Key, input.Key, input.Key)

	entry, err := scanEntry(row)
	if err == sql.ErrNoRows {
		return nil, notFound(input.Key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load discovered monster %s", input.Key)
	}

	return &GetOutput{Entry: entry}, nil
}

// List returns discoveries newest first
func (r *SQLiteRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT query, data, discovered_at FROM discovered_monsters
		ORDER BY discovered_at DESC, monster_id
		LIMIT ?
	`, listLimit(input))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list discovered monsters")
	}
	defer func() { _ = rows.Close() }()

	entries := []*Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to read discovered monster")
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list discovered monsters")
	}

	return &ListOutput{Entries: entries}, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(row scanner) (*Entry, error) {
	var (
		query sql.NullString
		data  string
		at    int64
	)
	if err := row.Scan(&query, &data, &at); err != nil {
		return nil, err
	}

	var m entities.Monster
	if err := json.Unmarshal([]byte(data), &m); err != nil {
		return nil, err
	}

	return &Entry{
		Monster:      &m,
		Query:        query.String,
		DiscoveredAt: time.Unix(0, at).UTC(),
	}, nil
}
