// Package store implements the persistent key-value store backing all client
// state. Each logical piece of state is bound to one key and serialized as
// JSON on every write.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/lifeos/internal/client/migrations"
	"github.com/dmitrijs2005/lifeos/internal/common"
	"github.com/dmitrijs2005/lifeos/internal/dbx"
	"github.com/dmitrijs2005/lifeos/internal/logging"
)

// Store is a typed wrapper around the kv table. Writes persist synchronously;
// reads that fail to parse degrade to the caller's default. Updating two keys
// is two independent writes, not a transaction.
type Store struct {
	db     *sql.DB
	logger logging.Logger
}

// RunMigrations applies the embedded schema migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if necessary) the store at dsn and migrates it.
func Open(ctx context.Context, dsn string, logger logging.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	if err := RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return New(db, logger), nil
}

// New wraps an already-open database handle. Tests use this with an
// in-memory database.
func New(db *sql.DB, logger logging.Logger) *Store {
	return &Store{db: db, logger: logger}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get loads the value under key into v. A missing key or a value that fails
// to parse leaves v untouched, so callers pass a pre-populated default. The
// parse failure is logged and deliberately not surfaced; the bad value stays
// in place until the next Set.
func (s *Store) Get(ctx context.Context, key string, v any) error {
	raw, ok, err := s.GetRaw(ctx, key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	target := reflect.ValueOf(v)
	if target.Kind() != reflect.Pointer || target.IsNil() {
		return fmt.Errorf("destination for key %q must be a non-nil pointer", key)
	}

	// Unmarshal may partially populate its destination before failing on a
	// type mismatch, so decode into a scratch value and assign only on
	// success; otherwise v would end up neither the stored value nor the
	// caller's default.
	scratch := reflect.New(target.Type().Elem())
	if err := json.Unmarshal([]byte(raw), scratch.Interface()); err != nil {
		s.logger.Warn(ctx, "stored value failed to parse, using default", "key", key, "error", err.Error())
		return nil
	}

	target.Elem().Set(scratch.Elem())
	return nil
}

// Set serializes v and persists it under key. A value that cannot be
// serialized is rejected before anything is written; a write failure is
// returned rather than silently dropping data.
func (s *Store) Set(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %s", common.ErrNotSerializable, err.Error())
	}
	return s.setRaw(ctx, s.db, key, string(b))
}

// GetRaw returns the raw serialized value under key, and whether it exists.
func (s *Store) GetRaw(ctx context.Context, key string) (string, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return raw, true, nil
}

// Keys lists every key currently present, sorted.
func (s *Store) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key FROM kv ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}

// ReplaceAll overwrites every key in data inside one transaction. Keys not
// present in data are left alone. Used by snapshot restore: either every key
// applies or none does.
func (s *Store) ReplaceAll(ctx context.Context, data map[string]string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for key, raw := range data {
			if err := s.setRaw(ctx, tx, key, raw); err != nil {
				return err
			}
		}
		return nil
	})
}

// Clear removes every key unconditionally. The CLI gates this behind a
// second confirmation.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv`); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	return nil
}

func (s *Store) setRaw(ctx context.Context, db dbx.DBTX, key, raw string) error {
	query := `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := db.ExecContext(ctx, query, key, raw); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}

// Load reads the value under key, returning def when the key is missing or
// unparseable.
func Load[T any](ctx context.Context, s *Store, key string, def T) (T, error) {
	v := def
	if err := s.Get(ctx, key, &v); err != nil {
		return def, err
	}
	return v, nil
}
