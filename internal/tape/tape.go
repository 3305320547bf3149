// Copyright (c) 2026 Pocketkit Team
// Pocketkit - terminal calculator and password generator
// This source code is licensed under the MIT license found in the LICENSE file.

// package tape keeps a history of finished calculations, the digital
// equivalent of a printing calculator's paper tape.
// It stores entries through bun so that SQLite, PostgreSQL and MySQL can be
// used interchangeably.
package tape // import "github.com/toeirei/pocketkit/internal/tape"

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/toeirei/pocketkit/internal/calc"
	"github.com/toeirei/pocketkit/internal/logging"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/mysqldialect"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	// SQL drivers for the supported backends.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// sqlOpenFunc allows tests to override database opening behavior.
var sqlOpenFunc = sql.Open

// Entry is one line on the tape.
type Entry struct {
	bun.BaseModel `bun:"table:tape_entries,alias:te" json:"-"`

	ID         int64     `bun:"id,pk,autoincrement" json:"id"`
	Expression string    `bun:"expression,notnull" json:"expression"`
	Result     string    `bun:"result,notnull" json:"result"`
	CreatedAt  time.Time `bun:"created_at,notnull" json:"created_at"`
}

func (e Entry) String() string {
	return e.Expression + " = " + e.Result
}

// Store persists tape entries.
type Store struct {
	bun    *bun.DB
	dbType string
}

// driverName maps a configured database type to the registered sql driver.
func driverName(dbType string) (string, error) {
	switch dbType {
	case "sqlite":
		return "sqlite", nil
	case "postgres":
		// The pgx stdlib registers driver name "pgx".
		return "pgx", nil
	case "mysql":
		return "mysql", nil
	}
	return "", fmt.Errorf("unsupported database type: '%s'", dbType)
}

// createBunDB wraps sqlDB with the dialect for dbType.
func createBunDB(sqlDB *sql.DB, dbType string) *bun.DB {
	switch dbType {
	case "postgres":
		return bun.NewDB(sqlDB, pgdialect.New())
	case "mysql":
		return bun.NewDB(sqlDB, mysqldialect.New())
	default:
		return bun.NewDB(sqlDB, sqlitedialect.New())
	}
}

// Open connects to the database and makes sure the tape table exists.
func Open(ctx context.Context, dbType, dsn string) (*Store, error) {
	driver, err := driverName(dbType)
	if err != nil {
		return nil, err
	}
	sqlDB, err := sqlOpenFunc(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Each connection to ":memory:" is its own database; pin to one.
	if dbType == "sqlite" && dsn == ":memory:" {
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	}
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	s := &Store{bun: createBunDB(sqlDB, dbType), dbType: dbType}
	if _, err := s.bun.NewCreateTable().Model((*Entry)(nil)).IfNotExists().Exec(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to create tape table: %w", err)
	}
	logging.Debugf("tape: opened %s store", dbType)
	return s, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.bun.Close()
}

// Record appends a finished calculation to the tape.
func (s *Store) Record(ctx context.Context, c calc.Calculation) (Entry, error) {
	e := Entry{Expression: c.Expression(), Result: c.Result, CreatedAt: time.Now().UTC()}
	if _, err := s.bun.NewInsert().Model(&e).Exec(ctx); err != nil {
		return Entry{}, fmt.Errorf("record calculation: %w", err)
	}
	return e, nil
}

// List returns up to limit entries, newest first. A limit of zero or less
// returns everything.
func (s *Store) List(ctx context.Context, limit int) ([]Entry, error) {
	var entries []Entry
	q := s.bun.NewSelect().Model(&entries).Order("id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("list tape: %w", err)
	}
	return entries, nil
}

// Count returns the number of entries on the tape.
func (s *Store) Count(ctx context.Context) (int, error) {
	return s.bun.NewSelect().Model((*Entry)(nil)).Count(ctx)
}

// Clear deletes every entry and reports how many were removed.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.bun.NewDelete().Model((*Entry)(nil)).Where("1 = 1").Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("clear tape: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// insertAll adds entries in one transaction. IDs are reassigned by the
// database.
func (s *Store) insertAll(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}
	return s.bun.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		for i := range entries {
			entries[i].ID = 0
			if entries[i].CreatedAt.IsZero() {
				entries[i].CreatedAt = time.Now().UTC()
			}
		}
		_, err := tx.NewInsert().Model(&entries).Exec(ctx)
		return err
	})
}
