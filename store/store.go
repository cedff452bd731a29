package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"fleetdash/config"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const openTimeout = 5 * time.Second

// DB is a fleet.Source backed by SQLite or PostgreSQL.
type DB struct {
	*sql.DB
	dialect Dialect
	driver  string
}

// Open connects to the configured database and applies the schema. The
// memory driver has no database and is rejected here.
func Open(cfg *config.DatabaseConfig) (*DB, error) {
	var d Dialect
	switch cfg.Driver {
	case "sqlite":
		d = sqliteDialect{path: cfg.SQLite.Path}
	case "postgres":
		d = postgresDialect{cfg: cfg.Postgres}
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}
	return open(d)
}

func open(d Dialect) (*DB, error) {
	sqlDB, err := sql.Open(d.DriverName(), d.DSN())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", d.Name(), err)
	}
	d.Tune(sqlDB)

	ctx, cancel := context.WithTimeout(context.Background(), openTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("connect %s: %w", d.Name(), err)
	}

	db := &DB{DB: sqlDB, dialect: d, driver: d.Name()}
	if _, err := db.ExecContext(ctx, d.Schema()); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("migrate %s: %w", d.Name(), err)
	}
	return db, nil
}

func (db *DB) Dialect() Dialect { return db.dialect }
func (db *DB) Driver() string   { return db.driver }

// Q adapts a query written for SQLite to the open driver: placeholders become
// $n and the local-time literal becomes its PostgreSQL equivalent.
func (db *DB) Q(query string) string {
	if db.driver != "postgres" {
		return query
	}
	query = strings.ReplaceAll(query, "datetime('now','localtime')", "to_char(now(), 'YYYY-MM-DD HH24:MI:SS')")
	return Rebind(query)
}
