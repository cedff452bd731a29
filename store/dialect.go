package store

import (
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fleetdash/config"
)

// Dialect holds the per-driver SQL that Q cannot rewrite.
type Dialect interface {
	Name() string
	// DriverName is the database/sql driver registered for the dialect.
	DriverName() string
	DSN() string
	// Tune sets pool limits suited to the backend.
	Tune(*sql.DB)
	Schema() string
	// InsertReturningID reports whether INSERT ... RETURNING id is needed to
	// learn a generated key (pgx does not implement LastInsertId).
	InsertReturningID() bool
}

type sqliteDialect struct {
	path string
}

func (sqliteDialect) Name() string            { return "sqlite" }
func (sqliteDialect) DriverName() string      { return "sqlite" }
func (sqliteDialect) Schema() string          { return schemaSQLite }
func (sqliteDialect) InsertReturningID() bool { return false }

func (d sqliteDialect) DSN() string {
	return fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", d.path)
}

// Tune serializes access: SQLite allows one writer.
func (sqliteDialect) Tune(db *sql.DB) {
	db.SetMaxOpenConns(1)
}

type postgresDialect struct {
	cfg config.PostgresConfig
}

func (postgresDialect) Name() string            { return "postgres" }
func (postgresDialect) DriverName() string      { return "pgx" }
func (postgresDialect) Schema() string          { return schemaPostgres }
func (postgresDialect) InsertReturningID() bool { return true }

// DSN prefers the configured dsn over the individual fields.
func (d postgresDialect) DSN() string {
	if d.cfg.DSN != "" {
		return d.cfg.DSN
	}
	return fmt.Sprintf("host=%s port=%d dbname=%s user=%s password=%s sslmode=%s",
		d.cfg.Host, d.cfg.Port, d.cfg.Database, d.cfg.User, d.cfg.Password, d.cfg.SSLMode)
}

func (postgresDialect) Tune(db *sql.DB) {
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
}

// Rebind replaces each ? outside a quoted literal with $1, $2, ...
func Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}
