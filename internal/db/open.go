package db

import (
	"database/sql"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Open picks the driver from the DSN: postgres:// URLs go through the
// pgx stdlib driver, anything else is treated as a SQLite file path.
func Open(dsn string) (*sql.DB, error) {
	if IsPostgres(dsn) {
		return sql.Open("pgx", dsn)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}

	// Reduce contention and avoid long lock waits.
	_, _ = db.Exec(`PRAGMA journal_mode=WAL;`)  // readers don't block the writer
	_, _ = db.Exec(`PRAGMA busy_timeout=3000;`) // wait up to 3s before "database is locked"
	_, _ = db.Exec(`PRAGMA foreign_keys=ON;`)

	return db, nil
}

func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
