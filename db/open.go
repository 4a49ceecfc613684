// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"

	"github.com/danielhkuo/university-records/cliparse"
)

// Pragmas applied to every SQLite connection. foreign_keys is off by
// default in SQLite and must be set per connection.
const sqlitePragmas = "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"

// Open connects to the configured database and verifies the connection
func Open(cfg cliparse.Config) (*sql.DB, error) {
	driver, dsn, err := DataSource(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.DatabaseType == cliparse.DatabaseSQLite {
		if err := ensureDir(cfg.DatabaseURL); err != nil {
			return nil, err
		}
	}

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", driver, err)
	}
	// Each connection to an in-memory database sees its own empty store
	if cfg.DatabaseType == cliparse.DatabaseSQLite && isMemory(cfg.DatabaseURL) {
		conn.SetMaxOpenConns(1)
	}
	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s db: %w", driver, err)
	}

	return conn, nil
}

// DataSource returns the driver name and DSN for the config
func DataSource(cfg cliparse.Config) (driver, dsn string, err error) {
	switch cfg.DatabaseType {
	case cliparse.DatabaseSQLite:
		dsn = cfg.DatabaseURL
		if strings.Contains(dsn, "?") {
			dsn += "&" + sqlitePragmas
		} else {
			dsn += "?" + sqlitePragmas
		}
		return "sqlite", dsn, nil
	case cliparse.DatabasePostgres:
		return "postgres", cfg.DatabaseURL, nil
	}
	return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, cfg.DatabaseType)
}

func isMemory(path string) bool {
	return strings.HasPrefix(path, ":memory:") ||
		strings.HasPrefix(path, "file::memory:") ||
		strings.Contains(path, "mode=memory")
}

// ensureDir creates the parent directory of a SQLite file path
func ensureDir(path string) error {
	if strings.HasPrefix(path, "file:") || strings.HasPrefix(path, ":memory:") {
		return nil
	}
	if i := strings.Index(path, "?"); i >= 0 {
		path = path[:i]
	}

	dir := filepath.Dir(filepath.Clean(path))
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}
	return nil
}
