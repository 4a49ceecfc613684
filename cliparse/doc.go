// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: SQLite file path or PostgreSQL connection string (default: database/university.db)
  - DatabaseType: sqlite or postgres (default: sqlite)
  - MaxIDAttempts: Student id draws before giving up (default: 32)
  - LogLevel: debug, info, warn, error (default: info)
  - LogFormat: text or json (default: text)

# CLI Flags

	-p            Server port
	-d            Database URL
	-t            Database type
	-id-attempts  Student id attempts
	-log-level    Log level
	-log-format   Log format

# Environment Variables

Flags fall back to environment variables, decoded with caarlos0/env:

	PORT                    → -p
	DATABASE_URL            → -d
	DATABASE_TYPE           → -t
	STUDENT_ID_MAX_ATTEMPTS → -id-attempts
	LOG_LEVEL               → -log-level
	LOG_FORMAT              → -log-format

Before the environment is read, the file named by ENV_FILE (default .env)
is loaded with godotenv if it exists. Variables already set in the process
environment win over the file.

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error for an out-of-range port, an empty database
URL, an unknown database type, a non-positive attempt count, or an unknown
log level or format.

# Example

	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	slog.SetDefault(cfg.NewLogger(os.Stderr))

	conn, err := db.Open(cfg)
	// ...
	mux := router.NewRouter(conn, cfg)
*/
package cliparse
