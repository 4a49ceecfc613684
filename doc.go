// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the University Records server.

University Records registers students (each with a generated, unique 8-digit
student id), defines courses, schedules course sections per semester, and
lists each of these, with courses filterable by rubric.

# Starting the Server

With no configuration the server stores data in database/university.db:

	go run .

Or with flags:

	go run . -p 3318 -d data/university.db

PostgreSQL is supported too:

	DATABASE_TYPE=postgres DATABASE_URL=postgres://... go run .

# Configuration

All settings are optional:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_URL (-d): SQLite path or PostgreSQL URL (default: database/university.db)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - STUDENT_ID_MAX_ATTEMPTS (-id-attempts): id draws before giving up (default: 32)
  - LOG_LEVEL (-log-level), LOG_FORMAT (-log-format)

A .env file (or the file named by ENV_FILE) is loaded if present.

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTML pages and JSON API
  - router: Route definitions using Go 1.22+ routing
  - middleware: request logging, CORS, JSON and form helpers
  - views: embedded HTML templates
  - store: record repository
  - studentid: student id generation
  - models: domain, request, response, and page types
  - db: store opening and schema creation
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
