// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the records database and creates its schema.

# Opening

Open picks the driver from the config and pings the database:

	conn, err := db.Open(cfg)

  - sqlite (default): modernc.org/sqlite, DatabaseURL is a file path.
    The parent directory is created if missing, and every connection gets
    foreign_keys(1) and busy_timeout(5000).
  - postgres: github.com/lib/pq, DatabaseURL is a connection string.

# Schema Creation

CreateSchema initializes all required tables for the given dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.
There are no migrations.

# Tables

  - students: surrogate id, unique 8-digit student_id, name, address
  - courses: rubric, number, name, credits
  - sections: course_id, semester

# Relationships

	courses 1──* sections

sections.course_id references courses.id. Rows are never updated or
deleted, so there is no cascade.

# Indexes

  - students.student_id (unique)
  - courses.rubric
  - sections.course_id
*/
package db
