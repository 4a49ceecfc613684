// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/danielhkuo/university-records/cliparse"
)

var ErrUnsupportedDialect = errors.New("unsupported database dialect")

// Tables created by CreateSchema, parents first
var Tables = []string{"students", "courses", "sections"}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect string) error {
	var ddl string
	switch dialect {
	case cliparse.DatabaseSQLite:
		ddl = sqliteSchema
	case cliparse.DatabasePostgres:
		ddl = postgresSchema
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}

	_, err := db.Exec(ddl)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const sqliteSchema = `
-- Students
CREATE TABLE IF NOT EXISTS students (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    student_id TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    address TEXT NOT NULL
);

-- Courses
CREATE TABLE IF NOT EXISTS courses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    rubric TEXT NOT NULL,
    number TEXT NOT NULL,
    name TEXT NOT NULL,
    credits INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_courses_rubric ON courses(rubric);

-- Sections
CREATE TABLE IF NOT EXISTS sections (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    course_id INTEGER NOT NULL REFERENCES courses(id),
    semester TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sections_course_id ON sections(course_id);
`

const postgresSchema = `
-- Students
CREATE TABLE IF NOT EXISTS students (
    id BIGSERIAL PRIMARY KEY,
    student_id TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    address TEXT NOT NULL
);

-- Courses
CREATE TABLE IF NOT EXISTS courses (
    id BIGSERIAL PRIMARY KEY,
    rubric TEXT NOT NULL,
    number TEXT NOT NULL,
    name TEXT NOT NULL,
    credits INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_courses_rubric ON courses(rubric);

-- Sections
CREATE TABLE IF NOT EXISTS sections (
    id BIGSERIAL PRIMARY KEY,
    course_id BIGINT NOT NULL REFERENCES courses(id),
    semester TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_sections_course_id ON sections(course_id);
`
