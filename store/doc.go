// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the record repository for students, courses, and sections.

# Construction

The database handle is injected; there is no package-level connection:

	repo := store.New(conn, store.WithMaxIDAttempts(cfg.MaxIDAttempts))

# Operations

	student, err := repo.AddStudent(ctx, "Jane Doe", "123 Main St")
	course, err := repo.AddCourse(ctx, "CS", "101", "Intro to Programming", 3)
	section, err := repo.AddSection(ctx, course.ID, "Fall2024")

	students, err := repo.ListStudents(ctx)
	courses, err := repo.ListCourses(ctx, "CS") // "" lists all
	sections, err := repo.ListSections(ctx)     // joined with course
	options, err := repo.ListCourseOptions(ctx)

Records are never updated or deleted. Lists are ordered by surrogate id,
which is insertion order, and are never nil.

# Connections

Each operation borrows a dedicated connection with DB.Conn and releases it
with a deferred Close, so the connection goes back to the pool on every
path, including errors.

# Errors

Storage errors are wrapped and returned. Two constraint failures are
reported as sentinels, for both SQLite and PostgreSQL:

  - ErrCourseNotFound: AddSection referenced a course that does not exist
  - ErrDuplicateStudentID: a concurrent AddStudent stored the same id first

Student id generation failures (studentid.ErrExhausted) pass through
unchanged. Nothing is retried.
*/
package store
