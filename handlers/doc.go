// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for University Records.

# Handler Types

Each handler is a struct wrapping the record repository:

  - PageHandler: HTML forms and listings (also needs a views.Renderer)
  - APIHandler: the same operations as JSON

Handlers are created via constructor functions:

	repo := store.New(db, store.WithMaxIDAttempts(cfg.MaxIDAttempts))
	pages := handlers.NewPageHandler(repo, views.MustNew())
	api := handlers.NewAPIHandler(repo)

# HTML Pages

	GET  /               → Index
	GET  /add-student    → AddStudentForm
	POST /add-student    → AddStudent (name, address)
	GET  /add-course     → AddCourseForm
	POST /add-course     → AddCourse (rubric, number, name, credits)
	GET  /add-section    → AddSectionForm (lists courses)
	POST /add-section    → AddSection (course_id, semester)
	GET  /list-students  → ListStudents
	GET  /list-courses   → ListCourses (?rubric=, "All" when absent)
	GET  /list-sections  → ListSections

A successful POST redirects to / with 303 See Other. A missing form field,
or a credits/course_id value that is not an integer, re-renders the form
with 400. An empty field is accepted.

# JSON API

	POST /api/students  → CreateStudent
	GET  /api/students  → ListStudents
	POST /api/courses   → CreateCourse
	GET  /api/courses   → ListCourses
	POST /api/sections  → CreateSection (404 for unknown course)
	GET  /api/sections  → ListSections

Errors use the {error, message} envelope from middleware.ErrorResponse.
*/
package handlers
