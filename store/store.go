// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/danielhkuo/university-records/models"
	"github.com/danielhkuo/university-records/studentid"
)

// Repository persists students, courses, and sections.
// Every operation borrows its own connection and returns it before exiting.
type Repository struct {
	db            *sql.DB
	maxIDAttempts int
	rand          io.Reader
	idExists      studentid.ExistsFunc
}

type Option func(*Repository)

// WithMaxIDAttempts bounds student id generation
func WithMaxIDAttempts(n int) Option {
	return func(r *Repository) {
		r.maxIDAttempts = n
	}
}

// WithIDExistsCheck replaces the lookup the id generator uses to skip taken ids.
// The UNIQUE constraint on student_id still applies on insert.
func WithIDExistsCheck(exists studentid.ExistsFunc) Option {
	return func(r *Repository) {
		r.idExists = exists
	}
}

// WithRandom replaces the entropy source for student ids
func WithRandom(rand io.Reader) Option {
	return func(r *Repository) {
		r.rand = rand
	}
}

func New(db *sql.DB, opts ...Option) *Repository {
	r := &Repository{db: db, maxIDAttempts: studentid.DefaultMaxAttempts}
	r.idExists = r.StudentIDExists
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddStudent assigns a fresh student id and stores the student
func (r *Repository) AddStudent(ctx context.Context, name, address string) (models.Student, error) {
	gen := studentid.Generator{
		Exists:      r.idExists,
		MaxAttempts: r.maxIDAttempts,
		Rand:        r.rand,
	}
	sid, err := gen.Generate(ctx)
	if err != nil {
		return models.Student{}, err
	}

	conn, err := r.db.Conn(ctx)
	if err != nil {
		return models.Student{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	student := models.Student{StudentID: sid, Name: name, Address: address}
	err = conn.QueryRowContext(ctx, `
		INSERT INTO students (student_id, name, address)
		VALUES ($1, $2, $3)
		RETURNING id
	`, sid, name, address).Scan(&student.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Student{}, fmt.Errorf("%w: %s", ErrDuplicateStudentID, sid)
		}
		return models.Student{}, fmt.Errorf("insert student: %w", err)
	}

	return student, nil
}

// StudentIDExists reports whether a student already holds id
func (r *Repository) StudentIDExists(ctx context.Context, id string) (bool, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return false, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	var one int
	err = conn.QueryRowContext(ctx, `
		SELECT 1 FROM students WHERE student_id = $1
	`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query student id: %w", err)
	}
	return true, nil
}

// AddCourse stores a course
func (r *Repository) AddCourse(ctx context.Context, rubric, number, name string, credits int) (models.Course, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return models.Course{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	course := models.Course{Rubric: rubric, Number: number, Name: name, Credits: credits}
	err = conn.QueryRowContext(ctx, `
		INSERT INTO courses (rubric, number, name, credits)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, rubric, number, name, credits).Scan(&course.ID)
	if err != nil {
		return models.Course{}, fmt.Errorf("insert course: %w", err)
	}

	return course, nil
}

// AddSection schedules a section of an existing course.
// The course is not looked up first; the foreign key rejects unknown ids.
func (r *Repository) AddSection(ctx context.Context, courseID int64, semester string) (models.Section, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return models.Section{}, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	section := models.Section{CourseID: courseID, Semester: semester}
	err = conn.QueryRowContext(ctx, `
		INSERT INTO sections (course_id, semester)
		VALUES ($1, $2)
		RETURNING id
	`, courseID, semester).Scan(&section.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return models.Section{}, fmt.Errorf("%w: %d", ErrCourseNotFound, courseID)
		}
		return models.Section{}, fmt.Errorf("insert section: %w", err)
	}

	return section, nil
}

// ListStudents returns every student in insertion order
func (r *Repository) ListStudents(ctx context.Context) ([]models.Student, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, `
		SELECT id, student_id, name, address
		FROM students
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	defer rows.Close()

	students := []models.Student{}
	for rows.Next() {
		var s models.Student
		if err := rows.Scan(&s.ID, &s.StudentID, &s.Name, &s.Address); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate students: %w", err)
	}

	return students, nil
}

// ListCourses returns all courses, or only those whose rubric equals
// rubric exactly when it is non-empty
func (r *Repository) ListCourses(ctx context.Context, rubric string) ([]models.Course, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	var rows *sql.Rows
	if rubric != "" {
		rows, err = conn.QueryContext(ctx, `
			SELECT id, rubric, number, name, credits
			FROM courses
			WHERE rubric = $1
			ORDER BY id
		`, rubric)
	} else {
		rows, err = conn.QueryContext(ctx, `
			SELECT id, rubric, number, name, credits
			FROM courses
			ORDER BY id
		`)
	}
	if err != nil {
		return nil, fmt.Errorf("query courses: %w", err)
	}
	defer rows.Close()

	courses := []models.Course{}
	for rows.Next() {
		var c models.Course
		if err := rows.Scan(&c.ID, &c.Rubric, &c.Number, &c.Name, &c.Credits); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate courses: %w", err)
	}

	return courses, nil
}

// ListCourseOptions returns the id, rubric, and number of every course
func (r *Repository) ListCourseOptions(ctx context.Context) ([]models.CourseOption, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, `
		SELECT id, rubric, number
		FROM courses
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query course options: %w", err)
	}
	defer rows.Close()

	options := []models.CourseOption{}
	for rows.Next() {
		var o models.CourseOption
		if err := rows.Scan(&o.ID, &o.Rubric, &o.Number); err != nil {
			return nil, fmt.Errorf("scan course option: %w", err)
		}
		options = append(options, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate course options: %w", err)
	}

	return options, nil
}

// ListSections returns every section joined with its course
func (r *Repository) ListSections(ctx context.Context) ([]models.SectionListing, error) {
	conn, err := r.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire connection: %w", err)
	}
	defer conn.Close()

	rows, err := conn.QueryContext(ctx, `
		SELECT s.id, s.semester, c.rubric, c.number, c.name
		FROM sections s
		JOIN courses c ON s.course_id = c.id
		ORDER BY s.id
	`)
	if err != nil {
		return nil, fmt.Errorf("query sections: %w", err)
	}
	defer rows.Close()

	sections := []models.SectionListing{}
	for rows.Next() {
		var s models.SectionListing
		if err := rows.Scan(&s.SectionID, &s.Semester, &s.Rubric, &s.Number, &s.CourseName); err != nil {
			return nil, fmt.Errorf("scan section: %w", err)
		}
		sections = append(sections, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sections: %w", err)
	}

	return sections, nil
}
