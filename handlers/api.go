// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/university-records/middleware"
	"github.com/danielhkuo/university-records/models"
	"github.com/danielhkuo/university-records/store"
	"github.com/danielhkuo/university-records/studentid"
)

type APIHandler struct {
	repo *store.Repository
}

func NewAPIHandler(repo *store.Repository) *APIHandler {
	return &APIHandler{repo: repo}
}

// CreateStudent handles POST /api/students
func (h *APIHandler) CreateStudent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateStudentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Empty strings are allowed, missing fields are not
	if req.Name == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.Address == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "address is required")
		return
	}

	student, err := h.repo.AddStudent(r.Context(), *req.Name, *req.Address)
	switch {
	case errors.Is(err, studentid.ErrExhausted):
		slog.Error("student id space exhausted", "error", err)
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, "Could not allocate a student id")
		return
	case errors.Is(err, store.ErrDuplicateStudentID):
		slog.Error("student id race", "error", err)
		middleware.ErrorResponse(w, http.StatusConflict, "Student id already taken, try again")
		return
	case err != nil:
		slog.Error("failed to insert student", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create student")
		return
	}

	slog.Info("student created", "request_id", middleware.RequestID(r.Context()), "student_id", student.StudentID)

	middleware.JSONResponse(w, http.StatusCreated, student)
}

// ListStudents handles GET /api/students
func (h *APIHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.repo.ListStudents(r.Context())
	if err != nil {
		slog.Error("failed to query students", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListStudentsResponse{
		Students: students,
	})
}

// CreateCourse handles POST /api/courses
func (h *APIHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCourseRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	switch {
	case req.Rubric == nil:
		middleware.ErrorResponse(w, http.StatusBadRequest, "rubric is required")
		return
	case req.Number == nil:
		middleware.ErrorResponse(w, http.StatusBadRequest, "number is required")
		return
	case req.Name == nil:
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	case req.Credits == nil:
		middleware.ErrorResponse(w, http.StatusBadRequest, "credits is required")
		return
	}

	course, err := h.repo.AddCourse(r.Context(), *req.Rubric, *req.Number, *req.Name, *req.Credits)
	if err != nil {
		slog.Error("failed to insert course", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create course")
		return
	}

	slog.Info("course created", "request_id", middleware.RequestID(r.Context()), "course_id", course.ID, "rubric", course.Rubric)

	middleware.JSONResponse(w, http.StatusCreated, course)
}

// ListCourses handles GET /api/courses?rubric=
func (h *APIHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	rubric := r.URL.Query().Get("rubric")

	courses, err := h.repo.ListCourses(r.Context(), rubric)
	if err != nil {
		slog.Error("failed to query courses", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListCoursesResponse{
		Rubric:  rubricLabel(rubric),
		Courses: courses,
	})
}

// CreateSection handles POST /api/sections
func (h *APIHandler) CreateSection(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.CourseID == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "course_id is required")
		return
	}
	if req.Semester == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "semester is required")
		return
	}

	section, err := h.repo.AddSection(r.Context(), *req.CourseID, *req.Semester)
	if errors.Is(err, store.ErrCourseNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, "Course not found")
		return
	}
	if err != nil {
		slog.Error("failed to insert section", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create section")
		return
	}

	slog.Info("section created", "request_id", middleware.RequestID(r.Context()), "section_id", section.ID, "course_id", section.CourseID)

	middleware.JSONResponse(w, http.StatusCreated, section)
}

// ListSections handles GET /api/sections
func (h *APIHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.repo.ListSections(r.Context())
	if err != nil {
		slog.Error("failed to query sections", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListSectionsResponse{
		Sections: sections,
	})
}
