// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/university-records/middleware"
	"github.com/danielhkuo/university-records/models"
	"github.com/danielhkuo/university-records/store"
	"github.com/danielhkuo/university-records/views"
)

type PageHandler struct {
	repo  *store.Repository
	views *views.Renderer
}

func NewPageHandler(repo *store.Repository, renderer *views.Renderer) *PageHandler {
	return &PageHandler{repo: repo, views: renderer}
}

// Index handles GET /
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.PageIndex, nil)
}

// AddStudentForm handles GET /add-student
func (h *PageHandler) AddStudentForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.PageAddStudent, "")
}

// AddStudent handles POST /add-student
func (h *PageHandler) AddStudent(w http.ResponseWriter, r *http.Request) {
	values, err := middleware.FormValues(r, "name", "address")
	if err != nil {
		h.render(w, r, http.StatusBadRequest, views.PageAddStudent, err.Error())
		return
	}

	student, err := h.repo.AddStudent(r.Context(), values[0], values[1])
	if err != nil {
		h.serverError(w, r, "failed to add student", err)
		return
	}

	slog.Info("student added", "request_id", middleware.RequestID(r.Context()), "student_id", student.StudentID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// AddCourseForm handles GET /add-course
func (h *PageHandler) AddCourseForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, views.PageAddCourse, "")
}

// AddCourse handles POST /add-course
func (h *PageHandler) AddCourse(w http.ResponseWriter, r *http.Request) {
	values, err := middleware.FormValues(r, "rubric", "number", "name", "credits")
	if err != nil {
		h.render(w, r, http.StatusBadRequest, views.PageAddCourse, err.Error())
		return
	}

	credits, err := strconv.Atoi(strings.TrimSpace(values[3]))
	if err != nil {
		h.render(w, r, http.StatusBadRequest, views.PageAddCourse, "credits must be an integer")
		return
	}

	course, err := h.repo.AddCourse(r.Context(), values[0], values[1], values[2], credits)
	if err != nil {
		h.serverError(w, r, "failed to add course", err)
		return
	}

	slog.Info("course added", "request_id", middleware.RequestID(r.Context()), "course_id", course.ID, "rubric", course.Rubric)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// AddSectionForm handles GET /add-section
// The form lists every course to pick from
func (h *PageHandler) AddSectionForm(w http.ResponseWriter, r *http.Request) {
	h.renderSectionForm(w, r, http.StatusOK, "")
}

// AddSection handles POST /add-section
func (h *PageHandler) AddSection(w http.ResponseWriter, r *http.Request) {
	values, err := middleware.FormValues(r, "course_id", "semester")
	if err != nil {
		h.renderSectionForm(w, r, http.StatusBadRequest, err.Error())
		return
	}

	courseID, err := strconv.ParseInt(strings.TrimSpace(values[0]), 10, 64)
	if err != nil {
		h.renderSectionForm(w, r, http.StatusBadRequest, "course_id must be an integer")
		return
	}

	section, err := h.repo.AddSection(r.Context(), courseID, values[1])
	if errors.Is(err, store.ErrCourseNotFound) {
		h.renderSectionForm(w, r, http.StatusBadRequest, "course not found")
		return
	}
	if err != nil {
		h.serverError(w, r, "failed to add section", err)
		return
	}

	slog.Info("section added", "request_id", middleware.RequestID(r.Context()), "section_id", section.ID, "course_id", courseID)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// ListStudents handles GET /list-students
func (h *PageHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	students, err := h.repo.ListStudents(r.Context())
	if err != nil {
		h.serverError(w, r, "failed to list students", err)
		return
	}
	h.render(w, r, http.StatusOK, views.PageListStudents, students)
}

// ListCourses handles GET /list-courses?rubric=
func (h *PageHandler) ListCourses(w http.ResponseWriter, r *http.Request) {
	rubric := r.URL.Query().Get("rubric")

	courses, err := h.repo.ListCourses(r.Context(), rubric)
	if err != nil {
		h.serverError(w, r, "failed to list courses", err)
		return
	}

	h.render(w, r, http.StatusOK, views.PageListCourses, models.CoursesPage{
		Rubric:  rubricLabel(rubric),
		Courses: courses,
	})
}

// ListSections handles GET /list-sections
func (h *PageHandler) ListSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.repo.ListSections(r.Context())
	if err != nil {
		h.serverError(w, r, "failed to list sections", err)
		return
	}
	h.render(w, r, http.StatusOK, views.PageListSections, sections)
}

func (h *PageHandler) renderSectionForm(w http.ResponseWriter, r *http.Request, status int, formErr string) {
	options, err := h.repo.ListCourseOptions(r.Context())
	if err != nil {
		h.serverError(w, r, "failed to list course options", err)
		return
	}
	h.render(w, r, status, views.PageAddSection, models.SectionFormPage{
		Courses: options,
		Error:   formErr,
	})
}

func (h *PageHandler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	if err := h.views.Render(w, status, page, data); err != nil {
		h.serverError(w, r, "failed to render page", err)
	}
}

func (h *PageHandler) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg, "request_id", middleware.RequestID(r.Context()), "path", r.URL.Path, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func rubricLabel(rubric string) string {
	if rubric == "" {
		return models.AllRubrics
	}
	return rubric
}
