// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/university-records/cliparse"
	"github.com/danielhkuo/university-records/handlers"
	"github.com/danielhkuo/university-records/middleware"
	"github.com/danielhkuo/university-records/store"
	"github.com/danielhkuo/university-records/views"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	repo := store.New(db, store.WithMaxIDAttempts(cfg.MaxIDAttempts))
	pageHandler := handlers.NewPageHandler(repo, views.MustNew())
	apiHandler := handlers.NewAPIHandler(repo)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Landing page ({$} keeps it from matching every path)
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pageHandler.Index))

	// Registration forms
	mux.HandleFunc("GET /add-student", middleware.WithLogging(pageHandler.AddStudentForm))
	mux.HandleFunc("POST /add-student", middleware.WithLogging(pageHandler.AddStudent))
	mux.HandleFunc("GET /add-course", middleware.WithLogging(pageHandler.AddCourseForm))
	mux.HandleFunc("POST /add-course", middleware.WithLogging(pageHandler.AddCourse))
	mux.HandleFunc("GET /add-section", middleware.WithLogging(pageHandler.AddSectionForm))
	mux.HandleFunc("POST /add-section", middleware.WithLogging(pageHandler.AddSection))

	// Listings
	mux.HandleFunc("GET /list-students", middleware.WithLogging(pageHandler.ListStudents))
	mux.HandleFunc("GET /list-courses", middleware.WithLogging(pageHandler.ListCourses))
	mux.HandleFunc("GET /list-sections", middleware.WithLogging(pageHandler.ListSections))

	// JSON API
	mux.HandleFunc("POST /api/students", middleware.WithLogging(apiHandler.CreateStudent))
	mux.HandleFunc("GET /api/students", middleware.WithLogging(apiHandler.ListStudents))
	mux.HandleFunc("POST /api/courses", middleware.WithLogging(apiHandler.CreateCourse))
	mux.HandleFunc("GET /api/courses", middleware.WithLogging(apiHandler.ListCourses))
	mux.HandleFunc("POST /api/sections", middleware.WithLogging(apiHandler.CreateSection))
	mux.HandleFunc("GET /api/sections", middleware.WithLogging(apiHandler.ListSections))

	return mux
}
