// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for University Records.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg)

It builds one store.Repository (bounded by cfg.MaxIDAttempts) shared by the
page and API handlers.

# Endpoints

Health:

	GET /health

Pages:

	GET  /
	GET  /add-student    POST /add-student
	GET  /add-course     POST /add-course
	GET  /add-section    POST /add-section
	GET  /list-students
	GET  /list-courses?rubric=
	GET  /list-sections

JSON API:

	GET /api/students   POST /api/students
	GET /api/courses    POST /api/courses
	GET /api/sections   POST /api/sections

# Middleware

All routes except /health are wrapped with middleware.WithLogging. Routes
use Go 1.22+ method patterns, so an unsupported method on a known path
returns 405 Method Not Allowed. The landing page is registered as
"GET /{$}" so unknown paths return 404.
*/
package router
