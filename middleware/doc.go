// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /list-students", middleware.WithLogging(handler))

Each request gets a UUID request id (or keeps the one sent in X-Request-ID),
which is echoed in the response header and available to handlers:

	id := middleware.RequestID(r.Context())

Logs request start (request_id, method, path, remote) and completion
(status, duration_ms).

# CORS Middleware

Enable cross-origin requests to the JSON API:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Allows methods GET, POST, OPTIONS with headers Content-Type and X-Request-ID.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.CreateStudentRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Form Helpers

Read required POST form fields. Missing fields fail, empty ones do not:

	values, err := middleware.FormValues(r, "name", "address")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
