// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danielhkuo/university-records/cliparse"
	"github.com/danielhkuo/university-records/db"
	"github.com/danielhkuo/university-records/models"
	"github.com/danielhkuo/university-records/store"
)

// SetupTestDB creates a fresh SQLite database in a temp dir with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig()
	cfg.DatabaseURL = filepath.Join(t.TempDir(), "university.db")

	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   "university-test.db",
		DatabaseType:  cliparse.DatabaseSQLite,
		MaxIDAttempts: 32,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// CreateTestCourse inserts a course and returns it
func CreateTestCourse(t *testing.T, conn *sql.DB, rubric, number, name string, credits int) models.Course {
	t.Helper()

	course, err := store.New(conn).AddCourse(context.Background(), rubric, number, name, credits)
	if err != nil {
		t.Fatalf("Failed to create test course: %v", err)
	}
	return course
}

// CreateTestStudent inserts a student and returns it
func CreateTestStudent(t *testing.T, conn *sql.DB, name, address string) models.Student {
	t.Helper()

	student, err := store.New(conn).AddStudent(context.Background(), name, address)
	if err != nil {
		t.Fatalf("Failed to create test student: %v", err)
	}
	return student
}

// CreateTestSection schedules a section and returns it
func CreateTestSection(t *testing.T, conn *sql.DB, courseID int64, semester string) models.Section {
	t.Helper()

	section, err := store.New(conn).AddSection(context.Background(), courseID, semester)
	if err != nil {
		t.Fatalf("Failed to create test section: %v", err)
	}
	return section
}

// MakeRequest creates an HTTP test request with an optional JSON body
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// MakeFormRequest creates a url-encoded form POST
func MakeFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertContains checks that the response body contains every fragment
func AssertContains(t *testing.T, w *httptest.ResponseRecorder, fragments ...string) {
	t.Helper()
	body := w.Body.String()
	for _, f := range fragments {
		if !strings.Contains(body, f) {
			t.Errorf("Expected body to contain %q. Body: %s", f, body)
		}
	}
}
