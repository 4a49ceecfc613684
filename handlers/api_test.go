// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/university-records/models"
	"github.com/danielhkuo/university-records/store"
	"github.com/danielhkuo/university-records/studentid"
	"github.com/danielhkuo/university-records/testutil"
)

func TestCreateStudent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewAPIHandler(store.New(db))

	testCases := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{"valid", `{"name":"Jane Doe","address":"123 Main St"}`, http.StatusCreated},
		{"empty strings", `{"name":"","address":""}`, http.StatusCreated},
		{"missing address", `{"name":"Jane"}`, http.StatusBadRequest},
		{"missing name", `{"address":"Main St"}`, http.StatusBadRequest},
		{"invalid json", `{name}`, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/students", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			h.CreateStudent(w, req)

			testutil.AssertStatus(t, w, tc.expectedStatus)
			if tc.expectedStatus != http.StatusCreated {
				var resp models.ErrorResponse
				testutil.AssertJSON(t, w, &resp)
				if resp.Error != http.StatusText(tc.expectedStatus) {
					t.Errorf("Expected error %q, got %q", http.StatusText(tc.expectedStatus), resp.Error)
				}
				return
			}

			var student models.Student
			testutil.AssertJSON(t, w, &student)
			if !studentid.Valid(student.StudentID) {
				t.Errorf("Invalid student id %q", student.StudentID)
			}
		})
	}
}

func TestCreateStudent_Exhausted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	repo := store.New(db,
		store.WithRandom(bytes.NewReader(make([]byte, 1024))),
		store.WithMaxIDAttempts(2),
	)
	h := NewAPIHandler(repo)

	body := models.CreateStudentRequest{Name: ptr("A"), Address: ptr("B")}

	w := httptest.NewRecorder()
	h.CreateStudent(w, testutil.MakeRequest("POST", "/api/students", body, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = httptest.NewRecorder()
	h.CreateStudent(w, testutil.MakeRequest("POST", "/api/students", body, nil))
	testutil.AssertStatus(t, w, http.StatusServiceUnavailable)
}

func TestCreateStudent_DuplicateID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	repo := store.New(db,
		store.WithRandom(bytes.NewReader(make([]byte, 1024))),
		store.WithIDExistsCheck(func(context.Context, string) (bool, error) { return false, nil }),
	)
	h := NewAPIHandler(repo)

	body := models.CreateStudentRequest{Name: ptr("A"), Address: ptr("B")}

	w := httptest.NewRecorder()
	h.CreateStudent(w, testutil.MakeRequest("POST", "/api/students", body, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = httptest.NewRecorder()
	h.CreateStudent(w, testutil.MakeRequest("POST", "/api/students", body, nil))
	testutil.AssertStatus(t, w, http.StatusConflict)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != "Conflict" {
		t.Errorf("Expected error Conflict, got %q", resp.Error)
	}
}

func TestListStudents_API(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewAPIHandler(store.New(db))

	t.Run("empty", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ListStudents(w, httptest.NewRequest("GET", "/api/students", nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		if body := strings.TrimSpace(w.Body.String()); body != `{"students":[]}` {
			t.Errorf("Expected empty array, got %s", body)
		}
	})

	t.Run("populated", func(t *testing.T) {
		jane := testutil.CreateTestStudent(t, db, "Jane Doe", "123 Main St")
		john := testutil.CreateTestStudent(t, db, "John Roe", "9 Elm St")

		w := httptest.NewRecorder()
		h.ListStudents(w, httptest.NewRequest("GET", "/api/students", nil))

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.ListStudentsResponse
		testutil.AssertJSON(t, w, &resp)

		if len(resp.Students) != 2 {
			t.Fatalf("Expected 2 students, got %d", len(resp.Students))
		}
		if resp.Students[0] != jane || resp.Students[1] != john {
			t.Errorf("Unexpected students %+v", resp.Students)
		}
	})
}

func TestCreateCourse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewAPIHandler(store.New(db))

	testCases := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{"valid", `{"rubric":"CS","number":"101","name":"Intro to Programming","credits":3}`, http.StatusCreated},
		{"missing rubric", `{"number":"101","name":"Intro","credits":3}`, http.StatusBadRequest},
		{"missing number", `{"rubric":"CS","name":"Intro","credits":3}`, http.StatusBadRequest},
		{"missing name", `{"rubric":"CS","number":"101","credits":3}`, http.StatusBadRequest},
		{"missing credits", `{"rubric":"CS","number":"101","name":"Intro"}`, http.StatusBadRequest},
		{"string credits", `{"rubric":"CS","number":"101","name":"Intro","credits":"3"}`, http.StatusBadRequest},
		{"fractional credits", `{"rubric":"CS","number":"101","name":"Intro","credits":3.5}`, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/courses", strings.NewReader(tc.body))
			w := httptest.NewRecorder()

			h.CreateCourse(w, req)

			testutil.AssertStatus(t, w, tc.expectedStatus)
		})
	}

	courses, err := store.New(db).ListCourses(t.Context(), "")
	if err != nil {
		t.Fatal(err)
	}
	if len(courses) != 1 {
		t.Errorf("Expected 1 stored course, got %d", len(courses))
	}
}

func TestListCourses_API(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewAPIHandler(store.New(db))
	testutil.CreateTestCourse(t, db, "CS", "101", "Intro to Programming", 3)
	testutil.CreateTestCourse(t, db, "MATH", "201", "Linear Algebra", 4)

	testCases := []struct {
		query        string
		expectRubric string
		expectCount  int
	}{
		{"", "All", 2},
		{"?rubric=CS", "CS", 1},
		{"?rubric=MATH", "MATH", 1},
		{"?rubric=cs", "cs", 0},
	}

	for _, tc := range testCases {
		t.Run("query "+tc.query, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.ListCourses(w, httptest.NewRequest("GET", "/api/courses"+tc.query, nil))

			testutil.AssertStatus(t, w, http.StatusOK)
			var resp models.ListCoursesResponse
			testutil.AssertJSON(t, w, &resp)

			if resp.Rubric != tc.expectRubric {
				t.Errorf("Expected rubric %q, got %q", tc.expectRubric, resp.Rubric)
			}
			if len(resp.Courses) != tc.expectCount {
				t.Errorf("Expected %d courses, got %d", tc.expectCount, len(resp.Courses))
			}
		})
	}
}

func TestCreateSection_API(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewAPIHandler(store.New(db))
	course := testutil.CreateTestCourse(t, db, "CS", "101", "Intro to Programming", 3)

	t.Run("valid", func(t *testing.T) {
		body := models.CreateSectionRequest{CourseID: &course.ID, Semester: ptr("Fall2024")}
		w := httptest.NewRecorder()
		h.CreateSection(w, testutil.MakeRequest("POST", "/api/sections", body, nil))

		testutil.AssertStatus(t, w, http.StatusCreated)
		var section models.Section
		testutil.AssertJSON(t, w, &section)
		if section.CourseID != course.ID || section.Semester != "Fall2024" {
			t.Errorf("Unexpected section %+v", section)
		}
	})

	t.Run("unknown course", func(t *testing.T) {
		missing := int64(999)
		body := models.CreateSectionRequest{CourseID: &missing, Semester: ptr("Fall2024")}
		w := httptest.NewRecorder()
		h.CreateSection(w, testutil.MakeRequest("POST", "/api/sections", body, nil))

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("missing course id", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.CreateSection(w, httptest.NewRequest("POST", "/api/sections", strings.NewReader(`{"semester":"Fall2024"}`)))

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("missing semester", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.CreateSection(w, httptest.NewRequest("POST", "/api/sections", strings.NewReader(`{"course_id":1}`)))

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})
}

func TestListSections_API(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	h := NewAPIHandler(store.New(db))
	course := testutil.CreateTestCourse(t, db, "CS", "101", "Intro to Programming", 3)
	section := testutil.CreateTestSection(t, db, course.ID, "Fall2024")

	w := httptest.NewRecorder()
	h.ListSections(w, httptest.NewRequest("GET", "/api/sections", nil))

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp models.ListSectionsResponse
	testutil.AssertJSON(t, w, &resp)

	want := models.SectionListing{
		SectionID:  section.ID,
		Semester:   "Fall2024",
		Rubric:     "CS",
		Number:     "101",
		CourseName: "Intro to Programming",
	}
	if len(resp.Sections) != 1 || resp.Sections[0] != want {
		t.Errorf("Expected [%+v], got %+v", want, resp.Sections)
	}
}

func TestAPI_DatabaseError(t *testing.T) {
	db := testutil.SetupTestDB(t)
	h := NewAPIHandler(store.New(db))
	db.Close()

	w := httptest.NewRecorder()
	h.ListSections(w, httptest.NewRequest("GET", "/api/sections", nil))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
}

func ptr(s string) *string {
	return &s
}
