// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

// Filter label shown when courses are not filtered by rubric
const AllRubrics = "All"

// Domain types

type Student struct {
	ID        int64  `json:"id"`
	StudentID string `json:"student_id"`
	Name      string `json:"name"`
	Address   string `json:"address"`
}

type Course struct {
	ID      int64  `json:"id"`
	Rubric  string `json:"rubric"`
	Number  string `json:"number"`
	Name    string `json:"name"`
	Credits int    `json:"credits"`
}

type Section struct {
	ID       int64  `json:"id"`
	CourseID int64  `json:"course_id"`
	Semester string `json:"semester"`
}

// SectionListing is a section joined with its parent course
type SectionListing struct {
	SectionID  int64  `json:"section_id"`
	Semester   string `json:"semester"`
	Rubric     string `json:"rubric"`
	Number     string `json:"number"`
	CourseName string `json:"course_name"`
}

// CourseOption is the short course row offered when scheduling a section
type CourseOption struct {
	ID     int64  `json:"id"`
	Rubric string `json:"rubric"`
	Number string `json:"number"`
}

// Request types

type CreateStudentRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
}

type CreateCourseRequest struct {
	Rubric  *string `json:"rubric"`
	Number  *string `json:"number"`
	Name    *string `json:"name"`
	Credits *int    `json:"credits"`
}

type CreateSectionRequest struct {
	CourseID *int64  `json:"course_id"`
	Semester *string `json:"semester"`
}

// Response types

type ListStudentsResponse struct {
	Students []Student `json:"students"`
}

type ListCoursesResponse struct {
	Rubric  string   `json:"rubric"`
	Courses []Course `json:"courses"`
}

type ListSectionsResponse struct {
	Sections []SectionListing `json:"sections"`
}

// Page view models

type CoursesPage struct {
	Rubric  string
	Courses []Course
}

type SectionFormPage struct {
	Courses []CourseOption
	Error   string
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
