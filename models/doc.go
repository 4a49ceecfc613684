// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, response, and page types.

# Domain Types

Records as stored and returned by the repository:

  - Student: surrogate id, generated 8-digit student_id, name, address
  - Course: rubric, number, name, credits
  - Section: course_id reference and semester
  - SectionListing: a section joined with its course rubric/number/name
  - CourseOption: id, rubric, number for the section form

# Request Types

JSON API bodies. Fields are pointers so a missing field can be told apart
from an empty one:

  - CreateStudentRequest: name, address
  - CreateCourseRequest: rubric, number, name, credits
  - CreateSectionRequest: course_id, semester

# Response Types

  - ListStudentsResponse: students
  - ListCoursesResponse: rubric, courses
  - ListSectionsResponse: sections
  - ErrorResponse: error, message

# Page Types

View models passed to HTML templates:

  - CoursesPage: rubric label ("All" when unfiltered) and courses
  - SectionFormPage: course options and an optional form error
*/
package models
