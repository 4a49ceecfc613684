// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page template names
const (
	PageIndex        = "index.html"
	PageAddStudent   = "add_student.html"
	PageAddCourse    = "add_course.html"
	PageAddSection   = "add_section.html"
	PageListStudents = "list_students.html"
	PageListCourses  = "list_courses.html"
	PageListSections = "list_sections.html"
)

var pages = []string{
	PageIndex,
	PageAddStudent,
	PageAddCourse,
	PageAddSection,
	PageListStudents,
	PageListCourses,
	PageListSections,
}

const layout = "layout.html"

// Renderer holds one parsed template set per page, each combined with the layout
type Renderer struct {
	pages map[string]*template.Template
}

func New() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pages))}
	for _, page := range pages {
		tmpl, err := template.New(layout).ParseFS(templateFS, "templates/"+layout, "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		r.pages[page] = tmpl
	}
	return r, nil
}

// MustNew is New for package initialization; templates are embedded, so a
// parse failure is a programming error
func MustNew() *Renderer {
	r, err := New()
	if err != nil {
		panic(err)
	}
	return r
}

// Render executes page into a buffer first so a template error never
// produces a half-written response
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data any) error {
	tmpl, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, layout, data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
