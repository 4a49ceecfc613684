// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package views renders the embedded HTML pages. Each page template
// defines "title" and "content" blocks that layout.html wraps.
package views
