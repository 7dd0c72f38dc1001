// Package sanitize wraps the bluemonday policies used for note fields.
// Both helpers are idempotent: feeding their output back in returns the
// same string.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strict = bluemonday.StrictPolicy()
	ugc    = bluemonday.UGCPolicy()
)

// PlainText strips every HTML tag (script and style contents included) and
// trims surrounding whitespace. Used for title-like fields.
func PlainText(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// RichText keeps a fixed safe subset of user-generated-content tags and
// drops everything else. Used for note content.
func RichText(s string) string {
	return ugc.Sanitize(s)
}
