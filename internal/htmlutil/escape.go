package htmlutil

import "strings"

// escaper replaces the five HTML-special characters with their named
// entities in a single pass. All other characters, including newlines, pass
// through untouched.
var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

// EscapeHTML makes an arbitrary user-supplied string safe to interpolate
// into an HTML email body. It is deliberately not idempotent: escaping an
// already-escaped string double-escapes it, so callers must escape raw input
// exactly once, at the point of template interpolation.
func EscapeHTML(s string) string {
	return escaper.Replace(s)
}
