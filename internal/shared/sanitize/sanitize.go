// Package sanitize strips markup from user-supplied text before storage.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// policy removes all HTML. Message bodies and report reasons are plain
// text; rendering happens at display time.
var policy = bluemonday.StrictPolicy()

// Text returns the input with all HTML stripped and surrounding
// whitespace trimmed.
func Text(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
