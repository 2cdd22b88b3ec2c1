package classmerge

import (
	"regexp"
	"strings"
)

const maxTokenLength = 200

var (
	allowedToken   = regexp.MustCompile(`^[a-zA-Z0-9_\-:/.\[\]()%!@#&>+~=]+$`)
	deniedSnippets = []string{"expression", "javascript", "url(", "import"}
)

// Sanitize reports whether token is safe to emit. Empty, oversized or
// script-bearing tokens and tokens with characters outside the utility
// alphabet are rejected.
func Sanitize(token string) bool {
	if strings.TrimSpace(token) == "" || len(token) > maxTokenLength {
		return false
	}
	lower := strings.ToLower(token)
	for _, s := range deniedSnippets {
		if strings.Contains(lower, s) {
			return false
		}
	}
	return allowedToken.MatchString(token)
}
