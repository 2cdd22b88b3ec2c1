package style

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	unitPattern    = regexp.MustCompile(`^-?(?:\d+\.?\d*|\.\d+)(?:px|em|rem|%|vh|vw|vmin|vmax)$`)
	globalKeywords = map[string]bool{"auto": true, "inherit": true, "initial": true, "unset": true}

	standalonePrefixes = []string{"#", "rgb", "hsl", "var(", "calc(", "clamp(", "min(", "max("}
	standaloneKeywords = map[string]bool{
		"inherit":      true,
		"initial":      true,
		"unset":        true,
		"revert":       true,
		"revert-layer": true,
		"auto":         true,
		"none":         true,
		"currentColor": true,
		"transparent":  true,
	}
)

// IsKnownThemeOrSizeToken reports whether text is a recognised theme or size
// token. It currently recognises nothing, so colour-family text is always
// classified as style-like.
func IsKnownThemeOrSizeToken(string) bool {
	return false
}

// IsStyleText classifies text produced by a family of the given kind.
// Text is style-like when it holds a declaration, is colour-family output,
// carries a CSS unit or global keyword, or is a standalone CSS value.
func IsStyleText(text string, kind Kind) bool {
	return text != "" && isStyleLike(text, kind)
}

func isStyleLike(text string, kind Kind) bool {
	if strings.Contains(text, ":") {
		return true
	}
	if kind.IsColor() && !IsKnownThemeOrSizeToken(text) {
		return true
	}
	if unitPattern.MatchString(text) || globalKeywords[text] {
		return true
	}
	return isStandaloneValue(text)
}

func isStandaloneValue(text string) bool {
	for _, p := range standalonePrefixes {
		if strings.HasPrefix(text, p) {
			return true
		}
	}
	if _, err := strconv.ParseFloat(text, 64); err == nil {
		return true
	}
	return standaloneKeywords[text]
}
