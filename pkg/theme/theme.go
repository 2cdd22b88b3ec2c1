package theme

import "strings"

// Component is a named themed bag, e.g. "link" or "card-header".
type Component struct {
	Name    string
	Options ComponentOptions
}

// Theme is an ordered list of components rendered together.
type Theme struct {
	Name       string
	Components []Component
}

// Rules concatenates the rules of every component in order.
func (t *Theme) Rules() []ComponentCssRule {
	var rules []ComponentCssRule
	for i := range t.Components {
		rules = append(rules, t.Components[i].Options.Rules()...)
	}
	return rules
}

// CSS renders each component as its own group of blocks and joins them with
// a single newline. Components with nothing to emit are skipped.
func (t *Theme) CSS() string {
	parts := make([]string, 0, len(t.Components))
	for i := range t.Components {
		if css := t.Components[i].Options.CSS(); css != "" {
			parts = append(parts, css)
		}
	}
	return strings.Join(parts, "\n")
}
