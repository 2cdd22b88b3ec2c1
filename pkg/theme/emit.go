package theme

import (
	"strings"

	"github.com/alexisbeaulieu97/stylekit/pkg/style"
)

// ComponentCssRule is one declaration scoped to a selector. Declaration is a
// trimmed "property: value" with no trailing semicolon.
type ComponentCssRule struct {
	Selector    string
	Declaration string
}

// Rules walks the slots in registry order and emits a rule per declaration
// of every non-empty value.
func (o *ComponentOptions) Rules() []ComponentCssRule {
	var rules []ComponentCssRule
	for _, slot := range Slots() {
		v := slot.Value(o)
		if v.IsEmpty() {
			continue
		}
		decls := Declarations(v, slot.Property)
		if len(decls) == 0 {
			continue
		}
		selector := o.Selector
		if sel, ok := v.Selector(); ok {
			selector = ResolveSelector(o.Selector, sel, v.IsAbsolute())
		}
		for _, d := range decls {
			rules = append(rules, ComponentCssRule{Selector: selector, Declaration: d})
		}
	}
	return rules
}

// Declarations extracts the declarations carried by v. A value with style
// text yields its ";" separated segments; a style-like value without one
// yields a single "{fallback}: {text}" declaration; anything else yields none.
func Declarations(v style.Value, fallback string) []string {
	if st := v.StyleText(); st != "" {
		var out []string
		for _, seg := range strings.Split(st, ";") {
			if seg = strings.TrimSpace(seg); seg != "" {
				out = append(out, seg)
			}
		}
		return out
	}
	if v.IsCssStyle() && fallback != "" {
		return []string{fallback + ": " + strings.TrimSpace(v.Text())}
	}
	return nil
}

// Render groups rules by selector, in first-seen order, and formats one block
// per selector. Blocks are separated by a single newline.
func Render(rules []ComponentCssRule) string {
	var (
		order  []string
		groups = make(map[string][]string)
	)
	for _, r := range rules {
		if _, ok := groups[r.Selector]; !ok {
			order = append(order, r.Selector)
		}
		groups[r.Selector] = append(groups[r.Selector], r.Declaration)
	}

	blocks := make([]string, 0, len(order))
	for _, sel := range order {
		var b strings.Builder
		b.WriteString(sel)
		b.WriteString(" {\n")
		for _, d := range groups[sel] {
			b.WriteString("  ")
			b.WriteString(d)
			b.WriteString(";\n")
		}
		b.WriteString("}")
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n")
}

// CSS renders the bag on its own.
func (o *ComponentOptions) CSS() string {
	return Render(o.Rules())
}
