package style

import "strings"

// Builder is the read side shared by every utility family: the accumulated
// rules and their deterministic class and inline-style renderings.
type Builder interface {
	Kind() Kind
	Rules() []Rule
	ToClass() string
	ToStyle() string
}

// family describes one utility family. Lookups return "" / nil for
// unmapped input; unmapped rules are skipped during resolution.
type family struct {
	kind Kind
	// seed is the value of the rule synthesised when a breakpoint or side
	// is set on an empty builder.
	seed    string
	corners bool
	class   func(Rule) string
	style   func(Rule) []string
	splice  func(fragment string, bp Breakpoint) string
}

// core holds the rule sequence of one builder and implements the
// coalescing state machine for value, side, corner and breakpoint calls.
type core struct {
	fam   *family
	rules Rules
}

func newCore(fam *family) core {
	return core{fam: fam}
}

// Kind returns the family kind of the builder.
func (c *core) Kind() Kind {
	return c.fam.kind
}

// Rules returns a copy of the accumulated rules in order.
func (c *core) Rules() []Rule {
	return c.rules.Slice()
}

// setValue appends a new rule holding v. In corner-scoped families a
// trailing rule that has a corner but no value yet receives v instead.
func (c *core) setValue(v string) {
	if c.fam.corners {
		next, ok := c.rules.ReplaceLastIf(
			func(r Rule) bool { return r.Corner != CornerNone && r.Value == "" },
			func(r Rule) Rule { return r.withValue(v) },
		)
		if ok {
			c.rules = next
			return
		}
	}
	c.rules = c.rules.Append(Rule{Value: v})
}

// setSide scopes the last rule to s while it still addresses all sides,
// otherwise appends a rule that repeats the last value and breakpoint.
func (c *core) setSide(s Side) {
	next, ok := c.rules.ReplaceLastIf(
		func(r Rule) bool { return r.Side == SideAll },
		func(r Rule) Rule { return r.withSide(s) },
	)
	if ok {
		c.rules = next
		return
	}
	last, ok := c.rules.Last()
	if !ok {
		c.rules = c.rules.Append(Rule{Value: c.fam.seed, Side: s})
		return
	}
	c.rules = c.rules.Append(Rule{Value: last.Value, Side: s, Breakpoint: last.Breakpoint})
}

// setCorner follows the side rules for corners. On an empty builder the
// new rule carries no value so that a following value call fills it in.
func (c *core) setCorner(k Corner) {
	next, ok := c.rules.ReplaceLastIf(
		func(r Rule) bool { return r.Corner == CornerNone },
		func(r Rule) Rule { return r.withCorner(k) },
	)
	if ok {
		c.rules = next
		return
	}
	last, ok := c.rules.Last()
	if !ok {
		c.rules = c.rules.Append(Rule{Corner: k})
		return
	}
	c.rules = c.rules.Append(Rule{Value: last.Value, Breakpoint: last.Breakpoint, Corner: k})
}

// setBreakpoint always scopes the last rule, seeding one when empty.
func (c *core) setBreakpoint(bp Breakpoint) {
	if c.rules.Len() == 0 {
		c.rules = c.rules.Append(Rule{Value: c.fam.seed})
	}
	c.rules, _ = c.rules.ReplaceLastIf(
		func(Rule) bool { return true },
		func(r Rule) Rule { return r.withBreakpoint(bp) },
	)
}

// ToClass renders the rules as utility class tokens joined by a space.
func (c *core) ToClass() string {
	parts := make([]string, 0, c.rules.Len())
	for _, r := range c.rules.items {
		fragment := c.fam.class(r)
		if fragment == "" {
			continue
		}
		if r.Breakpoint != BreakpointNone {
			fragment = c.fam.splice(fragment, r.Breakpoint)
		}
		parts = append(parts, fragment)
	}
	return strings.Join(parts, " ")
}

// ToStyle renders the rules as "property: value" segments joined by "; ".
// Breakpoints have no inline-style form and are ignored.
func (c *core) ToStyle() string {
	parts := make([]string, 0, c.rules.Len())
	for _, r := range c.rules.items {
		parts = append(parts, c.fam.style(r)...)
	}
	return strings.Join(parts, "; ")
}

// String returns the class rendering.
func (c *core) String() string {
	return c.ToClass()
}

func (c *core) base() *core {
	return c
}

// declare builds one "property: value" segment per property.
func declare(props []string, value string) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		out = append(out, p+": "+value)
	}
	return out
}

// spliceFirstDash inserts the breakpoint after the first dash-segment:
// "mt-3" becomes "mt-md-3". Fragments without a leading segment get a
// prefix: "md-border", and the text-colour opacity fragment "-75" becomes
// "md--75".
func spliceFirstDash(fragment string, bp Breakpoint) string {
	i := strings.IndexByte(fragment, '-')
	if i <= 0 {
		return bp.Token() + "-" + fragment
	}
	return fragment[:i] + "-" + bp.Token() + fragment[i:]
}

// spliceAfterStem inserts the breakpoint after the longest matching
// utility stem, so "justify-content-center" becomes
// "justify-content-md-center". Stems must be ordered longest first.
func spliceAfterStem(stems ...string) func(string, Breakpoint) string {
	return func(fragment string, bp Breakpoint) string {
		for _, stem := range stems {
			if strings.HasPrefix(fragment, stem+"-") {
				return stem + "-" + bp.Token() + fragment[len(stem):]
			}
		}
		return spliceFirstDash(fragment, bp)
	}
}
