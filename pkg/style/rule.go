package style

import "fmt"

// Rule is one atomic styling directive. Rules are values: a builder never
// edits a stored Rule, it swaps in an updated copy through Rules.ReplaceLastIf.
type Rule struct {
	Value      string
	Side       Side
	Breakpoint Breakpoint
	Corner     Corner
}

func (r Rule) withValue(v string) Rule {
	r.Value = v
	return r
}

func (r Rule) withSide(s Side) Rule {
	r.Side = s
	return r
}

func (r Rule) withBreakpoint(bp Breakpoint) Rule {
	r.Breakpoint = bp
	return r
}

func (r Rule) withCorner(c Corner) Rule {
	r.Corner = c
	return r
}

func (r Rule) String() string {
	s := fmt.Sprintf("value=%q side=%s", r.Value, r.Side)
	if r.Breakpoint != BreakpointNone {
		s += " breakpoint=" + r.Breakpoint.String()
	}
	if r.Corner != CornerNone {
		s += " corner=" + string(r.Corner)
	}
	return s
}

// Rules is an append-only sequence of Rule values. Every operation returns a
// new sequence; the receiver is never modified.
type Rules struct {
	items []Rule
}

// Len returns the number of rules in the sequence.
func (rs Rules) Len() int {
	return len(rs.items)
}

// Last returns the most recently appended rule.
func (rs Rules) Last() (Rule, bool) {
	if len(rs.items) == 0 {
		return Rule{}, false
	}
	return rs.items[len(rs.items)-1], true
}

// Slice returns a copy of the rules in order.
func (rs Rules) Slice() []Rule {
	out := make([]Rule, len(rs.items))
	copy(out, rs.items)
	return out
}

// Append returns a sequence with r added at the end.
func (rs Rules) Append(r Rule) Rules {
	// full slice expression forces a copy so sequences never share a tail
	items := append(rs.items[:len(rs.items):len(rs.items)], r)
	return Rules{items: items}
}

// ReplaceLastIf returns a sequence whose last rule is replaced by
// update(last) when pred(last) holds. The boolean reports whether the
// replacement happened; an empty sequence never matches.
func (rs Rules) ReplaceLastIf(pred func(Rule) bool, update func(Rule) Rule) (Rules, bool) {
	last, ok := rs.Last()
	if !ok || !pred(last) {
		return rs, false
	}
	items := make([]Rule, len(rs.items))
	copy(items, rs.items)
	items[len(items)-1] = update(last)
	return Rules{items: items}, true
}
