package style

// Breakpoint represents a responsive breakpoint a rule is scoped to.
// Breakpoints are mobile-first: a rule applies at the breakpoint width and above.
type Breakpoint int

const (
	BreakpointNone Breakpoint = iota
	BreakpointSM              // ≥576px, phone landscape
	BreakpointMD              // ≥768px, tablet
	BreakpointLG              // ≥992px, laptop
	BreakpointXL              // ≥1200px, desktop
	BreakpointXXL             // ≥1400px, widescreen
)

var breakpointTokens = [...]string{
	BreakpointNone: "",
	BreakpointSM:   "sm",
	BreakpointMD:   "md",
	BreakpointLG:   "lg",
	BreakpointXL:   "xl",
	BreakpointXXL:  "xxl",
}

// Token returns the class-token fragment of the breakpoint ("" for none).
func (b Breakpoint) Token() string {
	if b < 0 || int(b) >= len(breakpointTokens) {
		return ""
	}
	return breakpointTokens[b]
}

func (b Breakpoint) String() string {
	if b == BreakpointNone {
		return "none"
	}
	return b.Token()
}

// ParseBreakpoint maps a token ("sm", "md", ...) back to its Breakpoint.
func ParseBreakpoint(token string) (Breakpoint, bool) {
	for i, t := range breakpointTokens {
		if i > 0 && t == token {
			return Breakpoint(i), true
		}
	}
	return BreakpointNone, false
}

// Side is the box side or axis a rule addresses. SideAll is the default.
type Side int

const (
	SideAll Side = iota
	SideTop
	SideRight
	SideBottom
	SideLeft
	SideX
	SideY
	SideInlineStart
	SideInlineEnd
)

type sideInfo struct {
	name  string
	token string
	// suffixes appended to a property stem, e.g. "margin" + "-top"
	suffixes []string
}

var sides = [...]sideInfo{
	SideAll:         {name: "all", token: "", suffixes: []string{""}},
	SideTop:         {name: "top", token: "t", suffixes: []string{"-top"}},
	SideRight:       {name: "right", token: "e", suffixes: []string{"-right"}},
	SideBottom:      {name: "bottom", token: "b", suffixes: []string{"-bottom"}},
	SideLeft:        {name: "left", token: "s", suffixes: []string{"-left"}},
	SideX:           {name: "x", token: "x", suffixes: []string{"-left", "-right"}},
	SideY:           {name: "y", token: "y", suffixes: []string{"-top", "-bottom"}},
	SideInlineStart: {name: "inline-start", token: "s", suffixes: []string{"-inline-start"}},
	SideInlineEnd:   {name: "inline-end", token: "e", suffixes: []string{"-inline-end"}},
}

func (s Side) valid() bool {
	return s >= 0 && int(s) < len(sides)
}

// Token returns the one-letter class fragment ("t", "b", "s", "e", "x", "y").
func (s Side) Token() string {
	if !s.valid() {
		return ""
	}
	return sides[s].token
}

func (s Side) String() string {
	if !s.valid() {
		return "unknown"
	}
	return sides[s].name
}

// Properties expands the side into literal CSS property names built from
// stem and suffix, e.g. SideX.Properties("margin", "") yields
// ["margin-left", "margin-right"] and SideTop.Properties("border", "-width")
// yields ["border-top-width"].
func (s Side) Properties(stem, suffix string) []string {
	if !s.valid() {
		return nil
	}
	out := make([]string, 0, len(sides[s].suffixes))
	for _, sfx := range sides[s].suffixes {
		out = append(out, stem+sfx+suffix)
	}
	return out
}

// Corner scopes a border-radius rule to a single corner.
type Corner string

const (
	CornerNone        Corner = ""
	CornerTopLeft     Corner = "tl"
	CornerTopRight    Corner = "tr"
	CornerBottomLeft  Corner = "bl"
	CornerBottomRight Corner = "br"
)

// Property returns the literal longhand property of the corner.
func (c Corner) Property() string {
	switch c {
	case CornerTopLeft:
		return "border-top-left-radius"
	case CornerTopRight:
		return "border-top-right-radius"
	case CornerBottomLeft:
		return "border-bottom-left-radius"
	case CornerBottomRight:
		return "border-bottom-right-radius"
	default:
		return ""
	}
}

// Kind identifies which family produced a value. It replaces runtime type
// inspection when values are classified or integers converted.
type Kind int

const (
	KindLiteral Kind = iota
	KindMargin
	KindPadding
	KindBorder
	KindBorderRadius
	KindDisplay
	KindFlex
	KindTextColor
	KindBorderColor
	KindBackgroundColor
	KindTextDecoration
	KindHeight
	KindWidth
)

var kindNames = [...]string{
	KindLiteral:         "literal",
	KindMargin:          "margin",
	KindPadding:         "padding",
	KindBorder:          "border",
	KindBorderRadius:    "border-radius",
	KindDisplay:         "display",
	KindFlex:            "flex",
	KindTextColor:       "text-color",
	KindBorderColor:     "border-color",
	KindBackgroundColor: "background-color",
	KindTextDecoration:  "text-decoration",
	KindHeight:          "height",
	KindWidth:           "width",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// IsColor reports whether the kind belongs to a colour family.
func (k Kind) IsColor() bool {
	switch k {
	case KindTextColor, KindBorderColor, KindBackgroundColor:
		return true
	default:
		return false
	}
}

// ParseKind maps a kind name such as "text-color" back to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return Kind(k), true
		}
	}
	return KindLiteral, false
}
