package style

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	apperrors "github.com/alexisbeaulieu97/stylekit/pkg/errors"
)

// chainSpec binds the textual call names of one family to the coalescing
// operations of its builder.
type chainSpec struct {
	start   func() Builder
	values  map[string]string
	args    map[string]func(arg string) (string, error)
	sides   map[string]Side
	corners bool
}

var (
	allSides = map[string]Side{
		"FromTop":    SideTop,
		"FromRight":  SideRight,
		"FromBottom": SideBottom,
		"FromLeft":   SideLeft,
		"FromStart":  SideInlineStart,
		"FromEnd":    SideInlineEnd,
		"OnX":        SideX,
		"OnY":        SideY,
		"OnAll":      SideAll,
	}
	radiusSides = map[string]Side{
		"FromTop":    SideTop,
		"FromRight":  SideRight,
		"FromBottom": SideBottom,
		"FromLeft":   SideLeft,
		"FromStart":  SideInlineStart,
		"FromEnd":    SideInlineEnd,
		"OnAll":      SideAll,
	}
	cornerCalls = map[string]Corner{
		"TopLeft":     CornerTopLeft,
		"TopRight":    CornerTopRight,
		"BottomLeft":  CornerBottomLeft,
		"BottomRight": CornerBottomRight,
	}
	breakpointCalls = map[string]Breakpoint{
		"OnPhone":      BreakpointSM,
		"OnTablet":     BreakpointMD,
		"OnLaptop":     BreakpointLG,
		"OnDesktop":    BreakpointXL,
		"OnWidescreen": BreakpointXXL,
	}
	scaleCalls = map[string]string{"S0": "0", "S1": "1", "S2": "2", "S3": "3", "S4": "4", "S5": "5"}
)

func intArg(arg string) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return "", fmt.Errorf("expected integer argument, got %q", arg)
	}
	return strconv.Itoa(n), nil
}

func textArg(arg string) (string, error) {
	arg = strings.TrimSpace(arg)
	if arg == "" {
		return "", fmt.Errorf("expected non-empty argument")
	}
	return arg, nil
}

func opacityArg(arg string) (string, error) {
	n, err := intArg(arg)
	if err != nil {
		return "", err
	}
	return opacityPrefix + n, nil
}

func withScale(extra map[string]string) map[string]string {
	out := make(map[string]string, len(scaleCalls)+len(extra))
	for k, v := range scaleCalls {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

func colorSpec(start func() Builder) chainSpec {
	values := map[string]string{
		"Opacity10":  opacityPrefix + "10",
		"Opacity25":  opacityPrefix + "25",
		"Opacity50":  opacityPrefix + "50",
		"Opacity75":  opacityPrefix + "75",
		"Opacity100": opacityPrefix + "100",
	}
	for token := range palette {
		values[strings.ToUpper(token[:1])+token[1:]] = token
	}
	return chainSpec{
		start:  start,
		values: values,
		args: map[string]func(string) (string, error){
			"Hex":     textArg,
			"Opacity": opacityArg,
		},
	}
}

var chainFamilies = map[string]chainSpec{
	"Margin": {
		start:  func() Builder { return Margin() },
		values: withScale(map[string]string{"Auto": "auto"}),
		args:   map[string]func(string) (string, error){"Size": intArg},
		sides:  allSides,
	},
	"Padding": {
		start:  func() Builder { return Padding() },
		values: withScale(map[string]string{"Auto": "auto"}),
		args:   map[string]func(string) (string, error){"Size": intArg},
		sides:  allSides,
	},
	"Border": {
		start:  func() Builder { return Border() },
		values: withScale(nil),
		args:   map[string]func(string) (string, error){"Size": intArg},
		sides:  allSides,
	},
	"BorderRadius": {
		start:   func() Builder { return BorderRadius() },
		values:  withScale(map[string]string{"Default": "", "Circle": "circle", "Pill": "pill"}),
		sides:   radiusSides,
		corners: true,
	},
	"Display": {
		start: func() Builder { return Display() },
		values: map[string]string{
			"None": "none", "Inline": "inline", "InlineBlock": "inline-block", "Block": "block",
			"Grid": "grid", "InlineGrid": "inline-grid", "Table": "table", "TableRow": "table-row",
			"TableCell": "table-cell", "Flex": "flex", "InlineFlex": "inline-flex",
		},
	},
	"Flex": {
		start: func() Builder { return Flex() },
		values: map[string]string{
			"Row": "row", "RowReverse": "row-reverse", "Column": "column", "ColumnReverse": "column-reverse",
			"Wrap": "wrap", "NoWrap": "nowrap", "WrapReverse": "wrap-reverse",
			"JustifyStart": "justify-start", "JustifyEnd": "justify-end", "JustifyCenter": "justify-center",
			"JustifyBetween": "justify-between", "JustifyAround": "justify-around", "JustifyEvenly": "justify-evenly",
			"AlignStart": "align-start", "AlignEnd": "align-end", "AlignCenter": "align-center",
			"AlignBaseline": "align-baseline", "AlignStretch": "align-stretch",
			"SelfAuto": "self-auto", "SelfStart": "self-start", "SelfEnd": "self-end",
			"SelfCenter": "self-center", "SelfBaseline": "self-baseline", "SelfStretch": "self-stretch",
			"Grow0": "grow-0", "Grow1": "grow-1", "Shrink0": "shrink-0", "Shrink1": "shrink-1", "Fill": "fill",
		},
	},
	"TextColor":       colorSpec(func() Builder { return TextColor() }),
	"BorderColor":     colorSpec(func() Builder { return BorderColor() }),
	"BackgroundColor": colorSpec(func() Builder { return BackgroundColor() }),
	"TextDecoration": {
		start: func() Builder { return TextDecoration() },
		values: map[string]string{
			"None": "none", "Underline": "underline", "LineThrough": "line-through", "Overline": "overline",
		},
	},
}

// Families lists the family names accepted by Compile, sorted.
func Families() []string {
	names := make([]string, 0, len(chainFamilies))
	for name := range chainFamilies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type segment struct {
	name   string
	arg    string
	hasArg bool
	column int
}

// splitSegments splits on dots outside parentheses.
func splitSegments(expr string) ([]segment, error) {
	var (
		out   []segment
		start int
		depth int
	)
	flush := func(end int) error {
		raw := expr[start:end]
		seg := segment{column: start + 1}
		if open := strings.IndexByte(raw, '('); open >= 0 {
			if !strings.HasSuffix(raw, ")") {
				return apperrors.NewExpressionError(expr, seg.column, "unterminated argument list")
			}
			seg.name = strings.TrimSpace(raw[:open])
			seg.arg = strings.Trim(strings.TrimSpace(raw[open+1:len(raw)-1]), `"'`)
			seg.hasArg = true
		} else {
			seg.name = strings.TrimSpace(raw)
		}
		if seg.name == "" {
			return apperrors.NewExpressionError(expr, seg.column, "empty segment")
		}
		out = append(out, seg)
		return nil
	}
	for i := 0; i < len(expr); i++ {
		switch expr[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth < 0 {
				return nil, apperrors.NewExpressionError(expr, i+1, "unbalanced parenthesis")
			}
		case '.':
			if depth == 0 {
				if err := flush(i); err != nil {
					return nil, err
				}
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, apperrors.NewExpressionError(expr, len(expr), "unbalanced parenthesis")
	}
	if err := flush(len(expr)); err != nil {
		return nil, err
	}
	return out, nil
}

// Compile builds the builder described by a chain expression such as
// "Margin.S3.FromTop" or "Border.S1.FromTop.OnPhone". Calls taking an
// argument use parentheses: "Padding.Size(2).OnX", "TextColor.Hex(#f80)",
// "Display.None.At(md)".
func Compile(expr string) (Builder, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, apperrors.NewExpressionError(expr, 0, "empty expression")
	}
	segments, err := splitSegments(expr)
	if err != nil {
		return nil, err
	}

	head := segments[0]
	spec, ok := chainFamilies[head.name]
	if !ok || head.hasArg {
		return nil, apperrors.NewExpressionError(expr, head.column, fmt.Sprintf("unknown family %q", head.name))
	}
	b := spec.start()
	c := b.(interface{ base() *core }).base()

	for _, seg := range segments[1:] {
		if err := spec.apply(c, seg); err != nil {
			return nil, apperrors.NewExpressionError(expr, seg.column, err.Error())
		}
	}
	return b, nil
}

// MustCompile is like Compile but panics on error. It is meant for
// package-level theme definitions.
func MustCompile(expr string) Builder {
	b, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return b
}

func (s chainSpec) apply(c *core, seg segment) error {
	if seg.hasArg {
		if seg.name == "At" {
			bp, ok := ParseBreakpoint(strings.TrimSpace(seg.arg))
			if !ok {
				return fmt.Errorf("unknown breakpoint %q", seg.arg)
			}
			c.setBreakpoint(bp)
			return nil
		}
		fn, ok := s.args[seg.name]
		if !ok {
			return fmt.Errorf("unknown call %q", seg.name+"(...)")
		}
		v, err := fn(seg.arg)
		if err != nil {
			return fmt.Errorf("%s: %w", seg.name, err)
		}
		c.setValue(v)
		return nil
	}

	if v, ok := s.values[seg.name]; ok {
		c.setValue(v)
		return nil
	}
	if side, ok := s.sides[seg.name]; ok {
		c.setSide(side)
		return nil
	}
	if corner, ok := cornerCalls[seg.name]; ok && s.corners {
		c.setCorner(corner)
		return nil
	}
	if bp, ok := breakpointCalls[seg.name]; ok {
		c.setBreakpoint(bp)
		return nil
	}
	return fmt.Errorf("unknown call %q", seg.name)
}
