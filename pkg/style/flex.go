package style

type flexEntry struct {
	class    string
	property string
	css      string
}

var flexValues = map[string]flexEntry{
	"row":            {"flex-row", "flex-direction", "row"},
	"row-reverse":    {"flex-row-reverse", "flex-direction", "row-reverse"},
	"column":         {"flex-column", "flex-direction", "column"},
	"column-reverse": {"flex-column-reverse", "flex-direction", "column-reverse"},

	"wrap":         {"flex-wrap", "flex-wrap", "wrap"},
	"nowrap":       {"flex-nowrap", "flex-wrap", "nowrap"},
	"wrap-reverse": {"flex-wrap-reverse", "flex-wrap", "wrap-reverse"},

	"justify-start":   {"justify-content-start", "justify-content", "flex-start"},
	"justify-end":     {"justify-content-end", "justify-content", "flex-end"},
	"justify-center":  {"justify-content-center", "justify-content", "center"},
	"justify-between": {"justify-content-between", "justify-content", "space-between"},
	"justify-around":  {"justify-content-around", "justify-content", "space-around"},
	"justify-evenly":  {"justify-content-evenly", "justify-content", "space-evenly"},

	"align-start":    {"align-items-start", "align-items", "flex-start"},
	"align-end":      {"align-items-end", "align-items", "flex-end"},
	"align-center":   {"align-items-center", "align-items", "center"},
	"align-baseline": {"align-items-baseline", "align-items", "baseline"},
	"align-stretch":  {"align-items-stretch", "align-items", "stretch"},

	"self-auto":     {"align-self-auto", "align-self", "auto"},
	"self-start":    {"align-self-start", "align-self", "flex-start"},
	"self-end":      {"align-self-end", "align-self", "flex-end"},
	"self-center":   {"align-self-center", "align-self", "center"},
	"self-baseline": {"align-self-baseline", "align-self", "baseline"},
	"self-stretch":  {"align-self-stretch", "align-self", "stretch"},

	"grow-0":   {"flex-grow-0", "flex-grow", "0"},
	"grow-1":   {"flex-grow-1", "flex-grow", "1"},
	"shrink-0": {"flex-shrink-0", "flex-shrink", "0"},
	"shrink-1": {"flex-shrink-1", "flex-shrink", "1"},
	"fill":     {"flex-fill", "flex", "1 1 auto"},
}

var flexFamily = &family{
	kind: KindFlex,
	seed: "row",
	class: func(r Rule) string {
		return flexValues[r.Value].class
	},
	style: func(r Rule) []string {
		e, ok := flexValues[r.Value]
		if !ok {
			return nil
		}
		return []string{e.property + ": " + e.css}
	},
	splice: spliceAfterStem("justify-content", "align-items", "align-self", "flex"),
}

// FlexBuilder accumulates flex layout rules: axis, wrapping, alignment and
// growth. Each call appends one rule.
//
//	Flex().Column().Row().OnLaptop().JustifyBetween()
//	// flex-column flex-lg-row justify-content-between
type FlexBuilder struct {
	core
}

// Flex starts a flex layout builder.
func Flex() *FlexBuilder {
	return &FlexBuilder{core: newCore(flexFamily)}
}

func (b *FlexBuilder) Row() *FlexBuilder           { b.setValue("row"); return b }
func (b *FlexBuilder) RowReverse() *FlexBuilder    { b.setValue("row-reverse"); return b }
func (b *FlexBuilder) Column() *FlexBuilder        { b.setValue("column"); return b }
func (b *FlexBuilder) ColumnReverse() *FlexBuilder { b.setValue("column-reverse"); return b }

func (b *FlexBuilder) Wrap() *FlexBuilder        { b.setValue("wrap"); return b }
func (b *FlexBuilder) NoWrap() *FlexBuilder      { b.setValue("nowrap"); return b }
func (b *FlexBuilder) WrapReverse() *FlexBuilder { b.setValue("wrap-reverse"); return b }

func (b *FlexBuilder) JustifyStart() *FlexBuilder   { b.setValue("justify-start"); return b }
func (b *FlexBuilder) JustifyEnd() *FlexBuilder     { b.setValue("justify-end"); return b }
func (b *FlexBuilder) JustifyCenter() *FlexBuilder  { b.setValue("justify-center"); return b }
func (b *FlexBuilder) JustifyBetween() *FlexBuilder { b.setValue("justify-between"); return b }
func (b *FlexBuilder) JustifyAround() *FlexBuilder  { b.setValue("justify-around"); return b }
func (b *FlexBuilder) JustifyEvenly() *FlexBuilder  { b.setValue("justify-evenly"); return b }

func (b *FlexBuilder) AlignStart() *FlexBuilder    { b.setValue("align-start"); return b }
func (b *FlexBuilder) AlignEnd() *FlexBuilder      { b.setValue("align-end"); return b }
func (b *FlexBuilder) AlignCenter() *FlexBuilder   { b.setValue("align-center"); return b }
func (b *FlexBuilder) AlignBaseline() *FlexBuilder { b.setValue("align-baseline"); return b }
func (b *FlexBuilder) AlignStretch() *FlexBuilder  { b.setValue("align-stretch"); return b }

func (b *FlexBuilder) SelfAuto() *FlexBuilder     { b.setValue("self-auto"); return b }
func (b *FlexBuilder) SelfStart() *FlexBuilder    { b.setValue("self-start"); return b }
func (b *FlexBuilder) SelfEnd() *FlexBuilder      { b.setValue("self-end"); return b }
func (b *FlexBuilder) SelfCenter() *FlexBuilder   { b.setValue("self-center"); return b }
func (b *FlexBuilder) SelfBaseline() *FlexBuilder { b.setValue("self-baseline"); return b }
func (b *FlexBuilder) SelfStretch() *FlexBuilder  { b.setValue("self-stretch"); return b }

func (b *FlexBuilder) Grow0() *FlexBuilder   { b.setValue("grow-0"); return b }
func (b *FlexBuilder) Grow1() *FlexBuilder   { b.setValue("grow-1"); return b }
func (b *FlexBuilder) Shrink0() *FlexBuilder { b.setValue("shrink-0"); return b }
func (b *FlexBuilder) Shrink1() *FlexBuilder { b.setValue("shrink-1"); return b }
func (b *FlexBuilder) Fill() *FlexBuilder    { b.setValue("fill"); return b }

func (b *FlexBuilder) At(bp Breakpoint) *FlexBuilder { b.setBreakpoint(bp); return b }
func (b *FlexBuilder) OnPhone() *FlexBuilder         { return b.At(BreakpointSM) }
func (b *FlexBuilder) OnTablet() *FlexBuilder        { return b.At(BreakpointMD) }
func (b *FlexBuilder) OnLaptop() *FlexBuilder        { return b.At(BreakpointLG) }
func (b *FlexBuilder) OnDesktop() *FlexBuilder       { return b.At(BreakpointXL) }
func (b *FlexBuilder) OnWidescreen() *FlexBuilder    { return b.At(BreakpointXXL) }
