package style

var decorationValues = map[string]bool{
	"none":         true,
	"underline":    true,
	"line-through": true,
	"overline":     true,
}

var decorationFamily = &family{
	kind: KindTextDecoration,
	seed: "none",
	class: func(r Rule) string {
		if !decorationValues[r.Value] {
			return ""
		}
		return "text-decoration-" + r.Value
	},
	style: func(r Rule) []string {
		if !decorationValues[r.Value] {
			return nil
		}
		return []string{"text-decoration: " + r.Value}
	},
	splice: spliceAfterStem("text-decoration"),
}

// DecorationBuilder accumulates text-decoration rules.
type DecorationBuilder struct {
	core
}

// TextDecoration starts a text-decoration builder.
func TextDecoration() *DecorationBuilder {
	return &DecorationBuilder{core: newCore(decorationFamily)}
}

func (b *DecorationBuilder) None() *DecorationBuilder        { b.setValue("none"); return b }
func (b *DecorationBuilder) Underline() *DecorationBuilder   { b.setValue("underline"); return b }
func (b *DecorationBuilder) LineThrough() *DecorationBuilder { b.setValue("line-through"); return b }
func (b *DecorationBuilder) Overline() *DecorationBuilder    { b.setValue("overline"); return b }

func (b *DecorationBuilder) At(bp Breakpoint) *DecorationBuilder { b.setBreakpoint(bp); return b }
func (b *DecorationBuilder) OnPhone() *DecorationBuilder         { return b.At(BreakpointSM) }
func (b *DecorationBuilder) OnTablet() *DecorationBuilder        { return b.At(BreakpointMD) }
func (b *DecorationBuilder) OnLaptop() *DecorationBuilder        { return b.At(BreakpointLG) }
func (b *DecorationBuilder) OnDesktop() *DecorationBuilder       { return b.At(BreakpointXL) }
func (b *DecorationBuilder) OnWidescreen() *DecorationBuilder    { return b.At(BreakpointXXL) }
