package style

var displayValues = map[string]bool{
	"none":         true,
	"inline":       true,
	"inline-block": true,
	"block":        true,
	"grid":         true,
	"inline-grid":  true,
	"table":        true,
	"table-row":    true,
	"table-cell":   true,
	"flex":         true,
	"inline-flex":  true,
}

var displayFamily = &family{
	kind: KindDisplay,
	seed: "block",
	class: func(r Rule) string {
		if !displayValues[r.Value] {
			return ""
		}
		return "d-" + r.Value
	},
	style: func(r Rule) []string {
		if !displayValues[r.Value] {
			return nil
		}
		return []string{"display: " + r.Value}
	},
	splice: spliceFirstDash,
}

// DisplayBuilder accumulates display rules, typically one per breakpoint:
//
//	Display().None().Block().OnTablet() // d-none d-md-block
type DisplayBuilder struct {
	core
}

// Display starts a display builder.
func Display() *DisplayBuilder {
	return &DisplayBuilder{core: newCore(displayFamily)}
}

func (b *DisplayBuilder) None() *DisplayBuilder        { b.setValue("none"); return b }
func (b *DisplayBuilder) Inline() *DisplayBuilder      { b.setValue("inline"); return b }
func (b *DisplayBuilder) InlineBlock() *DisplayBuilder { b.setValue("inline-block"); return b }
func (b *DisplayBuilder) Block() *DisplayBuilder       { b.setValue("block"); return b }
func (b *DisplayBuilder) Grid() *DisplayBuilder        { b.setValue("grid"); return b }
func (b *DisplayBuilder) InlineGrid() *DisplayBuilder  { b.setValue("inline-grid"); return b }
func (b *DisplayBuilder) Table() *DisplayBuilder       { b.setValue("table"); return b }
func (b *DisplayBuilder) TableRow() *DisplayBuilder    { b.setValue("table-row"); return b }
func (b *DisplayBuilder) TableCell() *DisplayBuilder   { b.setValue("table-cell"); return b }
func (b *DisplayBuilder) Flex() *DisplayBuilder        { b.setValue("flex"); return b }
func (b *DisplayBuilder) InlineFlex() *DisplayBuilder  { b.setValue("inline-flex"); return b }

func (b *DisplayBuilder) At(bp Breakpoint) *DisplayBuilder { b.setBreakpoint(bp); return b }
func (b *DisplayBuilder) OnPhone() *DisplayBuilder         { return b.At(BreakpointSM) }
func (b *DisplayBuilder) OnTablet() *DisplayBuilder        { return b.At(BreakpointMD) }
func (b *DisplayBuilder) OnLaptop() *DisplayBuilder        { return b.At(BreakpointLG) }
func (b *DisplayBuilder) OnDesktop() *DisplayBuilder       { return b.At(BreakpointXL) }
func (b *DisplayBuilder) OnWidescreen() *DisplayBuilder    { return b.At(BreakpointXXL) }
