package style

import "strconv"

// spacingScale maps spacing tokens to their literal CSS lengths.
var spacingScale = map[string]string{
	"0":    "0",
	"1":    "0.25rem",
	"2":    "0.5rem",
	"3":    "1rem",
	"4":    "1.5rem",
	"5":    "3rem",
	"auto": "auto",
}

func spacingFamily(kind Kind, prefix, property string, allowAuto bool) *family {
	mapped := func(v string) (string, bool) {
		if v == "auto" && !allowAuto {
			return "", false
		}
		css, ok := spacingScale[v]
		return css, ok
	}
	return &family{
		kind: kind,
		seed: "0",
		class: func(r Rule) string {
			if _, ok := mapped(r.Value); !ok {
				return ""
			}
			return prefix + r.Side.Token() + "-" + r.Value
		},
		style: func(r Rule) []string {
			css, ok := mapped(r.Value)
			if !ok {
				return nil
			}
			return declare(r.Side.Properties(property, ""), css)
		},
		splice: spliceFirstDash,
	}
}

var (
	marginFamily  = spacingFamily(KindMargin, "m", "margin", true)
	paddingFamily = spacingFamily(KindPadding, "p", "padding", false)
)

// SpacingBuilder accumulates margin or padding rules.
//
//	Margin().S3().FromTop()          // mt-3, margin-top: 1rem
//	Padding().S2().OnX().OnTablet()  // px-md-2
type SpacingBuilder struct {
	core
}

// Margin starts a margin builder ("m" utilities).
func Margin() *SpacingBuilder {
	return &SpacingBuilder{core: newCore(marginFamily)}
}

// Padding starts a padding builder ("p" utilities).
func Padding() *SpacingBuilder {
	return &SpacingBuilder{core: newCore(paddingFamily)}
}

func (b *SpacingBuilder) S0() *SpacingBuilder { b.setValue("0"); return b }
func (b *SpacingBuilder) S1() *SpacingBuilder { b.setValue("1"); return b }
func (b *SpacingBuilder) S2() *SpacingBuilder { b.setValue("2"); return b }
func (b *SpacingBuilder) S3() *SpacingBuilder { b.setValue("3"); return b }
func (b *SpacingBuilder) S4() *SpacingBuilder { b.setValue("4"); return b }
func (b *SpacingBuilder) S5() *SpacingBuilder { b.setValue("5"); return b }

// Auto sets the value to auto. Only margins render it.
func (b *SpacingBuilder) Auto() *SpacingBuilder { b.setValue("auto"); return b }

// Size sets a numeric scale step. Steps outside 0..5 do not render.
func (b *SpacingBuilder) Size(n int) *SpacingBuilder {
	b.setValue(strconv.Itoa(n))
	return b
}

func (b *SpacingBuilder) FromTop() *SpacingBuilder    { b.setSide(SideTop); return b }
func (b *SpacingBuilder) FromRight() *SpacingBuilder  { b.setSide(SideRight); return b }
func (b *SpacingBuilder) FromBottom() *SpacingBuilder { b.setSide(SideBottom); return b }
func (b *SpacingBuilder) FromLeft() *SpacingBuilder   { b.setSide(SideLeft); return b }
func (b *SpacingBuilder) FromStart() *SpacingBuilder  { b.setSide(SideInlineStart); return b }
func (b *SpacingBuilder) FromEnd() *SpacingBuilder    { b.setSide(SideInlineEnd); return b }
func (b *SpacingBuilder) OnX() *SpacingBuilder        { b.setSide(SideX); return b }
func (b *SpacingBuilder) OnY() *SpacingBuilder        { b.setSide(SideY); return b }
func (b *SpacingBuilder) OnAll() *SpacingBuilder      { b.setSide(SideAll); return b }

func (b *SpacingBuilder) At(bp Breakpoint) *SpacingBuilder { b.setBreakpoint(bp); return b }
func (b *SpacingBuilder) OnPhone() *SpacingBuilder         { return b.At(BreakpointSM) }
func (b *SpacingBuilder) OnTablet() *SpacingBuilder        { return b.At(BreakpointMD) }
func (b *SpacingBuilder) OnLaptop() *SpacingBuilder        { return b.At(BreakpointLG) }
func (b *SpacingBuilder) OnDesktop() *SpacingBuilder       { return b.At(BreakpointXL) }
func (b *SpacingBuilder) OnWidescreen() *SpacingBuilder    { return b.At(BreakpointXXL) }
