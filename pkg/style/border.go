package style

import "strconv"

var borderWidths = map[string]string{
	"0": "0px",
	"1": "1px",
	"2": "2px",
	"3": "3px",
	"4": "4px",
	"5": "5px",
}

var borderFamily = &family{
	kind: KindBorder,
	seed: "1",
	class: func(r Rule) string {
		if _, ok := borderWidths[r.Value]; !ok {
			return ""
		}
		if t := r.Side.Token(); t != "" {
			return "border-" + t + "-" + r.Value
		}
		return "border-" + r.Value
	},
	style: func(r Rule) []string {
		css, ok := borderWidths[r.Value]
		if !ok {
			return nil
		}
		return declare(r.Side.Properties("border", "-width"), css)
	},
	splice: spliceFirstDash,
}

// BorderBuilder accumulates border-width rules.
//
//	Border().S1().FromTop().OnPhone() // border-sm-t-1, border-top-width: 1px
type BorderBuilder struct {
	core
}

// Border starts a border-width builder.
func Border() *BorderBuilder {
	return &BorderBuilder{core: newCore(borderFamily)}
}

func (b *BorderBuilder) S0() *BorderBuilder { b.setValue("0"); return b }
func (b *BorderBuilder) S1() *BorderBuilder { b.setValue("1"); return b }
func (b *BorderBuilder) S2() *BorderBuilder { b.setValue("2"); return b }
func (b *BorderBuilder) S3() *BorderBuilder { b.setValue("3"); return b }
func (b *BorderBuilder) S4() *BorderBuilder { b.setValue("4"); return b }
func (b *BorderBuilder) S5() *BorderBuilder { b.setValue("5"); return b }

// Size sets the width in pixels. Widths outside 0..5 do not render.
func (b *BorderBuilder) Size(n int) *BorderBuilder {
	b.setValue(strconv.Itoa(n))
	return b
}

func (b *BorderBuilder) FromTop() *BorderBuilder    { b.setSide(SideTop); return b }
func (b *BorderBuilder) FromRight() *BorderBuilder  { b.setSide(SideRight); return b }
func (b *BorderBuilder) FromBottom() *BorderBuilder { b.setSide(SideBottom); return b }
func (b *BorderBuilder) FromLeft() *BorderBuilder   { b.setSide(SideLeft); return b }
func (b *BorderBuilder) FromStart() *BorderBuilder  { b.setSide(SideInlineStart); return b }
func (b *BorderBuilder) FromEnd() *BorderBuilder    { b.setSide(SideInlineEnd); return b }
func (b *BorderBuilder) OnX() *BorderBuilder        { b.setSide(SideX); return b }
func (b *BorderBuilder) OnY() *BorderBuilder        { b.setSide(SideY); return b }
func (b *BorderBuilder) OnAll() *BorderBuilder      { b.setSide(SideAll); return b }

func (b *BorderBuilder) At(bp Breakpoint) *BorderBuilder { b.setBreakpoint(bp); return b }
func (b *BorderBuilder) OnPhone() *BorderBuilder         { return b.At(BreakpointSM) }
func (b *BorderBuilder) OnTablet() *BorderBuilder        { return b.At(BreakpointMD) }
func (b *BorderBuilder) OnLaptop() *BorderBuilder        { return b.At(BreakpointLG) }
func (b *BorderBuilder) OnDesktop() *BorderBuilder       { return b.At(BreakpointXL) }
func (b *BorderBuilder) OnWidescreen() *BorderBuilder    { return b.At(BreakpointXXL) }

var radiusScale = map[string]string{
	"":       "0.375rem",
	"0":      "0",
	"1":      "0.25rem",
	"2":      "0.375rem",
	"3":      "0.5rem",
	"4":      "1rem",
	"5":      "2rem",
	"circle": "50%",
	"pill":   "50rem",
}

// radiusSideWord maps sides to the words used by rounded-* classes.
// Axis sides have no radius equivalent.
func radiusSideWord(s Side) (string, bool) {
	switch s {
	case SideAll:
		return "", true
	case SideTop:
		return "top", true
	case SideBottom:
		return "bottom", true
	case SideLeft, SideInlineStart:
		return "start", true
	case SideRight, SideInlineEnd:
		return "end", true
	default:
		return "", false
	}
}

func radiusProperties(r Rule) []string {
	if r.Corner != CornerNone {
		if p := r.Corner.Property(); p != "" {
			return []string{p}
		}
		return nil
	}
	switch r.Side {
	case SideAll:
		return []string{"border-radius"}
	case SideTop:
		return []string{CornerTopLeft.Property(), CornerTopRight.Property()}
	case SideBottom:
		return []string{CornerBottomLeft.Property(), CornerBottomRight.Property()}
	case SideLeft, SideInlineStart:
		return []string{CornerTopLeft.Property(), CornerBottomLeft.Property()}
	case SideRight, SideInlineEnd:
		return []string{CornerTopRight.Property(), CornerBottomRight.Property()}
	default:
		return nil
	}
}

var radiusFamily = &family{
	kind:    KindBorderRadius,
	seed:    "",
	corners: true,
	class: func(r Rule) string {
		if _, ok := radiusScale[r.Value]; !ok {
			return ""
		}
		fragment := "rounded"
		if r.Corner != CornerNone {
			if r.Corner.Property() == "" {
				return ""
			}
			fragment += "-" + string(r.Corner)
		} else {
			word, ok := radiusSideWord(r.Side)
			if !ok {
				return ""
			}
			if word != "" {
				fragment += "-" + word
			}
		}
		if r.Value != "" {
			fragment += "-" + r.Value
		}
		return fragment
	},
	style: func(r Rule) []string {
		css, ok := radiusScale[r.Value]
		if !ok {
			return nil
		}
		return declare(radiusProperties(r), css)
	},
	splice: spliceFirstDash,
}

// RadiusBuilder accumulates border-radius rules. Rules may be scoped to a
// side or to a single corner; a corner call followed by a value call
// produces one rule.
//
//	BorderRadius().TopLeft().S3() // rounded-tl-3
type RadiusBuilder struct {
	core
}

// BorderRadius starts a border-radius builder.
func BorderRadius() *RadiusBuilder {
	return &RadiusBuilder{core: newCore(radiusFamily)}
}

// Default selects the family's base radius ("rounded").
func (b *RadiusBuilder) Default() *RadiusBuilder { b.setValue(""); return b }
func (b *RadiusBuilder) S0() *RadiusBuilder      { b.setValue("0"); return b }
func (b *RadiusBuilder) S1() *RadiusBuilder      { b.setValue("1"); return b }
func (b *RadiusBuilder) S2() *RadiusBuilder      { b.setValue("2"); return b }
func (b *RadiusBuilder) S3() *RadiusBuilder      { b.setValue("3"); return b }
func (b *RadiusBuilder) S4() *RadiusBuilder      { b.setValue("4"); return b }
func (b *RadiusBuilder) S5() *RadiusBuilder      { b.setValue("5"); return b }
func (b *RadiusBuilder) Circle() *RadiusBuilder  { b.setValue("circle"); return b }
func (b *RadiusBuilder) Pill() *RadiusBuilder    { b.setValue("pill"); return b }

func (b *RadiusBuilder) FromTop() *RadiusBuilder    { b.setSide(SideTop); return b }
func (b *RadiusBuilder) FromRight() *RadiusBuilder  { b.setSide(SideRight); return b }
func (b *RadiusBuilder) FromBottom() *RadiusBuilder { b.setSide(SideBottom); return b }
func (b *RadiusBuilder) FromLeft() *RadiusBuilder   { b.setSide(SideLeft); return b }
func (b *RadiusBuilder) FromStart() *RadiusBuilder  { b.setSide(SideInlineStart); return b }
func (b *RadiusBuilder) FromEnd() *RadiusBuilder    { b.setSide(SideInlineEnd); return b }
func (b *RadiusBuilder) OnAll() *RadiusBuilder      { b.setSide(SideAll); return b }

func (b *RadiusBuilder) TopLeft() *RadiusBuilder     { b.setCorner(CornerTopLeft); return b }
func (b *RadiusBuilder) TopRight() *RadiusBuilder    { b.setCorner(CornerTopRight); return b }
func (b *RadiusBuilder) BottomLeft() *RadiusBuilder  { b.setCorner(CornerBottomLeft); return b }
func (b *RadiusBuilder) BottomRight() *RadiusBuilder { b.setCorner(CornerBottomRight); return b }

func (b *RadiusBuilder) At(bp Breakpoint) *RadiusBuilder { b.setBreakpoint(bp); return b }
func (b *RadiusBuilder) OnPhone() *RadiusBuilder         { return b.At(BreakpointSM) }
func (b *RadiusBuilder) OnTablet() *RadiusBuilder        { return b.At(BreakpointMD) }
func (b *RadiusBuilder) OnLaptop() *RadiusBuilder        { return b.At(BreakpointLG) }
func (b *RadiusBuilder) OnDesktop() *RadiusBuilder       { return b.At(BreakpointXL) }
func (b *RadiusBuilder) OnWidescreen() *RadiusBuilder    { return b.At(BreakpointXXL) }
