package style

import (
	"strconv"
	"strings"
)

// palette maps theme colour tokens to literal colours, using the Tailwind
// base shades.
var palette = map[string]string{
	"primary":   "#3b82f6",
	"secondary": "#a855f7",
	"success":   "#22c55e",
	"danger":    "#ef4444",
	"warning":   "#eab308",
	"info":      "#06b6d4",
	"light":     "#f9fafb",
	"dark":      "#111827",
	"body":      "#111827",
	"muted":     "#64748b",
	"white":     "#ffffff",
	"black":     "#000000",
}

var opacitySteps = map[string]string{
	"10":  "0.1",
	"25":  "0.25",
	"50":  "0.5",
	"75":  "0.75",
	"100": "1",
}

const opacityPrefix = "opacity-"

// colorFamily builds a colour family. opacityStem prefixes opacity
// fragments and opacityVar is the custom property they set inline.
func colorFamily(kind Kind, classPrefix, property, opacityStem, opacityVar string) *family {
	return &family{
		kind: kind,
		seed: "primary",
		class: func(r Rule) string {
			if step, ok := strings.CutPrefix(r.Value, opacityPrefix); ok {
				if _, ok := opacitySteps[step]; !ok {
					return ""
				}
				return opacityStem + "-" + step
			}
			if _, ok := palette[r.Value]; !ok {
				return ""
			}
			return classPrefix + "-" + r.Value
		},
		style: func(r Rule) []string {
			if step, ok := strings.CutPrefix(r.Value, opacityPrefix); ok {
				css, ok := opacitySteps[step]
				if !ok {
					return nil
				}
				return []string{opacityVar + ": " + css}
			}
			if css, ok := palette[r.Value]; ok {
				return []string{property + ": " + css}
			}
			if isLiteralColor(r.Value) {
				return []string{property + ": " + r.Value}
			}
			return nil
		},
		splice: spliceFirstDash,
	}
}

// PaletteColor returns the literal colour of a theme colour token.
func PaletteColor(token string) (string, bool) {
	css, ok := palette[token]
	return css, ok
}

func isLiteralColor(v string) bool {
	for _, p := range []string{"#", "rgb(", "rgba(", "hsl(", "hsla(", "var("} {
		if strings.HasPrefix(v, p) {
			return true
		}
	}
	return false
}

var (
	textColorFamily       = colorFamily(KindTextColor, "text", "color", "", "--text-opacity")
	borderColorFamily     = colorFamily(KindBorderColor, "border", "border-color", "border-opacity", "--border-opacity")
	backgroundColorFamily = colorFamily(KindBackgroundColor, "bg", "background-color", "bg-opacity", "--bg-opacity")
)

// ColorBuilder accumulates colour rules for text, border or background.
// Theme tokens render as classes; literal colours set through Hex only
// render inline.
//
//	TextColor().Primary().Opacity75() // text-primary -75
type ColorBuilder struct {
	core
}

// TextColor starts a text colour builder.
func TextColor() *ColorBuilder {
	return &ColorBuilder{core: newCore(textColorFamily)}
}

// BorderColor starts a border colour builder.
func BorderColor() *ColorBuilder {
	return &ColorBuilder{core: newCore(borderColorFamily)}
}

// BackgroundColor starts a background colour builder.
func BackgroundColor() *ColorBuilder {
	return &ColorBuilder{core: newCore(backgroundColorFamily)}
}

func (b *ColorBuilder) Primary() *ColorBuilder   { b.setValue("primary"); return b }
func (b *ColorBuilder) Secondary() *ColorBuilder { b.setValue("secondary"); return b }
func (b *ColorBuilder) Success() *ColorBuilder   { b.setValue("success"); return b }
func (b *ColorBuilder) Danger() *ColorBuilder    { b.setValue("danger"); return b }
func (b *ColorBuilder) Warning() *ColorBuilder   { b.setValue("warning"); return b }
func (b *ColorBuilder) Info() *ColorBuilder      { b.setValue("info"); return b }
func (b *ColorBuilder) Light() *ColorBuilder     { b.setValue("light"); return b }
func (b *ColorBuilder) Dark() *ColorBuilder      { b.setValue("dark"); return b }
func (b *ColorBuilder) Body() *ColorBuilder      { b.setValue("body"); return b }
func (b *ColorBuilder) Muted() *ColorBuilder     { b.setValue("muted"); return b }
func (b *ColorBuilder) White() *ColorBuilder     { b.setValue("white"); return b }
func (b *ColorBuilder) Black() *ColorBuilder     { b.setValue("black"); return b }

// Hex sets a literal colour such as "#ff8800" or "rgb(0 0 0)".
func (b *ColorBuilder) Hex(color string) *ColorBuilder {
	b.setValue(strings.TrimSpace(color))
	return b
}

func (b *ColorBuilder) Opacity10() *ColorBuilder  { return b.Opacity(10) }
func (b *ColorBuilder) Opacity25() *ColorBuilder  { return b.Opacity(25) }
func (b *ColorBuilder) Opacity50() *ColorBuilder  { return b.Opacity(50) }
func (b *ColorBuilder) Opacity75() *ColorBuilder  { return b.Opacity(75) }
func (b *ColorBuilder) Opacity100() *ColorBuilder { return b.Opacity(100) }

// Opacity appends an opacity step. Steps other than 10, 25, 50, 75 and 100
// do not render.
func (b *ColorBuilder) Opacity(step int) *ColorBuilder {
	b.setValue(opacityPrefix + strconv.Itoa(step))
	return b
}

func (b *ColorBuilder) At(bp Breakpoint) *ColorBuilder { b.setBreakpoint(bp); return b }
func (b *ColorBuilder) OnPhone() *ColorBuilder         { return b.At(BreakpointSM) }
func (b *ColorBuilder) OnTablet() *ColorBuilder        { return b.At(BreakpointMD) }
func (b *ColorBuilder) OnLaptop() *ColorBuilder        { return b.At(BreakpointLG) }
func (b *ColorBuilder) OnDesktop() *ColorBuilder       { return b.At(BreakpointXL) }
func (b *ColorBuilder) OnWidescreen() *ColorBuilder    { return b.At(BreakpointXXL) }
