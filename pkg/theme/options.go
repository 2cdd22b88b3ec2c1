package theme

import (
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/stylekit/pkg/style"
)

// ComponentOptions is the themed bag for one element kind: a base selector
// plus optional values, one per slot. Zero values are skipped on emission.
type ComponentOptions struct {
	Selector string

	Display             style.Value
	Position            style.Value
	Top                 style.Value
	Right               style.Value
	Bottom              style.Value
	Left                style.Value
	ZIndex              style.Value
	Overflow            style.Value
	OverflowX           style.Value
	OverflowY           style.Value
	Width               style.Value
	Height              style.Value
	MinWidth            style.Value
	MinHeight           style.Value
	MaxWidth            style.Value
	MaxHeight           style.Value
	Margin              style.Value
	Padding             style.Value
	Gap                 style.Value
	RowGap              style.Value
	ColumnGap           style.Value
	Flex                style.Value
	FlexDirection       style.Value
	FlexWrap            style.Value
	JustifyContent      style.Value
	AlignItems          style.Value
	AlignSelf           style.Value
	FlexGrow            style.Value
	FlexShrink          style.Value
	FlexBasis           style.Value
	Order               style.Value
	GridTemplateColumns style.Value
	GridTemplateRows    style.Value
	GridColumn          style.Value
	GridRow             style.Value
	Border              style.Value
	BorderWidth         style.Value
	BorderStyle         style.Value
	BorderColor         style.Value
	BorderRadius        style.Value
	BoxShadow           style.Value
	TextColor           style.Value
	BackgroundColor     style.Value
	Opacity             style.Value
	FontFamily          style.Value
	FontSize            style.Value
	FontWeight          style.Value
	FontStyle           style.Value
	LineHeight          style.Value
	LetterSpacing       style.Value
	TextAlign           style.Value
	TextDecoration      style.Value
	TextTransform       style.Value
	WhiteSpace          style.Value
	TextOverflow        style.Value
	Cursor              style.Value
	PointerEvents       style.Value
	UserSelect          style.Value
	Transition          style.Value
	Transform           style.Value
}

// Slot describes one themed property. Property is the fallback CSS property
// used when a style-like value carries no declaration of its own.
type Slot struct {
	Name     string
	Property string

	field func(*ComponentOptions) *style.Value
}

// Value reads the slot from opts.
func (s Slot) Value(opts *ComponentOptions) style.Value {
	return *s.field(opts)
}

var (
	slotsOnce   sync.Once
	slotTable   []Slot
	slotsByName map[string]Slot
)

// Slots returns the slot registry in emission order.
func Slots() []Slot {
	loadSlots()
	out := make([]Slot, len(slotTable))
	copy(out, slotTable)
	return out
}

// LookupSlot finds a slot by name.
func LookupSlot(name string) (Slot, bool) {
	loadSlots()
	s, ok := slotsByName[name]
	return s, ok
}

// Set assigns value to the named slot.
func (o *ComponentOptions) Set(name string, value style.Value) error {
	s, ok := LookupSlot(name)
	if !ok {
		return fmt.Errorf("unknown theme slot %q", name)
	}
	*s.field(o) = value
	return nil
}

func loadSlots() {
	slotsOnce.Do(func() {
		slotTable = defaultSlots()
		slotsByName = make(map[string]Slot, len(slotTable))
		for _, s := range slotTable {
			slotsByName[s.Name] = s
		}
	})
}

func defaultSlots() []Slot {
	return []Slot{
		{Name: "Display", Property: "display", field: func(o *ComponentOptions) *style.Value { return &o.Display }},
		{Name: "Position", Property: "position", field: func(o *ComponentOptions) *style.Value { return &o.Position }},
		{Name: "Top", Property: "top", field: func(o *ComponentOptions) *style.Value { return &o.Top }},
		{Name: "Right", Property: "right", field: func(o *ComponentOptions) *style.Value { return &o.Right }},
		{Name: "Bottom", Property: "bottom", field: func(o *ComponentOptions) *style.Value { return &o.Bottom }},
		{Name: "Left", Property: "left", field: func(o *ComponentOptions) *style.Value { return &o.Left }},
		{Name: "ZIndex", Property: "z-index", field: func(o *ComponentOptions) *style.Value { return &o.ZIndex }},
		{Name: "Overflow", Property: "overflow", field: func(o *ComponentOptions) *style.Value { return &o.Overflow }},
		{Name: "OverflowX", Property: "overflow-x", field: func(o *ComponentOptions) *style.Value { return &o.OverflowX }},
		{Name: "OverflowY", Property: "overflow-y", field: func(o *ComponentOptions) *style.Value { return &o.OverflowY }},
		{Name: "Width", Property: "width", field: func(o *ComponentOptions) *style.Value { return &o.Width }},
		{Name: "Height", Property: "height", field: func(o *ComponentOptions) *style.Value { return &o.Height }},
		{Name: "MinWidth", Property: "min-width", field: func(o *ComponentOptions) *style.Value { return &o.MinWidth }},
		{Name: "MinHeight", Property: "min-height", field: func(o *ComponentOptions) *style.Value { return &o.MinHeight }},
		{Name: "MaxWidth", Property: "max-width", field: func(o *ComponentOptions) *style.Value { return &o.MaxWidth }},
		{Name: "MaxHeight", Property: "max-height", field: func(o *ComponentOptions) *style.Value { return &o.MaxHeight }},
		{Name: "Margin", Property: "margin", field: func(o *ComponentOptions) *style.Value { return &o.Margin }},
		{Name: "Padding", Property: "padding", field: func(o *ComponentOptions) *style.Value { return &o.Padding }},
		{Name: "Gap", Property: "gap", field: func(o *ComponentOptions) *style.Value { return &o.Gap }},
		{Name: "RowGap", Property: "row-gap", field: func(o *ComponentOptions) *style.Value { return &o.RowGap }},
		{Name: "ColumnGap", Property: "column-gap", field: func(o *ComponentOptions) *style.Value { return &o.ColumnGap }},
		{Name: "Flex", Property: "flex", field: func(o *ComponentOptions) *style.Value { return &o.Flex }},
		{Name: "FlexDirection", Property: "flex-direction", field: func(o *ComponentOptions) *style.Value { return &o.FlexDirection }},
		{Name: "FlexWrap", Property: "flex-wrap", field: func(o *ComponentOptions) *style.Value { return &o.FlexWrap }},
		{Name: "JustifyContent", Property: "justify-content", field: func(o *ComponentOptions) *style.Value { return &o.JustifyContent }},
		{Name: "AlignItems", Property: "align-items", field: func(o *ComponentOptions) *style.Value { return &o.AlignItems }},
		{Name: "AlignSelf", Property: "align-self", field: func(o *ComponentOptions) *style.Value { return &o.AlignSelf }},
		{Name: "FlexGrow", Property: "flex-grow", field: func(o *ComponentOptions) *style.Value { return &o.FlexGrow }},
		{Name: "FlexShrink", Property: "flex-shrink", field: func(o *ComponentOptions) *style.Value { return &o.FlexShrink }},
		{Name: "FlexBasis", Property: "flex-basis", field: func(o *ComponentOptions) *style.Value { return &o.FlexBasis }},
		{Name: "Order", Property: "order", field: func(o *ComponentOptions) *style.Value { return &o.Order }},
		{Name: "GridTemplateColumns", Property: "grid-template-columns", field: func(o *ComponentOptions) *style.Value { return &o.GridTemplateColumns }},
		{Name: "GridTemplateRows", Property: "grid-template-rows", field: func(o *ComponentOptions) *style.Value { return &o.GridTemplateRows }},
		{Name: "GridColumn", Property: "grid-column", field: func(o *ComponentOptions) *style.Value { return &o.GridColumn }},
		{Name: "GridRow", Property: "grid-row", field: func(o *ComponentOptions) *style.Value { return &o.GridRow }},
		{Name: "Border", Property: "border", field: func(o *ComponentOptions) *style.Value { return &o.Border }},
		{Name: "BorderWidth", Property: "border-width", field: func(o *ComponentOptions) *style.Value { return &o.BorderWidth }},
		{Name: "BorderStyle", Property: "border-style", field: func(o *ComponentOptions) *style.Value { return &o.BorderStyle }},
		{Name: "BorderColor", Property: "border-color", field: func(o *ComponentOptions) *style.Value { return &o.BorderColor }},
		{Name: "BorderRadius", Property: "border-radius", field: func(o *ComponentOptions) *style.Value { return &o.BorderRadius }},
		{Name: "BoxShadow", Property: "box-shadow", field: func(o *ComponentOptions) *style.Value { return &o.BoxShadow }},
		{Name: "TextColor", Property: "color", field: func(o *ComponentOptions) *style.Value { return &o.TextColor }},
		{Name: "BackgroundColor", Property: "background-color", field: func(o *ComponentOptions) *style.Value { return &o.BackgroundColor }},
		{Name: "Opacity", Property: "opacity", field: func(o *ComponentOptions) *style.Value { return &o.Opacity }},
		{Name: "FontFamily", Property: "font-family", field: func(o *ComponentOptions) *style.Value { return &o.FontFamily }},
		{Name: "FontSize", Property: "font-size", field: func(o *ComponentOptions) *style.Value { return &o.FontSize }},
		{Name: "FontWeight", Property: "font-weight", field: func(o *ComponentOptions) *style.Value { return &o.FontWeight }},
		{Name: "FontStyle", Property: "font-style", field: func(o *ComponentOptions) *style.Value { return &o.FontStyle }},
		{Name: "LineHeight", Property: "line-height", field: func(o *ComponentOptions) *style.Value { return &o.LineHeight }},
		{Name: "LetterSpacing", Property: "letter-spacing", field: func(o *ComponentOptions) *style.Value { return &o.LetterSpacing }},
		{Name: "TextAlign", Property: "text-align", field: func(o *ComponentOptions) *style.Value { return &o.TextAlign }},
		{Name: "TextDecoration", Property: "text-decoration", field: func(o *ComponentOptions) *style.Value { return &o.TextDecoration }},
		{Name: "TextTransform", Property: "text-transform", field: func(o *ComponentOptions) *style.Value { return &o.TextTransform }},
		{Name: "WhiteSpace", Property: "white-space", field: func(o *ComponentOptions) *style.Value { return &o.WhiteSpace }},
		{Name: "TextOverflow", Property: "text-overflow", field: func(o *ComponentOptions) *style.Value { return &o.TextOverflow }},
		{Name: "Cursor", Property: "cursor", field: func(o *ComponentOptions) *style.Value { return &o.Cursor }},
		{Name: "PointerEvents", Property: "pointer-events", field: func(o *ComponentOptions) *style.Value { return &o.PointerEvents }},
		{Name: "UserSelect", Property: "user-select", field: func(o *ComponentOptions) *style.Value { return &o.UserSelect }},
		{Name: "Transition", Property: "transition", field: func(o *ComponentOptions) *style.Value { return &o.Transition }},
		{Name: "Transform", Property: "transform", field: func(o *ComponentOptions) *style.Value { return &o.Transform }},
	}
}
