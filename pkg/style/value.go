package style

import (
	"strconv"
	"strings"
)

// Value is the final, classified text handed to a renderer or theme. It is
// either class-like or style-like, never both. The zero Value is empty.
type Value struct {
	text      string
	styleText string
	kind      Kind

	selector    string
	hasSelector bool
	absolute    bool
}

// FromBuilder resolves b once: its class rendering becomes the text and its
// inline rendering the style text. A builder with no class rendering, such
// as a Hex colour, uses its style text for both.
func FromBuilder(b Builder) Value {
	if b == nil {
		return Value{}
	}
	v := Value{
		text:      b.ToClass(),
		styleText: b.ToStyle(),
		kind:      b.Kind(),
	}
	if v.text == "" {
		v.text = v.styleText
	}
	return v
}

// Literal wraps caller supplied text. Text that already holds a declaration
// ("color: red") doubles as the style text.
func Literal(text string) Value {
	v := Value{text: text, kind: KindLiteral}
	if strings.Contains(text, ":") {
		v.styleText = text
	}
	return v
}

// Int wraps an integer as its decimal text.
func Int(n int) Value {
	return Value{text: strconv.Itoa(n), kind: KindLiteral}
}

// Height renders n as an explicit "height: {n}px" declaration.
func Height(n int) Value {
	return sized(KindHeight, "height", n)
}

// Width renders n as an explicit "width: {n}px" declaration.
func Width(n int) Value {
	return sized(KindWidth, "width", n)
}

func sized(kind Kind, property string, n int) Value {
	text := property + ": " + strconv.Itoa(n) + "px"
	return Value{text: text, styleText: text, kind: kind}
}

// WithSelector returns a copy annotated with a selector for theme emission.
// Absolute selectors replace the theme's base selector instead of being
// resolved against it. The annotation does not affect classification.
func (v Value) WithSelector(selector string, absolute bool) Value {
	v.selector = selector
	v.hasSelector = true
	v.absolute = absolute
	return v
}

// Text returns the resolved text.
func (v Value) Text() string {
	return v.text
}

// StyleText returns the separately resolved inline style, if any.
func (v Value) StyleText() string {
	return v.styleText
}

// Kind returns the family that produced the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Selector returns the selector annotation and whether one is set.
func (v Value) Selector() (string, bool) {
	return v.selector, v.hasSelector
}

// IsAbsolute reports whether the selector annotation is absolute.
func (v Value) IsAbsolute() bool {
	return v.absolute
}

// IsEmpty reports whether the text is empty.
func (v Value) IsEmpty() bool {
	return v.text == ""
}

// IsCssStyle reports whether the text reads as inline style.
func (v Value) IsCssStyle() bool {
	return !v.IsEmpty() && isStyleLike(v.text, v.kind)
}

// IsCssClass reports whether the text reads as class names.
func (v Value) IsCssClass() bool {
	return !v.IsEmpty() && !isStyleLike(v.text, v.kind)
}

// Class returns the text when it is class-like, otherwise "".
func (v Value) Class() string {
	if v.IsCssClass() {
		return v.text
	}
	return ""
}

// Inline returns the style text, falling back to the text when the value is
// style-like.
func (v Value) Inline() string {
	if v.styleText != "" {
		return v.styleText
	}
	if v.IsCssStyle() {
		return v.text
	}
	return ""
}

func (v Value) String() string {
	return v.text
}
