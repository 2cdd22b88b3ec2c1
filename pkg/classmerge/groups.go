package classmerge

import (
	"regexp"
	"strconv"
)

// GroupRule classifies a token into a utility group. Rules are evaluated in
// order and the first match wins.
type GroupRule struct {
	Name  string
	Match func(token string) (group string, ok bool)
}

// ExactRule builds a rule from a token -> group table.
func ExactRule(name string, table map[string]string) GroupRule {
	return GroupRule{
		Name: name,
		Match: func(token string) (string, bool) {
			g, ok := table[token]
			return g, ok
		},
	}
}

// PatternRule builds a rule from a regular expression. The group is the
// capture named by capture, prefixed with prefix; capture 0 means the
// group is prefix alone.
func PatternRule(name, pattern, prefix string, capture int) GroupRule {
	re := regexp.MustCompile(pattern)
	return GroupRule{
		Name: name,
		Match: func(token string) (string, bool) {
			m := re.FindStringSubmatch(token)
			if m == nil {
				return "", false
			}
			if capture == 0 {
				return prefix, true
			}
			return prefix + m[capture], true
		},
	}
}

// DefaultRules returns the built-in grouping table: an exact lookup followed
// by the pattern families.
func DefaultRules() []GroupRule {
	return []GroupRule{
		ExactRule("exact", exactGroups),
		PatternRule("spacing", `^(p|px|py|pt|pr|pb|pl|m|mx|my|mt|mr|mb|ml)-(\d+\.?\d*|auto)$`, "", 1),
		PatternRule("sizing", `^(w|h|min-w|min-h|max-w|max-h)-(.+)$`, "", 1),
		PatternRule("gap", `^(gap-x|gap-y|row-gap|column-gap|gap)-(.+)$`, "", 1),
		colorRule("text-color", textColorPattern, textNonColors),
		colorRule("bg-color", bgColorPattern, bgNonColors),
		PatternRule("border-breakpoint-width", `^border-(sm|md|lg|xl|xxl)-(\d+)$`, "border-width@", 1),
		colorRule("border-color", borderColorPattern, borderNonColors),
		PatternRule("border-width", `^border(?:-(\d+))?$`, "border-width", 0),
		PatternRule("border-side-width", `^border-([lrtbxy])-(\d+)$`, "border-width-", 1),
		PatternRule("opacity", `^opacity-(\d+)$`, "opacity", 0),
		PatternRule("z-index", `^z-(\d+|auto|n\d+)$`, "z-index", 0),
		PatternRule("grid-cols", `^grid-cols-(\d+|none|subgrid)$`, "grid-cols", 0),
		PatternRule("grid-rows", `^grid-rows-(\d+|none|subgrid)$`, "grid-rows", 0),
	}
}

var (
	textColorPattern   = regexp.MustCompile(`^text-([a-z]+)(?:-(\d+))?$`)
	bgColorPattern     = regexp.MustCompile(`^bg-([a-z]+)(?:-(\d+))?$`)
	borderColorPattern = regexp.MustCompile(`^border-([a-z]+)(?:-(\d+))?$`)

	// words that can follow a colour prefix without naming a colour:
	// opacity steps and breakpoint splices (bg-opacity-50, border-sm-1)
	sharedNonColors = []string{"opacity", "sm", "md", "lg", "xl", "xxl"}

	textNonColors = withWords(map[string]bool{}, sharedNonColors)

	bgNonColors = withWords(map[string]bool{
		"none": true, "fixed": true, "local": true, "scroll": true, "repeat": true,
		"cover": true, "contain": true, "center": true, "top": true, "bottom": true,
		"left": true, "right": true, "clip": true, "origin": true, "blend": true,
	}, sharedNonColors)

	// directional words never name a colour: border-top, border-x-2 and
	// friends address sides, border-solid addresses style.
	borderNonColors = withWords(map[string]bool{
		"t": true, "b": true, "l": true, "r": true, "x": true, "y": true, "s": true, "e": true,
		"top": true, "bottom": true, "left": true, "right": true, "start": true, "end": true,
		"solid": true, "dashed": true, "dotted": true, "double": true, "none": true, "hidden": true,
		"collapse": true, "separate": true,
	}, sharedNonColors)
)

func withWords(set map[string]bool, words []string) map[string]bool {
	for _, w := range words {
		set[w] = true
	}
	return set
}

// colorRule groups prefix-colour tokens under name unless the first word
// after the prefix is in nonColors.
func colorRule(name string, pattern *regexp.Regexp, nonColors map[string]bool) GroupRule {
	return GroupRule{
		Name: name,
		Match: func(token string) (string, bool) {
			m := pattern.FindStringSubmatch(token)
			if m == nil || nonColors[m[1]] {
				return "", false
			}
			return name, true
		},
	}
}

var exactGroups = buildExactGroups()

func buildExactGroups() map[string]string {
	g := make(map[string]string, 512)
	add := func(group string, tokens ...string) {
		for _, t := range tokens {
			g[t] = group
		}
	}

	// padding and margin: every axis and side, including logical s/e
	for _, prefix := range []string{"p", "m"} {
		for _, side := range []string{"", "x", "y", "t", "b", "s", "e", "l", "r"} {
			group := prefix + side
			for n := 0; n <= 5; n++ {
				add(group, prefix+side+"-"+strconv.Itoa(n))
			}
			if prefix == "m" {
				add(group, "m"+side+"-auto")
			}
		}
	}

	for _, v := range []string{"25", "50", "75", "100", "auto", "full", "screen", "fit", "min", "max"} {
		add("w", "w-"+v)
		add("h", "h-"+v)
	}
	add("max-w", "mw-100")
	add("max-h", "mh-100")
	add("w", "vw-100")
	add("h", "vh-100")
	add("min-w", "min-vw-100")
	add("min-h", "min-vh-100")

	add("font-size", "fs-1", "fs-2", "fs-3", "fs-4", "fs-5", "fs-6",
		"text-xs", "text-sm", "text-base", "text-lg", "text-xl", "text-2xl", "text-3xl",
		"text-4xl", "text-5xl", "text-6xl", "text-7xl", "text-8xl", "text-9xl")
	add("font-weight", "fw-lighter", "fw-light", "fw-normal", "fw-medium", "fw-semibold", "fw-bold", "fw-bolder",
		"font-thin", "font-extralight", "font-light", "font-normal", "font-medium",
		"font-semibold", "font-bold", "font-extrabold", "font-black")

	add("text-align", "text-start", "text-end", "text-center", "text-left", "text-right", "text-justify")
	add("text-transform", "text-lowercase", "text-uppercase", "text-capitalize",
		"lowercase", "uppercase", "capitalize", "normal-case")
	add("text-wrap", "text-wrap", "text-nowrap", "text-balance", "text-pretty", "text-break", "text-truncate")

	displays := []string{"none", "inline", "inline-block", "block", "grid", "inline-grid",
		"table", "table-row", "table-cell", "flex", "inline-flex", "contents"}
	for _, d := range displays {
		add("display", "d-"+d)
	}
	add("display", "block", "inline", "inline-block", "flex", "inline-flex", "grid", "inline-grid",
		"table", "table-row", "table-cell", "contents", "hidden", "flow-root")

	for _, p := range []string{"static", "relative", "absolute", "fixed", "sticky"} {
		add("position", "position-"+p, p)
	}

	for n := 0; n <= 5; n++ {
		s := strconv.Itoa(n)
		add("gap", "gap-"+s)
		add("row-gap", "row-gap-"+s)
		add("column-gap", "column-gap-"+s)
	}

	add("flex-direction", "flex-row", "flex-row-reverse", "flex-column", "flex-column-reverse",
		"flex-col", "flex-col-reverse")
	add("flex-wrap", "flex-wrap", "flex-nowrap", "flex-wrap-reverse")
	for _, j := range []string{"start", "end", "center", "between", "around", "evenly"} {
		add("justify-content", "justify-content-"+j, "justify-"+j)
	}
	for _, a := range []string{"start", "end", "center", "baseline", "stretch"} {
		add("align-items", "align-items-"+a, "items-"+a)
		add("align-self", "align-self-"+a, "self-"+a)
	}
	add("align-self", "align-self-auto", "self-auto")

	add("border-style", "border-solid", "border-dashed", "border-dotted", "border-double",
		"border-none", "border-hidden")

	add("border-radius", "rounded", "rounded-0", "rounded-1", "rounded-2", "rounded-3", "rounded-4", "rounded-5",
		"rounded-circle", "rounded-pill", "rounded-none", "rounded-sm", "rounded-md", "rounded-lg",
		"rounded-xl", "rounded-2xl", "rounded-3xl", "rounded-full")

	add("opacity", "opacity-0", "opacity-25", "opacity-50", "opacity-75", "opacity-100")
	for _, step := range []string{"10", "25", "50", "75", "100"} {
		add("bg-opacity", "bg-opacity-"+step)
		add("border-opacity", "border-opacity-"+step)
		add("text-opacity", "text-opacity-"+step)
	}
	add("z-index", "z-0", "z-1", "z-2", "z-3", "z-n1", "z-10", "z-20", "z-30", "z-40", "z-50", "z-auto")

	for _, c := range []string{"auto", "default", "pointer", "wait", "text", "move", "help",
		"not-allowed", "grab", "grabbing", "none"} {
		add("cursor", "cursor-"+c)
	}
	add("pointer-events", "pe-none", "pe-auto", "pointer-events-none", "pointer-events-auto")

	return g
}
