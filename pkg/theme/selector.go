package theme

import "strings"

// ResolveSelector applies a value's selector annotation to base.
//
//	absolute        -> sel verbatim
//	contains "&"    -> every "&" replaced by base
//	:x .x #x [x]    -> compound, appended to base without a space
//	anything else   -> descendant, joined to base with one space
func ResolveSelector(base, sel string, absolute bool) string {
	switch {
	case absolute:
		return sel
	case strings.Contains(sel, "&"):
		return strings.ReplaceAll(sel, "&", base)
	case sel == "":
		return base
	case strings.ContainsRune(":.#[", rune(sel[0])):
		return base + sel
	default:
		return base + " " + sel
	}
}
