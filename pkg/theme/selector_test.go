package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSelector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sel      string
		absolute bool
		want     string
	}{
		{"absolute", ".other", true, ".other"},
		{"absolute with ampersand kept", "& > b", true, "& > b"},
		{"ampersand", "&:hover, &:focus", false, ".btn:hover, .btn:focus"},
		{"ampersand prefix", "html.dark &", false, "html.dark .btn"},
		{"pseudo", ":hover", false, ".btn:hover"},
		{"class", ".active", false, ".btn.active"},
		{"id", "#main", false, ".btn#main"},
		{"attribute", "[disabled]", false, ".btn[disabled]"},
		{"descendant", "svg", false, ".btn svg"},
		{"descendant child combinator", "> span", false, ".btn > span"},
		{"empty", "", false, ".btn"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, ResolveSelector(".btn", tt.sel, tt.absolute))
		})
	}
}
