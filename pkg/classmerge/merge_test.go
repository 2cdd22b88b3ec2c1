package classmerge

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/stylekit/pkg/style"
)

func TestMergeScenarios(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   []string
		want string
	}{
		{"same group last wins", []string{"p-2", "p-4"}, "p-4"},
		{"custom token keeps order", []string{"mt-1", "foo-custom", "mt-3"}, "foo-custom mt-3"},
		{"different groups coexist", []string{"p-2", "px-4", "pt-1"}, "p-2 px-4 pt-1"},
		{"unrecognised duplicates kept", []string{"card", "card"}, "card card"},
		{"multi token strings", []string{"btn p-2 text-primary", "p-3 text-danger"}, "btn p-3 text-danger"},
		{"text align is not a colour", []string{"text-primary", "text-center"}, "text-primary text-center"},
		{"font size is not a colour", []string{"text-lg", "text-muted", "text-sm"}, "text-muted text-sm"},
		{"display keywords", []string{"d-none", "d-flex"}, "d-flex"},
		{"tailwind display keywords", []string{"hidden", "d-block"}, "d-block"},
		{"sizing", []string{"w-50", "w-[20rem]", "h-100"}, "w-[20rem] h-100"},
		{"gap axes", []string{"gap-2", "gap-x-4", "gap-3"}, "gap-x-4 gap-3"},
		{"border colour vs side", []string{"border-primary", "border-top", "border-danger"}, "border-top border-danger"},
		{"border widths", []string{"border", "border-2", "border-t-1", "border-t-3"}, "border-2 border-t-3"},
		{"border style", []string{"border-solid", "border-dashed"}, "border-dashed"},
		{"opacity and z", []string{"opacity-25", "z-10", "opacity-75", "z-auto"}, "opacity-75 z-auto"},
		{"grid", []string{"grid-cols-2", "grid-rows-3", "grid-cols-4"}, "grid-rows-3 grid-cols-4"},
		{"logical margins", []string{"ms-2", "ms-auto", "me-1"}, "ms-auto me-1"},
		{"pointer events vs padding end", []string{"pe-2", "pe-none", "pe-3", "pe-auto"}, "pe-3 pe-auto"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Merge(tt.in...))
		})
	}
}

func TestMergeSourcesOverridesDefaults(t *testing.T) {
	t.Parallel()

	defaults := []string{"btn", "p-2", "rounded", "text-primary"}
	overrides := []string{"rounded-pill", "text-white", "shadow"}

	require.Equal(t, "btn p-2 rounded-pill text-white shadow", MergeSources(defaults, overrides))
}

func TestMergeIsIdempotent(t *testing.T) {
	t.Parallel()

	inputs := [][]string{
		{"p-2", "p-4"},
		{"mt-1", "foo-custom", "mt-3"},
		{"a b a", "d-none d-block x", "javascript:alert(1)", "rounded rounded-3"},
		{"text-center text-primary text-danger text-lg text-sm"},
	}
	for _, in := range inputs {
		once := Merge(in...)
		require.Equal(t, once, Merge(once), "input %v", in)
	}
}

func TestMergeLastWinsAcrossPositions(t *testing.T) {
	t.Parallel()

	out := strings.Fields(Merge("py-1", "card", "py-5", "mx-auto"))
	if diff := cmp.Diff([]string{"card", "py-5", "mx-auto"}, out); diff != "" {
		t.Fatalf("unexpected merge result (-want +got):\n%s", diff)
	}
}

func TestMergeDropsUnsafeTokens(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("a", maxTokenLength+1)
	in := []string{
		"p-2",
		"javascript:alert(1)",
		"bg-[url(evil.png)]",
		"x-expression(1)",
		"@import",
		"JavaScript:void",
		"bad<tag>",
		"quote\"",
		long,
		"ok",
	}

	require.Equal(t, "p-2 ok", Merge(in...))
}

func TestSanitize(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"p-2", "md:hover:bg-blue-500", "w-[calc(100%-2rem)]", "!mt-0", "[&>p]:p-1", "peer-checked:~:x"} {
		assert.True(t, Sanitize(token), token)
	}
	for _, token := range []string{"", "  ", "a;b", "a,b", "<script>", "ImPoRt", strings.Repeat("x", 201)} {
		assert.False(t, Sanitize(token), token)
	}
	assert.True(t, Sanitize(strings.Repeat("x", 200)))
}

func TestGroupClassification(t *testing.T) {
	t.Parallel()

	m := New()
	tests := map[string]string{
		"p-3":               "p",
		"px-2":              "px",
		"mt-auto":           "mt",
		"m-10":              "m",
		"pt-2.5":            "pt",
		"ps-3":              "ps",
		"w-25":              "w",
		"max-w-prose":       "max-w",
		"mw-100":            "max-w",
		"fs-3":              "font-size",
		"fw-bold":           "font-weight",
		"font-semibold":     "font-weight",
		"d-inline-flex":     "display",
		"sticky":            "position",
		"gap-y-2":           "gap-y",
		"flex-col":          "flex-direction",
		"justify-center":    "justify-content",
		"items-center":      "align-items",
		"rounded-lg":        "border-radius",
		"cursor-pointer":    "cursor",
		"text-red-500":      "text-color",
		"bg-info":           "bg-color",
		"border-info":       "border-color",
		"border-x-2":        "border-width-x",
		"border-md-2":       "border-width@md",
		"bg-opacity-50":     "bg-opacity",
		"border-opacity-25": "border-opacity",
		"opacity-90":        "opacity",
		"z-n1":              "z-index",
		"grid-cols-12":      "grid-cols",
		"grid-rows-none":    "grid-rows",
	}
	for token, want := range tests {
		got, ok := m.Group(token)
		assert.True(t, ok, token)
		assert.Equal(t, want, got, token)
	}

	for _, token := range []string{"btn", "card-body", "md:p-2", "p-md-3", "border-top", "text-decoration-underline", "-75",
		"bg-opacity-33", "text-opacity-33", "border-xxl-primary"} {
		_, ok := m.Group(token)
		assert.False(t, ok, token)
	}
}

func TestCustomRules(t *testing.T) {
	t.Parallel()

	m := New(WithRules([]GroupRule{
		ExactRule("buttons", map[string]string{"btn-primary": "btn-variant", "btn-danger": "btn-variant"}),
		PatternRule("shadow", `^shadow(-\w+)?$`, "shadow", 0),
	}))

	require.Equal(t, "btn p-2 btn-danger shadow-lg p-3", m.Merge("btn btn-primary shadow p-2", "btn-danger shadow-lg p-3"))
}

func TestLoggerReceivesDebugEvents(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel)
	m := New(WithLogger(logger))

	m.Merge("p-1", "p-2", "javascript:x")

	out := buf.String()
	require.Contains(t, out, "class token superseded")
	require.Contains(t, out, `"dropped":"p-1"`)
	require.Contains(t, out, "dropping unsafe class token")
}

func TestConcurrentMerges(t *testing.T) {
	t.Parallel()

	m := New()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				got := m.Merge(fmt.Sprintf("p-%d custom-%d", j%6, i), "p-5", "mt-1 mt-2")
				if got != fmt.Sprintf("custom-%d p-5 mt-2", i) {
					t.Errorf("unexpected merge %q", got)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}

func TestResolveReportsDrops(t *testing.T) {
	t.Parallel()

	report := New().Resolve([]string{"p-1 card", "url(x)"}, []string{"p-2", "p-3 card"})

	require.Equal(t, []string{"card", "p-3", "card"}, report.Kept)
	require.Equal(t, "card p-3 card", report.Merged())
	want := []Drop{
		{Token: "p-1", Group: "p", Winner: "p-3"},
		{Token: "url(x)"},
		{Token: "p-2", Group: "p", Winner: "p-3"},
	}
	if diff := cmp.Diff(want, report.Dropped); diff != "" {
		t.Fatalf("unexpected drops (-want +got):\n%s", diff)
	}
}

func TestBuilderOutputSurvivesMerge(t *testing.T) {
	t.Parallel()

	builders := []style.Builder{
		style.BackgroundColor().Primary().Opacity50(),
		style.BorderColor().Danger().Opacity25(),
		style.TextColor().Primary().Opacity75(),
		style.Border().S2().S1().OnPhone(),
		style.Margin().S3().FromTop().FromLeft(),
		style.Padding().S2().OnX().S1().OnY().OnTablet(),
		style.Display().None().Block().OnTablet(),
		style.Flex().Column().Row().OnLaptop().JustifyBetween(),
		style.BorderRadius().TopLeft().S3().S2().FromBottom(),
		style.TextDecoration().Underline(),
	}

	all := make([]string, 0, len(builders))
	for _, b := range builders {
		class := b.ToClass()
		require.NotEmpty(t, class, b.Kind().String())
		assert.Equal(t, class, Merge(class), b.Kind().String())
		all = append(all, class)
	}

	joined := strings.Join(all, " ")
	assert.Equal(t, joined, Merge(joined))
}

func TestColourTokensOnlyReplaceColours(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "bg-primary bg-opacity-50", Merge("bg-primary bg-opacity-50"))
	assert.Equal(t, "bg-opacity-25 bg-danger", Merge("bg-primary bg-opacity-50", "bg-opacity-25 bg-danger"))
	assert.Equal(t, "border-sm-1 border-primary", Merge("border-sm-1", "border-primary"))
	assert.Equal(t, "border-primary border-sm-3", Merge("border-sm-1 border-primary", "border-sm-3"))
	assert.Equal(t, "text-primary text-opacity-75", Merge("text-opacity-50 text-primary", "text-opacity-75"))
}
