package style

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarginTopScenario(t *testing.T) {
	t.Parallel()

	b := Margin().S3().FromTop()
	require.Equal(t, "mt-3", b.ToClass())
	require.Equal(t, "margin-top: 1rem", b.ToStyle())
}

func TestPaddingOnX(t *testing.T) {
	t.Parallel()

	b := Padding().S2().OnX()
	require.Equal(t, "px-2", b.ToClass())
	require.Equal(t, "padding-left: 0.5rem; padding-right: 0.5rem", b.ToStyle())
}

func TestSideCoalescing(t *testing.T) {
	t.Parallel()

	one := Margin().Size(3).FromTop()
	require.Equal(t, []Rule{{Value: "3", Side: SideTop}}, one.Rules())

	two := Margin().Size(3).FromTop().FromLeft()
	require.Equal(t, []Rule{
		{Value: "3", Side: SideTop},
		{Value: "3", Side: SideLeft},
	}, two.Rules())
	require.Equal(t, "mt-3 ms-3", two.ToClass())
	require.Equal(t, "margin-top: 1rem; margin-left: 1rem", two.ToStyle())
}

func TestSideInheritsBreakpoint(t *testing.T) {
	t.Parallel()

	b := Padding().S1().FromTop().OnTablet().FromBottom()
	require.Equal(t, []Rule{
		{Value: "1", Side: SideTop, Breakpoint: BreakpointMD},
		{Value: "1", Side: SideBottom, Breakpoint: BreakpointMD},
	}, b.Rules())
	require.Equal(t, "pt-md-1 pb-md-1", b.ToClass())
}

func TestValueCallsAlwaysAppend(t *testing.T) {
	t.Parallel()

	b := Margin().S1().S2().FromTop()
	require.Equal(t, []Rule{
		{Value: "1"},
		{Value: "2", Side: SideTop},
	}, b.Rules())
	require.Equal(t, "m-1 mt-2", b.ToClass())
}

func TestBreakpointOnlySeedsDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		b     Builder
		seed  string
		class string
	}{
		{"margin", Margin().OnTablet(), "0", "m-md-0"},
		{"padding", Padding().OnPhone(), "0", "p-sm-0"},
		{"border", Border().OnLaptop(), "1", "border-lg-1"},
		{"radius", BorderRadius().OnDesktop(), "", "xl-rounded"},
		{"display", Display().OnWidescreen(), "block", "d-xxl-block"},
		{"flex", Flex().OnTablet(), "row", "flex-md-row"},
		{"text color", TextColor().OnPhone(), "primary", "text-sm-primary"},
		{"decoration", TextDecoration().OnTablet(), "none", "text-decoration-md-none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := tt.b.Rules()
			require.Len(t, rules, 1)
			assert.Equal(t, tt.seed, rules[0].Value)
			assert.NotEqual(t, BreakpointNone, rules[0].Breakpoint)
			assert.Equal(t, tt.class, tt.b.ToClass())
		})
	}
}

func TestBreakpointNeverAppends(t *testing.T) {
	t.Parallel()

	b := Display().None().OnPhone().OnTablet()
	require.Equal(t, []Rule{{Value: "none", Breakpoint: BreakpointMD}}, b.Rules())
}

func TestResolutionIsDeterministic(t *testing.T) {
	t.Parallel()

	b := Margin().S3().FromTop().FromLeft().OnTablet().Auto().OnX()
	class, style := b.ToClass(), b.ToStyle()
	for i := 0; i < 5; i++ {
		require.Equal(t, class, b.ToClass())
		require.Equal(t, style, b.ToStyle())
	}
	require.Len(t, b.Rules(), 3)
}

func TestUnmappedValuesAreSkipped(t *testing.T) {
	t.Parallel()

	b := Margin().Size(9).FromTop().S2()
	require.Equal(t, "m-2", b.ToClass())
	require.Equal(t, "margin: 0.5rem", b.ToStyle())

	p := Padding().Auto()
	require.Empty(t, p.ToClass())
	require.Empty(t, p.ToStyle())
}

func TestNoDeduplicationWithinBuilder(t *testing.T) {
	t.Parallel()

	b := Margin().S1().FromTop().S2().FromTop()
	require.Equal(t, "mt-1 mt-2", b.ToClass())
	require.Equal(t, "margin-top: 0.25rem; margin-top: 0.5rem", b.ToStyle())
}

func TestEmptyBuilderRendersNothing(t *testing.T) {
	t.Parallel()

	require.Empty(t, Margin().ToClass())
	require.Empty(t, Margin().ToStyle())
	require.Empty(t, Flex().Rules())
}

func TestSideOnEmptyBuilderSeeds(t *testing.T) {
	t.Parallel()

	b := Margin().FromTop()
	require.Equal(t, []Rule{{Value: "0", Side: SideTop}}, b.Rules())
	require.Equal(t, "mt-0", b.ToClass())
}

func TestSplicing(t *testing.T) {
	t.Parallel()

	require.Equal(t, "mt-md-3", spliceFirstDash("mt-3", BreakpointMD))
	require.Equal(t, "lg-rounded", spliceFirstDash("rounded", BreakpointLG))
	require.Equal(t, "sm--75", spliceFirstDash("-75", BreakpointSM))
	require.Equal(t, "text-primary sm--75", TextColor().Primary().Opacity75().OnPhone().ToClass())

	stem := spliceAfterStem("justify-content", "flex")
	require.Equal(t, "justify-content-md-center", stem("justify-content-center", BreakpointMD))
	require.Equal(t, "flex-sm-wrap-reverse", stem("flex-wrap-reverse", BreakpointSM))
	require.Equal(t, "d-xl-none", stem("d-none", BreakpointXL))
}
