package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const before = "a {\n  color: red;\n}\n.card {\n  padding: 1rem;\n}\n"

func TestUnifiedIdentical(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Unified(before, before, "theme.css", "generated"))
	added, removed := Changed(before, before)
	assert.Zero(t, added)
	assert.Zero(t, removed)
}

func TestUnifiedChangedDeclaration(t *testing.T) {
	t.Parallel()

	after := strings.Replace(before, "padding: 1rem", "padding: 1.5rem", 1)
	out := Unified(before, after, "theme.css", "generated")

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "--- theme.css", lines[0])
	assert.Equal(t, "+++ generated", lines[1])
	assert.Equal(t, "@@ -1,6 +1,6 @@", lines[2])
	assert.Contains(t, lines, "-  padding: 1rem;")
	assert.Contains(t, lines, "+  padding: 1.5rem;")
	assert.Contains(t, lines, " a {")

	added, removed := Changed(before, after)
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, removed)
}

func TestUnifiedAddedBlock(t *testing.T) {
	t.Parallel()

	after := before + "a:hover {\n  color: blue;\n}\n"
	out := Unified(before, after, "old", "new")

	assert.Contains(t, out, "+a:hover {\n+  color: blue;\n+}\n")
	added, removed := Changed(before, after)
	assert.Equal(t, 3, added)
	assert.Zero(t, removed)
}

func TestUnifiedTruncates(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 0; i < maxDiffLines+10; i++ {
		b.WriteString("x\n")
	}
	out := Unified("", b.String(), "old", "new")
	assert.True(t, strings.HasSuffix(out, truncateMessage+"\n"))
}
