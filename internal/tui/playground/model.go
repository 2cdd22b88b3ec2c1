package playground

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/stylekit/pkg/classmerge"
	"github.com/alexisbeaulieu97/stylekit/pkg/style"
)

// Field identifies one of the playground inputs.
type Field int

const (
	FieldDefaults Field = iota
	FieldOverrides
	FieldChain
	fieldCount
)

var fieldLabels = [fieldCount]string{"defaults", "overrides", "chain"}

// Model is the merge playground: component defaults and caller overrides go
// in, the merged class string comes out. A third input compiles a chain
// expression and shows both renderings.
type Model struct {
	inputs [fieldCount]textinput.Model
	focus  Field
	merger *classmerge.Merger

	merged  string
	dropped []string

	chainClass string
	chainStyle string
	chainErr   string

	width int
}

// NewModel creates a playground seeded with the given class strings.
func NewModel(merger *classmerge.Merger, defaults, overrides string) Model {
	if merger == nil {
		merger = classmerge.New()
	}

	m := Model{merger: merger}
	placeholders := [fieldCount]string{"btn p-2 text-primary", "p-4 text-danger", "Margin.S3.FromTop"}
	for i := range m.inputs {
		in := textinput.New()
		in.Prompt = ""
		in.Placeholder = placeholders[i]
		in.CharLimit = 512
		m.inputs[i] = in
	}
	m.inputs[FieldDefaults].SetValue(defaults)
	m.inputs[FieldOverrides].SetValue(overrides)
	m.inputs[FieldDefaults].Focus()

	m.recompute()
	return m
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Merged returns the current merge result.
func (m Model) Merged() string {
	return m.merged
}

// Dropped returns the tokens removed by the last merge, in input order.
func (m Model) Dropped() []string {
	return append([]string(nil), m.dropped...)
}

// Focused returns the input that has focus.
func (m Model) Focused() Field {
	return m.focus
}

func (m *Model) recompute() {
	defaults := m.inputs[FieldDefaults].Value()
	overrides := m.inputs[FieldOverrides].Value()
	report := m.merger.Resolve([]string{defaults}, []string{overrides})
	m.merged = report.Merged()
	m.dropped = nil
	for _, d := range report.Dropped {
		m.dropped = append(m.dropped, d.Token)
	}

	m.chainClass, m.chainStyle, m.chainErr = "", "", ""
	expr := strings.TrimSpace(m.inputs[FieldChain].Value())
	if expr == "" {
		return
	}
	b, err := style.Compile(expr)
	if err != nil {
		m.chainErr = err.Error()
		return
	}
	m.chainClass = b.ToClass()
	m.chainStyle = b.ToStyle()
}
