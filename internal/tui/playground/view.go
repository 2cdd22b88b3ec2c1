package playground

import (
	"strings"
)

// View renders the playground.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("stylekit playground"))
	b.WriteString("\n")

	for i := range m.inputs {
		label := labelStyle
		if Field(i) == m.focus {
			label = focusedLabelStyle
		}
		b.WriteString(label.Render(fieldLabels[i]))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("merged"))
	b.WriteString(resultStyle.Render(orPlaceholder(m.merged)))
	b.WriteString("\n")

	if len(m.dropped) > 0 {
		b.WriteString(labelStyle.Render("dropped"))
		b.WriteString(droppedStyle.Render(strings.Join(m.dropped, " ")))
		b.WriteString("\n")
	}

	switch {
	case m.chainErr != "":
		b.WriteString(labelStyle.Render("chain"))
		b.WriteString(errorStyle.Render(m.chainErr))
		b.WriteString("\n")
	case m.chainClass != "" || m.chainStyle != "":
		b.WriteString(labelStyle.Render("class"))
		b.WriteString(resultStyle.Render(orPlaceholder(m.chainClass)))
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("style"))
		b.WriteString(resultStyle.Render(orPlaceholder(m.chainStyle)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("tab/shift+tab: switch field • esc: quit"))
	return b.String()
}

func orPlaceholder(s string) string {
	if s == "" {
		return "(empty)"
	}
	return s
}
