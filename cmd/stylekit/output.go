package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	jsoniter "github.com/json-iterator/go"
	"golang.org/x/term"
)

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary

	labelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// styled applies style only when writing to a terminal with color enabled.
func (a *app) styled(w io.Writer, style lipgloss.Style, text string) string {
	if a.v.GetBool("no-color") || !isTerminal(w) {
		return text
	}
	return style.Render(text)
}
