package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/stylekit/internal/tui/playground"
)

var errNotInteractive = errors.New("playground needs an interactive terminal")

func newPlaygroundCmd(a *app) *cobra.Command {
	var defaults, overrides string

	cmd := &cobra.Command{
		Use:   "playground",
		Short: "Launch the interactive merge playground",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
				return errNotInteractive
			}

			a.log.Info("launching playground")
			m := playground.NewModel(a.merger, defaults, overrides)
			if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
				a.log.Error(err, "playground execution failed")
				return fmt.Errorf("failed to run playground: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&defaults, "defaults", "", "Initial component default classes")
	cmd.Flags().StringVar(&overrides, "overrides", "", "Initial override classes")
	return cmd
}
