package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type mergeDrop struct {
	Token  string `json:"token"`
	Group  string `json:"group,omitempty"`
	Winner string `json:"winner,omitempty"`
}

type mergeResult struct {
	Merged  string      `json:"merged"`
	Kept    []string    `json:"kept"`
	Dropped []mergeDrop `json:"dropped"`
}

func newMergeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "merge SOURCE...",
		Short: "Merge class strings, later sources overriding earlier ones",
		Example: `  stylekit merge "btn p-2 text-primary" "p-4"
  stylekit merge --json "mt-1 foo-custom" "mt-3"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sources := make([][]string, len(args))
			for i, arg := range args {
				sources[i] = []string{arg}
			}
			report := a.merger.Resolve(sources...)

			if !a.jsonOutput() {
				fmt.Fprintln(cmd.OutOrStdout(), report.Merged())
				return nil
			}

			res := mergeResult{
				Merged:  report.Merged(),
				Kept:    report.Kept,
				Dropped: make([]mergeDrop, 0, len(report.Dropped)),
			}
			for _, d := range report.Dropped {
				res.Dropped = append(res.Dropped, mergeDrop{Token: d.Token, Group: d.Group, Winner: d.Winner})
			}
			return writeJSON(cmd.OutOrStdout(), res)
		},
	}
}
