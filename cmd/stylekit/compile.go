package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/pkg/style"
)

type compiled struct {
	Expr  string `json:"expr"`
	Kind  string `json:"kind"`
	Class string `json:"class"`
	Style string `json:"style"`
}

func newClassCmd(a *app) *cobra.Command {
	return newCompileCmd(a, "class", "Print the utility classes of chain expressions",
		func(c compiled) string { return c.Class })
}

func newStyleCmd(a *app) *cobra.Command {
	return newCompileCmd(a, "style", "Print the inline style of chain expressions",
		func(c compiled) string { return c.Style })
}

func newCompileCmd(a *app, use, short string, pick func(compiled) string) *cobra.Command {
	return &cobra.Command{
		Use:     use + " EXPR...",
		Short:   short,
		Example: "  stylekit " + use + " Margin.S3.FromTop 'Border.S1.FromTop.OnPhone'",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := compileAll(args)
			if err != nil {
				a.log.Error(err, "chain expression rejected")
				return err
			}
			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			for _, r := range results {
				fmt.Fprintln(cmd.OutOrStdout(), pick(r))
			}
			return nil
		},
	}
}

func compileAll(exprs []string) ([]compiled, error) {
	out := make([]compiled, 0, len(exprs))
	for _, expr := range exprs {
		b, err := style.Compile(expr)
		if err != nil {
			return nil, err
		}
		out = append(out, compiled{
			Expr:  expr,
			Kind:  b.Kind().String(),
			Class: b.ToClass(),
			Style: b.ToStyle(),
		})
	}
	return out, nil
}
