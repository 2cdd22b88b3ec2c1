package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/stylekit/pkg/style"
)

type classification struct {
	Text  string `json:"text"`
	Kind  string `json:"kind"`
	Class bool   `json:"class"`
	Style bool   `json:"style"`
}

func newClassifyCmd(a *app) *cobra.Command {
	var kindName string

	cmd := &cobra.Command{
		Use:   "classify TEXT...",
		Short: "Report whether text reads as class names or inline style",
		Long: `Classify each argument the way theme values are classified: text is
style-like when it holds a declaration, a CSS unit, a standalone CSS value,
or comes from a colour family; otherwise it is class-like.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := style.ParseKind(kindName)
			if !ok {
				return fmt.Errorf("unknown kind %q", kindName)
			}

			results := make([]classification, 0, len(args))
			for _, text := range args {
				isStyle := style.IsStyleText(text, kind)
				results = append(results, classification{
					Text:  text,
					Kind:  kind.String(),
					Class: text != "" && !isStyle,
					Style: isStyle,
				})
			}

			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			for _, r := range results {
				label := "empty"
				switch {
				case r.Style:
					label = "style"
				case r.Class:
					label = "class"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", a.styled(cmd.OutOrStdout(), labelStyle, label), r.Text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kindName, "kind", "literal", "Family that produced the text (e.g. literal, margin, text-color)")
	return cmd
}
