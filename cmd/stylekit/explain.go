package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/alexisbeaulieu97/stylekit/pkg/style"
)

func newExplainCmd(a *app) *cobra.Command {
	var merge bool

	cmd := &cobra.Command{
		Use:   "explain ARG...",
		Short: "Show how chain expressions or class merges are resolved",
		Long: `Without --merge every argument is a chain expression and the tree shows the
accumulated rules and both renderings. With --merge the arguments are class
sources and the tree shows which tokens survived and which were superseded.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var tree treeprint.Tree
			var err error
			if merge {
				tree = a.explainMerge(args)
			} else {
				tree, err = explainChains(args)
			}
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), tree.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&merge, "merge", false, "Explain a merge of class sources")
	return cmd
}

func explainChains(exprs []string) (treeprint.Tree, error) {
	tree := treeprint.New()
	tree.SetValue("chains")
	for _, expr := range exprs {
		b, err := style.Compile(expr)
		if err != nil {
			return nil, err
		}
		branch := tree.AddBranch(expr)
		branch.AddNode("kind: " + b.Kind().String())
		rules := branch.AddBranch(fmt.Sprintf("rules (%d)", len(b.Rules())))
		for _, r := range b.Rules() {
			rules.AddNode(r.String())
		}
		branch.AddNode("class: " + quoteEmpty(b.ToClass()))
		branch.AddNode("style: " + quoteEmpty(b.ToStyle()))
	}
	return tree, nil
}

func (a *app) explainMerge(sources []string) treeprint.Tree {
	split := make([][]string, len(sources))
	for i, s := range sources {
		split[i] = []string{s}
	}
	report := a.merger.Resolve(split...)

	tree := treeprint.New()
	tree.SetValue("merged: " + quoteEmpty(report.Merged()))
	kept := tree.AddBranch(fmt.Sprintf("kept (%d)", len(report.Kept)))
	for _, tok := range report.Kept {
		if group, ok := a.merger.Group(tok); ok {
			kept.AddNode(tok + " [" + group + "]")
		} else {
			kept.AddNode(tok)
		}
	}
	dropped := tree.AddBranch(fmt.Sprintf("dropped (%d)", len(report.Dropped)))
	for _, d := range report.Dropped {
		if d.Group == "" {
			dropped.AddNode(d.Token + " (unsafe)")
			continue
		}
		dropped.AddNode(fmt.Sprintf("%s [%s] superseded by %s", d.Token, d.Group, d.Winner))
	}
	return tree
}

func quoteEmpty(s string) string {
	if s == "" {
		return `""`
	}
	return s
}
