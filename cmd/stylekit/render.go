package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/alexisbeaulieu97/stylekit/internal/config"
	"github.com/alexisbeaulieu97/stylekit/pkg/diff"
	"github.com/alexisbeaulieu97/stylekit/pkg/theme"
)

var errStale = errors.New("generated css differs from the existing file")

type renderOptions struct {
	output string
	diff   string
	check  bool
	jobs   int
}

type renderedTheme struct {
	Path   string `json:"path"`
	Name   string `json:"name"`
	Blocks int    `json:"blocks"`
	CSS    string `json:"css"`
}

func newRenderCmd(a *app) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render THEME...",
		Short: "Render theme documents (YAML or TOML) to CSS",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := renderThemes(cmd.Context(), config.NewLoader(a.log), args, opts)
			if err != nil {
				return err
			}

			if a.jsonOutput() {
				return writeJSON(cmd.OutOrStdout(), results)
			}

			parts := make([]string, 0, len(results))
			for _, r := range results {
				if r.CSS != "" {
					parts = append(parts, r.CSS)
				}
			}
			css := strings.Join(parts, "\n")
			if css != "" {
				css += "\n"
			}

			if opts.diff != "" {
				return a.diffAgainst(cmd.OutOrStdout(), opts.diff, css)
			}

			if opts.output == "" || opts.output == "-" {
				_, err := fmt.Fprint(cmd.OutOrStdout(), css)
				return err
			}
			if err := os.WriteFile(opts.output, []byte(css), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", opts.output, err)
			}
			a.log.WithFields(map[string]any{"path": opts.output, "themes": len(results)}).Info("css written")
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write CSS to file instead of stdout")
	cmd.Flags().StringVar(&opts.diff, "diff", "", "Compare against an existing CSS file and fail when it is stale")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Re-parse the generated CSS and verify every block survived")
	cmd.Flags().IntVar(&opts.jobs, "jobs", 4, "Number of theme files processed concurrently")
	return cmd
}

func (a *app) diffAgainst(w io.Writer, path, css string) error {
	existing, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	out := diff.Unified(string(existing), css, path, "generated")
	if out == "" {
		return nil
	}
	added, removed := diff.Changed(string(existing), css)
	a.log.WithFields(map[string]any{"path": path, "added": added, "removed": removed}).Warn("css is stale")
	if _, err := fmt.Fprint(w, out); err != nil {
		return err
	}
	return errStale
}

// renderThemes loads and renders every path concurrently. Results keep the
// order of paths.
func renderThemes(ctx context.Context, loader *config.Loader, paths []string, opts renderOptions) ([]renderedTheme, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	results := make([]renderedTheme, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	if opts.jobs > 0 {
		g.SetLimit(opts.jobs)
	}
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			th, err := loader.Load(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			css := th.CSS()
			blocks := countSelectors(th)
			if opts.check {
				if err := checkCSS(css, blocks); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			results[i] = renderedTheme{Path: path, Name: th.Name, Blocks: blocks, CSS: css}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// countSelectors counts the blocks CSS will emit: one per distinct selector
// within each component.
func countSelectors(th *theme.Theme) int {
	n := 0
	for i := range th.Components {
		seen := make(map[string]bool)
		for _, r := range th.Components[i].Options.Rules() {
			if !seen[r.Selector] {
				seen[r.Selector] = true
				n++
			}
		}
	}
	return n
}

func checkCSS(css string, blocks int) error {
	sheet, err := parser.Parse(css)
	if err != nil {
		return fmt.Errorf("generated css does not parse: %w", err)
	}
	if len(sheet.Rules) != blocks {
		return fmt.Errorf("generated css has %d rules, expected %d", len(sheet.Rules), blocks)
	}
	for _, rule := range sheet.Rules {
		if len(rule.Declarations) == 0 {
			return fmt.Errorf("rule %q lost its declarations", rule.Prelude)
		}
	}
	return nil
}
