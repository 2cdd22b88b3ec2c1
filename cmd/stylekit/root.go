package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/stylekit/internal/logger"
	"github.com/alexisbeaulieu97/stylekit/pkg/classmerge"
)

// app bundles the settings and services shared by every command.
type app struct {
	v      *viper.Viper
	log    *logger.Logger
	merger *classmerge.Merger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	cmd := &cobra.Command{
		Use:           "stylekit",
		Short:         "Compile styling chains, merge utility classes and render theme CSS",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("log-level", "warn", "Log level (debug, info, warn, error)")
	flags.Bool("log-human", false, "Write human readable logs instead of JSON")
	flags.Bool("no-color", false, "Disable colored output")
	flags.Bool("json", false, "Write results as JSON")
	_ = a.v.BindPFlags(flags)

	a.v.SetEnvPrefix("STYLEKIT")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cmd.AddCommand(newClassCmd(a))
	cmd.AddCommand(newStyleCmd(a))
	cmd.AddCommand(newClassifyCmd(a))
	cmd.AddCommand(newMergeCmd(a))
	cmd.AddCommand(newRenderCmd(a))
	cmd.AddCommand(newExplainCmd(a))
	cmd.AddCommand(newPlaygroundCmd(a))
	cmd.AddCommand(newVersionCmd(a))

	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	log, err := logger.New(logger.Options{
		Level:         a.v.GetString("log-level"),
		HumanReadable: a.v.GetBool("log-human"),
		NoColor:       a.v.GetBool("no-color"),
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.log = log.WithFields(map[string]any{"command": cmd.Name()})
	a.merger = classmerge.New(classmerge.WithLogger(a.log.Zerolog()))
	return nil
}

func (a *app) jsonOutput() bool {
	return a.v.GetBool("json")
}
