package main

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gitrdm/geodeduce/pkg/geodeduce"
)

var (
	version string
	commit  string
	date    string
)

// ctxKey distinguishes this command's context keys from any other
// package's.
type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *charmlog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

func loggerFromContext(ctx context.Context) *charmlog.Logger {
	if l, ok := ctx.Value(loggerKey).(*charmlog.Logger); ok {
		return l
	}
	return charmlog.Default()
}

// Execute runs the geodeduce CLI and returns an error if any command
// fails.
func Execute() error {
	var verbose bool
	var cfgPath string

	root := &cobra.Command{
		Use:          "geodeduce",
		Short:        "geodeduce runs a geometry deduction engine's saturation loop",
		Long:         `geodeduce matches rules against a geometric diagram's dependency hypergraph until the goal statements are proven or the rule set is exhausted.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           level,
			})
			ctx := withLogger(cmd.Context(), logger)
			ctx = geodeduce.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
		},
	}
	root.SetVersionTemplate(fmt.Sprintf("geodeduce %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&cfgPath, "config", "", "path to a TOML config file (defaults if unset)")

	root.AddCommand(newProveCmd(&cfgPath))
	root.AddCommand(newScenariosCmd())

	return root.ExecuteContext(context.Background())
}
