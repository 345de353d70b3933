package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitrdm/geodeduce/internal/ruleparser"
	"github.com/gitrdm/geodeduce/pkg/geodeduce"
)

func newProveCmd(cfgPath *string) *cobra.Command {
	var rulesPath string
	var scenarioName string
	var dumpPath string

	cmd := &cobra.Command{
		Use:   "prove",
		Short: "run the saturation loop over a scenario and a rule file",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			sc, ok := scenarios[scenarioName]
			if !ok {
				return fmt.Errorf("unknown scenario %q (see `geodeduce scenarios`)", scenarioName)
			}
			dg, goals, err := sc.build()
			if err != nil {
				return fmt.Errorf("building scenario: %w", err)
			}

			var rules []geodeduce.Rule
			if rulesPath != "" {
				f, err := os.Open(rulesPath)
				if err != nil {
					return fmt.Errorf("opening rule file: %w", err)
				}
				defer f.Close()
				rules, err = ruleparser.Parse(cmd.Context(), f)
				if err != nil {
					return fmt.Errorf("parsing rule file: %w", err)
				}
			}

			cfg := geodeduce.DefaultConfig()
			if *cfgPath != "" {
				cfg, err = geodeduce.LoadConfig(*cfgPath)
				if err != nil {
					return fmt.Errorf("loading config: %w", err)
				}
			}

			engine, err := geodeduce.NewEngine(dg, rules, goals, cfg)
			if err != nil {
				return fmt.Errorf("building engine: %w", err)
			}

			logger.Infof("running scenario %q with %d rules", scenarioName, len(rules))
			info, err := engine.Run(cmd.Context())
			if err != nil {
				return fmt.Errorf("running saturation loop: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "run %s: success=%v steps=%d exhausted=%v goals=%d/%d\n",
				info.RunID, info.Success, info.Steps, info.Exhausted, info.GoalsProven, info.GoalsTotal)

			if info.Success {
				fmt.Fprint(cmd.OutOrStdout(), geodeduce.ExtractProof(dg, goals))
			}

			if dumpPath != "" {
				data, err := json.MarshalIndent(dg.Dump(), "", "  ")
				if err != nil {
					return fmt.Errorf("marshaling hypergraph dump: %w", err)
				}
				if err := os.WriteFile(dumpPath, data, 0o644); err != nil {
					return fmt.Errorf("writing hypergraph dump: %w", err)
				}
				logger.Infof("wrote hypergraph dump to %s", dumpPath)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&rulesPath, "rules", "", "path to a rule file (text format); empty runs with no rules")
	cmd.Flags().StringVar(&scenarioName, "scenario", "orthocenter", "built-in scenario to run (see `geodeduce scenarios`)")
	cmd.Flags().StringVar(&dumpPath, "dump", "", "write a machine-readable JSON dump of the dependency hypergraph to this path")
	return cmd
}
