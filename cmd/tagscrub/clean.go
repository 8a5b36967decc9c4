package main

import (
	"bufio"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagscrub/pkg/filter"
	"github.com/arthur-debert/tagscrub/pkg/logging"
)

func newCleanCmd(cfgFile *string) *cobra.Command {
	var setNames []string

	cmd := &cobra.Command{
		Use:   "clean [text...]",
		Short: "Normalize metadata strings",
		Long: `Clean runs each argument through the configured normalization pipeline and
prints the result, one per line. With no arguments, lines are read from
standard input instead.

The pipeline comes from the config file's "pipeline" list unless --sets
names rule sets explicitly; sets are applied in the order given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgFile)
			if err != nil {
				return err
			}

			var pipeline filter.RuleSet
			if len(setNames) > 0 {
				pipeline, err = cfg.PipelineFor(setNames)
			} else {
				pipeline, err = cfg.Pipeline()
			}
			if err != nil {
				return err
			}

			logger := logging.GetLogger("clean")
			logger.Debug().Int("ruleCount", len(pipeline)).Msg("Pipeline resolved")
			defer logging.LogDuration(time.Now(), "clean")

			out := cmd.OutOrStdout()
			if len(args) > 0 {
				for _, text := range args {
					fmt.Fprintln(out, filter.Apply(text, pipeline))
				}
				return nil
			}

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for scanner.Scan() {
				fmt.Fprintln(out, filter.Apply(scanner.Text(), pipeline))
			}
			return scanner.Err()
		},
	}

	cmd.Flags().StringSliceVarP(&setNames, "sets", "s", nil,
		"Rule sets to apply, in order (overrides the config pipeline)")

	return cmd
}
