package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagscrub/pkg/config"
	"github.com/arthur-debert/tagscrub/pkg/errors"
	"github.com/arthur-debert/tagscrub/pkg/logging"
)

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: "Output the default configuration",
		Long: `Gen-config prints the embedded default configuration, as a starting point
for a local tagscrub.toml. With --write it creates .tagscrub.toml in the
working directory instead of printing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("genconfig")
			content := config.GetDefaultConfigContent()

			if !write {
				logger.Debug().Msg("Outputting config to stdout")
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}

			const target = ".tagscrub.toml"
			if _, err := os.Stat(target); err == nil {
				return errors.Newf(errors.ErrInvalidInput,
					"%s already exists, not overwriting", target)
			}
			if err := os.WriteFile(target, []byte(content), 0o644); err != nil {
				return errors.Wrapf(err, errors.ErrInternal,
					"failed to write %s", target)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", target)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false,
		"Write .tagscrub.toml to the working directory instead of printing")

	return cmd
}
