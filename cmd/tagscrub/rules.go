package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/tagscrub/pkg/rules"
	"github.com/arthur-debert/tagscrub/pkg/ui"
)

func newRulesCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List available rule sets",
		Long: `List the built-in rule set catalogs plus any sets defined in the config
file, with the number of rules in each.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgFile)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Title("Built-in rule sets"))
			for _, name := range rules.Names() {
				set, _ := rules.Named(name)
				line := fmt.Sprintf("%s %s", ui.Code(name),
					ui.Muted(fmt.Sprintf("(%d rules)", len(set))))
				fmt.Fprintln(out, ui.Indent(line, 1))
			}

			custom := cfg.SetNames()
			if len(custom) > 0 {
				fmt.Fprintln(out)
				fmt.Fprintln(out, ui.Title("Config rule sets"))
				for _, name := range custom {
					set, err := cfg.Resolve(name)
					if err != nil {
						return err
					}
					line := fmt.Sprintf("%s %s", ui.Code(name),
						ui.Muted(fmt.Sprintf("(%d rules)", len(set))))
					fmt.Fprintln(out, ui.Indent(line, 1))
				}
			}
			return nil
		},
	}
}
