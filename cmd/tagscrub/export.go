package main

import (
	"fmt"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/tagscrub/pkg/errors"
	"github.com/arthur-debert/tagscrub/pkg/rules"
)

// exportDoc mirrors the config file's ruleset schema so an exported catalog
// can be dropped into a tagscrub.toml and edited from there.
type exportDoc struct {
	RuleSets []exportSet `toml:"ruleset" yaml:"ruleset"`
}

type exportSet struct {
	Name  string       `toml:"name" yaml:"name"`
	Rules []exportRule `toml:"rule" yaml:"rule"`
}

type exportRule struct {
	Pattern     string `toml:"pattern" yaml:"pattern"`
	Replacement string `toml:"replacement" yaml:"replacement"`
}

func newExportCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Dump the built-in rule catalogs as a rule table",
		Long: `Export writes every built-in rule set as a config-file rule table, as a
starting point for a custom catalog. The output schema matches the
[[ruleset]] tables accepted in tagscrub.toml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			exported := exportDoc{}
			for _, name := range rules.Names() {
				set, _ := rules.Named(name)
				out := exportSet{Name: name, Rules: make([]exportRule, 0, len(set))}
				for _, rule := range set {
					out.Rules = append(out.Rules, exportRule{
						Pattern:     rule.Pattern(),
						Replacement: rule.Replacement(),
					})
				}
				exported.RuleSets = append(exported.RuleSets, out)
			}

			var (
				encoded []byte
				err     error
			)
			switch format {
			case "toml":
				encoded, err = gotoml.Marshal(exported)
			case "yaml":
				encoded, err = yaml.Marshal(exported)
			default:
				return errors.Newf(errors.ErrInvalidInput,
					"unknown format %q (want toml or yaml)", format)
			}
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to encode rule catalogs")
			}

			fmt.Fprint(cmd.OutOrStdout(), string(encoded))
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "toml", "Output format: toml or yaml")

	return cmd
}
