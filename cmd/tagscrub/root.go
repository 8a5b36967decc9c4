package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/tagscrub/internal/version"
	"github.com/arthur-debert/tagscrub/pkg/config"
	"github.com/arthur-debert/tagscrub/pkg/logging"
	"github.com/arthur-debert/tagscrub/pkg/ui"
)

// newRootCmd builds the full command tree. A fresh tree per call keeps flag
// state isolated, which tests rely on.
func newRootCmd() *cobra.Command {
	var (
		verbosity int
		cfgFile   string
	)

	rootCmd := &cobra.Command{
		Use:   "tagscrub",
		Short: "Clean up noisy music metadata strings",
		Long: `tagscrub normalizes track, artist and album titles by stripping platform
noise such as "(Official Video)", "- Remastered 2015" or "[Explicit]".

Normalization runs ordered rule sets of pattern substitutions over the text
repeatedly until it stops changing. Rule sets can be listed with "tagscrub
rules" and composed per invocation with --sets, or configured as a default
pipeline in a tagscrub.toml file.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"Config file (default searches .tagscrub.toml, tagscrub.toml, then XDG config)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())
	rootCmd.AddCommand(newCleanCmd(&cfgFile))
	rootCmd.AddCommand(newRulesCmd(&cfgFile))
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newGenConfigCmd())

	return rootCmd
}

// Execute runs the command tree. This is called by main.main().
func Execute() error {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Render(ui.ErrorStyle, "Error:")+" "+err.Error())
		return err
	}
	return nil
}

// loadConfig honors --config when given, otherwise runs discovery.
func loadConfig(cfgFile string) (*config.Config, error) {
	if cfgFile != "" {
		return config.Load(cfgFile)
	}
	return config.LoadDefault()
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print version information for tagscrub`,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "tagscrub version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `To load completions:

Bash:
  $ source <(tagscrub completion bash)

Zsh:
  $ tagscrub completion zsh > "${fpath[1]}/_tagscrub"

Fish:
  $ tagscrub completion fish | source

PowerShell:
  PS> tagscrub completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				if err := cmd.Root().GenBashCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate bash completion")
				}
			case "zsh":
				if err := cmd.Root().GenZshCompletion(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate zsh completion")
				}
			case "fish":
				if err := cmd.Root().GenFishCompletion(cmd.OutOrStdout(), true); err != nil {
					log.Error().Err(err).Msg("Failed to generate fish completion")
				}
			case "powershell":
				if err := cmd.Root().GenPowerShellCompletionWithDesc(cmd.OutOrStdout()); err != nil {
					log.Error().Err(err).Msg("Failed to generate powershell completion")
				}
			}
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "man",
		Short: "Generate man page",
		Long:  `Generate man page for tagscrub`,
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "TAGSCRUB",
				Section: "1",
			}
			return doc.GenManTree(cmd.Root(), header, ".")
		},
	}
}
