package commands

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/docket/pkg/config"
	"github.com/arthur-debert/docket/pkg/help"
	"github.com/arthur-debert/docket/pkg/logging"
)

// Build info, set via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// NewRootCmd builds the docket command tree.
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:   "docket",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file (default is $XDG_CONFIG_HOME/docket/docket.toml)")

	rootCmd.AddCommand(newShowCmd(&configPath))
	rootCmd.AddCommand(newExportCmd(&configPath))
	rootCmd.AddCommand(newProvidersCmd(&configPath))
	rootCmd.AddCommand(newTopicsCmd(&configPath))
	rootCmd.AddCommand(newGenconfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd(rootCmd))

	return rootCmd
}

// loadConfig resolves the runtime configuration for a command.
func loadConfig(configPath *string) (*config.Config, error) {
	path := ""
	if configPath != nil {
		path = *configPath
	}
	return config.Load(path)
}

// buildHelper assembles a helper from configuration: enabled
// providers first, then every bundle found in the docs directories.
func buildHelper(cfg *config.Config) (*help.Helper, error) {
	h := help.New()

	for _, name := range cfg.Providers.Enabled {
		if err := h.EnableProvider(name); err != nil {
			return nil, err
		}
	}

	for _, dir := range cfg.Docs.Dirs {
		if err := loadBundleDir(h, dir); err != nil {
			return nil, err
		}
	}
	return h, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("docket version %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)
		},
	}
}

func newCompletionCmd(rootCmd *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Generate shell completion script",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"bash", "zsh", "fish", "powershell"},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return rootCmd.GenBashCompletion(cmd.OutOrStdout())
			case "zsh":
				return rootCmd.GenZshCompletion(cmd.OutOrStdout())
			case "fish":
				return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
			case "powershell":
				return rootCmd.GenPowerShellCompletionWithDesc(cmd.OutOrStdout())
			}
			return nil
		},
	}
}
