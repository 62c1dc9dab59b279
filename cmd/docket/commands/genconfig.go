package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/docket/pkg/config"
)

func newGenconfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genconfig",
		Short: MsgGenconfigShort,
		Long: `Genconfig prints the default configuration as TOML, ready to be
saved as $XDG_CONFIG_HOME/docket/docket.toml and edited.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.Default().TOML()
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
}
