package commands

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/docket/pkg/extensions"
)

func newProvidersCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: MsgProvidersShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			enabled := make(map[string]bool, len(cfg.Providers.Enabled))
			for _, name := range cfg.Providers.Enabled {
				enabled[name] = true
			}

			color := colorEnabled(cfg.Output.Color)
			items := make([]pterm.BulletListItem, 0, len(extensions.FactoryNames()))
			for _, name := range extensions.FactoryNames() {
				state := MsgProviderOff
				if enabled[name] {
					state = MsgProviderOn
				}
				items = append(items, pterm.BulletListItem{
					Level: 0,
					Text:  formatBold(name, color) + " (" + state + ")",
				})
			}
			rendered, err := pterm.DefaultBulletList.WithItems(items).Srender()
			if err != nil {
				return err
			}
			fmt.Print(rendered)
			return nil
		},
	}
}
