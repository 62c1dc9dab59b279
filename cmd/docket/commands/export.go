package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCmd(configPath *string) *cobra.Command {
	var bundles []string

	cmd := &cobra.Command{
		Use:   "export OUTPUT.html TOPIC...",
		Short: MsgExportShort,
		Long: `Export renders a recursive documentation tree for each topic and
writes them as one HTML document. The starting heading level comes
from output.headings in the configuration.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			h, err := buildHelper(cfg)
			if err != nil {
				return err
			}
			for _, path := range bundles {
				if err := h.LoadBundleFile(path); err != nil {
					return err
				}
			}

			out := args[0]
			topics := args[1:]
			subjects := make([]interface{}, len(topics))
			for i, topic := range topics {
				subjects[i] = topic
			}

			if err := h.ExportHTMLFrom(out, cfg.Output.Headings, subjects...); err != nil {
				return err
			}
			fmt.Printf(MsgExportedFormat, out, len(topics))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&bundles, "bundle", "b", nil,
		"Additional YAML documentation bundle to load (repeatable)")
	return cmd
}
