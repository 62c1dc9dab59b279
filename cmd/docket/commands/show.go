package commands

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/arthur-debert/docket/pkg/help"
	"github.com/arthur-debert/docket/pkg/logging"
)

func newShowCmd(configPath *string) *cobra.Command {
	var bundles []string

	cmd := &cobra.Command{
		Use:   "show TOPIC...",
		Short: MsgShowShort,
		Long: `Show resolves documentation for each topic through the registry and
its extension providers, and prints it as console text. Topics come
from the YAML bundles in the configured docs directories plus any
bundle passed with --bundle.`,
		Args: cobra.MinimumNArgs(1),
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

			subjects := make([]interface{}, len(args))
			for i, topic := range args {
				subjects[i] = topic
			}
			h.Invoke(subjects...)
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&bundles, "bundle", "b", nil,
		"Additional YAML documentation bundle to load (repeatable)")
	return cmd
}

// loadBundleDir loads every YAML bundle in dir, in name order. A
// missing directory is not an error; configured dirs may not exist yet.
func loadBundleDir(h *help.Helper, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			log := logging.GetLogger("commands")
			log.Debug().Str("dir", dir).Msg("Docs directory absent, skipping")
			return nil
		}
		return err
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext == ".yaml" || ext == ".yml" {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	for _, path := range paths {
		if err := h.LoadBundleFile(path); err != nil {
			return err
		}
	}
	return nil
}
