package commands

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/docket/pkg/cobrax/topics"
)

//go:embed docs/*.md
var topicsFS embed.FS

func newTopicsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "topics [TOPIC]",
		Short: MsgTopicsShort,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			color := colorEnabled(cfg.Output.Color)

			var renderer topics.Renderer = &topics.PlainRenderer{}
			if color {
				renderer = topics.NewGlamourRenderer()
			}

			sub, err := fs.Sub(topicsFS, "docs")
			if err != nil {
				return err
			}
			m, err := topics.Load(sub, topics.Options{Renderer: renderer})
			if err != nil {
				return err
			}

			if len(args) == 0 {
				names := m.Names()
				if len(names) == 0 {
					fmt.Println(MsgNoTopics)
					return nil
				}
				fmt.Println(formatHeader(MsgAvailTopics, color))
				items := make([]pterm.BulletListItem, 0, len(names))
				for _, name := range names {
					items = append(items, pterm.BulletListItem{Level: 0, Text: name})
				}
				rendered, err := pterm.DefaultBulletList.WithItems(items).Srender()
				if err != nil {
					return err
				}
				fmt.Print(rendered)
				return nil
			}

			topic, ok := m.Get(args[0])
			if !ok {
				fmt.Printf(MsgUnknownTopic, args[0])
				return nil
			}
			fmt.Print(m.Render(topic))
			return nil
		},
	}
}
