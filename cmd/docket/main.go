package main

import (
	"os"

	"github.com/arthur-debert/docket/cmd/docket/commands"
)

func main() {
	rootCmd := commands.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
