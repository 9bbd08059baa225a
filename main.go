package main

import (
	"os"

	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "ledseq",
		Short:        "Play authored light sequences on an ledrx device",
		SilenceUsage: true,
	}
	root.PersistentFlags().String("config", "config.yaml", "YAML config file.")
	root.AddCommand(runCmd())
	root.AddCommand(inspectCmd())
	return root
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
