package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "marketd",
	Short: "Freelancer marketplace backend",
	Long: `marketd serves the freelancer marketplace HTTP API: accounts and
sessions, tasks, offers and direct messages.

Configuration comes from environment variables, optionally layered over a
TOML file named by CONFIG_FILE.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
