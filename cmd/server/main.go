// Package main is the entry point for monster-codex
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/monster-codex/cmd/server/client"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "monster-codex",
	Short: "Monster catalog service and terminal viewer",
	Long: `monster-codex browses the public monster catalog. It serves a REST API with a
gRPC health endpoint, or runs as a terminal viewer with filtering, sorting and
AI-assisted lookup for monsters the catalog does not know.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/monster-codex/config.yaml)")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(client.ClientCmd)
}
