package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var discoveredLimit int

var discoveredCmd = &cobra.Command{
	Use:   "discovered",
	Short: "List monsters found through the AI",
	Long:  `List the archive of monsters the AI lookup has found, newest first.`,
	Args:  cobra.NoArgs,
	RunE:  runDiscovered,
}

func init() {
	discoveredCmd.Flags().IntVar(&discoveredLimit, "limit", 0, "maximum entries to show (server default when 0)")
}

func runDiscovered(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Listing discovered monsters on %s...", serverAddr)

	resp, raw, err := newClient().ListDiscovered(ctx, discoveredLimit)
	if err != nil {
		return fmt.Errorf("failed to list discovered monsters: %w", err)
	}
	if jsonOutput {
		return printJSON(raw)
	}

	if len(resp.Discoveries) == 0 {
		fmt.Println("No monsters discovered yet")
		return nil
	}
	fmt.Printf("🔎 %d discovered\n\n", len(resp.Discoveries))
	for _, d := range resp.Discoveries {
		if d.Monster == nil {
			continue
		}
		fmt.Printf("  %-12s %s", d.Monster.MonsterID, d.Monster.Name)
		if d.Query != "" {
			fmt.Printf("  (asked: %s)", d.Query)
		}
		fmt.Printf("  %s\n", d.DiscoveredAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}
