package client

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get [monster-id]",
	Short: "Get details for a monster",
	Long:  `Get the detail view for a monster by its id, or by name for records without one.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runGet,
}

func runGet(_ *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Requesting monster '%s' from %s...", args[0], serverAddr)

	resp, raw, err := newClient().GetMonster(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to get monster: %w", err)
	}
	if jsonOutput {
		return printJSON(raw)
	}
	printMonster(resp)
	return nil
}
