package client

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search for a monster by name",
	Long:  `Search the catalog by name. Unknown names are looked up with the AI and archived.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func runSearch(_ *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Searching for '%s' on %s...", query, serverAddr)

	resp, raw, err := newClient().Search(ctx, query)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if jsonOutput {
		return printJSON(raw)
	}
	printMonster(resp)
	return nil
}
