package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme [system|light|dark]",
	Short: "Show or set the stored theme",
	Long:  `Without an argument, print the theme stored for --client-id. With one, store it.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTheme,
}

func runTheme(_ *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c := newClient()
	if len(args) == 0 {
		resp, raw, err := c.GetTheme(ctx)
		if err != nil {
			return fmt.Errorf("failed to get theme: %w", err)
		}
		if jsonOutput {
			return printJSON(raw)
		}
		stored := "default"
		if resp.Stored {
			stored = "stored"
		}
		fmt.Printf("Theme: %s (%s)\n", resp.Theme, stored)
		return nil
	}

	resp, raw, err := c.SetTheme(ctx, args[0])
	if err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}
	if jsonOutput {
		return printJSON(raw)
	}
	fmt.Printf("Theme set to %s\n", resp.Theme)
	return nil
}
