package client

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Describe a monster and let the AI name it",
	Long:  `Ask the AI about a monster from a free-form description. The answer is archived.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func runAsk(_ *cobra.Command, args []string) error {
	question := strings.Join(args, " ")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Asking %s...", serverAddr)

	resp, raw, err := newClient().Ask(ctx, question)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}
	if jsonOutput {
		return printJSON(raw)
	}
	printMonster(resp)
	return nil
}
