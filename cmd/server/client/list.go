package client

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"
)

var (
	listPage    int
	listQuery   string
	listElement string
	listSort    string
	listNarrow  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List one page of monsters",
	Long:  `List one page of the catalog, optionally filtered by text, element and sort order.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&listPage, "page", 1, "page number")
	listCmd.Flags().StringVarP(&listQuery, "query", "q", "", "filter by name, species or description")
	listCmd.Flags().StringVar(&listElement, "element", "", "element filter (火, 水, ..., all, none)")
	listCmd.Flags().StringVar(&listSort, "sort", "", "sort order: default, threat_desc, threat_asc, name_asc")
	listCmd.Flags().BoolVar(&listNarrow, "narrow", false, "request the narrow page strip")
}

func runList(_ *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	log.Printf("Requesting page %d from %s...", listPage, serverAddr)

	resp, raw, err := newClient().ListMonsters(ctx, ListParams{
		Page:    listPage,
		Query:   listQuery,
		Element: listElement,
		Sort:    listSort,
		Narrow:  listNarrow,
	})
	if err != nil {
		return fmt.Errorf("failed to list monsters: %w", err)
	}
	if jsonOutput {
		return printJSON(raw)
	}

	if len(resp.Monsters) == 0 {
		fmt.Println("No monsters match.")
	}
	for _, m := range resp.Monsters {
		fmt.Printf("🐉 %s", m.Name)
		if m.MonsterID != "" {
			fmt.Printf(" (ID: %s)", m.MonsterID)
		}
		fmt.Println()
		if m.Species != "" {
			fmt.Printf("   Species: %s\n", m.Species)
		}
		if len(m.Elements) > 0 {
			fmt.Printf("   Elements: %s\n", strings.Join(m.Elements, ", "))
		}
		fmt.Printf("   Threat: %d\n", m.ThreatLevel)
	}

	fmt.Println()
	if resp.TotalItems > 0 {
		fmt.Println(resp.Summary.Text)
	}
	if len(resp.Controls) > 0 {
		slots := make([]string, 0, len(resp.Controls))
		for _, c := range resp.Controls {
			switch {
			case c.Ellipsis:
				slots = append(slots, "...")
			case c.Page == resp.Page:
				slots = append(slots, fmt.Sprintf("[%d]", c.Page))
			default:
				slots = append(slots, fmt.Sprint(c.Page))
			}
		}
		fmt.Printf("Pages: %s\n", strings.Join(slots, " "))
	}
	if resp.Truncated {
		fmt.Println("Note: filtering only covers the first batch of the catalog.")
	}
	return nil
}
