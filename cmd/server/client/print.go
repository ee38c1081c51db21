package client

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/monster-codex/internal/entities"
	v1 "github.com/KirkDiggler/monster-codex/internal/handlers/http/v1"
)

func printMonster(resp *v1.MonsterResponse) {
	m := resp.Monster
	if m == nil {
		return
	}

	fmt.Printf("🐉 %s", m.Name)
	if m.MonsterID != "" {
		fmt.Printf(" (ID: %s)", m.MonsterID)
	}
	fmt.Printf(" [%s]\n", resp.Source)
	if m.Title != "" {
		fmt.Printf("   %s\n", m.Title)
	}

	if m.Description != "" {
		fmt.Printf("\nDescription:\n%s\n", m.Description)
	}

	fmt.Printf("\nBasic Info:\n")
	if m.Species != "" {
		fmt.Printf("  Species: %s\n", m.Species)
	}
	fmt.Printf("  Threat: %d\n", m.ThreatLevel)
	if m.Size.Max > 0 {
		fmt.Printf("  Size: %d-%d cm\n", m.Size.Min, m.Size.Max)
	}
	fmt.Printf("  Elements: %s\n", strings.Join(entities.DisplayElements(m.Elements), ", "))
	if len(m.Ailments) > 0 {
		fmt.Printf("  Ailments: %s\n", strings.Join(m.Ailments, ", "))
	}
	if len(m.Habitats) > 0 {
		fmt.Printf("  Habitats: %s\n", strings.Join(m.Habitats, ", "))
	}

	if len(m.Weaknesses) > 0 {
		fmt.Printf("\nWeaknesses:\n")
		for _, w := range m.Weaknesses {
			fmt.Printf("  %s %s\n", w.Element, strings.Repeat("★", w.Stars))
		}
	}

	if len(m.KeyDrops) > 0 {
		fmt.Printf("\nKey Drops:\n")
		for _, d := range m.KeyDrops {
			fmt.Printf("  - %s (rarity %d)\n", d.Name, d.Rarity)
		}
	}

	if len(m.Tips) > 0 {
		fmt.Printf("\nTips:\n")
		for _, t := range m.Tips {
			fmt.Printf("  • %s\n", t)
		}
	}
}
