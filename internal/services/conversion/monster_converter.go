// Package conversion turns upstream catalog records into display monsters.
package conversion

import (
	"github.com/KirkDiggler/monster-codex/internal/clients/mhapi"
	"github.com/KirkDiggler/monster-codex/internal/entities"
)

// Defaults for fields the upstream catalog does not carry
const (
	DefaultTitle       = "未知のモンスター"
	DefaultSpecies     = "不明"
	DefaultThreatLevel = 5
	DefaultSizeMin     = 1000
	DefaultSizeMax     = 2000

	descriptionSuffix = "として知られるモンスター。"

	primaryWeaknessStars   = 3
	secondaryWeaknessStars = 2
)

// ConvertMonster maps one upstream record to a Monster. Records without a
// name cannot be shown or routed to and yield nil.
func ConvertMonster(raw *mhapi.RawMonster) *entities.Monster {
	if raw == nil || raw.Name == "" {
		return nil
	}

	title := raw.AnotherName
	if title == "" {
		title = DefaultTitle
	}
	species := raw.Category
	if species == "" {
		species = DefaultSpecies
	}

	elements := []string{}
	if raw.Element != "" {
		elements = append(elements, raw.Element)
	}

	habitats := []string{}
	if raw.Location != nil {
		habitats = append(habitats, raw.Location...)
	}

	m := &entities.Monster{
		Name:        raw.Name,
		Title:       title,
		Species:     species,
		Description: raw.AnotherName + descriptionSuffix,
		Elements:    elements,
		Ailments:    []string{},
		Weaknesses:  convertWeaknesses(raw),
		Habitats:    habitats,
		ThreatLevel: DefaultThreatLevel,
		Size:        entities.SizeRange{Min: DefaultSizeMin, Max: DefaultSizeMax},
		KeyDrops:    []entities.DropItem{},
		Tips:        []string{},
		ImageURL:    raw.ImageURL,
		MonsterID:   raw.MonsterID,
		Titles:      []string{},
	}

	if raw.Title != nil {
		m.Titles = append(m.Titles, raw.Title...)
	}

	if raw.BGM != nil {
		m.BGM = make([]entities.BGM, len(raw.BGM))
		for i, b := range raw.BGM {
			m.BGM[i] = entities.BGM{Name: b.Name, URL: b.URL}
		}
	}

	if raw.Ranking != nil {
		m.Ranking = make([]entities.Ranking, len(raw.Ranking))
		for i, r := range raw.Ranking {
			m.Ranking[i] = entities.Ranking{Ranking: r.Ranking, VoteYear: r.VoteYear}
		}
	}

	return m
}

func convertWeaknesses(raw *mhapi.RawMonster) []entities.Weakness {
	weaknesses := []entities.Weakness{}
	if raw.FirstWeakElement != "" {
		weaknesses = append(weaknesses, entities.Weakness{
			Element: raw.FirstWeakElement,
			Stars:   primaryWeaknessStars,
		})
	}
	if raw.SecondWeakElement != "" && raw.SecondWeakElement != raw.FirstWeakElement {
		weaknesses = append(weaknesses, entities.Weakness{
			Element: raw.SecondWeakElement,
			Stars:   secondaryWeaknessStars,
		})
	}
	return weaknesses
}

// ConvertMonsters converts a batch, keeping input order and dropping
// nameless records.
func ConvertMonsters(raws []*mhapi.RawMonster) []*entities.Monster {
	out := make([]*entities.Monster, 0, len(raws))
	for _, raw := range raws {
		if m := ConvertMonster(raw); m != nil {
			out = append(out, m)
		}
	}
	return out
}
