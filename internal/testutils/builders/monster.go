// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/monster-codex/internal/entities"
)

// MonsterBuilder provides a fluent interface for building test Monster instances
type MonsterBuilder struct {
	monster *entities.Monster
}

// NewMonsterBuilder creates a new builder with minimal defaults
func NewMonsterBuilder() *MonsterBuilder {
	return &MonsterBuilder{
		monster: &entities.Monster{
			Name:        "テストモンスター",
			Species:     "不明",
			Elements:    []string{},
			ThreatLevel: 5,
		},
	}
}

// WithID sets the monster ID
func (b *MonsterBuilder) WithID(id string) *MonsterBuilder {
	b.monster.MonsterID = id
	return b
}

// WithName sets the name
func (b *MonsterBuilder) WithName(name string) *MonsterBuilder {
	b.monster.Name = name
	return b
}

// WithTitle sets the epithet
func (b *MonsterBuilder) WithTitle(title string) *MonsterBuilder {
	b.monster.Title = title
	return b
}

// WithSpecies sets the species
func (b *MonsterBuilder) WithSpecies(species string) *MonsterBuilder {
	b.monster.Species = species
	return b
}

// WithDescription sets the description
func (b *MonsterBuilder) WithDescription(description string) *MonsterBuilder {
	b.monster.Description = description
	return b
}

// WithElements replaces the element list
func (b *MonsterBuilder) WithElements(elements ...string) *MonsterBuilder {
	b.monster.Elements = append([]string{}, elements...)
	return b
}

// WithThreat sets the threat level
func (b *MonsterBuilder) WithThreat(level int) *MonsterBuilder {
	b.monster.ThreatLevel = level
	return b
}

// WithWeakness adds a weakness
func (b *MonsterBuilder) WithWeakness(element string, stars int) *MonsterBuilder {
	b.monster.Weaknesses = append(b.monster.Weaknesses, entities.Weakness{Element: element, Stars: stars})
	return b
}

// WithDrop adds a key drop
func (b *MonsterBuilder) WithDrop(name string, rarity int) *MonsterBuilder {
	b.monster.KeyDrops = append(b.monster.KeyDrops, entities.DropItem{Name: name, Rarity: rarity})
	return b
}

// Build returns the constructed monster
func (b *MonsterBuilder) Build() *entities.Monster {
	return b.monster
}
