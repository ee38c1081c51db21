// Package discovered persists monsters found through AI lookup so detail
// routes can resolve them after the lookup that produced them.
package discovered

//go:generate mockgen -destination=mock/mock_repository.go -package=discoveredmock github.com/KirkDiggler/monster-codex/internal/repositories/discovered Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/monster-codex/internal/entities"
	"github.com/KirkDiggler/monster-codex/internal/errors"
)

// DefaultListLimit caps List when no limit is given
const DefaultListLimit = 50

// Repository defines the storage interface for discovered monsters
type Repository interface {
	// Save stores a monster. An existing entry with the same id, or with the
	// same name, is replaced.
	// Returns errors.InvalidArgument when the monster has no id or name
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Get retrieves a monster by id, falling back to an exact name match
	// Returns errors.NotFound when neither matches
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// List returns the most recent discoveries first
	List(ctx context.Context, input *ListInput) (*ListOutput, error)
}

// Entry is one archived discovery
type Entry struct {
	Monster      *entities.Monster
	Query        string
	DiscoveredAt time.Time
}

// SaveInput defines the request for saving a discovery
type SaveInput struct {
	Monster *entities.Monster
	// Query is the text the user asked with
	Query string
}

// SaveOutput defines the response for saving a discovery
type SaveOutput struct {
	Entry *Entry
}

// GetInput defines the request for retrieving a discovery
type GetInput struct {
	// Key is a monster id or name
	Key string
}

// GetOutput defines the response for retrieving a discovery
type GetOutput struct {
	Entry *Entry
}

// ListInput defines the request for listing discoveries
type ListInput struct {
	Limit int
}

// ListOutput defines the response for listing discoveries
type ListOutput struct {
	Entries []*Entry
}

func validateSave(input *SaveInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	if input.Monster == nil {
		return errors.InvalidArgument("monster is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("monster_id", input.Monster.MonsterID, vb)
	errors.ValidateRequired("name", input.Monster.Name, vb)
	return vb.Build()
}

func validateGet(input *GetInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	if input.Key == "" {
		return errors.InvalidArgument("key is required")
	}
	return nil
}

func listLimit(input *ListInput) int {
	if input == nil || input.Limit <= 0 {
		return DefaultListLimit
	}
	return input.Limit
}

func notFound(key string) error {
	return errors.NotFoundf("discovered monster %q not found", key).WithMeta("key", key)
}
