package preferences

import (
	"context"
	"sync"

	"github.com/KirkDiggler/monster-codex/internal/entities"
)

// InMemoryRepository implements Repository using in-memory storage. It is
// used when Redis is disabled.
type InMemoryRepository struct {
	mu     sync.RWMutex
	themes map[string]entities.Theme
}

// NewInMemory creates a new in-memory preference store
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		themes: make(map[string]entities.Theme),
	}
}

// GetTheme returns the stored theme or the system default
func (r *InMemoryRepository) GetTheme(_ context.Context, input *GetThemeInput) (*GetThemeOutput, error) {
	if err := validateGet(input); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	theme, ok := r.themes[input.ClientID]
	if !ok {
		return &GetThemeOutput{Theme: entities.ThemeSystem}, nil
	}
	return &GetThemeOutput{Theme: theme, Stored: true}, nil
}

// SetTheme stores a theme
func (r *InMemoryRepository) SetTheme(_ context.Context, input *SetThemeInput) (*SetThemeOutput, error) {
	if err := validateSet(input); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.themes[input.ClientID] = input.Theme
	return &SetThemeOutput{Theme: input.Theme}, nil
}
