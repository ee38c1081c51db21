// Package preferences stores per-client display preferences
package preferences

//go:generate mockgen -destination=mock/mock_repository.go -package=preferencesmock github.com/KirkDiggler/monster-codex/internal/repositories/preferences Repository

import (
	"context"

	"github.com/KirkDiggler/monster-codex/internal/entities"
	"github.com/KirkDiggler/monster-codex/internal/errors"
)

// MaxClientIDLength bounds client identifiers, in runes
const MaxClientIDLength = 128

// Repository defines the storage interface for preferences
type Repository interface {
	// GetTheme returns the stored theme. A client without a stored theme
	// gets entities.ThemeSystem with Stored unset.
	// Returns errors.InvalidArgument for a missing client id
	GetTheme(ctx context.Context, input *GetThemeInput) (*GetThemeOutput, error)

	// SetTheme stores the theme without expiry
	// Returns errors.InvalidArgument for a missing client id or unknown theme
	SetTheme(ctx context.Context, input *SetThemeInput) (*SetThemeOutput, error)
}

// GetThemeInput defines the request for reading a theme
type GetThemeInput struct {
	ClientID string
}

// GetThemeOutput defines the response for reading a theme
type GetThemeOutput struct {
	Theme  entities.Theme
	Stored bool
}

// SetThemeInput defines the request for storing a theme
type SetThemeInput struct {
	ClientID string
	Theme    entities.Theme
}

// SetThemeOutput defines the response for storing a theme
type SetThemeOutput struct {
	Theme entities.Theme
}

func validateClientID(clientID string, vb *errors.ValidationBuilder) {
	errors.ValidateRequired("client_id", clientID, vb)
	errors.ValidateMaxLength("client_id", clientID, MaxClientIDLength, vb)
}

func validateGet(input *GetThemeInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	validateClientID(input.ClientID, vb)
	return vb.Build()
}

func validateSet(input *SetThemeInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	validateClientID(input.ClientID, vb)
	if !input.Theme.Valid() {
		vb.InvalidField("theme", "must be one of system, light, dark")
	}
	return vb.Build()
}
