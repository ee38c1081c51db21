package v1

import (
	"net/http"

	"github.com/KirkDiggler/monster-codex/internal/entities"
	"github.com/KirkDiggler/monster-codex/internal/errors"
	"github.com/KirkDiggler/monster-codex/internal/repositories/preferences"
)

func (h *Handler) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	out, err := h.preferences.GetTheme(r.Context(), &preferences.GetThemeInput{
		ClientID: r.Header.Get(ClientIDHeader),
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, &ThemeResponse{Theme: out.Theme, Stored: out.Stored})
}

// handleSetTheme stores the theme. Unlike reads, unknown values are rejected
// rather than coerced to system.
func (h *Handler) handleSetTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	theme := entities.Theme(req.Theme)
	if !theme.Valid() {
		h.respondError(w, r, errors.InvalidArgumentf("unknown theme %q", req.Theme))
		return
	}

	out, err := h.preferences.SetTheme(r.Context(), &preferences.SetThemeInput{
		ClientID: r.Header.Get(ClientIDHeader),
		Theme:    theme,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, &ThemeResponse{Theme: out.Theme, Stored: true})
}
