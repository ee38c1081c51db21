package v1

import (
	"net/http"
	"strconv"

	"github.com/KirkDiggler/monster-codex/internal/errors"
	"github.com/KirkDiggler/monster-codex/internal/orchestrators/catalog"
)

// handleListDiscovered serves the archive of AI discoveries.
// Query: limit
func (h *Handler) handleListDiscovered(w http.ResponseWriter, r *http.Request) {
	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(w, r, errors.InvalidArgumentf("limit must be a number, got %q", raw))
			return
		}
		limit = n
	}

	out, err := h.catalog.ListDiscovered(r.Context(), &catalog.ListDiscoveredInput{Limit: limit})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	resp := &ListDiscoveredResponse{Discoveries: make([]DiscoveryResponse, 0, len(out.Discoveries))}
	for _, d := range out.Discoveries {
		resp.Discoveries = append(resp.Discoveries, DiscoveryResponse{
			Monster:      d.Monster,
			Query:        d.Query,
			DiscoveredAt: d.DiscoveredAt,
		})
	}
	respondJSON(w, http.StatusOK, resp)
}
