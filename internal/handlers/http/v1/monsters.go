package v1

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/KirkDiggler/monster-codex/internal/entities"
	"github.com/KirkDiggler/monster-codex/internal/errors"
	"github.com/KirkDiggler/monster-codex/internal/orchestrators/catalog"
	"github.com/KirkDiggler/monster-codex/internal/pkg/pagination"
)

// handleListMonsters serves the list view.
// Query: page, q, element, sort, layout (wide|narrow)
func (h *Handler) handleListMonsters(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := 1
	if raw := q.Get("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(w, r, errors.InvalidArgumentf("page must be a number, got %q", raw))
			return
		}
		page = n
	}

	layout := pagination.Wide
	if q.Get("layout") == "narrow" {
		layout = pagination.Narrow
	}

	out, err := h.catalog.ListMonsters(r.Context(), &catalog.ListMonstersInput{
		Page: page,
		Criteria: catalog.Criteria{
			Search:  q.Get("q"),
			Element: q.Get("element"),
			Sort:    entities.SortOption(q.Get("sort")),
		},
		Layout: layout,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, toListResponse(out))
}

// handleGetMonster serves the detail view for an id or a name
func (h *Handler) handleGetMonster(w http.ResponseWriter, r *http.Request) {
	id, err := url.PathUnescape(chi.URLParam(r, "monsterID"))
	if err != nil {
		h.respondError(w, r, errors.InvalidArgument("malformed monster id"))
		return
	}

	out, err := h.catalog.GetMonster(r.Context(), &catalog.GetMonsterInput{ID: id})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, &MonsterResponse{Monster: out.Monster, Source: out.Source})
}

func (h *Handler) handleSearchMonster(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	out, err := h.catalog.SearchMonster(r.Context(), &catalog.SearchMonsterInput{Query: req.Query})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, &MonsterResponse{Monster: out.Monster, Source: out.Source})
}

func (h *Handler) handleAskMonster(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.respondError(w, r, err)
		return
	}

	out, err := h.catalog.AskMonster(r.Context(), &catalog.AskMonsterInput{Question: req.Question})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, &MonsterResponse{Monster: out.Monster, Source: catalog.SourceAI})
}
