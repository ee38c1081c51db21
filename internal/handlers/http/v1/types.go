package v1

import (
	"time"

	"github.com/KirkDiggler/monster-codex/internal/entities"
	"github.com/KirkDiggler/monster-codex/internal/orchestrators/catalog"
	"github.com/KirkDiggler/monster-codex/internal/pkg/pagination"
)

// ListMonstersResponse is the list view payload
type ListMonstersResponse struct {
	Monsters   []*entities.Monster `json:"monsters"`
	Page       int                 `json:"page"`
	TotalPages int                 `json:"totalPages"`
	TotalItems int                 `json:"totalItems"`
	Mode       catalog.Mode        `json:"mode"`
	Truncated  bool                `json:"truncated"`
	Summary    SummaryResponse     `json:"summary"`
	Controls   []ControlItem       `json:"controls"`
}

// SummaryResponse is the range line under the list
type SummaryResponse struct {
	Total int    `json:"total"`
	From  int    `json:"from"`
	To    int    `json:"to"`
	Text  string `json:"text"`
}

// ControlItem is one slot of the page strip
type ControlItem struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// MonsterResponse is the detail and search payload
type MonsterResponse struct {
	Monster *entities.Monster `json:"monster"`
	Source  catalog.Source    `json:"source"`
}

// DiscoveryResponse is one archived AI discovery
type DiscoveryResponse struct {
	Monster      *entities.Monster `json:"monster"`
	Query        string            `json:"query"`
	DiscoveredAt time.Time         `json:"discoveredAt"`
}

// ListDiscoveredResponse lists archived discoveries, newest first
type ListDiscoveredResponse struct {
	Discoveries []DiscoveryResponse `json:"discoveries"`
}

// SearchRequest is the header search submit
type SearchRequest struct {
	Query string `json:"query"`
}

// AskRequest is the AI dialog submit
type AskRequest struct {
	Question string `json:"question"`
}

// ThemeRequest sets the theme
type ThemeRequest struct {
	Theme string `json:"theme"`
}

// ThemeResponse reports the theme
type ThemeResponse struct {
	Theme  entities.Theme `json:"theme"`
	Stored bool           `json:"stored"`
}

// ErrorResponse carries a user-facing message
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func toListResponse(out *catalog.ListMonstersOutput) *ListMonstersResponse {
	monsters := out.Monsters
	if monsters == nil {
		monsters = []*entities.Monster{}
	}
	return &ListMonstersResponse{
		Monsters:   monsters,
		Page:       out.Page,
		TotalPages: out.TotalPages,
		TotalItems: out.TotalItems,
		Mode:       out.Mode,
		Truncated:  out.Truncated,
		Summary:    toSummary(out.Summary),
		Controls:   toControls(out.Controls),
	}
}

func toSummary(r pagination.RangeSummary) SummaryResponse {
	return SummaryResponse{Total: r.Total, From: r.From, To: r.To, Text: r.String()}
}

func toControls(items []pagination.Item) []ControlItem {
	out := make([]ControlItem, 0, len(items))
	for _, item := range items {
		out = append(out, ControlItem{Page: item.Page, Ellipsis: item.Ellipsis})
	}
	return out
}
