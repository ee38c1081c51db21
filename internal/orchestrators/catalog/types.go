package catalog

import (
	"time"

	"github.com/KirkDiggler/monster-codex/internal/entities"
	"github.com/KirkDiggler/monster-codex/internal/pkg/pagination"
)

// Source says where a single monster came from
type Source string

// Sources
const (
	SourceCatalog Source = "catalog"
	SourceArchive Source = "archive"
	SourceAI      Source = "ai"
)

// ListMonstersInput defines the request for one list page
type ListMonstersInput struct {
	Page     int
	Criteria Criteria
	// Layout picks the page strip shape returned in Controls
	Layout pagination.Layout
}

// ListMonstersOutput defines the visible list page
type ListMonstersOutput struct {
	Monsters   []*entities.Monster
	Page       int
	TotalPages int
	TotalItems int
	Mode       Mode
	Truncated  bool
	Summary    pagination.RangeSummary
	Controls   []pagination.Item
}

// GetMonsterInput defines the request for the detail view
type GetMonsterInput struct {
	// ID is a monster id or, for records without one, the name
	ID string
}

// GetMonsterOutput defines the detail view
type GetMonsterOutput struct {
	Monster *entities.Monster
	Source  Source
}

// SearchMonsterInput defines the header search submit
type SearchMonsterInput struct {
	Query string
}

// SearchMonsterOutput defines the search result
type SearchMonsterOutput struct {
	Monster *entities.Monster
	Source  Source
}

// AskMonsterInput defines a question from the AI dialog
type AskMonsterInput struct {
	Question string
}

// AskMonsterOutput defines the AI dialog answer
type AskMonsterOutput struct {
	Monster *entities.Monster
}

// MaxDiscoveredLimit caps one archive listing
const MaxDiscoveredLimit = 200

// ListDiscoveredInput defines the request for the archive listing.
// Zero Limit uses the archive default.
type ListDiscoveredInput struct {
	Limit int
}

// Discovery is one monster found through the AI lookup
type Discovery struct {
	Monster      *entities.Monster
	Query        string
	DiscoveredAt time.Time
}

// ListDiscoveredOutput defines the archive listing
type ListDiscoveredOutput struct {
	Discoveries []*Discovery
}
