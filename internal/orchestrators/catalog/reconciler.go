package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/KirkDiggler/monster-codex/internal/clients/mhapi"
	"github.com/KirkDiggler/monster-codex/internal/entities"
	"github.com/KirkDiggler/monster-codex/internal/pkg/pagination"
)

const (
	// PageSize is the number of monsters on one list page
	PageSize = 20
	// BatchSize is how many monsters are fetched when filtering client side.
	// Anything past the batch is invisible to filtered views.
	BatchSize = 200
	// PlaceholderTotal stands in for the upstream total while it is not
	// larger than a single page
	PlaceholderTotal = 200
	// MaxPage bounds requested pages so upstream offsets stay in range
	MaxPage = 50000
)

// Mode says where pagination happened
type Mode string

const (
	// ModeServer means the upstream returned exactly the visible page
	ModeServer Mode = "server"
	// ModeClient means a batch was filtered, sorted and sliced locally
	ModeClient Mode = "client"
)

// Criteria is the filter bar and search box state
type Criteria struct {
	Search  string
	Element string
	Sort    entities.SortOption
}

// Active reports whether any filter, search or non-default sort is applied
func (c Criteria) Active() bool {
	c = c.withDefaults()
	return c.Search != "" || c.Element != entities.ElementAll || c.Sort != entities.SortDefault
}

func (c Criteria) withDefaults() Criteria {
	if c.Element == "" {
		c.Element = entities.ElementAll
	}
	if c.Sort == "" {
		c.Sort = entities.SortDefault
	}
	return c
}

// FetchPlan returns the upstream window needed to render page for c.
// Pages are clamped into [1, MaxPage].
func FetchPlan(c Criteria, page int) *mhapi.ListMonstersInput {
	if c.Active() {
		return &mhapi.ListMonstersInput{Limit: BatchSize, Offset: 0}
	}
	return &mhapi.ListMonstersInput{Limit: PageSize, Offset: (clampPage(page) - 1) * PageSize}
}

func clampPage(page int) int {
	return min(max(page, 1), MaxPage)
}

// Matches reports whether m passes the search text and element filter.
// Search is a case-sensitive substring test on name, species and description.
func Matches(m *entities.Monster, search, element string) bool {
	if m == nil {
		return false
	}
	if search != "" &&
		!strings.Contains(m.Name, search) &&
		!strings.Contains(m.Species, search) &&
		!strings.Contains(m.Description, search) {
		return false
	}

	switch element {
	case "", entities.ElementAll:
		return true
	case entities.ElementNone:
		return len(m.Elements) == 0
	default:
		return m.HasElement(element)
	}
}

// FilterAndSort returns the monsters matching c in c.Sort order. The input
// slice is left untouched and the default sort keeps fetch order.
func FilterAndSort(monsters []*entities.Monster, c Criteria) []*entities.Monster {
	c = c.withDefaults()

	out := make([]*entities.Monster, 0, len(monsters))
	for _, m := range monsters {
		if Matches(m, c.Search, c.Element) {
			out = append(out, m)
		}
	}

	switch c.Sort {
	case entities.SortThreatDesc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ThreatLevel > out[j].ThreatLevel })
	case entities.SortThreatAsc:
		sort.SliceStable(out, func(i, j int) bool { return out[i].ThreatLevel < out[j].ThreatLevel })
	case entities.SortNameAsc:
		col := collate.New(language.Japanese)
		sort.SliceStable(out, func(i, j int) bool { return col.CompareString(out[i].Name, out[j].Name) < 0 })
	}
	return out
}

// ReconcileInput is one fetched window plus the view state it is rendered for
type ReconcileInput struct {
	// Monsters is the converted upstream window, as planned by FetchPlan
	Monsters      []*entities.Monster
	UpstreamTotal int
	Criteria      Criteria
	Page          int
}

// ReconcileOutput is the visible page
type ReconcileOutput struct {
	Monsters   []*entities.Monster
	Page       int
	TotalPages int
	TotalItems int
	Mode       Mode
	// Truncated is set in client mode when the upstream holds more monsters
	// than the batch that was filtered
	Truncated bool
}

// Reconcile produces the visible page. Page is clamped into [1, TotalPages].
// In server mode a clamped page means Monsters was fetched for a different
// page and the caller has to fetch again.
func Reconcile(in ReconcileInput) ReconcileOutput {
	page := max(in.Page, 1)

	if !in.Criteria.Active() {
		total := in.UpstreamTotal
		if total <= PageSize {
			total = PlaceholderTotal
		}
		totalPages := pagination.TotalPages(total, PageSize)
		return ReconcileOutput{
			Monsters:   in.Monsters,
			Page:       min(page, totalPages),
			TotalPages: totalPages,
			TotalItems: total,
			Mode:       ModeServer,
		}
	}

	filtered := FilterAndSort(in.Monsters, in.Criteria)
	total := len(filtered)
	totalPages := pagination.TotalPages(total, PageSize)
	page = min(page, max(totalPages, 1))

	start := min((page-1)*PageSize, total)
	end := min(page*PageSize, total)

	return ReconcileOutput{
		Monsters:   filtered[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalItems: total,
		Mode:       ModeClient,
		Truncated:  in.UpstreamTotal > BatchSize,
	}
}
