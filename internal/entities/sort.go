package entities

import "strings"

// SortOption orders the visible list
type SortOption string

// Sort options
const (
	SortDefault    SortOption = "default"
	SortThreatDesc SortOption = "threat_desc"
	SortThreatAsc  SortOption = "threat_asc"
	SortNameAsc    SortOption = "name_asc"
)

// SortOptions lists every option in menu order
var SortOptions = []SortOption{SortDefault, SortThreatDesc, SortThreatAsc, SortNameAsc}

// Label returns the Japanese menu label
func (s SortOption) Label() string {
	switch s {
	case SortThreatDesc:
		return "危険度 (高)"
	case SortThreatAsc:
		return "危険度 (低)"
	case SortNameAsc:
		return "名前順"
	default:
		return "標準"
	}
}

// ParseSortOption maps a query value to a SortOption. Empty input is the
// default order; anything unknown reports false.
func ParseSortOption(s string) (SortOption, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return SortDefault, true
	}
	for _, opt := range SortOptions {
		if string(opt) == s {
			return opt, true
		}
	}
	return SortDefault, false
}
