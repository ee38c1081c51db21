// Package pagination computes the page-number strip, the range summary and
// the navigation state shown under the monster list.
package pagination

import "fmt"

// Layout selects how many page buttons fit
type Layout int

const (
	// Wide shows up to 7 buttons
	Wide Layout = iota
	// Narrow shows up to 3 buttons plus ellipses
	Narrow
)

// MaxVisible returns the button budget for the layout
func (l Layout) MaxVisible() int {
	if l == Narrow {
		return 3
	}
	return 7
}

// Item is one slot in the page strip: a page number, or an ellipsis when
// Ellipsis is set.
type Item struct {
	Page     int
	Ellipsis bool
}

// String renders the slot as shown to the user
func (i Item) String() string {
	if i.Ellipsis {
		return "..."
	}
	return fmt.Sprintf("%d", i.Page)
}

func page(n int) Item { return Item{Page: n} }

var ellipsis = Item{Ellipsis: true}

// TotalPages returns ceil(totalItems / perPage), or 0 when either is not positive
func TotalPages(totalItems, perPage int) int {
	if totalItems <= 0 || perPage <= 0 {
		return 0
	}
	return (totalItems + perPage - 1) / perPage
}

// Pages builds the page strip for current out of total pages. It returns nil
// when there is at most one page, in which case no control is shown.
func Pages(current, total int, layout Layout) []Item {
	if total <= 1 {
		return nil
	}

	if total <= layout.MaxVisible() {
		items := make([]Item, 0, total)
		for i := 1; i <= total; i++ {
			items = append(items, page(i))
		}
		return items
	}

	items := []Item{page(1)}

	if layout == Narrow {
		if current > 2 {
			items = append(items, ellipsis)
		}
		if current > 1 && current < total {
			items = append(items, page(current))
		}
		if current < total-1 {
			items = append(items, ellipsis)
		}
		return append(items, page(total))
	}

	switch {
	case current <= 3:
		for i := 2; i <= 4; i++ {
			items = append(items, page(i))
		}
		items = append(items, ellipsis, page(total))
	case current >= total-2:
		items = append(items, ellipsis)
		for i := total - 3; i <= total; i++ {
			items = append(items, page(i))
		}
	default:
		items = append(items,
			ellipsis,
			page(current-1), page(current), page(current+1),
			ellipsis,
			page(total),
		)
	}
	return items
}

// RangeSummary describes which slice of the result set is on screen
type RangeSummary struct {
	Total int `json:"total"`
	From  int `json:"from"`
	To    int `json:"to"`
}

// Summary computes the 1-based item range shown on page current
func Summary(current, perPage, totalItems int) RangeSummary {
	return RangeSummary{
		Total: totalItems,
		From:  min((current-1)*perPage+1, totalItems),
		To:    min(current*perPage, totalItems),
	}
}

// String renders the summary line, e.g. "全45件中 21-40件を表示"
func (r RangeSummary) String() string {
	return fmt.Sprintf("全%s件中 %s-%s件を表示", groupDigits(r.Total), groupDigits(r.From), groupDigits(r.To))
}

func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := n < 0
	if neg {
		s = s[1:]
	}
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	if neg {
		return "-" + s
	}
	return s
}

// State is the navigation position inside a page range
type State struct {
	Current int
	Total   int
}

// GoTo moves to p. Targets outside [1, Total] are ignored and the result
// reports whether the position changed.
func (s *State) GoTo(p int) bool {
	if p < 1 || p > s.Total || p == s.Current {
		return false
	}
	s.Current = p
	return true
}

// Next moves one page forward
func (s *State) Next() bool { return s.GoTo(s.Current + 1) }

// Prev moves one page back
func (s *State) Prev() bool { return s.GoTo(s.Current - 1) }

// First jumps to page 1
func (s *State) First() bool { return s.GoTo(1) }

// Last jumps to the final page
func (s *State) Last() bool { return s.GoTo(s.Total) }

// HasPrev reports whether the previous-page buttons are enabled
func (s *State) HasPrev() bool { return s.Current > 1 }

// HasNext reports whether the next-page buttons are enabled
func (s *State) HasNext() bool { return s.Current < s.Total }
