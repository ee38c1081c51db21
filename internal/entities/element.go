package entities

import "strings"

// Element labels as the upstream API spells them
const (
	ElementFire      = "火"
	ElementWater     = "水"
	ElementThunder   = "雷"
	ElementIce       = "氷"
	ElementDragon    = "龍"
	ElementBlast     = "爆破"
	ElementPoison    = "毒"
	ElementParalysis = "麻痺"
	ElementSleep     = "睡眠"
)

// Filter sentinels. ElementAll passes everything, ElementNone matches only
// monsters with no elements at all.
const (
	ElementAll  = "All"
	ElementNone = "無"
)

// Elements lists the element vocabulary in display order
var Elements = []string{
	ElementFire,
	ElementWater,
	ElementThunder,
	ElementIce,
	ElementDragon,
	ElementBlast,
	ElementPoison,
	ElementParalysis,
	ElementSleep,
}

// FilterElements is the element filter choice list: All, the vocabulary, then None
func FilterElements() []string {
	out := make([]string, 0, len(Elements)+2)
	out = append(out, ElementAll)
	out = append(out, Elements...)
	return append(out, ElementNone)
}

// ParseElementFilter normalizes a filter value. Empty input and "all" map to
// ElementAll, "none" maps to ElementNone. Any other value is kept as the
// element to test membership against, including labels outside Elements.
func ParseElementFilter(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "all":
		return ElementAll
	case "none":
		return ElementNone
	}
	return s
}

// DisplayElements returns the element labels to show for a monster's
// elements. Elementless monsters show ElementNone.
func DisplayElements(elements []string) []string {
	if len(elements) == 0 {
		return []string{ElementNone}
	}
	return elements
}
