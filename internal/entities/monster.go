package entities

// Monster is the display record shown in the list and detail views
type Monster struct {
	Name        string     `json:"name"`
	Title       string     `json:"title"`
	Species     string     `json:"species"`
	Description string     `json:"description"`
	Elements    []string   `json:"elements"`
	Ailments    []string   `json:"ailments"`
	Weaknesses  []Weakness `json:"weaknesses"`
	Habitats    []string   `json:"habitats"`
	ThreatLevel int        `json:"threatLevel"`
	Size        SizeRange  `json:"size"`
	KeyDrops    []DropItem `json:"keyDrops"`
	Tips        []string   `json:"tips"`
	ImageURL    string     `json:"imageUrl,omitempty"`
	MonsterID   string     `json:"monsterId,omitempty"`
	BGM         []BGM      `json:"bgm,omitempty"`
	Ranking     []Ranking  `json:"ranking,omitempty"`
	Titles      []string   `json:"titles,omitempty"`
}

// Weakness is an element the monster is vulnerable to, rated 0-3 stars
type Weakness struct {
	Element string `json:"element"`
	Stars   int    `json:"stars"`
}

// DropItem is a notable material drop, rarity 0-10
type DropItem struct {
	Name   string `json:"name"`
	Rarity int    `json:"rarity"`
}

// SizeRange is the observed size span in centimetres
type SizeRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// BGM is a theme track associated with the monster
type BGM struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Ranking is a popularity poll placement
type Ranking struct {
	Ranking  string `json:"ranking"`
	VoteYear string `json:"voteYear"`
}

// Rating bounds
const (
	MaxStars       = 3
	MaxRarity      = 10
	MinThreatLevel = 1
	MaxThreatLevel = 10
)

// Key returns the identifier used in detail routes: the upstream monster id
// when present, otherwise the name.
func (m *Monster) Key() string {
	if m.MonsterID != "" {
		return m.MonsterID
	}
	return m.Name
}

// HasElement reports whether element is one of the monster's elements
func (m *Monster) HasElement(element string) bool {
	for _, e := range m.Elements {
		if e == element {
			return true
		}
	}
	return false
}

// ClampRatings forces weakness stars, drop rarity and threat level into their
// valid ranges. Generated records are not trusted to respect them.
func (m *Monster) ClampRatings() {
	for i := range m.Weaknesses {
		m.Weaknesses[i].Stars = clamp(m.Weaknesses[i].Stars, 0, MaxStars)
	}
	for i := range m.KeyDrops {
		m.KeyDrops[i].Rarity = clamp(m.KeyDrops[i].Rarity, 0, MaxRarity)
	}
	m.ThreatLevel = clamp(m.ThreatLevel, MinThreatLevel, MaxThreatLevel)
}

// Clone returns a deep copy so cached records can be handed out safely
func (m *Monster) Clone() *Monster {
	if m == nil {
		return nil
	}
	c := *m
	c.Elements = cloneSlice(m.Elements)
	c.Ailments = cloneSlice(m.Ailments)
	c.Weaknesses = cloneSlice(m.Weaknesses)
	c.Habitats = cloneSlice(m.Habitats)
	c.KeyDrops = cloneSlice(m.KeyDrops)
	c.Tips = cloneSlice(m.Tips)
	c.BGM = cloneSlice(m.BGM)
	c.Ranking = cloneSlice(m.Ranking)
	c.Titles = cloneSlice(m.Titles)
	return &c
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
