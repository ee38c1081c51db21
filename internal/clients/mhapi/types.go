package mhapi

import (
	"encoding/json"
)

// RawMonster is a monster record exactly as the upstream API returns it.
// Every field is optional.
type RawMonster struct {
	MonsterID         string       `json:"monster_id,omitempty"`
	Name              string       `json:"name,omitempty"`
	AnotherName       string       `json:"another_name,omitempty"`
	Category          string       `json:"category,omitempty"`
	Element           string       `json:"element,omitempty"`
	FirstWeakElement  string       `json:"first_weak_element,omitempty"`
	SecondWeakElement string       `json:"second_weak_element,omitempty"`
	Location          []string     `json:"location,omitempty"`
	ImageURL          string       `json:"image_url,omitempty"`
	Title             TitleList    `json:"title,omitempty"`
	BGM               []RawBGM     `json:"bgm,omitempty"`
	Ranking           []RawRanking `json:"ranking,omitempty"`
}

// RawBGM is an upstream theme track entry
type RawBGM struct {
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// RawRanking is an upstream popularity poll entry
type RawRanking struct {
	Ranking  string `json:"ranking,omitempty"`
	VoteYear string `json:"vote_year,omitempty"`
}

// TitleList is the list of game titles a monster appears in. Upstream has
// shipped both plain strings and {"name": ...} objects, so either decodes.
type TitleList []string

// UnmarshalJSON accepts an array of strings or of objects with a name field
func (t *TitleList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(TitleList, 0, len(raw))
	for _, item := range raw {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		var obj struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(item, &obj); err != nil {
			return err
		}
		if obj.Name != "" {
			out = append(out, obj.Name)
		}
	}
	*t = out
	return nil
}

// ListMonstersInput selects a window of the upstream catalog
type ListMonstersInput struct {
	Limit  int
	Offset int
}

// ListMonstersOutput is one upstream page plus the catalog-wide total
type ListMonstersOutput struct {
	Monsters []*RawMonster `json:"monsters"`
	Total    int           `json:"total"`
	Limit    int           `json:"limit"`
	Offset   int           `json:"offset"`
}
