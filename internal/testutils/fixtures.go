package testutils

import (
	"fmt"

	"github.com/KirkDiggler/monster-codex/internal/clients/mhapi"
)

// Sample upstream identifiers used across tests
const (
	RathalosID   = "12"
	RathalosName = "リオレウス"
)

// RawPage returns count numbered upstream records starting at from, named
// モンスター001, モンスター002, ...
func RawPage(from, count int) []*mhapi.RawMonster {
	out := make([]*mhapi.RawMonster, 0, count)
	for i := from; i < from+count; i++ {
		out = append(out, &mhapi.RawMonster{
			MonsterID: fmt.Sprintf("%d", i),
			Name:      fmt.Sprintf("モンスター%03d", i),
		})
	}
	return out
}

// RawRathalos is a fully populated upstream record
func RawRathalos() *mhapi.RawMonster {
	return &mhapi.RawMonster{
		MonsterID:         RathalosID,
		Name:              RathalosName,
		AnotherName:       "火竜",
		Category:          "飛竜種",
		Element:           "火",
		FirstWeakElement:  "龍",
		SecondWeakElement: "雷",
		Location:          []string{"古代樹の森", "大蟻塚の荒地"},
		ImageURL:          "https://example.com/rathalos.png",
		Title:             mhapi.TitleList{"MH", "MHW"},
		BGM:               []mhapi.RawBGM{{Name: "英雄の証", URL: "https://example.com/bgm"}},
		Ranking:           []mhapi.RawRanking{{Ranking: "1", VoteYear: "2024"}},
	}
}

// UpstreamPage wraps records in a list response
func UpstreamPage(monsters []*mhapi.RawMonster, total, limit, offset int) *mhapi.ListMonstersOutput {
	return &mhapi.ListMonstersOutput{
		Monsters: monsters,
		Total:    total,
		Limit:    limit,
		Offset:   offset,
	}
}
