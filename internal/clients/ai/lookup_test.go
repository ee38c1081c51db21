package ai_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/monster-codex/internal/clients/ai"
	"github.com/KirkDiggler/monster-codex/internal/entities"
	"github.com/KirkDiggler/monster-codex/internal/errors"
)

type fakeGenerator struct {
	text    string
	err     error
	prompts []string
}

func (f *fakeGenerator) GenerateJSON(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.text, f.err
}

func (f *fakeGenerator) Provider() string { return "fake" }

const rathalosJSON = `{
  "name": "リオレウス",
  "title": "火竜",
  "species": "飛竜種",
  "description": "空の王者と呼ばれる飛竜。",
  "elements": ["火", " "],
  "ailments": ["毒"],
  "weaknesses": [{"element": "龍", "stars": 3}, {"element": "雷", "stars": 2.4}, {"element": "", "stars": 1}],
  "habitats": ["古代樹の森"],
  "threatLevel": 7,
  "size": {"min": 1400.4, "max": 2200.6},
  "keyDrops": [{"name": "火竜の紅玉", "rarity": 12}],
  "tips": ["頭を狙え"]
}`

type LookupTestSuite struct {
	suite.Suite
	gen    *fakeGenerator
	client ai.Client
	ctx    context.Context
}

func TestLookupSuite(t *testing.T) {
	suite.Run(t, new(LookupTestSuite))
}

func (s *LookupTestSuite) SetupTest() {
	s.gen = &fakeGenerator{}
	s.ctx = context.Background()

	client, err := ai.New(&ai.Config{Generator: s.gen})
	s.Require().NoError(err)
	s.client = client
}

func (s *LookupTestSuite) TestNewRequiresGenerator() {
	_, err := ai.New(&ai.Config{})
	s.Assert().True(errors.IsInvalidArgument(err))
	_, err = ai.New(nil)
	s.Assert().Error(err)
}

func (s *LookupTestSuite) TestFound() {
	s.gen.text = rathalosJSON

	out, err := s.client.LookupMonster(s.ctx, &ai.LookupMonsterInput{Query: " リオレウス "})
	s.Require().NoError(err)

	m := out.Monster
	s.Assert().Equal("リオレウス", m.Name)
	s.Assert().Equal("火竜", m.Title)
	s.Assert().Equal([]string{"火"}, m.Elements)
	s.Assert().Equal([]entities.Weakness{
		{Element: "龍", Stars: 3},
		{Element: "雷", Stars: 2},
	}, m.Weaknesses)
	s.Assert().Equal(7, m.ThreatLevel)
	s.Assert().Equal(entities.SizeRange{Min: 1400, Max: 2201}, m.Size)
	s.Assert().Equal([]entities.DropItem{{Name: "火竜の紅玉", Rarity: 10}}, m.KeyDrops)
	s.Assert().Empty(m.MonsterID)

	s.Require().Len(s.gen.prompts, 1)
	s.Assert().Contains(s.gen.prompts[0], `"リオレウス"`)
}

func (s *LookupTestSuite) TestNotFoundVariants() {
	testCases := []struct {
		name string
		text string
	}{
		{"empty text", ""},
		{"whitespace", "  \n"},
		{"json null", "null"},
		{"empty object", "{}"},
		{"blank name", `{"name": "  ", "title": "x"}`},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.gen.text = tc.text
			_, err := s.client.LookupMonster(s.ctx, &ai.LookupMonsterInput{Query: "存在しない"})
			s.Require().Error(err)
			s.Assert().True(errors.IsNotFound(err))
			s.Assert().Equal(ai.MsgNotFound, errors.GetMessage(err))
		})
	}
}

func (s *LookupTestSuite) TestMalformedJSON() {
	s.gen.text = `{"name": "リオレウス",`

	_, err := s.client.LookupMonster(s.ctx, &ai.LookupMonsterInput{Query: "リオレウス"})
	s.Assert().True(errors.IsUnavailable(err))
	s.Assert().Equal(ai.MsgFetchFailed, errors.GetMessage(err))
}

func (s *LookupTestSuite) TestCodeFenceIsStripped() {
	s.gen.text = "```json\n" + rathalosJSON + "\n```"

	out, err := s.client.LookupMonster(s.ctx, &ai.LookupMonsterInput{Query: "リオレウス"})
	s.Require().NoError(err)
	s.Assert().Equal("リオレウス", out.Monster.Name)
}

func (s *LookupTestSuite) TestOutOfRangeNumbersAreClamped() {
	s.gen.text = `{"name": "X", "threatLevel": 0, "size": {"min": 3000, "max": 100},
		"weaknesses": [{"element": "水", "stars": 9}]}`

	out, err := s.client.LookupMonster(s.ctx, &ai.LookupMonsterInput{Query: "X"})
	s.Require().NoError(err)
	s.Assert().Equal(1, out.Monster.ThreatLevel)
	s.Assert().Equal(entities.SizeRange{Min: 100, Max: 3000}, out.Monster.Size)
	s.Assert().Equal(3, out.Monster.Weaknesses[0].Stars)
	s.Assert().NotNil(out.Monster.Elements)
}

func (s *LookupTestSuite) TestOverlongFieldsRejected() {
	s.gen.text = fmt.Sprintf(`{"name": %q}`, strings.Repeat("名", 101))

	_, err := s.client.LookupMonster(s.ctx, &ai.LookupMonsterInput{Query: "X"})
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *LookupTestSuite) TestGeneratorFailure() {
	s.gen.err = fmt.Errorf("quota exceeded")

	_, err := s.client.LookupMonster(s.ctx, &ai.LookupMonsterInput{Query: "リオレウス"})
	s.Assert().True(errors.IsUnavailable(err))
	s.Assert().Equal(ai.MsgFetchFailed, errors.GetMessage(err))
	s.Assert().Len(s.gen.prompts, 1)
}

func (s *LookupTestSuite) TestCancellationPassesThrough() {
	s.gen.err = errors.Canceled("request was cancelled")

	_, err := s.client.LookupMonster(s.ctx, &ai.LookupMonsterInput{Query: "リオレウス"})
	s.Assert().True(errors.IsCanceled(err))
}

func (s *LookupTestSuite) TestQueryValidation() {
	_, err := s.client.LookupMonster(s.ctx, &ai.LookupMonsterInput{Query: "   "})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.client.LookupMonster(s.ctx, &ai.LookupMonsterInput{Query: strings.Repeat("あ", ai.MaxQueryLength+1)})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.client.LookupMonster(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	s.Assert().Empty(s.gen.prompts)
}
