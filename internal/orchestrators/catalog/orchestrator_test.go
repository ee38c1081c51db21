package catalog_test

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/monster-codex/internal/clients/ai"
	aimock "github.com/KirkDiggler/monster-codex/internal/clients/ai/mock"
	"github.com/KirkDiggler/monster-codex/internal/clients/mhapi"
	mhapimock "github.com/KirkDiggler/monster-codex/internal/clients/mhapi/mock"
	"github.com/KirkDiggler/monster-codex/internal/entities"
	"github.com/KirkDiggler/monster-codex/internal/errors"
	"github.com/KirkDiggler/monster-codex/internal/orchestrators/catalog"
	"github.com/KirkDiggler/monster-codex/internal/pkg/clock"
	"github.com/KirkDiggler/monster-codex/internal/pkg/idgen"
	"github.com/KirkDiggler/monster-codex/internal/pkg/pagination"
	"github.com/KirkDiggler/monster-codex/internal/repositories/discovered"
	discoveredmock "github.com/KirkDiggler/monster-codex/internal/repositories/discovered/mock"
	"github.com/KirkDiggler/monster-codex/internal/testutils"
	"github.com/KirkDiggler/monster-codex/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockClient   *mhapimock.MockClient
	mockAI       *aimock.MockClient
	archive      *discovered.InMemoryRepository
	orchestrator catalog.Service
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockClient = mhapimock.NewMockClient(s.ctrl)
	s.mockAI = aimock.NewMockClient(s.ctrl)
	s.archive = discovered.NewInMemory(clock.NewFixed(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)))
	s.ctx = context.Background()

	orch, err := catalog.NewOrchestrator(&catalog.Config{
		Client:      s.mockClient,
		AI:          s.mockAI,
		Archive:     s.archive,
		IDGenerator: idgen.NewSequential("ai"),
	})
	s.Require().NoError(err)
	s.orchestrator = orch
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) batch() *mhapi.ListMonstersOutput {
	return &mhapi.ListMonstersOutput{
		Monsters: []*mhapi.RawMonster{
			{MonsterID: "1", Name: "リオレウス亜種", AnotherName: "蒼火竜", Category: "飛竜種", Element: "火"},
			{MonsterID: "2", Name: "リオレウス", AnotherName: "火竜", Category: "飛竜種", Element: "火"},
			{MonsterID: "", Name: "ケルビ", Category: "草食種"},
			{MonsterID: "4", AnotherName: "名無し"},
		},
		Total: 4,
		Limit: catalog.BatchSize,
	}
}

func (s *OrchestratorTestSuite) expectBatch() {
	mocks.ExpectBatch(s.ctx, s.mockClient, s.batch())
}

func (s *OrchestratorTestSuite) TestNewOrchestratorValidation() {
	_, err := catalog.NewOrchestrator(nil)
	s.Assert().Error(err)

	_, err = catalog.NewOrchestrator(&catalog.Config{Client: s.mockClient})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "AI")
	s.Assert().Contains(err.Error(), "Archive")
	s.Assert().Contains(err.Error(), "IDGenerator")
}

func (s *OrchestratorTestSuite) TestListMonstersServerMode() {
	mocks.ExpectServerPage(s.ctx, s.mockClient, 2, testutils.UpstreamPage(testutils.RawPage(21, 20), 45, 20, 20))

	out, err := s.orchestrator.ListMonsters(s.ctx, &catalog.ListMonstersInput{Page: 2})
	s.Require().NoError(err)

	s.Assert().Equal(catalog.ModeServer, out.Mode)
	s.Assert().Equal(2, out.Page)
	s.Assert().Equal(3, out.TotalPages)
	s.Assert().Equal(45, out.TotalItems)
	s.Require().Len(out.Monsters, 20)
	s.Assert().Equal("モンスター021", out.Monsters[0].Name)
	s.Assert().Equal(pagination.RangeSummary{Total: 45, From: 21, To: 40}, out.Summary)
	s.Assert().Equal([]pagination.Item{{Page: 1}, {Page: 2}, {Page: 3}}, out.Controls)
}

func (s *OrchestratorTestSuite) TestListMonstersRefetchesLastPage() {
	gomock.InOrder(
		mocks.ExpectServerPage(s.ctx, s.mockClient, 5, testutils.UpstreamPage(nil, 45, 20, 80)),
		mocks.ExpectServerPage(s.ctx, s.mockClient, 3, testutils.UpstreamPage(testutils.RawPage(41, 5), 45, 20, 40)),
	)

	out, err := s.orchestrator.ListMonsters(s.ctx, &catalog.ListMonstersInput{Page: 5})
	s.Require().NoError(err)

	s.Assert().Equal(3, out.Page)
	s.Assert().Len(out.Monsters, 5)
	s.Assert().Equal(pagination.RangeSummary{Total: 45, From: 41, To: 45}, out.Summary)
}

func (s *OrchestratorTestSuite) TestListMonstersHugePageIsClamped() {
	gomock.InOrder(
		mocks.ExpectServerPage(s.ctx, s.mockClient, catalog.MaxPage, testutils.UpstreamPage(nil, 45, 20, (catalog.MaxPage-1)*20)),
		mocks.ExpectServerPage(s.ctx, s.mockClient, 3, testutils.UpstreamPage(testutils.RawPage(41, 5), 45, 20, 40)),
	)

	out, err := s.orchestrator.ListMonsters(s.ctx, &catalog.ListMonstersInput{Page: math.MaxInt})
	s.Require().NoError(err)

	s.Assert().Equal(3, out.Page)
	s.Assert().Len(out.Monsters, 5)
}

func (s *OrchestratorTestSuite) TestListMonstersPlaceholderTotal() {
	mocks.ExpectServerPage(s.ctx, s.mockClient, 1, testutils.UpstreamPage(testutils.RawPage(1, 12), 12, 20, 0))

	out, err := s.orchestrator.ListMonsters(s.ctx, &catalog.ListMonstersInput{Page: 1, Layout: pagination.Narrow})
	s.Require().NoError(err)

	s.Assert().Equal(catalog.PlaceholderTotal, out.TotalItems)
	s.Assert().Equal(10, out.TotalPages)
	s.Assert().Len(out.Monsters, 12)
	s.Assert().Equal([]pagination.Item{{Page: 1}, {Ellipsis: true}, {Page: 10}}, out.Controls)
}

func (s *OrchestratorTestSuite) TestListMonstersClientMode() {
	s.expectBatch()

	out, err := s.orchestrator.ListMonsters(s.ctx, &catalog.ListMonstersInput{
		Page:     1,
		Criteria: catalog.Criteria{Search: "リオレウス", Element: "火", Sort: entities.SortNameAsc},
	})
	s.Require().NoError(err)

	s.Assert().Equal(catalog.ModeClient, out.Mode)
	s.Assert().Equal(2, out.TotalItems)
	s.Assert().Equal(1, out.TotalPages)
	s.Require().Len(out.Monsters, 2)
	s.Assert().Equal("リオレウス", out.Monsters[0].Name)
	s.Assert().Equal("リオレウス亜種", out.Monsters[1].Name)
	s.Assert().Nil(out.Controls)
}

func (s *OrchestratorTestSuite) TestListMonstersAcceptsAliases() {
	s.expectBatch()

	out, err := s.orchestrator.ListMonsters(s.ctx, &catalog.ListMonstersInput{
		Criteria: catalog.Criteria{Element: "none"},
	})
	s.Require().NoError(err)

	s.Require().Len(out.Monsters, 1)
	s.Assert().Equal("ケルビ", out.Monsters[0].Name)
}

func (s *OrchestratorTestSuite) TestListMonstersUnknownElementIsMembershipTest() {
	batch := s.batch()
	batch.Monsters = append(batch.Monsters, &mhapi.RawMonster{MonsterID: "5", Name: "シャガルマガラ", Element: "狂竜"})
	mocks.ExpectBatch(s.ctx, s.mockClient, batch)

	out, err := s.orchestrator.ListMonsters(s.ctx, &catalog.ListMonstersInput{
		Criteria: catalog.Criteria{Element: "狂竜"},
	})
	s.Require().NoError(err)

	s.Assert().Equal(catalog.ModeClient, out.Mode)
	s.Require().Len(out.Monsters, 1)
	s.Assert().Equal("シャガルマガラ", out.Monsters[0].Name)
}

func (s *OrchestratorTestSuite) TestListMonstersRejectsUnknownSort() {
	_, err := s.orchestrator.ListMonsters(s.ctx, &catalog.ListMonstersInput{
		Criteria: catalog.Criteria{Element: "光", Sort: "random"},
	})
	s.Require().Error(err)
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "sort")

	_, err = s.orchestrator.ListMonsters(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListMonstersUpstreamFailure() {
	s.mockClient.EXPECT().
		ListMonsters(s.ctx, gomock.Any()).
		Return(nil, errors.Unavailable("upstream returned status 503"))

	_, err := s.orchestrator.ListMonsters(s.ctx, &catalog.ListMonstersInput{Page: 1})
	s.Require().Error(err)
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *OrchestratorTestSuite) TestGetMonster() {
	testCases := []struct {
		name     string
		id       string
		expected string
	}{
		{name: "by id", id: "2", expected: "リオレウス"},
		{name: "by name", id: "ケルビ", expected: "ケルビ"},
		{name: "trims input", id: " 1 ", expected: "リオレウス亜種"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectBatch()

			out, err := s.orchestrator.GetMonster(s.ctx, &catalog.GetMonsterInput{ID: tc.id})
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, out.Monster.Name)
			s.Assert().Equal(catalog.SourceCatalog, out.Source)
		})
	}
}

func (s *OrchestratorTestSuite) TestGetMonsterConvertsRecord() {
	mocks.ExpectBatch(s.ctx, s.mockClient,
		testutils.UpstreamPage([]*mhapi.RawMonster{testutils.RawRathalos()}, 1, catalog.BatchSize, 0))

	out, err := s.orchestrator.GetMonster(s.ctx, &catalog.GetMonsterInput{ID: testutils.RathalosID})
	s.Require().NoError(err)

	m := out.Monster
	s.Assert().Equal(testutils.RathalosName, m.Name)
	s.Assert().Equal("火竜", m.Title)
	s.Assert().Equal("飛竜種", m.Species)
	s.Assert().Equal([]string{entities.ElementFire}, m.Elements)
	s.Assert().Equal([]entities.Weakness{{Element: "龍", Stars: 3}, {Element: "雷", Stars: 2}}, m.Weaknesses)
	s.Assert().Equal([]string{"古代樹の森", "大蟻塚の荒地"}, m.Habitats)
	s.Assert().Equal([]string{"MH", "MHW"}, m.Titles)
	s.Require().Len(m.BGM, 1)
	s.Assert().Equal("英雄の証", m.BGM[0].Name)
}

func (s *OrchestratorTestSuite) TestGetMonsterFallsBackToArchive() {
	_, err := s.archive.Save(s.ctx, &discovered.SaveInput{
		Monster: &entities.Monster{MonsterID: "ai_7", Name: "ゴア・マガラ"},
		Query:   "黒蝕竜",
	})
	s.Require().NoError(err)
	s.expectBatch()

	out, err := s.orchestrator.GetMonster(s.ctx, &catalog.GetMonsterInput{ID: "ai_7"})
	s.Require().NoError(err)
	s.Assert().Equal("ゴア・マガラ", out.Monster.Name)
	s.Assert().Equal(catalog.SourceArchive, out.Source)
}

func (s *OrchestratorTestSuite) TestGetMonsterNotFound() {
	s.expectBatch()

	_, err := s.orchestrator.GetMonster(s.ctx, &catalog.GetMonsterInput{ID: "999"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Equal(catalog.MsgMonsterNotFound, errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestGetMonsterUpstreamFailure() {
	s.Run("archive still answers", func() {
		_, err := s.archive.Save(s.ctx, &discovered.SaveInput{
			Monster: &entities.Monster{MonsterID: "ai_1", Name: "ラージャン"},
		})
		s.Require().NoError(err)
		mocks.ExpectUpstreamFailure(s.ctx, s.mockClient, errors.Unavailable("down"))

		out, err := s.orchestrator.GetMonster(s.ctx, &catalog.GetMonsterInput{ID: "ラージャン"})
		s.Require().NoError(err)
		s.Assert().Equal(catalog.SourceArchive, out.Source)
	})

	s.Run("upstream error wins over not found", func() {
		mocks.ExpectUpstreamFailure(s.ctx, s.mockClient, errors.Unavailable("down"))

		_, err := s.orchestrator.GetMonster(s.ctx, &catalog.GetMonsterInput{ID: "リオレウス"})
		s.Require().Error(err)
		s.Assert().True(errors.IsUnavailable(err))
	})

	s.Run("cancellation passes through", func() {
		mocks.ExpectUpstreamFailure(s.ctx, s.mockClient, errors.Canceled("request canceled"))

		_, err := s.orchestrator.GetMonster(s.ctx, &catalog.GetMonsterInput{ID: "ラージャン"})
		s.Require().Error(err)
		s.Assert().True(errors.IsCanceled(err))
	})
}

func (s *OrchestratorTestSuite) TestGetMonsterRequiresID() {
	_, err := s.orchestrator.GetMonster(s.ctx, &catalog.GetMonsterInput{ID: "  "})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestSearchMonsterCatalogHit() {
	testCases := []struct {
		name     string
		query    string
		expected string
	}{
		{name: "exact name wins over earlier partial", query: "リオレウス", expected: "リオレウス"},
		{name: "substring", query: "亜種", expected: "リオレウス亜種"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.expectBatch()

			out, err := s.orchestrator.SearchMonster(s.ctx, &catalog.SearchMonsterInput{Query: tc.query})
			s.Require().NoError(err)
			s.Assert().Equal(tc.expected, out.Monster.Name)
			s.Assert().Equal(catalog.SourceCatalog, out.Source)
		})
	}
}

func (s *OrchestratorTestSuite) TestSearchMonsterFallsBackToAI() {
	s.expectBatch()
	s.mockAI.EXPECT().
		LookupMonster(s.ctx, &ai.LookupMonsterInput{Query: "ゴア・マガラ"}).
		Return(&ai.LookupMonsterOutput{Monster: &entities.Monster{Name: "ゴア・マガラ", ThreatLevel: 8}}, nil)

	out, err := s.orchestrator.SearchMonster(s.ctx, &catalog.SearchMonsterInput{Query: " ゴア・マガラ "})
	s.Require().NoError(err)
	s.Assert().Equal(catalog.SourceAI, out.Source)
	s.Assert().Equal("ai_1", out.Monster.MonsterID)

	got, err := s.archive.Get(s.ctx, &discovered.GetInput{Key: "ai_1"})
	s.Require().NoError(err)
	s.Assert().Equal("ゴア・マガラ", got.Entry.Monster.Name)
	s.Assert().Equal("ゴア・マガラ", got.Entry.Query)
}

func (s *OrchestratorTestSuite) TestSearchMonsterAsksAIWhenCatalogIsDown() {
	mocks.ExpectUpstreamFailure(s.ctx, s.mockClient, errors.Unavailable("down"))
	s.mockAI.EXPECT().
		LookupMonster(s.ctx, gomock.Any()).
		Return(&ai.LookupMonsterOutput{Monster: &entities.Monster{Name: "リオレウス"}}, nil)

	out, err := s.orchestrator.SearchMonster(s.ctx, &catalog.SearchMonsterInput{Query: "リオレウス"})
	s.Require().NoError(err)
	s.Assert().Equal(catalog.SourceAI, out.Source)
}

func (s *OrchestratorTestSuite) TestSearchMonsterAIErrorsPassThrough() {
	s.expectBatch()
	s.mockAI.EXPECT().
		LookupMonster(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound(ai.MsgNotFound))

	_, err := s.orchestrator.SearchMonster(s.ctx, &catalog.SearchMonsterInput{Query: "存在しない竜"})
	s.Require().Error(err)
	s.Assert().True(errors.IsNotFound(err))
	s.Assert().Equal(ai.MsgNotFound, errors.GetMessage(err))
}

func (s *OrchestratorTestSuite) TestSearchMonsterValidation() {
	_, err := s.orchestrator.SearchMonster(s.ctx, &catalog.SearchMonsterInput{Query: "   "})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.SearchMonster(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAskMonster() {
	s.mockAI.EXPECT().
		LookupMonster(s.ctx, &ai.LookupMonsterInput{Query: "雪山にいる白い牙獣は？"}).
		Return(&ai.LookupMonsterOutput{Monster: &entities.Monster{Name: "ブランゴ"}}, nil)

	out, err := s.orchestrator.AskMonster(s.ctx, &catalog.AskMonsterInput{Question: "雪山にいる白い牙獣は？"})
	s.Require().NoError(err)
	s.Assert().Equal("ai_1", out.Monster.MonsterID)

	list, err := s.archive.List(s.ctx, &discovered.ListInput{})
	s.Require().NoError(err)
	s.Assert().Len(list.Entries, 1)
}

func (s *OrchestratorTestSuite) TestAskMonsterRequiresQuestion() {
	_, err := s.orchestrator.AskMonster(s.ctx, &catalog.AskMonsterInput{})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestAskMonsterArchiveFailureIsNotFatal() {
	mockArchive := discoveredmock.NewMockRepository(s.ctrl)
	orch, err := catalog.NewOrchestrator(&catalog.Config{
		Client:      s.mockClient,
		AI:          s.mockAI,
		Archive:     mockArchive,
		IDGenerator: idgen.NewSequential("ai"),
	})
	s.Require().NoError(err)

	s.mockAI.EXPECT().
		LookupMonster(s.ctx, gomock.Any()).
		Return(&ai.LookupMonsterOutput{Monster: &entities.Monster{Name: "ブランゴ"}}, nil)
	mockArchive.EXPECT().
		Save(s.ctx, gomock.Any()).
		Return(nil, errors.Internal("disk full"))

	out, err := orch.AskMonster(s.ctx, &catalog.AskMonsterInput{Question: "ブランゴ"})
	s.Require().NoError(err)
	s.Assert().Equal("ブランゴ", out.Monster.Name)
}

func (s *OrchestratorTestSuite) TestListDiscovered() {
	s.mockAI.EXPECT().
		LookupMonster(s.ctx, gomock.Any()).
		Return(&ai.LookupMonsterOutput{Monster: &entities.Monster{Name: "ブランゴ"}}, nil)
	_, err := s.orchestrator.AskMonster(s.ctx, &catalog.AskMonsterInput{Question: "白い牙獣"})
	s.Require().NoError(err)

	out, err := s.orchestrator.ListDiscovered(s.ctx, &catalog.ListDiscoveredInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Discoveries, 1)
	s.Assert().Equal("ブランゴ", out.Discoveries[0].Monster.Name)
	s.Assert().Equal("ai_1", out.Discoveries[0].Monster.MonsterID)
	s.Assert().Equal("白い牙獣", out.Discoveries[0].Query)
	s.Assert().Equal(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), out.Discoveries[0].DiscoveredAt)
}

func (s *OrchestratorTestSuite) TestListDiscoveredEmpty() {
	out, err := s.orchestrator.ListDiscovered(s.ctx, &catalog.ListDiscoveredInput{})
	s.Require().NoError(err)
	s.Assert().NotNil(out.Discoveries)
	s.Assert().Empty(out.Discoveries)
}

func (s *OrchestratorTestSuite) TestListDiscoveredValidation() {
	_, err := s.orchestrator.ListDiscovered(s.ctx, nil)
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.ListDiscovered(s.ctx, &catalog.ListDiscoveredInput{Limit: -1})
	s.Assert().True(errors.IsInvalidArgument(err))

	_, err = s.orchestrator.ListDiscovered(s.ctx, &catalog.ListDiscoveredInput{Limit: catalog.MaxDiscoveredLimit + 1})
	s.Assert().True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestListDiscoveredStorageFailure() {
	mockArchive := discoveredmock.NewMockRepository(s.ctrl)
	orch, err := catalog.NewOrchestrator(&catalog.Config{
		Client:      s.mockClient,
		AI:          s.mockAI,
		Archive:     mockArchive,
		IDGenerator: idgen.NewSequential("ai"),
	})
	s.Require().NoError(err)

	mockArchive.EXPECT().
		List(s.ctx, &discovered.ListInput{Limit: 5}).
		Return(nil, errors.Internal("disk full"))

	_, err = orch.ListDiscovered(s.ctx, &catalog.ListDiscoveredInput{Limit: 5})
	s.Assert().True(errors.IsInternal(err))
}
