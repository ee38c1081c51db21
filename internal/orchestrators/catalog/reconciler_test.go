package catalog_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/monster-codex/internal/entities"
	"github.com/KirkDiggler/monster-codex/internal/orchestrators/catalog"
	"github.com/KirkDiggler/monster-codex/internal/testutils/builders"
)

type ReconcilerTestSuite struct {
	suite.Suite
	monsters []*entities.Monster
}

func TestReconcilerSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerTestSuite))
}

func (s *ReconcilerTestSuite) SetupTest() {
	s.monsters = []*entities.Monster{
		{Name: "ナルガクルガ", Species: "飛竜種", Description: "迅竜", Elements: []string{}, ThreatLevel: 6},
		{Name: "リオレウス", Species: "飛竜種", Description: "空の王者", Elements: []string{entities.ElementFire}, ThreatLevel: 5},
		{Name: "アオアシラ", Species: "牙獣種", Description: "青熊獣", Elements: []string{}, ThreatLevel: 2},
		{Name: "ジンオウガ", Species: "牙竜種", Description: "雷狼竜", Elements: []string{entities.ElementThunder}, ThreatLevel: 7},
		{Name: "リオレウス亜種", Species: "飛竜種", Description: "蒼火竜", Elements: []string{entities.ElementFire}, ThreatLevel: 6},
		{Name: "イャンクック", Species: "鳥竜種", Description: "Rathian の仲間ではない", Elements: []string{entities.ElementFire}, ThreatLevel: 3},
	}
}

func names(ms []*entities.Monster) []string {
	out := make([]string, 0, len(ms))
	for _, m := range ms {
		out = append(out, m.Name)
	}
	return out
}

func numbered(n int, elements ...string) []*entities.Monster {
	out := make([]*entities.Monster, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, builders.NewMonsterBuilder().
			WithName(fmt.Sprintf("モンスター%03d", i)).
			WithElements(elements...).
			Build())
	}
	return out
}

func (s *ReconcilerTestSuite) TestCriteriaActive() {
	testCases := []struct {
		name     string
		criteria catalog.Criteria
		expected bool
	}{
		{name: "zero value", criteria: catalog.Criteria{}, expected: false},
		{name: "explicit defaults", criteria: catalog.Criteria{Element: entities.ElementAll, Sort: entities.SortDefault}, expected: false},
		{name: "search", criteria: catalog.Criteria{Search: "リオ"}, expected: true},
		{name: "element", criteria: catalog.Criteria{Element: entities.ElementFire}, expected: true},
		{name: "none sentinel", criteria: catalog.Criteria{Element: entities.ElementNone}, expected: true},
		{name: "sort only", criteria: catalog.Criteria{Sort: entities.SortNameAsc}, expected: true},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.expected, tc.criteria.Active())
		})
	}
}

func (s *ReconcilerTestSuite) TestFetchPlan() {
	plan := catalog.FetchPlan(catalog.Criteria{}, 3)
	s.Assert().Equal(catalog.PageSize, plan.Limit)
	s.Assert().Equal(40, plan.Offset)

	plan = catalog.FetchPlan(catalog.Criteria{}, 0)
	s.Assert().Equal(0, plan.Offset)

	plan = catalog.FetchPlan(catalog.Criteria{}, math.MaxInt)
	s.Assert().Equal((catalog.MaxPage-1)*catalog.PageSize, plan.Offset)

	plan = catalog.FetchPlan(catalog.Criteria{Search: "リオ"}, 3)
	s.Assert().Equal(catalog.BatchSize, plan.Limit)
	s.Assert().Equal(0, plan.Offset)
}

func (s *ReconcilerTestSuite) TestMatchesSearch() {
	rathalos := s.monsters[1]

	s.Assert().True(catalog.Matches(rathalos, "", entities.ElementAll))
	s.Assert().True(catalog.Matches(rathalos, "レウス", entities.ElementAll))
	s.Assert().True(catalog.Matches(rathalos, "飛竜", entities.ElementAll), "species")
	s.Assert().True(catalog.Matches(rathalos, "王者", entities.ElementAll), "description")
	s.Assert().False(catalog.Matches(rathalos, "ジンオウガ", entities.ElementAll))
	s.Assert().False(catalog.Matches(nil, "", entities.ElementAll))
}

func (s *ReconcilerTestSuite) TestMatchesSearchIsCaseSensitive() {
	kut := s.monsters[5]

	s.Assert().True(catalog.Matches(kut, "Rathian", ""))
	s.Assert().False(catalog.Matches(kut, "rathian", ""))
}

func (s *ReconcilerTestSuite) TestMatchesElement() {
	rathalos := s.monsters[1]
	nargacuga := s.monsters[0]

	s.Assert().True(catalog.Matches(rathalos, "", entities.ElementFire))
	s.Assert().False(catalog.Matches(rathalos, "", entities.ElementWater))
	s.Assert().False(catalog.Matches(rathalos, "", entities.ElementNone))
	s.Assert().True(catalog.Matches(nargacuga, "", entities.ElementNone))
	s.Assert().True(catalog.Matches(nargacuga, "", ""))
}

func (s *ReconcilerTestSuite) TestSearchFindsRathalosUnderEverySort() {
	for _, opt := range entities.SortOptions {
		s.Run(string(opt), func() {
			got := catalog.FilterAndSort(s.monsters, catalog.Criteria{Search: "リオレウス", Sort: opt})
			s.Assert().Contains(names(got), "リオレウス")
			s.Assert().Len(got, 2)
		})
	}
}

func (s *ReconcilerTestSuite) TestNoneFilterOnlyKeepsElementless() {
	got := catalog.FilterAndSort(s.monsters, catalog.Criteria{Element: entities.ElementNone})

	s.Require().Len(got, 2)
	for _, m := range got {
		s.Assert().Empty(m.Elements, m.Name)
	}
}

func (s *ReconcilerTestSuite) TestDefaultSortKeepsFetchOrder() {
	got := catalog.FilterAndSort(s.monsters, catalog.Criteria{})
	s.Assert().Equal(names(s.monsters), names(got))
}

func (s *ReconcilerTestSuite) TestThreatSortsAreStable() {
	desc := catalog.FilterAndSort(s.monsters, catalog.Criteria{Sort: entities.SortThreatDesc})
	s.Assert().Equal([]string{"ジンオウガ", "ナルガクルガ", "リオレウス亜種", "リオレウス", "イャンクック", "アオアシラ"}, names(desc))

	asc := catalog.FilterAndSort(s.monsters, catalog.Criteria{Sort: entities.SortThreatAsc})
	s.Assert().Equal([]string{"アオアシラ", "イャンクック", "リオレウス", "ナルガクルガ", "リオレウス亜種", "ジンオウガ"}, names(asc))
}

func (s *ReconcilerTestSuite) TestNameSortUsesJapaneseOrder() {
	got := catalog.FilterAndSort(s.monsters, catalog.Criteria{Sort: entities.SortNameAsc})
	s.Assert().Equal([]string{"アオアシラ", "イャンクック", "ジンオウガ", "ナルガクルガ", "リオレウス", "リオレウス亜種"}, names(got))
}

func (s *ReconcilerTestSuite) TestFilterAndSortLeavesInputAlone() {
	before := names(s.monsters)
	_ = catalog.FilterAndSort(s.monsters, catalog.Criteria{Sort: entities.SortNameAsc})
	s.Assert().Equal(before, names(s.monsters))
}

func (s *ReconcilerTestSuite) TestReconcileServerMode() {
	page := numbered(20)

	out := catalog.Reconcile(catalog.ReconcileInput{
		Monsters:      page,
		UpstreamTotal: 45,
		Page:          2,
	})

	s.Assert().Equal(catalog.ModeServer, out.Mode)
	s.Assert().Equal(page, out.Monsters)
	s.Assert().Equal(2, out.Page)
	s.Assert().Equal(3, out.TotalPages)
	s.Assert().Equal(45, out.TotalItems)
	s.Assert().False(out.Truncated)
}

func (s *ReconcilerTestSuite) TestReconcileServerModeClampsPastLastPage() {
	out := catalog.Reconcile(catalog.ReconcileInput{UpstreamTotal: 45, Page: 4})
	s.Assert().Equal(3, out.Page)

	out = catalog.Reconcile(catalog.ReconcileInput{UpstreamTotal: 45, Page: -2})
	s.Assert().Equal(1, out.Page)
}

func (s *ReconcilerTestSuite) TestReconcilePlaceholderTotal() {
	testCases := []struct {
		name          string
		upstreamTotal int
		expectedItems int
		expectedPages int
	}{
		{name: "no total yet", upstreamTotal: 0, expectedItems: catalog.PlaceholderTotal, expectedPages: 10},
		{name: "below one page", upstreamTotal: 12, expectedItems: catalog.PlaceholderTotal, expectedPages: 10},
		{name: "exactly one page", upstreamTotal: 20, expectedItems: catalog.PlaceholderTotal, expectedPages: 10},
		{name: "more than one page", upstreamTotal: 21, expectedItems: 21, expectedPages: 2},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			out := catalog.Reconcile(catalog.ReconcileInput{Monsters: numbered(12), UpstreamTotal: tc.upstreamTotal, Page: 1})
			s.Assert().Equal(tc.expectedItems, out.TotalItems)
			s.Assert().Equal(tc.expectedPages, out.TotalPages)
		})
	}
}

func (s *ReconcilerTestSuite) TestReconcileClientModeSlices() {
	batch := numbered(45, entities.ElementIce)

	out := catalog.Reconcile(catalog.ReconcileInput{
		Monsters:      batch,
		UpstreamTotal: 45,
		Criteria:      catalog.Criteria{Element: entities.ElementIce},
		Page:          2,
	})

	s.Assert().Equal(catalog.ModeClient, out.Mode)
	s.Assert().Equal(45, out.TotalItems)
	s.Assert().Equal(3, out.TotalPages)
	s.Require().Len(out.Monsters, 20)
	s.Assert().Equal("モンスター021", out.Monsters[0].Name)
	s.Assert().Equal("モンスター040", out.Monsters[19].Name)
}

func (s *ReconcilerTestSuite) TestReconcileClientModeClampsPastLastPage() {
	out := catalog.Reconcile(catalog.ReconcileInput{
		Monsters:      numbered(45),
		UpstreamTotal: 45,
		Criteria:      catalog.Criteria{Search: "モンスター"},
		Page:          4,
	})

	s.Assert().Equal(3, out.Page)
	s.Assert().Len(out.Monsters, 5)
}

func (s *ReconcilerTestSuite) TestReconcileClientModeNoMatches() {
	out := catalog.Reconcile(catalog.ReconcileInput{
		Monsters:      s.monsters,
		UpstreamTotal: 6,
		Criteria:      catalog.Criteria{Search: "ラージャン"},
		Page:          3,
	})

	s.Assert().Equal(1, out.Page)
	s.Assert().Equal(0, out.TotalPages)
	s.Assert().Equal(0, out.TotalItems)
	s.Assert().Empty(out.Monsters)
}

func (s *ReconcilerTestSuite) TestReconcileClientModeTruncated() {
	out := catalog.Reconcile(catalog.ReconcileInput{
		Monsters:      numbered(catalog.BatchSize),
		UpstreamTotal: 250,
		Criteria:      catalog.Criteria{Sort: entities.SortThreatDesc},
		Page:          1,
	})
	s.Assert().True(out.Truncated)
	s.Assert().Equal(catalog.BatchSize, out.TotalItems)

	out = catalog.Reconcile(catalog.ReconcileInput{
		Monsters:      numbered(45),
		UpstreamTotal: 45,
		Criteria:      catalog.Criteria{Sort: entities.SortThreatDesc},
		Page:          1,
	})
	s.Assert().False(out.Truncated)
}
