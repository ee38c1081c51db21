package mhapi_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/monster-codex/internal/clients/mhapi"
	mhapimock "github.com/KirkDiggler/monster-codex/internal/clients/mhapi/mock"
	"github.com/KirkDiggler/monster-codex/internal/errors"
	"github.com/KirkDiggler/monster-codex/internal/repositories/pagecache"
	pagecachemock "github.com/KirkDiggler/monster-codex/internal/repositories/pagecache/mock"
)

type CachedClientTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	mockNext  *mhapimock.MockClient
	mockCache *pagecachemock.MockRepository
	client    mhapi.Client
	ctx       context.Context
	input     *mhapi.ListMonstersInput
	page      *mhapi.ListMonstersOutput
}

func TestCachedClientSuite(t *testing.T) {
	suite.Run(t, new(CachedClientTestSuite))
}

func (s *CachedClientTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockNext = mhapimock.NewMockClient(s.ctrl)
	s.mockCache = pagecachemock.NewMockRepository(s.ctrl)
	s.ctx = context.Background()
	s.input = &mhapi.ListMonstersInput{Limit: 200, Offset: 0}
	s.page = &mhapi.ListMonstersOutput{
		Monsters: []*mhapi.RawMonster{{MonsterID: "1", Name: "リオレウス"}},
		Total:    1,
		Limit:    200,
	}

	client, err := mhapi.NewCached(&mhapi.CachedConfig{
		Client: s.mockNext,
		Cache:  s.mockCache,
	})
	s.Require().NoError(err)
	s.client = client
}

func (s *CachedClientTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CachedClientTestSuite) TestNewCachedValidation() {
	_, err := mhapi.NewCached(nil)
	s.Assert().Error(err)

	_, err = mhapi.NewCached(&mhapi.CachedConfig{Client: s.mockNext})
	s.Assert().True(errors.IsInvalidArgument(err))
	s.Assert().Contains(err.Error(), "Cache")
}

func (s *CachedClientTestSuite) TestHitSkipsUpstream() {
	data, err := json.Marshal(s.page)
	s.Require().NoError(err)

	s.mockCache.EXPECT().
		Get(s.ctx, pagecache.GetInput{Limit: 200, Offset: 0}).
		Return(&pagecache.GetOutput{Data: data}, nil)

	out, err := s.client.ListMonsters(s.ctx, s.input)
	s.Require().NoError(err)
	s.Assert().Equal(s.page, out)
}

func (s *CachedClientTestSuite) TestMissFetchesAndStores() {
	s.mockCache.EXPECT().
		Get(s.ctx, pagecache.GetInput{Limit: 200, Offset: 0}).
		Return(nil, errors.NotFound("miss"))
	s.mockNext.EXPECT().ListMonsters(s.ctx, s.input).Return(s.page, nil)
	s.mockCache.EXPECT().
		Put(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input pagecache.PutInput) (*pagecache.PutOutput, error) {
			s.Assert().Equal(200, input.Limit)
			s.Assert().Equal(0, input.Offset)
			s.Assert().Equal(mhapi.DefaultCacheTTL, input.TTL)

			var stored mhapi.ListMonstersOutput
			s.Require().NoError(json.Unmarshal(input.Data, &stored))
			s.Assert().Equal("リオレウス", stored.Monsters[0].Name)
			return &pagecache.PutOutput{}, nil
		})

	out, err := s.client.ListMonsters(s.ctx, s.input)
	s.Require().NoError(err)
	s.Assert().Equal(s.page, out)
}

func (s *CachedClientTestSuite) TestCacheFailuresAreBypassed() {
	s.mockCache.EXPECT().Get(s.ctx, gomock.Any()).Return(nil, errors.Internal("redis down"))
	s.mockNext.EXPECT().ListMonsters(s.ctx, s.input).Return(s.page, nil)
	s.mockCache.EXPECT().Put(s.ctx, gomock.Any()).Return(nil, errors.Internal("redis down"))

	out, err := s.client.ListMonsters(s.ctx, s.input)
	s.Require().NoError(err)
	s.Assert().Equal(s.page, out)
}

func (s *CachedClientTestSuite) TestCorruptEntryIsRefetched() {
	s.mockCache.EXPECT().Get(s.ctx, gomock.Any()).Return(&pagecache.GetOutput{Data: []byte("not json")}, nil)
	s.mockNext.EXPECT().ListMonsters(s.ctx, s.input).Return(s.page, nil)
	s.mockCache.EXPECT().Put(s.ctx, gomock.Any()).Return(&pagecache.PutOutput{}, nil)

	_, err := s.client.ListMonsters(s.ctx, s.input)
	s.Assert().NoError(err)
}

func (s *CachedClientTestSuite) TestUpstreamErrorIsNotCached() {
	s.mockCache.EXPECT().Get(s.ctx, gomock.Any()).Return(nil, errors.NotFound("miss"))
	s.mockNext.EXPECT().ListMonsters(s.ctx, s.input).Return(nil, errors.Unavailable("down"))

	_, err := s.client.ListMonsters(s.ctx, s.input)
	s.Assert().True(errors.IsUnavailable(err))
}

func (s *CachedClientTestSuite) TestCustomTTL() {
	client, err := mhapi.NewCached(&mhapi.CachedConfig{
		Client: s.mockNext,
		Cache:  s.mockCache,
		TTL:    time.Minute,
	})
	s.Require().NoError(err)

	s.mockCache.EXPECT().Get(s.ctx, gomock.Any()).Return(nil, errors.NotFound("miss"))
	s.mockNext.EXPECT().ListMonsters(s.ctx, s.input).Return(s.page, nil)
	s.mockCache.EXPECT().
		Put(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input pagecache.PutInput) (*pagecache.PutOutput, error) {
			s.Assert().Equal(time.Minute, input.TTL)
			return &pagecache.PutOutput{}, nil
		})

	_, err = client.ListMonsters(s.ctx, s.input)
	s.Assert().NoError(err)
}

func (s *CachedClientTestSuite) TestInvalidInputSkipsCache() {
	_, err := s.client.ListMonsters(s.ctx, &mhapi.ListMonstersInput{Limit: 0})
	s.Assert().True(errors.IsInvalidArgument(err))
}
