// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/monster-codex/internal/clients/mhapi"
	mhapimock "github.com/KirkDiggler/monster-codex/internal/clients/mhapi/mock"
	"github.com/KirkDiggler/monster-codex/internal/orchestrators/catalog"
)

// ExpectUpstreamPage sets up one upstream window fetch
func ExpectUpstreamPage(
	ctx context.Context, mockClient *mhapimock.MockClient,
	limit, offset int, out *mhapi.ListMonstersOutput, err error,
) *gomock.Call {
	return mockClient.EXPECT().
		ListMonsters(ctx, &mhapi.ListMonstersInput{Limit: limit, Offset: offset}).
		Return(out, err)
}

// ExpectServerPage sets up the fetch behind list page n without criteria
func ExpectServerPage(
	ctx context.Context, mockClient *mhapimock.MockClient,
	page int, out *mhapi.ListMonstersOutput,
) *gomock.Call {
	return ExpectUpstreamPage(ctx, mockClient, catalog.PageSize, (page-1)*catalog.PageSize, out, nil)
}

// ExpectBatch sets up the single batch fetch used for filtering and lookups
func ExpectBatch(ctx context.Context, mockClient *mhapimock.MockClient, out *mhapi.ListMonstersOutput) *gomock.Call {
	return ExpectUpstreamPage(ctx, mockClient, catalog.BatchSize, 0, out, nil)
}

// ExpectUpstreamFailure makes every upstream fetch fail with err
func ExpectUpstreamFailure(ctx context.Context, mockClient *mhapimock.MockClient, err error) *gomock.Call {
	return mockClient.EXPECT().
		ListMonsters(ctx, gomock.Any()).
		Return(nil, err)
}
