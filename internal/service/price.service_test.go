package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rbeaulieu03/portfolio-simulator/internal/domain"
	mock_repository "github.com/rbeaulieu03/portfolio-simulator/internal/repository/mocks"
	"github.com/rbeaulieu03/portfolio-simulator/internal/simulation"
	"github.com/rbeaulieu03/portfolio-simulator/internal/util"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testServiceHandler(repo *mock_repository.MockAdjustedPriceRepository, now *time.Time) *priceServiceHandler {
	return &priceServiceHandler{
		AdjPriceRepository: repo,
		cacheTtl:           defaultSeriesCacheTtl,
		now: func() time.Time {
			return *now
		},
		cache: map[seriesCacheKey]seriesCacheEntry{},
	}
}

func TestGetPriceSeries_cachesByTickerAndRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockAdjustedPriceRepository(ctrl)

	now := util.NewDate(2024, 1, 1)
	handler := testServiceHandler(repo, &now)

	start := util.NewDate(2020, 1, 1)
	end := util.NewDate(2020, 5, 1)
	points := []domain.PricePoint{
		{Date: start, Price: 100},
		{Date: end, Price: 130},
	}

	repo.EXPECT().
		List("SPY", start, end).
		Return(points, nil).
		Times(1)

	first, _, err := handler.GetPriceSeries(context.Background(), "SPY", start, end)
	require.NoError(t, err)

	// second call inside the TTL comes from cache, not the repo
	second, _, err := handler.GetPriceSeries(context.Background(), "SPY", start, end)
	require.NoError(t, err)
	require.Same(t, first, second)
}

func TestGetPriceSeries_cacheExpires(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockAdjustedPriceRepository(ctrl)

	now := util.NewDate(2024, 1, 1)
	handler := testServiceHandler(repo, &now)

	start := util.NewDate(2020, 1, 1)
	end := util.NewDate(2020, 5, 1)
	points := []domain.PricePoint{
		{Date: start, Price: 100},
		{Date: end, Price: 130},
	}

	repo.EXPECT().
		List("SPY", start, end).
		Return(points, nil).
		Times(2)

	_, _, err := handler.GetPriceSeries(context.Background(), "SPY", start, end)
	require.NoError(t, err)

	now = now.Add(defaultSeriesCacheTtl + time.Minute)

	_, _, err = handler.GetPriceSeries(context.Background(), "SPY", start, end)
	require.NoError(t, err)
}

func TestGetPriceSeries_insufficientData(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockAdjustedPriceRepository(ctrl)

	now := util.NewDate(2024, 1, 1)
	handler := testServiceHandler(repo, &now)

	start := util.NewDate(2020, 1, 1)
	end := util.NewDate(2020, 5, 1)

	repo.EXPECT().
		List("NODATA", start, end).
		Return([]domain.PricePoint{}, nil)

	_, _, err := handler.GetPriceSeries(context.Background(), "NODATA", start, end)

	var insufficientData simulation.InsufficientDataError
	require.True(t, errors.As(err, &insufficientData))
	require.Equal(t, "NODATA", insufficientData.Symbol)
}
