package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rbeaulieu03/portfolio-simulator/internal/db/models/postgres/public/model"
	"github.com/rbeaulieu03/portfolio-simulator/internal/domain"
	mock_repository "github.com/rbeaulieu03/portfolio-simulator/internal/repository/mocks"
	"github.com/rbeaulieu03/portfolio-simulator/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type stubPriceService struct {
	series *domain.PriceSeries
	notes  []domain.Note
	err    error
}

func (s stubPriceService) GetPriceSeries(ctx context.Context, symbol string, start, end time.Time) (*domain.PriceSeries, []domain.Note, error) {
	return s.series, s.notes, s.err
}

func (s stubPriceService) UpdatePricesIfNeeded(ctx context.Context, symbols []string) error {
	return nil
}

func (s stubPriceService) Ingest(ctx context.Context, symbol string, start *time.Time) error {
	return nil
}

func testSeries(t *testing.T) *domain.PriceSeries {
	t.Helper()
	series, err := domain.NewPriceSeries("SPY", []domain.PricePoint{
		{Date: util.NewDate(2020, 1, 1), Price: 100},
		{Date: util.NewDate(2020, 2, 1), Price: 110},
		{Date: util.NewDate(2020, 3, 1), Price: 105},
		{Date: util.NewDate(2020, 4, 1), Price: 120},
		{Date: util.NewDate(2020, 5, 1), Price: 130},
	})
	require.NoError(t, err)
	return series
}

func postJson(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	require.NoError(t, err)
	router.ServeHTTP(w, request)
	return w
}

func TestSimulate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := ApiHandler{
		PriceService: stubPriceService{series: testSeries(t)},
	}
	router := handler.InitializeRouterEngine()

	t.Run("lump sum", func(t *testing.T) {
		w := postJson(t, router, "/simulate", simulateRequest{
			Ticker:       "SPY",
			Strategy:     "LUMP_SUM",
			StartDate:    "2020-01-01",
			EndDate:      "2020-05-01",
			TotalCapital: 1000,
		})
		require.Equal(t, 200, w.Code)

		var response simulateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

		require.Equal(t, "SPY", response.Ticker)
		require.Equal(t, "LUMP_SUM", response.Strategy)
		require.Len(t, response.Trajectory, 5)
		require.Len(t, response.CashFlows, 1)
		require.Equal(t, float64(1300), response.Metrics.FinalValue)
		require.Equal(t, float64(30), response.Metrics.TotalReturnPct)
	})

	t.Run("dca", func(t *testing.T) {
		w := postJson(t, router, "/simulate", simulateRequest{
			Ticker:                "SPY",
			Strategy:              "DCA",
			StartDate:             "2020-01-01",
			EndDate:               "2020-05-01",
			TotalCapital:          1000,
			ContributionFrequency: "MONTHLY",
		})
		require.Equal(t, 200, w.Code)

		var response simulateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

		require.Len(t, response.CashFlows, 5)
		for _, cf := range response.CashFlows {
			require.Equal(t, float64(200), cf.AmountInvested)
		}
	})

	t.Run("out of range dates are a 400", func(t *testing.T) {
		w := postJson(t, router, "/simulate", simulateRequest{
			Ticker:       "SPY",
			Strategy:     "LUMP_SUM",
			StartDate:    "2021-01-01",
			EndDate:      "2021-05-01",
			TotalCapital: 1000,
		})
		require.Equal(t, 400, w.Code)
	})

	t.Run("unknown strategy is a 500", func(t *testing.T) {
		w := postJson(t, router, "/simulate", simulateRequest{
			Ticker:       "SPY",
			Strategy:     "YOLO",
			StartDate:    "2020-01-01",
			EndDate:      "2020-05-01",
			TotalCapital: 1000,
		})
		require.Equal(t, 500, w.Code)
	})
}

func TestCompare(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	requestRepository := mock_repository.NewMockSimulationRequestRepository(ctrl)
	handler := ApiHandler{
		PriceService:                stubPriceService{series: testSeries(t)},
		SimulationRequestRepository: requestRepository,
	}
	router := handler.InitializeRouterEngine()

	var saved model.SimulationRequest
	requestRepository.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(db *sql.DB, sr model.SimulationRequest) (*model.SimulationRequest, error) {
			saved = sr
			return &sr, nil
		})

	w := postJson(t, router, "/compare", compareRequest{
		Ticker:                "SPY",
		StartDate:             "2020-01-01",
		EndDate:               "2020-05-01",
		TotalCapital:          1000,
		ContributionFrequency: "MONTHLY",
	})
	require.Equal(t, 200, w.Code)

	var response compareResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	require.Equal(t, "SPY", response.Ticker)
	require.Len(t, response.Difference, 5)
	require.Equal(t, float64(0), response.Difference[0].Value)
	require.Equal(
		t,
		response.Dca.Trajectory[4].MarketValue-response.LumpSum.Trajectory[4].MarketValue,
		response.Difference[4].Value,
	)

	require.Equal(t, "SPY", saved.Symbol)
	require.NotNil(t, saved.LumpSumFinalValue)
	require.Equal(t, response.LumpSum.Metrics.FinalValue, *saved.LumpSumFinalValue)
}
