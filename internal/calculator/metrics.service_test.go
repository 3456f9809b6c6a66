package calculator

import (
	"math"
	"testing"
	"time"

	"github.com/rbeaulieu03/portfolio-simulator/internal/domain"
	"github.com/rbeaulieu03/portfolio-simulator/internal/util"

	"github.com/stretchr/testify/require"
)

func trajectoryFromValues(invested float64, dates []int, values []float64) domain.Trajectory {
	trajectory := domain.Trajectory{}
	for i, v := range values {
		trajectory = append(trajectory, domain.TrajectoryPoint{
			Date:               util.NewDate(2020, 1, 1).AddDate(0, 0, dates[i]),
			TotalSharesHeld:    10,
			MarketValue:        v,
			CumulativeInvested: invested,
		})
	}
	return trajectory
}

func TestCalculateMetrics_totalReturn(t *testing.T) {
	trajectory := trajectoryFromValues(1000, []int{0, 31, 60, 91, 121}, []float64{1000, 1100, 1050, 1200, 1300})

	metrics, err := CalculateMetrics(trajectory)
	require.NoError(t, err)

	require.Equal(t, float64(1300), metrics.FinalValue)
	require.Equal(t, float64(30), metrics.TotalReturnPct)
}

func TestCalculateMetrics_cagr(t *testing.T) {
	t.Run("one year doubles", func(t *testing.T) {
		trajectory := trajectoryFromValues(1000, []int{0, 183, 365}, []float64{1000, 1500, 2000})

		metrics, err := CalculateMetrics(trajectory)
		require.NoError(t, err)

		require.NotNil(t, metrics.CagrPct)
		expected := (math.Pow(2, 365.25/365) - 1) * 100
		require.InDelta(t, expected, *metrics.CagrPct, 1e-9)
	})

	t.Run("sub-day range has no cagr", func(t *testing.T) {
		trajectory := domain.Trajectory{
			{Date: util.NewDate(2020, 1, 1), MarketValue: 1000, CumulativeInvested: 1000},
			{Date: util.NewDate(2020, 1, 1).Add(time.Hour), MarketValue: 1010, CumulativeInvested: 1000},
		}

		metrics, err := CalculateMetrics(trajectory)
		require.NoError(t, err)

		require.Nil(t, metrics.CagrPct)
		require.Nil(t, metrics.RiskAdjustedReturn)
	})
}

func TestCalculateMetrics_maxDrawdown(t *testing.T) {
	t.Run("non-decreasing trajectory has zero drawdown", func(t *testing.T) {
		trajectory := trajectoryFromValues(1000, []int{0, 31, 60, 91}, []float64{1000, 1000, 1100, 1200})

		metrics, err := CalculateMetrics(trajectory)
		require.NoError(t, err)

		require.Equal(t, float64(0), metrics.MaxDrawdownPct)
	})

	t.Run("peak to trough decline", func(t *testing.T) {
		// peak 1200, trough 900 -> -25%
		trajectory := trajectoryFromValues(1000, []int{0, 31, 60, 91, 121}, []float64{1000, 1200, 900, 1100, 1300})

		metrics, err := CalculateMetrics(trajectory)
		require.NoError(t, err)

		require.InDelta(t, -25, metrics.MaxDrawdownPct, 1e-9)
		require.LessOrEqual(t, metrics.MaxDrawdownPct, float64(0))
	})
}

func TestCalculateMetrics_volatility(t *testing.T) {
	t.Run("flat trajectory has zero volatility and no risk-adjusted return", func(t *testing.T) {
		trajectory := trajectoryFromValues(1000, []int{0, 31, 60, 91}, []float64{1000, 1000, 1000, 1000})

		metrics, err := CalculateMetrics(trajectory)
		require.NoError(t, err)

		require.Equal(t, float64(0), metrics.VolatilityPct)
		require.Nil(t, metrics.RiskAdjustedReturn)
	})

	t.Run("moving trajectory has positive volatility", func(t *testing.T) {
		trajectory := trajectoryFromValues(1000, []int{0, 31, 60, 91, 121}, []float64{1000, 1100, 1050, 1200, 1300})

		metrics, err := CalculateMetrics(trajectory)
		require.NoError(t, err)

		require.Greater(t, metrics.VolatilityPct, float64(0))
		require.NotNil(t, metrics.RiskAdjustedReturn)
		require.InDelta(t, *metrics.CagrPct / metrics.VolatilityPct, *metrics.RiskAdjustedReturn, 1e-12)
	})
}

func TestCalculateMetrics_requiresTwoPoints(t *testing.T) {
	_, err := CalculateMetrics(domain.Trajectory{
		{Date: util.NewDate(2020, 1, 1), MarketValue: 1000, CumulativeInvested: 1000},
	})
	require.Error(t, err)
}
