package report

import (
	"errors"
	"testing"

	"github.com/rbeaulieu03/portfolio-simulator/internal/calculator"
	"github.com/rbeaulieu03/portfolio-simulator/internal/domain"
	"github.com/rbeaulieu03/portfolio-simulator/internal/simulation"
	"github.com/rbeaulieu03/portfolio-simulator/internal/util"

	"github.com/stretchr/testify/require"
)

func buildLegs(t *testing.T) (StrategyLeg, StrategyLeg) {
	t.Helper()
	series, err := domain.NewPriceSeries("TEST", []domain.PricePoint{
		{Date: util.NewDate(2020, 1, 1), Price: 100},
		{Date: util.NewDate(2020, 2, 1), Price: 110},
		{Date: util.NewDate(2020, 3, 1), Price: 105},
		{Date: util.NewDate(2020, 4, 1), Price: 120},
		{Date: util.NewDate(2020, 5, 1), Price: 130},
	})
	require.NoError(t, err)

	lumpSum, err := simulation.Simulate(series, simulation.StrategyConfig{
		Kind:         simulation.StrategyKind_LumpSum,
		StartDate:    util.NewDate(2020, 1, 1),
		EndDate:      util.NewDate(2020, 5, 1),
		TotalCapital: 1000,
	})
	require.NoError(t, err)

	dca, err := simulation.Simulate(series, simulation.StrategyConfig{
		Kind:                  simulation.StrategyKind_DCA,
		StartDate:             util.NewDate(2020, 1, 1),
		EndDate:               util.NewDate(2020, 5, 1),
		TotalCapital:          1000,
		ContributionFrequency: simulation.Frequency_Monthly,
	})
	require.NoError(t, err)

	lumpSumMetrics, err := calculator.CalculateMetrics(lumpSum.Trajectory)
	require.NoError(t, err)
	dcaMetrics, err := calculator.CalculateMetrics(dca.Trajectory)
	require.NoError(t, err)

	return StrategyLeg{Result: *lumpSum, Metrics: *lumpSumMetrics},
		StrategyLeg{Result: *dca, Metrics: *dcaMetrics}
}

func TestNew(t *testing.T) {
	lumpSumLeg, dcaLeg := buildLegs(t)

	comparison, err := New(lumpSumLeg, dcaLeg)
	require.NoError(t, err)

	require.Equal(t, "TEST", comparison.Symbol)
	require.Len(t, comparison.Difference, 5)
	for i, d := range comparison.Difference {
		require.Equal(t, dcaLeg.Result.Trajectory[i].Date, d.Date)
		require.Equal(
			t,
			dcaLeg.Result.Trajectory[i].MarketValue-lumpSumLeg.Result.Trajectory[i].MarketValue,
			d.Value,
		)
	}
}

func TestNew_mismatchedRange(t *testing.T) {
	lumpSumLeg, dcaLeg := buildLegs(t)
	dcaLeg.Result.Trajectory = dcaLeg.Result.Trajectory[1:]

	_, err := New(lumpSumLeg, dcaLeg)
	var mismatched MismatchedRangeError
	require.True(t, errors.As(err, &mismatched))
}
