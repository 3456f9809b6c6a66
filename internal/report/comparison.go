package report

import (
	"time"

	"github.com/rbeaulieu03/portfolio-simulator/internal/calculator"
	"github.com/rbeaulieu03/portfolio-simulator/internal/simulation"
)

// MismatchedRangeError is returned when a comparison is requested
// between trajectories that do not share an identical date index.
type MismatchedRangeError struct {
	LumpSumPoints int
	DcaPoints     int
}

func (e MismatchedRangeError) Error() string {
	return "cannot compare trajectories over different date ranges"
}

// StrategyLeg is one side of a comparison: the simulated result plus
// its derived metrics.
type StrategyLeg struct {
	Result  simulation.SimulationResult
	Metrics calculator.Metrics
}

type DifferencePoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// ComparisonReport pairs a lump sum and a DCA run over the same
// instrument and date range. Difference is valueDCA - valueLumpSum on
// each shared date, ready for charting by the caller - no new math
// happens here.
type ComparisonReport struct {
	Symbol     string
	LumpSum    StrategyLeg
	Dca        StrategyLeg
	Difference []DifferencePoint
}

func New(lumpSum, dca StrategyLeg) (*ComparisonReport, error) {
	if !lumpSum.Result.Trajectory.SameDateIndex(dca.Result.Trajectory) {
		return nil, MismatchedRangeError{
			LumpSumPoints: len(lumpSum.Result.Trajectory),
			DcaPoints:     len(dca.Result.Trajectory),
		}
	}

	difference := make([]DifferencePoint, 0, len(dca.Result.Trajectory))
	for i, point := range dca.Result.Trajectory {
		difference = append(difference, DifferencePoint{
			Date:  point.Date,
			Value: point.MarketValue - lumpSum.Result.Trajectory[i].MarketValue,
		})
	}

	return &ComparisonReport{
		Symbol:     lumpSum.Result.Symbol,
		LumpSum:    lumpSum,
		Dca:        dca,
		Difference: difference,
	}, nil
}
