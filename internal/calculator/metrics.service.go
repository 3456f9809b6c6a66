package calculator

import (
	"fmt"
	"math"

	"github.com/rbeaulieu03/portfolio-simulator/internal/domain"

	"github.com/montanaflynn/stats"
)

const daysPerYear = 365.25

// Metrics summarizes one trajectory. CagrPct and RiskAdjustedReturn
// are nil when they cannot be computed (sub-day ranges, zero
// volatility) instead of going infinite.
type Metrics struct {
	FinalValue         float64  `json:"finalValue"`
	TotalReturnPct     float64  `json:"totalReturnPct"`
	CagrPct            *float64 `json:"cagrPct"`
	VolatilityPct      float64  `json:"volatilityPct"`
	MaxDrawdownPct     float64  `json:"maxDrawdownPct"`
	RiskAdjustedReturn *float64 `json:"riskAdjustedReturn"`
}

// CalculateMetrics derives summary statistics from a trajectory. It
// never mutates the trajectory and can be re-run at any time.
//
// CAGR compounds final value against the first cumulative investment,
// so for DCA it overstates the true money-weighted rate - same
// simplification the rest of the report makes.
func CalculateMetrics(trajectory domain.Trajectory) (*Metrics, error) {
	if len(trajectory) < 2 {
		return nil, fmt.Errorf("cannot calculate metrics on < 2 trajectory points")
	}

	first := trajectory.First()
	last := trajectory.Last()

	if last.CumulativeInvested <= 0 {
		return nil, fmt.Errorf("cannot calculate metrics on trajectory with no invested capital")
	}

	totalReturnPct := (last.MarketValue - last.CumulativeInvested) / last.CumulativeInvested * 100

	var cagrPct *float64
	daysElapsed := last.Date.Sub(first.Date).Hours() / 24
	if daysElapsed >= 1 && first.CumulativeInvested > 0 {
		cagr := (math.Pow(last.MarketValue/first.CumulativeInvested, daysPerYear/daysElapsed) - 1) * 100
		cagrPct = &cagr
	}

	volatilityPct, err := annualizedVolatility(trajectory)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate volatility: %w", err)
	}

	var riskAdjustedReturn *float64
	if cagrPct != nil && volatilityPct > 0 {
		rar := *cagrPct / volatilityPct
		riskAdjustedReturn = &rar
	}

	return &Metrics{
		FinalValue:         last.MarketValue,
		TotalReturnPct:     totalReturnPct,
		CagrPct:            cagrPct,
		VolatilityPct:      volatilityPct,
		MaxDrawdownPct:     maxDrawdownPct(trajectory),
		RiskAdjustedReturn: riskAdjustedReturn,
	}, nil
}

// annualizedVolatility is the population stdev of period-over-period
// percent changes in market value, scaled by sqrt of the number of
// periods per year. The period length is inferred from the median
// spacing of the trajectory so daily and monthly series both annualize
// correctly.
func annualizedVolatility(trajectory domain.Trajectory) (float64, error) {
	returns := make([]float64, 0, len(trajectory)-1)
	spacings := make([]float64, 0, len(trajectory)-1)
	for i := 1; i < len(trajectory); i++ {
		prev := trajectory[i-1]
		curr := trajectory[i]
		if prev.MarketValue != 0 {
			returns = append(returns, (curr.MarketValue-prev.MarketValue)/prev.MarketValue)
		}
		spacings = append(spacings, curr.Date.Sub(prev.Date).Hours()/24)
	}
	if len(returns) == 0 {
		return 0, nil
	}

	stdev, err := stats.StandardDeviationPopulation(returns)
	if err != nil {
		return 0, err
	}

	medianSpacing, err := stats.Median(spacings)
	if err != nil {
		return 0, err
	}
	if medianSpacing <= 0 {
		return 0, fmt.Errorf("trajectory has non-positive median spacing %f", medianSpacing)
	}
	periodsPerYear := daysPerYear / medianSpacing

	return stdev * math.Sqrt(periodsPerYear) * 100, nil
}

// maxDrawdownPct is the deepest peak-to-trough decline along the
// trajectory, as a percentage <= 0. A series that never declines has
// drawdown 0.
func maxDrawdownPct(trajectory domain.Trajectory) float64 {
	runningMax := trajectory.First().MarketValue
	maxDrawdown := 0.0
	for _, point := range trajectory {
		if point.MarketValue > runningMax {
			runningMax = point.MarketValue
		}
		if runningMax > 0 {
			drawdown := (point.MarketValue - runningMax) / runningMax
			if drawdown < maxDrawdown {
				maxDrawdown = drawdown
			}
		}
	}
	return maxDrawdown * 100
}
