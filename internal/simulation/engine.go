package simulation

import (
	"fmt"
	"time"

	"github.com/rbeaulieu03/portfolio-simulator/internal/domain"
)

// SimulationResult is one simulated strategy: the value path, the cash
// flows that produced it, and any advisory notes picked up along the
// way (snapped dates, shrunk schedules).
type SimulationResult struct {
	Symbol     string
	Config     StrategyConfig
	Trajectory domain.Trajectory
	CashFlows  []domain.CashFlowEvent
	Notes      []domain.Note
}

// Simulate runs one strategy against a price series. It is a pure
// function - no clock, no I/O - so identical inputs always produce
// bit-identical trajectories.
func Simulate(series *domain.PriceSeries, config StrategyConfig) (*SimulationResult, error) {
	rng, err := resolveRange(series, config)
	if err != nil {
		return nil, err
	}
	notes := rng.notes

	var contributionIndices []int
	switch config.Kind {
	case StrategyKind_LumpSum:
		contributionIndices = []int{rng.startIdx}
	case StrategyKind_DCA:
		indices, scheduled := contributionSchedule(series, *rng, config.ContributionFrequency)
		if len(indices) == 0 {
			// range shorter than one period - contribute everything
			// at the start, same as lump sum
			indices = []int{rng.startIdx}
		}
		if len(indices) == 1 {
			notes = append(notes, domain.Note{
				Kind: domain.NoteKind_SingleFallback,
				Message: fmt.Sprintf(
					"%s schedule produced a single contribution date; result is equivalent to lump sum",
					config.ContributionFrequency,
				),
			})
		} else if scheduled > len(indices) {
			notes = append(notes, domain.Note{
				Kind: domain.NoteKind_ScheduleShrunk,
				Message: fmt.Sprintf(
					"%d scheduled contributions merged into %d trading dates; capital redistributed evenly",
					scheduled, len(indices),
				),
			})
		}
		contributionIndices = indices
	default:
		return nil, fmt.Errorf("unknown strategy kind %s", config.Kind)
	}

	amountPerContribution := config.TotalCapital / float64(len(contributionIndices))

	cashFlows := []domain.CashFlowEvent{}
	trajectory := domain.Trajectory{}

	totalShares := 0.0
	cumulativeInvested := 0.0
	nextContribution := 0
	for i := rng.startIdx; i <= rng.endIdx; i++ {
		price := series.PriceAt(i)
		if nextContribution < len(contributionIndices) && contributionIndices[nextContribution] == i {
			sharesAcquired := amountPerContribution / price
			totalShares += sharesAcquired
			cumulativeInvested += amountPerContribution
			cashFlows = append(cashFlows, domain.CashFlowEvent{
				Date:           series.DateAt(i),
				AmountInvested: amountPerContribution,
				SharesAcquired: sharesAcquired,
			})
			nextContribution++
		}

		trajectory = append(trajectory, domain.TrajectoryPoint{
			Date:               series.DateAt(i),
			TotalSharesHeld:    totalShares,
			MarketValue:        totalShares * price,
			CumulativeInvested: cumulativeInvested,
		})
	}

	return &SimulationResult{
		Symbol:     series.Symbol,
		Config:     config,
		Trajectory: trajectory,
		CashFlows:  cashFlows,
		Notes:      notes,
	}, nil
}

// Span is the simulated window as it landed on the trading calendar.
func (r SimulationResult) Span() (start, end time.Time) {
	return r.Trajectory.First().Date, r.Trajectory.Last().Date
}
