package domain

import (
	"time"
)

// CashFlowEvent records capital entering the position. LumpSum
// simulations produce exactly one, DCA one per distinct contribution
// date.
type CashFlowEvent struct {
	Date           time.Time
	AmountInvested float64
	SharesAcquired float64
}

type TrajectoryPoint struct {
	Date               time.Time
	TotalSharesHeld    float64
	MarketValue        float64
	CumulativeInvested float64
}

// Trajectory is the portfolio value path of one simulated strategy,
// one point per trading date in the simulated range. It is built
// append-only during simulation and frozen afterwards.
type Trajectory []TrajectoryPoint

func (t Trajectory) First() TrajectoryPoint {
	return t[0]
}

func (t Trajectory) Last() TrajectoryPoint {
	return t[len(t)-1]
}

// SameDateIndex reports whether two trajectories cover an identical
// run of dates, point for point.
func (t Trajectory) SameDateIndex(other Trajectory) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if !t[i].Date.Equal(other[i].Date) {
			return false
		}
	}
	return true
}
