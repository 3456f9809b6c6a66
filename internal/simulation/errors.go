package simulation

import (
	"fmt"
	"time"
)

// InvalidRangeError is returned when the requested start date does not
// precede the end date.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: start %s must be before end %s", e.Start.Format(time.DateOnly), e.End.Format(time.DateOnly))
}

// InvalidAmountError is returned for a non-positive total capital.
type InvalidAmountError struct {
	Amount float64
}

func (e InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount: total capital must be positive, got %f", e.Amount)
}

// OutOfRangeError is returned when a requested date lies outside the
// span of the supplied price series. Out-of-range dates are rejected
// rather than clamped.
type OutOfRangeError struct {
	Requested   time.Time
	SeriesStart time.Time
	SeriesEnd   time.Time
}

func (e OutOfRangeError) Error() string {
	return fmt.Sprintf(
		"date %s is outside available price history (%s to %s)",
		e.Requested.Format(time.DateOnly),
		e.SeriesStart.Format(time.DateOnly),
		e.SeriesEnd.Format(time.DateOnly),
	)
}

// InsufficientDataError is returned when fewer than two usable price
// points fall within the requested range - nothing can be observed
// from a single point.
type InsufficientDataError struct {
	Symbol        string
	PointsInRange int
}

func (e InsufficientDataError) Error() string {
	return fmt.Sprintf("insufficient price data for %s: %d usable points in range, need at least 2", e.Symbol, e.PointsInRange)
}
