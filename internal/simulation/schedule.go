package simulation

import (
	"time"

	"github.com/rbeaulieu03/portfolio-simulator/internal/domain"
)

// contributionSchedule returns the series indices of the distinct
// contribution dates for a DCA config. Scheduled calendar dates are
// snapped forward to the next trading date; two scheduled dates that
// snap onto the same trading date merge into one combined contribution.
//
// scheduled is the raw count before merging, so callers can tell when
// the schedule shrank.
func contributionSchedule(series *domain.PriceSeries, rng resolvedRange, freq Frequency) (indices []int, scheduled int) {
	start := series.DateAt(rng.startIdx)
	end := series.DateAt(rng.endIdx)

	// monthly-and-longer frequencies anchor to the start's day of
	// month, capped at 28 so no month gets skipped
	anchorDay := start.Day()
	if anchorDay > 28 {
		anchorDay = 28
	}

	// advance over raw calendar dates, snapping each one - two raw
	// dates landing in the same gap between trading days snap onto the
	// same index and merge
	indices = []int{}
	current := start
	for !current.After(end) {
		scheduled++
		idx, ok := series.SnapForward(current)
		if !ok || idx > rng.endIdx {
			break
		}
		if len(indices) == 0 || indices[len(indices)-1] != idx {
			indices = append(indices, idx)
		}

		current = nextScheduledDate(current, freq, anchorDay)
	}

	return indices, scheduled
}

func nextScheduledDate(from time.Time, freq Frequency, anchorDay int) time.Time {
	switch freq {
	case Frequency_Daily:
		return from.AddDate(0, 0, 1)
	case Frequency_Weekly:
		return from.AddDate(0, 0, 7)
	case Frequency_Monthly:
		return addMonthsAnchored(from, 1, anchorDay)
	case Frequency_Quarterly:
		return addMonthsAnchored(from, 3, anchorDay)
	case Frequency_SemiAnnually:
		return addMonthsAnchored(from, 6, anchorDay)
	case Frequency_Annually:
		return addMonthsAnchored(from, 12, anchorDay)
	}
	// NewFrequency guards the input set; default to monthly
	return addMonthsAnchored(from, 1, anchorDay)
}

// addMonthsAnchored advances by whole months while pinning the day of
// month, so a schedule started on the 15th contributes on the 15th of
// each later month instead of drifting with snapped dates.
func addMonthsAnchored(from time.Time, months, anchorDay int) time.Time {
	firstOfMonth := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	next := firstOfMonth.AddDate(0, months, 0)
	return time.Date(next.Year(), next.Month(), anchorDay, 0, 0, 0, 0, time.UTC)
}
