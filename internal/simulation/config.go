package simulation

import (
	"fmt"
	"strings"
	"time"

	"github.com/rbeaulieu03/portfolio-simulator/internal/domain"
)

type StrategyKind string

const (
	StrategyKind_LumpSum StrategyKind = "LUMP_SUM"
	StrategyKind_DCA     StrategyKind = "DCA"
)

func NewStrategyKind(s string) (*StrategyKind, error) {
	kind := StrategyKind(strings.ToUpper(s))
	switch kind {
	case StrategyKind_LumpSum, StrategyKind_DCA:
		return &kind, nil
	}
	if strings.EqualFold(s, "lumpSum") {
		k := StrategyKind_LumpSum
		return &k, nil
	}
	return nil, fmt.Errorf("unknown strategy kind %s", s)
}

type Frequency string

const (
	Frequency_Daily        Frequency = "DAILY"
	Frequency_Weekly       Frequency = "WEEKLY"
	Frequency_Monthly      Frequency = "MONTHLY"
	Frequency_Quarterly    Frequency = "QUARTERLY"
	Frequency_SemiAnnually Frequency = "SEMIANNUALLY"
	Frequency_Annually     Frequency = "ANNUALLY"
)

func NewFrequency(s string) (*Frequency, error) {
	f := Frequency(strings.ToUpper(s))
	switch f {
	case Frequency_Daily, Frequency_Weekly, Frequency_Monthly,
		Frequency_Quarterly, Frequency_SemiAnnually, Frequency_Annually:
		return &f, nil
	}
	return nil, fmt.Errorf("unknown contribution frequency %s", s)
}

// StrategyConfig describes one simulation request. ContributionFrequency
// only applies to DCA configs and is ignored for lump sum.
type StrategyConfig struct {
	Kind                  StrategyKind
	StartDate             time.Time
	EndDate               time.Time
	TotalCapital          float64
	ContributionFrequency Frequency
}

// resolvedRange is the config's date range mapped onto series indices,
// after snapping requested dates forward to trading dates.
type resolvedRange struct {
	startIdx int
	endIdx   int
	notes    []domain.Note
}

// resolveRange validates the config against the series and snaps the
// requested dates onto the trading calendar. Snaps only ever move a
// date forward, and are reported as advisory notes rather than errors.
func resolveRange(series *domain.PriceSeries, config StrategyConfig) (*resolvedRange, error) {
	if !config.StartDate.Before(config.EndDate) {
		return nil, InvalidRangeError{Start: config.StartDate, End: config.EndDate}
	}
	if config.TotalCapital <= 0 {
		return nil, InvalidAmountError{Amount: config.TotalCapital}
	}

	for _, requested := range []time.Time{config.StartDate, config.EndDate} {
		if requested.Before(series.FirstDate()) || requested.After(series.LastDate()) {
			return nil, OutOfRangeError{
				Requested:   requested,
				SeriesStart: series.FirstDate(),
				SeriesEnd:   series.LastDate(),
			}
		}
	}

	notes := []domain.Note{}

	startIdx, ok := series.SnapForward(config.StartDate)
	if !ok {
		// unreachable after the span check, but keep the error honest
		return nil, OutOfRangeError{Requested: config.StartDate, SeriesStart: series.FirstDate(), SeriesEnd: series.LastDate()}
	}
	if !series.DateAt(startIdx).Equal(config.StartDate) {
		notes = append(notes, domain.Note{
			Kind: domain.NoteKind_DateAdjusted,
			Message: fmt.Sprintf(
				"start date %s is not a trading date; moved forward to %s",
				config.StartDate.Format(time.DateOnly),
				series.DateAt(startIdx).Format(time.DateOnly),
			),
		})
	}

	endIdx, ok := series.SnapForward(config.EndDate)
	if !ok {
		return nil, OutOfRangeError{Requested: config.EndDate, SeriesStart: series.FirstDate(), SeriesEnd: series.LastDate()}
	}
	if !series.DateAt(endIdx).Equal(config.EndDate) {
		notes = append(notes, domain.Note{
			Kind: domain.NoteKind_DateAdjusted,
			Message: fmt.Sprintf(
				"end date %s is not a trading date; moved forward to %s",
				config.EndDate.Format(time.DateOnly),
				series.DateAt(endIdx).Format(time.DateOnly),
			),
		})
	}

	if endIdx-startIdx+1 < 2 {
		return nil, InsufficientDataError{
			Symbol:        series.Symbol,
			PointsInRange: endIdx - startIdx + 1,
		}
	}

	return &resolvedRange{
		startIdx: startIdx,
		endIdx:   endIdx,
		notes:    notes,
	}, nil
}
