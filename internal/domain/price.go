package domain

import (
	"fmt"
	"sort"
	"time"
)

type PricePoint struct {
	Date  time.Time
	Price float64
}

// PriceSeries is an ordered run of daily closes for one instrument.
// Dates are strictly increasing with no duplicates, all prices
// positive, and at least two points - NewPriceSeries enforces this
// so downstream code never re-validates.
type PriceSeries struct {
	Symbol string
	Points []PricePoint
}

func NewPriceSeries(symbol string, points []PricePoint) (*PriceSeries, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("price series for %s needs at least 2 points, got %d", symbol, len(points))
	}
	for i, p := range points {
		if p.Price <= 0 {
			return nil, fmt.Errorf("price series for %s has non-positive price %f on %s", symbol, p.Price, p.Date.Format(time.DateOnly))
		}
		if i > 0 && !points[i-1].Date.Before(p.Date) {
			return nil, fmt.Errorf("price series for %s is not strictly ascending at %s", symbol, p.Date.Format(time.DateOnly))
		}
	}

	return &PriceSeries{
		Symbol: symbol,
		Points: points,
	}, nil
}

func (s PriceSeries) Len() int {
	return len(s.Points)
}

func (s PriceSeries) FirstDate() time.Time {
	return s.Points[0].Date
}

func (s PriceSeries) LastDate() time.Time {
	return s.Points[len(s.Points)-1].Date
}

// SnapForward returns the index of the first trading date on or after
// t. Requested dates never move backward - a date past the end of the
// series has no forward snap, so ok is false.
func (s PriceSeries) SnapForward(t time.Time) (int, bool) {
	i := sort.Search(len(s.Points), func(i int) bool {
		return !s.Points[i].Date.Before(t)
	})
	if i == len(s.Points) {
		return 0, false
	}
	return i, true
}

// IndexOf returns the position of an exact trading date, or false if
// the date has no price observation.
func (s PriceSeries) IndexOf(t time.Time) (int, bool) {
	i, ok := s.SnapForward(t)
	if !ok || !s.Points[i].Date.Equal(t) {
		return 0, false
	}
	return i, true
}

func (s PriceSeries) PriceAt(i int) float64 {
	return s.Points[i].Price
}

func (s PriceSeries) DateAt(i int) time.Time {
	return s.Points[i].Date
}
