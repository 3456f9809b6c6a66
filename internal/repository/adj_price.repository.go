package repository

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rbeaulieu03/portfolio-simulator/internal/db/models/postgres/public/model"
	. "github.com/rbeaulieu03/portfolio-simulator/internal/db/models/postgres/public/table"
	"github.com/rbeaulieu03/portfolio-simulator/internal/domain"

	. "github.com/go-jet/jet/v2/postgres"
)

type AdjustedPriceRepository interface {
	Add(tx *sql.Tx, adjPrices []model.AdjustedPrice) error
	List(symbol string, start, end time.Time) ([]domain.PricePoint, error)
	ListTradingDays(symbol string, start, end time.Time) ([]time.Time, error)
	LatestDay(symbol string) (*time.Time, error)
}

type dayCache map[string]map[time.Time]float64

type adjustedPriceRepositoryHandler struct {
	Db        *sql.DB
	Cache     dayCache
	ReadMutex *sync.RWMutex
}

func NewAdjustedPriceRepository(db *sql.DB) AdjustedPriceRepository {
	return &adjustedPriceRepositoryHandler{
		Db:        db,
		Cache:     make(dayCache),
		ReadMutex: &sync.RWMutex{},
	}
}

func (h *adjustedPriceRepositoryHandler) addToCache(symbol string, date time.Time, price float64) {
	h.ReadMutex.Lock()
	if _, ok := h.Cache[symbol]; !ok {
		h.Cache[symbol] = map[time.Time]float64{}
	}
	h.Cache[symbol][date] = price
	h.ReadMutex.Unlock()
}

func (h *adjustedPriceRepositoryHandler) Add(tx *sql.Tx, adjPrices []model.AdjustedPrice) error {
	if len(adjPrices) == 0 {
		return nil
	}

	query := AdjustedPrice.
		INSERT(AdjustedPrice.MutableColumns).
		MODELS(adjPrices).
		ON_CONFLICT(
			AdjustedPrice.Symbol, AdjustedPrice.Date,
		).DO_UPDATE(
		SET(
			AdjustedPrice.Price.SET(AdjustedPrice.EXCLUDED.Price),
		),
	)

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to add adjusted prices to db: %w", err)
	}

	for _, p := range adjPrices {
		h.addToCache(p.Symbol, p.Date, p.Price.InexactFloat64())
	}

	return nil
}

func (h *adjustedPriceRepositoryHandler) List(symbol string, start, end time.Time) ([]domain.PricePoint, error) {
	minDate := DateT(start)
	maxDate := DateT(end)
	query := AdjustedPrice.
		SELECT(AdjustedPrice.AllColumns).
		WHERE(
			AND(
				AdjustedPrice.Symbol.EQ(String(symbol)),
				AdjustedPrice.Date.BETWEEN(minDate, maxDate),
			),
		).
		ORDER_BY(AdjustedPrice.Date.ASC())

	result := []model.AdjustedPrice{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices for %s: %w", symbol, err)
	}

	out := []domain.PricePoint{}
	for _, p := range result {
		out = append(out, domain.PricePoint{
			Date:  p.Date,
			Price: p.Price.InexactFloat64(),
		})
	}

	return out, nil
}

func (h *adjustedPriceRepositoryHandler) ListTradingDays(symbol string, start, end time.Time) ([]time.Time, error) {
	minDate := DateT(start)
	maxDate := DateT(end)
	query := AdjustedPrice.
		SELECT(AdjustedPrice.Date).
		WHERE(
			AND(
				AdjustedPrice.Symbol.EQ(String(symbol)),
				AdjustedPrice.Date.BETWEEN(minDate, maxDate),
			),
		).
		ORDER_BY(AdjustedPrice.Date.ASC())

	q, args := query.Sql()

	rows, err := h.Db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list trading days: %w", err)
	}
	defer rows.Close()

	out := []time.Time{}
	for rows.Next() {
		var d time.Time
		err := rows.Scan(&d)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, d)
	}

	return out, nil
}

func (h *adjustedPriceRepositoryHandler) LatestDay(symbol string) (*time.Time, error) {
	query := AdjustedPrice.
		SELECT(AdjustedPrice.AllColumns).
		WHERE(AdjustedPrice.Symbol.EQ(String(symbol))).
		ORDER_BY(AdjustedPrice.Date.DESC()).
		LIMIT(1)

	result := model.AdjustedPrice{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, fmt.Errorf("failed to get latest day for %s: %w", symbol, err)
	}

	return &result.Date, nil
}
