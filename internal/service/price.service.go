package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rbeaulieu03/portfolio-simulator/internal/db/models/postgres/public/model"
	"github.com/rbeaulieu03/portfolio-simulator/internal/domain"
	"github.com/rbeaulieu03/portfolio-simulator/internal/logger"
	"github.com/rbeaulieu03/portfolio-simulator/internal/repository"
	"github.com/rbeaulieu03/portfolio-simulator/internal/simulation"
	"github.com/rbeaulieu03/portfolio-simulator/internal/util"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

/**

behavior - when someone asks for a price series, serve it from the db
without refetching. the in-memory cache is keyed by ticker+range with a
TTL, so repeated what-if comparisons over the same window don't hit
the db every time. ingestion (network) only happens on explicit update
calls, never inside a simulation request.

*/

type PriceService interface {
	GetPriceSeries(ctx context.Context, symbol string, start, end time.Time) (*domain.PriceSeries, []domain.Note, error)
	UpdatePricesIfNeeded(ctx context.Context, symbols []string) error
	Ingest(ctx context.Context, symbol string, start *time.Time) error
}

type seriesCacheKey struct {
	symbol string
	start  string
	end    string
}

type seriesCacheEntry struct {
	series   *domain.PriceSeries
	notes    []domain.Note
	loadedAt time.Time
}

type priceServiceHandler struct {
	Db                 *sql.DB
	AdjPriceRepository repository.AdjustedPriceRepository

	cacheTtl time.Duration
	now      func() time.Time
	mu       sync.RWMutex
	cache    map[seriesCacheKey]seriesCacheEntry
}

const defaultSeriesCacheTtl = 15 * time.Minute

func NewPriceService(db *sql.DB, adjPriceRepository repository.AdjustedPriceRepository) PriceService {
	return &priceServiceHandler{
		Db:                 db,
		AdjPriceRepository: adjPriceRepository,
		cacheTtl:           defaultSeriesCacheTtl,
		now:                time.Now,
		cache:              map[seriesCacheKey]seriesCacheEntry{},
	}
}

func (h *priceServiceHandler) getCached(key seriesCacheKey) (*seriesCacheEntry, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	entry, ok := h.cache[key]
	if !ok || h.now().Sub(entry.loadedAt) > h.cacheTtl {
		return nil, false
	}
	return &entry, true
}

func (h *priceServiceHandler) setCached(key seriesCacheKey, entry seriesCacheEntry) {
	h.mu.Lock()
	h.cache[key] = entry
	h.mu.Unlock()
}

func (h *priceServiceHandler) invalidateSymbol(symbol string) {
	h.mu.Lock()
	for key := range h.cache {
		if key.symbol == symbol {
			delete(h.cache, key)
		}
	}
	h.mu.Unlock()
}

// GetPriceSeries loads the stored price history for symbol over
// [start, end]. Thin or missing history surfaces as
// InsufficientDataError - fetch failures upstream look the same as no
// data to the simulation layer.
func (h *priceServiceHandler) GetPriceSeries(ctx context.Context, symbol string, start, end time.Time) (*domain.PriceSeries, []domain.Note, error) {
	key := seriesCacheKey{
		symbol: symbol,
		start:  start.Format(time.DateOnly),
		end:    end.Format(time.DateOnly),
	}
	if entry, ok := h.getCached(key); ok {
		return entry.series, entry.notes, nil
	}

	points, err := h.AdjPriceRepository.List(symbol, start, end)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load price series for %s: %w", symbol, err)
	}
	if len(points) < 2 {
		return nil, nil, simulation.InsufficientDataError{
			Symbol:        symbol,
			PointsInRange: len(points),
		}
	}

	series, err := domain.NewPriceSeries(symbol, points)
	if err != nil {
		return nil, nil, fmt.Errorf("stored prices for %s are not a valid series: %w", symbol, err)
	}

	entry := seriesCacheEntry{
		series:   series,
		notes:    []domain.Note{},
		loadedAt: h.now(),
	}
	h.setCached(key, entry)

	return entry.series, entry.notes, nil
}

// Ingest pulls daily bars for symbol from the market data feed and
// upserts them into the price table. Bars without an adjusted close
// fall back to the raw close, with a warning.
func (h *priceServiceHandler) Ingest(ctx context.Context, symbol string, start *time.Time) error {
	log := logger.FromContext(ctx)

	s := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	if start != nil {
		s = *start
	}
	now := h.now()
	params := &chart.Params{
		Start:    datetime.New(&s),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	models := []model.AdjustedPrice{}
	usedUnadjustedClose := false

	for iter.Next() {
		bar := iter.Bar()
		price := bar.AdjClose
		if price.IsZero() {
			price = bar.Close
			usedUnadjustedClose = true
		}
		models = append(models, model.AdjustedPrice{
			Symbol:    symbol,
			Date:      util.Midnight(time.Unix(int64(bar.Timestamp), 0).UTC()),
			Price:     price,
			CreatedAt: time.Now().UTC(),
		})
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	if usedUnadjustedClose {
		log.Warnf("adjusted close unavailable for some %s bars - stored raw close instead", symbol)
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback()

	err = h.AdjPriceRepository.Add(tx, models)
	if err != nil {
		return err
	}
	err = tx.Commit()
	if err != nil {
		return fmt.Errorf("failed to commit price ingestion for %s: %w", symbol, err)
	}

	h.invalidateSymbol(symbol)

	return nil
}

// UpdatePricesIfNeeded ingests any symbol whose stored history is
// missing or stale, fanning symbols out over a small worker pool.
func (h *priceServiceHandler) UpdatePricesIfNeeded(ctx context.Context, symbols []string) error {
	log := logger.FromContext(ctx)
	numGoroutines := 10
	if len(symbols) < numGoroutines {
		numGoroutines = len(symbols)
	}

	inputCh := make(chan string, len(symbols))

	var wg sync.WaitGroup
	for _, s := range symbols {
		wg.Add(1)
		inputCh <- s
	}
	close(inputCh)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					return
				case symbol, ok := <-inputCh:
					if !ok {
						return
					}
					err := h.updateSymbolIfNeeded(ctx, symbol)
					if err != nil {
						log.Warnf("failed to update prices for %s: %s", symbol, err.Error())
					}
					wg.Done()
				}
			}
		}()
	}

	wg.Wait()

	return nil
}

func (h *priceServiceHandler) updateSymbolIfNeeded(ctx context.Context, symbol string) error {
	latest, err := h.AdjPriceRepository.LatestDay(symbol)
	if err != nil && errors.Is(err, qrm.ErrNoRows) {
		// never ingested - pull the full history
		return h.Ingest(ctx, symbol, nil)
	} else if err != nil {
		return err
	}

	today := util.Midnight(h.now().UTC())
	if latest.Before(today) {
		return h.Ingest(ctx, symbol, latest)
	}

	return nil
}
