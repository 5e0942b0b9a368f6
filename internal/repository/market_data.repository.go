package repository

import (
	"context"
	"fmt"
	"portfoliotracker/internal/cache"
	"portfoliotracker/internal/domain"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
)

const (
	historyCacheTtl = 15 * time.Minute
	quoteCacheTtl   = time.Minute
)

// MarketDataRepository serves per-symbol daily price history and
// current quotes from Yahoo, behind an injected TTL cache so repeated
// requests within a session don't re-fetch.
type MarketDataRepository interface {
	HistoricalPrices(ctx context.Context, symbol string, start time.Time) ([]domain.PricePoint, error)
	CurrentPrice(ctx context.Context, symbol string) (*domain.AssetQuote, error)
}

func NewMarketDataRepository() MarketDataRepository {
	return &marketDataRepositoryHandler{
		historyCache: cache.New[string, []domain.PricePoint](historyCacheTtl),
		quoteCache:   cache.New[string, domain.AssetQuote](quoteCacheTtl),
	}
}

type marketDataRepositoryHandler struct {
	historyCache *cache.Cache[string, []domain.PricePoint]
	quoteCache   *cache.Cache[string, domain.AssetQuote]
}

func (h *marketDataRepositoryHandler) HistoricalPrices(ctx context.Context, symbol string, start time.Time) ([]domain.PricePoint, error) {
	key := fmt.Sprintf("%s|%s", symbol, start.Format(time.DateOnly))
	if cached, ok := h.historyCache.Get(key); ok {
		return cached, nil
	}

	now := time.Now().UTC()
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	points := []domain.PricePoint{}
	for iter.Next() {
		points = append(points, domain.PricePoint{
			Date:  time.Unix(int64(iter.Bar().Timestamp), 0).UTC(),
			Price: iter.Bar().AdjClose.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	h.historyCache.Set(key, points)
	return points, nil
}

func (h *marketDataRepositoryHandler) CurrentPrice(ctx context.Context, symbol string) (*domain.AssetQuote, error) {
	if cached, ok := h.quoteCache.Get(symbol); ok {
		return &cached, nil
	}

	q, err := quote.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}
	if q == nil || q.RegularMarketPrice <= 0 {
		return nil, fmt.Errorf("no quote available for %s", symbol)
	}

	currency, err := domain.ParseCurrency(q.CurrencyID)
	if err != nil {
		// fall back to the exchange-suffix classification when the
		// provider reports a currency we don't carry
		currency = domain.NativeCurrency(symbol)
	}

	result := domain.AssetQuote{
		Symbol:   symbol,
		Price:    q.RegularMarketPrice,
		Currency: currency,
		Date:     time.Unix(int64(q.RegularMarketTime), 0).UTC(),
	}
	h.quoteCache.Set(symbol, result)

	return &result, nil
}
