package repository

import (
	"context"
	"fmt"
	"portfoliotracker/internal/cache"
	"portfoliotracker/internal/domain"
	"portfoliotracker/pkg/fxrates"
	"time"
)

const rateCacheTtl = 30 * time.Minute

// CurrencyRateRepository resolves FX rates between supported
// currencies, caching each pair for a bounded window.
type CurrencyRateRepository interface {
	Rate(ctx context.Context, from, to domain.Currency) (float64, error)
}

func NewCurrencyRateRepository(client *fxrates.Client) CurrencyRateRepository {
	return &currencyRateRepositoryHandler{
		Client: client,
		cache:  cache.New[string, float64](rateCacheTtl),
	}
}

type currencyRateRepositoryHandler struct {
	Client *fxrates.Client
	cache  *cache.Cache[string, float64]
}

func (h *currencyRateRepositoryHandler) Rate(ctx context.Context, from, to domain.Currency) (float64, error) {
	if from == to {
		return 1, nil
	}

	key := fmt.Sprintf("%s|%s", from, to)
	if rate, ok := h.cache.Get(key); ok {
		return rate, nil
	}

	rate, err := h.Client.GetRate(ctx, from.IsoCode(), to.IsoCode())
	if err != nil {
		return 0, fmt.Errorf("failed to get rate %s to %s: %w", from, to, err)
	}

	h.cache.Set(key, rate)
	return rate, nil
}
