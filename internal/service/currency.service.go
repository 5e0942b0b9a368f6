package service

import (
	"context"
	"fmt"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/repository"
)

// CurrencyService converts amounts between supported currencies.
// Convert is idempotent and safe to retry; callers that can tolerate a
// missing rate are expected to fall back to the unconverted amount.
type CurrencyService interface {
	Convert(ctx context.Context, amount float64, from, to domain.Currency) (float64, error)
}

func NewCurrencyService(rateRepository repository.CurrencyRateRepository) CurrencyService {
	return currencyServiceHandler{
		RateRepository: rateRepository,
	}
}

type currencyServiceHandler struct {
	RateRepository repository.CurrencyRateRepository
}

func (h currencyServiceHandler) Convert(ctx context.Context, amount float64, from, to domain.Currency) (float64, error) {
	if from == to {
		return amount, nil
	}

	rate, err := h.RateRepository.Rate(ctx, from, to)
	if err != nil {
		return 0, fmt.Errorf("failed to convert %f from %s to %s: %w", amount, from, to, err)
	}

	return amount * rate, nil
}
