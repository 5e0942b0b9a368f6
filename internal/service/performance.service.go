package service

import (
	"context"
	"database/sql"
	"portfoliotracker/internal/calculator"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/repository"
	"sync"
	"time"

	"github.com/google/uuid"
)

// PerformanceService reconstructs a user's portfolio-value time series
// and derives its return, drawdown, and recovery metrics. The
// computation is a pure function of the fetched inputs; nothing is
// persisted or shared across requests, so concurrent requests for
// different users never interact.
type PerformanceService interface {
	GetPortfolioPerformance(ctx context.Context, userID uuid.UUID, period domain.Period, currency domain.Currency) (*domain.PortfolioPerformance, error)
}

func NewPerformanceService(
	db *sql.DB,
	transactionRepository repository.TransactionRepository,
	marketDataRepository repository.MarketDataRepository,
	currencyService CurrencyService,
) PerformanceService {
	return performanceServiceHandler{
		Db:                    db,
		TransactionRepository: transactionRepository,
		MarketDataRepository:  marketDataRepository,
		CurrencyService:       currencyService,
	}
}

type performanceServiceHandler struct {
	Db                    *sql.DB
	TransactionRepository repository.TransactionRepository
	MarketDataRepository  repository.MarketDataRepository
	CurrencyService       CurrencyService
}

func (h performanceServiceHandler) GetPortfolioPerformance(
	ctx context.Context,
	userID uuid.UUID,
	period domain.Period,
	currency domain.Currency,
) (*domain.PortfolioPerformance, error) {
	profile, endProfile := domain.GetProfile(ctx)
	defer endProfile()
	now := time.Now().UTC()

	_, endSpan := profile.StartNewSpan("list transactions")
	transactions, err := h.TransactionRepository.List(h.Db, userID)
	endSpan()
	if err != nil {
		return nil, err
	}

	result := &domain.PortfolioPerformance{
		Period:      period,
		Currency:    currency,
		Performance: []domain.PerformanceDataPoint{},
		Metrics:     calculator.CalculateMetrics(nil, now),
	}
	// no transactions is a valid empty result, not a fault
	if len(transactions) == 0 {
		return result, nil
	}

	_, endSpan = profile.StartNewSpan("fetch price histories")
	histories := h.fetchHistories(ctx, distinctSymbols(transactions), period.Start(now))
	endSpan()
	if len(histories) == 0 {
		return result, nil
	}

	_, endSpan = profile.StartNewSpan("build series")
	series := calculator.BuildSeries(ctx, transactions, histories, h.CurrencyService, currency, period.Start(now), now)
	endSpan()

	_, endSpan = profile.StartNewSpan("calculate metrics")
	result.Performance = series
	result.Metrics = calculator.CalculateMetrics(series, now)
	endSpan()

	return result, nil
}

const numFetchWorkers = 5

// fetchHistories retrieves each symbol's price history concurrently.
// A failed fetch drops that symbol from the result rather than failing
// the computation.
func (h performanceServiceHandler) fetchHistories(ctx context.Context, symbols []string, start time.Time) map[string][]domain.PricePoint {
	log := logger.FromContext(ctx)

	type workResult struct {
		symbol string
		points []domain.PricePoint
		err    error
	}

	inputCh := make(chan string, len(symbols))
	resultCh := make(chan workResult, len(symbols))
	var wg sync.WaitGroup
	for _, symbol := range symbols {
		wg.Add(1)
		inputCh <- symbol
	}
	close(inputCh)

	for i := 0; i < numFetchWorkers; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					// release the queued symbols this worker will
					// never process so wg.Wait can complete
					for range inputCh {
						wg.Done()
					}
					return
				case symbol, ok := <-inputCh:
					if !ok {
						return
					}
					points, err := h.MarketDataRepository.HistoricalPrices(ctx, symbol, start)
					resultCh <- workResult{
						symbol: symbol,
						points: points,
						err:    err,
					}
					wg.Done()
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	histories := map[string][]domain.PricePoint{}
	for res := range resultCh {
		if res.err != nil {
			log.Warnf("failed to fetch price history for %s, dropping symbol: %v", res.symbol, res.err)
			continue
		}
		if len(res.points) == 0 {
			continue
		}
		histories[res.symbol] = res.points
	}

	return histories
}

func distinctSymbols(transactions []domain.Transaction) []string {
	seen := map[string]bool{}
	symbols := []string{}
	for _, t := range transactions {
		if seen[t.Symbol] {
			continue
		}
		seen[t.Symbol] = true
		symbols = append(symbols, t.Symbol)
	}
	return symbols
}
