package calculator

import (
	"context"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/util"
	"sort"
	"time"
)

// CurrencyConverter converts an amount between currencies. Calls must
// be idempotent and safe to retry; a failed conversion degrades to the
// unconverted amount for that single contribution.
type CurrencyConverter interface {
	Convert(ctx context.Context, amount float64, from, to domain.Currency) (float64, error)
}

// BuildSeries reconstructs the portfolio-value time series over
// [periodStart, now]. Candidate dates are the union of all dates
// present in any symbol's price history, restricted to the period.
// Each date's value sums shares x resolved price per held symbol,
// normalized to targetCurrency. Zero transactions or zero price
// histories produce an empty series, not an error.
func BuildSeries(
	ctx context.Context,
	transactions []domain.Transaction,
	histories map[string][]domain.PricePoint,
	converter CurrencyConverter,
	targetCurrency domain.Currency,
	periodStart time.Time,
	now time.Time,
) []domain.PerformanceDataPoint {
	log := logger.FromContext(ctx)

	if len(transactions) == 0 || len(histories) == 0 {
		return []domain.PerformanceDataPoint{}
	}

	// symbols iterate in a fixed order so identical inputs always
	// produce identical output
	symbols := make([]string, 0, len(histories))
	for symbol := range histories {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	dates := candidateDates(histories, periodStart, now)

	series := make([]domain.PerformanceDataPoint, 0, len(dates))
	for _, date := range dates {
		total := 0.0
		for _, symbol := range symbols {
			shares := SharesHeld(symbol, date, transactions)
			if !shares.IsPositive() {
				continue
			}
			price := PriceOn(date, histories[symbol])
			if price <= 0 {
				continue
			}
			value := shares.InexactFloat64() * price

			native := domain.NativeCurrency(symbol)
			if native != targetCurrency {
				converted, err := converter.Convert(ctx, value, native, targetCurrency)
				if err != nil {
					log.Warnf("failed to convert %s value from %s to %s on %s, using unconverted value: %v",
						symbol, native, targetCurrency, date.Format(time.DateOnly), err)
				} else {
					value = converted
				}
			}

			total += value
		}
		series = append(series, domain.PerformanceDataPoint{
			Date:  date,
			Value: total,
		})
	}

	applyReturns(series)

	return series
}

// candidateDates unions every calendar day present in any history,
// restricted to [periodStart, now], ascending.
func candidateDates(histories map[string][]domain.PricePoint, periodStart, now time.Time) []time.Time {
	seen := map[string]bool{}
	dates := []time.Time{}
	for _, history := range histories {
		for _, p := range history {
			day := p.Date.Format(time.DateOnly)
			if seen[day] {
				continue
			}
			seen[day] = true
			normalized, err := time.Parse(time.DateOnly, day)
			if err != nil {
				continue
			}
			if !util.DateLte(periodStart, normalized) || !util.DateLte(normalized, now) {
				continue
			}
			dates = append(dates, normalized)
		}
	}
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
	return dates
}

// applyReturns fills PercentageReturn against the first positive-value
// baseline, and day-over-day deltas against the previous point. Points
// before the baseline keep PercentageReturn 0.
func applyReturns(series []domain.PerformanceDataPoint) {
	baseline := -1
	for i := range series {
		if series[i].Value > 0 {
			baseline = i
			break
		}
	}
	if baseline >= 0 {
		baselineValue := series[baseline].Value
		for i := baseline; i < len(series); i++ {
			series[i].PercentageReturn = (series[i].Value - baselineValue) / baselineValue * 100
		}
	}

	for i := 1; i < len(series); i++ {
		previous := series[i-1].Value
		series[i].DayChange = series[i].Value - previous
		if previous > 0 {
			series[i].DayChangePercent = series[i].DayChange / previous * 100
		}
	}
}
