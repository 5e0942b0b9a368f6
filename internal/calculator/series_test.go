package calculator

import (
	"context"
	"fmt"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type stubConverter struct {
	rate  float64
	err   error
	calls int
}

func (s *stubConverter) Convert(ctx context.Context, amount float64, from, to domain.Currency) (float64, error) {
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	return amount * s.rate, nil
}

func Test_BuildSeries(t *testing.T) {
	now := util.NewDate(2023, 12, 31)
	periodStart := util.NewDate(2023, 1, 1)

	t.Run("single symbol, shares times price per day", func(t *testing.T) {
		transactions := []domain.Transaction{
			{
				Symbol: "AAPL",
				Action: domain.TransactionAction_Buy,
				Shares: decimal.NewFromInt(2),
				Date:   util.NewDate(2023, 6, 1),
			},
		}
		histories := map[string][]domain.PricePoint{
			"AAPL": {
				{Date: util.NewDate(2023, 6, 1), Price: 100},
				{Date: util.NewDate(2023, 6, 2), Price: 110},
			},
		}

		series := BuildSeries(context.Background(), transactions, histories, &stubConverter{rate: 1}, domain.Currency_USD, periodStart, now)

		require.Equal(
			t,
			"",
			cmp.Diff(
				[]domain.PerformanceDataPoint{
					{Date: util.NewDate(2023, 6, 1), Value: 200},
					{Date: util.NewDate(2023, 6, 2), Value: 220, PercentageReturn: 10, DayChange: 20, DayChangePercent: 10},
				},
				series,
			),
		)
	})

	t.Run("dates union across symbols", func(t *testing.T) {
		transactions := []domain.Transaction{
			{
				Symbol: "AAPL",
				Action: domain.TransactionAction_Buy,
				Shares: decimal.NewFromInt(1),
				Date:   util.NewDate(2023, 6, 1),
			},
			{
				Symbol: "MSFT",
				Action: domain.TransactionAction_Buy,
				Shares: decimal.NewFromInt(1),
				Date:   util.NewDate(2023, 6, 1),
			},
		}
		histories := map[string][]domain.PricePoint{
			"AAPL": {{Date: util.NewDate(2023, 6, 1), Price: 100}},
			"MSFT": {{Date: util.NewDate(2023, 6, 2), Price: 50}},
		}

		series := BuildSeries(context.Background(), transactions, histories, &stubConverter{rate: 1}, domain.Currency_USD, periodStart, now)

		require.Len(t, series, 2)
		// day 2 carries AAPL's last known price forward and adds MSFT
		require.Equal(t, 100.0, series[0].Value)
		require.Equal(t, 150.0, series[1].Value)
	})

	t.Run("dates outside the period are dropped", func(t *testing.T) {
		transactions := []domain.Transaction{
			{
				Symbol: "AAPL",
				Action: domain.TransactionAction_Buy,
				Shares: decimal.NewFromInt(1),
				Date:   util.NewDate(2022, 1, 1),
			},
		}
		histories := map[string][]domain.PricePoint{
			"AAPL": {
				{Date: util.NewDate(2022, 12, 30), Price: 90},
				{Date: util.NewDate(2023, 6, 1), Price: 100},
			},
		}

		series := BuildSeries(context.Background(), transactions, histories, &stubConverter{rate: 1}, domain.Currency_USD, periodStart, now)

		require.Len(t, series, 1)
		require.Equal(t, util.NewDate(2023, 6, 1), series[0].Date)
	})

	t.Run("shanghai listing converts to target currency", func(t *testing.T) {
		transactions := []domain.Transaction{
			{
				Symbol: "600519.SS",
				Action: domain.TransactionAction_Buy,
				Shares: decimal.NewFromInt(1),
				Date:   util.NewDate(2023, 6, 1),
			},
		}
		histories := map[string][]domain.PricePoint{
			"600519.SS": {{Date: util.NewDate(2023, 6, 1), Price: 1700}},
		}
		converter := &stubConverter{rate: 0.14}

		series := BuildSeries(context.Background(), transactions, histories, converter, domain.Currency_USD, periodStart, now)

		require.Len(t, series, 1)
		require.InDelta(t, 238, series[0].Value, 0.0001)
		require.Equal(t, 1, converter.calls)
	})

	t.Run("conversion failure falls back to unconverted value", func(t *testing.T) {
		transactions := []domain.Transaction{
			{
				Symbol: "600519.SS",
				Action: domain.TransactionAction_Buy,
				Shares: decimal.NewFromInt(1),
				Date:   util.NewDate(2023, 6, 1),
			},
		}
		histories := map[string][]domain.PricePoint{
			"600519.SS": {{Date: util.NewDate(2023, 6, 1), Price: 1700}},
		}
		converter := &stubConverter{err: fmt.Errorf("rate source unavailable")}

		series := BuildSeries(context.Background(), transactions, histories, converter, domain.Currency_USD, periodStart, now)

		require.Len(t, series, 1)
		require.Equal(t, 1700.0, series[0].Value)
	})

	t.Run("no conversion when native currency matches target", func(t *testing.T) {
		transactions := []domain.Transaction{
			{
				Symbol: "AAPL",
				Action: domain.TransactionAction_Buy,
				Shares: decimal.NewFromInt(1),
				Date:   util.NewDate(2023, 6, 1),
			},
		}
		histories := map[string][]domain.PricePoint{
			"AAPL": {{Date: util.NewDate(2023, 6, 1), Price: 100}},
		}
		converter := &stubConverter{rate: 7}

		BuildSeries(context.Background(), transactions, histories, converter, domain.Currency_USD, periodStart, now)

		require.Equal(t, 0, converter.calls)
	})

	t.Run("zero transactions yields empty series", func(t *testing.T) {
		histories := map[string][]domain.PricePoint{
			"AAPL": {{Date: util.NewDate(2023, 6, 1), Price: 100}},
		}
		series := BuildSeries(context.Background(), nil, histories, &stubConverter{rate: 1}, domain.Currency_USD, periodStart, now)
		require.Empty(t, series)
	})

	t.Run("zero price histories yields empty series", func(t *testing.T) {
		transactions := []domain.Transaction{
			{
				Symbol: "AAPL",
				Action: domain.TransactionAction_Buy,
				Shares: decimal.NewFromInt(1),
				Date:   util.NewDate(2023, 6, 1),
			},
		}
		series := BuildSeries(context.Background(), transactions, map[string][]domain.PricePoint{}, &stubConverter{rate: 1}, domain.Currency_USD, periodStart, now)
		require.Empty(t, series)
	})

	t.Run("percentage return baselines on first positive value", func(t *testing.T) {
		// price history starts before the first buy, so early dates
		// hold no position and a zero value
		transactions := []domain.Transaction{
			{
				Symbol: "AAPL",
				Action: domain.TransactionAction_Buy,
				Shares: decimal.NewFromInt(1),
				Date:   util.NewDate(2023, 6, 3),
			},
		}
		histories := map[string][]domain.PricePoint{
			"AAPL": {
				{Date: util.NewDate(2023, 6, 1), Price: 100},
				{Date: util.NewDate(2023, 6, 3), Price: 100},
				{Date: util.NewDate(2023, 6, 4), Price: 120},
			},
		}

		series := BuildSeries(context.Background(), transactions, histories, &stubConverter{rate: 1}, domain.Currency_USD, periodStart, now)

		require.Len(t, series, 3)
		require.Equal(t, 0.0, series[0].Value)
		require.Equal(t, 0.0, series[0].PercentageReturn)
		require.Equal(t, 0.0, series[1].PercentageReturn)
		require.Equal(t, 20.0, series[2].PercentageReturn)
		// the first point after a zero-value day has no percent delta
		require.Equal(t, 100.0, series[1].DayChange)
		require.Equal(t, 0.0, series[1].DayChangePercent)
	})

	t.Run("identical inputs build identical output", func(t *testing.T) {
		transactions := []domain.Transaction{
			{
				Symbol: "AAPL",
				Action: domain.TransactionAction_Buy,
				Shares: decimal.NewFromInt(3),
				Date:   util.NewDate(2023, 6, 1),
			},
			{
				Symbol: "600519.SS",
				Action: domain.TransactionAction_Buy,
				Shares: decimal.NewFromInt(2),
				Date:   util.NewDate(2023, 6, 1),
			},
		}
		histories := map[string][]domain.PricePoint{
			"AAPL":      {{Date: util.NewDate(2023, 6, 1), Price: 100}, {Date: util.NewDate(2023, 6, 2), Price: 103}},
			"600519.SS": {{Date: util.NewDate(2023, 6, 1), Price: 1700}, {Date: util.NewDate(2023, 6, 2), Price: 1650}},
		}

		first := BuildSeries(context.Background(), transactions, histories, &stubConverter{rate: 0.14}, domain.Currency_USD, periodStart, now)
		second := BuildSeries(context.Background(), transactions, histories, &stubConverter{rate: 0.14}, domain.Currency_USD, periodStart, now)

		require.Equal(t, "", cmp.Diff(first, second))
	})
}
