package calculator

import (
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func Test_SharesHeld(t *testing.T) {
	transactions := []domain.Transaction{
		{
			Symbol: "AAPL",
			Action: domain.TransactionAction_Buy,
			Shares: decimal.NewFromInt(10),
			Date:   util.NewDate(2023, 1, 2),
		},
		{
			Symbol: "AAPL",
			Action: domain.TransactionAction_Sell,
			Shares: decimal.NewFromInt(4),
			Date:   util.NewDate(2023, 2, 1),
		},
		{
			Symbol: "MSFT",
			Action: domain.TransactionAction_Buy,
			Shares: decimal.NewFromInt(3),
			Date:   util.NewDate(2023, 1, 15),
		},
	}

	t.Run("buys and sells net out", func(t *testing.T) {
		shares := SharesHeld("AAPL", util.NewDate(2023, 3, 1), transactions)
		require.True(t, decimal.NewFromInt(6).Equal(shares))
	})

	t.Run("transactions after the as-of date are excluded", func(t *testing.T) {
		shares := SharesHeld("AAPL", util.NewDate(2023, 1, 31), transactions)
		require.True(t, decimal.NewFromInt(10).Equal(shares))
	})

	t.Run("as-of date compares by calendar day", func(t *testing.T) {
		shares := SharesHeld("AAPL", util.NewDate(2023, 2, 1), transactions)
		require.True(t, decimal.NewFromInt(6).Equal(shares))
	})

	t.Run("other symbols do not contribute", func(t *testing.T) {
		shares := SharesHeld("MSFT", util.NewDate(2023, 3, 1), transactions)
		require.True(t, decimal.NewFromInt(3).Equal(shares))
	})

	t.Run("unknown symbol is zero", func(t *testing.T) {
		shares := SharesHeld("GOOG", util.NewDate(2023, 3, 1), transactions)
		require.True(t, shares.IsZero())
	})

	t.Run("oversold position goes negative", func(t *testing.T) {
		oversold := []domain.Transaction{
			{
				Symbol: "TSLA",
				Action: domain.TransactionAction_Sell,
				Shares: decimal.NewFromInt(5),
				Date:   util.NewDate(2023, 1, 2),
			},
		}
		shares := SharesHeld("TSLA", util.NewDate(2023, 3, 1), oversold)
		require.True(t, decimal.NewFromInt(-5).Equal(shares))
	})
}
