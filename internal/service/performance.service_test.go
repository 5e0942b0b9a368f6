package service

import (
	"context"
	"fmt"
	"portfoliotracker/internal/domain"
	mock_repository "portfoliotracker/internal/repository/mocks"
	"portfoliotracker/internal/util"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func Test_GetPortfolioPerformance(t *testing.T) {
	userID := uuid.New()

	t.Run("builds series and metrics from fetched inputs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)
		rateRepository := mock_repository.NewMockCurrencyRateRepository(ctrl)

		handler := performanceServiceHandler{
			TransactionRepository: transactionRepository,
			MarketDataRepository:  marketDataRepository,
			CurrencyService:       NewCurrencyService(rateRepository),
		}

		transactionRepository.EXPECT().
			List(gomock.Any(), userID).
			Return([]domain.Transaction{
				{
					Symbol: "AAPL",
					Action: domain.TransactionAction_Buy,
					Shares: decimal.NewFromInt(2),
					Date:   util.NewDate(2023, 6, 1),
				},
			}, nil)

		marketDataRepository.EXPECT().
			HistoricalPrices(gomock.Any(), "AAPL", gomock.Any()).
			Return([]domain.PricePoint{
				{Date: util.NewDate(2023, 6, 1), Price: 100},
				{Date: util.NewDate(2023, 6, 2), Price: 110},
			}, nil)

		result, err := handler.GetPortfolioPerformance(context.Background(), userID, domain.Period_All, domain.Currency_USD)
		require.NoError(t, err)

		require.Equal(t, domain.Period_All, result.Period)
		require.Equal(t, domain.Currency_USD, result.Currency)
		require.Len(t, result.Performance, 2)
		require.Equal(t, 200.0, result.Performance[0].Value)
		require.Equal(t, 220.0, result.Performance[1].Value)
		require.Equal(t, 20.0, result.Metrics.TotalReturn.Absolute)
		require.Equal(t, 10.0, result.Metrics.TotalReturn.Percentage)
	})

	t.Run("no transactions is a valid empty result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)

		handler := performanceServiceHandler{
			TransactionRepository: transactionRepository,
		}

		transactionRepository.EXPECT().
			List(gomock.Any(), userID).
			Return([]domain.Transaction{}, nil)

		result, err := handler.GetPortfolioPerformance(context.Background(), userID, domain.Period_OneYear, domain.Currency_USD)
		require.NoError(t, err)

		require.Empty(t, result.Performance)
		require.Equal(t, domain.RecoveryStatus_Recovered, result.Metrics.RecoveryTime.Status)
		require.Equal(t, 0.0, result.Metrics.TotalReturn.Absolute)
	})

	t.Run("a failed symbol fetch drops that symbol only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)
		rateRepository := mock_repository.NewMockCurrencyRateRepository(ctrl)

		handler := performanceServiceHandler{
			TransactionRepository: transactionRepository,
			MarketDataRepository:  marketDataRepository,
			CurrencyService:       NewCurrencyService(rateRepository),
		}

		transactionRepository.EXPECT().
			List(gomock.Any(), userID).
			Return([]domain.Transaction{
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
			}, nil)

		marketDataRepository.EXPECT().
			HistoricalPrices(gomock.Any(), "AAPL", gomock.Any()).
			Return([]domain.PricePoint{
				{Date: util.NewDate(2023, 6, 1), Price: 100},
			}, nil)
		marketDataRepository.EXPECT().
			HistoricalPrices(gomock.Any(), "MSFT", gomock.Any()).
			Return(nil, fmt.Errorf("provider unavailable"))

		result, err := handler.GetPortfolioPerformance(context.Background(), userID, domain.Period_All, domain.Currency_USD)
		require.NoError(t, err)

		require.Len(t, result.Performance, 1)
		require.Equal(t, 100.0, result.Performance[0].Value)
	})

	t.Run("cancelled context does not block the fetch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)

		handler := performanceServiceHandler{
			MarketDataRepository: marketDataRepository,
		}

		marketDataRepository.EXPECT().
			HistoricalPrices(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, symbol string, start time.Time) ([]domain.PricePoint, error) {
				return nil, ctx.Err()
			}).
			AnyTimes()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		symbols := make([]string, 200)
		for i := range symbols {
			symbols[i] = fmt.Sprintf("SYM%d", i)
		}

		done := make(chan map[string][]domain.PricePoint, 1)
		go func() {
			done <- handler.fetchHistories(ctx, symbols, util.NewDate(2023, 1, 1))
		}()

		select {
		case histories := <-done:
			require.Empty(t, histories)
		case <-time.After(3 * time.Second):
			t.Fatal("fetchHistories did not return after context cancellation")
		}
	})

	t.Run("every symbol failing is a valid empty result", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		transactionRepository := mock_repository.NewMockTransactionRepository(ctrl)
		marketDataRepository := mock_repository.NewMockMarketDataRepository(ctrl)

		handler := performanceServiceHandler{
			TransactionRepository: transactionRepository,
			MarketDataRepository:  marketDataRepository,
		}

		transactionRepository.EXPECT().
			List(gomock.Any(), userID).
			Return([]domain.Transaction{
				{
					Symbol: "AAPL",
					Action: domain.TransactionAction_Buy,
					Shares: decimal.NewFromInt(1),
					Date:   util.NewDate(2023, 6, 1),
				},
			}, nil)

		marketDataRepository.EXPECT().
			HistoricalPrices(gomock.Any(), "AAPL", gomock.Any()).
			Return(nil, fmt.Errorf("provider unavailable"))

		result, err := handler.GetPortfolioPerformance(context.Background(), userID, domain.Period_All, domain.Currency_USD)
		require.NoError(t, err)

		require.Empty(t, result.Performance)
		require.Equal(t, domain.RecoveryStatus_Recovered, result.Metrics.RecoveryTime.Status)
	})
}
