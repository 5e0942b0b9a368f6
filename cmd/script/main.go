package main

import (
	"context"
	"fmt"
	"log"
	"portfoliotracker/cmd"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"
	"time"

	_ "github.com/lib/pq"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "script",
	Short: "maintenance and debugging commands",
}

var fetchPricesCmd = &cobra.Command{
	Use:   "fetch-prices [symbols...]",
	Short: "fetch historical prices for the given symbols and print them",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		since, err := time.Parse("2006-01-02", c.Flag("since").Value.String())
		if err != nil {
			return fmt.Errorf("invalid --since date: %w", err)
		}

		ctx := context.Background()
		for _, symbol := range args {
			prices, err := handler.MarketDataRepository.HistoricalPrices(ctx, symbol, since)
			if err != nil {
				return fmt.Errorf("failed to fetch prices for %s: %w", symbol, err)
			}
			fmt.Printf("%s: %d points\n", symbol, len(prices))
			if len(prices) > 0 {
				first := prices[0]
				last := prices[len(prices)-1]
				fmt.Printf("  %s %.2f ... %s %.2f\n",
					first.Date.Format("2006-01-02"), first.Price,
					last.Date.Format("2006-01-02"), last.Price)
			}
		}

		return nil
	},
}

var performanceCmd = &cobra.Command{
	Use:   "performance [userID]",
	Short: "compute and print portfolio performance for a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		handler, err := cmd.InitializeDependencies()
		if err != nil {
			return err
		}
		defer cmd.CloseDependencies(handler)

		userID, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid user id: %w", err)
		}
		period, err := domain.ParsePeriod(c.Flag("period").Value.String())
		if err != nil {
			return err
		}
		currency, err := domain.ParseCurrency(c.Flag("currency").Value.String())
		if err != nil {
			return err
		}

		profile, endProfile := domain.NewProfile()
		defer endProfile()
		ctx := context.WithValue(context.Background(), domain.ContextProfileKey, profile)

		result, err := handler.PerformanceService.GetPortfolioPerformance(ctx, userID, period, currency)
		if err != nil {
			return err
		}

		util.Pprint(result.Metrics)
		fmt.Printf("%d data points\n", len(result.Performance))

		return nil
	},
}

func init() {
	fetchPricesCmd.Flags().String("since", "1970-01-01", "fetch prices from this date (YYYY-MM-DD)")
	performanceCmd.Flags().String("period", string(domain.Period_All), "performance period (1M, 3M, 6M, 1Y, ALL)")
	performanceCmd.Flags().String("currency", string(domain.Currency_USD), "target currency (USD, RMB)")

	rootCmd.AddCommand(fetchPricesCmd)
	rootCmd.AddCommand(performanceCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
