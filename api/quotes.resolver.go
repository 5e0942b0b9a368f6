package api

import (
	"log"
	"portfoliotracker/internal/calculator"
	"portfoliotracker/internal/domain"
	"time"

	"github.com/gin-gonic/gin"
)

type quoteResponse struct {
	Symbol   string          `json:"symbol"`
	Shares   string          `json:"shares"`
	Price    float64         `json:"price"`
	Currency domain.Currency `json:"currency"`
}

// getPortfolioQuotes returns the latest known price for every symbol
// the user currently holds. US symbols are quoted in one batch through
// Alpaca; exchange-suffixed symbols fall back to Yahoo quotes.
func (m ApiHandler) getPortfolioQuotes(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	transactions, err := m.TransactionService.ListTransactions(c.Request.Context(), userID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	now := time.Now().UTC()
	held := map[string]bool{}
	usSymbols := []string{}
	for _, t := range transactions {
		if held[t.Symbol] {
			continue
		}
		if !calculator.SharesHeld(t.Symbol, now, transactions).IsPositive() {
			continue
		}
		held[t.Symbol] = true
		if domain.ClassifySymbol(t.Symbol) == domain.Market_US {
			usSymbols = append(usSymbols, t.Symbol)
		}
	}

	prices := map[string]float64{}
	if len(usSymbols) > 0 {
		alpacaPrices, err := m.AlpacaRepository.GetLatestPrices(c.Request.Context(), usSymbols)
		if err != nil {
			log.Printf("failed to fetch alpaca quotes: %v", err)
		}
		for symbol, price := range alpacaPrices {
			prices[symbol] = price.InexactFloat64()
		}
	}

	out := []quoteResponse{}
	for symbol := range held {
		price, ok := prices[symbol]
		if !ok {
			quote, err := m.MarketDataRepository.CurrentPrice(c.Request.Context(), symbol)
			if err != nil {
				log.Printf("failed to fetch quote for %s: %v", symbol, err)
				continue
			}
			price = quote.Price
		}
		out = append(out, quoteResponse{
			Symbol:   symbol,
			Shares:   calculator.SharesHeld(symbol, now, transactions).String(),
			Price:    price,
			Currency: domain.NativeCurrency(symbol),
		})
	}

	c.JSON(200, out)
}
