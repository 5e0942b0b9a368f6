package domain

import "time"

// PricePoint is one day of a symbol's historical price series,
// quoted in the symbol's native currency.
type PricePoint struct {
	Date  time.Time
	Price float64
}

type AssetQuote struct {
	Symbol   string
	Price    float64
	Currency Currency
	Date     time.Time
}
