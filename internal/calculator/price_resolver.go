package calculator

import (
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"
	"time"
)

// PriceOn resolves the price effective on the given calendar day with
// last-known-value semantics: an exact match wins, otherwise the most
// recent point at or before the day. Returns 0 when the series is
// empty or has no point at or before the day, which callers treat as
// "unavailable".
func PriceOn(date time.Time, series []domain.PricePoint) float64 {
	var (
		found     bool
		bestDate  time.Time
		bestPrice float64
	)
	for _, p := range series {
		if util.SameDay(p.Date, date) {
			return p.Price
		}
		if !util.DateLte(p.Date, date) {
			continue
		}
		if !found || p.Date.After(bestDate) {
			found = true
			bestDate = p.Date
			bestPrice = p.Price
		}
	}
	if !found {
		return 0
	}
	return bestPrice
}
