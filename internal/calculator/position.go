package calculator

import (
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"
	"time"

	"github.com/shopspring/decimal"
)

// SharesHeld reconstructs the net position in symbol as of the given
// date by replaying the ledger: buys add shares, sells subtract.
// Dates compare by calendar day. No validation happens here - a
// negative result means upstream invariants were violated, and callers
// treat it as no position rather than a negative value.
func SharesHeld(symbol string, asOf time.Time, transactions []domain.Transaction) decimal.Decimal {
	shares := decimal.Zero
	for _, t := range transactions {
		if t.Symbol != symbol {
			continue
		}
		if !util.DateLte(t.Date, asOf) {
			continue
		}
		shares = shares.Add(t.SignedShares())
	}
	return shares
}
