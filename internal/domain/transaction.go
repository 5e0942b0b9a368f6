package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionAction string

const (
	TransactionAction_Buy  TransactionAction = "buy"
	TransactionAction_Sell TransactionAction = "sell"
)

// Transaction is one ledger entry for a user. Records are immutable
// once loaded for a computation pass.
type Transaction struct {
	TransactionID uuid.UUID         `json:"transactionID"`
	UserID        uuid.UUID         `json:"userID"`
	Symbol        string            `json:"symbol"`
	Action        TransactionAction `json:"action"`
	Shares        decimal.Decimal   `json:"shares"`
	Price         decimal.Decimal   `json:"price"`
	Currency      string            `json:"currency"`
	Fees          decimal.Decimal   `json:"fees"`
	Date          time.Time         `json:"date"`
}

// SignedShares is positive for buys and negative for sells.
func (t Transaction) SignedShares() decimal.Decimal {
	if t.Action == TransactionAction_Sell {
		return t.Shares.Neg()
	}
	return t.Shares
}
