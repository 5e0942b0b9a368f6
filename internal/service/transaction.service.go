package service

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"portfoliotracker/internal/calculator"
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/repository"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionService interface {
	ListTransactions(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error)
	AddTransaction(ctx context.Context, t domain.Transaction) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, t domain.Transaction) error
	DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error
	ImportCsv(ctx context.Context, userID uuid.UUID, in io.Reader) ([]domain.Transaction, error)
	ExportCsv(ctx context.Context, userID uuid.UUID, out io.Writer) error
}

func NewTransactionService(db *sql.DB, transactionRepository repository.TransactionRepository) TransactionService {
	return transactionServiceHandler{
		Db:                    db,
		TransactionRepository: transactionRepository,
	}
}

type transactionServiceHandler struct {
	Db                    *sql.DB
	TransactionRepository repository.TransactionRepository
}

func (h transactionServiceHandler) ListTransactions(ctx context.Context, userID uuid.UUID) ([]domain.Transaction, error) {
	return h.TransactionRepository.List(h.Db, userID)
}

func (h transactionServiceHandler) AddTransaction(ctx context.Context, t domain.Transaction) (*domain.Transaction, error) {
	existing, err := h.TransactionRepository.List(h.Db, t.UserID)
	if err != nil {
		return nil, err
	}
	if err := validateTransaction(t, existing); err != nil {
		return nil, err
	}

	return h.TransactionRepository.Add(h.Db, t)
}

func (h transactionServiceHandler) UpdateTransaction(ctx context.Context, t domain.Transaction) error {
	current, err := h.TransactionRepository.Get(h.Db, t.TransactionID)
	if err != nil {
		return err
	}
	if current.UserID != t.UserID {
		return fmt.Errorf("transaction %s does not belong to user %s", t.TransactionID, t.UserID)
	}

	existing, err := h.TransactionRepository.List(h.Db, t.UserID)
	if err != nil {
		return err
	}
	// validate against the ledger without the row being replaced
	others := make([]domain.Transaction, 0, len(existing))
	for _, e := range existing {
		if e.TransactionID != t.TransactionID {
			others = append(others, e)
		}
	}
	if err := validateTransaction(t, others); err != nil {
		return err
	}

	return h.TransactionRepository.Update(h.Db, t)
}

func (h transactionServiceHandler) DeleteTransaction(ctx context.Context, userID, transactionID uuid.UUID) error {
	current, err := h.TransactionRepository.Get(h.Db, transactionID)
	if err != nil {
		return err
	}
	if current.UserID != userID {
		return fmt.Errorf("transaction %s does not belong to user %s", transactionID, userID)
	}

	return h.TransactionRepository.Delete(h.Db, transactionID)
}

// transactionCsvRow is the import/export wire format. Dates use
// YYYY-MM-DD.
type transactionCsvRow struct {
	Symbol   string  `csv:"symbol"`
	Action   string  `csv:"action"`
	Shares   float64 `csv:"shares"`
	Price    float64 `csv:"price"`
	Currency string  `csv:"currency"`
	Fees     float64 `csv:"fees"`
	Date     string  `csv:"date"`
}

func (h transactionServiceHandler) ImportCsv(ctx context.Context, userID uuid.UUID, in io.Reader) ([]domain.Transaction, error) {
	rows := []transactionCsvRow{}
	if err := gocsv.Unmarshal(in, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse transactions csv: %w", err)
	}

	existing, err := h.TransactionRepository.List(h.Db, userID)
	if err != nil {
		return nil, err
	}

	added := []domain.Transaction{}
	for i, row := range rows {
		date, err := time.Parse(time.DateOnly, row.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date %q on csv row %d: %w", row.Date, i+1, err)
		}
		t := domain.Transaction{
			UserID:   userID,
			Symbol:   row.Symbol,
			Action:   domain.TransactionAction(row.Action),
			Shares:   decimal.NewFromFloat(row.Shares),
			Price:    decimal.NewFromFloat(row.Price),
			Currency: row.Currency,
			Fees:     decimal.NewFromFloat(row.Fees),
			Date:     date,
		}
		if err := validateTransaction(t, existing); err != nil {
			return nil, fmt.Errorf("csv row %d: %w", i+1, err)
		}

		inserted, err := h.TransactionRepository.Add(h.Db, t)
		if err != nil {
			return nil, fmt.Errorf("failed to insert csv row %d: %w", i+1, err)
		}
		existing = append(existing, *inserted)
		added = append(added, *inserted)
	}

	return added, nil
}

func (h transactionServiceHandler) ExportCsv(ctx context.Context, userID uuid.UUID, out io.Writer) error {
	transactions, err := h.TransactionRepository.List(h.Db, userID)
	if err != nil {
		return err
	}

	rows := make([]transactionCsvRow, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, transactionCsvRow{
			Symbol:   t.Symbol,
			Action:   string(t.Action),
			Shares:   t.Shares.InexactFloat64(),
			Price:    t.Price.InexactFloat64(),
			Currency: t.Currency,
			Fees:     t.Fees.InexactFloat64(),
			Date:     t.Date.Format(time.DateOnly),
		})
	}

	return gocsv.Marshal(&rows, out)
}

// validateTransaction rejects malformed entries and sells that would
// take the reconstructed position negative as of the sell date.
func validateTransaction(t domain.Transaction, existing []domain.Transaction) error {
	if t.Symbol == "" {
		return fmt.Errorf("transaction symbol is required")
	}
	if t.Action != domain.TransactionAction_Buy && t.Action != domain.TransactionAction_Sell {
		return fmt.Errorf("invalid transaction action %q", t.Action)
	}
	if !t.Shares.IsPositive() {
		return fmt.Errorf("transaction shares must be positive, got %s", t.Shares)
	}
	if t.Price.IsNegative() {
		return fmt.Errorf("transaction price cannot be negative, got %s", t.Price)
	}

	if t.Action == domain.TransactionAction_Sell {
		held := calculator.SharesHeld(t.Symbol, t.Date, existing)
		if held.LessThan(t.Shares) {
			return fmt.Errorf("cannot sell %s shares of %s on %s: only %s held",
				t.Shares, t.Symbol, t.Date.Format(time.DateOnly), held)
		}
	}

	return nil
}
