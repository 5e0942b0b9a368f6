package repository

import (
	"fmt"
	"portfoliotracker/internal/db/models/postgres/public/model"
	. "portfoliotracker/internal/db/models/postgres/public/table"
	"portfoliotracker/internal/domain"
	"time"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	. "github.com/go-jet/jet/v2/postgres"
)

type TransactionRepository interface {
	Add(tx qrm.Queryable, t domain.Transaction) (*domain.Transaction, error)
	Update(tx qrm.Executable, t domain.Transaction) error
	Delete(tx qrm.Executable, transactionID uuid.UUID) error
	Get(tx qrm.Queryable, transactionID uuid.UUID) (*domain.Transaction, error)
	List(tx qrm.Queryable, userID uuid.UUID) ([]domain.Transaction, error)
}

func NewTransactionRepository() TransactionRepository {
	return transactionRepositoryHandler{}
}

type transactionRepositoryHandler struct{}

func (h transactionRepositoryHandler) Add(tx qrm.Queryable, t domain.Transaction) (*domain.Transaction, error) {
	m := toModel(t)
	m.TransactionID = uuid.New()
	m.CreatedAt = time.Now().UTC()

	query := Transaction.
		INSERT(Transaction.MutableColumns).
		MODEL(m).
		RETURNING(Transaction.AllColumns)

	out := model.Transaction{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to insert transaction: %w", err)
	}

	result := fromModel(out)
	return &result, nil
}

func (h transactionRepositoryHandler) Update(tx qrm.Executable, t domain.Transaction) error {
	m := toModel(t)
	now := time.Now().UTC()
	m.UpdatedAt = &now

	query := Transaction.
		UPDATE(Transaction.Symbol, Transaction.Action, Transaction.Shares, Transaction.Price, Transaction.Currency, Transaction.Fees, Transaction.Date, Transaction.UpdatedAt).
		MODEL(m).
		WHERE(Transaction.TransactionID.EQ(UUID(t.TransactionID)))

	result, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to update transaction %s: %w", t.TransactionID, err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return fmt.Errorf("transaction %s not found", t.TransactionID)
	}

	return nil
}

func (h transactionRepositoryHandler) Delete(tx qrm.Executable, transactionID uuid.UUID) error {
	query := Transaction.
		DELETE().
		WHERE(Transaction.TransactionID.EQ(UUID(transactionID)))

	_, err := query.Exec(tx)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %s: %w", transactionID, err)
	}

	return nil
}

func (h transactionRepositoryHandler) Get(tx qrm.Queryable, transactionID uuid.UUID) (*domain.Transaction, error) {
	query := Transaction.
		SELECT(Transaction.AllColumns).
		WHERE(Transaction.TransactionID.EQ(UUID(transactionID)))

	out := model.Transaction{}
	err := query.Query(tx, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", transactionID, err)
	}

	result := fromModel(out)
	return &result, nil
}

func (h transactionRepositoryHandler) List(tx qrm.Queryable, userID uuid.UUID) ([]domain.Transaction, error) {
	query := Transaction.
		SELECT(Transaction.AllColumns).
		WHERE(Transaction.UserID.EQ(UUID(userID))).
		ORDER_BY(Transaction.Date.ASC())

	models := []model.Transaction{}
	err := query.Query(tx, &models)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions for user %s: %w", userID, err)
	}

	out := make([]domain.Transaction, 0, len(models))
	for _, m := range models {
		out = append(out, fromModel(m))
	}

	return out, nil
}

func toModel(t domain.Transaction) model.Transaction {
	return model.Transaction{
		TransactionID: t.TransactionID,
		UserID:        t.UserID,
		Symbol:        t.Symbol,
		Action:        string(t.Action),
		Shares:        t.Shares.InexactFloat64(),
		Price:         t.Price.InexactFloat64(),
		Currency:      t.Currency,
		Fees:          t.Fees.InexactFloat64(),
		Date:          t.Date,
	}
}

func fromModel(m model.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		UserID:        m.UserID,
		Symbol:        m.Symbol,
		Action:        domain.TransactionAction(m.Action),
		Shares:        decimal.NewFromFloat(m.Shares),
		Price:         decimal.NewFromFloat(m.Price),
		Currency:      m.Currency,
		Fees:          decimal.NewFromFloat(m.Fees),
		Date:          m.Date,
	}
}
