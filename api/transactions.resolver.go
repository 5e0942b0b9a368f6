package api

import (
	"fmt"
	"portfoliotracker/internal/domain"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type transactionRequest struct {
	Symbol   string  `json:"symbol"`
	Action   string  `json:"action"`
	Shares   float64 `json:"shares"`
	Price    float64 `json:"price"`
	Currency string  `json:"currency"`
	Fees     float64 `json:"fees"`
	Date     string  `json:"date"`
}

func (r transactionRequest) toDomain(userID uuid.UUID) (*domain.Transaction, error) {
	date, err := time.Parse("2006-01-02", r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid transaction date %q: %w", r.Date, err)
	}

	return &domain.Transaction{
		UserID:   userID,
		Symbol:   r.Symbol,
		Action:   domain.TransactionAction(r.Action),
		Shares:   decimal.NewFromFloat(r.Shares),
		Price:    decimal.NewFromFloat(r.Price),
		Currency: r.Currency,
		Fees:     decimal.NewFromFloat(r.Fees),
		Date:     date,
	}, nil
}

func (m ApiHandler) listTransactions(c *gin.Context) {
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

	c.JSON(200, transactions)
}

func (m ApiHandler) addTransaction(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody transactionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	t, err := requestBody.toDomain(userID)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	inserted, err := m.TransactionService.AddTransaction(c.Request.Context(), *t)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, inserted)
}

func (m ApiHandler) updateTransaction(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	transactionID, err := uuid.Parse(c.Param("transactionID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid transaction id: %w", err), c, 400)
		return
	}

	var requestBody transactionRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	t, err := requestBody.toDomain(userID)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	t.TransactionID = transactionID

	if err := m.TransactionService.UpdateTransaction(c.Request.Context(), *t); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, gin.H{"message": "updated"})
}

func (m ApiHandler) deleteTransaction(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	transactionID, err := uuid.Parse(c.Param("transactionID"))
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("invalid transaction id: %w", err), c, 400)
		return
	}

	if err := m.TransactionService.DeleteTransaction(c.Request.Context(), userID, transactionID); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, gin.H{"message": "deleted"})
}

func (m ApiHandler) importTransactionsCsv(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	added, err := m.TransactionService.ImportCsv(c.Request.Context(), userID, c.Request.Body)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	c.JSON(200, gin.H{
		"imported":     len(added),
		"transactions": added,
	})
}

func (m ApiHandler) exportTransactionsCsv(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="transactions.csv"`)
	if err := m.TransactionService.ExportCsv(c.Request.Context(), userID, c.Writer); err != nil {
		returnErrorJson(err, c)
		return
	}
}
