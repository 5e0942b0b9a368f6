package api

import (
	"bytes"
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"portfoliotracker/internal/db/models/postgres/public/model"
	"portfoliotracker/internal/logger"
	"portfoliotracker/internal/repository"
	"portfoliotracker/internal/service"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db                   *sql.DB
	PerformanceService   service.PerformanceService
	TransactionService   service.TransactionService
	MarketDataRepository repository.MarketDataRepository
	AlpacaRepository     repository.AlpacaRepository
	GptRepository        repository.GptRepository
	ApiRequestRepository repository.ApiRequestRepository
	JwtDecodeToken       string
}

func int64Ptr(i int64) *int64 {
	return &i
}
func int32Ptr(i int32) *int32 {
	return &i
}
func strPtr(s string) *string {
	return &s
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	requestLogger := logger.New()

	router := gin.Default()
	router.Use(cors.Default())
	router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), logger.ContextKey, requestLogger))
		c.Next()
	})
	router.Use(m.logRequestMiddlware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to portfoliotracker"})
	})

	authenticated := router.Group("/", m.authMiddleware)
	authenticated.GET("/portfolio/performance", m.getPortfolioPerformance)
	authenticated.GET("/portfolio/quotes", m.getPortfolioQuotes)
	authenticated.POST("/portfolio/summary", m.summarizePortfolio)
	authenticated.GET("/transactions", m.listTransactions)
	authenticated.POST("/transactions", m.addTransaction)
	authenticated.PATCH("/transactions/:transactionID", m.updateTransaction)
	authenticated.DELETE("/transactions/:transactionID", m.deleteTransaction)
	authenticated.POST("/transactions/import", m.importTransactionsCsv)
	authenticated.GET("/transactions/export", m.exportTransactionsCsv)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(500, gin.H{
		"error": err.Error(),
	})
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	fmt.Println(err.Error())
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (m ApiHandler) logRequestMiddlware(ctx *gin.Context) {
	w := &responseBodyWriter{body: &bytes.Buffer{}, ResponseWriter: ctx.Writer}
	ctx.Writer = w

	body, err := ctx.GetRawData()
	if err != nil {
		log.Println(fmt.Errorf("failed to get raw data: %w", err))
	}
	ctx.Request.Body = io.NopCloser(bytes.NewReader(body))

	start := time.Now().UTC()
	req, err := m.ApiRequestRepository.Add(m.Db, model.APIRequest{
		IPAddress:   strPtr(ctx.ClientIP()),
		Method:      ctx.Request.Method,
		Route:       ctx.Request.URL.Path,
		RequestBody: strPtr(string(body)),
		StartTs:     start,
	})
	if err != nil {
		log.Println(err)
	}
	if req != nil {
		ctx.Set("requestID", req.RequestID.String())
	}

	ctx.Next()

	if req != nil {
		req.DurationMs = int64Ptr(time.Since(start).Milliseconds())
		req.StatusCode = int32Ptr(int32(ctx.Writer.Status()))
		req.ResponseBody = strPtr(w.body.String())

		err = m.ApiRequestRepository.Update(m.Db, *req)
		if err != nil {
			log.Println(err)
		}
	}
}

// userIDFromContext reads the user id the auth middleware stored on
// the request.
func userIDFromContext(c *gin.Context) (uuid.UUID, error) {
	ginUserID, ok := c.Get("userID")
	if !ok {
		return uuid.Nil, fmt.Errorf("must be logged in")
	}
	userIDStr, ok := ginUserID.(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("misformatted user id")
	}

	return uuid.Parse(userIDStr)
}
