package api

import (
	"fmt"
	"portfoliotracker/internal/domain"

	"github.com/gin-gonic/gin"
)

type summaryRequest struct {
	Period   string `json:"period"`
	Currency string `json:"currency"`
}

type summaryResponse struct {
	Period  domain.Period             `json:"period"`
	Metrics domain.PerformanceMetrics `json:"metrics"`
	Summary string                    `json:"summary"`
}

func (m ApiHandler) summarizePortfolio(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody summaryRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	period, err := domain.ParsePeriod(requestBody.Period)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	currency, err := domain.ParseCurrency(requestBody.Currency)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	result, err := m.PerformanceService.GetPortfolioPerformance(c.Request.Context(), userID, period, currency)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to compute portfolio performance: %w", err), c)
		return
	}

	summary, err := m.GptRepository.SummarizePerformance(c.Request.Context(), period, result.Metrics)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to summarize performance: %w", err), c)
		return
	}

	c.JSON(200, summaryResponse{
		Period:  period,
		Metrics: result.Metrics,
		Summary: summary,
	})
}
