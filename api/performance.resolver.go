package api

import (
	"context"
	"fmt"
	"portfoliotracker/internal/domain"

	"github.com/gin-gonic/gin"
)

func (m ApiHandler) getPortfolioPerformance(c *gin.Context) {
	userID, err := userIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	period, err := domain.ParsePeriod(c.DefaultQuery("period", string(domain.Period_All)))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	currency, err := domain.ParseCurrency(c.DefaultQuery("currency", string(domain.Currency_USD)))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	profile, endProfile := domain.NewProfile()
	defer endProfile()
	ctx := context.WithValue(c.Request.Context(), domain.ContextProfileKey, profile)

	result, err := m.PerformanceService.GetPortfolioPerformance(ctx, userID, period, currency)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to compute portfolio performance: %w", err), c)
		return
	}

	c.JSON(200, result)
}
