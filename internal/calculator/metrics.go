package calculator

import (
	"portfoliotracker/internal/domain"
	"time"
)

// CalculateMetrics derives the full metrics object from an
// already-built series. Zero and one-point series are valid inputs and
// produce well-formed zero placeholders, never an error - callers can
// always hand the result to the API layer as-is.
//
// PeriodReturn equals TotalReturn because the series itself was built
// only over the requested period.
func CalculateMetrics(series []domain.PerformanceDataPoint, now time.Time) domain.PerformanceMetrics {
	metrics := domain.PerformanceMetrics{
		RecoveryTime: domain.RecoveryMetric{Status: domain.RecoveryStatus_Recovered},
	}
	if len(series) == 0 {
		return metrics
	}

	totalReturn := TotalReturn(series)
	metrics.TotalReturn = totalReturn
	metrics.PeriodReturn = totalReturn
	metrics.BestDay, metrics.WorstDay = BestWorstDays(series)

	drawdown, err := MaxDrawdown(series)
	if err == nil {
		metrics.MaxDrawdown = drawdown
	}
	metrics.RecoveryTime = CalculateRecoveryMetrics(series, now)

	return metrics
}
