package domain

import "time"

// PerformanceDataPoint is one date's total portfolio value in the
// target currency, with derived return and day-over-day deltas.
// Points are ordered by date ascending and dates are strictly
// increasing within a series.
type PerformanceDataPoint struct {
	Date             time.Time `json:"date"`
	Value            float64   `json:"value"`
	PercentageReturn float64   `json:"percentageReturn"`
	DayChange        float64   `json:"dayChange"`
	DayChangePercent float64   `json:"dayChangePercent"`
}

type ReturnMetric struct {
	Absolute   float64 `json:"absolute"`
	Percentage float64 `json:"percentage"`
}

type DayMetric struct {
	Date          time.Time `json:"date"`
	Change        float64   `json:"change"`
	ChangePercent float64   `json:"changePercent"`
}

type DrawdownMetric struct {
	Percentage  float64   `json:"percentage"`
	Absolute    float64   `json:"absolute"`
	PeakDate    time.Time `json:"peakDate"`
	TroughDate  time.Time `json:"troughDate"`
	PeakValue   float64   `json:"peakValue"`
	TroughValue float64   `json:"troughValue"`
}

type RecoveryStatus string

const (
	RecoveryStatus_Recovered  RecoveryStatus = "recovered"
	RecoveryStatus_InDrawdown RecoveryStatus = "in_drawdown"
)

type RecoveryMetric struct {
	Status      RecoveryStatus `json:"status"`
	Days        int            `json:"days"`
	AverageDays float64        `json:"averageDays"`
}

type PerformanceMetrics struct {
	TotalReturn  ReturnMetric   `json:"totalReturn"`
	PeriodReturn ReturnMetric   `json:"periodReturn"`
	BestDay      DayMetric      `json:"bestDay"`
	WorstDay     DayMetric      `json:"worstDay"`
	MaxDrawdown  DrawdownMetric `json:"maxDrawdown"`
	RecoveryTime RecoveryMetric `json:"recoveryTime"`
}

// PortfolioPerformance is the full analytics result for one request.
type PortfolioPerformance struct {
	Period      Period                 `json:"period"`
	Currency    Currency               `json:"currency"`
	Performance []PerformanceDataPoint `json:"performance"`
	Metrics     PerformanceMetrics     `json:"metrics"`
}
