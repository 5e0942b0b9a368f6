package calculator

import (
	"portfoliotracker/internal/domain"
)

// TotalReturn is the absolute and percentage change from the first to
// the last point of the series. Fewer than 2 points gives the zero
// placeholder; a non-positive first value gives 0 percentage.
func TotalReturn(series []domain.PerformanceDataPoint) domain.ReturnMetric {
	if len(series) < 2 {
		return domain.ReturnMetric{}
	}
	first := series[0].Value
	last := series[len(series)-1].Value
	metric := domain.ReturnMetric{
		Absolute: last - first,
	}
	if first > 0 {
		metric.Percentage = (last - first) / first * 100
	}
	return metric
}

// BestWorstDays scans consecutive pairs for the largest and smallest
// day-over-day change. Ties keep the first occurrence in scan order.
// Fewer than 2 points gives zero placeholders for both.
func BestWorstDays(series []domain.PerformanceDataPoint) (best domain.DayMetric, worst domain.DayMetric) {
	if len(series) < 2 {
		return domain.DayMetric{}, domain.DayMetric{}
	}

	for i := 1; i < len(series); i++ {
		previous := series[i-1].Value
		change := series[i].Value - previous
		changePercent := 0.0
		if previous > 0 {
			changePercent = change / previous * 100
		}
		day := domain.DayMetric{
			Date:          series[i].Date,
			Change:        change,
			ChangePercent: changePercent,
		}
		if i == 1 {
			best = day
			worst = day
			continue
		}
		if change > best.Change {
			best = day
		}
		if change < worst.Change {
			worst = day
		}
	}

	return best, worst
}
