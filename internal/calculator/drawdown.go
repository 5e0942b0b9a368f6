package calculator

import (
	"fmt"
	"portfoliotracker/internal/domain"
)

// MaxDrawdown finds the single largest peak-to-trough decline in one
// forward scan. The stored maximum carries the peak that was running
// when it occurred, so a drawdown is attributed to its own local high
// even when a higher peak shows up later. A single point gives zero
// drawdown with peak and trough at that point.
func MaxDrawdown(series []domain.PerformanceDataPoint) (domain.DrawdownMetric, error) {
	if len(series) == 0 {
		return domain.DrawdownMetric{}, fmt.Errorf("cannot compute drawdown on empty series")
	}

	peak := series[0].Value
	peakDate := series[0].Date
	max := domain.DrawdownMetric{
		PeakDate:    series[0].Date,
		TroughDate:  series[0].Date,
		PeakValue:   series[0].Value,
		TroughValue: series[0].Value,
	}

	for _, p := range series {
		if p.Value > peak {
			peak = p.Value
			peakDate = p.Date
		}
		if peak <= 0 {
			continue
		}
		drawdownPercent := (peak - p.Value) / peak * 100
		if drawdownPercent > max.Percentage {
			max = domain.DrawdownMetric{
				Percentage:  drawdownPercent,
				Absolute:    peak - p.Value,
				PeakDate:    peakDate,
				TroughDate:  p.Date,
				PeakValue:   peak,
				TroughValue: p.Value,
			}
		}
	}

	return max, nil
}
