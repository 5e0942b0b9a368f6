package calculator

import (
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// valueSeries builds a daily series from raw values starting at start.
func valueSeries(start time.Time, values ...float64) []domain.PerformanceDataPoint {
	series := make([]domain.PerformanceDataPoint, len(values))
	for i, v := range values {
		series[i] = domain.PerformanceDataPoint{
			Date:  start.AddDate(0, 0, i),
			Value: v,
		}
	}
	return series
}

func Test_TotalReturn(t *testing.T) {
	start := util.NewDate(2023, 6, 1)

	t.Run("gain", func(t *testing.T) {
		metric := TotalReturn(valueSeries(start, 100, 110, 130))
		require.Equal(t, 30.0, metric.Absolute)
		require.Equal(t, 30.0, metric.Percentage)
	})

	t.Run("loss", func(t *testing.T) {
		metric := TotalReturn(valueSeries(start, 200, 150))
		require.Equal(t, -50.0, metric.Absolute)
		require.Equal(t, -25.0, metric.Percentage)
	})

	t.Run("zero first value has no percentage", func(t *testing.T) {
		metric := TotalReturn(valueSeries(start, 0, 100))
		require.Equal(t, 100.0, metric.Absolute)
		require.Equal(t, 0.0, metric.Percentage)
	})

	t.Run("single point is the zero placeholder", func(t *testing.T) {
		require.Equal(t, domain.ReturnMetric{}, TotalReturn(valueSeries(start, 100)))
	})

	t.Run("empty series is the zero placeholder", func(t *testing.T) {
		require.Equal(t, domain.ReturnMetric{}, TotalReturn(nil))
	})
}

func Test_BestWorstDays(t *testing.T) {
	start := util.NewDate(2023, 6, 1)

	t.Run("best and worst on mixed series", func(t *testing.T) {
		best, worst := BestWorstDays(valueSeries(start, 100, 110, 90, 95))

		require.Equal(t, start.AddDate(0, 0, 1), best.Date)
		require.Equal(t, 10.0, best.Change)
		require.Equal(t, 10.0, best.ChangePercent)

		require.Equal(t, start.AddDate(0, 0, 2), worst.Date)
		require.Equal(t, -20.0, worst.Change)
		require.InDelta(t, -18.1818, worst.ChangePercent, 0.0001)
	})

	t.Run("ties keep the first occurrence", func(t *testing.T) {
		best, worst := BestWorstDays(valueSeries(start, 100, 110, 100, 110, 100))

		require.Equal(t, start.AddDate(0, 0, 1), best.Date)
		require.Equal(t, start.AddDate(0, 0, 2), worst.Date)
	})

	t.Run("single point gives zero placeholders", func(t *testing.T) {
		best, worst := BestWorstDays(valueSeries(start, 100))
		require.Equal(t, domain.DayMetric{}, best)
		require.Equal(t, domain.DayMetric{}, worst)
	})
}
