package calculator

import (
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_CalculateRecoveryMetrics(t *testing.T) {
	start := util.NewDate(2023, 6, 1)

	t.Run("episode opens past 5 percent and closes on recovery", func(t *testing.T) {
		now := start.AddDate(0, 0, 3)
		metric := CalculateRecoveryMetrics(valueSeries(start, 100, 120, 90, 130), now)

		require.Equal(t, domain.RecoveryStatus_Recovered, metric.Status)
		require.Equal(t, 1, metric.Days)
		require.Equal(t, 1.0, metric.AverageDays)
	})

	t.Run("shallow decline reports recovered with zero days", func(t *testing.T) {
		now := start.AddDate(0, 0, 2)
		metric := CalculateRecoveryMetrics(valueSeries(start, 100, 94, 95), now)

		require.Equal(t, domain.RecoveryStatus_Recovered, metric.Status)
		require.Equal(t, 0, metric.Days)
		require.Equal(t, 0.0, metric.AverageDays)
	})

	t.Run("unrecovered decline reports days since peak", func(t *testing.T) {
		now := start.AddDate(0, 0, 10)
		metric := CalculateRecoveryMetrics(valueSeries(start, 100, 80), now)

		require.Equal(t, domain.RecoveryStatus_InDrawdown, metric.Status)
		require.Equal(t, 10, metric.Days)
	})

	t.Run("strictly increasing series recovers with zero days", func(t *testing.T) {
		now := start.AddDate(0, 0, 3)
		metric := CalculateRecoveryMetrics(valueSeries(start, 100, 110, 120, 130), now)

		require.Equal(t, domain.RecoveryStatus_Recovered, metric.Status)
		require.Equal(t, 0, metric.Days)
		require.Equal(t, 0.0, metric.AverageDays)
	})

	t.Run("single point is well-formed", func(t *testing.T) {
		metric := CalculateRecoveryMetrics(valueSeries(start, 100), start)
		require.Equal(t, domain.RecoveryStatus_Recovered, metric.Status)
		require.Equal(t, 0, metric.Days)
		require.Equal(t, 0.0, metric.AverageDays)
	})

	t.Run("empty series is well-formed", func(t *testing.T) {
		metric := CalculateRecoveryMetrics(nil, start)
		require.Equal(t, domain.RecoveryStatus_Recovered, metric.Status)
	})

	t.Run("trough is the last consecutive declining day", func(t *testing.T) {
		// the episode's minimum is day 2 (90), but the series rises
		// then dips again before recovering; the trough date tracks
		// the later dip
		now := start.AddDate(0, 0, 4)
		metric := CalculateRecoveryMetrics(valueSeries(start, 100, 90, 95, 92, 130), now)

		require.Equal(t, domain.RecoveryStatus_Recovered, metric.Status)
		require.Equal(t, 1, metric.Days)
	})

	t.Run("average spans all recovered episodes", func(t *testing.T) {
		now := start.AddDate(0, 0, 7)
		metric := CalculateRecoveryMetrics(
			valueSeries(start, 100, 90, 100, 200, 150, 140, 145, 200),
			now,
		)

		require.Equal(t, domain.RecoveryStatus_Recovered, metric.Status)
		require.Equal(t, 2, metric.Days)
		require.Equal(t, 1.5, metric.AverageDays)
	})
}
