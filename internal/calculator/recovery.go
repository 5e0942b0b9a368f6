package calculator

import (
	"portfoliotracker/internal/domain"
	"portfoliotracker/internal/util"
	"time"

	"github.com/montanaflynn/stats"
)

// a drawdown only counts as an episode once the decline from the
// running peak crosses this percentage
const episodeThreshold = 5.0

// drawdownEpisode tracks one significant decline from a running peak
// until the value re-attains that peak. Only recovered episodes are
// collected; an episode still open at the end of the series is
// reported through the in_drawdown status instead.
type drawdownEpisode struct {
	peakValue    float64
	peakDate     time.Time
	troughDate   time.Time
	recoveryDate time.Time
}

// CalculateRecoveryMetrics segments the series into drawdown episodes
// deeper than 5% and reports recovery durations in calendar days.
//
// While an episode is open, the trough date advances only while the
// series keeps declining day-over-day; if the series oscillates before
// recovering, the trough is the last consecutive declining day, not
// the episode's global minimum.
//
// If the series ends more than 5% below the running peak the status is
// in_drawdown and Days counts from the peak date to now; otherwise
// Days is the trough-to-recovery span of the most recently closed
// episode, or 0 if none closed.
func CalculateRecoveryMetrics(series []domain.PerformanceDataPoint, now time.Time) domain.RecoveryMetric {
	if len(series) == 0 {
		return domain.RecoveryMetric{Status: domain.RecoveryStatus_Recovered}
	}

	peak := series[0].Value
	peakDate := series[0].Date
	episodes := []drawdownEpisode{}
	var open *drawdownEpisode

	for i, p := range series {
		if open == nil {
			if peak > 0 && (peak-p.Value)/peak*100 > episodeThreshold {
				open = &drawdownEpisode{
					peakValue:  peak,
					peakDate:   peakDate,
					troughDate: p.Date,
				}
			}
		} else if p.Value >= open.peakValue {
			open.recoveryDate = p.Date
			episodes = append(episodes, *open)
			open = nil
		} else if i > 0 && p.Value < series[i-1].Value {
			open.troughDate = p.Date
		}

		if p.Value > peak {
			peak = p.Value
			peakDate = p.Date
		}
	}

	recoveryDays := []float64{}
	for _, e := range episodes {
		recoveryDays = append(recoveryDays, float64(util.CalendarDaysBetween(e.troughDate, e.recoveryDate)))
	}
	averageDays := 0.0
	if len(recoveryDays) > 0 {
		mean, err := stats.Mean(recoveryDays)
		if err == nil {
			averageDays = mean
		}
	}

	last := series[len(series)-1]
	if peak > 0 && (peak-last.Value)/peak*100 > episodeThreshold {
		return domain.RecoveryMetric{
			Status:      domain.RecoveryStatus_InDrawdown,
			Days:        util.CalendarDaysBetween(peakDate, now),
			AverageDays: averageDays,
		}
	}

	if len(episodes) > 0 {
		latest := episodes[len(episodes)-1]
		return domain.RecoveryMetric{
			Status:      domain.RecoveryStatus_Recovered,
			Days:        util.CalendarDaysBetween(latest.troughDate, latest.recoveryDate),
			AverageDays: averageDays,
		}
	}

	return domain.RecoveryMetric{Status: domain.RecoveryStatus_Recovered}
}
