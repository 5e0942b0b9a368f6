package domain

import (
	"fmt"
	"time"
)

type Period string

const (
	Period_OneMonth   Period = "1M"
	Period_ThreeMonth Period = "3M"
	Period_SixMonth   Period = "6M"
	Period_OneYear    Period = "1Y"
	Period_All        Period = "ALL"
)

func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case Period_OneMonth, Period_ThreeMonth, Period_SixMonth, Period_OneYear, Period_All:
		return Period(s), nil
	}
	return "", fmt.Errorf("invalid period %q", s)
}

// Start returns the inclusive lower bound of the period ending at now.
// ALL uses a far-past floor rather than the zero time so date math
// stays well-formed.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case Period_OneMonth:
		return now.AddDate(0, -1, 0)
	case Period_ThreeMonth:
		return now.AddDate(0, -3, 0)
	case Period_SixMonth:
		return now.AddDate(0, -6, 0)
	case Period_OneYear:
		return now.AddDate(-1, 0, 0)
	}
	return time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
}
