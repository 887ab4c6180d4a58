package activity

import (
	"context"
	"time"
)

const dayFormat = "2006-01-02"

// streakLookback caps how far back the streak walk goes.
const streakLookback = 100

// fallbackMinDays is the distinct-day threshold below which local
// evidence is considered under-reported (fresh clone, shallow history)
// and the remote source is consulted instead.
const fallbackMinDays = 3

// Window is the aggregated commit activity over a trailing window
// ending today. CommitCount counts commits with multiplicity; ActiveDays
// holds the distinct in-window days with at least one commit; DayCounts
// holds per-day commit counts, oldest day first, for rendering.
type Window struct {
	CommitCount int
	ActiveDays  map[string]bool
	WindowDays  int
	DayCounts   []int
}

// Aggregator combines commit-day evidence from a local and a remote
// source under a fallback policy: local first, remote only when local
// under-reports and a credential is configured. The two are never merged.
type Aggregator struct {
	Local  Source
	Remote Source

	// HasCredential gates the remote fallback: without a credential the
	// aggregator stays on local evidence however sparse it is.
	HasCredential bool

	// Now is the clock used for window boundaries; nil means time.Now.
	Now func() time.Time
}

// RecentActivity returns the activity window for the last windowDays
// calendar days, today inclusive. No evidence from either source is a
// normal outcome, not an error: the zero-count window is returned.
func (a Aggregator) RecentActivity(ctx context.Context, windowDays int) Window {
	if windowDays <= 0 {
		windowDays = 7
	}

	var dates []string
	if a.Local != nil {
		if d, err := a.Local.FetchDays(ctx, windowDays); err == nil {
			dates = d
		}
	}

	if a.HasCredential && a.Remote != nil && distinctDays(dates) < fallbackMinDays {
		// Discard the local result entirely, even when the remote yields
		// nothing: one source or the other, never a union.
		dates, _ = a.Remote.FetchDays(ctx, windowDays)
	}

	return buildWindow(dates, windowDays, a.now())
}

func (a Aggregator) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// buildWindow counts day-strings falling inside the trailing window.
// A day with three commits contributes 3 to CommitCount and one entry
// to ActiveDays.
func buildWindow(dates []string, windowDays int, today time.Time) Window {
	counts := make(map[string]int, len(dates))
	for _, d := range dates {
		counts[d]++
	}

	w := Window{
		ActiveDays: make(map[string]bool),
		WindowDays: windowDays,
		DayCounts:  make([]int, windowDays),
	}
	for i := 0; i < windowDays; i++ {
		day := today.AddDate(0, 0, -i).Format(dayFormat)
		n := counts[day]
		w.DayCounts[windowDays-1-i] = n
		if n > 0 {
			w.CommitCount += n
			w.ActiveDays[day] = true
		}
	}
	return w
}

// Streak returns the number of consecutive days ending today with at
// least one commit. An inactive today means 0 immediately; otherwise the
// walk stops at the first missing day or after the lookback cap.
func Streak(activeDays map[string]bool, today time.Time) int {
	streak := 0
	for i := 0; i < streakLookback; i++ {
		day := today.AddDate(0, 0, -i).Format(dayFormat)
		if !activeDays[day] {
			return streak
		}
		streak++
	}
	return streak
}

func distinctDays(dates []string) int {
	seen := make(map[string]bool, len(dates))
	for _, d := range dates {
		seen[d] = true
	}
	return len(seen)
}
