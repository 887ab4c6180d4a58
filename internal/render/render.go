// Package render formats planner output for the terminal.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/ivxn/timebox/internal/store"
)

// Pulse renders the per-day commit bar graph, oldest day first.
// dayCounts is one count per day of the window.
func Pulse(dayCounts []int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nGit Pulse (last %d days commits):\n", len(dayCounts))
	for i, count := range dayCounts {
		bar := "-"
		if count > 0 {
			bar = strings.Repeat("█", count)
		}
		fmt.Fprintf(&b, "Day %d: %s (%d)\n", i+1, bar, count)
	}
	return b.String()
}

// MoodTrend renders per-day average mood bars for the trailing window
// ending today, oldest day first.
func MoodTrend(entries []store.MoodRecord, days int, today time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "\nMood trend (last %d days):\n", days)
	if len(entries) == 0 {
		b.WriteString("No mood data recorded.\n")
		return b.String()
	}

	// Bucket moods by calendar day
	dayMoods := make(map[string][]int)
	for _, e := range entries {
		day := e.Timestamp.Format("2006-01-02")
		dayMoods[day] = append(dayMoods[day], e.Mood)
	}

	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format("2006-01-02")
		moods := dayMoods[day]
		if len(moods) == 0 {
			fmt.Fprintf(&b, "Day %d: - (-)\n", days-i)
			continue
		}
		sum := 0
		for _, m := range moods {
			sum += m
		}
		avg := float64(sum) / float64(len(moods))
		bar := strings.Repeat("█", int(avg))
		fmt.Fprintf(&b, "Day %d: %s (%.2f)\n", days-i, bar, avg)
	}
	return b.String()
}

const epicBanner = `
 __   __            _    _ _       _
 \ \ / /           | |  | (_)     | |
  \ V /___  _   _  | |  | |_ _ __ | |
   \ // _ \| | | | | |  | | | '_ \| |
   | | (_) | |_| | | |__| | | | | |_|
   \_/\___/ \__,_|  \____/|_|_| |_(_)
`

// Achievements renders the streak praise block.
func Achievements(streak int) string {
	var b strings.Builder

	b.WriteString("\nAchievements:\n")
	switch {
	case streak >= 10:
		b.WriteString(epicBanner)
		fmt.Fprintf(&b, "\nEpic %d-day streak! Keep smashing it!\n", streak)
	case streak >= 5:
		fmt.Fprintf(&b, "Great job! %d-day streak!\n", streak)
	default:
		b.WriteString("Keep building your streak!\n")
	}
	return b.String()
}
