package render

import (
	"strings"
	"testing"
	"time"

	"github.com/ivxn/timebox/internal/store"
)

func TestPulse(t *testing.T) {
	out := Pulse([]int{0, 3, 1})

	if !strings.Contains(out, "last 3 days") {
		t.Errorf("output missing window length: %q", out)
	}
	if !strings.Contains(out, "Day 1: - (0)") {
		t.Errorf("output missing zero-day dash: %q", out)
	}
	if !strings.Contains(out, "Day 2: ███ (3)") {
		t.Errorf("output missing 3-commit bar: %q", out)
	}
	if !strings.Contains(out, "Day 3: █ (1)") {
		t.Errorf("output missing 1-commit bar: %q", out)
	}
}

func TestMoodTrendEmpty(t *testing.T) {
	out := MoodTrend(nil, 7, time.Now())
	if !strings.Contains(out, "No mood data recorded.") {
		t.Errorf("output = %q", out)
	}
}

func TestMoodTrendAverages(t *testing.T) {
	today := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	entries := []store.MoodRecord{
		{Timestamp: today.Add(-2 * time.Hour), Mood: 3},
		{Timestamp: today.Add(-1 * time.Hour), Mood: 4},
	}

	out := MoodTrend(entries, 7, today)

	// Today is the last rendered day; average of 3 and 4 is 3.50.
	if !strings.Contains(out, "Day 7: ███ (3.50)") {
		t.Errorf("output = %q, want today's average line", out)
	}
	if !strings.Contains(out, "Day 1: - (-)") {
		t.Errorf("output = %q, want empty-day placeholder", out)
	}
}

func TestAchievementsTiers(t *testing.T) {
	if out := Achievements(12); !strings.Contains(out, "Epic 12-day streak") {
		t.Errorf("streak 12: %q", out)
	}
	if out := Achievements(12); !strings.Contains(out, "__") {
		t.Errorf("streak 12 missing banner: %q", out)
	}
	if out := Achievements(5); !strings.Contains(out, "Great job! 5-day streak!") {
		t.Errorf("streak 5: %q", out)
	}
	if out := Achievements(2); !strings.Contains(out, "Keep building your streak!") {
		t.Errorf("streak 2: %q", out)
	}
}
