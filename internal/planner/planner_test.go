package planner

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ivxn/timebox/internal/activity"
	"github.com/ivxn/timebox/internal/config"
	"github.com/ivxn/timebox/internal/store"
)

type fakeSource struct {
	days []string
}

func (s fakeSource) FetchDays(ctx context.Context, windowDays int) ([]string, error) {
	return s.days, nil
}

type fakeNotifier struct {
	messages []string
}

func (n *fakeNotifier) Notify(title, message string) {
	n.messages = append(n.messages, message)
}

func newTestPlanner(t *testing.T, days []string, intensity int, now time.Time, input string) (*Planner, *store.Store, *bytes.Buffer) {
	t.Helper()

	st := store.New(filepath.Join(t.TempDir(), ".timebox"))
	if err := st.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	st.Now = func() time.Time { return now }

	var out bytes.Buffer
	p := &Planner{
		Cfg:   config.DefaultConfig(),
		Store: st,
		Agg: activity.Aggregator{
			Local: fakeSource{days: days},
			Now:   func() time.Time { return now },
		},
		Notifier:  &fakeNotifier{},
		Intensity: func(ctx context.Context) int { return intensity },
		Now:       func() time.Time { return now },
		In:        strings.NewReader(input),
		Out:       &out,
	}
	return p, st, &out
}

func midday() time.Time {
	return time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
}

func TestRunQuietHoursSuppressesEverything(t *testing.T) {
	late := time.Date(2024, 3, 5, 23, 0, 0, 0, time.UTC)
	p, st, out := newTestPlanner(t, []string{"2024-03-05"}, 10, late, "")

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(out.String(), "quiet hours") {
		t.Errorf("output = %q, want quiet hours notice", out.String())
	}
	sessions, _ := st.Sessions()
	if len(sessions) != 0 {
		t.Errorf("quiet hours logged %d sessions, want 0", len(sessions))
	}
}

func TestRunSprintScenario(t *testing.T) {
	days := make([]string, 25)
	for i := range days {
		days[i] = "2024-03-05"
	}
	p, st, out := newTestPlanner(t, days, 80, midday(), "n\n")

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(out.String(), "High activity: 45 min sprint + 5 min break") {
		t.Errorf("output missing sprint label: %q", out.String())
	}
	if !strings.Contains(out.String(), "Commits last 7 days: 25") {
		t.Errorf("output missing commit count: %q", out.String())
	}
	if !strings.Contains(out.String(), "Okay, session not started.") {
		t.Errorf("output missing decline message: %q", out.String())
	}

	sessions, _ := st.Sessions()
	if len(sessions) != 1 {
		t.Fatalf("got %d sessions, want 1", len(sessions))
	}
	if sessions[0].SessionType != "sprint" {
		t.Errorf("SessionType = %q, want sprint", sessions[0].SessionType)
	}
	if sessions[0].Intensity != 80 {
		t.Errorf("Intensity = %d, want 80", sessions[0].Intensity)
	}
}

func TestRunNoCommitsScenario(t *testing.T) {
	p, st, out := newTestPlanner(t, nil, 0, midday(), "n\n")

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(out.String(), "No recent commits: Start with a 25 min Pomodoro + 5 min break") {
		t.Errorf("output missing pomodoro label: %q", out.String())
	}

	sessions, _ := st.Sessions()
	if len(sessions) != 1 || sessions[0].SessionType != "pomodoro" {
		t.Errorf("sessions = %+v, want one pomodoro record", sessions)
	}
}

func TestRunInvalidMoodNotLogged(t *testing.T) {
	p, st, out := newTestPlanner(t, nil, 0, midday(), "y\n\n9\n")

	// Cancelled context makes the countdown unwind immediately.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(out.String(), "Invalid input. Mood not logged.") {
		t.Errorf("output = %q, want invalid mood message", out.String())
	}
	if !strings.Contains(out.String(), "Timer cancelled.") {
		t.Errorf("output = %q, want cancelled timer message", out.String())
	}

	moods, _ := st.Moods()
	if len(moods) != 0 {
		t.Errorf("got %d moods, want 0", len(moods))
	}
}

func TestRunNoteAndMoodLogged(t *testing.T) {
	p, st, out := newTestPlanner(t, nil, 0, midday(), "y\nfinish the parser\n4\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := p.Run(ctx); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if !strings.Contains(out.String(), "Note saved.") {
		t.Errorf("output = %q, want note confirmation", out.String())
	}
	if !strings.Contains(out.String(), "Mood logged.") {
		t.Errorf("output = %q, want mood confirmation", out.String())
	}

	moods, _ := st.Moods()
	if len(moods) != 1 || moods[0].Mood != 4 {
		t.Errorf("moods = %+v, want one rating of 4", moods)
	}

	notes, err := os.ReadFile(filepath.Join(st.Dir(), "task_notes.txt"))
	if err != nil {
		t.Fatalf("read notes: %v", err)
	}
	if !strings.Contains(string(notes), "finish the parser") {
		t.Errorf("notes = %q, want saved note text", notes)
	}
}

func TestRunStreakRendered(t *testing.T) {
	days := []string{"2024-03-05", "2024-03-04", "2024-03-03"}
	p, _, out := newTestPlanner(t, days, 0, midday(), "n\n")

	if err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "Git streak: 3 day(s)") {
		t.Errorf("output = %q, want 3-day streak line", out.String())
	}
}
