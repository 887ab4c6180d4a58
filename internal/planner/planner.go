// Package planner orchestrates one planning run: gather activity
// evidence, derive metrics, classify a session recommendation, render,
// persist, and optionally drive the interactive timer flow.
package planner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/ivxn/timebox/internal/activity"
	"github.com/ivxn/timebox/internal/classify"
	"github.com/ivxn/timebox/internal/config"
	"github.com/ivxn/timebox/internal/git"
	"github.com/ivxn/timebox/internal/github"
	"github.com/ivxn/timebox/internal/notify"
	"github.com/ivxn/timebox/internal/render"
	"github.com/ivxn/timebox/internal/store"
	"github.com/ivxn/timebox/internal/timer"
)

// Planner wires the evidence sources, classifier, store, and terminal
// I/O for one run. All collaborators are explicit so tests can inject
// fakes; there is no ambient state.
type Planner struct {
	Cfg      config.Config
	RepoRoot string
	Store    *store.Store
	Agg      activity.Aggregator
	Notifier notify.Notifier

	// Intensity measures lines changed in the most recent commit;
	// nil means git.Intensity over RepoRoot.
	Intensity func(ctx context.Context) int

	// Now is the planner clock; nil means time.Now.
	Now func() time.Time

	In  io.Reader
	Out io.Writer
}

// New builds a Planner over the repository at repoRoot using the real
// local and remote evidence sources.
func New(cfg config.Config, repoRoot string, st *store.Store) *Planner {
	token := cfg.Token()

	return &Planner{
		Cfg:      cfg,
		RepoRoot: repoRoot,
		Store:    st,
		Agg: activity.Aggregator{
			Local: activity.LocalSource{Dir: repoRoot},
			Remote: activity.RemoteSource{Client: &github.Client{
				Owner:   cfg.Owner,
				Token:   token,
				BaseURL: cfg.BaseURL,
			}},
			HasCredential: token != "",
		},
		Notifier: notify.New(),
	}
}

// Run executes one planning pass. Quiet hours suppress the whole run
// (a gating behavior, not an error). A cancelled context unwinds with
// all already-persisted records intact.
func (p *Planner) Run(ctx context.Context) error {
	now := p.now()

	if p.Cfg.Quiet.Contains(now) {
		fmt.Fprintln(p.Out, "Currently in quiet hours: no session suggestions or timers.")
		return nil
	}

	window := p.Agg.RecentActivity(ctx, p.Cfg.WindowDays)
	intensity := p.intensity(ctx)
	streak := activity.Streak(window.ActiveDays, now)
	rec := classify.Suggest(window.CommitCount, intensity)

	fmt.Fprintln(p.Out, "Context-Aware Timebox Planner")
	fmt.Fprintln(p.Out, strings.Repeat("-", 50))
	fmt.Fprintf(p.Out, "Commits last %d days: %d\n", window.WindowDays, window.CommitCount)
	fmt.Fprintf(p.Out, "Git streak: %d day(s)\n", streak)
	fmt.Fprintf(p.Out, "Work intensity (lines changed last commit): %d\n", intensity)
	fmt.Fprintf(p.Out, "Suggested session: %s\n", rec.Label)
	fmt.Fprintf(p.Out, "Current time: %s\n", now.Format("Monday, 3:04 PM"))

	fmt.Fprint(p.Out, render.Achievements(streak))
	fmt.Fprint(p.Out, render.Pulse(window.DayCounts))

	moods, _ := p.Store.MoodTrend(window.WindowDays)
	fmt.Fprint(p.Out, render.MoodTrend(moods, window.WindowDays, now))

	if err := p.Store.AppendSession(store.SessionRecord{
		Timestamp:   now,
		Suggestion:  rec.Label,
		Intensity:   intensity,
		SessionType: string(rec.Kind),
	}); err != nil {
		return fmt.Errorf("log session: %w", err)
	}

	fmt.Fprintf(p.Out, "\n%s\n", classify.BreakTip(rec.Kind))

	return p.interactive(ctx, rec)
}

// interactive runs the optional note/mood/timer flow after the
// recommendation has been logged.
func (p *Planner) interactive(ctx context.Context, rec classify.Recommendation) error {
	in := bufio.NewScanner(p.In)

	if strings.ToLower(p.prompt(in, "\nStart timer now? (y/n): ")) != "y" {
		fmt.Fprintln(p.Out, "Okay, session not started.")
		return nil
	}

	if note := p.prompt(in, "Add a short note for this session (or leave blank): "); note != "" {
		if err := p.Store.AppendNote(note); err != nil {
			return fmt.Errorf("save note: %w", err)
		}
		fmt.Fprintln(p.Out, "Note saved.")
	}

	p.promptMood(in)

	minutes := classify.Minutes(rec.Label)
	fmt.Fprintf(p.Out, "\nStarting timer for %d minutes. Press Ctrl+C to cancel.\n", minutes)

	err := timer.Countdown(ctx, time.Duration(minutes)*time.Minute, p.Out)
	if errors.Is(err, context.Canceled) {
		fmt.Fprintln(p.Out, "Timer cancelled.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(p.Out, "Time's up! Take a break or start a new session.")
	p.Notifier.Notify("Timebox Timer", "Time's up! Take a break or start a new session.")
	return nil
}

// promptMood asks for a 1-5 rating and logs it. Out-of-range or
// unparseable input is rejected with a message; the record is simply
// not logged and no retry is offered.
func (p *Planner) promptMood(in *bufio.Scanner) {
	answer := p.prompt(in, "Rate your focus/mood this session (1-5): ")

	mood, err := strconv.Atoi(answer)
	if err != nil || mood < 1 || mood > 5 {
		fmt.Fprintln(p.Out, "Invalid input. Mood not logged.")
		return
	}

	if err := p.Store.AppendMood(store.MoodRecord{Timestamp: p.now(), Mood: mood}); err != nil {
		fmt.Fprintln(p.Out, "Invalid input. Mood not logged.")
		return
	}
	fmt.Fprintln(p.Out, "Mood logged.")
}

func (p *Planner) prompt(in *bufio.Scanner, msg string) string {
	fmt.Fprint(p.Out, msg)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func (p *Planner) intensity(ctx context.Context) int {
	if p.Intensity != nil {
		return p.Intensity(ctx)
	}
	return git.Intensity(ctx, p.RepoRoot)
}

func (p *Planner) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}
