package classify

import (
	"regexp"
	"strconv"
)

// Kind is the category of a recommended session.
type Kind string

const (
	Pomodoro Kind = "pomodoro"
	Deep     Kind = "deep"
	Sprint   Kind = "sprint"
)

// Thresholds for the session decision table.
const (
	sprintCommits   = 20
	sprintIntensity = 50
	deepCommits     = 10
)

// Recommendation pairs a user-facing label with its session kind.
type Recommendation struct {
	Label string
	Kind  Kind
}

// Suggest maps commit count and intensity to a session recommendation.
// Rules are evaluated top to bottom, first match wins; every input with
// commitCount >= 0 maps to exactly one row.
func Suggest(commitCount, intensity int) Recommendation {
	switch {
	case commitCount >= sprintCommits && intensity > sprintIntensity:
		return Recommendation{"High activity: 45 min sprint + 5 min break", Sprint}
	case commitCount >= deepCommits:
		return Recommendation{"Moderate activity: 60 min deep work + 10 min break", Deep}
	case commitCount > 0:
		return Recommendation{"Low activity: 90 min deep work + 15 min break", Deep}
	default:
		return Recommendation{"No recent commits: Start with a 25 min Pomodoro + 5 min break", Pomodoro}
	}
}

// BreakTip returns the break suggestion for a session kind.
func BreakTip(kind Kind) string {
	switch kind {
	case Pomodoro:
		return "Take a short 5 min break: stretch your arms and relax your eyes."
	case Deep:
		return "Take a longer break: walk for 10 minutes or meditate."
	case Sprint:
		return "You've been sprinting hard! Consider a 15 min break with some light exercise."
	default:
		return "Take a break!"
	}
}

var firstNumberPattern = regexp.MustCompile(`(\d+)`)

// Minutes extracts the session length from a recommendation label: the
// first integer in the text, or 25 when none parses.
func Minutes(label string) int {
	m := firstNumberPattern.FindStringSubmatch(label)
	if m == nil {
		return 25
	}
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return 25
	}
	return n
}
