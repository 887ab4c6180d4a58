package git

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"time"
)

// ErrNoRepository reports that dir is not inside a git repository or that
// git itself is not installed. Callers treat it as "no evidence", not as
// a fatal condition.
var ErrNoRepository = errors.New("not a git repository (or git not installed)")

const commandTimeout = 5 * time.Second

// Root resolves the repository root containing dir.
func Root(ctx context.Context, dir string) (string, error) {
	out, err := run(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", ErrNoRepository
	}
	root := strings.TrimSpace(out)
	if root == "" {
		return "", ErrNoRepository
	}
	return root, nil
}

// CommitDates returns one YYYY-MM-DD string per commit made in the last
// sinceDays days, most recent first. Duplicates are expected: a day with
// three commits appears three times.
func CommitDates(ctx context.Context, dir string, sinceDays int) ([]string, error) {
	cutoff := time.Now().AddDate(0, 0, -sinceDays).Format("2006-01-02")

	out, err := run(ctx, dir, "log", "--since="+cutoff, "--pretty=format:%ad", "--date=short")
	if err != nil {
		return nil, ErrNoRepository
	}

	var dates []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			dates = append(dates, line)
		}
	}
	return dates, nil
}

// Intensity returns the number of lines changed (insertions plus
// deletions) by the most recent commit. Best-effort proxy: returns 0
// when fewer than two commits exist or the diff fails for any reason.
func Intensity(ctx context.Context, dir string) int {
	out, err := run(ctx, dir, "diff", "--shortstat", "HEAD~1", "HEAD")
	if err != nil {
		return 0
	}
	insertions, deletions := ParseShortstat(out)
	return insertions + deletions
}

// run executes a git subcommand in dir with a bounded timeout.
func run(ctx context.Context, dir string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
