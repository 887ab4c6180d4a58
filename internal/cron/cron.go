// Package cron lists the user's crontab entries so the planner can show
// scheduled work alongside session suggestions. A missing crontab or an
// empty table is "no jobs", never an error.
package cron

import (
	"context"
	"os/exec"
	"strings"
	"time"
)

const commandTimeout = 5 * time.Second

// Job is one active crontab line.
type Job struct {
	Line     string
	Schedule []string // the five time fields, nil when unparseable
}

// Jobs runs `crontab -l` and returns the active (non-comment) entries.
func Jobs(ctx context.Context) []Job {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, "crontab", "-l").Output()
	if err != nil {
		return nil
	}

	var jobs []Job
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		jobs = append(jobs, Job{Line: line, Schedule: ParseSchedule(line)})
	}
	return jobs
}

// ParseSchedule splits the five time fields off a crontab line.
// Returns nil when the line has fewer than six fields (five time fields
// plus a command).
func ParseSchedule(line string) []string {
	parts := strings.Fields(line)
	if len(parts) < 6 {
		return nil
	}
	return parts[:5]
}
