package activity

import (
	"context"

	"github.com/ivxn/timebox/internal/git"
	"github.com/ivxn/timebox/internal/github"
)

// Source yields raw commit-day evidence from one origin as an unordered
// multiset of YYYY-MM-DD strings, one per commit.
type Source interface {
	FetchDays(ctx context.Context, windowDays int) ([]string, error)
}

// LocalSource reads commit dates from the repository at Dir.
// Returns git.ErrNoRepository when there is no repository or no git;
// callers treat that as "no evidence".
type LocalSource struct {
	Dir string
}

func (s LocalSource) FetchDays(ctx context.Context, windowDays int) ([]string, error) {
	return git.CommitDates(ctx, s.Dir, windowDays)
}

// RemoteSource reads commit dates from the GitHub API across all of the
// configured owner's repositories.
type RemoteSource struct {
	Client *github.Client
}

func (s RemoteSource) FetchDays(ctx context.Context, windowDays int) ([]string, error) {
	return s.Client.CommitDays(ctx)
}
