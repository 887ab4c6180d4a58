package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

const perPage = 100

// Client queries the GitHub REST API for an owner's commit activity.
// Token is optional: without it, calls are unauthenticated and subject
// to stricter rate limits.
type Client struct {
	Owner   string
	Token   string
	BaseURL string // e.g. https://api.github.com

	HTTPClient *http.Client
}

// CommitDays returns one YYYY-MM-DD string per commit across all of the
// owner's repositories, paginating both the repository list and each
// repository's commit list. A failed page ends that pagination but keeps
// everything gathered so far; the result is never an error.
func (c *Client) CommitDays(ctx context.Context) ([]string, error) {
	if c.Owner == "" {
		return nil, nil
	}

	var days []string
	for _, name := range c.repoNames(ctx) {
		days = append(days, c.repoCommitDays(ctx, name)...)
	}
	return days, nil
}

// repoNames lists the owner's repositories. Pagination stops on the
// first empty page or non-2xx response.
func (c *Client) repoNames(ctx context.Context) []string {
	var names []string
	for page := 1; ; page++ {
		var batch []repository
		if err := c.getJSON(ctx, "/users/"+c.Owner+"/repos", page, &batch); err != nil {
			break
		}
		if len(batch) == 0 {
			break
		}
		for _, r := range batch {
			if r.Name != "" {
				names = append(names, r.Name)
			}
		}
	}
	return names
}

// repoCommitDays lists commit author dates (day precision) for one
// repository. A non-2xx response at any page means "no more data for
// this repository", not a fetch failure.
func (c *Client) repoCommitDays(ctx context.Context, repo string) []string {
	var days []string
	for page := 1; ; page++ {
		var batch []commitEntry
		if err := c.getJSON(ctx, "/repos/"+c.Owner+"/"+repo+"/commits", page, &batch); err != nil {
			break
		}
		if len(batch) == 0 {
			break
		}
		for _, e := range batch {
			if len(e.Commit.Author.Date) >= 10 {
				days = append(days, e.Commit.Author.Date[:10])
			}
		}
	}
	return days
}

// getJSON fetches one page of a paginated endpoint into v.
func (c *Client) getJSON(ctx context.Context, path string, page int, v any) error {
	url := strings.TrimRight(c.BaseURL, "/") + path +
		"?per_page=" + strconv.Itoa(perPage) + "&page=" + strconv.Itoa(page)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", "token "+c.Token)
	}

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}
