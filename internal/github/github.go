// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package github implements the optional GitHub enrichment lookups:
// repository listing for the projects section and best-effort identity
// verification. Both are cosmetic; callers must treat every failure as
// "no data available".
package github

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"sort"

	"github.com/pablofazio/cvreadme/internal/httputil"
	"github.com/pablofazio/cvreadme/pkg/types"
)

// apiBase is the GitHub REST endpoint. Declared as a var so tests can
// substitute an httptest server.
var apiBase = "https://api.github.com"

// DefaultMaxRepos is how many repositories the projects section shows
// when the config leaves it unset.
const DefaultMaxRepos = 6

// usernamePattern is the shape of a valid GitHub username. GitHub caps
// usernames at 39 characters.
var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,39}$`)

// ValidUsername reports whether name can be a GitHub username. Extraction
// may capture junk; this gates any network lookup on it.
func ValidUsername(name string) bool {
	return usernamePattern.MatchString(name)
}

// Repo is one repository in a user's listing.
type Repo struct {
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Stars       int    `json:"stargazers_count"`
	Language    string `json:"language"`
	Fork        bool   `json:"fork"`
}

// Client queries the GitHub REST API.
type Client struct {
	httpClient *http.Client
	userAgent  string
	token      string
}

// NewClient builds a Client from the enrichment config.
func NewClient(cfg types.GitHubConfig) *Client {
	return &Client{
		httpClient: httputil.NewClient(cfg.HTTPConfig),
		userAgent:  cfg.UserAgent,
		token:      cfg.Token,
	}
}

// ListRepos returns up to limit of the user's repositories, most-starred
// first. Forks are excluded. Any transport or status failure is an error
// the caller downgrades to "no data".
func (c *Client) ListRepos(ctx context.Context, username string, limit int) ([]Repo, error) {
	if !ValidUsername(username) {
		return nil, fmt.Errorf("invalid GitHub username %q", username)
	}
	if limit <= 0 {
		limit = DefaultMaxRepos
	}

	url := fmt.Sprintf("%s/users/%s/repos?per_page=100&type=owner", apiBase, username)

	var repos []Repo
	if err := httputil.GetJSON(ctx, c.httpClient, url, c.userAgent, c.token, &repos); err != nil {
		return nil, fmt.Errorf("listing repositories for %s: %w", username, err)
	}

	kept := repos[:0]
	for _, r := range repos {
		if !r.Fork {
			kept = append(kept, r)
		}
	}

	// The listing endpoint cannot sort by popularity; do it here.
	sort.SliceStable(kept, func(i, j int) bool { return kept[i].Stars > kept[j].Stars })

	if len(kept) > limit {
		kept = kept[:limit]
	}
	return kept, nil
}

// VerifyUser reports whether the GitHub user exists. Best-effort: any
// failure, timeout or non-success status reads as "not verified".
func (c *Client) VerifyUser(ctx context.Context, username string) bool {
	if !ValidUsername(username) {
		return false
	}
	url := fmt.Sprintf("%s/users/%s", apiBase, username)
	return httputil.Exists(ctx, c.httpClient, url, c.userAgent)
}
