// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablofazio/cvreadme/internal/github"
	"github.com/pablofazio/cvreadme/pkg/types"
)

// stubLister returns a canned repository listing or error.
type stubLister struct {
	repos []github.Repo
	err   error
}

func (s stubLister) ListRepos(_ context.Context, _ string, limit int) ([]github.Repo, error) {
	if s.err != nil {
		return nil, s.err
	}
	if len(s.repos) > limit {
		return s.repos[:limit], nil
	}
	return s.repos, nil
}

func fullRecord() types.Record {
	return types.Record{
		FirstName:  "Jane",
		LastName:   "Doe",
		Occupation: "Software Engineer",
		Email:      "jane.doe@example.com",
		LinkedIn:   "https://www.linkedin.com/in/janedoe",
		GitHub:     "https://github.com/janedoe",
		Website:    "https://janedoe.dev",
		Profiles: map[types.ProfileKey]string{
			types.ProfileTwitter: "https://twitter.com/janedoe",
		},
		Skills: []string{"Python", "React", "Docker"},
	}
}

func TestREADMEFullScenario(t *testing.T) {
	rd := &Renderer{Repos: stubLister{repos: []github.Repo{
		{Name: "widgets", HTMLURL: "https://github.com/janedoe/widgets", Stars: 42},
	}}}
	out := rd.README(context.Background(), fullRecord())

	assert.Contains(t, out, `<h1 align="center">Hi 👋, I'm Jane</h1>`)
	assert.Contains(t, out, `<h3 align="center">Software Engineer</h3>`)

	// Social row carries one icon per populated channel.
	assert.Contains(t, out, `href="mailto:jane.doe@example.com"`)
	assert.Contains(t, out, `href="https://www.linkedin.com/in/janedoe"`)
	assert.Contains(t, out, `href="https://github.com/janedoe"`)
	assert.Contains(t, out, `href="https://twitter.com/janedoe"`)

	// Website highlight shows the bare domain.
	assert.Contains(t, out, "🌐_janedoe.dev")

	// Classified skills produce badges; language badges link to a
	// user-scoped code search.
	assert.Contains(t, out, `alt="Python"`)
	assert.Contains(t, out, `alt="React"`)
	assert.Contains(t, out, `alt="Docker"`)
	assert.Contains(t, out, "https://github.com/search?q=user%3Ajanedoe+language%3Apython&type=code")

	// Projects and stats resolve through the GitHub username.
	assert.Contains(t, out, "api/pin/?username=janedoe&repo=widgets")
	assert.Contains(t, out, "https://github-readme-stats.vercel.app/api/?username=janedoe")
	assert.Contains(t, out, "top-langs/?username=janedoe&langs_count=8&layout=compact")

	assert.True(t, strings.Contains(out, "Generated with-cvreadme") || strings.Contains(out, "Generated%20with-cvreadme"))
}

func TestREADMEEmptyRecord(t *testing.T) {
	rd := &Renderer{}
	out := rd.README(context.Background(), types.Record{})

	assert.Contains(t, out, `Hi 👋, I'm there`)
	assert.NotContains(t, out, "<h3 align=")
	assert.NotContains(t, out, "Social icons section")
	assert.Contains(t, out, "Here you can add your main skills.")
	assert.NotContains(t, out, "GitHub Projects")
	assert.NotContains(t, out, "GitHub Stats")
	assert.Contains(t, out, "Generated%20with-cvreadme")
}

func TestREADMEDeterministic(t *testing.T) {
	rd := &Renderer{Repos: stubLister{repos: []github.Repo{
		{Name: "widgets", HTMLURL: "https://github.com/janedoe/widgets"},
	}}}
	rec := fullRecord()

	first := rd.README(context.Background(), rec)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, rd.README(context.Background(), rec))
	}
}

func TestREADMEProjectsFallbackOnListError(t *testing.T) {
	rd := &Renderer{Repos: stubLister{err: errors.New("rate limited")}}
	out := rd.README(context.Background(), fullRecord())

	assert.NotContains(t, out, "api/pin/")
	assert.Contains(t, out, "https://github.com/janedoe?tab=repositories&sort=stargazers")
}

func TestREADMEProjectsFallbackWithoutLister(t *testing.T) {
	rd := &Renderer{}
	out := rd.README(context.Background(), fullRecord())

	assert.NotContains(t, out, "api/pin/")
	assert.Contains(t, out, "?tab=repositories&sort=stargazers")
}

func TestREADMENoGitHubSkipsProjectsAndStats(t *testing.T) {
	rec := fullRecord()
	rec.GitHub = ""
	rd := &Renderer{Repos: stubLister{repos: []github.Repo{{Name: "widgets"}}}}
	out := rd.README(context.Background(), rec)

	assert.NotContains(t, out, "GitHub Projects")
	assert.NotContains(t, out, "GitHub Stats")
	// Language badges stay but lose the search link.
	assert.Contains(t, out, `alt="Python"`)
	assert.NotContains(t, out, "search?q=user%3A")
}

func TestBareDomain(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"https://janedoe.dev", "janedoe.dev"},
		{"https://www.janedoe.dev/", "janedoe.dev"},
		{"http://example.org/portfolio/", "example.org/portfolio"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bareDomain(tt.in))
	}
}

func TestShieldsEscape(t *testing.T) {
	assert.Equal(t, "jane--doe.dev", shieldsEscape("jane-doe.dev"))
	assert.Equal(t, "my__site", shieldsEscape("my_site"))
	assert.Equal(t, "two_words", shieldsEscape("two words"))
}
