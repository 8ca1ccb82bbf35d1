// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package github

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pablofazio/cvreadme/pkg/types"
)

func TestValidUsername(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"janedoe", true},
		{"jane-doe_42", true},
		{"", false},
		{"has space", false},
		{"dot.name", false},
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", true},  // 39 chars
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false}, // 40 chars
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidUsername(tt.name), "ValidUsername(%q)", tt.name)
	}
}

func TestListReposSortsAndLimits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/janedoe/repos", r.URL.Path)
		fmt.Fprint(w, `[
			{"name":"small","html_url":"https://github.com/janedoe/small","stargazers_count":1},
			{"name":"forked","html_url":"https://github.com/janedoe/forked","stargazers_count":99,"fork":true},
			{"name":"big","html_url":"https://github.com/janedoe/big","stargazers_count":42},
			{"name":"mid","html_url":"https://github.com/janedoe/mid","stargazers_count":7}
		]`)
	}))
	defer srv.Close()

	oldBase := apiBase
	apiBase = srv.URL
	defer func() { apiBase = oldBase }()

	c := NewClient(types.GitHubConfig{HTTPConfig: types.HTTPConfig{Timeout: 2 * time.Second}})
	repos, err := c.ListRepos(context.Background(), "janedoe", 2)
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "big", repos[0].Name)
	assert.Equal(t, "mid", repos[1].Name)
}

func TestListReposHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusForbidden)
	}))
	defer srv.Close()

	oldBase := apiBase
	apiBase = srv.URL
	defer func() { apiBase = oldBase }()

	c := NewClient(types.GitHubConfig{HTTPConfig: types.HTTPConfig{Timeout: 2 * time.Second}})
	_, err := c.ListRepos(context.Background(), "janedoe", 6)
	assert.Error(t, err)
}

func TestListReposInvalidUsername(t *testing.T) {
	c := NewClient(types.GitHubConfig{})
	_, err := c.ListRepos(context.Background(), "not a user", 6)
	assert.Error(t, err)
}

func TestVerifyUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/users/janedoe" {
			fmt.Fprint(w, `{"login":"janedoe"}`)
			return
		}
		http.NotFound(w, r)
	}))
	defer srv.Close()

	oldBase := apiBase
	apiBase = srv.URL
	defer func() { apiBase = oldBase }()

	c := NewClient(types.GitHubConfig{HTTPConfig: types.HTTPConfig{Timeout: 2 * time.Second}})
	assert.True(t, c.VerifyUser(context.Background(), "janedoe"))
	assert.False(t, c.VerifyUser(context.Background(), "ghost"))
	assert.False(t, c.VerifyUser(context.Background(), "not a user"))
}
