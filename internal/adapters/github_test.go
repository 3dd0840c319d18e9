package adapters

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/gitfolio/gitfolio/internal/errors"
	"github.com/gitfolio/gitfolio/internal/types"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// newTestAdapter points an adapter at a fake GitHub API.
func newTestAdapter(t *testing.T, cfg Config, handler http.Handler) *GitHubAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	adapter := NewGitHubAdapter(cfg, testLogger())
	baseURL, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	adapter.client.BaseURL = baseURL
	return adapter
}

func fakeGitHub(t *testing.T, eventsStatus int) http.Handler {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/users/ada", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"login": "ada",
			"name": "Ada Lovelace",
			"bio": "Engines and analysis",
			"avatar_url": "https://avatars.githubusercontent.com/u/1",
			"blog": "https://ada.dev",
			"company": "Analytical Engines",
			"location": "London",
			"email": "ada@example.com",
			"twitter_username": "ada",
			"followers": 120,
			"following": 4,
			"public_repos": 3
		}`))
	})

	mux.HandleFunc("/users/ada/repos", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "pushed", r.URL.Query().Get("sort"))
		assert.Equal(t, "desc", r.URL.Query().Get("direction"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"id": 1, "name": "engine", "description": "an analytical engine emulator",
				"fork": false, "language": "Go", "stargazers_count": 64,
				"forks_count": 12, "watchers_count": 64, "topics": ["emulator", "go"],
				"license": {"key": "mit", "spdx_id": "MIT"},
				"homepage": "https://engine.dev", "pushed_at": "2024-06-10T08:00:00Z"
			},
			{
				"id": 2, "name": "notes", "fork": false, "language": "Python",
				"stargazers_count": 12, "watchers_count": 12,
				"pushed_at": "2024-05-01T08:00:00Z"
			},
			{
				"id": 3, "name": "forked-tool", "fork": true, "language": "C",
				"stargazers_count": 500, "pushed_at": "2024-01-01T08:00:00Z"
			}
		]`))
	})

	mux.HandleFunc("/users/ada/events/public", func(w http.ResponseWriter, r *http.Request) {
		if eventsStatus != http.StatusOK {
			w.WriteHeader(eventsStatus)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"type": "PushEvent", "created_at": "2024-06-10T09:00:00Z"},
			{"type": "PullRequestEvent", "created_at": "2024-06-09T09:00:00Z"},
			{"type": "WatchEvent", "created_at": "2024-06-08T09:00:00Z"}
		]`))
	})

	mux.HandleFunc("/repos/ada/engine/languages", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Go": 8000, "Assembly": 2000}`))
	})
	mux.HandleFunc("/repos/ada/engine/readme", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name": "README.md", "size": 2400}`))
	})

	// notes has languages but no README.
	mux.HandleFunc("/repos/ada/notes/languages", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Python": 3000}`))
	})
	mux.HandleFunc("/repos/ada/notes/readme", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	})

	return mux
}

func TestFetchProfile(t *testing.T) {
	adapter := newTestAdapter(t, Config{EnrichLimit: 2, Concurrency: 2}, fakeGitHub(t, http.StatusOK))

	ds, err := adapter.FetchProfile(context.Background(), "ada")
	require.NoError(t, err)

	assert.Equal(t, "ada", ds.Account.Login)
	assert.Equal(t, "Ada Lovelace", ds.Account.Name)
	assert.Equal(t, 120, ds.Account.Followers)

	require.Len(t, ds.Repos, 3)
	engine := ds.Repos[0]
	assert.Equal(t, int64(1), engine.ID)
	assert.Equal(t, "MIT", engine.License)
	assert.Equal(t, []string{"emulator", "go"}, engine.Topics)
	assert.Equal(t, map[string]int64{"Go": 8000, "Assembly": 2000}, engine.Languages)
	assert.True(t, engine.HasReadme)
	assert.Equal(t, 2400, engine.ReadmeSize)

	// notes: languages collected, README lookup failed, defaults kept.
	notes := ds.Repos[1]
	assert.Equal(t, map[string]int64{"Python": 3000}, notes.Languages)
	assert.False(t, notes.HasReadme)
	assert.Zero(t, notes.ReadmeSize)

	// forked-tool is beyond the enrich limit: no byte data at all.
	assert.Nil(t, ds.Repos[2].Languages)

	require.Len(t, ds.Events, 3)
	assert.Equal(t, types.EventPush, ds.Events[0].Kind)
	assert.Equal(t, types.EventPullRequest, ds.Events[1].Kind)
	assert.Equal(t, types.EventOther, ds.Events[2].Kind)
}

func TestFetchProfileEventsFailureDegrades(t *testing.T) {
	adapter := newTestAdapter(t, Config{EnrichLimit: 0, Concurrency: 1}, fakeGitHub(t, http.StatusInternalServerError))

	ds, err := adapter.FetchProfile(context.Background(), "ada")
	require.NoError(t, err, "event failures must not abort collection")

	assert.NotNil(t, ds.Events)
	assert.Empty(t, ds.Events)
	assert.Len(t, ds.Repos, 3)
}

func TestFetchProfileUserNotFound(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message": "Not Found"}`, http.StatusNotFound)
	})
	adapter := newTestAdapter(t, DefaultConfig(), mux)

	_, err := adapter.FetchProfile(context.Background(), "ghost")
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.CategoryNotFound, appErr.Category)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
}
