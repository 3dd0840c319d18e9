package adapters

import (
	"context"
	"errors"
	"net/http"
	"time"

	gh "github.com/google/go-github/v57/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	apperrors "github.com/gitfolio/gitfolio/internal/errors"
	"github.com/gitfolio/gitfolio/internal/types"
)

// Config controls how much of a profile the collector materializes.
type Config struct {
	// Token is an optional personal access token; unauthenticated requests
	// work but hit GitHub's 60/hour quota quickly.
	Token string
	// EnrichLimit bounds how many repos get per-repo language and README
	// lookups; zero disables enrichment. Repos are listed most recently
	// pushed first, so the limit keeps the freshest work enriched while
	// capping API cost. Repos beyond the limit keep nil Languages and
	// HasReadme=false, which degrades the documentation score rather than
	// failing the analysis.
	EnrichLimit int
	// Concurrency bounds the per-repo enrichment fan-out.
	Concurrency int
	// RequestsPerSecond throttles outgoing API calls. Zero disables the
	// client-side limiter.
	RequestsPerSecond float64
}

// DefaultConfig mirrors the limits the public GitHub API tolerates for an
// anonymous analysis run.
func DefaultConfig() Config {
	return Config{
		EnrichLimit: 15,
		Concurrency: 5,
	}
}

const perPage = 100

// GitHubAdapter collects a ProfileDataset from the GitHub REST API.
type GitHubAdapter struct {
	client  *gh.Client
	limiter *rate.Limiter
	logger  *logrus.Logger
	cfg     Config
}

// NewGitHubAdapter creates a collector. The token may be empty.
func NewGitHubAdapter(cfg Config, logger *logrus.Logger) *GitHubAdapter {
	var httpClient *http.Client
	if cfg.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), int(cfg.RequestsPerSecond)+1)
	}

	return &GitHubAdapter{
		client:  gh.NewClient(httpClient),
		limiter: limiter,
		logger:  logger,
		cfg:     cfg,
	}
}

// FetchProfile assembles the full dataset for a username. Profile and repo
// list failures are fatal; event and per-repo enrichment failures degrade
// to empty data so partial availability still yields an analysis.
func (g *GitHubAdapter) FetchProfile(ctx context.Context, username string) (*types.ProfileDataset, error) {
	var (
		account types.Account
		repos   []types.Repo
		events  []types.Event
	)

	eg, gctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		user, err := g.fetchUser(gctx, username)
		if err != nil {
			return err
		}
		account = user
		return nil
	})

	eg.Go(func() error {
		list, err := g.fetchRepos(gctx, username)
		if err != nil {
			return err
		}
		repos = list
		return nil
	})

	eg.Go(func() error {
		list, err := g.fetchEvents(gctx, username)
		if err != nil {
			g.logger.WithError(err).WithField("username", username).
				Warn("failed to fetch events, scoring without activity data")
			list = nil
		}
		events = list
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	g.enrichRepos(ctx, username, repos)

	if events == nil {
		events = []types.Event{}
	}
	return &types.ProfileDataset{
		Account: account,
		Repos:   repos,
		Events:  events,
	}, nil
}

// enrichRepos fetches language breakdowns and README info for the first
// EnrichLimit repos with a bounded worker pool. Per-repo failures are
// isolated: the repo keeps its defaults and the batch continues.
func (g *GitHubAdapter) enrichRepos(ctx context.Context, username string, repos []types.Repo) {
	limit := g.cfg.EnrichLimit
	if limit <= 0 {
		return
	}
	if limit > len(repos) {
		limit = len(repos)
	}

	eg := &errgroup.Group{}
	concurrency := g.cfg.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	eg.SetLimit(concurrency)

	for i := 0; i < limit; i++ {
		i := i
		eg.Go(func() error {
			repo := &repos[i]

			if err := g.wait(ctx); err == nil {
				langs, _, err := g.client.Repositories.ListLanguages(ctx, username, repo.Name)
				if err != nil {
					g.logger.WithError(err).WithField("repo", repo.Name).
						Debug("language lookup failed")
				} else {
					converted := make(map[string]int64, len(langs))
					for lang, bytes := range langs {
						converted[lang] = int64(bytes)
					}
					repo.Languages = converted
				}
			}

			if err := g.wait(ctx); err == nil {
				readme, _, err := g.client.Repositories.GetReadme(ctx, username, repo.Name, nil)
				if err != nil {
					g.logger.WithError(err).WithField("repo", repo.Name).
						Debug("readme lookup failed")
				} else {
					repo.HasReadme = true
					repo.ReadmeSize = readme.GetSize()
				}
			}

			return nil
		})
	}

	_ = eg.Wait()
}

func (g *GitHubAdapter) fetchUser(ctx context.Context, username string) (types.Account, error) {
	if err := g.wait(ctx); err != nil {
		return types.Account{}, err
	}
	user, _, err := g.client.Users.Get(ctx, username)
	if err != nil {
		return types.Account{}, g.mapError(err, "failed to fetch user profile")
	}

	return types.Account{
		Login:           user.GetLogin(),
		Name:            user.GetName(),
		Bio:             user.GetBio(),
		AvatarURL:       user.GetAvatarURL(),
		Blog:            user.GetBlog(),
		Company:         user.GetCompany(),
		Location:        user.GetLocation(),
		Email:           user.GetEmail(),
		TwitterUsername: user.GetTwitterUsername(),
		Followers:       user.GetFollowers(),
		Following:       user.GetFollowing(),
		PublicRepos:     user.GetPublicRepos(),
	}, nil
}

func (g *GitHubAdapter) fetchRepos(ctx context.Context, username string) ([]types.Repo, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	// Most recently pushed first, so the enrichment window covers current
	// work. A single page of 100 matches the upstream listing contract.
	opts := &gh.RepositoryListOptions{
		Sort:        "pushed",
		Direction:   "desc",
		ListOptions: gh.ListOptions{PerPage: perPage},
	}
	list, _, err := g.client.Repositories.List(ctx, username, opts)
	if err != nil {
		return nil, g.mapError(err, "failed to fetch repositories")
	}

	repos := make([]types.Repo, 0, len(list))
	for _, r := range list {
		repos = append(repos, types.Repo{
			ID:          r.GetID(),
			Name:        r.GetName(),
			Description: r.GetDescription(),
			Fork:        r.GetFork(),
			Language:    r.GetLanguage(),
			Stars:       r.GetStargazersCount(),
			Forks:       r.GetForksCount(),
			Watchers:    r.GetWatchersCount(),
			Topics:      r.Topics,
			License:     r.GetLicense().GetSPDXID(),
			Homepage:    r.GetHomepage(),
			PushedAt:    r.GetPushedAt().Time,
		})
	}
	return repos, nil
}

func (g *GitHubAdapter) fetchEvents(ctx context.Context, username string) ([]types.Event, error) {
	if err := g.wait(ctx); err != nil {
		return nil, err
	}
	opts := &gh.ListOptions{PerPage: perPage}
	list, _, err := g.client.Activity.ListEventsPerformedByUser(ctx, username, true, opts)
	if err != nil {
		return nil, g.mapError(err, "failed to fetch events")
	}

	events := make([]types.Event, 0, len(list))
	for _, e := range list {
		events = append(events, types.Event{
			Kind:      eventKind(e.GetType()),
			CreatedAt: e.GetCreatedAt().Time,
		})
	}
	return events, nil
}

func eventKind(apiType string) types.EventKind {
	switch apiType {
	case "PushEvent":
		return types.EventPush
	case "PullRequestEvent":
		return types.EventPullRequest
	case "IssuesEvent":
		return types.EventIssues
	case "IssueCommentEvent":
		return types.EventIssueComment
	default:
		return types.EventOther
	}
}

func (g *GitHubAdapter) wait(ctx context.Context) error {
	if g.limiter == nil {
		return nil
	}
	return g.limiter.Wait(ctx)
}

// mapError translates go-github errors into the service error taxonomy.
func (g *GitHubAdapter) mapError(err error, msg string) error {
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return apperrors.NewRateLimitError("GitHub API rate limit exceeded, resets at "+rateErr.Rate.Reset.Format(time.RFC3339), err)
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return apperrors.NewRateLimitError("GitHub API secondary rate limit hit", err)
	}
	var respErr *gh.ErrorResponse
	if errors.As(err, &respErr) && respErr.Response != nil && respErr.Response.StatusCode == http.StatusNotFound {
		return apperrors.NewNotFoundError("GitHub user not found")
	}
	return apperrors.NewExternalAPIError(msg, err)
}
