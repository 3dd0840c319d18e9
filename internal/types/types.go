package types

import "time"

// Account holds the public profile fields of a GitHub account.
type Account struct {
	Login           string `json:"login"`
	Name            string `json:"name,omitempty"`
	Bio             string `json:"bio,omitempty"`
	AvatarURL       string `json:"avatar_url"`
	Blog            string `json:"blog,omitempty"`
	Company         string `json:"company,omitempty"`
	Location        string `json:"location,omitempty"`
	Email           string `json:"email,omitempty"`
	TwitterUsername string `json:"twitter_username,omitempty"`
	Followers       int    `json:"followers"`
	Following       int    `json:"following"`
	PublicRepos     int    `json:"public_repos"`
}

// Repo is a single repository enriched with language and README data.
// Languages is nil when the byte breakdown was not collected; HasReadme
// and ReadmeSize default to false/0 when the README lookup failed.
type Repo struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Fork        bool             `json:"fork"`
	Language    string           `json:"language,omitempty"`
	Languages   map[string]int64 `json:"languages,omitempty"`
	Stars       int              `json:"stargazers_count"`
	Forks       int              `json:"forks_count"`
	Watchers    int              `json:"watchers_count"`
	Topics      []string         `json:"topics,omitempty"`
	License     string           `json:"license,omitempty"`
	Homepage    string           `json:"homepage,omitempty"`
	HasReadme   bool             `json:"has_readme"`
	ReadmeSize  int              `json:"readme_size"`
	PushedAt    time.Time        `json:"pushed_at"`
}

// EventKind classifies a public activity event.
type EventKind string

const (
	EventPush         EventKind = "PushEvent"
	EventPullRequest  EventKind = "PullRequestEvent"
	EventIssues       EventKind = "IssuesEvent"
	EventIssueComment EventKind = "IssueCommentEvent"
	EventOther        EventKind = "Other"
)

// Event is a single public activity event.
type Event struct {
	Kind      EventKind `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileDataset is the fully materialized snapshot of a profile that the
// analysis engine consumes. The engine treats it as read-only.
type ProfileDataset struct {
	Account Account `json:"account"`
	Repos   []Repo  `json:"repos"`
	Events  []Event `json:"events"`
}
