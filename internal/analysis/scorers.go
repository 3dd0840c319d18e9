package analysis

import (
	"math"
	"strings"
	"time"

	"github.com/gitfolio/gitfolio/internal/types"
)

// Each scorer maps part of the dataset to an integer in [0,100]. Sub-factors
// are clamped to their individual caps so no single signal can dominate, and
// rounding happens once per category, after summation.

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func roundScore(v float64) int {
	return int(math.Round(clamp(v, 0, 100)))
}

func ownRepos(repos []types.Repo) []types.Repo {
	own := make([]types.Repo, 0, len(repos))
	for _, r := range repos {
		if !r.Fork {
			own = append(own, r)
		}
	}
	return own
}

func fraction(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total)
}

// scoreRepoQuality rewards stars and forks on original work plus the share
// of repos carrying a real description and topics.
func scoreRepoQuality(repos []types.Repo) int {
	if len(repos) == 0 {
		return 0
	}
	own := ownRepos(repos)
	if len(own) == 0 {
		return 5
	}

	var totalStars, totalForks, withDescription, withTopics int
	for _, r := range own {
		totalStars += r.Stars
		totalForks += r.Forks
		if len(r.Description) > 10 {
			withDescription++
		}
		if len(r.Topics) > 0 {
			withTopics++
		}
	}

	score := clamp(math.Log2(float64(totalStars+1))*6, 0, 30)
	score += clamp(math.Log2(float64(totalForks+1))*5, 0, 20)
	score += clamp(fraction(withDescription, len(own))*25, 0, 25)
	score += clamp(fraction(withTopics, len(own))*25, 0, 25)

	return roundScore(score)
}

// scoreCodeDiversity counts distinct languages and measures how evenly the
// recorded bytes are spread across them (normalized Shannon entropy).
func scoreCodeDiversity(repos []types.Repo) int {
	langSet := make(map[string]bool)
	langBytes := make(map[string]int64)

	for _, r := range repos {
		if r.Language != "" {
			langSet[r.Language] = true
		}
		for lang, bytes := range r.Languages {
			langSet[lang] = true
			langBytes[lang] += bytes
		}
	}

	if len(langSet) == 0 {
		return 0
	}

	score := clamp(float64(min(len(langSet), 10))*6, 0, 60)

	var totalBytes int64
	for _, b := range langBytes {
		totalBytes += b
	}
	if totalBytes > 0 {
		entropy := 0.0
		for _, b := range langBytes {
			p := float64(b) / float64(totalBytes)
			if p > 0 {
				entropy -= p * math.Log2(p)
			}
		}
		maxEntropy := math.Log2(float64(len(langBytes)))
		balance := 0.0
		if maxEntropy > 0 {
			balance = entropy / maxEntropy
		}
		score += clamp(balance*40, 0, 40)
	}

	return roundScore(score)
}

// scoreDocumentation measures README presence and depth, descriptions, and
// licenses across original repos.
func scoreDocumentation(repos []types.Repo) int {
	own := ownRepos(repos)
	if len(own) == 0 {
		return 0
	}

	var withReadme, richReadme, withDescription, withLicense int
	for _, r := range own {
		if r.HasReadme {
			withReadme++
		}
		if r.ReadmeSize > 500 {
			richReadme++
		}
		if len(r.Description) > 10 {
			withDescription++
		}
		if r.License != "" {
			withLicense++
		}
	}

	score := clamp(fraction(withReadme, len(own))*35, 0, 35)
	score += clamp(fraction(richReadme, len(own))*25, 0, 25)
	score += clamp(fraction(withDescription, len(own))*20, 0, 20)
	score += clamp(fraction(withLicense, len(own))*20, 0, 20)

	return roundScore(score)
}

// scoreCommitActivity measures recency of pushes relative to now: push
// events in the last 90 days, the share of repos pushed recently, and a
// bonus for any activity within 30 days.
func scoreCommitActivity(repos []types.Repo, events []types.Event, now time.Time) int {
	ninetyDaysAgo := now.Add(-90 * 24 * time.Hour)
	thirtyDaysAgo := now.Add(-30 * 24 * time.Hour)

	var recentPushes int
	var veryRecent bool
	for _, e := range events {
		if e.Kind == types.EventPush && e.CreatedAt.After(ninetyDaysAgo) {
			recentPushes++
		}
		if e.CreatedAt.After(thirtyDaysAgo) {
			veryRecent = true
		}
	}

	var recentRepos int
	for _, r := range repos {
		if r.PushedAt.After(ninetyDaysAgo) {
			recentRepos++
		}
	}

	score := clamp(float64(min(recentPushes, 50))*1.2, 0, 50)
	score += clamp(float64(recentRepos)/float64(max(len(repos), 1))*30, 0, 30)
	if veryRecent {
		score += 20
	}

	return roundScore(score)
}

// scoreCommunityEngagement rewards PR and issue participation plus the
// forks and watchers a profile has attracted.
func scoreCommunityEngagement(events []types.Event, repos []types.Repo) int {
	var prEvents, issueEvents int
	for _, e := range events {
		switch e.Kind {
		case types.EventPullRequest:
			prEvents++
		case types.EventIssues, types.EventIssueComment:
			issueEvents++
		}
	}

	var forksReceived, watchersTotal int
	for _, r := range repos {
		if !r.Fork {
			forksReceived += r.Forks
		}
		watchersTotal += r.Watchers
	}

	score := clamp(float64(prEvents)*4, 0, 30)
	score += clamp(float64(issueEvents)*3, 0, 25)
	score += clamp(math.Log2(float64(forksReceived+1))*5, 0, 25)
	score += clamp(math.Log2(float64(watchersTotal+1))*4, 0, 20)

	return roundScore(score)
}

// scoreProfileCompleteness checks the account fields recruiters look at
// first, plus a small follower bonus.
func scoreProfileCompleteness(account types.Account) int {
	score := 0.0
	if account.Name != "" {
		score += 15
	}
	if len(account.Bio) > 5 {
		score += 20
	}
	if account.AvatarURL != "" && !strings.Contains(account.AvatarURL, "gravatar") {
		score += 10
	}
	if account.Blog != "" {
		score += 15
	}
	if account.Company != "" {
		score += 10
	}
	if account.Location != "" {
		score += 10
	}
	if account.Email != "" {
		score += 5
	}
	if account.TwitterUsername != "" {
		score += 5
	}
	score += clamp(math.Log2(float64(account.Followers+1))*3, 0, 10)

	return roundScore(score)
}

// scoreRepoCompleteness rewards a portfolio of original repos with
// homepages over a wall of forks.
func scoreRepoCompleteness(repos []types.Repo) int {
	if len(repos) == 0 {
		return 0
	}
	own := ownRepos(repos)

	var withHomepage int
	for _, r := range own {
		if r.Homepage != "" {
			withHomepage++
		}
	}

	score := clamp(fraction(len(own), len(repos))*50, 0, 50)
	score += clamp(float64(min(len(own), 10))*3, 0, 30)
	score += clamp(float64(withHomepage)/float64(max(len(own), 1))*20, 0, 20)

	return roundScore(score)
}
