package analysis

import (
	"math"
	"sort"
	"time"

	"github.com/gitfolio/gitfolio/internal/types"
)

// Analyzer turns a ProfileDataset into a Result. It performs no I/O and
// never mutates its input, so a single Analyzer is safe for concurrent use.
// Now is injectable so tests can pin the evaluation instant; commit activity
// is the only clock-dependent category.
type Analyzer struct {
	Now func() time.Time
}

// NewAnalyzer returns an Analyzer using the wall clock.
func NewAnalyzer() *Analyzer {
	return &Analyzer{Now: time.Now}
}

// Analyze scores the dataset across the seven categories, aggregates the
// weighted overall score, and derives strengths, red flags, and
// recommendations. It is total: empty repository and event lists are valid
// inputs, not errors.
func (a *Analyzer) Analyze(ds types.ProfileDataset) Result {
	now := a.Now()

	scores := map[CategoryKey]int{
		CategoryRepoQuality:         scoreRepoQuality(ds.Repos),
		CategoryCodeDiversity:       scoreCodeDiversity(ds.Repos),
		CategoryDocumentation:       scoreDocumentation(ds.Repos),
		CategoryCommitActivity:      scoreCommitActivity(ds.Repos, ds.Events, now),
		CategoryCommunityEngagement: scoreCommunityEngagement(ds.Events, ds.Repos),
		CategoryProfileCompleteness: scoreProfileCompleteness(ds.Account),
		CategoryRepoCompleteness:    scoreRepoCompleteness(ds.Repos),
	}

	weighted := 0.0
	categories := make([]CategoryScore, 0, len(categoryOrder))
	for _, key := range categoryOrder {
		raw := scores[key]
		weighted += float64(raw) * categoryWeights[key]
		categories = append(categories, CategoryScore{
			Key:    key,
			Label:  categoryLabels[key],
			Score:  raw,
			Weight: categoryWeights[key],
			Grade:  GradeFor(raw),
		})
	}
	overall := roundScore(weighted)

	facts := gatherFacts(scores, ds)

	return Result{
		OverallScore:         overall,
		Grade:                GradeFor(overall),
		Categories:           categories,
		Strengths:            detectStrengths(facts),
		RedFlags:             detectRedFlags(facts),
		Recommendations:      generateRecommendations(facts),
		TopRepositories:      topRepositories(ds.Repos),
		LanguageDistribution: languageDistribution(ds.Repos),
		RepoCount:            len(ds.Repos),
		OwnRepoCount:         len(facts.own),
	}
}

const maxTopRepositories = 6

// topRepositories returns the non-fork repos with the most stars, at most
// six, ties broken by input order.
func topRepositories(repos []types.Repo) []types.Repo {
	own := ownRepos(repos)
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].Stars > own[j].Stars
	})
	if len(own) > maxTopRepositories {
		own = own[:maxTopRepositories]
	}
	return own
}

const maxLanguageEntries = 10

// languageDistribution aggregates language bytes across all repos. A repo
// without a byte breakdown contributes its primary language as a single
// byte so sparsely enriched profiles still show up in the chart.
func languageDistribution(repos []types.Repo) []LanguageStat {
	langBytes := make(map[string]int64)
	for _, r := range repos {
		if len(r.Languages) > 0 {
			for lang, bytes := range r.Languages {
				langBytes[lang] += bytes
			}
		} else if r.Language != "" {
			langBytes[r.Language]++
		}
	}

	var totalBytes int64
	for _, b := range langBytes {
		totalBytes += b
	}

	stats := make([]LanguageStat, 0, len(langBytes))
	for name, bytes := range langBytes {
		pct := 0.0
		if totalBytes > 0 {
			pct = math.Round(float64(bytes)/float64(totalBytes)*1000) / 10
		}
		stats = append(stats, LanguageStat{Name: name, Bytes: bytes, Percentage: pct})
	}

	// Name is the tie-breaker: map iteration order must not leak into the
	// result, Analyze is deterministic.
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Bytes != stats[j].Bytes {
			return stats[i].Bytes > stats[j].Bytes
		}
		return stats[i].Name < stats[j].Name
	})
	if len(stats) > maxLanguageEntries {
		stats = stats[:maxLanguageEntries]
	}
	return stats
}
