package analysis

import "github.com/gitfolio/gitfolio/internal/types"

// CategoryKey identifies one of the seven scoring categories.
type CategoryKey string

const (
	CategoryRepoQuality         CategoryKey = "repoQuality"
	CategoryCodeDiversity       CategoryKey = "codeDiversity"
	CategoryDocumentation       CategoryKey = "documentation"
	CategoryCommitActivity      CategoryKey = "commitActivity"
	CategoryCommunityEngagement CategoryKey = "communityEngagement"
	CategoryProfileCompleteness CategoryKey = "profileCompleteness"
	CategoryRepoCompleteness    CategoryKey = "repoCompleteness"
)

// categoryOrder fixes the order of categories in every Result.
var categoryOrder = []CategoryKey{
	CategoryRepoQuality,
	CategoryCodeDiversity,
	CategoryDocumentation,
	CategoryCommitActivity,
	CategoryCommunityEngagement,
	CategoryProfileCompleteness,
	CategoryRepoCompleteness,
}

var categoryLabels = map[CategoryKey]string{
	CategoryRepoQuality:         "Repository Quality",
	CategoryCodeDiversity:       "Code Diversity",
	CategoryDocumentation:       "Documentation",
	CategoryCommitActivity:      "Commit Activity",
	CategoryCommunityEngagement: "Community Engagement",
	CategoryProfileCompleteness: "Profile Completeness",
	CategoryRepoCompleteness:    "Repo Completeness",
}

// categoryWeights must sum to exactly 1.00.
var categoryWeights = map[CategoryKey]float64{
	CategoryRepoQuality:         0.25,
	CategoryCodeDiversity:       0.15,
	CategoryDocumentation:       0.20,
	CategoryCommitActivity:      0.15,
	CategoryCommunityEngagement: 0.10,
	CategoryProfileCompleteness: 0.10,
	CategoryRepoCompleteness:    0.05,
}

// Grade is a letter grade with its presentation color token.
type Grade struct {
	Letter string `json:"letter"`
	Color  string `json:"color"`
}

// CategoryScore is one weighted sub-score of the overall result.
type CategoryScore struct {
	Key    CategoryKey `json:"key"`
	Label  string      `json:"label"`
	Score  int         `json:"score"`
	Weight float64     `json:"weight"`
	Grade  Grade       `json:"grade"`
}

// Priority ranks a recommendation.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Recommendation is a single actionable suggestion.
type Recommendation struct {
	Priority Priority `json:"priority"`
	Text     string   `json:"text"`
}

// LanguageStat is one entry of the aggregated language distribution.
// Percentage is informational; the truncated list need not sum to 100.
type LanguageStat struct {
	Name       string  `json:"name"`
	Bytes      int64   `json:"bytes"`
	Percentage float64 `json:"percentage"`
}

// Result is the full assessment produced by Analyze.
type Result struct {
	OverallScore         int              `json:"overall_score"`
	Grade                Grade            `json:"grade"`
	Categories           []CategoryScore  `json:"categories"`
	Strengths            []string         `json:"strengths"`
	RedFlags             []string         `json:"red_flags"`
	Recommendations      []Recommendation `json:"recommendations"`
	TopRepositories      []types.Repo     `json:"top_repositories"`
	LanguageDistribution []LanguageStat   `json:"language_distribution"`
	RepoCount            int              `json:"repo_count"`
	OwnRepoCount         int              `json:"own_repo_count"`
}
