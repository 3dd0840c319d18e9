package analysis

import (
	"fmt"

	"github.com/gitfolio/gitfolio/internal/types"
)

// insightFacts carries the category scores plus the raw counts the insight
// rules evaluate. It is computed once per analysis.
type insightFacts struct {
	scores     map[CategoryKey]int
	account    types.Account
	repos      []types.Repo
	own        []types.Repo
	totalStars int

	// primaryLanguages counts distinct primary languages only, matching the
	// proficiency strength which ignores byte breakdowns.
	primaryLanguages int

	noReadme    int // own repos without a README
	thinReadme  int // own repos with a README under 300 bytes
	noDescRec   int // own repos with description shorter than 10 chars
	noDescFlag  int // own repos with description shorter than 5 chars
	noTopics    int
	noLicense   int
	noHomepage  int
}

func gatherFacts(scores map[CategoryKey]int, ds types.ProfileDataset) *insightFacts {
	f := &insightFacts{
		scores:  scores,
		account: ds.Account,
		repos:   ds.Repos,
		own:     ownRepos(ds.Repos),
	}

	primary := make(map[string]bool)
	for _, r := range ds.Repos {
		if r.Language != "" {
			primary[r.Language] = true
		}
	}
	f.primaryLanguages = len(primary)

	for _, r := range f.own {
		f.totalStars += r.Stars
		if !r.HasReadme {
			f.noReadme++
		}
		if r.HasReadme && r.ReadmeSize < 300 {
			f.thinReadme++
		}
		if len(r.Description) < 10 {
			f.noDescRec++
		}
		if len(r.Description) < 5 {
			f.noDescFlag++
		}
		if len(r.Topics) == 0 {
			f.noTopics++
		}
		if r.License == "" {
			f.noLicense++
		}
		if r.Homepage == "" {
			f.noHomepage++
		}
	}

	return f
}

// plural returns "s" unless the count is exactly one.
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

// The rule tables below are evaluated in order; the order of the table is
// the order of the output.

type strengthRule struct {
	applies func(*insightFacts) bool
	text    func(*insightFacts) string
}

var strengthRules = []strengthRule{
	{
		applies: func(f *insightFacts) bool { return f.scores[CategoryRepoQuality] >= 70 },
		text: func(*insightFacts) string {
			return "High-quality repositories with good descriptions and topics"
		},
	},
	{
		applies: func(f *insightFacts) bool { return f.scores[CategoryCodeDiversity] >= 70 },
		text: func(*insightFacts) string {
			return "Strong language diversity — shows versatility as a developer"
		},
	},
	{
		applies: func(f *insightFacts) bool { return f.scores[CategoryDocumentation] >= 70 },
		text: func(*insightFacts) string {
			return "Excellent documentation habits — READMEs and descriptions present"
		},
	},
	{
		applies: func(f *insightFacts) bool { return f.scores[CategoryCommitActivity] >= 70 },
		text: func(*insightFacts) string {
			return "Consistently active — regular commit history signals dedication"
		},
	},
	{
		applies: func(f *insightFacts) bool { return f.scores[CategoryCommunityEngagement] >= 60 },
		text: func(*insightFacts) string {
			return "Active community contributor — PRs, issues, and collaboration"
		},
	},
	{
		applies: func(f *insightFacts) bool { return f.scores[CategoryProfileCompleteness] >= 80 },
		text: func(*insightFacts) string {
			return "Well-crafted profile — bio, links, and professional presence"
		},
	},
	{
		applies: func(f *insightFacts) bool { return f.totalStars >= 50 },
		text: func(f *insightFacts) string {
			return fmt.Sprintf("Repos have accumulated %d stars — shows real impact", f.totalStars)
		},
	},
	{
		applies: func(f *insightFacts) bool { return len(f.own) >= 15 },
		text: func(f *insightFacts) string {
			return fmt.Sprintf("%d original repositories — strong body of work", len(f.own))
		},
	},
	{
		applies: func(f *insightFacts) bool { return f.account.Followers >= 100 },
		text: func(f *insightFacts) string {
			return fmt.Sprintf("%d followers — established reputation in the community", f.account.Followers)
		},
	},
	{
		applies: func(f *insightFacts) bool { return f.primaryLanguages >= 5 },
		text: func(f *insightFacts) string {
			return fmt.Sprintf("Proficiency across %d languages", f.primaryLanguages)
		},
	},
}

// fallbackStrength guarantees the strengths list is never empty.
const fallbackStrength = "Active GitHub presence — a great foundation to build on"

func detectStrengths(f *insightFacts) []string {
	strengths := []string{}
	for _, rule := range strengthRules {
		if rule.applies(f) {
			strengths = append(strengths, rule.text(f))
		}
	}
	if len(strengths) == 0 {
		strengths = append(strengths, fallbackStrength)
	}
	return strengths
}

type redFlagRule struct {
	applies func(*insightFacts) bool
	text    func(*insightFacts) string
}

var redFlagRules = []redFlagRule{
	{
		applies: func(f *insightFacts) bool { return f.scores[CategoryDocumentation] < 30 },
		text: func(*insightFacts) string {
			return "Most repos lack READMEs or meaningful descriptions — a major red flag for recruiters"
		},
	},
	{
		applies: func(f *insightFacts) bool { return f.scores[CategoryCommitActivity] < 20 },
		text: func(*insightFacts) string {
			return "Very low recent activity — could signal disengagement"
		},
	},
	{
		applies: func(f *insightFacts) bool {
			return len(f.repos) > 0 && fraction(len(f.own), len(f.repos)) < 0.3
		},
		text: func(*insightFacts) string {
			return "Majority of repos are forks with no original work visible"
		},
	},
	{
		applies: func(f *insightFacts) bool { return f.scores[CategoryProfileCompleteness] < 30 },
		text: func(*insightFacts) string {
			return "Incomplete profile — missing bio, links, or professional info"
		},
	},
	{
		applies: func(f *insightFacts) bool { return len(f.repos) == 0 },
		text: func(*insightFacts) string {
			return "No public repositories — portfolio appears empty"
		},
	},
	{
		applies: func(f *insightFacts) bool {
			return f.scores[CategoryCodeDiversity] < 20 && len(f.repos) > 3
		},
		text: func(*insightFacts) string {
			return "Very limited language diversity — only one language used"
		},
	},
	{
		applies: func(f *insightFacts) bool {
			return f.scores[CategoryCommunityEngagement] < 15 && len(f.repos) > 5
		},
		text: func(*insightFacts) string {
			return "No visible OSS collaboration — no PRs or issue participation"
		},
	},
	{
		applies: func(f *insightFacts) bool { return f.noDescFlag > 5 },
		text: func(f *insightFacts) string {
			return fmt.Sprintf("%d repos have no description — hard for recruiters to evaluate", f.noDescFlag)
		},
	},
}

func detectRedFlags(f *insightFacts) []string {
	flags := []string{}
	for _, rule := range redFlagRules {
		if rule.applies(f) {
			flags = append(flags, rule.text(f))
		}
	}
	return flags
}

type recommendationRule struct {
	priority Priority
	applies  func(*insightFacts) bool
	text     func(*insightFacts) string
}

var recommendationRules = []recommendationRule{
	{
		priority: PriorityHigh,
		applies:  func(f *insightFacts) bool { return f.noReadme > 0 },
		text: func(f *insightFacts) string {
			return fmt.Sprintf("Add README files to %d repo%s. Include: project purpose, setup instructions, screenshots/demo, and technologies used.", f.noReadme, plural(f.noReadme))
		},
	},
	{
		priority: PriorityMedium,
		applies:  func(f *insightFacts) bool { return f.thinReadme > 2 },
		text: func(f *insightFacts) string {
			return fmt.Sprintf("Expand %d thin READMEs. Aim for 500+ words with architecture diagrams, API docs, or usage examples.", f.thinReadme)
		},
	},
	{
		priority: PriorityHigh,
		applies:  func(f *insightFacts) bool { return f.noDescRec > 0 },
		text: func(f *insightFacts) string {
			return fmt.Sprintf("Write clear descriptions for %d repo%s. A concise one-liner helps recruiters quickly understand each project.", f.noDescRec, plural(f.noDescRec))
		},
	},
	{
		priority: PriorityMedium,
		applies:  func(f *insightFacts) bool { return f.noTopics > 3 },
		text: func(f *insightFacts) string {
			return fmt.Sprintf("Add topics/tags to %d repos. Topics improve discoverability and show domain knowledge.", f.noTopics)
		},
	},
	{
		priority: PriorityHigh,
		applies:  func(f *insightFacts) bool { return len(f.account.Bio) < 10 },
		text: func(*insightFacts) string {
			return "Write a compelling bio — mention your role, interests, and what you build. This is the first thing recruiters see."
		},
	},
	{
		priority: PriorityMedium,
		applies:  func(f *insightFacts) bool { return f.account.Blog == "" },
		text: func(*insightFacts) string {
			return "Add a website or portfolio link to your profile. It gives recruiters more context about you."
		},
	},
	{
		priority: PriorityMedium,
		applies:  func(f *insightFacts) bool { return f.scores[CategoryCommitActivity] < 40 },
		text: func(*insightFacts) string {
			return "Increase commit frequency. Even small daily contributions show consistency and discipline."
		},
	},
	{
		priority: PriorityLow,
		applies:  func(f *insightFacts) bool { return f.scores[CategoryCommunityEngagement] < 30 },
		text: func(*insightFacts) string {
			return "Start contributing to open-source projects — open issues, submit PRs, or review code. Collaboration signals are highly valued."
		},
	},
	{
		priority: PriorityLow,
		applies:  func(f *insightFacts) bool { return f.noLicense > 3 },
		text: func(f *insightFacts) string {
			return fmt.Sprintf("Add licenses to %d repos. It signals professionalism and encourages reuse.", f.noLicense)
		},
	},
	{
		priority: PriorityLow,
		applies:  func(f *insightFacts) bool { return f.noHomepage > 5 },
		text: func(*insightFacts) string {
			return "Add live demo links or project URLs where applicable. Deployed projects are far more impressive than code alone."
		},
	},
	{
		priority: PriorityLow,
		applies:  func(f *insightFacts) bool { return len(f.own) > 6 },
		text: func(*insightFacts) string {
			return "Pin your 6 best repos on your GitHub profile. Curate what recruiters see first."
		},
	},
}

func generateRecommendations(f *insightFacts) []Recommendation {
	recs := []Recommendation{}
	for _, rule := range recommendationRules {
		if rule.applies(f) {
			recs = append(recs, Recommendation{Priority: rule.priority, Text: rule.text(f)})
		}
	}
	return recs
}
