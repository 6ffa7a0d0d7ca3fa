package model

// Stats aggregates profile, repository and contribution data into the
// numbers shown on the portfolio. It is recomputed fully on each fetch.
type Stats struct {
	TotalContributions int   `json:"totalContributions"`
	TotalRepos         int   `json:"totalRepos"`
	TotalStars         int   `json:"totalStars"`
	TotalForks         int   `json:"totalForks"`
	CurrentStreak      int   `json:"currentStreak"`
	LongestStreak      int   `json:"longestStreak"`
	ContributionYears  []int `json:"contributionYears"`
}
