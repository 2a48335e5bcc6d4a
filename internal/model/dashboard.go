package model

// Dashboard is the capped overview snapshot served on the home screen.
// Each slice is a fixed-size preview of its collection, never the full set.
type Dashboard struct {
	User         *User              `json:"user"`
	Challenges   []Challenge        `json:"challenges"`
	Lessons      []Lesson           `json:"lessons"`
	MarketPrices []MarketPrice      `json:"marketPrices"`
	Leaderboard  []LeaderboardEntry `json:"leaderboard"`
	Alerts       []Alert            `json:"alerts"`
	Rewards      []Reward           `json:"rewards"`
}
