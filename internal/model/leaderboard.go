package model

type LeaderboardEntry struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	Points        int    `json:"points"`
	Level         string `json:"level"`
	Rank          int    `json:"rank"`
	IsCurrentUser bool   `json:"isCurrentUser"`
}
