package model

// Defaults applied to users created after seeding.
const (
	DefaultUserLevel = "Bronze Farmer"
	DefaultUserRank  = 1
)

type User struct {
	ID               string `json:"id"`
	Username         string `json:"username"`
	Name             string `json:"name"`
	Location         string `json:"location"`
	Points           int    `json:"points"`
	Level            string `json:"level"`
	Rank             int    `json:"rank"`
	ActiveChallenges int    `json:"activeChallenges"`
}
