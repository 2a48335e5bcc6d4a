package storage

import (
	_ "embed"
	"fmt"

	"farmquest_backend/internal/model"

	"github.com/goccy/go-json"
)

//go:embed seed.json
var seedJSON []byte

type seedData struct {
	Users        []model.User             `json:"users"`
	Lessons      []model.Lesson           `json:"lessons"`
	Challenges   []model.Challenge        `json:"challenges"`
	Rewards      []model.Reward           `json:"rewards"`
	MarketPrices []model.MarketPrice      `json:"marketPrices"`
	Alerts       []model.Alert            `json:"alerts"`
	Leaderboard  []model.LeaderboardEntry `json:"leaderboard"`
}

func loadSeed() (*seedData, error) {
	var data seedData
	if err := json.Unmarshal(seedJSON, &data); err != nil {
		return nil, fmt.Errorf("failed to decode seed dataset: %w", err)
	}
	return &data, nil
}
