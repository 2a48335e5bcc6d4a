package service

import (
	"context"
	"errors"
	"fmt"

	"farmquest_backend/internal/model"
	"farmquest_backend/internal/storage"
)

// Preview caps for each dashboard section.
const (
	dashboardChallenges  = 3
	dashboardLessons     = 3
	dashboardPrices      = 3
	dashboardLeaderboard = 4
	dashboardAlerts      = 4
	dashboardRewards     = 3
)

type DashboardService struct {
	repo DashboardRepository
}

func NewDashboardService(repo DashboardRepository) *DashboardService {
	return &DashboardService{
		repo: repo,
	}
}

// GetDashboard composes the capped overview for one user. Every section is
// user-contextual, so a missing user fails the whole aggregate rather than
// producing a partial one.
func (s *DashboardService) GetDashboard(ctx context.Context, userID string) (*model.Dashboard, error) {
	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	challenges, err := s.repo.GetChallenges(ctx, &userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get challenges: %w", err)
	}

	lessons, err := s.repo.GetLessons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get lessons: %w", err)
	}

	prices, err := s.repo.GetMarketPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get market prices: %w", err)
	}

	leaderboard, err := s.repo.GetLeaderboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	sortLeaderboard(leaderboard)

	alerts, err := s.repo.GetAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get alerts: %w", err)
	}

	rewards, err := s.repo.GetRewards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get rewards: %w", err)
	}

	return &model.Dashboard{
		User:         user,
		Challenges:   preview(challenges, dashboardChallenges),
		Lessons:      preview(lessons, dashboardLessons),
		MarketPrices: preview(prices, dashboardPrices),
		Leaderboard:  preview(leaderboard, dashboardLeaderboard),
		Alerts:       preview(alerts, dashboardAlerts),
		Rewards:      preview(rewards, dashboardRewards),
	}, nil
}

func preview[T any](in []T, n int) []T {
	if len(in) > n {
		return in[:n]
	}
	return in
}
