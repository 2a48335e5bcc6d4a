package service

import (
	"context"
	"fmt"
	"testing"

	"farmquest_backend/internal/model"
	"farmquest_backend/internal/service/mocks"
	"farmquest_backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDashboardService_GetDashboard_Caps(t *testing.T) {
	userID := "user-1"

	challenges := make([]model.Challenge, 6)
	for i := range challenges {
		challenges[i] = model.Challenge{ID: fmt.Sprintf("challenge-%d", i+1), UserID: &userID}
	}
	lessons := make([]model.Lesson, 5)
	for i := range lessons {
		lessons[i] = model.Lesson{ID: fmt.Sprintf("lesson-%d", i+1)}
	}
	prices := make([]model.MarketPrice, 7)
	for i := range prices {
		prices[i] = model.MarketPrice{ID: fmt.Sprintf("price-%d", i+1)}
	}
	leaderboard := make([]model.LeaderboardEntry, 10)
	for i := range leaderboard {
		leaderboard[i] = model.LeaderboardEntry{ID: fmt.Sprintf("leader-%d", i+1), Rank: i + 1}
	}
	alerts := make([]model.Alert, 9)
	for i := range alerts {
		alerts[i] = model.Alert{ID: fmt.Sprintf("alert-%d", i+1)}
	}
	rewards := make([]model.Reward, 8)
	for i := range rewards {
		rewards[i] = model.Reward{ID: fmt.Sprintf("reward-%d", i+1)}
	}

	mockRepo := &mocks.MockDashboardRepository{}
	mockRepo.On("GetUser", mock.Anything, userID).
		Return(&model.User{ID: userID, Name: "Rajesh Kumar", Points: 850}, nil)
	mockRepo.On("GetChallenges", mock.Anything, &userID).Return(challenges, nil)
	mockRepo.On("GetLessons", mock.Anything).Return(lessons, nil)
	mockRepo.On("GetMarketPrices", mock.Anything).Return(prices, nil)
	mockRepo.On("GetLeaderboard", mock.Anything).Return(leaderboard, nil)
	mockRepo.On("GetAlerts", mock.Anything).Return(alerts, nil)
	mockRepo.On("GetRewards", mock.Anything).Return(rewards, nil)

	service := NewDashboardService(mockRepo)
	dashboard, err := service.GetDashboard(context.Background(), userID)

	assert.NoError(t, err)
	assert.NotNil(t, dashboard)
	assert.Equal(t, userID, dashboard.User.ID)
	assert.Len(t, dashboard.Challenges, 3)
	assert.Len(t, dashboard.Lessons, 3)
	assert.Len(t, dashboard.MarketPrices, 3)
	assert.Len(t, dashboard.Leaderboard, 4)
	assert.Len(t, dashboard.Alerts, 4)
	assert.Len(t, dashboard.Rewards, 3)

	mockRepo.AssertExpectations(t)
}

func TestDashboardService_GetDashboard_LeaderboardSorted(t *testing.T) {
	userID := "user-1"

	mockRepo := &mocks.MockDashboardRepository{}
	mockRepo.On("GetUser", mock.Anything, userID).
		Return(&model.User{ID: userID}, nil)
	mockRepo.On("GetChallenges", mock.Anything, &userID).Return([]model.Challenge{}, nil)
	mockRepo.On("GetLessons", mock.Anything).Return([]model.Lesson{}, nil)
	mockRepo.On("GetMarketPrices", mock.Anything).Return([]model.MarketPrice{}, nil)
	mockRepo.On("GetLeaderboard", mock.Anything).Return([]model.LeaderboardEntry{
		{ID: "leader-3", Rank: 3},
		{ID: "leader-1", Rank: 1},
		{ID: "leader-4", Rank: 4},
		{ID: "leader-2", Rank: 2},
	}, nil)
	mockRepo.On("GetAlerts", mock.Anything).Return([]model.Alert{}, nil)
	mockRepo.On("GetRewards", mock.Anything).Return([]model.Reward{}, nil)

	service := NewDashboardService(mockRepo)
	dashboard, err := service.GetDashboard(context.Background(), userID)

	assert.NoError(t, err)
	for i, entry := range dashboard.Leaderboard {
		assert.Equal(t, i+1, entry.Rank)
	}
}

func TestDashboardService_GetDashboard_MissingUser(t *testing.T) {
	mockRepo := &mocks.MockDashboardRepository{}
	mockRepo.On("GetUser", mock.Anything, "ghost").
		Return(nil, storage.ErrNotFound)

	service := NewDashboardService(mockRepo)
	dashboard, err := service.GetDashboard(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Nil(t, dashboard)

	// Missing user fails the whole aggregate; no section is fetched.
	mockRepo.AssertNotCalled(t, "GetChallenges", mock.Anything, mock.Anything)
	mockRepo.AssertNotCalled(t, "GetLessons", mock.Anything)
}
