package service

import (
	"context"
	"testing"

	"farmquest_backend/internal/model"
	"farmquest_backend/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserService_GetLeaderboard_SortedByRank(t *testing.T) {
	mockRepo := &mocks.MockUserRepository{}
	mockRepo.On("GetLeaderboard", mock.Anything).Return([]model.LeaderboardEntry{
		{ID: "leader-4", Name: "Rajesh Kumar", Rank: 4, IsCurrentUser: true},
		{ID: "leader-2", Name: "Arjun Singh", Rank: 2},
		{ID: "leader-1", Name: "Meena Devi", Rank: 1},
		{ID: "leader-3", Name: "Priya Sharma", Rank: 3},
	}, nil)

	service := NewUserService(mockRepo)
	entries, err := service.GetLeaderboard(context.Background())

	assert.NoError(t, err)
	assert.Len(t, entries, 4)
	for i, entry := range entries {
		assert.Equal(t, i+1, entry.Rank)
	}
	assert.Equal(t, "Meena Devi", entries[0].Name)

	mockRepo.AssertExpectations(t)
}

func TestUserService_RegisterUser_Defaults(t *testing.T) {
	mockRepo := &mocks.MockUserRepository{}
	mockRepo.On("CreateUser", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.Points == 0 &&
			u.Level == model.DefaultUserLevel &&
			u.Rank == model.DefaultUserRank &&
			u.ActiveChallenges == 0
	})).Return(&model.User{
		ID:       "user-new",
		Username: "lakshmi",
		Name:     "Lakshmi Priya",
		Location: "Karnataka",
		Level:    model.DefaultUserLevel,
		Rank:     model.DefaultUserRank,
	}, nil)

	service := NewUserService(mockRepo)
	user, err := service.RegisterUser(context.Background(), &model.User{
		Username: "lakshmi",
		Name:     "Lakshmi Priya",
		Location: "Karnataka",
	})

	assert.NoError(t, err)
	assert.Equal(t, model.DefaultUserLevel, user.Level)
	assert.Equal(t, model.DefaultUserRank, user.Rank)

	mockRepo.AssertExpectations(t)
}
