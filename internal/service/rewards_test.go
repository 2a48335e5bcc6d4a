package service

import (
	"context"
	"testing"

	"farmquest_backend/internal/model"
	"farmquest_backend/internal/service/mocks"
	"farmquest_backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestRewardService_RedeemReward(t *testing.T) {
	tests := []struct {
		name          string
		rewardID      string
		userID        string
		setupMocks    func(mockRepo *mocks.MockRewardRepository)
		expectedError error
	}{
		{
			name:     "Successful redemption deducts exact cost",
			rewardID: "reward-2",
			userID:   "user-1",
			setupMocks: func(mockRepo *mocks.MockRewardRepository) {
				mockRepo.On("GetReward", mock.Anything, "reward-2").
					Return(&model.Reward{
						ID:         "reward-2",
						Points:     200,
						IsUnlocked: true,
						IsRedeemed: false,
					}, nil)
				mockRepo.On("GetUser", mock.Anything, "user-1").
					Return(&model.User{ID: "user-1", Points: 850}, nil)

				mockRepo.On("UpdateUser", mock.Anything, "user-1",
					mock.MatchedBy(func(patch storage.UserPatch) bool {
						return patch.Points != nil && *patch.Points == 650
					})).
					Return(&model.User{ID: "user-1", Points: 650}, nil)

				mockRepo.On("UpdateReward", mock.Anything, "reward-2",
					mock.MatchedBy(func(patch storage.RewardPatch) bool {
						return patch.IsRedeemed != nil && *patch.IsRedeemed
					})).
					Return(&model.Reward{
						ID:         "reward-2",
						Points:     200,
						IsUnlocked: true,
						IsRedeemed: true,
					}, nil)
			},
		},
		{
			name:     "Reward not found",
			rewardID: "missing",
			userID:   "user-1",
			setupMocks: func(mockRepo *mocks.MockRewardRepository) {
				mockRepo.On("GetReward", mock.Anything, "missing").
					Return(nil, storage.ErrNotFound)
			},
			expectedError: ErrRewardNotFound,
		},
		{
			name:     "User not found",
			rewardID: "reward-2",
			userID:   "ghost",
			setupMocks: func(mockRepo *mocks.MockRewardRepository) {
				mockRepo.On("GetReward", mock.Anything, "reward-2").
					Return(&model.Reward{ID: "reward-2", Points: 200, IsUnlocked: true}, nil)
				mockRepo.On("GetUser", mock.Anything, "ghost").
					Return(nil, storage.ErrNotFound)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:     "Locked reward rejected",
			rewardID: "reward-1",
			userID:   "user-1",
			setupMocks: func(mockRepo *mocks.MockRewardRepository) {
				mockRepo.On("GetReward", mock.Anything, "reward-1").
					Return(&model.Reward{
						ID:         "reward-1",
						Points:     100,
						IsUnlocked: false,
					}, nil)
				mockRepo.On("GetUser", mock.Anything, "user-1").
					Return(&model.User{ID: "user-1", Points: 850}, nil)
			},
			expectedError: ErrRewardLocked,
		},
		{
			name:     "Second redemption rejected",
			rewardID: "reward-2",
			userID:   "user-1",
			setupMocks: func(mockRepo *mocks.MockRewardRepository) {
				mockRepo.On("GetReward", mock.Anything, "reward-2").
					Return(&model.Reward{
						ID:         "reward-2",
						Points:     200,
						IsUnlocked: true,
						IsRedeemed: true,
					}, nil)
				mockRepo.On("GetUser", mock.Anything, "user-1").
					Return(&model.User{ID: "user-1", Points: 650}, nil)
			},
			expectedError: ErrRewardAlreadyRedeemed,
		},
		{
			name:     "Insufficient points rejected",
			rewardID: "reward-2",
			userID:   "user-1",
			setupMocks: func(mockRepo *mocks.MockRewardRepository) {
				mockRepo.On("GetReward", mock.Anything, "reward-2").
					Return(&model.Reward{
						ID:         "reward-2",
						Points:     200,
						IsUnlocked: true,
					}, nil)
				mockRepo.On("GetUser", mock.Anything, "user-1").
					Return(&model.User{ID: "user-1", Points: 150}, nil)
			},
			expectedError: ErrInsufficientPoints,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockRewardRepository{}
			tt.setupMocks(mockRepo)

			service := NewRewardService(mockRepo)
			err := service.RedeemReward(context.Background(), tt.rewardID, tt.userID)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)

				// A rejected redemption must leave both records untouched.
				mockRepo.AssertNotCalled(t, "UpdateUser", mock.Anything, mock.Anything, mock.Anything)
				mockRepo.AssertNotCalled(t, "UpdateReward", mock.Anything, mock.Anything, mock.Anything)
				return
			}

			assert.NoError(t, err)
			mockRepo.AssertExpectations(t)
		})
	}
}

// Redeeming against the live in-memory store end to end: one success, then
// rejection, with points deducted exactly once.
func TestRewardService_RedeemReward_Idempotency(t *testing.T) {
	store, err := storage.NewMemory()
	assert.NoError(t, err)

	service := NewRewardService(store)
	ctx := context.Background()

	err = service.RedeemReward(ctx, "reward-2", "user-1")
	assert.NoError(t, err)

	user, err := store.GetUser(ctx, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, 650, user.Points)

	reward, err := store.GetReward(ctx, "reward-2")
	assert.NoError(t, err)
	assert.True(t, reward.IsRedeemed)

	err = service.RedeemReward(ctx, "reward-2", "user-1")
	assert.ErrorIs(t, err, ErrRewardAlreadyRedeemed)

	user, err = store.GetUser(ctx, "user-1")
	assert.NoError(t, err)
	assert.Equal(t, 650, user.Points)
}
