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

func TestChallengeService_SubmitProof(t *testing.T) {
	userID := "user-1"

	tests := []struct {
		name             string
		challengeID      string
		setupMocks       func(mockRepo *mocks.MockChallengeRepository)
		expectedError    error
		expectedProgress int
	}{
		{
			name:        "Advances progress by fixed increment",
			challengeID: "challenge-2",
			setupMocks: func(mockRepo *mocks.MockChallengeRepository) {
				mockRepo.On("GetChallenge", mock.Anything, "challenge-2").
					Return(&model.Challenge{
						ID:          "challenge-2",
						Progress:    70,
						MaxProgress: 100,
						IsActive:    true,
						UserID:      &userID,
					}, nil)

				mockRepo.On("UpdateChallenge", mock.Anything, "challenge-2",
					mock.MatchedBy(func(patch storage.ChallengePatch) bool {
						return patch.Progress != nil && *patch.Progress == 90
					})).
					Return(&model.Challenge{
						ID:          "challenge-2",
						Progress:    90,
						MaxProgress: 100,
						IsActive:    true,
						UserID:      &userID,
					}, nil)
			},
			expectedProgress: 90,
		},
		{
			name:        "Caps progress at maximum",
			challengeID: "challenge-3",
			setupMocks: func(mockRepo *mocks.MockChallengeRepository) {
				mockRepo.On("GetChallenge", mock.Anything, "challenge-3").
					Return(&model.Challenge{
						ID:          "challenge-3",
						Progress:    90,
						MaxProgress: 100,
						IsActive:    true,
					}, nil)

				mockRepo.On("UpdateChallenge", mock.Anything, "challenge-3",
					mock.MatchedBy(func(patch storage.ChallengePatch) bool {
						return patch.Progress != nil && *patch.Progress == 100
					})).
					Return(&model.Challenge{
						ID:          "challenge-3",
						Progress:    100,
						MaxProgress: 100,
						IsActive:    true,
					}, nil)
			},
			expectedProgress: 100,
		},
		{
			name:        "Already at maximum stays at maximum",
			challengeID: "challenge-4",
			setupMocks: func(mockRepo *mocks.MockChallengeRepository) {
				mockRepo.On("GetChallenge", mock.Anything, "challenge-4").
					Return(&model.Challenge{
						ID:          "challenge-4",
						Progress:    100,
						MaxProgress: 100,
						IsActive:    true,
					}, nil)

				mockRepo.On("UpdateChallenge", mock.Anything, "challenge-4",
					mock.MatchedBy(func(patch storage.ChallengePatch) bool {
						return patch.Progress != nil && *patch.Progress == 100
					})).
					Return(&model.Challenge{
						ID:          "challenge-4",
						Progress:    100,
						MaxProgress: 100,
						IsActive:    true,
					}, nil)
			},
			expectedProgress: 100,
		},
		{
			name:        "Challenge not found",
			challengeID: "missing",
			setupMocks: func(mockRepo *mocks.MockChallengeRepository) {
				mockRepo.On("GetChallenge", mock.Anything, "missing").
					Return(nil, storage.ErrNotFound)
			},
			expectedError: ErrChallengeNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockChallengeRepository{}
			tt.setupMocks(mockRepo)

			service := NewChallengeService(mockRepo)
			challenge, err := service.SubmitProof(context.Background(), tt.challengeID, "photo.jpg")

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.ErrorIs(t, err, tt.expectedError)
				mockRepo.AssertNotCalled(t, "UpdateChallenge", mock.Anything, mock.Anything, mock.Anything)
				return
			}

			assert.NoError(t, err)
			assert.NotNil(t, challenge)
			assert.Equal(t, tt.expectedProgress, challenge.Progress)
			assert.LessOrEqual(t, challenge.Progress, challenge.MaxProgress)

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestChallengeService_GetChallenges(t *testing.T) {
	userID := "user-1"
	otherID := "user-2"

	mockRepo := &mocks.MockChallengeRepository{}
	mockRepo.On("GetChallenges", mock.Anything, &userID).
		Return([]model.Challenge{
			{ID: "challenge-1", UserID: &userID},
			{ID: "challenge-2", UserID: &userID},
		}, nil)
	mockRepo.On("GetChallenges", mock.Anything, (*string)(nil)).
		Return([]model.Challenge{
			{ID: "challenge-1", UserID: &userID},
			{ID: "challenge-2", UserID: &userID},
			{ID: "challenge-3", UserID: &otherID},
		}, nil)

	service := NewChallengeService(mockRepo)

	owned, err := service.GetChallenges(context.Background(), &userID)
	assert.NoError(t, err)
	assert.Len(t, owned, 2)

	all, err := service.GetChallenges(context.Background(), nil)
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	mockRepo.AssertExpectations(t)
}

func TestChallengeService_CreateChallenge_Defaults(t *testing.T) {
	mockRepo := &mocks.MockChallengeRepository{}
	mockRepo.On("CreateChallenge", mock.Anything, mock.MatchedBy(func(c *model.Challenge) bool {
		return c.Progress == 0 && c.MaxProgress == 100 && c.IsActive
	})).Return(&model.Challenge{
		ID:          "challenge-new",
		Title:       "Composting Month",
		MaxProgress: 100,
		IsActive:    true,
	}, nil)

	service := NewChallengeService(mockRepo)
	created, err := service.CreateChallenge(context.Background(), &model.Challenge{
		Title: "Composting Month",
	})

	assert.NoError(t, err)
	assert.Equal(t, 100, created.MaxProgress)
	assert.True(t, created.IsActive)

	mockRepo.AssertExpectations(t)
}
