package service

import (
	"context"
	"errors"
	"fmt"

	"farmquest_backend/internal/model"
	"farmquest_backend/internal/storage"
)

type RewardService struct {
	repo RewardRepository
}

func NewRewardService(repo RewardRepository) *RewardService {
	return &RewardService{
		repo: repo,
	}
}

func (s *RewardService) GetRewards(ctx context.Context) ([]model.Reward, error) {
	rewards, err := s.repo.GetRewards(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get rewards: %w", err)
	}
	return rewards, nil
}

// RedeemReward settles a redemption. Checks run in a fixed order and the
// first failure wins; nothing is written unless every check passes. The two
// writes (point deduction, redeemed flag) happen back to back against the
// same store, which is safe under the single-writer execution model.
func (s *RewardService) RedeemReward(ctx context.Context, rewardID, userID string) error {
	reward, err := s.repo.GetReward(ctx, rewardID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrRewardNotFound
		}
		return fmt.Errorf("failed to get reward: %w", err)
	}

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if !reward.IsUnlocked {
		return ErrRewardLocked
	}
	if reward.IsRedeemed {
		return ErrRewardAlreadyRedeemed
	}
	if user.Points < reward.Points {
		return ErrInsufficientPoints
	}

	points := user.Points - reward.Points
	if _, err := s.repo.UpdateUser(ctx, userID, storage.UserPatch{Points: &points}); err != nil {
		return fmt.Errorf("failed to deduct points: %w", err)
	}

	redeemed := true
	if _, err := s.repo.UpdateReward(ctx, rewardID, storage.RewardPatch{IsRedeemed: &redeemed}); err != nil {
		return fmt.Errorf("failed to mark reward redeemed: %w", err)
	}

	return nil
}
