package service

import (
	"context"
	"errors"
	"fmt"

	"farmquest_backend/internal/model"
	"farmquest_backend/internal/storage"
)

// ProofIncrement is the fixed progress step granted per proof submission.
// Proof content is not inspected; reaching the cap does not deactivate the
// challenge, an explicit completion step does that.
const ProofIncrement = 20

type ChallengeService struct {
	repo ChallengeRepository
}

func NewChallengeService(repo ChallengeRepository) *ChallengeService {
	return &ChallengeService{
		repo: repo,
	}
}

func (s *ChallengeService) GetChallenges(ctx context.Context, userID *string) ([]model.Challenge, error) {
	challenges, err := s.repo.GetChallenges(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get challenges: %w", err)
	}
	return challenges, nil
}

func (s *ChallengeService) GetChallenge(ctx context.Context, id string) (*model.Challenge, error) {
	challenge, err := s.repo.GetChallenge(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}
	return challenge, nil
}

// CreateChallenge stores a new challenge with the standard defaults: zero
// progress, a 100-point cap and active state.
func (s *ChallengeService) CreateChallenge(ctx context.Context, challenge *model.Challenge) (*model.Challenge, error) {
	c := *challenge
	if c.MaxProgress == 0 {
		c.MaxProgress = 100
	}
	c.IsActive = true

	created, err := s.repo.CreateChallenge(ctx, &c)
	if err != nil {
		return nil, fmt.Errorf("failed to create challenge: %w", err)
	}
	return created, nil
}

// SubmitProof advances the challenge by ProofIncrement, capped at
// MaxProgress, and returns the updated challenge.
func (s *ChallengeService) SubmitProof(ctx context.Context, challengeID string, proof string) (*model.Challenge, error) {
	challenge, err := s.repo.GetChallenge(ctx, challengeID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	progress := challenge.Progress + ProofIncrement
	if progress > challenge.MaxProgress {
		progress = challenge.MaxProgress
	}

	updated, err := s.repo.UpdateChallenge(ctx, challengeID, storage.ChallengePatch{
		Progress: &progress,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to update challenge progress: %w", err)
	}

	return updated, nil
}
