package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"farmquest_backend/internal/model"
	"farmquest_backend/internal/storage"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// RegisterUser stores a new user with the standard new-farmer defaults.
// Caller-supplied non-zero fields win over the defaults.
func (s *UserService) RegisterUser(ctx context.Context, user *model.User) (*model.User, error) {
	u := *user
	if u.Level == "" {
		u.Level = model.DefaultUserLevel
	}
	if u.Rank == 0 {
		u.Rank = model.DefaultUserRank
	}

	created, err := s.repo.CreateUser(ctx, &u)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	user, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return user, nil
}

// GetLeaderboard returns all entries ordered by rank ascending. The store
// hands them back in insertion order; the sort is stable so equal ranks keep
// that order.
func (s *UserService) GetLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	entries, err := s.repo.GetLeaderboard(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}
	sortLeaderboard(entries)
	return entries, nil
}

func sortLeaderboard(entries []model.LeaderboardEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Rank < entries[j].Rank
	})
}
