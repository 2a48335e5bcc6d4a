package storage

import (
	"context"

	"farmquest_backend/internal/model"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("not found")

// Store is the keyed persistence surface for all domain records. The memory
// implementation is the default; the postgres one sits behind the same
// interface so handlers and services never know which one they run on.
type Store interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	UpdateUser(ctx context.Context, id string, patch UserPatch) (*model.User, error)

	GetLessons(ctx context.Context) ([]model.Lesson, error)
	GetLesson(ctx context.Context, id string) (*model.Lesson, error)
	CreateLesson(ctx context.Context, lesson *model.Lesson) (*model.Lesson, error)

	GetChallenges(ctx context.Context, userID *string) ([]model.Challenge, error)
	GetChallenge(ctx context.Context, id string) (*model.Challenge, error)
	CreateChallenge(ctx context.Context, challenge *model.Challenge) (*model.Challenge, error)
	UpdateChallenge(ctx context.Context, id string, patch ChallengePatch) (*model.Challenge, error)

	GetRewards(ctx context.Context) ([]model.Reward, error)
	GetReward(ctx context.Context, id string) (*model.Reward, error)
	UpdateReward(ctx context.Context, id string, patch RewardPatch) (*model.Reward, error)

	GetMarketPrices(ctx context.Context) ([]model.MarketPrice, error)
	GetMarketPrice(ctx context.Context, id string) (*model.MarketPrice, error)

	GetAlerts(ctx context.Context) ([]model.Alert, error)
	UpdateAlert(ctx context.Context, id string, patch AlertPatch) (*model.Alert, error)

	GetLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)

	Close() error
}

// Patch types carry partial updates. Nil fields are left untouched; callers
// are responsible for keeping domain invariants intact — the rules live in
// the service layer, not here.

type UserPatch struct {
	Points           *int
	Level            *string
	Rank             *int
	ActiveChallenges *int
}

type ChallengePatch struct {
	Progress     *int
	ProgressText *string
	DaysLeft     *int
	IsActive     *bool
}

type RewardPatch struct {
	IsUnlocked *bool
	IsRedeemed *bool
}

type AlertPatch struct {
	IsRead *bool
}
