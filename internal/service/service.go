package service

import (
	"context"
	"errors"

	"farmquest_backend/internal/model"
	"farmquest_backend/internal/storage"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrLessonNotFound    = errors.New("lesson not found")
	ErrChallengeNotFound = errors.New("challenge not found")
	ErrRewardNotFound    = errors.New("reward not found")
	ErrPriceNotFound     = errors.New("market price not found")

	ErrRewardLocked          = errors.New("reward is not unlocked yet")
	ErrRewardAlreadyRedeemed = errors.New("reward already redeemed")
	ErrInsufficientPoints    = errors.New("insufficient points")
)

type Service struct {
	*UserService
	*LessonService
	*ChallengeService
	*RewardService
	*MarketService
	*AlertService
	*DashboardService
}

func NewService(store storage.Store) *Service {
	return &Service{
		UserService:      NewUserService(store),
		LessonService:    NewLessonService(store),
		ChallengeService: NewChallengeService(store),
		RewardService:    NewRewardService(store),
		MarketService:    NewMarketService(store),
		AlertService:     NewAlertService(store),
		DashboardService: NewDashboardService(store),
	}
}

type UserServiceI interface {
	RegisterUser(ctx context.Context, user *model.User) (*model.User, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	GetLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
}

type UserRepository interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	GetLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
}

type LessonServiceI interface {
	GetLessons(ctx context.Context) ([]model.Lesson, error)
	GetLesson(ctx context.Context, id string) (*model.Lesson, error)
	CreateLesson(ctx context.Context, lesson *model.Lesson) (*model.Lesson, error)
}

type LessonRepository interface {
	GetLessons(ctx context.Context) ([]model.Lesson, error)
	GetLesson(ctx context.Context, id string) (*model.Lesson, error)
	CreateLesson(ctx context.Context, lesson *model.Lesson) (*model.Lesson, error)
}

type ChallengeServiceI interface {
	GetChallenges(ctx context.Context, userID *string) ([]model.Challenge, error)
	GetChallenge(ctx context.Context, id string) (*model.Challenge, error)
	CreateChallenge(ctx context.Context, challenge *model.Challenge) (*model.Challenge, error)
	SubmitProof(ctx context.Context, challengeID string, proof string) (*model.Challenge, error)
}

type ChallengeRepository interface {
	GetChallenges(ctx context.Context, userID *string) ([]model.Challenge, error)
	GetChallenge(ctx context.Context, id string) (*model.Challenge, error)
	CreateChallenge(ctx context.Context, challenge *model.Challenge) (*model.Challenge, error)
	UpdateChallenge(ctx context.Context, id string, patch storage.ChallengePatch) (*model.Challenge, error)
}

type RewardServiceI interface {
	GetRewards(ctx context.Context) ([]model.Reward, error)
	RedeemReward(ctx context.Context, rewardID, userID string) error
}

type RewardRepository interface {
	GetRewards(ctx context.Context) ([]model.Reward, error)
	GetReward(ctx context.Context, id string) (*model.Reward, error)
	UpdateReward(ctx context.Context, id string, patch storage.RewardPatch) (*model.Reward, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	UpdateUser(ctx context.Context, id string, patch storage.UserPatch) (*model.User, error)
}

type MarketServiceI interface {
	GetMarketPrices(ctx context.Context, category string) ([]model.MarketPrice, error)
	GetMarketPrice(ctx context.Context, id string) (*model.MarketPrice, error)
	RequestTransport(ctx context.Context, req *TransportRequest) (*model.TransportReceipt, error)
}

type MarketRepository interface {
	GetMarketPrices(ctx context.Context) ([]model.MarketPrice, error)
	GetMarketPrice(ctx context.Context, id string) (*model.MarketPrice, error)
}

type AlertServiceI interface {
	GetAlerts(ctx context.Context) ([]model.Alert, error)
	MarkAlertRead(ctx context.Context, id string) error
}

type AlertRepository interface {
	GetAlerts(ctx context.Context) ([]model.Alert, error)
	UpdateAlert(ctx context.Context, id string, patch storage.AlertPatch) (*model.Alert, error)
}

type DashboardServiceI interface {
	GetDashboard(ctx context.Context, userID string) (*model.Dashboard, error)
}

type DashboardRepository interface {
	GetUser(ctx context.Context, id string) (*model.User, error)
	GetChallenges(ctx context.Context, userID *string) ([]model.Challenge, error)
	GetLessons(ctx context.Context) ([]model.Lesson, error)
	GetMarketPrices(ctx context.Context) ([]model.MarketPrice, error)
	GetLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error)
	GetAlerts(ctx context.Context) ([]model.Alert, error)
	GetRewards(ctx context.Context) ([]model.Reward, error)
}
