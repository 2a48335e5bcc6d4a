package storage

import (
	"context"
	"sync"

	"farmquest_backend/internal/model"

	"github.com/google/uuid"
)

// Memory keeps every collection in a map keyed by id, with a parallel slice
// preserving insertion order for listings. All state is lost on restart and
// rebuilt from the embedded seed dataset.
type Memory struct {
	sync.Mutex

	users          map[string]model.User
	userOrder      []string
	lessons        map[string]model.Lesson
	lessonOrder    []string
	challenges     map[string]model.Challenge
	challengeOrder []string
	rewards        map[string]model.Reward
	rewardOrder    []string
	prices         map[string]model.MarketPrice
	priceOrder     []string
	alerts         map[string]model.Alert
	alertOrder     []string
	leaders        map[string]model.LeaderboardEntry
	leaderOrder    []string
}

func NewMemory() (*Memory, error) {
	m := &Memory{
		users:      make(map[string]model.User),
		lessons:    make(map[string]model.Lesson),
		challenges: make(map[string]model.Challenge),
		rewards:    make(map[string]model.Reward),
		prices:     make(map[string]model.MarketPrice),
		alerts:     make(map[string]model.Alert),
		leaders:    make(map[string]model.LeaderboardEntry),
	}

	data, err := loadSeed()
	if err != nil {
		return nil, err
	}
	m.apply(data)

	return m, nil
}

// NewEmptyMemory returns a store without the demo dataset, for tests that
// want full control over contents.
func NewEmptyMemory() *Memory {
	return &Memory{
		users:      make(map[string]model.User),
		lessons:    make(map[string]model.Lesson),
		challenges: make(map[string]model.Challenge),
		rewards:    make(map[string]model.Reward),
		prices:     make(map[string]model.MarketPrice),
		alerts:     make(map[string]model.Alert),
		leaders:    make(map[string]model.LeaderboardEntry),
	}
}

func (m *Memory) apply(data *seedData) {
	for _, u := range data.Users {
		m.users[u.ID] = u
		m.userOrder = append(m.userOrder, u.ID)
	}
	for _, l := range data.Lessons {
		m.lessons[l.ID] = l
		m.lessonOrder = append(m.lessonOrder, l.ID)
	}
	for _, c := range data.Challenges {
		m.challenges[c.ID] = c
		m.challengeOrder = append(m.challengeOrder, c.ID)
	}
	for _, r := range data.Rewards {
		m.rewards[r.ID] = r
		m.rewardOrder = append(m.rewardOrder, r.ID)
	}
	for _, p := range data.MarketPrices {
		m.prices[p.ID] = p
		m.priceOrder = append(m.priceOrder, p.ID)
	}
	for _, a := range data.Alerts {
		m.alerts[a.ID] = a
		m.alertOrder = append(m.alertOrder, a.ID)
	}
	for _, e := range data.Leaderboard {
		m.leaders[e.ID] = e
		m.leaderOrder = append(m.leaderOrder, e.ID)
	}
}

func (m *Memory) Close() error {
	return nil
}

func newID() string {
	return uuid.New().String()
}

// User methods

func (m *Memory) GetUser(_ context.Context, id string) (*model.User, error) {
	m.Lock()
	defer m.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (m *Memory) GetUserByUsername(_ context.Context, username string) (*model.User, error) {
	m.Lock()
	defer m.Unlock()

	for _, id := range m.userOrder {
		if u := m.users[id]; u.Username == username {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) CreateUser(_ context.Context, user *model.User) (*model.User, error) {
	m.Lock()
	defer m.Unlock()

	u := *user
	u.ID = newID()
	m.users[u.ID] = u
	m.userOrder = append(m.userOrder, u.ID)
	return &u, nil
}

func (m *Memory) UpdateUser(_ context.Context, id string, patch UserPatch) (*model.User, error) {
	m.Lock()
	defer m.Unlock()

	u, ok := m.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Points != nil {
		u.Points = *patch.Points
	}
	if patch.Level != nil {
		u.Level = *patch.Level
	}
	if patch.Rank != nil {
		u.Rank = *patch.Rank
	}
	if patch.ActiveChallenges != nil {
		u.ActiveChallenges = *patch.ActiveChallenges
	}
	m.users[id] = u
	return &u, nil
}

// Lesson methods

func (m *Memory) GetLessons(_ context.Context) ([]model.Lesson, error) {
	m.Lock()
	defer m.Unlock()

	out := make([]model.Lesson, 0, len(m.lessonOrder))
	for _, id := range m.lessonOrder {
		out = append(out, m.lessons[id])
	}
	return out, nil
}

func (m *Memory) GetLesson(_ context.Context, id string) (*model.Lesson, error) {
	m.Lock()
	defer m.Unlock()

	l, ok := m.lessons[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &l, nil
}

func (m *Memory) CreateLesson(_ context.Context, lesson *model.Lesson) (*model.Lesson, error) {
	m.Lock()
	defer m.Unlock()

	l := *lesson
	l.ID = newID()
	m.lessons[l.ID] = l
	m.lessonOrder = append(m.lessonOrder, l.ID)
	return &l, nil
}

// Challenge methods

func (m *Memory) GetChallenges(_ context.Context, userID *string) ([]model.Challenge, error) {
	m.Lock()
	defer m.Unlock()

	out := make([]model.Challenge, 0, len(m.challengeOrder))
	for _, id := range m.challengeOrder {
		c := m.challenges[id]
		if userID != nil && (c.UserID == nil || *c.UserID != *userID) {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *Memory) GetChallenge(_ context.Context, id string) (*model.Challenge, error) {
	m.Lock()
	defer m.Unlock()

	c, ok := m.challenges[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (m *Memory) CreateChallenge(_ context.Context, challenge *model.Challenge) (*model.Challenge, error) {
	m.Lock()
	defer m.Unlock()

	c := *challenge
	c.ID = newID()
	m.challenges[c.ID] = c
	m.challengeOrder = append(m.challengeOrder, c.ID)
	return &c, nil
}

func (m *Memory) UpdateChallenge(_ context.Context, id string, patch ChallengePatch) (*model.Challenge, error) {
	m.Lock()
	defer m.Unlock()

	c, ok := m.challenges[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.Progress != nil {
		c.Progress = *patch.Progress
	}
	if patch.ProgressText != nil {
		c.ProgressText = *patch.ProgressText
	}
	if patch.DaysLeft != nil {
		c.DaysLeft = *patch.DaysLeft
	}
	if patch.IsActive != nil {
		c.IsActive = *patch.IsActive
	}
	m.challenges[id] = c
	return &c, nil
}

// Reward methods

func (m *Memory) GetRewards(_ context.Context) ([]model.Reward, error) {
	m.Lock()
	defer m.Unlock()

	out := make([]model.Reward, 0, len(m.rewardOrder))
	for _, id := range m.rewardOrder {
		out = append(out, m.rewards[id])
	}
	return out, nil
}

func (m *Memory) GetReward(_ context.Context, id string) (*model.Reward, error) {
	m.Lock()
	defer m.Unlock()

	r, ok := m.rewards[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &r, nil
}

func (m *Memory) UpdateReward(_ context.Context, id string, patch RewardPatch) (*model.Reward, error) {
	m.Lock()
	defer m.Unlock()

	r, ok := m.rewards[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.IsUnlocked != nil {
		r.IsUnlocked = *patch.IsUnlocked
	}
	if patch.IsRedeemed != nil {
		r.IsRedeemed = *patch.IsRedeemed
	}
	m.rewards[id] = r
	return &r, nil
}

// Market methods

func (m *Memory) GetMarketPrices(_ context.Context) ([]model.MarketPrice, error) {
	m.Lock()
	defer m.Unlock()

	out := make([]model.MarketPrice, 0, len(m.priceOrder))
	for _, id := range m.priceOrder {
		out = append(out, m.prices[id])
	}
	return out, nil
}

func (m *Memory) GetMarketPrice(_ context.Context, id string) (*model.MarketPrice, error) {
	m.Lock()
	defer m.Unlock()

	p, ok := m.prices[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

// Alert methods

func (m *Memory) GetAlerts(_ context.Context) ([]model.Alert, error) {
	m.Lock()
	defer m.Unlock()

	out := make([]model.Alert, 0, len(m.alertOrder))
	for _, id := range m.alertOrder {
		out = append(out, m.alerts[id])
	}
	return out, nil
}

func (m *Memory) UpdateAlert(_ context.Context, id string, patch AlertPatch) (*model.Alert, error) {
	m.Lock()
	defer m.Unlock()

	a, ok := m.alerts[id]
	if !ok {
		return nil, ErrNotFound
	}
	if patch.IsRead != nil {
		a.IsRead = *patch.IsRead
	}
	m.alerts[id] = a
	return &a, nil
}

// Leaderboard methods

func (m *Memory) GetLeaderboard(_ context.Context) ([]model.LeaderboardEntry, error) {
	m.Lock()
	defer m.Unlock()

	out := make([]model.LeaderboardEntry, 0, len(m.leaderOrder))
	for _, id := range m.leaderOrder {
		out = append(out, m.leaders[id])
	}
	return out, nil
}

// AddLeaderboardEntry exists for tests and future rank recomputation; the
// demo dataset provides all entries at startup.
func (m *Memory) AddLeaderboardEntry(_ context.Context, entry *model.LeaderboardEntry) (*model.LeaderboardEntry, error) {
	m.Lock()
	defer m.Unlock()

	e := *entry
	if e.ID == "" {
		e.ID = newID()
	}
	m.leaders[e.ID] = e
	m.leaderOrder = append(m.leaderOrder, e.ID)
	return &e, nil
}
