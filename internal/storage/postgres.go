package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"farmquest_backend/internal/model"
	"farmquest_backend/pkg/logger"

	"github.com/Masterminds/squirrel"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

type Config struct {
	Host     string `json:"host"`
	Port     string `json:"port"`
	User     string `json:"user"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func (c *Config) GetDatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Name,
	)
}

// Postgres is the durable implementation of Store. Tables mirror the memory
// collections; a pos column preserves insertion order for listings.
type Postgres struct {
	db *sqlx.DB
}

func NewPostgres(cfg Config) (*Postgres, error) {
	db, err := sqlx.Connect("pgx", cfg.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	p := &Postgres{db: db}
	if err := p.migrate(); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}
	if err := p.seedIfEmpty(); err != nil {
		return nil, fmt.Errorf("failed to seed database: %w", err)
	}

	logger.Logger().Info("Connected to database successfully")

	return p, nil
}

func (p *Postgres) Close() error {
	return p.db.Close()
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		pos BIGSERIAL,
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		location TEXT NOT NULL,
		points INTEGER NOT NULL DEFAULT 0,
		level TEXT NOT NULL DEFAULT 'Bronze Farmer',
		rank INTEGER NOT NULL DEFAULT 1,
		active_challenges INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS lessons (
		pos BIGSERIAL,
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		content TEXT NOT NULL,
		duration INTEGER NOT NULL,
		points INTEGER NOT NULL,
		image_url TEXT NOT NULL,
		category TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS challenges (
		pos BIGSERIAL,
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		progress INTEGER NOT NULL DEFAULT 0,
		max_progress INTEGER NOT NULL DEFAULT 100,
		progress_text TEXT NOT NULL,
		days_left INTEGER NOT NULL,
		points INTEGER NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		user_id TEXT REFERENCES users(id)
	)`,
	`CREATE TABLE IF NOT EXISTS rewards (
		pos BIGSERIAL,
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		points INTEGER NOT NULL,
		type TEXT NOT NULL,
		icon TEXT NOT NULL,
		is_unlocked BOOLEAN NOT NULL DEFAULT FALSE,
		is_redeemed BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS market_prices (
		pos BIGSERIAL,
		id TEXT PRIMARY KEY,
		crop TEXT NOT NULL,
		price TEXT NOT NULL,
		change REAL NOT NULL,
		icon TEXT NOT NULL,
		category TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS alerts (
		pos BIGSERIAL,
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		message TEXT NOT NULL,
		type TEXT NOT NULL,
		icon TEXT NOT NULL,
		time_ago TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS leaderboard (
		pos BIGSERIAL,
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		location TEXT NOT NULL,
		points INTEGER NOT NULL,
		level TEXT NOT NULL,
		rank INTEGER NOT NULL,
		is_current_user BOOLEAN NOT NULL DEFAULT FALSE
	)`,
}

func (p *Postgres) migrate() error {
	for _, stmt := range schema {
		if _, err := p.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (p *Postgres) seedIfEmpty() error {
	var count int
	if err := p.db.Get(&count, "SELECT COUNT(*) FROM users"); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	data, err := loadSeed()
	if err != nil {
		return err
	}

	ctx := context.Background()
	for _, u := range data.Users {
		if err := p.insertUser(ctx, &u); err != nil {
			return err
		}
	}
	for _, l := range data.Lessons {
		if err := p.insertLesson(ctx, &l); err != nil {
			return err
		}
	}
	for _, c := range data.Challenges {
		if err := p.insertChallenge(ctx, &c); err != nil {
			return err
		}
	}
	for _, r := range data.Rewards {
		if err := p.exec(ctx, squirrel.Insert("rewards").SetMap(map[string]interface{}{
			"id": r.ID, "title": r.Title, "description": r.Description,
			"points": r.Points, "type": r.Type, "icon": r.Icon,
			"is_unlocked": r.IsUnlocked, "is_redeemed": r.IsRedeemed,
		})); err != nil {
			return err
		}
	}
	for _, mp := range data.MarketPrices {
		if err := p.exec(ctx, squirrel.Insert("market_prices").SetMap(map[string]interface{}{
			"id": mp.ID, "crop": mp.Crop, "price": mp.Price,
			"change": mp.Change, "icon": mp.Icon, "category": mp.Category,
		})); err != nil {
			return err
		}
	}
	for _, a := range data.Alerts {
		if err := p.exec(ctx, squirrel.Insert("alerts").SetMap(map[string]interface{}{
			"id": a.ID, "title": a.Title, "message": a.Message,
			"type": a.Type, "icon": a.Icon, "time_ago": a.TimeAgo, "is_read": a.IsRead,
		})); err != nil {
			return err
		}
	}
	for _, e := range data.Leaderboard {
		if err := p.exec(ctx, squirrel.Insert("leaderboard").SetMap(map[string]interface{}{
			"id": e.ID, "name": e.Name, "location": e.Location,
			"points": e.Points, "level": e.Level, "rank": e.Rank,
			"is_current_user": e.IsCurrentUser,
		})); err != nil {
			return err
		}
	}

	return nil
}

func (p *Postgres) exec(ctx context.Context, b squirrel.InsertBuilder) error {
	query, args, err := b.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, query, args...)
	return err
}

// Row structs

type userRow struct {
	ID               string `db:"id"`
	Username         string `db:"username"`
	Name             string `db:"name"`
	Location         string `db:"location"`
	Points           int    `db:"points"`
	Level            string `db:"level"`
	Rank             int    `db:"rank"`
	ActiveChallenges int    `db:"active_challenges"`
}

func (r userRow) toModel() *model.User {
	return &model.User{
		ID:               r.ID,
		Username:         r.Username,
		Name:             r.Name,
		Location:         r.Location,
		Points:           r.Points,
		Level:            r.Level,
		Rank:             r.Rank,
		ActiveChallenges: r.ActiveChallenges,
	}
}

type lessonRow struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Content     string `db:"content"`
	Duration    int    `db:"duration"`
	Points      int    `db:"points"`
	ImageURL    string `db:"image_url"`
	Category    string `db:"category"`
}

func (r lessonRow) toModel() model.Lesson {
	return model.Lesson{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
		Duration:    r.Duration,
		Points:      r.Points,
		ImageURL:    r.ImageURL,
		Category:    r.Category,
	}
}

type challengeRow struct {
	ID           string  `db:"id"`
	Title        string  `db:"title"`
	Description  string  `db:"description"`
	Progress     int     `db:"progress"`
	MaxProgress  int     `db:"max_progress"`
	ProgressText string  `db:"progress_text"`
	DaysLeft     int     `db:"days_left"`
	Points       int     `db:"points"`
	IsActive     bool    `db:"is_active"`
	UserID       *string `db:"user_id"`
}

func (r challengeRow) toModel() model.Challenge {
	return model.Challenge{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Progress:     r.Progress,
		MaxProgress:  r.MaxProgress,
		ProgressText: r.ProgressText,
		DaysLeft:     r.DaysLeft,
		Points:       r.Points,
		IsActive:     r.IsActive,
		UserID:       r.UserID,
	}
}

type rewardRow struct {
	ID          string `db:"id"`
	Title       string `db:"title"`
	Description string `db:"description"`
	Points      int    `db:"points"`
	Type        string `db:"type"`
	Icon        string `db:"icon"`
	IsUnlocked  bool   `db:"is_unlocked"`
	IsRedeemed  bool   `db:"is_redeemed"`
}

func (r rewardRow) toModel() model.Reward {
	return model.Reward{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Points:      r.Points,
		Type:        r.Type,
		Icon:        r.Icon,
		IsUnlocked:  r.IsUnlocked,
		IsRedeemed:  r.IsRedeemed,
	}
}

type marketPriceRow struct {
	ID       string  `db:"id"`
	Crop     string  `db:"crop"`
	Price    string  `db:"price"`
	Change   float64 `db:"change"`
	Icon     string  `db:"icon"`
	Category string  `db:"category"`
}

func (r marketPriceRow) toModel() model.MarketPrice {
	return model.MarketPrice{
		ID:       r.ID,
		Crop:     r.Crop,
		Price:    r.Price,
		Change:   r.Change,
		Icon:     r.Icon,
		Category: r.Category,
	}
}

type alertRow struct {
	ID      string `db:"id"`
	Title   string `db:"title"`
	Message string `db:"message"`
	Type    string `db:"type"`
	Icon    string `db:"icon"`
	TimeAgo string `db:"time_ago"`
	IsRead  bool   `db:"is_read"`
}

func (r alertRow) toModel() model.Alert {
	return model.Alert{
		ID:      r.ID,
		Title:   r.Title,
		Message: r.Message,
		Type:    r.Type,
		Icon:    r.Icon,
		TimeAgo: r.TimeAgo,
		IsRead:  r.IsRead,
	}
}

type leaderboardRow struct {
	ID            string `db:"id"`
	Name          string `db:"name"`
	Location      string `db:"location"`
	Points        int    `db:"points"`
	Level         string `db:"level"`
	Rank          int    `db:"rank"`
	IsCurrentUser bool   `db:"is_current_user"`
}

func (r leaderboardRow) toModel() model.LeaderboardEntry {
	return model.LeaderboardEntry{
		ID:            r.ID,
		Name:          r.Name,
		Location:      r.Location,
		Points:        r.Points,
		Level:         r.Level,
		Rank:          r.Rank,
		IsCurrentUser: r.IsCurrentUser,
	}
}

// User methods

const userColumns = "id, username, name, location, points, level, rank, active_challenges"

func (p *Postgres) GetUser(ctx context.Context, id string) (*model.User, error) {
	query, args, err := squirrel.
		Select(userColumns).
		From("users").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row userRow
	if err := p.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	query, args, err := squirrel.
		Select(userColumns).
		From("users").
		Where(squirrel.Eq{"username": username}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row userRow
	if err := p.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return row.toModel(), nil
}

func (p *Postgres) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	u := *user
	u.ID = newID()
	if err := p.insertUser(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (p *Postgres) insertUser(ctx context.Context, u *model.User) error {
	return p.exec(ctx, squirrel.Insert("users").SetMap(map[string]interface{}{
		"id":                u.ID,
		"username":          u.Username,
		"name":              u.Name,
		"location":          u.Location,
		"points":            u.Points,
		"level":             u.Level,
		"rank":              u.Rank,
		"active_challenges": u.ActiveChallenges,
	}))
}

func (p *Postgres) UpdateUser(ctx context.Context, id string, patch UserPatch) (*model.User, error) {
	set := map[string]interface{}{}
	if patch.Points != nil {
		set["points"] = *patch.Points
	}
	if patch.Level != nil {
		set["level"] = *patch.Level
	}
	if patch.Rank != nil {
		set["rank"] = *patch.Rank
	}
	if patch.ActiveChallenges != nil {
		set["active_challenges"] = *patch.ActiveChallenges
	}
	if len(set) == 0 {
		return p.GetUser(ctx, id)
	}

	if err := p.update(ctx, "users", id, set); err != nil {
		return nil, err
	}
	return p.GetUser(ctx, id)
}

func (p *Postgres) update(ctx context.Context, table, id string, set map[string]interface{}) error {
	query, args, err := squirrel.
		Update(table).
		SetMap(set).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	result, err := p.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Lesson methods

const lessonColumns = "id, title, description, content, duration, points, image_url, category"

func (p *Postgres) GetLessons(ctx context.Context) ([]model.Lesson, error) {
	query, args, err := squirrel.
		Select(lessonColumns).
		From("lessons").
		OrderBy("pos").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []lessonRow
	if err := p.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	out := make([]model.Lesson, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
	}
	return out, nil
}

func (p *Postgres) GetLesson(ctx context.Context, id string) (*model.Lesson, error) {
	query, args, err := squirrel.
		Select(lessonColumns).
		From("lessons").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row lessonRow
	if err := p.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	lesson := row.toModel()
	return &lesson, nil
}

func (p *Postgres) CreateLesson(ctx context.Context, lesson *model.Lesson) (*model.Lesson, error) {
	l := *lesson
	l.ID = newID()
	if err := p.insertLesson(ctx, &l); err != nil {
		return nil, err
	}
	return &l, nil
}

func (p *Postgres) insertLesson(ctx context.Context, l *model.Lesson) error {
	return p.exec(ctx, squirrel.Insert("lessons").SetMap(map[string]interface{}{
		"id":          l.ID,
		"title":       l.Title,
		"description": l.Description,
		"content":     l.Content,
		"duration":    l.Duration,
		"points":      l.Points,
		"image_url":   l.ImageURL,
		"category":    l.Category,
	}))
}

// Challenge methods

const challengeColumns = "id, title, description, progress, max_progress, progress_text, days_left, points, is_active, user_id"

func (p *Postgres) GetChallenges(ctx context.Context, userID *string) ([]model.Challenge, error) {
	builder := squirrel.
		Select(challengeColumns).
		From("challenges").
		OrderBy("pos")
	if userID != nil {
		builder = builder.Where(squirrel.Eq{"user_id": *userID})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, err
	}

	var rows []challengeRow
	if err := p.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	out := make([]model.Challenge, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
	}
	return out, nil
}

func (p *Postgres) GetChallenge(ctx context.Context, id string) (*model.Challenge, error) {
	query, args, err := squirrel.
		Select(challengeColumns).
		From("challenges").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row challengeRow
	if err := p.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	challenge := row.toModel()
	return &challenge, nil
}

func (p *Postgres) CreateChallenge(ctx context.Context, challenge *model.Challenge) (*model.Challenge, error) {
	c := *challenge
	c.ID = newID()
	if err := p.insertChallenge(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (p *Postgres) insertChallenge(ctx context.Context, c *model.Challenge) error {
	return p.exec(ctx, squirrel.Insert("challenges").SetMap(map[string]interface{}{
		"id":            c.ID,
		"title":         c.Title,
		"description":   c.Description,
		"progress":      c.Progress,
		"max_progress":  c.MaxProgress,
		"progress_text": c.ProgressText,
		"days_left":     c.DaysLeft,
		"points":        c.Points,
		"is_active":     c.IsActive,
		"user_id":       c.UserID,
	}))
}

func (p *Postgres) UpdateChallenge(ctx context.Context, id string, patch ChallengePatch) (*model.Challenge, error) {
	set := map[string]interface{}{}
	if patch.Progress != nil {
		set["progress"] = *patch.Progress
	}
	if patch.ProgressText != nil {
		set["progress_text"] = *patch.ProgressText
	}
	if patch.DaysLeft != nil {
		set["days_left"] = *patch.DaysLeft
	}
	if patch.IsActive != nil {
		set["is_active"] = *patch.IsActive
	}
	if len(set) == 0 {
		return p.GetChallenge(ctx, id)
	}

	if err := p.update(ctx, "challenges", id, set); err != nil {
		return nil, err
	}
	return p.GetChallenge(ctx, id)
}

// Reward methods

const rewardColumns = "id, title, description, points, type, icon, is_unlocked, is_redeemed"

func (p *Postgres) GetRewards(ctx context.Context) ([]model.Reward, error) {
	query, args, err := squirrel.
		Select(rewardColumns).
		From("rewards").
		OrderBy("pos").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []rewardRow
	if err := p.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	out := make([]model.Reward, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
	}
	return out, nil
}

func (p *Postgres) GetReward(ctx context.Context, id string) (*model.Reward, error) {
	query, args, err := squirrel.
		Select(rewardColumns).
		From("rewards").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row rewardRow
	if err := p.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	reward := row.toModel()
	return &reward, nil
}

func (p *Postgres) UpdateReward(ctx context.Context, id string, patch RewardPatch) (*model.Reward, error) {
	set := map[string]interface{}{}
	if patch.IsUnlocked != nil {
		set["is_unlocked"] = *patch.IsUnlocked
	}
	if patch.IsRedeemed != nil {
		set["is_redeemed"] = *patch.IsRedeemed
	}
	if len(set) == 0 {
		return p.GetReward(ctx, id)
	}

	if err := p.update(ctx, "rewards", id, set); err != nil {
		return nil, err
	}
	return p.GetReward(ctx, id)
}

// Market methods

const marketPriceColumns = "id, crop, price, change, icon, category"

func (p *Postgres) GetMarketPrices(ctx context.Context) ([]model.MarketPrice, error) {
	query, args, err := squirrel.
		Select(marketPriceColumns).
		From("market_prices").
		OrderBy("pos").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []marketPriceRow
	if err := p.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	out := make([]model.MarketPrice, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
	}
	return out, nil
}

func (p *Postgres) GetMarketPrice(ctx context.Context, id string) (*model.MarketPrice, error) {
	query, args, err := squirrel.
		Select(marketPriceColumns).
		From("market_prices").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row marketPriceRow
	if err := p.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	price := row.toModel()
	return &price, nil
}

// Alert methods

const alertColumns = "id, title, message, type, icon, time_ago, is_read"

func (p *Postgres) GetAlerts(ctx context.Context) ([]model.Alert, error) {
	query, args, err := squirrel.
		Select(alertColumns).
		From("alerts").
		OrderBy("pos").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []alertRow
	if err := p.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	out := make([]model.Alert, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
	}
	return out, nil
}

func (p *Postgres) UpdateAlert(ctx context.Context, id string, patch AlertPatch) (*model.Alert, error) {
	set := map[string]interface{}{}
	if patch.IsRead != nil {
		set["is_read"] = *patch.IsRead
	}
	if len(set) == 0 {
		return p.getAlert(ctx, id)
	}

	if err := p.update(ctx, "alerts", id, set); err != nil {
		return nil, err
	}
	return p.getAlert(ctx, id)
}

func (p *Postgres) getAlert(ctx context.Context, id string) (*model.Alert, error) {
	query, args, err := squirrel.
		Select(alertColumns).
		From("alerts").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var row alertRow
	if err := p.db.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	alert := row.toModel()
	return &alert, nil
}

// Leaderboard methods

func (p *Postgres) GetLeaderboard(ctx context.Context) ([]model.LeaderboardEntry, error) {
	query, args, err := squirrel.
		Select("id, name, location, points, level, rank, is_current_user").
		From("leaderboard").
		OrderBy("pos").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	var rows []leaderboardRow
	if err := p.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	out := make([]model.LeaderboardEntry, len(rows))
	for i, row := range rows {
		out[i] = row.toModel()
	}
	return out, nil
}
