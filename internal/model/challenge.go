package model

type Challenge struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Progress     int     `json:"progress"`
	MaxProgress  int     `json:"maxProgress"`
	ProgressText string  `json:"progressText"`
	DaysLeft     int     `json:"daysLeft"`
	Points       int     `json:"points"`
	IsActive     bool    `json:"isActive"`
	UserID       *string `json:"userId"`
}
