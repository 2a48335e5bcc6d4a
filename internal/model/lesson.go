package model

type Lesson struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	Duration    int    `json:"duration"`
	Points      int    `json:"points"`
	ImageURL    string `json:"imageUrl"`
	Category    string `json:"category"`
}
