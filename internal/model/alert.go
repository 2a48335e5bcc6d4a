package model

type Alert struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Icon    string `json:"icon"`
	TimeAgo string `json:"timeAgo"`
	IsRead  bool   `json:"isRead"`
}
