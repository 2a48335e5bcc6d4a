package model

// Reward types as stored in the catalog.
const (
	RewardTypeBadge   = "badge"
	RewardTypeVoucher = "voucher"
	RewardTypeTool    = "tool"
)

type Reward struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Points      int    `json:"points"`
	Type        string `json:"type"`
	Icon        string `json:"icon"`
	IsUnlocked  bool   `json:"isUnlocked"`
	IsRedeemed  bool   `json:"isRedeemed"`
}
