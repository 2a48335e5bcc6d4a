package model

type MarketPrice struct {
	ID       string  `json:"id"`
	Crop     string  `json:"crop"`
	Price    string  `json:"price"`
	Change   float64 `json:"change"`
	Icon     string  `json:"icon"`
	Category string  `json:"category"`
}

// TransportReceipt is the canned acknowledgment for a transport request.
// No dispatch happens behind it.
type TransportReceipt struct {
	Message         string `json:"message"`
	RequestID       string `json:"requestId"`
	EstimatedPickup string `json:"estimatedPickup"`
}
