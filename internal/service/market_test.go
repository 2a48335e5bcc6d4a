package service

import (
	"context"
	"strings"
	"testing"

	"farmquest_backend/internal/model"
	"farmquest_backend/internal/service/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var samplePrices = []model.MarketPrice{
	{ID: "price-1", Crop: "Rice", Category: "grains"},
	{ID: "price-2", Crop: "Tomato", Category: "vegetables"},
	{ID: "price-3", Crop: "Banana", Category: "fruits"},
}

func TestMarketService_GetMarketPrices(t *testing.T) {
	tests := []struct {
		name          string
		category      string
		expectedCrops []string
	}{
		{
			name:          "Filter by category",
			category:      "fruits",
			expectedCrops: []string{"Banana"},
		},
		{
			name:          "All sentinel returns everything",
			category:      "all",
			expectedCrops: []string{"Rice", "Tomato", "Banana"},
		},
		{
			name:          "Empty category returns everything",
			category:      "",
			expectedCrops: []string{"Rice", "Tomato", "Banana"},
		},
		{
			name:          "Unknown category returns nothing",
			category:      "spices",
			expectedCrops: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := &mocks.MockMarketRepository{}
			mockRepo.On("GetMarketPrices", mock.Anything).Return(samplePrices, nil)

			service := NewMarketService(mockRepo)
			prices, err := service.GetMarketPrices(context.Background(), tt.category)

			assert.NoError(t, err)
			crops := make([]string, 0, len(prices))
			for _, p := range prices {
				crops = append(crops, p.Crop)
			}
			assert.Equal(t, tt.expectedCrops, crops)
		})
	}
}

func TestMarketService_RequestTransport(t *testing.T) {
	mockRepo := &mocks.MockMarketRepository{}
	service := NewMarketService(mockRepo)

	receipt, err := service.RequestTransport(context.Background(), &TransportRequest{
		Crop:     "Rice",
		Quantity: "5 quintals",
		Location: "Madurai",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Transport request submitted for 5 quintals of Rice from Madurai", receipt.Message)
	assert.True(t, strings.HasPrefix(receipt.RequestID, "TR-"))
	assert.Equal(t, "Within 2-3 hours", receipt.EstimatedPickup)
}
