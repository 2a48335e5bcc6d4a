package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"farmquest_backend/internal/model"
	"farmquest_backend/internal/storage"
)

// CategoryAll is the sentinel category that disables filtering.
const CategoryAll = "all"

type TransportRequest struct {
	Crop     string
	Quantity string
	Location string
	Notes    string
}

type MarketService struct {
	repo MarketRepository
}

func NewMarketService(repo MarketRepository) *MarketService {
	return &MarketService{
		repo: repo,
	}
}

func (s *MarketService) GetMarketPrices(ctx context.Context, category string) ([]model.MarketPrice, error) {
	prices, err := s.repo.GetMarketPrices(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get market prices: %w", err)
	}

	if category == "" || category == CategoryAll {
		return prices, nil
	}

	filtered := make([]model.MarketPrice, 0, len(prices))
	for _, p := range prices {
		if p.Category == category {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *MarketService) GetMarketPrice(ctx context.Context, id string) (*model.MarketPrice, error) {
	price, err := s.repo.GetMarketPrice(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrPriceNotFound
		}
		return nil, fmt.Errorf("failed to get market price: %w", err)
	}
	return price, nil
}

// RequestTransport acknowledges a pickup request. There is no dispatch
// system behind this; the receipt is canned.
func (s *MarketService) RequestTransport(_ context.Context, req *TransportRequest) (*model.TransportReceipt, error) {
	return &model.TransportReceipt{
		Message: fmt.Sprintf("Transport request submitted for %s of %s from %s",
			req.Quantity, req.Crop, req.Location),
		RequestID:       fmt.Sprintf("TR-%d", time.Now().UnixMilli()),
		EstimatedPickup: "Within 2-3 hours",
	}, nil
}
