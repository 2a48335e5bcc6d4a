package service

import (
	"context"
	"errors"
	"fmt"

	"farmquest_backend/internal/model"
	"farmquest_backend/internal/storage"
)

type AlertService struct {
	repo AlertRepository
}

func NewAlertService(repo AlertRepository) *AlertService {
	return &AlertService{
		repo: repo,
	}
}

func (s *AlertService) GetAlerts(ctx context.Context) ([]model.Alert, error) {
	alerts, err := s.repo.GetAlerts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get alerts: %w", err)
	}
	return alerts, nil
}

// MarkAlertRead flips isRead to true. The flip is one-way and the call is a
// no-op for unknown ids, matching the read-receipt semantics of the feed.
func (s *AlertService) MarkAlertRead(ctx context.Context, id string) error {
	read := true
	_, err := s.repo.UpdateAlert(ctx, id, storage.AlertPatch{IsRead: &read})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to mark alert as read: %w", err)
	}
	return nil
}
