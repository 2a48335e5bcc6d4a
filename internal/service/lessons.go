package service

import (
	"context"
	"errors"
	"fmt"

	"farmquest_backend/internal/model"
	"farmquest_backend/internal/storage"
)

type LessonService struct {
	repo LessonRepository
}

func NewLessonService(repo LessonRepository) *LessonService {
	return &LessonService{
		repo: repo,
	}
}

func (s *LessonService) GetLessons(ctx context.Context) ([]model.Lesson, error) {
	lessons, err := s.repo.GetLessons(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get lessons: %w", err)
	}
	return lessons, nil
}

func (s *LessonService) GetLesson(ctx context.Context, id string) (*model.Lesson, error) {
	lesson, err := s.repo.GetLesson(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrLessonNotFound
		}
		return nil, fmt.Errorf("failed to get lesson: %w", err)
	}
	return lesson, nil
}

func (s *LessonService) CreateLesson(ctx context.Context, lesson *model.Lesson) (*model.Lesson, error) {
	created, err := s.repo.CreateLesson(ctx, lesson)
	if err != nil {
		return nil, fmt.Errorf("failed to create lesson: %w", err)
	}
	return created, nil
}
