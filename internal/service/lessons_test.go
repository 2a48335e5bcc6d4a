package service

import (
	"context"
	"testing"

	"farmquest_backend/internal/model"
	"farmquest_backend/internal/storage"

	"github.com/stretchr/testify/assert"
)

func TestLessonService_GetLesson(t *testing.T) {
	store, err := storage.NewMemory()
	assert.NoError(t, err)

	service := NewLessonService(store)
	ctx := context.Background()

	lesson, err := service.GetLesson(ctx, "lesson-1")
	assert.NoError(t, err)
	assert.Equal(t, "Soil Health Basics", lesson.Title)
	assert.Equal(t, 20, lesson.Points)

	_, err = service.GetLesson(ctx, "ghost")
	assert.ErrorIs(t, err, ErrLessonNotFound)
}

func TestLessonService_CreateLesson(t *testing.T) {
	store, err := storage.NewMemory()
	assert.NoError(t, err)

	service := NewLessonService(store)
	ctx := context.Background()

	created, err := service.CreateLesson(ctx, &model.Lesson{
		Title:    "Drip Irrigation",
		Duration: 7,
		Points:   35,
		Category: "water",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	lessons, err := service.GetLessons(ctx)
	assert.NoError(t, err)
	assert.Len(t, lessons, 4)
}
