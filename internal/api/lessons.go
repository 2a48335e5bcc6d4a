package api

import (
	"errors"
	"net/http"

	"farmquest_backend/internal/service"
	"farmquest_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type lessonRoutes struct {
	ls service.LessonServiceI
}

func NewLessonRoutes(handler *gin.RouterGroup, ls service.LessonServiceI) {
	r := &lessonRoutes{ls: ls}
	h := handler.Group("/lessons")
	{
		h.GET("", r.GetLessons)
		h.GET("/:id", r.GetLesson)
	}
}

func (r *lessonRoutes) GetLessons(c *gin.Context) {
	log := logger.Logger()

	lessons, err := r.ls.GetLessons(c.Request.Context())
	if err != nil {
		log.Error("failed to get lessons", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch lessons"})
		return
	}

	c.JSON(http.StatusOK, lessons)
}

func (r *lessonRoutes) GetLesson(c *gin.Context) {
	log := logger.Logger()

	lesson, err := r.ls.GetLesson(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrLessonNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Lesson not found"})
			return
		}
		log.Error("failed to get lesson", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch lesson"})
		return
	}

	c.JSON(http.StatusOK, lesson)
}
