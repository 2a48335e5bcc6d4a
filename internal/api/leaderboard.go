package api

import (
	"net/http"

	"farmquest_backend/internal/service"
	"farmquest_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type leaderboardRoutes struct {
	us service.UserServiceI
}

func NewLeaderboardRoutes(handler *gin.RouterGroup, us service.UserServiceI) {
	r := &leaderboardRoutes{us: us}
	handler.GET("/leaderboard", r.GetLeaderboard)
}

func (r *leaderboardRoutes) GetLeaderboard(c *gin.Context) {
	log := logger.Logger()

	entries, err := r.us.GetLeaderboard(c.Request.Context())
	if err != nil {
		log.Error("failed to get leaderboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch leaderboard"})
		return
	}

	c.JSON(http.StatusOK, entries)
}
