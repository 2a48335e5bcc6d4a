package api

import (
	"net/http"

	"farmquest_backend/internal/service"
	"farmquest_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type alertRoutes struct {
	as service.AlertServiceI
}

func NewAlertRoutes(handler *gin.RouterGroup, as service.AlertServiceI) {
	r := &alertRoutes{as: as}
	h := handler.Group("/alerts")
	{
		h.GET("", r.GetAlerts)
		h.POST("/:id/mark-read", r.MarkAlertRead)
	}
}

func (r *alertRoutes) GetAlerts(c *gin.Context) {
	log := logger.Logger()

	alerts, err := r.as.GetAlerts(c.Request.Context())
	if err != nil {
		log.Error("failed to get alerts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch alerts"})
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (r *alertRoutes) MarkAlertRead(c *gin.Context) {
	log := logger.Logger()

	if err := r.as.MarkAlertRead(c.Request.Context(), c.Param("id")); err != nil {
		log.Error("failed to mark alert as read", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to mark alert as read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Alert marked as read"})
}
