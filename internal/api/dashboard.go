package api

import (
	"net/http"

	"farmquest_backend/internal/service"
	"farmquest_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type dashboardRoutes struct {
	ds            service.DashboardServiceI
	defaultUserID string
}

func NewDashboardRoutes(handler *gin.RouterGroup, ds service.DashboardServiceI, defaultUserID string) {
	r := &dashboardRoutes{ds: ds, defaultUserID: defaultUserID}
	handler.GET("/dashboard", r.GetDashboard)
}

func (r *dashboardRoutes) GetDashboard(c *gin.Context) {
	log := logger.Logger()

	dashboard, err := r.ds.GetDashboard(c.Request.Context(), r.defaultUserID)
	if err != nil {
		log.Error("failed to compose dashboard", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch dashboard data"})
		return
	}

	c.JSON(http.StatusOK, dashboard)
}
