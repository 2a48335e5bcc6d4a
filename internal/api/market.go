package api

import (
	"errors"
	"net/http"

	"farmquest_backend/internal/service"
	"farmquest_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type marketRoutes struct {
	ms service.MarketServiceI
}

func NewMarketRoutes(handler *gin.RouterGroup, ms service.MarketServiceI) {
	r := &marketRoutes{ms: ms}
	h := handler.Group("/market")
	{
		h.GET("", r.GetMarketPrices)
		h.GET("/:id", r.GetMarketPrice)
		h.POST("/transport-request", r.RequestTransport)
	}
}

func (r *marketRoutes) GetMarketPrices(c *gin.Context) {
	log := logger.Logger()

	prices, err := r.ms.GetMarketPrices(c.Request.Context(), c.Query("category"))
	if err != nil {
		log.Error("failed to get market prices", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch market data"})
		return
	}

	c.JSON(http.StatusOK, prices)
}

func (r *marketRoutes) GetMarketPrice(c *gin.Context) {
	log := logger.Logger()

	price, err := r.ms.GetMarketPrice(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrPriceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Market price not found"})
			return
		}
		log.Error("failed to get market price", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch market data"})
		return
	}

	c.JSON(http.StatusOK, price)
}

type TransportRequestBody struct {
	Crop     string `json:"crop"`
	Quantity string `json:"quantity"`
	Location string `json:"location"`
	Notes    string `json:"notes"`
}

func (r *marketRoutes) RequestTransport(c *gin.Context) {
	log := logger.Logger()

	var req TransportRequestBody
	if err := c.ShouldBindJSON(&req); err != nil || req.Crop == "" || req.Quantity == "" || req.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Crop, quantity, and location are required"})
		return
	}

	receipt, err := r.ms.RequestTransport(c.Request.Context(), &service.TransportRequest{
		Crop:     req.Crop,
		Quantity: req.Quantity,
		Location: req.Location,
		Notes:    req.Notes,
	})
	if err != nil {
		log.Error("failed to submit transport request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit transport request"})
		return
	}

	c.JSON(http.StatusOK, receipt)
}
