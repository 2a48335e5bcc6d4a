package api

import (
	"net/http"

	"farmquest_backend/internal/model"
	"farmquest_backend/internal/service"
	"farmquest_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type userRoutes struct {
	us service.UserServiceI
}

func NewUserRoutes(handler *gin.RouterGroup, us service.UserServiceI) {
	r := &userRoutes{us: us}
	h := handler.Group("/users")
	{
		h.POST("", r.RegisterUser)
	}
}

type RegisterUserRequest struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

func (r *userRoutes) RegisterUser(c *gin.Context) {
	log := logger.Logger()

	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Name == "" || req.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username, name, and location are required"})
		return
	}

	user, err := r.us.RegisterUser(c.Request.Context(), &model.User{
		Username: req.Username,
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		log.Error("failed to register user", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}
