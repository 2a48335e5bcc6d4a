package api

import (
	"errors"
	"net/http"

	"farmquest_backend/internal/service"
	"farmquest_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type rewardRoutes struct {
	rs            service.RewardServiceI
	defaultUserID string
}

func NewRewardRoutes(handler *gin.RouterGroup, rs service.RewardServiceI, defaultUserID string) {
	r := &rewardRoutes{rs: rs, defaultUserID: defaultUserID}
	h := handler.Group("/rewards")
	{
		h.GET("", r.GetRewards)
		h.POST("/:id/redeem", r.RedeemReward)
	}
}

func (r *rewardRoutes) GetRewards(c *gin.Context) {
	log := logger.Logger()

	rewards, err := r.rs.GetRewards(c.Request.Context())
	if err != nil {
		log.Error("failed to get rewards", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch rewards"})
		return
	}

	c.JSON(http.StatusOK, rewards)
}

// Rejection reasons shown to the user, keyed by domain error. Every
// redemption failure is a 400 with its reason; none are retried.
var redeemRejections = []struct {
	err     error
	message string
}{
	{service.ErrRewardNotFound, "Reward not found"},
	{service.ErrUserNotFound, "User not found"},
	{service.ErrRewardLocked, "Reward is not unlocked yet"},
	{service.ErrRewardAlreadyRedeemed, "Reward already redeemed"},
	{service.ErrInsufficientPoints, "Insufficient points"},
}

func (r *rewardRoutes) RedeemReward(c *gin.Context) {
	log := logger.Logger()

	err := r.rs.RedeemReward(c.Request.Context(), c.Param("id"), r.defaultUserID)
	if err != nil {
		for _, rejection := range redeemRejections {
			if errors.Is(err, rejection.err) {
				c.JSON(http.StatusBadRequest, gin.H{"message": rejection.message})
				return
			}
		}
		log.Error("failed to redeem reward", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to redeem reward"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reward redeemed successfully!"})
}
