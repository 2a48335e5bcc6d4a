package api

import (
	"errors"
	"net/http"

	"farmquest_backend/internal/service"
	"farmquest_backend/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-gonic/gin"
)

type challengeRoutes struct {
	cs            service.ChallengeServiceI
	defaultUserID string
}

func NewChallengeRoutes(handler *gin.RouterGroup, cs service.ChallengeServiceI, defaultUserID string) {
	r := &challengeRoutes{cs: cs, defaultUserID: defaultUserID}
	h := handler.Group("/challenges")
	{
		h.GET("", r.GetChallenges)
		h.GET("/:id", r.GetChallenge)
		h.POST("/:id/submit-proof", r.SubmitProof)
	}
}

func (r *challengeRoutes) GetChallenges(c *gin.Context) {
	log := logger.Logger()

	challenges, err := r.cs.GetChallenges(c.Request.Context(), &r.defaultUserID)
	if err != nil {
		log.Error("failed to get challenges", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch challenges"})
		return
	}

	c.JSON(http.StatusOK, challenges)
}

func (r *challengeRoutes) GetChallenge(c *gin.Context) {
	log := logger.Logger()

	challenge, err := r.cs.GetChallenge(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrChallengeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Challenge not found"})
			return
		}
		log.Error("failed to get challenge", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch challenge"})
		return
	}

	c.JSON(http.StatusOK, challenge)
}

type SubmitProofRequest struct {
	Proof string `json:"proof"`
}

func (r *challengeRoutes) SubmitProof(c *gin.Context) {
	log := logger.Logger()

	var req SubmitProofRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Proof == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Proof is required"})
		return
	}

	challenge, err := r.cs.SubmitProof(c.Request.Context(), c.Param("id"), req.Proof)
	if err != nil {
		if errors.Is(err, service.ErrChallengeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Challenge not found"})
			return
		}
		log.Error("failed to submit proof", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit proof"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Proof submitted successfully",
		"challenge": challenge,
	})
}
