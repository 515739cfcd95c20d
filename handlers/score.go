package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Wodenvase/BharatLedger/apperrors"
	"github.com/Wodenvase/BharatLedger/models"
	"github.com/Wodenvase/BharatLedger/services"
)

type ScoreHandler struct {
	Svc *services.ScoreService
	Log *logrus.Logger
}

func NewScoreHandler(svc *services.ScoreService, log *logrus.Logger) *ScoreHandler {
	return &ScoreHandler{Svc: svc, Log: log}
}

// GetScore handles POST /score.
func (h *ScoreHandler) GetScore(c *gin.Context) {
	var req models.ScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing request body. Provide JSON { userEmail: ... }"})
		return
	}
	if req.UserID == "" && req.UserEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId or userEmail required"})
		return
	}

	result, err := h.Svc.ScoreUser(c.Request.Context(), req.UserID, req.UserEmail)
	if err != nil {
		h.respondError(c, err, "score")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"score":    result.Score,
		"features": result.Features,
	})
}

// Simulate handles POST /simulate.
func (h *ScoreHandler) Simulate(c *gin.Context) {
	var req models.SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or malformed request body"})
		return
	}
	if req.UserID == "" && req.UserEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId or userEmail required"})
		return
	}
	req.Simulation.Normalize()

	result, err := h.Svc.SimulateUser(c.Request.Context(), req.UserID, req.UserEmail, req.Simulation)
	if err != nil {
		h.respondError(c, err, "simulate")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"simulatedScore": result.Score,
		"features":       result.Features,
	})
}

func (h *ScoreHandler) respondError(c *gin.Context, err error, op string) {
	appErr := apperrors.FromError(err)
	if appErr.Code == apperrors.CodeInternal {
		h.Log.WithError(err).Errorf("Failed to %s", op)
	}
	c.JSON(appErr.Status(), gin.H{"error": appErr.Message})
}
