package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Wodenvase/BharatLedger/apperrors"
	"github.com/Wodenvase/BharatLedger/models"
	"github.com/Wodenvase/BharatLedger/services"
)

type UserHandler struct {
	Users *services.UserStore
	Log   *logrus.Logger
}

func NewUserHandler(users *services.UserStore, log *logrus.Logger) *UserHandler {
	return &UserHandler{Users: users, Log: log}
}

// GetProfile handles GET /user/profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := resolveIdentity(c, h.Users, h.Log)
	if !ok {
		return
	}

	user, err := h.Users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, err, "fetch profile")
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile handles PUT /user/profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := resolveIdentity(c, h.Users, h.Log)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}

	user, err := h.Users.UpdateName(c.Request.Context(), userID, req.Name)
	if err != nil {
		h.respondError(c, err, "update profile")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) respondError(c *gin.Context, err error, op string) {
	appErr := apperrors.FromError(err)
	if appErr.Code == apperrors.CodeInternal {
		h.Log.WithError(err).Errorf("Failed to %s", op)
	}
	c.JSON(appErr.Status(), gin.H{"error": appErr.Message})
}
