package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Wodenvase/BharatLedger/apperrors"
	"github.com/Wodenvase/BharatLedger/services"
)

type TransactionHandler struct {
	Users        *services.UserStore
	Transactions *services.TransactionStore
	Log          *logrus.Logger
}

func NewTransactionHandler(users *services.UserStore, transactions *services.TransactionStore, log *logrus.Logger) *TransactionHandler {
	return &TransactionHandler{Users: users, Transactions: transactions, Log: log}
}

// List handles GET /transactions.
func (h *TransactionHandler) List(c *gin.Context) {
	userID, ok := resolveIdentity(c, h.Users, h.Log)
	if !ok {
		return
	}

	filter := services.ListFilter{
		Type:     c.Query("type"),
		Category: c.Query("category"),
		Limit:    50,
	}
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		filter.Limit = v
	}
	if v, err := strconv.Atoi(c.Query("offset")); err == nil && v >= 0 {
		filter.Offset = v
	}
	if ts, ok := services.ParseLedgerDate(c.Query("startDate")); ok {
		filter.StartDate = &ts
	}
	if ts, ok := services.ParseLedgerDate(c.Query("endDate")); ok {
		filter.EndDate = &ts
	}

	result, err := h.Transactions.List(c.Request.Context(), userID, filter)
	if err != nil {
		h.Log.WithError(err).Error("Failed to list transactions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// resolveIdentity reads the userId/userEmail query parameters and resolves
// them against the user store, writing the error response itself on
// failure.
func resolveIdentity(c *gin.Context, users *services.UserStore, log *logrus.Logger) (string, bool) {
	userID := c.Query("userId")
	userEmail := c.Query("userEmail")
	if userID == "" && userEmail == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userId or userEmail required"})
		return "", false
	}

	id, err := users.ResolveID(c.Request.Context(), userID, userEmail)
	if err != nil {
		appErr := apperrors.FromError(err)
		if appErr.Code == apperrors.CodeInternal {
			log.WithError(err).Error("Failed to resolve user")
		}
		c.JSON(appErr.Status(), gin.H{"error": appErr.Message})
		return "", false
	}
	return id, true
}
