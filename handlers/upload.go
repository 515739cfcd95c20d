package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Wodenvase/BharatLedger/services"
)

type UploadHandler struct {
	Users        *services.UserStore
	Accounts     *services.AccountStore
	Transactions *services.TransactionStore
	Log          *logrus.Logger
}

func NewUploadHandler(users *services.UserStore, accounts *services.AccountStore, transactions *services.TransactionStore, log *logrus.Logger) *UploadHandler {
	return &UploadHandler{Users: users, Accounts: accounts, Transactions: transactions, Log: log}
}

// Upload handles POST /upload: a multipart CSV of transactions imported
// into the given account.
func (h *UploadHandler) Upload(c *gin.Context) {
	userID, ok := resolveIdentity(c, h.Users, h.Log)
	if !ok {
		return
	}

	accountID := c.PostForm("accountId")
	if accountID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Account ID is required"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only CSV files are supported"})
		return
	}

	owned, err := h.Accounts.BelongsTo(c.Request.Context(), accountID, userID)
	if err != nil {
		h.Log.WithError(err).Error("Failed to check account ownership")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if !owned {
		c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}
	defer file.Close()

	records, err := services.ParseCSV(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	inserted, err := h.Transactions.BulkInsert(c.Request.Context(), userID, accountID, records)
	if err != nil {
		h.Log.WithError(err).Error("Failed to insert transactions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.Log.WithFields(logrus.Fields{"user_id": userID, "inserted": inserted}).Info("CSV import complete")
	c.JSON(http.StatusOK, gin.H{"inserted": inserted})
}
