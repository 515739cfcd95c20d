package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Wodenvase/BharatLedger/models"
	"github.com/Wodenvase/BharatLedger/services"
)

type DashboardHandler struct {
	Users        *services.UserStore
	Accounts     *services.AccountStore
	Transactions *services.TransactionStore
	Svc          *services.ScoreService
	Log          *logrus.Logger
}

func NewDashboardHandler(users *services.UserStore, accounts *services.AccountStore, transactions *services.TransactionStore, svc *services.ScoreService, log *logrus.Logger) *DashboardHandler {
	return &DashboardHandler{
		Users:        users,
		Accounts:     accounts,
		Transactions: transactions,
		Svc:          svc,
		Log:          log,
	}
}

// Overview handles GET /dashboard/overview: current-month income and
// expenses, the credit score from the shared pipeline, and recent
// activity.
func (h *DashboardHandler) Overview(c *gin.Context) {
	userID, ok := resolveIdentity(c, h.Users, h.Log)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	total, err := h.Transactions.CountByUser(ctx, userID)
	if err != nil {
		h.Log.WithError(err).Error("Failed to count transactions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Onboarding fast path: nothing imported yet.
	if total == 0 {
		c.JSON(http.StatusOK, gin.H{
			"creditScore":        0,
			"monthlyIncome":      0,
			"monthlyExpenses":    0,
			"savingsRate":        0,
			"connectedAccounts":  0,
			"recentTransactions": []models.Transaction{},
			"hasTransactions":    false,
		})
		return
	}

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	endOfMonth := startOfMonth.AddDate(0, 1, 0).Add(-time.Nanosecond)

	monthTxs, err := h.Transactions.FetchMonth(ctx, userID, startOfMonth, endOfMonth)
	if err != nil {
		h.Log.WithError(err).Error("Failed to fetch monthly transactions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var monthlyIncome, monthlyExpenses float64
	for _, tx := range monthTxs {
		switch tx.Type {
		case models.TypeCredit:
			monthlyIncome += tx.Amount
		case models.TypeDebit:
			if tx.Amount < 0 {
				monthlyExpenses -= tx.Amount
			} else {
				monthlyExpenses += tx.Amount
			}
		}
	}
	savingsRate := 0.0
	if monthlyIncome > 0 {
		savingsRate = (monthlyIncome - monthlyExpenses) / monthlyIncome * 100
	}

	connectedAccounts, err := h.Accounts.CountConnected(ctx, userID)
	if err != nil {
		h.Log.WithError(err).Error("Failed to count accounts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	result, err := h.Svc.ScoreUser(ctx, userID, "")
	if err != nil {
		h.Log.WithError(err).Error("Failed to score user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	recent := monthTxs
	if len(recent) > 10 {
		recent = recent[:10]
	}

	c.JSON(http.StatusOK, gin.H{
		"creditScore":        result.Score,
		"monthlyIncome":      monthlyIncome,
		"monthlyExpenses":    monthlyExpenses,
		"savingsRate":        savingsRate,
		"connectedAccounts":  connectedAccounts,
		"recentTransactions": recent,
		"hasTransactions":    true,
	})
}
