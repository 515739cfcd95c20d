package routes

import (
	"database/sql"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Wodenvase/BharatLedger/handlers"
	"github.com/Wodenvase/BharatLedger/services"
)

// SetupScoreRoutes wires the scoring and simulation endpoints.
func SetupScoreRoutes(rg *gin.RouterGroup, db *sql.DB, predictor services.Predictor, log *logrus.Logger) {
	users := services.NewUserStore(db)
	transactions := services.NewTransactionStore(db)
	scorer := services.NewScorer(predictor, log)
	svc := services.NewScoreService(users, transactions, scorer, log)

	h := handlers.NewScoreHandler(svc, log)

	rg.POST("/score", h.GetScore)
	rg.POST("/simulate", h.Simulate)
}

// SetupTransactionRoutes wires the ledger listing and CSV import
// endpoints.
func SetupTransactionRoutes(rg *gin.RouterGroup, db *sql.DB, log *logrus.Logger) {
	users := services.NewUserStore(db)
	accounts := services.NewAccountStore(db)
	transactions := services.NewTransactionStore(db)

	txHandler := handlers.NewTransactionHandler(users, transactions, log)
	uploadHandler := handlers.NewUploadHandler(users, accounts, transactions, log)

	rg.GET("/transactions", txHandler.List)
	rg.POST("/upload", uploadHandler.Upload)
}

// SetupUserRoutes wires the profile endpoints.
func SetupUserRoutes(rg *gin.RouterGroup, db *sql.DB, log *logrus.Logger) {
	users := services.NewUserStore(db)
	h := handlers.NewUserHandler(users, log)

	rg.GET("/user/profile", h.GetProfile)
	rg.PUT("/user/profile", h.UpdateProfile)
}

// SetupDashboardRoutes wires the dashboard overview endpoint.
func SetupDashboardRoutes(rg *gin.RouterGroup, db *sql.DB, predictor services.Predictor, log *logrus.Logger) {
	users := services.NewUserStore(db)
	accounts := services.NewAccountStore(db)
	transactions := services.NewTransactionStore(db)
	scorer := services.NewScorer(predictor, log)
	svc := services.NewScoreService(users, transactions, scorer, log)

	h := handlers.NewDashboardHandler(users, accounts, transactions, svc, log)

	rg.GET("/dashboard/overview", h.Overview)
}
