package services

import (
	"math"

	"github.com/Wodenvase/BharatLedger/models"
)

// ApplySimulation returns a copy of base with the requested perturbations
// applied and the derived ratios recomputed. Food spend percentage and the
// transaction count pass through: the simulation does not model
// transaction-level redistribution. An all-zero request returns base
// unchanged.
func ApplySimulation(base models.FeatureRecord, sim models.SimulationRequest) models.FeatureRecord {
	adjusted := base

	adjusted.AvgMonthlyIncome = math.Max(0, base.AvgMonthlyIncome+sim.IncomeChange)
	adjusted.NumLoanPayments = base.NumLoanPayments + sim.MissedPayments
	adjusted.AvgMonthlyExpense = base.AvgMonthlyExpense * (1 + sim.SpendingIncrease/100.0)

	adjusted.SavingsRate = savingsRate(adjusted.AvgMonthlyIncome, adjusted.AvgMonthlyExpense)
	adjusted.ExpenseToIncomeRatio = safeDiv(adjusted.AvgMonthlyExpense, adjusted.AvgMonthlyIncome)

	return adjusted
}
