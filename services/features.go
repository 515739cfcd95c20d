package services

import (
	"math"
	"strings"

	"github.com/Wodenvase/BharatLedger/models"
)

// Keyword sets matched case-insensitively against transaction
// descriptions.
var (
	loanKeywords = []string{"emi", "loan", "equated", "instalment", "installment"}
	foodKeywords = []string{"zomato", "swiggy", "dominos", "restaurant", "cafe", "mcdonald", "food"}
)

// ExtractFeatures derives the FeatureRecord from a normalized ledger. An
// empty ledger returns the zero record. Transactions in the "unknown"
// month bucket are skipped when averaging monthly income and expense but
// still count toward every total.
func ExtractFeatures(ledger []models.Transaction) models.FeatureRecord {
	if len(ledger) == 0 {
		return models.FeatureRecord{}
	}

	incomeByMonth := make(map[string]float64)
	expenseByMonth := make(map[string]float64)
	var totalDebit, foodDebit float64
	loanPayments := 0

	for _, tx := range ledger {
		if tx.Month != models.MonthUnknown {
			switch tx.Type {
			case models.TypeCredit:
				incomeByMonth[tx.Month] += tx.Amount
			case models.TypeDebit:
				// Debit rows may carry either sign depending on the
				// source; expense magnitudes are what the average means.
				expenseByMonth[tx.Month] += math.Abs(tx.Amount)
			}
		}

		desc := strings.ToLower(tx.Description)
		if desc != "" && containsAny(desc, loanKeywords) {
			loanPayments++
		}

		if tx.Type == models.TypeDebit {
			abs := math.Abs(tx.Amount)
			totalDebit += abs
			if desc != "" && containsAny(desc, foodKeywords) {
				foodDebit += abs
			}
		}
	}

	avgIncome := meanOfSums(incomeByMonth)
	avgExpense := meanOfSums(expenseByMonth)

	return models.FeatureRecord{
		AvgMonthlyIncome:     avgIncome,
		AvgMonthlyExpense:    avgExpense,
		SavingsRate:          savingsRate(avgIncome, avgExpense),
		ExpenseToIncomeRatio: safeDiv(avgExpense, avgIncome),
		NumLoanPayments:      loanPayments,
		PctSpendOnFood:       safeDiv(foodDebit, totalDebit) * 100.0,
		TotalTransactions:    len(ledger),
	}
}

func savingsRate(avgIncome, avgExpense float64) float64 {
	return safeDiv(avgIncome-avgExpense, avgIncome) * 100.0
}

// safeDiv returns a/b with a zero denominator yielding 0.0 instead of an
// infinity.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0.0
	}
	return a / b
}

func meanOfSums(byMonth map[string]float64) float64 {
	if len(byMonth) == 0 {
		return 0.0
	}
	var total float64
	for _, sum := range byMonth {
		total += sum
	}
	return total / float64(len(byMonth))
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
