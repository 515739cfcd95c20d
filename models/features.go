package models

// FeatureRecord is the fixed set of behavioral features derived from a
// user's ledger. Every field is always present; an empty ledger yields the
// zero value of this struct.
type FeatureRecord struct {
	AvgMonthlyIncome     float64 `json:"avg_monthly_income"`
	AvgMonthlyExpense    float64 `json:"avg_monthly_expense"`
	SavingsRate          float64 `json:"savings_rate"`
	ExpenseToIncomeRatio float64 `json:"expense_to_income_ratio"`
	NumLoanPayments      int     `json:"num_loan_payments"`
	PctSpendOnFood       float64 `json:"pct_spend_on_food"`
	TotalTransactions    int     `json:"total_transactions"`
}

// Vector returns the feature values in the fixed order the predictive
// model was trained on.
func (f FeatureRecord) Vector() []float64 {
	return []float64{
		f.AvgMonthlyIncome,
		f.AvgMonthlyExpense,
		f.SavingsRate,
		f.ExpenseToIncomeRatio,
		float64(f.NumLoanPayments),
		f.PctSpendOnFood,
		float64(f.TotalTransactions),
	}
}

// SimulationRequest describes the what-if perturbations applied to a
// FeatureRecord before rescoring. All fields default to zero; both
// snake_case and camelCase keys are accepted on the wire.
type SimulationRequest struct {
	MissedPayments   int     `json:"missed_payments" binding:"gte=0"`
	IncomeChange     float64 `json:"income_change"`
	SpendingIncrease float64 `json:"spending_increase"`

	MissedPaymentsAlias   *int     `json:"missedPayments,omitempty" binding:"omitempty,gte=0"`
	IncomeChangeAlias     *float64 `json:"incomeChange,omitempty"`
	SpendingIncreaseAlias *float64 `json:"spendingIncrease,omitempty"`
}

// Normalize folds the camelCase aliases into the canonical fields.
func (s *SimulationRequest) Normalize() {
	if s.MissedPaymentsAlias != nil {
		s.MissedPayments = *s.MissedPaymentsAlias
	}
	if s.IncomeChangeAlias != nil {
		s.IncomeChange = *s.IncomeChangeAlias
	}
	if s.SpendingIncreaseAlias != nil {
		s.SpendingIncrease = *s.SpendingIncreaseAlias
	}
}

// ScoreResult pairs a score with the features that produced it.
type ScoreResult struct {
	Score    int           `json:"score"`
	Features FeatureRecord `json:"features"`
}

// ScoreRequest identifies the user to score. One of the two fields is
// required.
type ScoreRequest struct {
	UserID    string `json:"userId"`
	UserEmail string `json:"userEmail"`
}

// SimulateRequest is a ScoreRequest plus the perturbations to apply.
type SimulateRequest struct {
	UserID     string            `json:"userId"`
	UserEmail  string            `json:"userEmail"`
	Simulation SimulationRequest `json:"simulation"`
}
