package services

import (
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/Wodenvase/BharatLedger/models"
)

type stubPredictor struct {
	out float64
	err error
}

func (s stubPredictor) Predict(_ []float64) (float64, error) {
	return s.out, s.err
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestHeuristicScore(t *testing.T) {
	tests := []struct {
		name     string
		features models.FeatureRecord
		want     int
	}{
		{
			name:     "empty features",
			features: models.FeatureRecord{},
			// 600 + min(200, 0) + max(-100, 50) + max(-50, 50)
			want: 700,
		},
		{
			name: "healthy profile clamps at ceiling",
			features: models.FeatureRecord{
				SavingsRate:          97.5,
				ExpenseToIncomeRatio: 0.025,
				NumLoanPayments:      1,
			},
			// 600 + 195 + 48 + 40 = 883, clamped
			want: 850,
		},
		{
			name: "many loans hit the penalty cap",
			features: models.FeatureRecord{
				SavingsRate:          10,
				ExpenseToIncomeRatio: 0.5,
				NumLoanPayments:      20,
			},
			// 600 + 20 + 25 - 50
			want: 595,
		},
		{
			name: "deep overspend clamps at floor",
			features: models.FeatureRecord{
				SavingsRate:          -200,
				ExpenseToIncomeRatio: 12,
				NumLoanPayments:      30,
			},
			want: 300,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HeuristicScore(tt.features))
		})
	}
}

func TestScoreUsesPredictorWhenLoaded(t *testing.T) {
	scorer := NewScorer(stubPredictor{out: 712.6}, quietLogger())
	got := scorer.Score(models.FeatureRecord{AvgMonthlyIncome: 1000})

	assert.Equal(t, 713, got.Score)
	assert.Equal(t, 1000.0, got.Features.AvgMonthlyIncome)
}

func TestScoreModelOutputNotClamped(t *testing.T) {
	scorer := NewScorer(stubPredictor{out: 901.2}, quietLogger())
	assert.Equal(t, 901, scorer.Score(models.FeatureRecord{}).Score)
}

func TestScoreFallsBackOnPredictorError(t *testing.T) {
	scorer := NewScorer(stubPredictor{err: errors.New("boom")}, quietLogger())
	got := scorer.Score(models.FeatureRecord{})
	assert.Equal(t, HeuristicScore(models.FeatureRecord{}), got.Score)
}

func TestScoreNilPredictorUsesHeuristic(t *testing.T) {
	scorer := NewScorer(nil, quietLogger())
	features := models.FeatureRecord{SavingsRate: 50}
	assert.Equal(t, HeuristicScore(features), scorer.Score(features).Score)
}
