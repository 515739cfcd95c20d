package services

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/Wodenvase/BharatLedger/models"
)

// Heuristic scoring bounds.
const (
	scoreFloor   = 300
	scoreCeiling = 850
	baseScore    = 600
)

// Scorer maps a FeatureRecord to a score. When a predictor is loaded its
// output is used as-is (rounded, not clamped); otherwise the deterministic
// heuristic applies. The predictor handle is read-only and shared safely
// across concurrent requests.
type Scorer struct {
	predictor Predictor
	log       *logrus.Logger
}

func NewScorer(predictor Predictor, log *logrus.Logger) *Scorer {
	return &Scorer{predictor: predictor, log: log}
}

// Score produces a ScoreResult for the given features. The input record is
// never mutated.
func (s *Scorer) Score(features models.FeatureRecord) models.ScoreResult {
	if s.predictor != nil {
		raw, err := s.predictor.Predict(features.Vector())
		if err == nil {
			return models.ScoreResult{
				Score:    int(math.Round(raw)),
				Features: features,
			}
		}
		s.log.WithError(err).Warn("Model prediction failed, falling back to heuristic")
	}

	return models.ScoreResult{
		Score:    HeuristicScore(features),
		Features: features,
	}
}

// HeuristicScore is the deterministic rule-based score, always available
// as a fallback and always within [300, 850].
func HeuristicScore(f models.FeatureRecord) int {
	score := float64(baseScore)
	score += math.Min(200, math.Floor(f.SavingsRate*2))
	score += math.Max(-100, math.Floor((1-f.ExpenseToIncomeRatio)*50))
	score += math.Max(-50, float64(50-f.NumLoanPayments*10))

	if score < scoreFloor {
		return scoreFloor
	}
	if score > scoreCeiling {
		return scoreCeiling
	}
	return int(score)
}
