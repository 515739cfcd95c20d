package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Wodenvase/BharatLedger/models"
)

// ScoreService runs the scoring pipeline: resolve identity, fetch the
// ledger, normalize, extract features, optionally apply a simulation, and
// score. Each request is independent; the service holds no per-request
// state.
type ScoreService struct {
	users        *UserStore
	transactions *TransactionStore
	scorer       *Scorer
	log          *logrus.Logger
}

func NewScoreService(users *UserStore, transactions *TransactionStore, scorer *Scorer, log *logrus.Logger) *ScoreService {
	return &ScoreService{
		users:        users,
		transactions: transactions,
		scorer:       scorer,
		log:          log,
	}
}

// ScoreUser scores a user's current ledger.
func (s *ScoreService) ScoreUser(ctx context.Context, userID, userEmail string) (*models.ScoreResult, error) {
	features, err := s.deriveFeatures(ctx, userID, userEmail)
	if err != nil {
		return nil, err
	}

	result := s.scorer.Score(*features)
	s.log.WithFields(logrus.Fields{
		"score":        result.Score,
		"transactions": features.TotalTransactions,
	}).Info("Score computed")
	return &result, nil
}

// SimulateUser rescores a user's ledger under the requested perturbations.
func (s *ScoreService) SimulateUser(ctx context.Context, userID, userEmail string, sim models.SimulationRequest) (*models.ScoreResult, error) {
	features, err := s.deriveFeatures(ctx, userID, userEmail)
	if err != nil {
		return nil, err
	}

	adjusted := ApplySimulation(*features, sim)
	result := s.scorer.Score(adjusted)
	s.log.WithFields(logrus.Fields{
		"score":           result.Score,
		"missed_payments": sim.MissedPayments,
	}).Info("Simulated score computed")
	return &result, nil
}

func (s *ScoreService) deriveFeatures(ctx context.Context, userID, userEmail string) (*models.FeatureRecord, error) {
	id, err := s.users.ResolveID(ctx, userID, userEmail)
	if err != nil {
		return nil, err
	}

	ledger, err := s.transactions.FetchLedger(ctx, id)
	if err != nil {
		return nil, err
	}

	normalized := NormalizeLedger(ledger)
	features := ExtractFeatures(normalized)
	return &features, nil
}
