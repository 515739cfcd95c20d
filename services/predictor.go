package services

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Predictor is the opaque scoring function: a fixed-order feature vector
// in, a raw score out. Implementations must be safe for concurrent reads.
type Predictor interface {
	Predict(features []float64) (float64, error)
}

// LinearModel is a trained linear scoring model loaded from a JSON
// artifact. It is immutable after load and shared across requests.
type LinearModel struct {
	Bias    float64   `json:"bias"`
	Weights []float64 `json:"weights"`
}

// Predict applies the model to the feature vector.
func (m *LinearModel) Predict(features []float64) (float64, error) {
	if len(features) != len(m.Weights) {
		return 0, fmt.Errorf("expected %d features, got %d", len(m.Weights), len(features))
	}
	score := m.Bias
	for i, w := range m.Weights {
		score += w * features[i]
	}
	return score, nil
}

// LoadModel reads the model artifact at path. A missing or unreadable
// artifact is not an error to the caller's request flow: the service runs
// heuristic-only, so this logs and returns nil.
func LoadModel(path string, log *logrus.Logger) Predictor {
	if path == "" {
		log.Info("MODEL_PATH not set, scoring with heuristic strategy")
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.WithError(err).Warn("Failed to read model artifact, falling back to heuristic")
		return nil
	}

	var model LinearModel
	if err := json.Unmarshal(data, &model); err != nil {
		log.WithError(err).Warn("Failed to parse model artifact, falling back to heuristic")
		return nil
	}
	if len(model.Weights) == 0 {
		log.Warn("Model artifact has no weights, falling back to heuristic")
		return nil
	}

	log.WithField("path", path).Info("Scoring model loaded")
	return &model
}
