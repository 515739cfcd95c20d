package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeModelFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadModel(t *testing.T) {
	log := quietLogger()

	t.Run("empty path", func(t *testing.T) {
		assert.Nil(t, LoadModel("", log))
	})

	t.Run("missing file", func(t *testing.T) {
		assert.Nil(t, LoadModel(filepath.Join(t.TempDir(), "absent.json"), log))
	})

	t.Run("malformed json", func(t *testing.T) {
		assert.Nil(t, LoadModel(writeModelFile(t, "{not json"), log))
	})

	t.Run("no weights", func(t *testing.T) {
		assert.Nil(t, LoadModel(writeModelFile(t, `{"bias": 500}`), log))
	})

	t.Run("valid artifact", func(t *testing.T) {
		path := writeModelFile(t, `{"bias": 500, "weights": [0.01, -0.02, 1, 0, -5, 0, 0.5]}`)
		p := LoadModel(path, log)
		require.NotNil(t, p)

		got, err := p.Predict([]float64{1000, 100, 10, 0.1, 1, 20, 4})
		require.NoError(t, err)
		assert.InDelta(t, 500+10-2+10-5+2, got, 1e-9)
	})
}

func TestLinearModelPredictLengthMismatch(t *testing.T) {
	m := &LinearModel{Weights: []float64{1, 2, 3}}
	_, err := m.Predict([]float64{1})
	assert.Error(t, err)
}
