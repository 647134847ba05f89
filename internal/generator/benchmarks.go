package generator

import (
	"fmt"
	"math"

	"github.com/Veraticus/finsecure-hub/internal/catalog"
	"github.com/Veraticus/finsecure-hub/internal/common"
	"github.com/Veraticus/finsecure-hub/internal/model"
	"github.com/Veraticus/finsecure-hub/internal/randsrc"
)

// MaxBenchmarkJitter caps the perturbation applied to reference metrics.
const MaxBenchmarkJitter = 0.5

type referenceScore struct {
	precision    float64
	recall       float64
	trainSeconds float64
}

// referenceScores is keyed by catalog.MLModel name.
var referenceScores = map[string]referenceScore{
	"Regresión logística": {precision: 0.91, recall: 0.89, trainSeconds: 3},
	"Árbol de decisión":   {precision: 0.86, recall: 0.84, trainSeconds: 1},
	"Random Forest":       {precision: 0.93, recall: 0.91, trainSeconds: 5},
	"KMeans":              {precision: 0.79, recall: 0.74, trainSeconds: 2},
	"XGBoost":             {precision: 0.95, recall: 0.94, trainSeconds: 6},
}

// BenchmarkParams configures the model comparison table.
type BenchmarkParams struct {
	// Jitter perturbs precision and recall by a uniform offset in
	// [-Jitter, +Jitter]. Zero reproduces the reference table exactly.
	Jitter float64
}

// GenerateModelBenchmarks returns the reference benchmark table in catalog
// order. With zero jitter no values are drawn from src.
func GenerateModelBenchmarks(src *randsrc.Source, p BenchmarkParams) ([]model.ModelBenchmark, error) {
	if math.IsNaN(p.Jitter) || p.Jitter < 0 || p.Jitter > MaxBenchmarkJitter {
		return nil, fmt.Errorf("%w: benchmark jitter must be between 0 and %g, got %g",
			common.ErrInvalidParameter, MaxBenchmarkJitter, p.Jitter)
	}

	models := catalog.MustAll(catalog.MLModel)
	rows := make([]model.ModelBenchmark, 0, len(models))
	for _, name := range models {
		ref, ok := referenceScores[name]
		if !ok {
			return nil, fmt.Errorf("%w: no reference score for model %q", common.ErrUnknownCategory, name)
		}

		precision, recall := ref.precision, ref.recall
		if p.Jitter > 0 {
			precision = jitter(src, precision, p.Jitter)
			recall = jitter(src, recall, p.Jitter)
		}

		rows = append(rows, model.ModelBenchmark{
			ModelName:    name,
			Precision:    precision,
			Recall:       &recall,
			TrainSeconds: ref.trainSeconds,
		})
	}
	return rows, nil
}

func jitter(src *randsrc.Source, value, amount float64) float64 {
	offset := (src.Float64()*2 - 1) * amount
	return roundTo(math.Min(1, math.Max(0, value+offset)), 2)
}
