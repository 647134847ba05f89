package model

import "fmt"

// ModelBenchmark compares one fraud model on the reference dataset.
type ModelBenchmark struct {
	Recall       *float64 `json:"recall,omitempty" yaml:"recall,omitempty"`
	ModelName    string   `json:"model_name" yaml:"model_name"`
	Precision    float64  `json:"precision" yaml:"precision"`
	TrainSeconds float64  `json:"train_seconds" yaml:"train_seconds"`
}

// Validate ensures the ModelBenchmark has valid data.
func (b *ModelBenchmark) Validate() error {
	if b.ModelName == "" {
		return fmt.Errorf("model name is required")
	}

	if b.Precision < 0.0 || b.Precision > 1.0 {
		return fmt.Errorf("precision must be between 0.0 and 1.0, got %.2f", b.Precision)
	}

	if b.Recall != nil && (*b.Recall < 0.0 || *b.Recall > 1.0) {
		return fmt.Errorf("recall must be between 0.0 and 1.0, got %.2f", *b.Recall)
	}

	if b.TrainSeconds <= 0 {
		return fmt.Errorf("train seconds must be positive, got %.2f", b.TrainSeconds)
	}

	return nil
}
