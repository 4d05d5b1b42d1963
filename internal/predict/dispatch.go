// Package predict fans a scaled feature vector out to every classifier in
// the registry. Pure and side-effect-free; safe to call from any number of
// sessions against the same shared registry.
package predict

import (
	"math"

	"github.com/cactus-tim/ml-project/internal/registry"
)

// #region result

// Result maps category name to positive-class probability, rounded to two
// decimals for presentation.
type Result map[string]float64

// #endregion result

// #region run

// Run calls every registered classifier with the vector and collects the
// positive-class probabilities keyed by category name.
func Run(v registry.Vector, reg *registry.Registry) Result {
	out := make(Result, len(reg.Names()))
	for _, name := range reg.Names() {
		pair := reg.Classifier(name).PredictProba(v)
		out[name] = round2(pair[1])
	}
	return out
}

func round2(p float64) float64 {
	return math.Round(p*100) / 100
}

// #endregion run
