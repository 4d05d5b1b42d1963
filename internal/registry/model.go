package registry

import (
	"fmt"
	"math"
)

// #region scaler

// Scaler applies the trained per-column standardization to a feature vector.
type Scaler struct {
	mean  Vector
	scale Vector
}

func newScaler(mean, scale []float64) (*Scaler, error) {
	if len(mean) != Width || len(scale) != Width {
		return nil, fmt.Errorf("scaler width %d/%d, want %d", len(mean), len(scale), Width)
	}
	s := &Scaler{}
	copy(s.mean[:], mean)
	copy(s.scale[:], scale)
	for i, v := range s.scale {
		if v == 0 {
			return nil, fmt.Errorf("scaler column %d has zero scale", i)
		}
	}
	return s, nil
}

// Transform standardizes every column: (x - mean) / scale.
func (s *Scaler) Transform(v Vector) Vector {
	var out Vector
	for i := range v {
		out[i] = (v[i] - s.mean[i]) / s.scale[i]
	}
	return out
}

// #endregion scaler

// #region classifier

// Classifier is a binary logistic model over a scaled feature vector.
type Classifier struct {
	coef      Vector
	intercept float64
}

func newClassifier(coef []float64, intercept float64) (*Classifier, error) {
	if len(coef) != Width {
		return nil, fmt.Errorf("coefficient width %d, want %d", len(coef), Width)
	}
	c := &Classifier{intercept: intercept}
	copy(c.coef[:], coef)
	return c, nil
}

// PredictProba returns the two-class probability pair; index 1 is the
// positive class.
func (c *Classifier) PredictProba(v Vector) [2]float64 {
	z := c.intercept
	for i := range v {
		z += c.coef[i] * v[i]
	}
	p := 1.0 / (1.0 + math.Exp(-z))
	return [2]float64{1 - p, p}
}

// #endregion classifier
