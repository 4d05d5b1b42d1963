// Package registry loads the trained model artifact: one feature scaler plus
// the named binary classifiers. The artifact is read once at startup and the
// resulting Registry is immutable, so it is shared by every session without
// locking.
package registry

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// #region vector

// Width is the number of numeric feature columns fed to the classifiers.
// The user identifier is never part of the vector.
const Width = 13

// Vector is a fixed-width feature record in trained column order.
type Vector [Width]float64

// #endregion vector

// #region artifact-schema

// artifact mirrors the JSON model artifact exported from training.
type artifact struct {
	Scaler      *scalerJSON               `json:"scaler"`
	Classifiers map[string]classifierJSON `json:"classifiers"`
}

type scalerJSON struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

type classifierJSON struct {
	Coef      []float64 `json:"coef"`
	Intercept float64   `json:"intercept"`
}

// #endregion artifact-schema

// #region registry-struct

// Registry holds the scaler and classifiers for the process lifetime.
type Registry struct {
	scaler      *Scaler
	classifiers map[string]*Classifier
}

// Scaler returns the shared feature scaler.
func (r *Registry) Scaler() *Scaler {
	return r.scaler
}

// Classifier returns the named classifier, or nil if absent.
func (r *Registry) Classifier(name string) *Classifier {
	return r.classifiers[name]
}

// Names returns all classifier names in stable sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.classifiers))
	for name := range r.classifiers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// #endregion registry-struct

// #region load

// Load reads and validates the model artifact. Any error here is fatal to the
// process: the service must not accept messages without a complete registry.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact %s: %w", path, err)
	}
	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse model artifact %s: %w", path, err)
	}

	if a.Scaler == nil {
		return nil, fmt.Errorf("model artifact %s: missing scaler entry", path)
	}
	scaler, err := newScaler(a.Scaler.Mean, a.Scaler.Scale)
	if err != nil {
		return nil, fmt.Errorf("model artifact %s: %w", path, err)
	}

	if len(a.Classifiers) == 0 {
		return nil, fmt.Errorf("model artifact %s: no classifiers", path)
	}
	classifiers := make(map[string]*Classifier, len(a.Classifiers))
	for name, c := range a.Classifiers {
		model, err := newClassifier(c.Coef, c.Intercept)
		if err != nil {
			return nil, fmt.Errorf("model artifact %s: classifier %s: %w", path, name, err)
		}
		classifiers[name] = model
	}

	return &Registry{scaler: scaler, classifiers: classifiers}, nil
}

// #endregion load
