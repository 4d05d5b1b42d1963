// Package feature turns a completed answer set into the normalized vector the
// classifiers consume. The survey machine guarantees completeness before
// calling in; an encoding failure here is an invariant violation, not user
// error.
package feature

import (
	"errors"
	"fmt"

	"github.com/cactus-tim/ml-project/internal/encoding"
	"github.com/cactus-tim/ml-project/internal/registry"
	"github.com/cactus-tim/ml-project/internal/session"
)

// #region columns

// Columns is the trained column order. Index positions here define the
// meaning of every registry.Vector in the system.
var Columns = [registry.Width]string{
	"Education", "Ethnicity",
	"Nscore", "Escore", "Oscore", "Ascore", "Cscore",
	"Impulsive", "SS",
	"Alcohol", "Caff", "Choc", "Nicotine",
}

// #endregion columns

// #region errors

// ErrUnknownLabel reports a categorical answer absent from its table.
var ErrUnknownLabel = errors.New("label missing from encoding table")

// ErrNoScaler reports an absent scaler; only possible through miswiring.
var ErrNoScaler = errors.New("scaler not loaded")

// #endregion errors

// #region raw

// Raw assembles the unscaled vector: categorical labels mapped through the
// tables, numeric answers placed in trained column order.
func Raw(a session.Answers) (registry.Vector, error) {
	edu, ok := encoding.EducationCode(a.Education)
	if !ok {
		return registry.Vector{}, fmt.Errorf("education %q: %w", a.Education, ErrUnknownLabel)
	}
	eth, ok := encoding.EthnicityCode(a.Ethnicity)
	if !ok {
		return registry.Vector{}, fmt.Errorf("ethnicity %q: %w", a.Ethnicity, ErrUnknownLabel)
	}

	return registry.Vector{
		edu,
		eth,
		float64(a.Nscore),
		float64(a.Escore),
		float64(a.Oscore),
		float64(a.Ascore),
		float64(a.Cscore),
		float64(a.Impulsive),
		float64(a.SS),
		a.Alcohol,
		a.Caff,
		a.Choc,
		a.Nicotine,
	}, nil
}

// #endregion raw

// #region encode

// Encode produces the scaled vector fed to the classifiers. All 13 columns
// are standardized; the user identifier is never part of the vector.
func Encode(a session.Answers, scaler *registry.Scaler) (registry.Vector, error) {
	if scaler == nil {
		return registry.Vector{}, ErrNoScaler
	}
	raw, err := Raw(a)
	if err != nil {
		return registry.Vector{}, err
	}
	return scaler.Transform(raw), nil
}

// #endregion encode
