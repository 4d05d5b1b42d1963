package registry

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeArtifact(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "models.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	return path
}

func flat(n int, v float64) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = "0"
	}
	if v != 0 {
		for i := range parts {
			parts[i] = "1"
		}
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func validArtifact() string {
	return `{
		"scaler": {"mean": ` + flat(Width, 0) + `, "scale": ` + flat(Width, 1) + `},
		"classifiers": {
			"Alcohol": {"coef": ` + flat(Width, 1) + `, "intercept": 0.5},
			"Nicotine": {"coef": ` + flat(Width, 1) + `, "intercept": -0.5}
		}
	}`
}

func TestLoadValidArtifact(t *testing.T) {
	reg, err := Load(writeArtifact(t, validArtifact()))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	names := reg.Names()
	if len(names) != 2 || names[0] != "Alcohol" || names[1] != "Nicotine" {
		t.Fatalf("Names = %v", names)
	}
	if reg.Scaler() == nil {
		t.Fatal("expected scaler")
	}
	if reg.Classifier("Alcohol") == nil {
		t.Fatal("expected Alcohol classifier")
	}
	if reg.Classifier("scaler") != nil {
		t.Fatal("scaler must not appear as a classifier")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("expected error for missing artifact")
	}
}

func TestLoadRejectsCorruptArtifact(t *testing.T) {
	if _, err := Load(writeArtifact(t, "{not json")); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadRejectsMissingScaler(t *testing.T) {
	body := `{"classifiers": {"Alcohol": {"coef": ` + flat(Width, 1) + `, "intercept": 0}}}`
	if _, err := Load(writeArtifact(t, body)); err == nil {
		t.Fatal("expected error for missing scaler")
	}
}

func TestLoadRejectsWrongWidth(t *testing.T) {
	body := `{
		"scaler": {"mean": [0,0], "scale": [1,1]},
		"classifiers": {"Alcohol": {"coef": ` + flat(Width, 1) + `, "intercept": 0}}
	}`
	if _, err := Load(writeArtifact(t, body)); err == nil {
		t.Fatal("expected error for short scaler")
	}
}

func TestLoadRejectsNoClassifiers(t *testing.T) {
	body := `{"scaler": {"mean": ` + flat(Width, 0) + `, "scale": ` + flat(Width, 1) + `}}`
	if _, err := Load(writeArtifact(t, body)); err == nil {
		t.Fatal("expected error for empty classifier set")
	}
}

func TestScalerTransform(t *testing.T) {
	mean := make([]float64, Width)
	scale := make([]float64, Width)
	for i := range mean {
		mean[i] = 1
		scale[i] = 2
	}
	s, err := newScaler(mean, scale)
	if err != nil {
		t.Fatalf("newScaler: %v", err)
	}

	var v Vector
	for i := range v {
		v[i] = 5
	}
	out := s.Transform(v)
	for i, x := range out {
		if x != 2 {
			t.Fatalf("column %d: got %f, want 2", i, x)
		}
	}
}

func TestScalerRejectsZeroScale(t *testing.T) {
	mean := make([]float64, Width)
	scale := make([]float64, Width)
	scale[4] = 0
	if _, err := newScaler(mean, scale); err == nil {
		t.Fatal("expected error for zero scale column")
	}
}

func TestPredictProba(t *testing.T) {
	coef := make([]float64, Width)
	c, err := newClassifier(coef, 0)
	if err != nil {
		t.Fatalf("newClassifier: %v", err)
	}

	p := c.PredictProba(Vector{})
	if math.Abs(p[1]-0.5) > 1e-9 {
		t.Fatalf("zero model should give 0.5, got %f", p[1])
	}
	if math.Abs(p[0]+p[1]-1) > 1e-9 {
		t.Fatalf("probabilities must sum to 1, got %f", p[0]+p[1])
	}

	// Positive weight on a positive feature raises the positive class.
	coef[0] = 3
	c, _ = newClassifier(coef, 0)
	var v Vector
	v[0] = 2
	hi := c.PredictProba(v)
	if hi[1] <= 0.5 {
		t.Fatalf("expected probability above 0.5, got %f", hi[1])
	}
	if hi[1] < 0 || hi[1] > 1 {
		t.Fatalf("probability out of range: %f", hi[1])
	}

	// Deterministic for a fixed input.
	again := c.PredictProba(v)
	if again != hi {
		t.Fatalf("PredictProba not deterministic: %v vs %v", again, hi)
	}
}
