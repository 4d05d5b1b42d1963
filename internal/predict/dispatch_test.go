package predict

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cactus-tim/ml-project/internal/registry"
)

func loadRegistry(t *testing.T, body string) *registry.Registry {
	t.Helper()
	path := filepath.Join(t.TempDir(), "models.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write artifact: %v", err)
	}
	reg, err := registry.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return reg
}

func vecJSON(v float64) string {
	parts := make([]string, registry.Width)
	for i := range parts {
		parts[i] = "0"
	}
	if v != 0 {
		parts[0] = "1"
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func TestRunReturnsOneProbabilityPerClassifier(t *testing.T) {
	reg := loadRegistry(t, `{
		"scaler": {"mean": `+vecJSON(0)+`, "scale": [1,1,1,1,1,1,1,1,1,1,1,1,1]},
		"classifiers": {
			"Alcohol":  {"coef": `+vecJSON(0)+`, "intercept": 0},
			"Nicotine": {"coef": `+vecJSON(1)+`, "intercept": 1.5},
			"Cannabis": {"coef": `+vecJSON(0)+`, "intercept": -4}
		}
	}`)

	res := Run(registry.Vector{}, reg)
	if len(res) != 3 {
		t.Fatalf("expected 3 entries, got %d: %v", len(res), res)
	}
	for name, p := range res {
		if p < 0 || p > 1 {
			t.Fatalf("%s probability out of range: %f", name, p)
		}
	}
	if res["Alcohol"] != 0.5 {
		t.Fatalf("zero model should round to 0.50, got %f", res["Alcohol"])
	}
	if res["Cannabis"] != 0.02 {
		t.Fatalf("intercept -4 should round to 0.02, got %f", res["Cannabis"])
	}
}

func TestRunDeterministic(t *testing.T) {
	reg := loadRegistry(t, `{
		"scaler": {"mean": `+vecJSON(0)+`, "scale": [1,1,1,1,1,1,1,1,1,1,1,1,1]},
		"classifiers": {"Alcohol": {"coef": `+vecJSON(1)+`, "intercept": 0.25}}
	}`)

	var v registry.Vector
	v[0] = 0.8
	first := Run(v, reg)
	for i := 0; i < 10; i++ {
		if got := Run(v, reg); got["Alcohol"] != first["Alcohol"] {
			t.Fatalf("non-deterministic: %f vs %f", got["Alcohol"], first["Alcohol"])
		}
	}
}
