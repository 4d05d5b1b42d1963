package feature

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cactus-tim/ml-project/internal/registry"
)

// testRegistry loads a registry whose scaler is mean=1 scale=2 on every
// column, with a single zero-weight classifier.
func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	ones := make([]string, registry.Width)
	twos := make([]string, registry.Width)
	zeros := make([]string, registry.Width)
	for i := 0; i < registry.Width; i++ {
		ones[i] = "1"
		twos[i] = "2"
		zeros[i] = "0"
	}

	body := `{
		"scaler": {"mean": [` + strings.Join(ones, ",") + `], "scale": [` + strings.Join(twos, ",") + `]},
		"classifiers": {"Alcohol": {"coef": [` + strings.Join(zeros, ",") + `], "intercept": 0}}
	}`

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
