// Package replay runs recorded conversations through the survey pipeline
// entirely in memory, for regression checks against known outcomes.
package replay

import (
	"encoding/json"
	"fmt"
	"os"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a conversation fixture.
type Fixture struct {
	Description string `json:"description"`
	UserID      int64  `json:"user_id"`
	// Messages are fed to the machine in order, as if typed by the user.
	Messages []string `json:"messages"`
	// ExpectedResults, when non-empty, pins the final per-category
	// probabilities.
	ExpectedResults map[string]float64 `json:"expected_results,omitempty"`
	// ExpectComplete asserts whether the conversation must finish the survey.
	ExpectComplete bool `json:"expect_complete"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if len(f.Messages) == 0 {
		return nil, fmt.Errorf("fixture %s: no messages", path)
	}
	return &f, nil
}

// #endregion fixture-loader
