// Package survey implements the question state machine: per-state validation,
// transitions, reprompts, and the completion protocol that encodes the
// answers and dispatches inference.
package survey

import (
	"time"

	"github.com/cactus-tim/ml-project/internal/predict"
	"github.com/cactus-tim/ml-project/internal/session"
)

// #region messages

// Inbound is one user message as delivered by the transport.
type Inbound struct {
	UserID int64
	Text   string
}

// Reply is one outbound message. Keyboard is a grid of button labels; the
// transport renders it as a reply keyboard. RemoveKeyboard clears any
// keyboard shown earlier.
type Reply struct {
	Text           string
	Keyboard       [][]string
	RemoveKeyboard bool
	Markdown       bool
}

// #endregion messages

// #region outcome

// Outcome is a completed survey: the raw answers and the per-category
// probabilities produced for them.
type Outcome struct {
	PredictionID string
	UserID       int64
	Answers      session.Answers
	Results      predict.Result
	CreatedAt    time.Time
}

// Recorder persists completed outcomes. Recording is best-effort; a recorder
// failure never fails the user's result.
type Recorder interface {
	Record(Outcome) error
}

// #endregion outcome
