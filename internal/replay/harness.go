package replay

// #region imports
import (
	"fmt"
	"math"
	"sync"

	"github.com/cactus-tim/ml-project/internal/predict"
	"github.com/cactus-tim/ml-project/internal/registry"
	"github.com/cactus-tim/ml-project/internal/session"
	"github.com/cactus-tim/ml-project/internal/survey"
)

// #endregion

// #region types

// Turn pairs one scripted message with the replies it produced.
type Turn struct {
	Text    string
	Replies []survey.Reply
}

// Result captures a full replay run.
type Result struct {
	Turns     []Turn
	Completed bool
	Results   predict.Result
}

// #endregion types

// #region recorder

type captureRecorder struct {
	mu      sync.Mutex
	results predict.Result
	seen    bool
}

func (r *captureRecorder) Record(o survey.Outcome) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = o.Results
	r.seen = true
	return nil
}

// #endregion recorder

// #region replay

// Replay feeds the fixture's script through a fresh store and machine
// against the given registry.
func Replay(reg *registry.Registry, f *Fixture) Result {
	rec := &captureRecorder{}
	machine := survey.NewMachine(session.NewStore(), reg, rec)

	res := Result{Turns: make([]Turn, 0, len(f.Messages))}
	for _, text := range f.Messages {
		replies := machine.HandleMessage(survey.Inbound{UserID: f.UserID, Text: text})
		res.Turns = append(res.Turns, Turn{Text: text, Replies: replies})
	}

	res.Completed = rec.seen
	res.Results = rec.results
	return res
}

// #endregion replay

// #region check

// Check verifies the run against the fixture's expectations. Probabilities
// must match to two decimals, the precision the dispatcher reports.
func (r Result) Check(f *Fixture) error {
	if f.ExpectComplete && !r.Completed {
		return fmt.Errorf("conversation did not complete the survey")
	}
	if !f.ExpectComplete && r.Completed {
		return fmt.Errorf("conversation completed but was not expected to")
	}
	for name, want := range f.ExpectedResults {
		got, ok := r.Results[name]
		if !ok {
			return fmt.Errorf("missing category %s in results", name)
		}
		if math.Abs(got-want) > 0.005 {
			return fmt.Errorf("category %s: got %.2f, want %.2f", name, got, want)
		}
	}
	return nil
}

// #endregion check
