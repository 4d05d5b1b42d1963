package survey

// #region imports
import (
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cactus-tim/ml-project/internal/encoding"
	"github.com/cactus-tim/ml-project/internal/feature"
	"github.com/cactus-tim/ml-project/internal/predict"
	"github.com/cactus-tim/ml-project/internal/registry"
	"github.com/cactus-tim/ml-project/internal/session"
)

// #endregion

// #region machine-struct

// Machine drives every user's survey in lockstep with the session store.
// One HandleMessage call per inbound message; the store serializes calls for
// the same user, so handlers run over an exclusively owned session.
type Machine struct {
	store    *session.Store
	registry *registry.Registry
	recorder Recorder // optional
}

// NewMachine wires a machine over the shared store and registry. recorder
// may be nil.
func NewMachine(store *session.Store, reg *registry.Registry, recorder Recorder) *Machine {
	return &Machine{store: store, registry: reg, recorder: recorder}
}

// #endregion machine-struct

// #region handle-message

// HandleMessage validates the text against the session's current state,
// mutates the answers, advances the state, and returns the replies to send.
// Malformed input reprompts and leaves the state unchanged. Reaching the
// terminal state retires the session.
func (m *Machine) HandleMessage(in Inbound) []Reply {
	text := strings.TrimSpace(in.Text)

	var replies []Reply
	var done bool
	m.store.Update(in.UserID, func(s *session.Session) {
		replies = m.step(s, text)
		done = s.State == session.Complete
	})
	if done {
		m.store.Remove(in.UserID)
	}
	return replies
}

// #endregion handle-message

// #region step

func (m *Machine) step(s *session.Session, text string) []Reply {
	switch s.State {
	case session.AwaitStart:
		return m.stepStart(s, text)
	case session.AwaitEducation:
		return m.stepEducation(s, text)
	case session.AwaitEthnicity:
		return m.stepEthnicity(s, text)
	case session.AwaitBigFive:
		return m.stepBigFive(s, text)
	case session.AwaitImpulsivity:
		return m.stepImpulsivity(s, text)
	case session.AwaitSensationSeeking:
		return m.stepSensationSeeking(s, text)
	case session.AwaitAlcohol:
		return m.stepYesNo(s, text, 2, session.AwaitNicotine, yesNoReply(promptNicotine),
			func(a *session.Answers, v float64) { a.Alcohol = v })
	case session.AwaitNicotine:
		return m.stepYesNo(s, text, 2, session.AwaitChocolate, yesNoReply(promptChocolate),
			func(a *session.Answers, v float64) { a.Nicotine = v })
	case session.AwaitChocolate:
		return m.stepYesNo(s, text, 1, session.AwaitCaffeine, yesNoReply(promptCaffeine),
			func(a *session.Answers, v float64) { a.Choc = v })
	case session.AwaitCaffeine:
		return m.stepCaffeine(s, text)
	default:
		// Complete sessions are removed before another message can land here.
		return []Reply{greetingReply()}
	}
}

// #endregion step

// #region choice-steps

func (m *Machine) stepStart(s *session.Session, text string) []Reply {
	if text == startButton {
		m.advance(s, session.AwaitEducation)
		return []Reply{educationReply()}
	}
	// "/start" and anything else both get the greeting keyboard.
	return []Reply{greetingReply()}
}

func (m *Machine) stepEducation(s *session.Session, text string) []Reply {
	if _, ok := encoding.EducationCode(text); !ok {
		return []Reply{educationReply()}
	}
	s.Answers.Education = text
	m.advance(s, session.AwaitEthnicity)
	return []Reply{ethnicityReply()}
}

func (m *Machine) stepEthnicity(s *session.Session, text string) []Reply {
	if _, ok := encoding.EthnicityCode(text); !ok {
		return []Reply{ethnicityReply()}
	}
	s.Answers.Ethnicity = text
	m.advance(s, session.AwaitBigFive)
	return []Reply{bigFiveReply(s.Answers.Education, s.Answers.Ethnicity)}
}

// #endregion choice-steps

// #region score-steps

func (m *Machine) stepBigFive(s *session.Session, text string) []Reply {
	scores, err := parseBigFive(text)
	if err != nil {
		// Whole submission rejected; none of the five fields change.
		return []Reply{{Text: promptBigFiveError}}
	}
	s.Answers.Oscore = scores['O']
	s.Answers.Cscore = scores['C']
	s.Answers.Escore = scores['E']
	s.Answers.Ascore = scores['A']
	s.Answers.Nscore = scores['N']
	m.advance(s, session.AwaitImpulsivity)
	return []Reply{impulsivityReply()}
}

func (m *Machine) stepImpulsivity(s *session.Session, text string) []Reply {
	value, err := parseScore(text)
	if err != nil {
		return []Reply{{Text: promptImpulsivityError}}
	}
	s.Answers.Impulsive = value
	m.advance(s, session.AwaitSensationSeeking)
	return []Reply{sensationSeekingReply()}
}

func (m *Machine) stepSensationSeeking(s *session.Session, text string) []Reply {
	value, err := parseScore(text)
	if err != nil {
		return []Reply{{Text: promptSensationSeekingError}}
	}
	s.Answers.SS = value
	m.advance(s, session.AwaitAlcohol)
	return []Reply{yesNoReply(promptAlcohol)}
}

// #endregion score-steps

// #region yes-no-steps

func (m *Machine) stepYesNo(
	s *session.Session,
	text string,
	yesCode float64,
	next session.State,
	nextPrompt Reply,
	set func(*session.Answers, float64),
) []Reply {
	code, err := parseYesNo(text, yesCode)
	if err != nil {
		return []Reply{{Text: promptYesNoError, Keyboard: yesNoKeyboard()}}
	}
	set(&s.Answers, code)
	m.advance(s, next)
	return []Reply{nextPrompt}
}

func (m *Machine) stepCaffeine(s *session.Session, text string) []Reply {
	code, err := parseYesNo(text, 1)
	if err != nil {
		return []Reply{{Text: promptYesNoError, Keyboard: yesNoKeyboard()}}
	}
	s.Answers.Caff = code
	return m.complete(s)
}

// #endregion yes-no-steps

// #region completion

// complete runs the terminal pipeline: encode → predict → render → record.
func (m *Machine) complete(s *session.Session) []Reply {
	vec, err := feature.Encode(s.Answers, m.registry.Scaler())
	if err != nil {
		// Invariant violation: the state machine let an unencodable answer
		// through. Drop the session and ask the user to start over.
		log.Printf("[SURVEY] user=%d encode failed: %v", s.UserID, err)
		m.advance(s, session.Complete)
		return []Reply{{Text: promptRestart, RemoveKeyboard: true}}
	}

	results := predict.Run(vec, m.registry)
	m.advance(s, session.Complete)
	log.Printf("[SURVEY] user=%d survey complete, %d categories scored", s.UserID, len(results))

	if m.recorder != nil {
		outcome := Outcome{
			PredictionID: uuid.New().String(),
			UserID:       s.UserID,
			Answers:      s.Answers,
			Results:      results,
			CreatedAt:    time.Now().UTC(),
		}
		if err := m.recorder.Record(outcome); err != nil {
			log.Printf("[SURVEY] user=%d failed to record outcome: %v", s.UserID, err)
		}
	}

	return []Reply{resultReply(results)}
}

// #endregion completion

// #region advance

func (m *Machine) advance(s *session.Session, next session.State) {
	log.Printf("[SURVEY] user=%d %s → %s", s.UserID, s.State, next)
	s.State = next
}

// #endregion advance
