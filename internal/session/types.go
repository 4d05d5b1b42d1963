// Package session owns the per-user survey record and the concurrent store
// that holds it. Each session is owned exclusively by its user key; the
// survey machine is the only mutator.
package session

import "time"

// #region state

// State is the survey step a session is waiting on.
type State int

const (
	AwaitStart State = iota
	AwaitEducation
	AwaitEthnicity
	AwaitBigFive
	AwaitImpulsivity
	AwaitSensationSeeking
	AwaitAlcohol
	AwaitNicotine
	AwaitChocolate
	AwaitCaffeine
	Complete
)

var stateNames = map[State]string{
	AwaitStart:            "await_start",
	AwaitEducation:        "await_education",
	AwaitEthnicity:        "await_ethnicity",
	AwaitBigFive:          "await_big_five",
	AwaitImpulsivity:      "await_impulsivity",
	AwaitSensationSeeking: "await_sensation_seeking",
	AwaitAlcohol:          "await_alcohol",
	AwaitNicotine:         "await_nicotine",
	AwaitChocolate:        "await_chocolate",
	AwaitCaffeine:         "await_caffeine",
	Complete:              "complete",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return "unknown"
}

// #endregion state

// #region answers

// Answers collects every survey field for one user. Education and Ethnicity
// stay raw labels until the encoder maps them through the tables.
type Answers struct {
	Education string  `json:"education"`
	Ethnicity string  `json:"ethnicity"`
	Nscore    int     `json:"nscore"`
	Escore    int     `json:"escore"`
	Oscore    int     `json:"oscore"`
	Ascore    int     `json:"ascore"`
	Cscore    int     `json:"cscore"`
	Impulsive int     `json:"impulsive"`
	SS        int     `json:"ss"`
	Alcohol   float64 `json:"alcohol"`
	Nicotine  float64 `json:"nicotine"`
	Choc      float64 `json:"choc"`
	Caff      float64 `json:"caff"`
}

// #endregion answers

// #region session

// Session is one user's in-flight survey. Created lazily on first contact,
// retired once a prediction has been produced.
type Session struct {
	UserID    int64
	State     State
	Answers   Answers
	UpdatedAt time.Time
}

// #endregion session
