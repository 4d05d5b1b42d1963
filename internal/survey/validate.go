package survey

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// #region big-five

// bigFiveScores holds one parsed trait batch, keyed by trait letter.
type bigFiveScores map[rune]int

var traitLetters = map[rune]bool{'O': true, 'C': true, 'E': true, 'A': true, 'N': true}

// parseBigFive validates a newline-separated trait batch. Every line must be
// "<letter> <integer>" with a letter from {O,C,E,A,N}; all five traits must
// be present. Duplicate letters within one submission overwrite. Any bad
// line rejects the whole submission, so no scores are partially committed.
func parseBigFive(text string) (bigFiveScores, error) {
	scores := make(bigFiveScores, 5)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			return nil, fmt.Errorf("empty line in trait batch")
		}
		letter, size := utf8.DecodeRuneInString(line)
		if !traitLetters[letter] {
			return nil, fmt.Errorf("unknown trait letter %q", string(letter))
		}
		value, err := strconv.Atoi(strings.TrimSpace(line[size:]))
		if err != nil {
			return nil, fmt.Errorf("trait %s: %w", string(letter), err)
		}
		scores[letter] = value
	}
	if len(scores) != 5 {
		return nil, fmt.Errorf("got %d traits, want all of O C E A N", len(scores))
	}
	return scores, nil
}

// #endregion big-five

// #region integer

// parseScore validates a single integer answer. Any integer is accepted;
// range limits wait on product intent.
func parseScore(text string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(text))
}

// #endregion integer

// #region yes-no

// parseYesNo matches the Да/Нет token pair case-insensitively and returns
// the stored code: yes maps to yesCode, no always maps to 0.
func parseYesNo(text string, yesCode float64) (float64, error) {
	switch {
	case strings.EqualFold(text, yesToken):
		return yesCode, nil
	case strings.EqualFold(text, noToken):
		return 0, nil
	default:
		return 0, fmt.Errorf("expected %s or %s", yesToken, noToken)
	}
}

// #endregion yes-no
