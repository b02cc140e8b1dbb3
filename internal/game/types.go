// internal/game/types.go
//
// Core type definitions for the Wordle game engine.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - Feedback: the five marks produced for one guess.
//   - Outcome: lifecycle state of a Session.
//   - TurnResult: what a single accepted submission produced.
//   - Sentinel errors for rejected input and misuse.

package game

import (
	"errors"
	"strings"
)

// WordLength is the number of letters in every guess and answer.
const WordLength = 5

// DefaultMaxAttempts is the number of accepted guesses a player gets.
const DefaultMaxAttempts = 6

// QuitToken ends a session without consuming an attempt.
const QuitToken = "q"

var (
	// ErrWrongLength rejects input that is not five letters long.
	// The attempt is not consumed; the caller re-prompts.
	ErrWrongLength = errors.New("guess must be five letters")

	// ErrNotInDictionary rejects a five-letter word missing from the dictionary.
	// The attempt is not consumed; the caller re-prompts.
	ErrNotInDictionary = errors.New("not in word list")

	// ErrSessionClosed is returned when Submit is called on a finished session.
	ErrSessionClosed = errors.New("session closed")

	// ErrInvalidLength is returned by Classify when either word is not five letters.
	ErrInvalidLength = errors.New("words must be five letters")
)

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the answer but in a different position.
//   - "miss":    letter does not exist in the answer, or every copy is already claimed.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Symbol returns the single-character indicator shown in the transcript.
func (m Mark) Symbol() byte {
	switch m {
	case MarkHit:
		return 'V'
	case MarkPresent:
		return 'O'
	default:
		return 'X'
	}
}

// Feedback is the ordered classification of one guess, one Mark per position.
type Feedback [WordLength]Mark

// Solved reports whether every position is a hit.
func (f Feedback) Solved() bool {
	for _, m := range f {
		if m != MarkHit {
			return false
		}
	}
	return true
}

// String renders the feedback as indicators, e.g. "XXOOV".
func (f Feedback) String() string {
	var b strings.Builder
	for _, m := range f {
		b.WriteByte(m.Symbol())
	}
	return b.String()
}

// Outcome is the lifecycle state of a Session.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
	Quit
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further guesses are accepted.
func (o Outcome) Terminal() bool { return o != InProgress }

// MarshalText lets Outcome travel as its name in JSON.
func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Dictionary is the set of words accepted as guesses.
type Dictionary interface {
	Contains(word string) bool
}

// Turn is one accepted guess and its feedback.
type Turn struct {
	Guess    string   `json:"guess"`
	Feedback Feedback `json:"marks"`
}

// TurnResult describes what one submission did to the session.
type TurnResult struct {
	Outcome  Outcome  // Session outcome after this submission.
	Guess    string   // Normalised guess (empty on quit).
	Feedback Feedback // Classification of Guess (zero value on quit).
	Attempt  int      // Attempts used after this submission.
	Answer   string   // The secret, set only when the session ends in Lost or Quit.
}
