// internal/game/engine.go
//
// Core game engine for a single Wordle session.
// Responsibilities:
//   - Score guesses using the classic two‑pass Wordle algorithm (Classify).
//   - Create sessions with a fixed answer and attempt budget (6 by default).
//   - Validate and apply raw guesses (quit token, length, dictionary).
//   - Track state transitions: playing → won/lost/quit.
//
// Notes:
//   - The dictionary is supplied by the caller; this package never does I/O.
//   - Rejected input (wrong length, unknown word) never consumes an attempt.

package game

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

// Classify scores guess against answer.
//
// Pass 1:
//   - Mark exact matches as Hit.
//   - Count the answer letters left over at non‑hit positions.
//
// Pass 2 (left to right):
//   - For each non‑hit guess letter: if there is remaining count for that letter,
//     mark Present and decrement the count; otherwise mark Miss.
//
// Hits never spend budget a later Present could have used, and when the guess
// repeats a letter more often than the answer has spare copies, the earlier
// positions get Present.
func Classify(guess, answer string) (Feedback, error) {
	var res Feedback
	g := []rune(strings.ToLower(guess))
	a := []rune(strings.ToLower(answer))
	if len(g) != WordLength || len(a) != WordLength {
		return res, ErrInvalidLength
	}

	remaining := make(map[rune]int, WordLength)

	// First pass: hits, and counts for the rest of the answer.
	for i := 0; i < WordLength; i++ {
		if g[i] == a[i] {
			res[i] = MarkHit
		} else {
			remaining[a[i]]++
		}
	}

	// Second pass: presents/misses for non‑hit tiles.
	for i := 0; i < WordLength; i++ {
		if res[i] == MarkHit {
			continue
		}
		if remaining[g[i]] > 0 {
			res[i] = MarkPresent
			remaining[g[i]]--
		} else {
			res[i] = MarkMiss
		}
	}
	return res, nil
}

// Session holds the state of a single game.
type Session struct {
	id          string
	answer      string     // always lowercase
	maxAttempts int        // accepted guesses allowed
	dict        Dictionary // valid guesses
	history     []Turn     // accepted guesses so far
	outcome     Outcome
}

// New starts a session for answer.
// maxAttempts <= 0 selects DefaultMaxAttempts.
func New(answer string, maxAttempts int, dict Dictionary) (*Session, error) {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if utf8.RuneCountInString(answer) != WordLength {
		return nil, ErrInvalidLength
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Session{
		id:          uuid.NewString(),
		answer:      answer,
		maxAttempts: maxAttempts,
		dict:        dict,
		history:     []Turn{},
		outcome:     InProgress,
	}, nil
}

// Submit validates and scores one raw guess, mutating the session.
//
// Validation order:
//   - Session must still be in progress (ErrSessionClosed).
//   - The quit token ends the session without using an attempt.
//   - Guess must be five letters (ErrWrongLength).
//   - Guess must be in the dictionary (ErrNotInDictionary).
//
// State transitions:
//   - All tiles Hit → Won.
//   - Else if attempts used reaches the maximum → Lost.
func (s *Session) Submit(raw string) (TurnResult, error) {
	if s.outcome.Terminal() {
		return TurnResult{Outcome: s.outcome, Attempt: len(s.history)}, ErrSessionClosed
	}

	guess := strings.ToLower(strings.TrimSpace(raw))
	if guess == QuitToken {
		s.outcome = Quit
		return TurnResult{Outcome: Quit, Attempt: len(s.history), Answer: s.answer}, nil
	}
	if utf8.RuneCountInString(guess) != WordLength {
		return TurnResult{Outcome: InProgress, Guess: guess, Attempt: len(s.history)}, ErrWrongLength
	}
	if s.dict == nil || !s.dict.Contains(guess) {
		return TurnResult{Outcome: InProgress, Guess: guess, Attempt: len(s.history)}, ErrNotInDictionary
	}

	fb, err := Classify(guess, s.answer)
	if err != nil {
		return TurnResult{Outcome: InProgress, Guess: guess, Attempt: len(s.history)}, err
	}
	s.history = append(s.history, Turn{Guess: guess, Feedback: fb})

	res := TurnResult{Guess: guess, Feedback: fb, Attempt: len(s.history)}
	switch {
	case fb.Solved():
		s.outcome = Won
	case len(s.history) >= s.maxAttempts:
		s.outcome = Lost
		res.Answer = s.answer
	}
	res.Outcome = s.outcome
	return res, nil
}

// ID is a unique identifier for correlating the session across requests.
func (s *Session) ID() string { return s.id }

// Answer returns the secret word.
func (s *Session) Answer() string { return s.answer }

// AttemptsUsed is the number of accepted guesses so far.
func (s *Session) AttemptsUsed() int { return len(s.history) }

// MaxAttempts is the attempt budget fixed at creation.
func (s *Session) MaxAttempts() int { return s.maxAttempts }

// Outcome reports the current state.
func (s *Session) Outcome() Outcome { return s.outcome }

// History returns a copy of the accepted guesses in order.
func (s *Session) History() []Turn {
	out := make([]Turn, len(s.history))
	copy(out, s.history)
	return out
}
