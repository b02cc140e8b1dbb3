// internal/console/console.go
//
// Synchronous read → submit → print loop for one session.
//
// The loop reads one line per prompt from any io.Reader (a terminal, a pipe,
// a test harness). It never exits the process: it returns the final outcome
// and lets the caller decide what to do. End of input is treated as the quit
// token so the session always reaches a terminal state. A line longer than
// maxLine bytes is drained and rejected as a wrong-length guess.

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
	"github.com/robalobadob/wordle/apps/go-cli/internal/transcript"
)

// maxLine bounds how much of one input line is kept in memory.
const maxLine = 1024

// Run drives s to a terminal state, reading guesses from in and printing via p.
func Run(ctx context.Context, in io.Reader, s *game.Session, p *transcript.Printer) (game.Outcome, error) {
	lr := bufio.NewReaderSize(in, maxLine)
	p.Header(s.MaxAttempts())

	for !s.Outcome().Terminal() {
		if err := ctx.Err(); err != nil {
			return s.Outcome(), err
		}

		p.Prompt(s.AttemptsUsed(), s.MaxAttempts())
		raw, overlong, err := readLine(lr)
		if err != nil {
			return s.Outcome(), fmt.Errorf("read guess: %w", err)
		}
		if overlong {
			log.Debug().Int("limit", maxLine).Msg("guess rejected: line too long")
			p.Rejected(raw, game.ErrWrongLength)
			continue
		}

		res, err := s.Submit(raw)
		switch {
		case errors.Is(err, game.ErrWrongLength), errors.Is(err, game.ErrNotInDictionary):
			log.Debug().Str("guess", res.Guess).Err(err).Msg("guess rejected")
			p.Rejected(res.Guess, err)
			continue
		case err != nil:
			return s.Outcome(), err
		}

		log.Debug().
			Int("attempt", res.Attempt).
			Str("outcome", res.Outcome.String()).
			Str("feedback", res.Feedback.String()).
			Msg("guess accepted")
		p.Turn(res)
	}

	log.Info().
		Str("session", s.ID()).
		Str("outcome", s.Outcome().String()).
		Int("attempts", s.AttemptsUsed()).
		Msg("game over")
	return s.Outcome(), nil
}

// readLine returns the next line without its terminator, or the quit token
// once input is exhausted. A line that overflows the reader's buffer is
// consumed to its end and reported as overlong; only its head is returned.
func readLine(r *bufio.Reader) (string, bool, error) {
	var line []byte
	overlong := false
	for {
		frag, err := r.ReadSlice('\n')
		if !overlong {
			if len(line)+len(frag) > maxLine {
				overlong = true
				line = append(line, frag[:maxLine-len(line)]...)
			} else {
				line = append(line, frag...)
			}
		}
		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if len(line) == 0 && !overlong {
				return game.QuitToken, false, nil
			}
		case err != nil:
			return "", false, err
		}
		return strings.TrimRight(string(line), "\r\n"), overlong, nil
	}
}
