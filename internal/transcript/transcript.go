// internal/transcript/transcript.go
//
// Text presentation of a game for a terminal or any io.Writer.
// Responsibilities:
//   - Welcome header and legend.
//   - Ordinal prompts ("first", ..., "sixth and final").
//   - Re-prompt messages for rejected input.
//   - Per-turn output: guess and V/O/X indicators, win/loss/quit texts.
//
// Notes:
//   - Colour is optional; when enabled the guess is drawn as lipgloss tiles
//     above the plain indicator line.
//   - Revealing the answer on quit is a presentation choice (RevealOnQuit).

package transcript

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

// Options controls how a Printer renders.
type Options struct {
	RevealOnQuit bool // print the answer after "Thanks for playing!"
	Color        bool // draw coloured tiles for each accepted guess
}

// Printer writes the transcript of one session.
type Printer struct {
	w    io.Writer
	opts Options

	hit, present, miss lipgloss.Style
}

// New returns a Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	r := lipgloss.NewRenderer(w)
	if opts.Color {
		r.SetColorProfile(termenv.ANSI256)
	}
	tile := r.NewStyle().Bold(true).Foreground(lipgloss.Color("15"))
	return &Printer{
		w:       w,
		opts:    opts,
		hit:     tile.Background(lipgloss.Color("28")),
		present: tile.Background(lipgloss.Color("178")),
		miss:    tile.Background(lipgloss.Color("240")),
	}
}

var ordinals = []string{"first", "second", "third", "fourth", "fifth", "sixth", "seventh", "eighth", "ninth", "tenth"}

var numbers = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine", "ten"}

func ordinal(n int) string {
	if n >= 1 && n <= len(ordinals) {
		return ordinals[n-1]
	}
	return fmt.Sprintf("%dth", n)
}

func number(n int) string {
	if n >= 0 && n < len(numbers) {
		return numbers[n]
	}
	return fmt.Sprint(n)
}

// Header prints the welcome text and legend.
func (p *Printer) Header(maxAttempts int) {
	fmt.Fprintf(p.w, `
Welcome to Wordle!

Guess the WORDLE in %s tries.
Each guess must be a valid five-letter word.

Hit the enter button to submit your guess.
Type in "%s" and submit to leave the game.

After each guess, you will be shown how close your guess was to the word:

V - letter is in the correct spot
O - letter is in the word but wrong spot
X - letter is not in the word

`, number(maxAttempts), game.QuitToken)
}

// Prompt asks for the guess after `used` accepted guesses.
func (p *Printer) Prompt(used, maxAttempts int) {
	label := ordinal(used + 1)
	if used+1 == maxAttempts {
		label += " and final"
	}
	fmt.Fprintf(p.w, "Please enter your %s guess: ", label)
}

// Rejected explains why a guess was not accepted.
func (p *Printer) Rejected(guess string, err error) {
	switch {
	case errors.Is(err, game.ErrWrongLength):
		fmt.Fprintln(p.w, "Please enter a five-letter word.")
	case errors.Is(err, game.ErrNotInDictionary):
		fmt.Fprintf(p.w, "%s is not a valid word.\n", strings.ToUpper(guess))
	default:
		fmt.Fprintf(p.w, "Error: %v\n", err)
	}
}

// Turn prints the result of an accepted submission.
func (p *Printer) Turn(res game.TurnResult) {
	switch res.Outcome {
	case game.InProgress:
		fmt.Fprintln(p.w)
		if p.opts.Color {
			fmt.Fprintf(p.w, "\t%s\n", p.tiles(res.Guess, res.Feedback))
		} else {
			fmt.Fprintf(p.w, "\t%s\n", strings.ToUpper(res.Guess))
		}
		fmt.Fprintf(p.w, "\t%s\n\n", res.Feedback)

	case game.Won:
		fmt.Fprintln(p.w)
		if p.opts.Color {
			fmt.Fprintf(p.w, "\t%s\n\n", p.tiles(res.Guess, res.Feedback))
		}
		fmt.Fprintf(p.w, "You won! The word was %s.\n", strings.ToUpper(res.Guess))
		if res.Attempt == 1 {
			fmt.Fprintln(p.w, "You got the answer on the first guess?! How?!")
		} else {
			fmt.Fprintf(p.w, "You got the answer in %d guesses!\n", res.Attempt)
		}
		fmt.Fprintln(p.w)

	case game.Lost:
		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w, "You did not guess the correct word.")
		fmt.Fprintf(p.w, "The correct word was %s.\n\n", strings.ToUpper(res.Answer))

	case game.Quit:
		fmt.Fprintln(p.w)
		fmt.Fprintln(p.w, "Thanks for playing!")
		if p.opts.RevealOnQuit {
			fmt.Fprintf(p.w, "The word was %s.\n", strings.ToUpper(res.Answer))
		}
		fmt.Fprintln(p.w)
	}
}

// tiles draws each letter on a background coloured by its mark.
func (p *Printer) tiles(guess string, fb game.Feedback) string {
	var b strings.Builder
	for i, r := range []rune(strings.ToUpper(guess)) {
		if i >= len(fb) {
			break
		}
		style := p.miss
		switch fb[i] {
		case game.MarkHit:
			style = p.hit
		case game.MarkPresent:
			style = p.present
		}
		b.WriteString(style.Render(" " + string(r) + " "))
	}
	return b.String()
}
