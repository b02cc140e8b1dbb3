package transcript

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/robalobadob/wordle/apps/go-cli/internal/game"
)

func plain(reveal bool) (*Printer, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(&buf, Options{RevealOnQuit: reveal}), &buf
}

func TestPrompt(t *testing.T) {
	p, buf := plain(true)
	p.Prompt(0, 6)
	assert.Equal(t, "Please enter your first guess: ", buf.String())

	buf.Reset()
	p.Prompt(5, 6)
	assert.Equal(t, "Please enter your sixth and final guess: ", buf.String())

	buf.Reset()
	p.Prompt(11, 20)
	assert.Equal(t, "Please enter your 12th guess: ", buf.String())
}

func TestHeader(t *testing.T) {
	p, buf := plain(true)
	p.Header(6)
	out := buf.String()
	assert.Contains(t, out, "Welcome to Wordle!")
	assert.Contains(t, out, "Guess the WORDLE in six tries.")
	assert.Contains(t, out, `Type in "q" and submit to leave the game.`)
	assert.Contains(t, out, "O - letter is in the word but wrong spot")
}

func TestRejected(t *testing.T) {
	p, buf := plain(true)
	p.Rejected("cran", game.ErrWrongLength)
	p.Rejected("zzzzz", game.ErrNotInDictionary)
	assert.Equal(t, "Please enter a five-letter word.\nZZZZZ is not a valid word.\n", buf.String())
}

func TestTurn(t *testing.T) {
	fb, _ := game.Classify("stare", "crane")
	solved, _ := game.Classify("crane", "crane")

	tests := []struct {
		name   string
		reveal bool
		res    game.TurnResult
		want   string
	}{
		{
			name: "in progress",
			res:  game.TurnResult{Outcome: game.InProgress, Guess: "stare", Feedback: fb, Attempt: 1},
			want: "\n\tSTARE\n\tXXVOV\n\n",
		},
		{
			name: "won first guess",
			res:  game.TurnResult{Outcome: game.Won, Guess: "crane", Feedback: solved, Attempt: 1},
			want: "\nYou won! The word was CRANE.\nYou got the answer on the first guess?! How?!\n\n",
		},
		{
			name: "won later",
			res:  game.TurnResult{Outcome: game.Won, Guess: "crane", Feedback: solved, Attempt: 2},
			want: "\nYou won! The word was CRANE.\nYou got the answer in 2 guesses!\n\n",
		},
		{
			name: "lost",
			res:  game.TurnResult{Outcome: game.Lost, Guess: "stare", Feedback: fb, Attempt: 6, Answer: "crane"},
			want: "\nYou did not guess the correct word.\nThe correct word was CRANE.\n\n",
		},
		{
			name:   "quit revealing",
			reveal: true,
			res:    game.TurnResult{Outcome: game.Quit, Answer: "crane"},
			want:   "\nThanks for playing!\nThe word was CRANE.\n\n",
		},
		{
			name: "quit hiding",
			res:  game.TurnResult{Outcome: game.Quit, Answer: "crane"},
			want: "\nThanks for playing!\n\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, buf := plain(tt.reveal)
			p.Turn(tt.res)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestTurn_Color(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, Options{Color: true})
	fb, _ := game.Classify("stare", "crane")
	p.Turn(game.TurnResult{Outcome: game.InProgress, Guess: "stare", Feedback: fb, Attempt: 1})

	out := buf.String()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, " S ")
	assert.Contains(t, out, "\tXXVOV\n")
}
