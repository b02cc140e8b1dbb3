// internal/words/words.go
//
// Word list management for the game.
//
// Responsibilities:
//   - Load answer and allowed guess lists from files or fall back to embedded defaults.
//   - Keep sets for quick lookups (answers only, answers∪guesses).
//   - Supply RandomIndex, Contains, IsAnswer, Answer and Stats.
//
// Word Lists:
//   - "answers": the answer pool (exactly 5 lowercase letters).
//   - "allowed": valid guesses (always includes answers).
//
// Load behavior:
//   1. If both paths are set,
//      load answers from the first and allowed guesses from the second.
//   2. If only the allowed path is set,
//      load that file and use it for both answers and allowed guesses.
//   3. If neither is set,
//      fall back to the embedded lists in the assets package.
//
// Constraints:
//   • Words must be 5 alphabetic letters (a–z); other lines are skipped.
//   • Lists are normalized to lowercase; duplicates are dropped.
//   • Lists are immutable once loaded.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/robalobadob/wordle/apps/go-cli/assets"
)

// ErrNoAnswers is returned when the answer pool ends up empty.
var ErrNoAnswers = errors.New("words: answers list is empty")

// Set is an immutable membership set of lowercase words.
type Set map[string]struct{}

// Contains reports whether w is in the set (case-insensitive).
func (s Set) Contains(w string) bool {
	_, ok := s[strings.ToLower(w)]
	return ok
}

// Lists bundles the answer pool and the dictionary of valid guesses.
type Lists struct {
	answers    []string // answer pool, in file order
	answersSet Set      // answers only
	allowedSet Set      // answers ∪ guesses
}

// Load reads the word lists as described in the package comment.
func Load(answersPath, allowedPath string) (*Lists, error) {
	var ansList, allowList []string
	var err error

	switch {
	// Case 1: both lists provided
	case answersPath != "" && allowedPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}

	// Case 2: only allowed file provided → use for both
	case answersPath == "" && allowedPath != "":
		if allowList, err = readWordFile(allowedPath); err != nil {
			return nil, err
		}
		ansList = allowList

	// Case 3: answers file alone, answers double as the dictionary
	case answersPath != "":
		if ansList, err = readWordFile(answersPath); err != nil {
			return nil, err
		}

	// Case 4: fallback to embedded defaults
	default:
		if ansList, err = readEmbedded(assets.Answers); err != nil {
			return nil, err
		}
		if allowList, err = readEmbedded(assets.Allowed); err != nil {
			return nil, err
		}
	}

	return FromLists(ansList, allowList)
}

// FromLists builds Lists from in-memory slices, applying the same normalization as Load.
func FromLists(answers, allowed []string) (*Lists, error) {
	l := &Lists{
		answersSet: make(Set, len(answers)),
		allowedSet: make(Set, len(answers)+len(allowed)),
	}
	for _, w := range answers {
		w = normalize(w)
		if !valid(w) {
			continue
		}
		if _, dup := l.answersSet[w]; dup {
			continue
		}
		l.answers = append(l.answers, w)
		l.answersSet[w] = struct{}{}
		// Ensure all answers are also marked as allowed
		l.allowedSet[w] = struct{}{}
	}
	for _, w := range allowed {
		if w = normalize(w); valid(w) {
			l.allowedSet[w] = struct{}{}
		}
	}
	if len(l.answers) == 0 {
		return nil, ErrNoAnswers
	}
	return l, nil
}

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()
	out, err := readWords(f)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return out, nil
}

func readEmbedded(open func() (io.ReadCloser, error)) ([]string, error) {
	rc, err := open()
	if err != nil {
		return nil, fmt.Errorf("words: open embedded list: %w", err)
	}
	defer rc.Close()
	return readWords(rc)
}

// readWords keeps valid words and skips blank and '#' comment lines.
func readWords(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w := normalize(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if valid(w) {
			out = append(out, w)
		}
	}
	return out, sc.Err()
}

func normalize(s string) string { return strings.TrimSpace(strings.ToLower(s)) }

// valid reports whether w is exactly five lowercase ASCII letters.
func valid(w string) bool {
	if len(w) != 5 {
		return false
	}
	for _, r := range w {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Contains reports whether w is a valid guess (answers ∪ guesses).
func (l *Lists) Contains(w string) bool { return l.allowedSet.Contains(w) }

// IsAnswer reports whether w is in the answer pool.
func (l *Lists) IsAnswer(w string) bool { return l.answersSet.Contains(w) }

// Len is the size of the answer pool.
func (l *Lists) Len() int { return len(l.answers) }

// Answer returns the answer at idx.
func (l *Lists) Answer(idx int) (string, error) {
	if idx < 0 || idx >= len(l.answers) {
		return "", fmt.Errorf("words: answer index %d out of range [0,%d)", idx, len(l.answers))
	}
	return l.answers[idx], nil
}

// Stats returns counts of loaded words: (answers, allowed).
func (l *Lists) Stats() (answersCount int, allowedCount int) {
	return len(l.answers), len(l.allowedSet)
}

// RandomIndex returns a cryptographically random index in [0, n).
func RandomIndex(n int) (int, error) {
	if n <= 0 {
		return 0, ErrNoAnswers
	}
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("words: random index: %w", err)
	}
	return int(nBig.Int64()), nil
}
