package words

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeList(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad_EmbeddedDefaults(t *testing.T) {
	l, err := Load("", "")
	require.NoError(t, err)

	answers, allowed := l.Stats()
	assert.Greater(t, answers, 100)
	assert.Greater(t, allowed, answers)

	for _, w := range []string{"crane", "stare", "sassy", "class", "hello"} {
		assert.True(t, l.IsAnswer(w), w)
		assert.True(t, l.Contains(w), w)
	}
	for _, w := range []string{"abbey", "bebop", "lolly", "least"} {
		assert.False(t, l.IsAnswer(w), w)
		assert.True(t, l.Contains(w), w)
	}
	assert.False(t, l.Contains("zzzzz"))
	assert.True(t, l.Contains("CRANE"))
}

func TestLoad_BothFiles(t *testing.T) {
	ans := writeList(t, "answers.txt", "Crane\n\n# comment\nslate\ntoolong\nab1de\n")
	all := writeList(t, "allowed.txt", "stare\n  pious  \n")

	l, err := Load(ans, all)
	require.NoError(t, err)

	a, g := l.Stats()
	assert.Equal(t, 2, a)
	assert.Equal(t, 4, g)
	assert.True(t, l.Contains("crane"))
	assert.True(t, l.Contains("pious"))
	assert.False(t, l.IsAnswer("stare"))
	assert.False(t, l.Contains("toolong"))
	assert.False(t, l.Contains("ab1de"))
}

func TestLoad_AllowedOnly(t *testing.T) {
	all := writeList(t, "allowed.txt", "stare\ncrane\n")
	l, err := Load("", all)
	require.NoError(t, err)
	assert.True(t, l.IsAnswer("stare"))
	assert.True(t, l.IsAnswer("crane"))
	assert.Equal(t, 2, l.Len())
}

func TestLoad_AnswersOnly(t *testing.T) {
	ans := writeList(t, "answers.txt", "stare\n")
	l, err := Load(ans, "")
	require.NoError(t, err)
	assert.True(t, l.Contains("stare"))
	assert.False(t, l.Contains("crane"))
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"), "")
	assert.Error(t, err)

	empty := writeList(t, "answers.txt", "# nothing\n")
	_, err = Load(empty, "")
	assert.ErrorIs(t, err, ErrNoAnswers)
}

func TestFromLists_Dedupes(t *testing.T) {
	l, err := FromLists([]string{"crane", "CRANE", "slate"}, []string{"crane"})
	require.NoError(t, err)
	assert.Equal(t, 2, l.Len())

	w, err := l.Answer(1)
	require.NoError(t, err)
	assert.Equal(t, "slate", w)

	_, err = l.Answer(2)
	assert.Error(t, err)
	_, err = l.Answer(-1)
	assert.Error(t, err)
}

func TestRandomIndex(t *testing.T) {
	for i := 0; i < 100; i++ {
		idx, err := RandomIndex(7)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, 7)
	}
	_, err := RandomIndex(0)
	assert.ErrorIs(t, err, ErrNoAnswers)
}
