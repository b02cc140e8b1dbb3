package daily

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedPool is a Pool over a plain slice.
type fixedPool []string

func (p fixedPool) Len() int { return len(p) }

func (p fixedPool) Answer(idx int) (string, error) {
	if idx < 0 || idx >= len(p) {
		return "", errors.New("out of range")
	}
	return p[idx], nil
}

func TestDateKey(t *testing.T) {
	loc := time.FixedZone("UTC+10", 10*60*60)
	d := time.Date(2024, 3, 2, 5, 0, 0, 0, loc)
	assert.Equal(t, "2024-03-01", DateKey(d))
}

func TestIndex(t *testing.T) {
	morning := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 3, 1, 23, 0, 0, 0, time.UTC)

	a, err := Index(morning, "salt", 300)
	require.NoError(t, err)
	b, err := Index(evening, "salt", 300)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same day, same word")
	assert.GreaterOrEqual(t, a, 0)
	assert.Less(t, a, 300)

	one, err := Index(morning, "salt", 1)
	require.NoError(t, err)
	assert.Zero(t, one)

	seen := map[int]bool{}
	for d := 0; d < 30; d++ {
		i, err := Index(morning.AddDate(0, 0, d), "salt", 1000)
		require.NoError(t, err)
		seen[i] = true
	}
	assert.Greater(t, len(seen), 1, "index should vary across days")
}

func TestIndex_EmptyPool(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	for _, size := range []int{0, -3} {
		_, err := Index(now, "salt", size)
		assert.ErrorIs(t, err, ErrEmptyPool, "size %d", size)
	}
}

func TestAnswer(t *testing.T) {
	pool := fixedPool{"crane", "slate", "light", "mound", "pious"}
	day := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)

	got, err := Answer(day, "pepper", pool)
	require.NoError(t, err)
	idx, err := Index(day, "pepper", len(pool))
	require.NoError(t, err)
	assert.Equal(t, pool[idx], got)

	again, err := Answer(day.Add(10*time.Hour), "pepper", pool)
	require.NoError(t, err)
	assert.Equal(t, got, again)

	_, err = Answer(day, "pepper", fixedPool{})
	assert.ErrorIs(t, err, ErrEmptyPool)
}
