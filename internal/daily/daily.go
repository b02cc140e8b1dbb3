// Package daily picks the same answer for every player on a given UTC date.
//
// The index is an HMAC of the date key, so without the salt the schedule
// cannot be read ahead from the word list alone.
package daily

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"time"
)

// ErrEmptyPool is returned when there is nothing to pick from.
var ErrEmptyPool = errors.New("daily: answer pool is empty")

// Pool is an indexed answer list; *words.Lists satisfies it.
type Pool interface {
	Len() int
	Answer(idx int) (string, error)
}

// DateKey is the UTC calendar day of t, e.g. "2024-03-01".
func DateKey(t time.Time) string { return t.UTC().Format("2006-01-02") }

// Index maps (salt, UTC day of date) onto [0, size).
func Index(date time.Time, salt string, size int) (int, error) {
	if size <= 0 {
		return 0, ErrEmptyPool
	}
	mac := hmac.New(sha256.New, []byte(salt))
	mac.Write([]byte(DateKey(date)))
	n := binary.BigEndian.Uint64(mac.Sum(nil)[:8])
	return int(n % uint64(size)), nil
}

// Answer returns the pool's word for the UTC day of date.
func Answer(date time.Time, salt string, pool Pool) (string, error) {
	idx, err := Index(date, salt, pool.Len())
	if err != nil {
		return "", err
	}
	w, err := pool.Answer(idx)
	if err != nil {
		return "", fmt.Errorf("daily answer for %s: %w", DateKey(date), err)
	}
	return w, nil
}
