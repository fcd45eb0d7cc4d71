package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/omarkhayat/nutrigo/kv"
)

func newStreakAt(day time.Time) *Streak {
	s := NewStreak(kv.NewMemory(), nil)
	s.now = func() time.Time { return day }
	return s
}

func TestTouchTodayOncePerDay(t *testing.T) {
	s := newStreakAt(time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local))

	assert.Equal(t, 1, s.TouchToday())
	assert.Equal(t, 1, s.TouchToday(), "repeat visits on the same day do not count")
	assert.Equal(t, 1, s.CurrentStreak())
}

func TestTouchTodayAcrossDays(t *testing.T) {
	s := newStreakAt(time.Date(2025, 6, 1, 9, 0, 0, 0, time.Local))
	assert.Equal(t, 1, s.TouchToday())

	// next calendar day
	s.now = func() time.Time { return time.Date(2025, 6, 2, 7, 0, 0, 0, time.Local) }
	assert.Equal(t, 2, s.TouchToday())

	// a gap of several days still adds exactly one
	s.now = func() time.Time { return time.Date(2025, 6, 10, 23, 0, 0, 0, time.Local) }
	assert.Equal(t, 3, s.TouchToday())
	assert.Equal(t, 3, s.CurrentStreak())
}

func TestCurrentStreakEmpty(t *testing.T) {
	s := NewStreak(kv.NewMemory(), nil)
	assert.Equal(t, 0, s.CurrentStreak())
}
