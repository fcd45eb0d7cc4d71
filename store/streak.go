package store

import (
	"time"

	"github.com/omarkhayat/nutrigo"
)

// Streak counts active days. Any new calendar day increments by exactly one
// regardless of how many days passed since the last visit; a gap never
// resets the counter.
type Streak struct {
	kv nutrigo.KeyValueStore
	l  nutrigo.Logger

	now func() time.Time
}

func NewStreak(kv nutrigo.KeyValueStore, logger nutrigo.Logger) *Streak {
	if logger == nil {
		logger = nutrigo.NopLogger{}
	}
	return &Streak{kv: kv, l: logger, now: time.Now}
}

// TouchToday records a visit. The first touch of a calendar day increments
// the counter and stamps the day; repeat touches return the counter
// unchanged without writing.
func (s *Streak) TouchToday() int {
	var state nutrigo.StreakState
	load(s.kv, nutrigo.KeyStreak, &state, s.l)

	today := s.now().Format(nutrigo.DateFormat)
	if state.LastLoginDay == today {
		return state.StreakCount
	}

	state.StreakCount++
	state.LastLoginDay = today
	if err := save(s.kv, nutrigo.KeyStreak, state, s.l); err != nil {
		s.l.Error("could not persist streak", "error", err)
	}
	return state.StreakCount
}

// CurrentStreak reads the counter without mutating anything.
func (s *Streak) CurrentStreak() int {
	var state nutrigo.StreakState
	load(s.kv, nutrigo.KeyStreak, &state, s.l)
	return state.StreakCount
}
