package nutrigo

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIDStrictlyIncreasing(t *testing.T) {
	prev := NewID()
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.Greater(t, id, prev)
		prev = id
	}
}

func TestReminderAt(t *testing.T) {
	task := Task{DueDate: "2025-06-02", ReminderTime: "08:30"}
	at, ok := task.ReminderAt()
	require.True(t, ok)
	assert.Equal(t, time.Date(2025, 6, 2, 8, 30, 0, 0, time.Local), at)
}

func TestReminderAtKeepsWallClockAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tz database unavailable")
	}
	orig := time.Local
	time.Local = loc
	t.Cleanup(func() { time.Local = orig })

	// DST begins 2025-03-09 at 02:00 in New York; midnight and noon sit on
	// opposite sides of the jump
	task := Task{DueDate: "2025-03-09", ReminderTime: "12:00"}
	at, ok := task.ReminderAt()
	require.True(t, ok)
	assert.Equal(t, 12, at.Hour())
	assert.Equal(t, 0, at.Minute())
}

func TestReminderAtIncomplete(t *testing.T) {
	for name, task := range map[string]Task{
		"no fields": {},
		"date only": {DueDate: "2025-06-02"},
		"time only": {ReminderTime: "08:30"},
		"bad date":  {DueDate: "June 2nd", ReminderTime: "08:30"},
		"bad time":  {DueDate: "2025-06-02", ReminderTime: "8:30am"},
	} {
		t.Run(name, func(t *testing.T) {
			_, ok := task.ReminderAt()
			assert.False(t, ok)
		})
	}
}
