package nutrigo

import (
	"sync/atomic"
	"time"
)

// DateFormat is the calendar-date layout used everywhere a record carries a
// day (task due dates, sleep log dates, streak bookkeeping). Lexicographic
// order on these strings is chronological order.
const DateFormat = "2006-01-02"

// ClockFormat is the time-of-day layout for task reminder times.
const ClockFormat = "15:04"

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	Avatar       string `json:"avatar,omitempty"`
}

type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

type Task struct {
	ID        int64        `json:"id"`
	Text      string       `json:"text"`
	Completed bool         `json:"completed"`
	Priority  TaskPriority `json:"priority"`
	UserID    int64        `json:"userId"`
	// DueDate is a DateFormat string; empty means no due date.
	DueDate string `json:"dueDate,omitempty"`
	// ReminderTime is a ClockFormat string; meaningful only with DueDate.
	ReminderTime string `json:"reminderTime,omitempty"`
}

// ReminderAt resolves the task's due date and reminder time to a wall-clock
// instant in the local timezone. ok is false when either field is absent or
// unparseable.
func (t Task) ReminderAt() (at time.Time, ok bool) {
	if t.DueDate == "" || t.ReminderTime == "" {
		return time.Time{}, false
	}
	day, err := time.ParseInLocation(DateFormat, t.DueDate, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	clock, err := time.Parse(ClockFormat, t.ReminderTime)
	if err != nil {
		return time.Time{}, false
	}
	// build the instant from calendar components so the wall-clock time
	// holds even when a DST transition falls between midnight and the
	// reminder
	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, time.Local), true
}

type SleepQuality string

const (
	QualityGood    SleepQuality = "good"
	QualityAverage SleepQuality = "average"
	QualityPoor    SleepQuality = "poor"
)

type SleepLog struct {
	ID     int64 `json:"id"`
	UserID int64 `json:"userId"`
	// Date is a DateFormat string; at most one log exists per (UserID, Date).
	Date    string       `json:"date"`
	Hours   float64      `json:"hours"`
	Quality SleepQuality `json:"quality"`
}

type Testimonial struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Quote    string `json:"quote"`
	Rating   int    `json:"rating"`
	Avatar   string `json:"avatar"`
}

// StreakState is the process-wide login streak singleton.
type StreakState struct {
	LastLoginDay string `json:"lastLoginDay"`
	StreakCount  int    `json:"streakCount"`
}

var lastID atomic.Int64

// NewID returns an opaque record id derived from the creation timestamp in
// unix milliseconds. Ids are strictly increasing even when two records are
// created within the same millisecond.
func NewID() int64 {
	for {
		id := time.Now().UnixMilli()
		last := lastID.Load()
		if id <= last {
			id = last + 1
		}
		if lastID.CompareAndSwap(last, id) {
			return id
		}
	}
}
