// Package remind schedules one-shot task reminder notifications.
package remind

import (
	"sync"
	"time"

	"github.com/omarkhayat/nutrigo"
)

// Notifier delivers a user-visible notification. Enabled is the
// notification-permission gate: when it reports false the scheduler never
// arms anything and tasks keep working as plain to-dos.
type Notifier interface {
	Enabled() bool
	Notify(title, body string)
}

// NopNotifier reports notifications unavailable.
type NopNotifier struct{}

func (NopNotifier) Enabled() bool             { return false }
func (NopNotifier) Notify(title, body string) {}

const notificationTitle = "nutrigo reminder"

// Scheduler keeps at most one pending timer per task id. Scheduling
// supersedes, cancelling is idempotent, and a fired timer removes its own
// bookkeeping entry.
type Scheduler struct {
	mu       sync.Mutex
	timers   map[int64]*time.Timer
	notifier Notifier
	logger   nutrigo.Logger

	now func() time.Time
}

func NewScheduler(notifier Notifier, logger nutrigo.Logger) *Scheduler {
	if notifier == nil {
		notifier = NopNotifier{}
	}
	if logger == nil {
		logger = nutrigo.NopLogger{}
	}
	return &Scheduler{
		timers:   make(map[int64]*time.Timer),
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Schedule arms a reminder for the task if it qualifies: due date and
// reminder time both set, not completed, instant strictly in the future, and
// notifications permitted. Anything else is a silent no-op. A previously
// armed reminder for the same id is superseded, never stacked.
func (s *Scheduler) Schedule(task nutrigo.Task) {
	s.Cancel(task.ID)

	if task.Completed || !s.notifier.Enabled() {
		return
	}
	at, ok := task.ReminderAt()
	if !ok {
		return
	}
	delay := at.Sub(s.now())
	if delay <= 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id, body := task.ID, task.Text
	s.timers[id] = time.AfterFunc(delay, func() {
		s.mu.Lock()
		delete(s.timers, id)
		s.mu.Unlock()
		s.notifier.Notify(notificationTitle, body)
	})
	s.logger.Debug("armed reminder", "taskId", id, "at", at)
}

// Cancel stops any pending reminder for the id. Cancelling an id with no
// pending reminder is a no-op.
func (s *Scheduler) Cancel(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if t, ok := s.timers[id]; ok {
		t.Stop()
		delete(s.timers, id)
	}
}

// CancelAll drops every pending reminder. Used when rebuilding the timer
// table on startup.
func (s *Scheduler) CancelAll() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
}

// Pending reports whether a reminder is armed for the id.
func (s *Scheduler) Pending(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.timers[id]
	return ok
}
