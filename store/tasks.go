package store

import (
	"github.com/omarkhayat/nutrigo"
	"github.com/omarkhayat/nutrigo/remind"
)

// CreateTaskRequest carries the caller-supplied fields of a new task.
type CreateTaskRequest struct {
	Text         string
	Priority     nutrigo.TaskPriority
	UserID       int64
	DueDate      string
	ReminderTime string
}

// TaskUpdate holds an update's changed fields; nil pointers leave the
// current value alone.
type TaskUpdate struct {
	Text         *string
	Completed    *bool
	Priority     *nutrigo.TaskPriority
	DueDate      *string
	ReminderTime *string
}

// Tasks is the per-user task list with reminder scheduling driven off every
// mutation.
type Tasks struct {
	kv    nutrigo.KeyValueStore
	sched *remind.Scheduler
	l     nutrigo.Logger
}

func NewTasks(kv nutrigo.KeyValueStore, sched *remind.Scheduler, logger nutrigo.Logger) *Tasks {
	if sched == nil {
		sched = remind.NewScheduler(remind.NopNotifier{}, logger)
	}
	if logger == nil {
		logger = nutrigo.NopLogger{}
	}
	return &Tasks{kv: kv, sched: sched, l: logger}
}

// ListByUser returns the user's tasks in storage order. Callers re-sort as
// they see fit.
func (s *Tasks) ListByUser(userID int64) []nutrigo.Task {
	all := s.all()
	var tasks []nutrigo.Task
	for _, t := range all {
		if t.UserID == userID {
			tasks = append(tasks, t)
		}
	}
	return tasks
}

func (s *Tasks) Create(req CreateTaskRequest) (nutrigo.Task, error) {
	task := nutrigo.Task{
		ID:           nutrigo.NewID(),
		Text:         req.Text,
		Priority:     req.Priority,
		UserID:       req.UserID,
		DueDate:      req.DueDate,
		ReminderTime: req.ReminderTime,
	}

	all := append(s.all(), task)
	if err := save(s.kv, nutrigo.KeyTasks, all, s.l); err != nil {
		return nutrigo.Task{}, err
	}
	s.sched.Schedule(task)
	return task, nil
}

// Update merges the changed fields into the stored task. Any previously
// armed reminder is cancelled unconditionally, then the updated record is
// re-evaluated for scheduling.
func (s *Tasks) Update(id int64, update TaskUpdate) (nutrigo.Task, error) {
	s.sched.Cancel(id)

	all := s.all()
	for i, t := range all {
		if t.ID != id {
			continue
		}
		if update.Text != nil {
			t.Text = *update.Text
		}
		if update.Completed != nil {
			t.Completed = *update.Completed
		}
		if update.Priority != nil {
			t.Priority = *update.Priority
		}
		if update.DueDate != nil {
			t.DueDate = *update.DueDate
		}
		if update.ReminderTime != nil {
			t.ReminderTime = *update.ReminderTime
		}
		all[i] = t
		if err := save(s.kv, nutrigo.KeyTasks, all, s.l); err != nil {
			return nutrigo.Task{}, err
		}
		s.sched.Schedule(t)
		return t, nil
	}
	return nutrigo.Task{}, nutrigo.ErrNotFound
}

// Delete removes the task and reports whether it existed. Deleting a missing
// id leaves the stored list untouched.
func (s *Tasks) Delete(id int64) bool {
	s.sched.Cancel(id)

	all := s.all()
	for i, t := range all {
		if t.ID == id {
			all = append(all[:i], all[i+1:]...)
			// the record existed whether or not the shrunken list persists;
			// save logs the failure
			_ = save(s.kv, nutrigo.KeyTasks, all, s.l)
			return true
		}
	}
	return false
}

// Toggle flips a task's completed flag.
func (s *Tasks) Toggle(id int64) (nutrigo.Task, error) {
	all := s.all()
	for _, t := range all {
		if t.ID == id {
			completed := !t.Completed
			return s.Update(id, TaskUpdate{Completed: &completed})
		}
	}
	return nutrigo.Task{}, nutrigo.ErrNotFound
}

// RestoreReminders rebuilds the scheduler's timer table from stored tasks.
// Run it once on startup: a previous process's timers did not survive.
func (s *Tasks) RestoreReminders() {
	s.sched.CancelAll()
	for _, t := range s.all() {
		s.sched.Schedule(t)
	}
}

func (s *Tasks) all() []nutrigo.Task {
	var all []nutrigo.Task
	load(s.kv, nutrigo.KeyTasks, &all, s.l)
	return all
}
