package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarkhayat/nutrigo"
	"github.com/omarkhayat/nutrigo/kv"
	"github.com/omarkhayat/nutrigo/remind"
)

type enabledNotifier struct{}

func (enabledNotifier) Enabled() bool             { return true }
func (enabledNotifier) Notify(title, body string) {}

func newTaskFixture(t *testing.T) (*Tasks, *remind.Scheduler) {
	t.Helper()
	sched := remind.NewScheduler(enabledNotifier{}, nil)
	t.Cleanup(sched.CancelAll)
	return NewTasks(kv.NewMemory(), sched, nil), sched
}

func TestCreateArmsFutureReminder(t *testing.T) {
	tasks, sched := newTaskFixture(t)

	task, err := tasks.Create(CreateTaskRequest{
		Text:         "meal prep",
		Priority:     nutrigo.PriorityHigh,
		UserID:       1,
		DueDate:      "2099-01-01",
		ReminderTime: "09:00",
	})
	require.NoError(t, err)
	assert.True(t, sched.Pending(task.ID))
}

func TestCreatePastDueStaysUnarmed(t *testing.T) {
	tasks, sched := newTaskFixture(t)

	task, err := tasks.Create(CreateTaskRequest{
		Text:         "stretch",
		UserID:       1,
		DueDate:      "2020-01-01",
		ReminderTime: "09:00",
	})
	require.NoError(t, err)
	assert.False(t, sched.Pending(task.ID))
}

func TestCreateWithoutReminderFields(t *testing.T) {
	tasks, sched := newTaskFixture(t)

	task, err := tasks.Create(CreateTaskRequest{Text: "walk", UserID: 1})
	require.NoError(t, err)
	assert.False(t, sched.Pending(task.ID))
}

func TestUpdateMergesAndReschedules(t *testing.T) {
	tasks, sched := newTaskFixture(t)

	task, err := tasks.Create(CreateTaskRequest{Text: "walk", UserID: 1})
	require.NoError(t, err)
	require.False(t, sched.Pending(task.ID))

	due, at := "2099-01-01", "09:00"
	updated, err := tasks.Update(task.ID, TaskUpdate{DueDate: &due, ReminderTime: &at})
	require.NoError(t, err)
	assert.Equal(t, "walk", updated.Text, "untouched fields survive the merge")
	assert.True(t, sched.Pending(task.ID))

	// completing cancels the pending reminder
	done := true
	updated, err = tasks.Update(task.ID, TaskUpdate{Completed: &done})
	require.NoError(t, err)
	assert.True(t, updated.Completed)
	assert.False(t, sched.Pending(task.ID))
}

func TestUpdateMissing(t *testing.T) {
	tasks, _ := newTaskFixture(t)

	text := "x"
	_, err := tasks.Update(999, TaskUpdate{Text: &text})
	assert.ErrorIs(t, err, nutrigo.ErrNotFound)
}

func TestDelete(t *testing.T) {
	tasks, sched := newTaskFixture(t)

	task, err := tasks.Create(CreateTaskRequest{
		Text:         "hydrate",
		UserID:       1,
		DueDate:      "2099-01-01",
		ReminderTime: "09:00",
	})
	require.NoError(t, err)
	require.True(t, sched.Pending(task.ID))

	assert.True(t, tasks.Delete(task.ID))
	assert.False(t, sched.Pending(task.ID))
	assert.Empty(t, tasks.ListByUser(1))

	assert.False(t, tasks.Delete(task.ID), "second delete reports missing")
}

func TestDeleteMissingLeavesStoreUntouched(t *testing.T) {
	store := kv.NewMemory()
	tasks := NewTasks(store, nil, nil)

	_, err := tasks.Create(CreateTaskRequest{Text: "walk", UserID: 1})
	require.NoError(t, err)

	before, err := store.Get(nutrigo.KeyTasks)
	require.NoError(t, err)

	assert.False(t, tasks.Delete(999))

	after, err := store.Get(nutrigo.KeyTasks)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

// brokenWrites lets reads through but fails every write.
type brokenWrites struct {
	nutrigo.KeyValueStore
}

func (b brokenWrites) Set(key string, value []byte) error {
	return errors.New("disk full")
}

func TestDeleteReportsExistenceWhenPersistFails(t *testing.T) {
	store := kv.NewMemory()
	tasks := NewTasks(store, nil, nil)

	task, err := tasks.Create(CreateTaskRequest{Text: "walk", UserID: 1})
	require.NoError(t, err)

	failing := NewTasks(brokenWrites{KeyValueStore: store}, nil, nil)
	assert.True(t, failing.Delete(task.ID), "the record existed even though the write failed")
}

func TestToggle(t *testing.T) {
	tasks, _ := newTaskFixture(t)

	task, err := tasks.Create(CreateTaskRequest{Text: "walk", UserID: 1})
	require.NoError(t, err)

	got, err := tasks.Toggle(task.ID)
	require.NoError(t, err)
	assert.True(t, got.Completed)

	got, err = tasks.Toggle(task.ID)
	require.NoError(t, err)
	assert.False(t, got.Completed)

	_, err = tasks.Toggle(999)
	assert.ErrorIs(t, err, nutrigo.ErrNotFound)
}

func TestListByUserFilters(t *testing.T) {
	tasks, _ := newTaskFixture(t)

	first, err := tasks.Create(CreateTaskRequest{Text: "a", UserID: 1})
	require.NoError(t, err)
	_, err = tasks.Create(CreateTaskRequest{Text: "b", UserID: 2})
	require.NoError(t, err)
	second, err := tasks.Create(CreateTaskRequest{Text: "c", UserID: 1})
	require.NoError(t, err)

	got := tasks.ListByUser(1)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
}

func TestRestoreReminders(t *testing.T) {
	store := kv.NewMemory()
	sched := remind.NewScheduler(enabledNotifier{}, nil)
	t.Cleanup(sched.CancelAll)

	tasks := NewTasks(store, sched, nil)
	armed, err := tasks.Create(CreateTaskRequest{
		Text:         "sleep early",
		UserID:       1,
		DueDate:      "2099-01-01",
		ReminderTime: "22:00",
	})
	require.NoError(t, err)
	plain, err := tasks.Create(CreateTaskRequest{Text: "no reminder", UserID: 1})
	require.NoError(t, err)

	// a fresh process sees stored tasks but an empty timer table
	sched2 := remind.NewScheduler(enabledNotifier{}, nil)
	t.Cleanup(sched2.CancelAll)
	tasks2 := NewTasks(store, sched2, nil)
	require.False(t, sched2.Pending(armed.ID))

	tasks2.RestoreReminders()
	assert.True(t, sched2.Pending(armed.ID))
	assert.False(t, sched2.Pending(plain.ID))
}
