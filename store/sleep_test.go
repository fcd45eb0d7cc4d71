package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarkhayat/nutrigo"
	"github.com/omarkhayat/nutrigo/kv"
)

func TestAddLogUpsertsByDay(t *testing.T) {
	sleep := NewSleep(kv.NewMemory(), nil)

	first, err := sleep.AddLog(1, "2025-06-01", 6, nutrigo.QualityPoor)
	require.NoError(t, err)

	second, err := sleep.AddLog(1, "2025-06-01", 8, nutrigo.QualityGood)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "same-day log keeps its id")

	logs := sleep.ListByUser(1)
	require.Len(t, logs, 1)
	assert.Equal(t, 8.0, logs[0].Hours)
	assert.Equal(t, nutrigo.QualityGood, logs[0].Quality)
}

func TestAddLogSeparateDaysAndUsers(t *testing.T) {
	sleep := NewSleep(kv.NewMemory(), nil)

	_, err := sleep.AddLog(1, "2025-06-01", 7, nutrigo.QualityAverage)
	require.NoError(t, err)
	_, err = sleep.AddLog(1, "2025-06-02", 7, nutrigo.QualityAverage)
	require.NoError(t, err)
	_, err = sleep.AddLog(2, "2025-06-01", 5, nutrigo.QualityPoor)
	require.NoError(t, err)

	assert.Len(t, sleep.ListByUser(1), 2)
	assert.Len(t, sleep.ListByUser(2), 1)
}

func TestListByUserSortedByDate(t *testing.T) {
	sleep := NewSleep(kv.NewMemory(), nil)

	for _, date := range []string{"2025-06-03", "2025-06-01", "2025-06-02"} {
		_, err := sleep.AddLog(1, date, 7, nutrigo.QualityAverage)
		require.NoError(t, err)
	}

	logs := sleep.ListByUser(1)
	require.Len(t, logs, 3)
	assert.Equal(t, "2025-06-01", logs[0].Date)
	assert.Equal(t, "2025-06-02", logs[1].Date)
	assert.Equal(t, "2025-06-03", logs[2].Date)
}

func TestAverageHours(t *testing.T) {
	sleep := NewSleep(kv.NewMemory(), nil)

	assert.Equal(t, "0", sleep.AverageHours(1))

	_, err := sleep.AddLog(1, "2025-06-01", 6, nutrigo.QualityPoor)
	require.NoError(t, err)
	_, err = sleep.AddLog(1, "2025-06-02", 8, nutrigo.QualityGood)
	require.NoError(t, err)

	assert.Equal(t, "7.0", sleep.AverageHours(1))

	_, err = sleep.AddLog(1, "2025-06-03", 7.5, nutrigo.QualityAverage)
	require.NoError(t, err)
	assert.Equal(t, "7.2", sleep.AverageHours(1))
}
