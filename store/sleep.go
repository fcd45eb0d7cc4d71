package store

import (
	"sort"
	"strconv"

	"github.com/omarkhayat/nutrigo"
)

// Sleep is the day-keyed sleep log. Hours are stored as given; input ranges
// are the caller's concern, keeping this a pure data layer.
type Sleep struct {
	kv nutrigo.KeyValueStore
	l  nutrigo.Logger
}

func NewSleep(kv nutrigo.KeyValueStore, logger nutrigo.Logger) *Sleep {
	if logger == nil {
		logger = nutrigo.NopLogger{}
	}
	return &Sleep{kv: kv, l: logger}
}

// ListByUser returns the user's logs ascending by date, the order charting
// and the average calculation rely on.
func (s *Sleep) ListByUser(userID int64) []nutrigo.SleepLog {
	var all []nutrigo.SleepLog
	load(s.kv, nutrigo.KeySleepLogs, &all, s.l)

	var logs []nutrigo.SleepLog
	for _, l := range all {
		if l.UserID == userID {
			logs = append(logs, l)
		}
	}
	sort.Slice(logs, func(i, j int) bool { return logs[i].Date < logs[j].Date })
	return logs
}

// AddLog upserts by (userID, date): an existing log for the day is
// overwritten in place keeping its id, otherwise a new one is appended.
func (s *Sleep) AddLog(userID int64, date string, hours float64, quality nutrigo.SleepQuality) (nutrigo.SleepLog, error) {
	var all []nutrigo.SleepLog
	load(s.kv, nutrigo.KeySleepLogs, &all, s.l)

	log := nutrigo.SleepLog{
		UserID:  userID,
		Date:    date,
		Hours:   hours,
		Quality: quality,
	}

	replaced := false
	for i, existing := range all {
		if existing.UserID == userID && existing.Date == date {
			log.ID = existing.ID
			all[i] = log
			replaced = true
			break
		}
	}
	if !replaced {
		log.ID = nutrigo.NewID()
		all = append(all, log)
	}

	if err := save(s.kv, nutrigo.KeySleepLogs, all, s.l); err != nil {
		return nutrigo.SleepLog{}, err
	}
	return log, nil
}

// AverageHours returns the mean of the user's logged hours formatted with
// one decimal place, or "0" when no logs exist.
func (s *Sleep) AverageHours(userID int64) string {
	logs := s.ListByUser(userID)
	if len(logs) == 0 {
		return "0"
	}
	var total float64
	for _, l := range logs {
		total += l.Hours
	}
	return strconv.FormatFloat(total/float64(len(logs)), 'f', 1, 64)
}
