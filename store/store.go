// Package store implements the persistence services: users, tasks, sleep
// logs, testimonials, and the login streak. Each service reads its whole
// record list from the KeyValueStore, mutates it in memory, and writes it
// back. That pattern is fine for a single interactive session; it is not
// safe under concurrent writers.
package store

import (
	"encoding/json"

	"github.com/omarkhayat/nutrigo"
)

// load decodes the record under key into out. Absent keys, backend failures,
// and corrupt payloads all leave out at its zero value: no user action should
// fail because stored state is unreadable.
func load(kv nutrigo.KeyValueStore, key string, out any, l nutrigo.Logger) {
	raw, err := kv.Get(key)
	if err != nil {
		l.Warn("storage unavailable, treating as empty", "key", key, "error", err)
		return
	}
	if raw == nil {
		return
	}
	if err := json.Unmarshal(raw, out); err != nil {
		l.Warn("corrupt record, treating as empty", "key", key, "error", err)
	}
}

func save(kv nutrigo.KeyValueStore, key string, v any, l nutrigo.Logger) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := kv.Set(key, raw); err != nil {
		l.Error("failed to persist record", "key", key, "error", err)
		return err
	}
	return nil
}
