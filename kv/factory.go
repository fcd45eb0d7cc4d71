package kv

import (
	"fmt"

	"github.com/omarkhayat/nutrigo"
)

// Open picks a backend from config. Unknown backends are an error rather
// than a silent fallback so a typo in the conf file is noticed.
func Open(cfg nutrigo.Config, logger nutrigo.Logger) (nutrigo.KeyValueStore, error) {
	switch cfg.StorageBackend {
	case "sqlite":
		return OpenSQLite(cfg.DataPath)
	case "file":
		return OpenFile(cfg.DataPath, logger)
	case "memory":
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}
