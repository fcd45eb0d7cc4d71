package kv

import (
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/omarkhayat/nutrigo"
)

// File keeps the whole store in one JSON document on disk. Writes go through
// a temp file and rename so a crash mid-write never leaves a torn document.
type File struct {
	mu     sync.RWMutex
	path   string
	data   map[string]json.RawMessage
	logger nutrigo.Logger
}

func OpenFile(path string, logger nutrigo.Logger) (*File, error) {
	if logger == nil {
		logger = nutrigo.NopLogger{}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o744); err != nil {
		return nil, err
	}

	s := &File{
		path:   path,
		data:   make(map[string]json.RawMessage),
		logger: logger,
	}
	if err := s.load(); err != nil {
		// A corrupt document fails open to an empty store; the first write
		// replaces it. Losing data beats refusing to start.
		logger.Warn("discarding unreadable store file", "path", path, "error", err)
		s.data = make(map[string]json.RawMessage)
	}
	return s, nil
}

func (s *File) load() error {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	defer f.Close()

	if err := json.NewDecoder(f).Decode(&s.data); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

func (s *File) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, nil
}

func (s *File) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make(json.RawMessage, len(value))
	copy(cp, value)
	s.data[key] = cp
	return s.save()
}

func (s *File) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return s.save()
}

func (s *File) Close() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.save()
}

// save writes the document atomically. Callers hold at least a read lock.
func (s *File) save() error {
	tempFile := s.path + ".tmp"
	f, err := os.Create(tempFile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s.data); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempFile)
		return err
	}

	if err := f.Close(); err != nil {
		os.Remove(tempFile)
		return err
	}

	return os.Rename(tempFile, s.path)
}
