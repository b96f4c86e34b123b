package track

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store abstracts the seen-state persistence so the pipeline stays free
// of file I/O. The map is loaded whole at process start and saved whole
// at process end; there are no incremental writes.
type Store interface {
	Load() (Map, error)
	Save(Map) error
}

// FileStore keeps the seen map as human-readable indented JSON.
type FileStore struct {
	Path string
}

func (s FileStore) Load() (Map, error) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return Map{}, nil
		}
		return nil, fmt.Errorf("read seen file: %w", err)
	}
	var m Map
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("parse seen file %s: %w", s.Path, err)
	}
	if m == nil {
		m = Map{}
	}
	return m, nil
}

// Save does a whole-map replace via write-to-temp + rename, so a crash
// mid-write leaves the previous file intact.
func (s FileStore) Save(m Map) error {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal seen map: %w", err)
	}
	dir := filepath.Dir(s.Path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create seen dir: %w", err)
		}
	}
	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write seen file: %w", err)
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace seen file: %w", err)
	}
	return nil
}

// MemStore is the in-memory Store used by tests and dry runs.
type MemStore struct {
	M       Map
	LoadErr error
	SaveErr error
}

func (s *MemStore) Load() (Map, error) {
	if s.LoadErr != nil {
		return nil, s.LoadErr
	}
	if s.M == nil {
		s.M = Map{}
	}
	// hand out a copy so callers can't mutate the backing map in place
	out := make(Map, len(s.M))
	for k, v := range s.M {
		out[k] = v
	}
	return out, nil
}

func (s *MemStore) Save(m Map) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	s.M = m
	return nil
}
