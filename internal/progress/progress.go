// Package progress persists the two flags that survive between sessions:
// whether the intro conversation was shown and whether the runner checkpoint
// (the boss) was reached.
package progress

import (
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

// Progress is the persisted player progress.
type Progress struct {
	IntroShown        bool `yaml:"intro_shown"`
	CheckpointReached bool `yaml:"checkpoint_reached"`
}

// Store loads and saves progress.
type Store interface {
	Load() (Progress, error)
	Save(p Progress) error
	Clear() error
}

// Encode serializes progress for key-value back ends.
func Encode(p Progress) ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("progress: cannot encode: %w", err)
	}
	return data, nil
}

// Decode parses progress produced by Encode.
func Decode(data []byte) (Progress, error) {
	var p Progress
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Progress{}, fmt.Errorf("progress: cannot decode: %w", err)
	}
	return p, nil
}

// Memory keeps progress in memory only.
type Memory struct {
	mu sync.Mutex
	p  Progress
}

// NewMemory creates a memory store seeded with p.
func NewMemory(p Progress) *Memory {
	return &Memory{p: p}
}

// Load implements Store.
func (m *Memory) Load() (Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.p, nil
}

// Save implements Store.
func (m *Memory) Save(p Progress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.p = p
	return nil
}

// Clear implements Store.
func (m *Memory) Clear() error {
	return m.Save(Progress{})
}
