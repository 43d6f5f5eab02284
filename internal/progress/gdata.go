package progress

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
)

const (
	gdataObject = "progress"
	gdataProp   = "flags"
)

// GdataStore keeps progress in the per-user application data directory.
type GdataStore struct {
	m *gdata.Manager
}

// OpenGdata opens the application data store for appName.
func OpenGdata(appName string) (*GdataStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("progress: cannot open data dir: %w", err)
	}
	return &GdataStore{m: m}, nil
}

// Load implements Store. Missing data yields zero progress.
func (s *GdataStore) Load() (Progress, error) {
	if !s.m.ObjectPropExists(gdataObject, gdataProp) {
		return Progress{}, nil
	}
	data, err := s.m.LoadObjectProp(gdataObject, gdataProp)
	if err != nil {
		return Progress{}, fmt.Errorf("progress: cannot load: %w", err)
	}
	return Decode(data)
}

// Save implements Store.
func (s *GdataStore) Save(p Progress) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}
	if err := s.m.SaveObjectProp(gdataObject, gdataProp, data); err != nil {
		return fmt.Errorf("progress: cannot save: %w", err)
	}
	return nil
}

// Clear implements Store.
func (s *GdataStore) Clear() error {
	return s.Save(Progress{})
}
