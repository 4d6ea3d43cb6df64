package gui

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application directory.
const AppName = "space_defender"

const (
	prefsObject   = "settings"
	prefsProperty = "gui"
)

// Prefs are GUI settings kept between launches.
type Prefs struct {
	Fullscreen bool `yaml:"fullscreen"`
	Stars      bool `yaml:"stars"`
}

// DefaultPrefs returns the settings used before anything is saved.
func DefaultPrefs() Prefs {
	return Prefs{Stars: true}
}

// PrefsStore persists Prefs through gdata. A nil manager keeps settings in
// memory only.
type PrefsStore struct {
	manager *gdata.Manager
}

// OpenPrefs opens the gdata store for appName.
func OpenPrefs(appName string) (*PrefsStore, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return &PrefsStore{}, fmt.Errorf("gui: cannot open settings storage: %w", err)
	}
	return &PrefsStore{manager: m}, nil
}

// Load returns saved prefs, or defaults when nothing is saved.
func (s *PrefsStore) Load() (Prefs, error) {
	p := DefaultPrefs()
	if s == nil || s.manager == nil || !s.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return p, nil
	}

	data, err := s.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return p, fmt.Errorf("gui: cannot load settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return DefaultPrefs(), fmt.Errorf("gui: cannot decode settings: %w", err)
	}
	return p, nil
}

// Save writes prefs. It is a no-op without a backing store.
func (s *PrefsStore) Save(p Prefs) error {
	if s == nil || s.manager == nil {
		return nil
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("gui: cannot encode settings: %w", err)
	}
	if err := s.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("gui: cannot save settings: %w", err)
	}
	return nil
}
