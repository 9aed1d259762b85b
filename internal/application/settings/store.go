package settings

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"

	"github.com/younwookim/codewave/internal/infrastructure/config"
)

// ItemKey is the gdata item the settings are stored under.
const ItemKey = "settings"

// Store persists named blobs. *gdata.Manager satisfies it.
type Store interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

// savedSettings represents the settings data stored on disk
type savedSettings struct {
	Muted      bool   `json:"muted"`
	Difficulty string `json:"difficulty"`
	LastLevel  int    `json:"lastLevel"`
}

// OpenStore opens the per-user data directory for appName.
func OpenStore(appName string) (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("open settings store %s: %w", appName, err)
	}
	return m, nil
}

// Load applies stored settings. A nil store or a missing item leaves s as
// it is. Unknown difficulties in the stored data are ignored.
func (s *Settings) Load(store Store) error {
	if store == nil {
		return nil
	}

	data, err := store.LoadItem(ItemKey)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	if data == nil {
		return nil
	}

	var saved savedSettings
	if err := json.Unmarshal(data, &saved); err != nil {
		return fmt.Errorf("parse settings: %w", err)
	}

	s.SetMuted(saved.Muted)
	if saved.Difficulty != "" {
		if d, err := config.ParseDifficulty(saved.Difficulty); err == nil {
			s.difficulty = d
		} else {
			log.Warn("ignoring stored difficulty", "difficulty", saved.Difficulty)
		}
	}
	s.ReachLevel(saved.LastLevel)
	return nil
}

// Save writes the settings to store. A nil store is a no-op.
func (s *Settings) Save(store Store) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(savedSettings{
		Muted:      s.muted,
		Difficulty: string(s.difficulty),
		LastLevel:  s.lastLevel,
	})
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := store.SaveItem(ItemKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}
