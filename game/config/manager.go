package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wricardo/neutron/game/engine"
)

var (
	ErrPresetNotFound = errors.New("preset not found")
	ErrInvalidPreset  = errors.New("invalid preset")
)

// PresetInfo describes an available preset
type PresetInfo struct {
	ID          string `json:"id"` // The identifier to pass to LoadPreset
	Name        string `json:"name"`
	Description string `json:"description"`
	Size        int    `json:"size"`
	BuiltIn     bool   `json:"built_in"`
}

// Manager handles preset loading and caching
type Manager struct {
	presetDir     string
	defaultPreset *engine.Preset
	presets       map[string]*engine.Preset
}

// NewManager creates a new preset manager. An empty presetDir only serves the
// built-in presets.
func NewManager(presetDir string) (*Manager, error) {
	if presetDir != "" {
		info, err := os.Stat(presetDir)
		if err != nil {
			return nil, fmt.Errorf("preset directory does not exist: %s", presetDir)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("preset path is not a directory: %s", presetDir)
		}
	}

	m := &Manager{
		presetDir: presetDir,
		presets:   make(map[string]*engine.Preset),
	}

	if err := m.loadDefaultPreset(); err != nil {
		return nil, fmt.Errorf("failed to load default preset: %w", err)
	}

	return m, nil
}

// LoadPreset loads a preset by id (case-insensitive, optional .json suffix)
func (m *Manager) LoadPreset(id string) (*engine.Preset, error) {
	id = normalizeID(id)

	if preset, exists := m.presets[id]; exists {
		return preset, nil
	}

	preset, err := m.readPresetFile(id)
	if errors.Is(err, ErrPresetNotFound) {
		preset = builtIn(id)
		if preset == nil {
			return nil, ErrPresetNotFound
		}
	} else if err != nil {
		return nil, err
	}

	m.presets[id] = preset
	return preset, nil
}

// readPresetFile reads and validates the preset file whose normalized name is id
func (m *Manager) readPresetFile(id string) (*engine.Preset, error) {
	name, err := m.presetFileName(id)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(m.presetDir, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPresetNotFound
		}
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	var preset engine.Preset
	if err := json.Unmarshal(data, &preset); err != nil {
		return nil, fmt.Errorf("failed to parse preset %s: %w", id, err)
	}

	if err := engine.ValidatePreset(&preset); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPreset, err)
	}

	return &preset, nil
}

// presetFileName finds the file in presetDir for id. File names keep their
// case on disk, so "Tiny.json" is found for the id "tiny". An exact
// lower-case match wins over other spellings.
func (m *Manager) presetFileName(id string) (string, error) {
	if m.presetDir == "" {
		return "", ErrPresetNotFound
	}

	entries, err := os.ReadDir(m.presetDir)
	if err != nil {
		return "", fmt.Errorf("failed to read preset directory: %w", err)
	}

	found := ""
	for _, entry := range entries {
		if !isPresetFile(entry) || normalizeID(entry.Name()) != id {
			continue
		}
		if entry.Name() == id+".json" {
			return entry.Name(), nil
		}
		if found == "" {
			found = entry.Name()
		}
	}
	if found == "" {
		return "", ErrPresetNotFound
	}
	return found, nil
}

// ListPresets returns information about all available presets, sorted by id.
// Invalid preset files are skipped.
func (m *Manager) ListPresets() ([]*PresetInfo, error) {
	ids := map[string]bool{"classic": true, "big": true}
	fromFile := make(map[string]bool)

	if m.presetDir != "" {
		entries, err := os.ReadDir(m.presetDir)
		if err != nil {
			return nil, fmt.Errorf("failed to read preset directory: %w", err)
		}
		for _, entry := range entries {
			if !isPresetFile(entry) {
				continue
			}
			id := normalizeID(entry.Name())
			ids[id] = true
			fromFile[id] = true
		}
	}

	sorted := make([]string, 0, len(ids))
	for id := range ids {
		sorted = append(sorted, id)
	}
	sort.Strings(sorted)

	var presets []*PresetInfo
	for _, id := range sorted {
		preset, err := m.LoadPreset(id)
		if err != nil {
			continue
		}
		presets = append(presets, &PresetInfo{
			ID:          id,
			Name:        preset.Name,
			Description: preset.Description,
			Size:        preset.Size,
			BuiltIn:     !fromFile[id],
		})
	}

	return presets, nil
}

// GetDefault returns the default preset
func (m *Manager) GetDefault() *engine.Preset {
	return m.defaultPreset
}

// SetDefault sets the default preset by id
func (m *Manager) SetDefault(id string) error {
	preset, err := m.LoadPreset(id)
	if err != nil {
		return err
	}
	m.defaultPreset = preset
	return nil
}

// loadDefaultPreset loads the classic preset as default
func (m *Manager) loadDefaultPreset() error {
	preset, err := m.LoadPreset("classic")
	if err != nil {
		// fall back to the built-in classic board
		m.defaultPreset = engine.ClassicPreset()
		return nil
	}
	m.defaultPreset = preset
	return nil
}

func builtIn(id string) *engine.Preset {
	switch id {
	case "classic":
		return engine.ClassicPreset()
	case "big":
		return engine.BigPreset()
	}
	return nil
}

func isPresetFile(entry os.DirEntry) bool {
	return !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json")
}

func normalizeID(id string) string {
	return strings.ToLower(strings.TrimSuffix(strings.TrimSpace(id), ".json"))
}
