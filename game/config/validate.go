package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/wricardo/neutron/game/engine"
)

// ValidationResult captures the outcome of validating a single preset file.
// Messages holds the errors found, or a short summary when Valid is true.
type ValidationResult struct {
	File     string
	Valid    bool
	Messages []string
}

// ValidateFile loads and validates a single preset JSON file
func ValidateFile(path string) ValidationResult {
	result := ValidationResult{
		File:  filepath.Base(path),
		Valid: true,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Valid = false
		result.Messages = append(result.Messages, fmt.Sprintf("failed to read file: %v", err))
		return result
	}

	var preset engine.Preset
	if err := json.Unmarshal(data, &preset); err != nil {
		result.Valid = false
		result.Messages = append(result.Messages, fmt.Sprintf("invalid JSON: %v", err))
		return result
	}

	if err := engine.ValidatePreset(&preset); err != nil {
		result.Valid = false
		result.Messages = append(result.Messages, err.Error())
		return result
	}

	result.Messages = append(result.Messages,
		fmt.Sprintf("name: %s", preset.Name),
		fmt.Sprintf("board: %dx%d", preset.Size, preset.Size),
	)
	return result
}

// ValidateDir validates every *.json file in dir, sorted by file name
func ValidateDir(dir string) ([]ValidationResult, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list preset files: %w", err)
	}
	sort.Strings(files)

	results := make([]ValidationResult, 0, len(files))
	for _, file := range files {
		results = append(results, ValidateFile(file))
	}
	return results, nil
}
