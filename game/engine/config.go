package engine

import "fmt"

// ValidatePreset validates a board preset
func ValidatePreset(preset *Preset) error {
	if preset == nil {
		return fmt.Errorf("preset validation: preset is nil")
	}
	if preset.Name == "" {
		return fmt.Errorf("preset validation: name is required")
	}
	if preset.Description == "" {
		return fmt.Errorf("preset validation: description is required")
	}
	if preset.Size < MinBoardSize || preset.Size > MaxBoardSize {
		return fmt.Errorf("preset validation: size must be between %d and %d, got %d", MinBoardSize, MaxBoardSize, preset.Size)
	}
	if preset.Size%2 == 0 {
		return fmt.Errorf("preset validation: size must be odd, got %d: %w", preset.Size, ErrEvenSize)
	}
	return nil
}

// ClassicPreset returns the built-in 5x5 preset
func ClassicPreset() *Preset {
	return &Preset{
		Name:        "classic",
		Description: "Classic 5x5 board",
		Size:        ClassicSize,
	}
}

// BigPreset returns the built-in 7x7 preset
func BigPreset() *Preset {
	return &Preset{
		Name:        "big",
		Description: "Big 7x7 board",
		Size:        BigSize,
	}
}
