package engine

import (
	"errors"
	"strings"
	"testing"
)

func TestValidatePreset(t *testing.T) {
	tests := []struct {
		name      string
		preset    *Preset
		wantError string
	}{
		{"classic", ClassicPreset(), ""},
		{"big", BigPreset(), ""},
		{"largest", &Preset{Name: "max", Description: "Largest board", Size: MaxBoardSize}, ""},
		{"nil", nil, "preset is nil"},
		{"missing name", &Preset{Description: "d", Size: 5}, "name is required"},
		{"missing description", &Preset{Name: "n", Size: 5}, "description is required"},
		{"too small", &Preset{Name: "n", Description: "d", Size: 1}, "size must be between"},
		{"too large", &Preset{Name: "n", Description: "d", Size: 27}, "size must be between"},
		{"even", &Preset{Name: "n", Description: "d", Size: 6}, "size must be odd"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidatePreset(test.preset)
			if test.wantError == "" {
				if err != nil {
					t.Errorf("Expected valid preset, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %q", test.wantError)
			}
			if !strings.Contains(err.Error(), test.wantError) {
				t.Errorf("Expected error containing %q, got %v", test.wantError, err)
			}
		})
	}
}

func TestValidatePreset_EvenSizeWrapsSentinel(t *testing.T) {
	err := ValidatePreset(&Preset{Name: "n", Description: "d", Size: 8})
	if !errors.Is(err, ErrEvenSize) {
		t.Errorf("Expected ErrEvenSize, got %v", err)
	}
}
