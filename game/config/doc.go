// Package config provides board preset management for Neutron.
//
// A preset names a board size. Two presets are built in:
//   - classic: the standard 5x5 board
//   - big: a 7x7 board
//
// More presets can be dropped as JSON files into a preset directory:
//
//	{"name": "huge", "description": "Huge 11x11 board", "size": 11}
//
// A file whose name matches a built-in preset replaces it.
//
// Usage:
//
//	manager, err := config.NewManager("presets")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	preset, err := manager.LoadPreset("big")
//	game, err := engine.NewGameFromPreset(preset)
//
// ValidateFile and ValidateDir check preset files without loading them into
// a Manager.
package config
