// Package engine provides the core game logic for Neutron.
//
// The engine package implements the game mechanics including:
//   - Square board with the initial Neutron layout
//   - Slide moves that travel until the next piece or the board edge
//   - The fixed four-step turn cycle (neutron, then own piece)
//   - Win detection on the home rows and for a blocked neutron
//   - Preset validation
//
// Core Types:
//
// Board owns the grid of cells and answers pure queries about it. Game owns
// a Board and the current Turn, applies moves and interprets the board-level
// NeutronIsBlocked signal with the turn context. Play drives a whole game
// through a PlayerIO adapter.
//
// Usage:
//
//	game, err := engine.NewGame(7)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// White opens with one of its own pieces
//	err = game.MovePiece(engine.Position{X: 0, Y: 6}, engine.Up)
//	game.NextTurn()
//
//	winner, over := game.GameState()
//
// Game Rules:
//
// Black starts on the top row, White on the bottom row and the neutron in the
// centre. On each turn a player first slides the neutron, then one of their own
// pieces (White skips the neutron on the very first turn). The neutron on the
// top row wins for White, on the bottom row for Black, whoever moved it
// there. A player who cannot move the neutron loses.
package engine
