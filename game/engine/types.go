package engine

import (
	"errors"
	"fmt"
)

const (
	// Preset board sizes
	ClassicSize = 5
	BigSize     = 7

	// Validation constants
	MinBoardSize = 3
	MaxBoardSize = 25 // column letters A..Y
)

var (
	ErrSizeOfOne          = errors.New("board size must be at least 3")
	ErrEvenSize           = errors.New("board size must be odd")
	ErrTryToMoveEmptyCell = errors.New("cannot move an empty cell")
	ErrDidNotMove         = errors.New("piece did not move")
)

// Cell represents the content of a single board cell
type Cell uint8

const (
	Empty Cell = iota
	White
	Black
	Neutron
)

// String returns the lowercase name of the cell
func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case White:
		return "white"
	case Black:
		return "black"
	case Neutron:
		return "neutron"
	default:
		panic(fmt.Sprintf("invalid cell: %d", uint8(c)))
	}
}

// Glyph returns the symbol used to draw the cell
func (c Cell) Glyph() string {
	switch c {
	case Empty:
		return "·"
	case White:
		return "○"
	case Black:
		return "●"
	case Neutron:
		return "◎"
	default:
		panic(fmt.Sprintf("invalid cell: %d", uint8(c)))
	}
}

// IsPiece reports whether the cell holds a player's piece
func (c Cell) IsPiece() bool {
	return c == White || c == Black
}

// Position represents x,y coordinates. X is the column, Y the row, both zero-based.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the position offset by (dx, dy)
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Step returns the position one cell away in the given direction
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return p.Add(dx, dy)
}

// String returns the board notation of the position, e.g. "C3"
func (p Position) String() string {
	if p.X < 0 || p.X >= 26 || p.Y < 0 {
		return fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return fmt.Sprintf("%c%d", 'A'+p.X, p.Y+1)
}

// Direction is one of the 8 compass directions a piece can slide in
type Direction uint8

const (
	Up Direction = iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

// AllDirections lists the directions in prompt order (1=Up ... 8=UpLeft)
var AllDirections = []Direction{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}

// Delta returns the unit displacement of the direction. Y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case UpRight:
		return 1, -1
	case Right:
		return 1, 0
	case DownRight:
		return 1, 1
	case Down:
		return 0, 1
	case DownLeft:
		return -1, 1
	case Left:
		return -1, 0
	case UpLeft:
		return -1, -1
	default:
		panic(fmt.Sprintf("invalid direction: %d", uint8(d)))
	}
}

// Opposite returns the direction pointing the other way
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case UpRight:
		return DownLeft
	case Right:
		return Left
	case DownRight:
		return UpLeft
	case Down:
		return Up
	case DownLeft:
		return UpRight
	case Left:
		return Right
	case UpLeft:
		return DownRight
	default:
		panic(fmt.Sprintf("invalid direction: %d", uint8(d)))
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case UpRight:
		return "up-right"
	case Right:
		return "right"
	case DownRight:
		return "down-right"
	case Down:
		return "down"
	case DownLeft:
		return "down-left"
	case Left:
		return "left"
	case UpLeft:
		return "up-left"
	default:
		panic(fmt.Sprintf("invalid direction: %d", uint8(d)))
	}
}

// Winner is the outcome reported by the board and the game.
//
// NeutronIsBlocked is only ever produced by Board.GameState. Game.GameState
// turns it into WhiteWins or BlackWins depending on whose neutron turn it is.
type Winner uint8

const (
	WhiteWins Winner = iota
	BlackWins
	NeutronIsBlocked
)

func (w Winner) String() string {
	switch w {
	case WhiteWins:
		return "White"
	case BlackWins:
		return "Black"
	case NeutronIsBlocked:
		return "NeutronIsBlocked"
	default:
		panic(fmt.Sprintf("invalid winner: %d", uint8(w)))
	}
}

// Turn tells whose turn it is and which kind of piece has to move
type Turn uint8

const (
	WhiteNeutron Turn = iota
	WhitePiece
	BlackNeutron
	BlackPiece
)

// Next returns the following turn in the fixed cycle
// WhiteNeutron -> WhitePiece -> BlackNeutron -> BlackPiece -> WhiteNeutron.
func (t Turn) Next() Turn {
	switch t {
	case WhiteNeutron:
		return WhitePiece
	case WhitePiece:
		return BlackNeutron
	case BlackNeutron:
		return BlackPiece
	case BlackPiece:
		return WhiteNeutron
	default:
		panic(fmt.Sprintf("invalid turn: %d", uint8(t)))
	}
}

// Player returns the colour of the player whose turn it is
func (t Turn) Player() Cell {
	switch t {
	case WhiteNeutron, WhitePiece:
		return White
	case BlackNeutron, BlackPiece:
		return Black
	default:
		panic(fmt.Sprintf("invalid turn: %d", uint8(t)))
	}
}

// IsNeutronTurn reports whether the neutron has to move
func (t Turn) IsNeutronTurn() bool {
	return t == WhiteNeutron || t == BlackNeutron
}

// String returns the announcement shown to the players
func (t Turn) String() string {
	switch t {
	case WhiteNeutron:
		return "White to play and move the neutron"
	case WhitePiece:
		return "White to play and move a piece"
	case BlackNeutron:
		return "Black to play and move the neutron"
	case BlackPiece:
		return "Black to play and move a piece"
	default:
		panic(fmt.Sprintf("invalid turn: %d", uint8(t)))
	}
}

// Preset describes a named board size, loaded from JSON
type Preset struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Size        int    `json:"size"`
}
