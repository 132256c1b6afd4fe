package engine

import (
	"fmt"
	"strings"
)

// Board is a square grid of cells. Rows are indexed by Y from the top (Black's
// home row) to the bottom (White's home row).
type Board struct {
	grid [][]Cell
	size int
}

// NewBoard creates a new board of the given size with the initial layout:
// Black on the top row, White on the bottom row and the neutron in the centre.
func NewBoard(size int) (*Board, error) {
	if size%2 == 0 {
		return nil, ErrEvenSize
	}
	if size < MinBoardSize {
		return nil, ErrSizeOfOne
	}

	grid := make([][]Cell, size)
	for y := range grid {
		grid[y] = make([]Cell, size)
		for x := range grid[y] {
			switch y {
			case 0:
				grid[y][x] = Black
			case size - 1:
				grid[y][x] = White
			}
		}
	}
	center := (size - 1) / 2
	grid[center][center] = Neutron

	return &Board{grid: grid, size: size}, nil
}

// NewClassicBoard creates a 5x5 board
func NewClassicBoard() *Board {
	return mustBoard(ClassicSize)
}

// NewBigBoard creates a 7x7 board
func NewBigBoard() *Board {
	return mustBoard(BigSize)
}

func mustBoard(size int) *Board {
	b, err := NewBoard(size)
	if err != nil {
		panic(err)
	}
	return b
}

// Size returns the number of rows (and columns) of the board
func (b *Board) Size() int {
	return b.size
}

// InBounds reports whether pos lies on the board
func (b *Board) InBounds(pos Position) bool {
	return pos.X >= 0 && pos.X < b.size && pos.Y >= 0 && pos.Y < b.size
}

// Get returns the cell at pos, or false if pos is off the board
func (b *Board) Get(pos Position) (Cell, bool) {
	if !b.InBounds(pos) {
		return Empty, false
	}
	return b.grid[pos.Y][pos.X], true
}

// GetUnchecked returns the cell at pos.
// It panics if pos is off the board; callers must have validated pos.
func (b *Board) GetUnchecked(pos Position) Cell {
	if !b.InBounds(pos) {
		panic(fmt.Sprintf("index out of bounds: got %v but board size is %d", pos, b.size))
	}
	return b.grid[pos.Y][pos.X]
}

// Set writes cell at pos without any check
func (b *Board) Set(pos Position, cell Cell) {
	b.grid[pos.Y][pos.X] = cell
}

// IsValid checks that the board holds exactly size white pieces, size black
// pieces and a single neutron.
func (b *Board) IsValid() bool {
	whites, blacks := 0, 0
	hasNeutron := false
	for _, row := range b.grid {
		for _, cell := range row {
			switch cell {
			case White:
				whites++
			case Black:
				blacks++
			case Neutron:
				if hasNeutron {
					return false
				}
				hasNeutron = true
			case Empty:
			}
		}
	}
	return whites == b.size && blacks == b.size && hasNeutron
}

// GetNeutron returns the position of the neutron.
// A board without a neutron is a programming error and panics.
func (b *Board) GetNeutron() Position {
	for y, row := range b.grid {
		for x, cell := range row {
			if cell == Neutron {
				return Position{X: x, Y: y}
			}
		}
	}
	panic("no neutron on the board")
}

// IsNeutronBlocked reports whether none of the neighbours of the neutron is
// empty. Neighbours off the board are skipped.
func (b *Board) IsNeutronBlocked() bool {
	return b.isBlocked(b.GetNeutron())
}

func (b *Board) isBlocked(pos Position) bool {
	for _, d := range AllDirections {
		if cell, ok := b.Get(pos.Step(d)); ok && cell == Empty {
			return false
		}
	}
	return true
}

// GameState returns the board-level outcome, if any. A neutron on the top row
// wins for White, on the bottom row for Black; these take precedence over
// NeutronIsBlocked.
func (b *Board) GameState() (Winner, bool) {
	neutron := b.GetNeutron()
	switch {
	case neutron.Y == 0:
		return WhiteWins, true
	case neutron.Y == b.size-1:
		return BlackWins, true
	case b.isBlocked(neutron):
		return NeutronIsBlocked, true
	}
	return 0, false
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	grid := make([][]Cell, b.size)
	for y := range b.grid {
		grid[y] = append([]Cell(nil), b.grid[y]...)
	}
	return &Board{grid: grid, size: b.size}
}

// Equal reports whether both boards hold the same cells
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.size != other.size {
		return false
	}
	for y := range b.grid {
		for x := range b.grid[y] {
			if b.grid[y][x] != other.grid[y][x] {
				return false
			}
		}
	}
	return true
}

// Rows returns a copy of the grid, row by row
func (b *Board) Rows() [][]Cell {
	return b.Clone().grid
}

// String draws the board with column letters on top and row numbers on the right
func (b *Board) String() string {
	var sb strings.Builder
	for x := 0; x < b.size; x++ {
		fmt.Fprintf(&sb, "%c ", 'A'+x)
	}
	sb.WriteByte('\n')
	for y, row := range b.grid {
		for _, cell := range row {
			sb.WriteString(cell.Glyph())
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d\n", y+1)
	}
	return sb.String()
}
