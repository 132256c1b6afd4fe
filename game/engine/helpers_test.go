package engine

import "testing"

// boardFromRows builds a board from rows of 'B', 'W', 'N' and '.' characters
func boardFromRows(t *testing.T, rows ...string) *Board {
	t.Helper()
	size := len(rows)
	grid := make([][]Cell, size)
	for y, row := range rows {
		if len(row) != size {
			t.Fatalf("row %d has %d cells, expected %d", y, len(row), size)
		}
		grid[y] = make([]Cell, size)
		for x, ch := range row {
			switch ch {
			case 'B':
				grid[y][x] = Black
			case 'W':
				grid[y][x] = White
			case 'N':
				grid[y][x] = Neutron
			case '.':
				grid[y][x] = Empty
			default:
				t.Fatalf("invalid character %q at row %d, col %d", ch, y, x)
			}
		}
	}
	return &Board{grid: grid, size: size}
}

func gameWithBoard(board *Board, turn Turn) *Game {
	g := newGame(board)
	g.turn = turn
	return g
}
