package engine

// Count counts the cells of the given type on the board
func (b *Board) Count(cell Cell) int {
	count := 0
	for _, row := range b.grid {
		for _, c := range row {
			if c == cell {
				count++
			}
		}
	}
	return count
}

// Pieces returns the positions holding cell, row by row
func (b *Board) Pieces(cell Cell) []Position {
	var positions []Position
	for y, row := range b.grid {
		for x, c := range row {
			if c == cell {
				positions = append(positions, Position{X: x, Y: y})
			}
		}
	}
	return positions
}
