package engine

import "github.com/sirupsen/logrus"

// CanMoveTo checks if a sliding piece can enter the specified position
func (b *Board) CanMoveTo(pos Position) bool {
	cell, ok := b.Get(pos)
	return ok && cell == Empty
}

// SlideTarget returns the farthest position reachable from pos in the given
// direction, stepping while the next cell is on the board and empty. It
// returns pos itself when the direction is immediately blocked.
func (b *Board) SlideTarget(pos Position, direction Direction) Position {
	for b.CanMoveTo(pos.Step(direction)) {
		pos = pos.Step(direction)
	}
	return pos
}

// MovePiece slides the piece or neutron at pos as far as it can go in the
// given direction.
//
// pos must be on the board; GetUnchecked panics otherwise. It returns
// ErrTryToMoveEmptyCell if pos is empty and ErrDidNotMove if the direction is
// blocked right away. In both cases the board is left untouched.
func (g *Game) MovePiece(pos Position, direction Direction) error {
	cell := g.board.GetUnchecked(pos)
	if cell == Empty {
		return ErrTryToMoveEmptyCell
	}

	target := g.board.SlideTarget(pos, direction)
	if target == pos {
		return ErrDidNotMove
	}

	g.board.Set(pos, Empty)
	g.board.Set(target, cell)

	g.log.WithFields(logrus.Fields{
		"turn":      g.turn.String(),
		"cell":      cell.String(),
		"direction": direction.String(),
		"from":      pos.String(),
		"to":        target.String(),
	}).Debug("piece moved")
	return nil
}

// CanMove checks if the cell at pos holds something that can slide in the
// given direction
func (g *Game) CanMove(pos Position, direction Direction) bool {
	cell, ok := g.board.Get(pos)
	if !ok || cell == Empty {
		return false
	}
	return g.board.CanMoveTo(pos.Step(direction))
}

// PossibleDirections returns all directions the cell at pos can slide in
func (g *Game) PossibleDirections(pos Position) []Direction {
	var possible []Direction
	for _, d := range AllDirections {
		if g.CanMove(pos, d) {
			possible = append(possible, d)
		}
	}
	return possible
}
