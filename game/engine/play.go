package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// PlayerIO is the adapter the turn loop reads moves from and draws to.
//
// AskPosition and AskDirection block until the player enters something
// syntactically valid. They only return an error when input is no longer
// available (for example io.EOF).
type PlayerIO interface {
	Redraw(board *Board)
	AnnounceTurn(turn Turn)
	ExplainPosition()
	ExplainDirection()
	AskPosition() (Position, error)
	AskDirection() (Direction, error)
}

// Play runs the game loop until a winner is found, then draws the board one
// last time and returns the winner.
func (g *Game) Play(ui PlayerIO) (Winner, error) {
	g.log.WithField("size", g.board.Size()).Info("game started")

	for {
		ui.Redraw(g.board)
		ui.AnnounceTurn(g.turn)

		var err error
		if g.turn.IsNeutronTurn() {
			err = g.playNeutron(ui)
		} else {
			err = g.playPiece(ui)
		}
		if err != nil {
			g.log.WithError(err).Warn("game aborted")
			return 0, fmt.Errorf("%s: %w", g.turn, err)
		}

		g.NextTurn()
		if winner, over := g.GameState(); over {
			ui.Redraw(g.board)
			g.log.WithField("winner", winner.String()).Info("game over")
			return winner, nil
		}
	}
}

// playNeutron makes the current player move the neutron
func (g *Game) playNeutron(ui PlayerIO) error {
	pos := g.board.GetNeutron()
	ui.ExplainDirection()
	return g.slideUntilMoved(ui, pos)
}

// playPiece makes the current player pick one of their pieces and move it
func (g *Game) playPiece(ui PlayerIO) error {
	ui.ExplainPosition()
	var pos Position
	for {
		p, err := ui.AskPosition()
		if err != nil {
			return err
		}
		cell, ok := g.board.Get(p)
		if !ok || cell != g.turn.Player() {
			g.log.WithFields(logrus.Fields{
				"position": p.String(),
				"pieces":   positionList(g.board.Pieces(g.turn.Player())),
			}).Debug("not a piece of the current player")
			continue
		}
		pos = p
		break
	}

	ui.ExplainDirection()
	return g.slideUntilMoved(ui, pos)
}

// slideUntilMoved asks for directions until the cell at pos has moved
func (g *Game) slideUntilMoved(ui PlayerIO, pos Position) error {
	for {
		direction, err := ui.AskDirection()
		if err != nil {
			return err
		}
		err = g.MovePiece(pos, direction)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, ErrDidNotMove):
			g.log.WithField("direction", direction.String()).Debug("blocked, asking again")
		case errors.Is(err, ErrTryToMoveEmptyCell):
			panic(fmt.Sprintf("engine selected empty cell %v", pos))
		default:
			return err
		}
	}
}

func positionList(positions []Position) string {
	names := make([]string, len(positions))
	for i, pos := range positions {
		names[i] = pos.String()
	}
	return strings.Join(names, " ")
}
