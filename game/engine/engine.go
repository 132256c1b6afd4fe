package engine

import (
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Game owns a board and the current turn
type Game struct {
	id    string
	board *Board
	turn  Turn
	log   *logrus.Entry
}

// NewGame creates a new game on a board of the given size.
// White plays first and has to move one of its pieces.
func NewGame(size int) (*Game, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, err
	}
	return newGame(board), nil
}

// NewClassicGame creates a game on a 5x5 board
func NewClassicGame() *Game {
	return newGame(NewClassicBoard())
}

// NewBigGame creates a game on a 7x7 board
func NewBigGame() *Game {
	return newGame(NewBigBoard())
}

// NewGameFromPreset validates the preset and creates a game of its size
func NewGameFromPreset(preset *Preset) (*Game, error) {
	if err := ValidatePreset(preset); err != nil {
		return nil, err
	}
	return NewGame(preset.Size)
}

func newGame(board *Board) *Game {
	id := uuid.NewString()
	return &Game{
		id:    id,
		board: board,
		turn:  WhitePiece,
		log:   discardLogger().WithField("game_id", id),
	}
}

func discardLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// WithLogger attaches logger to the game, tagged with the game id
func (g *Game) WithLogger(logger logrus.FieldLogger) *Game {
	g.log = logger.WithField("game_id", g.id)
	return g
}

// ID returns the unique identifier of the game
func (g *Game) ID() string {
	return g.id
}

// Board returns the board of the game
func (g *Game) Board() *Board {
	return g.board
}

// Turn returns the current turn
func (g *Game) Turn() Turn {
	return g.turn
}

// NextTurn advances the turn along the fixed cycle
func (g *Game) NextTurn() Turn {
	g.turn = g.turn.Next()
	g.log.WithField("turn", g.turn.String()).Debug("turn advanced")
	return g.turn
}

// GameState returns the winner, if any.
//
// Row wins from the board pass through unchanged. A blocked neutron is
// decided by the turn: it loses for the player who has to move it now. During
// a piece turn a blocked neutron does not end the game yet.
func (g *Game) GameState() (Winner, bool) {
	winner, ok := g.board.GameState()
	if !ok {
		return 0, false
	}
	switch winner {
	case WhiteWins, BlackWins:
		return winner, true
	case NeutronIsBlocked:
		switch g.turn {
		case BlackNeutron:
			return WhiteWins, true
		case WhiteNeutron:
			return BlackWins, true
		case WhitePiece, BlackPiece:
			return 0, false
		}
	}
	return 0, false
}
