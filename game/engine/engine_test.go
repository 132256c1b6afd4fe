package engine

import (
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
)

func TestNewGame(t *testing.T) {
	game, err := NewGame(5)
	if err != nil {
		t.Fatalf("Failed to create new game: %v", err)
	}
	if game.Turn() != WhitePiece {
		t.Errorf("Expected White to open with a piece, got %s", game.Turn())
	}
	if game.ID() == "" {
		t.Error("Expected game to have an id")
	}
	if _, over := game.GameState(); over {
		t.Error("Expected no winner on a fresh classic board")
	}
}

func TestNewGame_InvalidSize(t *testing.T) {
	if _, err := NewGame(1); !errors.Is(err, ErrSizeOfOne) {
		t.Errorf("Expected ErrSizeOfOne, got %v", err)
	}
	if _, err := NewGame(8); !errors.Is(err, ErrEvenSize) {
		t.Errorf("Expected ErrEvenSize, got %v", err)
	}
}

func TestNewGame_Presets(t *testing.T) {
	if got := NewClassicGame().Board().Size(); got != ClassicSize {
		t.Errorf("Expected classic size %d, got %d", ClassicSize, got)
	}
	if got := NewBigGame().Board().Size(); got != BigSize {
		t.Errorf("Expected big size %d, got %d", BigSize, got)
	}

	game, err := NewGameFromPreset(&Preset{Name: "huge", Description: "Huge board", Size: 11})
	if err != nil {
		t.Fatalf("Failed to create game from preset: %v", err)
	}
	if game.Board().Size() != 11 {
		t.Errorf("Expected size 11, got %d", game.Board().Size())
	}

	if _, err := NewGameFromPreset(&Preset{Name: "bad", Description: "Bad", Size: 4}); err == nil {
		t.Error("Expected error for even preset size")
	}
}

func TestNextTurn_Cycle(t *testing.T) {
	game := NewClassicGame()
	expected := []Turn{BlackNeutron, BlackPiece, WhiteNeutron, WhitePiece, BlackNeutron}
	for i, want := range expected {
		if got := game.NextTurn(); got != want {
			t.Errorf("step %d: expected %s, got %s", i, want, got)
		}
	}
}

func TestMovePiece_WhiteWinsScenario(t *testing.T) {
	game := NewClassicGame()

	if err := game.MovePiece(Position{X: 0, Y: 0}, Down); err != nil {
		t.Fatalf("Expected first move to succeed: %v", err)
	}
	if c := game.Board().GetUnchecked(Position{X: 0, Y: 3}); c != Black {
		t.Errorf("Expected piece to slide to (0,3), found %s there", c)
	}
	if err := game.MovePiece(Position{X: 2, Y: 2}, UpLeft); err != nil {
		t.Fatalf("Expected neutron move to succeed: %v", err)
	}
	if pos := game.Board().GetNeutron(); pos != (Position{X: 0, Y: 0}) {
		t.Errorf("Expected neutron at (0,0), got %v", pos)
	}

	winner, over := game.GameState()
	if !over || winner != WhiteWins {
		t.Errorf("Expected White to win, got %v (over=%v)", winner, over)
	}
}

func TestMovePiece_BlackWinsScenario(t *testing.T) {
	game := NewClassicGame()

	if err := game.MovePiece(Position{X: 4, Y: 4}, Up); err != nil {
		t.Fatalf("Expected first move to succeed: %v", err)
	}
	if c := game.Board().GetUnchecked(Position{X: 4, Y: 1}); c != White {
		t.Errorf("Expected piece to slide to (4,1), found %s there", c)
	}
	if err := game.MovePiece(Position{X: 2, Y: 2}, DownRight); err != nil {
		t.Fatalf("Expected neutron move to succeed: %v", err)
	}

	winner, over := game.GameState()
	if !over || winner != BlackWins {
		t.Errorf("Expected Black to win, got %v (over=%v)", winner, over)
	}
}

func TestMovePiece_Errors(t *testing.T) {
	tests := []struct {
		name    string
		pos     Position
		dir     Direction
		wantErr error
	}{
		{"empty cell", Position{1, 1}, Up, ErrTryToMoveEmptyCell},
		{"white off the edge", Position{0, 4}, Down, ErrDidNotMove},
		{"white into white", Position{0, 4}, Right, ErrDidNotMove},
		{"black into black", Position{2, 0}, Left, ErrDidNotMove},
		{"black off the edge", Position{2, 0}, UpRight, ErrDidNotMove},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			game := NewClassicGame()
			before := game.Board().Clone()

			err := game.MovePiece(test.pos, test.dir)
			if !errors.Is(err, test.wantErr) {
				t.Fatalf("Expected %v, got %v", test.wantErr, err)
			}
			if !game.Board().Equal(before) {
				t.Error("Expected board to be unchanged after a failed move")
			}
		})
	}
}

func TestMovePiece_PanicsOffBoard(t *testing.T) {
	game := NewClassicGame()
	defer func() {
		if recover() == nil {
			t.Error("Expected MovePiece to panic for a position off the board")
		}
	}()
	_ = game.MovePiece(Position{X: 5, Y: 2}, Up)
}

func TestMovePiece_SlidesUntilBlocked(t *testing.T) {
	tests := []struct {
		name string
		from Position
		dir  Direction
		want Position
	}{
		{"white stops before neutron", Position{2, 4}, Up, Position{2, 3}},
		{"neutron stops at edge", Position{2, 2}, Right, Position{4, 2}},
		{"neutron stops before black", Position{2, 2}, Up, Position{2, 1}},
		{"white diagonal stops before neutron", Position{0, 4}, UpRight, Position{1, 3}},
		{"black stops before white", Position{4, 0}, Down, Position{4, 3}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			game := NewClassicGame()
			cell := game.Board().GetUnchecked(test.from)

			if err := game.MovePiece(test.from, test.dir); err != nil {
				t.Fatalf("Expected move to succeed: %v", err)
			}
			if got := game.Board().GetUnchecked(test.want); got != cell {
				t.Errorf("Expected %s at %v, got %s", cell, test.want, got)
			}
			if got := game.Board().GetUnchecked(test.from); got != Empty {
				t.Errorf("Expected origin %v to be empty, got %s", test.from, got)
			}
		})
	}
}

// Every cell and direction of a fresh board either fails without touching the
// board, or moves exactly one piece to the first blocked cell.
func TestMovePiece_ConservesPieces(t *testing.T) {
	for _, size := range []int{3, 5, 7} {
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				for _, dir := range AllDirections {
					game, err := NewGame(size)
					if err != nil {
						t.Fatal(err)
					}
					pos := Position{X: x, Y: y}
					before := game.Board().Clone()
					cell := before.GetUnchecked(pos)

					err = game.MovePiece(pos, dir)
					after := game.Board()

					switch {
					case cell == Empty:
						if !errors.Is(err, ErrTryToMoveEmptyCell) {
							t.Errorf("size %d %v %s: expected ErrTryToMoveEmptyCell, got %v", size, pos, dir, err)
						}
						if !after.Equal(before) {
							t.Errorf("size %d %v %s: board changed", size, pos, dir)
						}
					case errors.Is(err, ErrDidNotMove):
						if !after.Equal(before) {
							t.Errorf("size %d %v %s: board changed", size, pos, dir)
						}
						if before.CanMoveTo(pos.Step(dir)) {
							t.Errorf("size %d %v %s: reported blocked but next cell is free", size, pos, dir)
						}
					case err != nil:
						t.Errorf("size %d %v %s: unexpected error %v", size, pos, dir, err)
					default:
						target := before.SlideTarget(pos, dir)
						if after.GetUnchecked(pos) != Empty {
							t.Errorf("size %d %v %s: origin not empty", size, pos, dir)
						}
						if after.GetUnchecked(target) != cell {
							t.Errorf("size %d %v %s: expected %s at %v", size, pos, dir, cell, target)
						}
						if after.CanMoveTo(target.Step(dir)) {
							t.Errorf("size %d %v %s: slide stopped early at %v", size, pos, dir, target)
						}
						if !after.IsValid() {
							t.Errorf("size %d %v %s: board no longer valid", size, pos, dir)
						}
					}
				}
			}
		}
	}
}

func TestMovePiece_ThereAndBack(t *testing.T) {
	game := NewClassicGame()

	// Black slides down and stops above the white row
	if err := game.MovePiece(Position{X: 1, Y: 0}, Down); err != nil {
		t.Fatal(err)
	}
	// The neutron follows into the vacated column
	if err := game.MovePiece(Position{X: 2, Y: 2}, UpLeft); err != nil {
		t.Fatal(err)
	}
	// Sliding back up stops below the neutron, not at the origin
	if err := game.MovePiece(Position{X: 1, Y: 3}, Up); err != nil {
		t.Fatal(err)
	}
	if c := game.Board().GetUnchecked(Position{X: 1, Y: 2}); c != Black {
		t.Errorf("Expected black at (1,2), got %s", c)
	}
	if c := game.Board().GetUnchecked(Position{X: 1, Y: 0}); c != Empty {
		t.Errorf("Expected (1,0) to stay empty, got %s", c)
	}
}

func TestCanMoveAndPossibleDirections(t *testing.T) {
	game := NewClassicGame()

	if game.CanMove(Position{X: 1, Y: 1}, Up) {
		t.Error("Expected empty cell not to be movable")
	}
	if game.CanMove(Position{X: -1, Y: 0}, Up) {
		t.Error("Expected off-board position not to be movable")
	}

	// The corner white piece can only go up or diagonally up-right
	got := game.PossibleDirections(Position{X: 0, Y: 4})
	expected := []Direction{Up, UpRight}
	if len(got) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, got)
	}
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Expected %v, got %v", expected, got)
		}
	}

	if n := len(game.PossibleDirections(Position{X: 2, Y: 2})); n != 8 {
		t.Errorf("Expected the neutron to have 8 free directions, got %d", n)
	}
}

func TestGameState_BlockedNeutronDependsOnTurn(t *testing.T) {
	rows := []string{"B....", ".BBB.", ".BNW.", ".WWW.", "W...."}

	tests := []struct {
		turn   Turn
		want   Winner
		wantOK bool
	}{
		{BlackNeutron, WhiteWins, true},
		{WhiteNeutron, BlackWins, true},
		{WhitePiece, 0, false},
		{BlackPiece, 0, false},
	}

	for _, test := range tests {
		t.Run(test.turn.String(), func(t *testing.T) {
			game := gameWithBoard(boardFromRows(t, rows...), test.turn)
			got, ok := game.GameState()
			if ok != test.wantOK {
				t.Fatalf("Expected over=%v, got %v (winner %v)", test.wantOK, ok, got)
			}
			if ok && got != test.want {
				t.Errorf("Expected %s, got %s", test.want, got)
			}
		})
	}
}

func TestGameState_RowWinsIgnoreTurn(t *testing.T) {
	for _, turn := range []Turn{WhiteNeutron, WhitePiece, BlackNeutron, BlackPiece} {
		game := gameWithBoard(boardFromRows(t, "NB...", "BW...", ".....", ".....", "....."), turn)
		if winner, over := game.GameState(); !over || winner != WhiteWins {
			t.Errorf("%s: expected White to win, got %v (over=%v)", turn, winner, over)
		}
	}
}

func TestMovePiece_Logs(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	game := NewClassicGame().WithLogger(logger)
	if err := game.MovePiece(Position{X: 0, Y: 4}, Up); err != nil {
		t.Fatal(err)
	}

	entry := hook.LastEntry()
	if entry == nil {
		t.Fatal("Expected a log entry")
	}
	if entry.Message != "piece moved" {
		t.Errorf("Expected 'piece moved', got %q", entry.Message)
	}
	if entry.Data["game_id"] != game.ID() {
		t.Errorf("Expected game_id %s, got %v", game.ID(), entry.Data["game_id"])
	}
	if entry.Data["from"] != "A5" || entry.Data["to"] != "A2" {
		t.Errorf("Expected move A5 -> A2, got %v -> %v", entry.Data["from"], entry.Data["to"])
	}
}
