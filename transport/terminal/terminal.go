package terminal

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"
	"github.com/wricardo/neutron/game/engine"
)

var _ engine.PlayerIO = (*Terminal)(nil)

// clearScreen erases the terminal and moves the cursor to the top left
const clearScreen = "\x1b[2J\x1b[1;1H"

// Options controls the terminal output
type Options struct {
	Color       bool
	ClearScreen bool
}

// Terminal reads moves from in and draws the game to out
type Terminal struct {
	in   *bufio.Reader
	out  io.Writer
	au   aurora.Aurora
	opts Options
}

// New creates a terminal over the given streams
func New(in io.Reader, out io.Writer, opts Options) *Terminal {
	return &Terminal{
		in:   bufio.NewReader(in),
		out:  out,
		au:   aurora.NewAurora(opts.Color),
		opts: opts,
	}
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Render draws the board with coloured glyphs
func (t *Terminal) Render(board *engine.Board) string {
	var sb strings.Builder
	for x := 0; x < board.Size(); x++ {
		fmt.Fprintf(&sb, "%c ", 'A'+x)
	}
	sb.WriteByte('\n')
	for y, row := range board.Rows() {
		for _, cell := range row {
			sb.WriteString(t.glyph(cell))
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d\n", y+1)
	}
	return sb.String()
}

func (t *Terminal) glyph(cell engine.Cell) string {
	switch cell {
	case engine.White:
		return t.au.White(cell.Glyph()).String()
	case engine.Black:
		return t.au.Black(cell.Glyph()).String()
	case engine.Neutron:
		return t.au.Blue(cell.Glyph()).String()
	case engine.Empty:
		return t.au.Faint(cell.Glyph()).String()
	default:
		panic(fmt.Sprintf("invalid cell: %d", uint8(cell)))
	}
}

// Redraw clears the screen, if enabled, and draws the board
func (t *Terminal) Redraw(board *engine.Board) {
	if t.opts.ClearScreen {
		fmt.Fprint(t.out, clearScreen)
	}
	fmt.Fprintln(t.out, t.Render(board))
}

// AnnounceTurn tells who plays and what has to move
func (t *Terminal) AnnounceTurn(turn engine.Turn) {
	fmt.Fprintln(t.out, turn.String())
}

// AnnounceWinner prints the final result
func (t *Terminal) AnnounceWinner(winner engine.Winner) {
	fmt.Fprintf(t.out, "%s wins!\n", t.au.Bold(winner.String()))
}

// ExplainPosition shows the expected position format
func (t *Terminal) ExplainPosition() {
	fmt.Fprintf(t.out, "What piece should move next? %s %s\n", t.au.Faint("ex:"), t.au.Bold("A3"))
}

// ExplainDirection shows the direction numbering
func (t *Terminal) ExplainDirection() {
	fmt.Fprintf(t.out, "Please enter a direction %s:\n", t.au.Green("1-8"))
	fmt.Fprintln(t.out, t.au.Faint("[1] Up [2] Up Right [3] Right [4] Down Right"))
	fmt.Fprintln(t.out, t.au.Faint("[5] Down [6] Down Left [7] Left [8] Up Left"))
}

// AskPosition prompts until a syntactically valid position is entered
func (t *Terminal) AskPosition() (engine.Position, error) {
	for {
		line, err := t.readLine()
		if err != nil {
			return engine.Position{}, err
		}
		if pos, err := ParsePosition(line); err == nil {
			return pos, nil
		}
	}
}

// AskDirection prompts until a digit from 1 to 8 is entered
func (t *Terminal) AskDirection() (engine.Direction, error) {
	for {
		line, err := t.readLine()
		if err != nil {
			return 0, err
		}
		if dir, err := ParseDirection(line); err == nil {
			return dir, nil
		}
	}
}

// readLine prompts and reads one line of any length. A last line without a
// trailing newline is still returned; io.EOF only comes once input is drained.
func (t *Terminal) readLine() (string, error) {
	fmt.Fprintf(t.out, "%s ", t.au.Green(">"))
	line, err := t.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
