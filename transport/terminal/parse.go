package terminal

import (
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/wricardo/neutron/game/engine"
)

var (
	ErrInvalidPosition  = errors.New("invalid position")
	ErrInvalidDirection = errors.New("invalid direction")
)

var (
	positionPattern  = regexp.MustCompile(`^[A-Z][1-9][0-9]*$`)
	directionPattern = regexp.MustCompile(`^[1-8]$`)
)

// ParsePosition converts input such as "C3" (case-insensitive) to a zero-based
// position. It does not check the position against any board.
func ParsePosition(input string) (engine.Position, error) {
	input = strings.ToUpper(strings.TrimSpace(input))
	if !positionPattern.MatchString(input) {
		return engine.Position{}, ErrInvalidPosition
	}
	row, err := strconv.Atoi(input[1:])
	if err != nil {
		return engine.Position{}, ErrInvalidPosition
	}
	return engine.Position{X: int(input[0] - 'A'), Y: row - 1}, nil
}

// ParseDirection converts a digit from 1 to 8 to a direction
func ParseDirection(input string) (engine.Direction, error) {
	input = strings.TrimSpace(input)
	if !directionPattern.MatchString(input) {
		return 0, ErrInvalidDirection
	}
	return DirectionFromDigit(int(input[0] - '0'))
}

// DirectionFromDigit maps 1=Up, 2=UpRight, 3=Right, 4=DownRight, 5=Down,
// 6=DownLeft, 7=Left and 8=UpLeft.
func DirectionFromDigit(digit int) (engine.Direction, error) {
	switch digit {
	case 1:
		return engine.Up, nil
	case 2:
		return engine.UpRight, nil
	case 3:
		return engine.Right, nil
	case 4:
		return engine.DownRight, nil
	case 5:
		return engine.Down, nil
	case 6:
		return engine.DownLeft, nil
	case 7:
		return engine.Left, nil
	case 8:
		return engine.UpLeft, nil
	default:
		return 0, ErrInvalidDirection
	}
}
