package placement

import (
	"slices"
	"strings"

	wserrors "github.com/mj1618/workspace-output/internal/errors"
)

// Direction is a move direction relative to the output layout.
type Direction string

const (
	Left  Direction = "left"
	Right Direction = "right"
	Up    Direction = "up"
	Down  Direction = "down"
)

// Directions lists all valid directions in CLI order.
var Directions = []Direction{Left, Right, Up, Down}

// DirectionNames returns Directions as strings, for argument completion
// and tool schemas.
func DirectionNames() []string {
	names := make([]string, 0, len(Directions))
	for _, d := range Directions {
		names = append(names, string(d))
	}
	return names
}

// ParseDirection converts a flag or argument value to a Direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Directions, d) {
		return "", wserrors.New(wserrors.ErrCodeInvalidInput, "unknown direction %q (expected %s)", s, strings.Join(DirectionNames(), ", "))
	}
	return d, nil
}

// horizontal reports whether d moves along the X axis.
func (d Direction) horizontal() bool {
	return d == Left || d == Right
}

// step is -1 towards the origin (left/up) and +1 away from it.
func (d Direction) step() int {
	if d == Left || d == Up {
		return -1
	}
	return 1
}
