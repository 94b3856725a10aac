package game

import (
	"fmt"
	"strings"
)

// Direction is one of the four cardinal exits of a room.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in save-document order.
var Directions = [...]Direction{North, South, East, West}

var directionNames = [...]string{"north", "south", "east", "west"}

// ParseDirection accepts a full direction name or its first letter, in any case.
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, d := range Directions {
		if s == directionNames[d] || s == directionNames[d][:1] {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, s)
}

func (d Direction) Valid() bool {
	return d >= North && d <= West
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}

// Key is the single-letter field name used by world and save documents.
func (d Direction) Key() string {
	return strings.ToUpper(d.String()[:1])
}

// Opposite returns the direction pointing back the way d came.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	default:
		return East
	}
}
