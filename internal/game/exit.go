package game

import (
	"math"
	"strconv"

	"github.com/pixil98/go-adventure/internal/storage"
)

// ExitKind distinguishes the three states an exit can be in.
type ExitKind int

const (
	ExitWall ExitKind = iota
	ExitOpen
	ExitBlocked
)

func (k ExitKind) String() string {
	switch k {
	case ExitOpen:
		return "open"
	case ExitBlocked:
		return "blocked"
	default:
		return "wall"
	}
}

// Exit is the connectivity state of one direction of a room. A blocked exit
// leads to its target once the owning room's obstacle has been resolved.
type Exit struct {
	kind   ExitKind
	target int
}

// Wall returns an exit that leads nowhere.
func Wall() Exit {
	return Exit{}
}

// Open returns an exit leading directly to room target.
func Open(target int) Exit {
	if target <= 0 {
		return Wall()
	}
	return Exit{kind: ExitOpen, target: target}
}

// Blocked returns an exit leading to room target once unblocked.
func Blocked(target int) Exit {
	if target <= 0 {
		return Wall()
	}
	return Exit{kind: ExitBlocked, target: target}
}

// ExitFromRaw decodes the signed exit encoding: 0 is a wall, +N is open to
// room N and -N is blocked on the way to room N. Values rejected by
// ValidRawExit decode as a wall.
func ExitFromRaw(raw int) Exit {
	switch {
	case !ValidRawExit(raw):
		return Wall()
	case raw > 0:
		return Open(raw)
	case raw < 0:
		return Blocked(-raw)
	default:
		return Wall()
	}
}

// ValidRawExit reports whether raw can be decoded. math.MinInt has no
// positive counterpart to block on.
func ValidRawExit(raw int) bool {
	return raw != math.MinInt
}

// Raw encodes the exit back into its signed form.
func (e Exit) Raw() int {
	switch e.kind {
	case ExitOpen:
		return e.target
	case ExitBlocked:
		return -e.target
	default:
		return 0
	}
}

func (e Exit) Kind() ExitKind {
	return e.kind
}

// Target returns the id of the room the exit leads to, or "" for a wall.
func (e Exit) Target() storage.Identifier {
	if e.kind == ExitWall {
		return ""
	}
	return storage.Identifier(strconv.Itoa(e.target))
}

// Unblocked returns the open form of a blocked exit. Other exits are returned as is.
func (e Exit) Unblocked() Exit {
	if e.kind == ExitBlocked {
		return Open(e.target)
	}
	return e
}

func (e Exit) String() string {
	return strconv.Itoa(e.Raw())
}
