package game

// ObstacleKind identifies the concrete type behind an Obstacle.
type ObstacleKind int

const (
	ObstaclePuzzle ObstacleKind = iota
	ObstacleMonster
)

func (k ObstacleKind) String() string {
	if k == ObstacleMonster {
		return "monster"
	}
	return "puzzle"
}

// Obstacle is something in a room that keeps its blocked exits shut until it
// is resolved.
type Obstacle interface {
	ObstacleKind() ObstacleKind
	ObstacleName() string

	// IsActive reports whether the obstacle still blocks its room.
	IsActive() bool

	// SetActive overrides the active flag. Used when restoring saved state.
	SetActive(bool)

	// Reward is the score awarded when the obstacle is resolved.
	Reward() int

	// Resolve attempts the obstacle with input and deactivates it on a match.
	// It always fails once the obstacle is inactive.
	Resolve(input string) bool

	// Effects is the text shown while the obstacle is active.
	Effects() string
}

func blockCauseFor(o Obstacle) BlockCause {
	if o.ObstacleKind() == ObstacleMonster {
		return BlockMonster
	}
	return BlockPuzzle
}
