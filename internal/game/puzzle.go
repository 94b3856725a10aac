package game

// Puzzle blocks a room until it is given its solution.
type Puzzle struct {
	Name          string
	Solution      Solution
	Value         int
	Description   string
	EffectsText   string
	Target        string
	AffectsTarget bool
	AffectsPlayer bool
	Picture       string

	active bool
}

var _ Obstacle = (*Puzzle)(nil)

func (p *Puzzle) ObstacleKind() ObstacleKind { return ObstaclePuzzle }
func (p *Puzzle) ObstacleName() string       { return p.Name }
func (p *Puzzle) IsActive() bool             { return p.active }
func (p *Puzzle) SetActive(active bool)      { p.active = active }
func (p *Puzzle) Reward() int                { return p.Value }
func (p *Puzzle) Effects() string            { return p.EffectsText }

// Solve deactivates the puzzle if answer matches its solution.
func (p *Puzzle) Solve(answer string) bool {
	if !p.active || !p.Solution.Matches(answer) {
		return false
	}
	p.active = false
	return true
}

func (p *Puzzle) Resolve(input string) bool {
	return p.Solve(input)
}
