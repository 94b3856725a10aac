package game

// Fixture is a heavy, descriptive part of a room that cannot be carried.
type Fixture struct {
	Name        string
	Weight      int
	Puzzle      string
	States      string
	Description string
	Picture     string
}

// MatchName returns true if name refers to this fixture (case-insensitive).
func (f *Fixture) MatchName(name string) bool {
	return sameName(f.Name, name)
}
