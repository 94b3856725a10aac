package game

import (
	"strings"

	"golang.org/x/text/cases"
)

// SolutionKind separates obstacles solved by carrying out an item from those
// solved by typing an answer.
type SolutionKind int

const (
	SolutionItem SolutionKind = iota
	SolutionAnswer
)

func (k SolutionKind) String() string {
	if k == SolutionAnswer {
		return "answer"
	}
	return "item"
}

// Solution is what resolves an obstacle.
type Solution struct {
	Kind  SolutionKind
	Value string
}

// ParseSolution reads a stored solution. A value wrapped in single quotes is a
// free-text answer; anything else names an item.
func ParseSolution(raw string) Solution {
	raw = strings.TrimSpace(raw)
	if len(raw) >= 2 && strings.HasPrefix(raw, "'") && strings.HasSuffix(raw, "'") {
		return Solution{Kind: SolutionAnswer, Value: strings.TrimSpace(raw[1 : len(raw)-1])}
	}
	return Solution{Kind: SolutionItem, Value: raw}
}

// Matches reports whether input satisfies the solution.
func (s Solution) Matches(input string) bool {
	if s.Value == "" {
		return false
	}
	return sameName(s.Value, input)
}

// String returns the stored form of the solution.
func (s Solution) String() string {
	if s.Kind == SolutionAnswer {
		return "'" + s.Value + "'"
	}
	return s.Value
}

// foldName normalises a name for case-insensitive keys and comparisons.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

func sameName(a, b string) bool {
	return foldName(a) == foldName(b)
}
