package main

import (
	"errors"
	"fmt"

	aoc "github.com/maisem/aoc2024"
)

const (
	moveCost = 1
	turnCost = 1000
)

// reindeerMaze is a maze in which moving forward costs moveCost and turning
// 90 degrees in place costs turnCost. Search states are aoc.Path values.
type reindeerMaze struct {
	grid       aoc.Grid[byte]
	start, end aoc.Pt
}

func parseReindeerMaze(g aoc.Grid[byte]) (*reindeerMaze, error) {
	if len(g) == 0 {
		return nil, errors.New("empty maze")
	}
	m := &reindeerMaze{grid: g}
	var haveStart, haveEnd bool
	for y, row := range g {
		for x, c := range row {
			p := aoc.Pt{X: x, Y: y}
			switch c {
			case '#', '.':
			case 'S':
				if haveStart {
					return nil, fmt.Errorf("second start at %v; first at %v", p, m.start)
				}
				m.start, haveStart = p, true
			case 'E':
				if haveEnd {
					return nil, fmt.Errorf("second end at %v; first at %v", p, m.end)
				}
				m.end, haveEnd = p, true
			default:
				return nil, fmt.Errorf("unrecognized cell %q at %v", c, p)
			}
		}
	}
	if !haveStart {
		return nil, errors.New("no start position")
	}
	if !haveEnd {
		return nil, errors.New("no end position")
	}
	return m, nil
}

func (m *reindeerMaze) open(p aoc.Pt) bool {
	c, ok := m.grid.AtOk(p)
	return ok && c != '#'
}

func (m *reindeerMaze) ForSuccessors(p aoc.Path, f func(cost int, next aoc.Path) (keepGoing bool)) {
	if !f(turnCost, p.Turned(false)) || !f(turnCost, p.Turned(true)) {
		return
	}
	if next := p.Forward(); m.open(next.Pt) {
		f(moveCost, next)
	}
}

func (m *reindeerMaze) starts() []aoc.Step[aoc.Path] {
	return []aoc.Step[aoc.Path]{{State: aoc.Path{Pt: m.start, Dir: aoc.Right}}}
}

func (m *reindeerMaze) atEnd(p aoc.Path) bool {
	return p.Pt == m.end
}

func (m *reindeerMaze) distToEnd(p aoc.Path) int {
	return p.Pt.MDist(m.end) * moveCost
}

// lowestScore returns the cheapest cost from the start, facing east, to the
// end in any direction.
func (m *reindeerMaze) lowestScore() (int, bool) {
	return aoc.BestCost(m.starts(), m, m.atEnd, m.distToEnd)
}

// bestSeats returns the number of cells that lie on at least one cheapest
// path.
func (m *reindeerMaze) bestSeats() (int, bool) {
	best, ok := m.lowestScore()
	if !ok {
		return 0, false
	}
	cells := map[aoc.Pt]bool{}
	for st := range aoc.StatesOnPaths(aoc.AllBestPaths(m.starts(), m, m.atEnd, best)) {
		cells[st.Pt] = true
	}
	return len(cells), true
}
