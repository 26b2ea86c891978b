package main

import (
	"fmt"
	"sort"

	aoc "github.com/maisem/aoc2024"
)

// memorySpace is a square memory region into which bytes fall, one at a
// time, in the order listed. A fallen byte corrupts its cell.
type memorySpace struct {
	size    aoc.Pt
	falling []aoc.Pt
}

func newMemorySpace(w, h int, falling []aoc.Pt) (*memorySpace, error) {
	size := aoc.Pt{X: w, Y: h}
	for i, p := range falling {
		if p.X < 0 || p.Y < 0 || p.X >= w || p.Y >= h {
			return nil, fmt.Errorf("byte %d at %v is outside the %dx%d region", i, p, w, h)
		}
	}
	return &memorySpace{size: size, falling: falling}, nil
}

func (m *memorySpace) exit() aoc.Pt {
	return aoc.Pt{X: m.size.X - 1, Y: m.size.Y - 1}
}

// exitSteps returns the fewest steps from the top left corner to the exit in
// the bottom right corner after the first n bytes have fallen.
func (m *memorySpace) exitSteps(n int) (int, bool) {
	g := aoc.FilledGrid(m.size.X, m.size.Y, byte('.'))
	for _, p := range m.falling[:min(n, len(m.falling))] {
		g.Set(p, '#')
	}
	sp := aoc.GridSpace[byte]{
		Grid: g,
		Open: func(c byte) bool { return c == '.' },
	}
	exit := m.exit()
	return aoc.BestCost(
		[]aoc.Step[aoc.Pt]{{State: aoc.Pt{}}},
		sp,
		func(p aoc.Pt) bool { return p == exit },
		func(p aoc.Pt) int { return p.MDist(exit) },
	)
}

// firstBlocker returns the first byte after which the exit can no longer
// be reached.
func (m *memorySpace) firstBlocker() (aoc.Pt, bool) {
	n := sort.Search(len(m.falling)+1, func(n int) bool {
		_, ok := m.exitSteps(n)
		return !ok
	})
	if n == 0 || n > len(m.falling) {
		return aoc.Pt{}, false
	}
	return m.falling[n-1], true
}
