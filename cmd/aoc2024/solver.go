package main

import (
	"fmt"

	aoc "github.com/maisem/aoc2024"
)

type solver struct {
	*aoc.Puzzle
}

/*
want=7036

###############
#.......#....E#
#.#.###.#.###.#
#.....#.#...#.#
#.###.#####.#.#
#.#.#.......#.#
#.#.#####.###.#
#...........#.#
###.#.#####.#.#
#...#.....#.#.#
#.#.#.###.#.#.#
#.....#...#.#.#
#.###.#.#.#.#.#
#S..#.....#...#
###############
*/
func (s solver) D16p1() any {
	m := aoc.MustGet(parseReindeerMaze(s.Grid()))
	s.Debug("maze", m.grid.Size(), "from", m.start, "to", m.end)
	score, ok := m.lowestScore()
	if !ok {
		return "unreachable"
	}
	return score
}

// want=45
func (s solver) D16p2() any {
	m := aoc.MustGet(parseReindeerMaze(s.Grid()))
	n, ok := m.bestSeats()
	if !ok {
		return "unreachable"
	}
	return n
}

/*
want=22

5,4
4,2
4,5
3,0
2,1
6,3
2,4
1,5
0,6
3,3
2,6
5,1
1,2
5,5
2,5
6,5
1,4
0,4
6,4
1,1
6,1
1,0
0,5
1,6
2,0
*/
func (s solver) D18p1() any {
	ram := s.loadMemory()
	steps, ok := ram.exitSteps(s.fallen())
	if !ok {
		return "unreachable"
	}
	return steps
}

// want=6,1
func (s solver) D18p2() any {
	ram := s.loadMemory()
	p, ok := ram.firstBlocker()
	if !ok {
		return "never blocked"
	}
	s.Debugf("exit cut off by byte at %v", p)
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

func (s solver) loadMemory() *memorySpace {
	size := 71
	if s.SampleMode {
		size = 7
	}
	var falling []aoc.Pt
	s.ForLines(func(line string) {
		x, y := aoc.IntPair(line, ",")
		falling = append(falling, aoc.Pt{X: x, Y: y})
	})
	return aoc.MustGet(newMemorySpace(size, size, falling))
}

// fallen is the number of bytes that have fallen by the time part 1 asks.
func (s solver) fallen() int {
	if s.SampleMode {
		return 12
	}
	return 1024
}
