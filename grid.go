package aoc

import (
	"bytes"
	"log"
	"reflect"

	"golang.org/x/exp/constraints"
	"tailscale.com/util/deephash"
)

// Grid is a rectangular grid indexed as g[y][x].
type Grid[T any] [][]T

func (g Grid[T]) At(p Pt) T {
	return g[p.Y][p.X]
}

func (g Grid[T]) Set(p Pt, v T) {
	g[p.Y][p.X] = v
}

// AtOk is like At but reports false for points outside the grid.
func (g Grid[T]) AtOk(p Pt) (T, bool) {
	if len(g) == 0 || p.X < 0 || p.Y < 0 || p.X >= len(g[0]) || p.Y >= len(g) {
		var zero T
		return zero, false
	}
	return g[p.Y][p.X], true
}

func (g Grid[T]) Size() Pt {
	if len(g) == 0 {
		return Pt{}
	}
	return Pt{len(g[0]), len(g)}
}

// Find returns the first point, in row order, for which match returns true.
func (g Grid[T]) Find(match func(T) bool) (Pt, bool) {
	for y, row := range g {
		for x, v := range row {
			if match(v) {
				return Pt{x, y}, true
			}
		}
	}
	return Pt{}, false
}

func MakeGrid[T any](x, y int) Grid[T] {
	out := make(Grid[T], y)
	for i := range out {
		out[i] = make([]T, x)
	}
	return out
}

// FilledGrid returns an x by y grid with every cell set to v.
func FilledGrid[T any](x, y int, v T) Grid[T] {
	g := MakeGrid[T](x, y)
	for _, row := range g {
		for i := range row {
			row[i] = v
		}
	}
	return g
}

// ParseGrid parses lines of text into a byte grid. Blank lines are skipped.
// All rows must have the same width.
func ParseGrid(in []byte) Grid[byte] {
	var g Grid[byte]
	for _, line := range bytes.Split(in, []byte("\n")) {
		line = bytes.TrimRight(line, "\r")
		if len(line) == 0 {
			continue
		}
		if len(g) > 0 && len(line) != len(g[0]) {
			log.Fatalf("ragged grid: row %d has width %d; want %d", len(g), len(line), len(g[0]))
		}
		g = append(g, bytes.Clone(line))
	}
	return g
}

var hashers map[reflect.Type]any // map[reflect.Type]func(*Grid[T]) deephash.Sum

// Hash returns a hash of the grid contents.
func (g Grid[T]) Hash() deephash.Sum {
	if hashers == nil {
		hashers = make(map[reflect.Type]any)
	}
	rt := reflect.TypeOf(g)
	h, ok := hashers[rt]
	if !ok {
		h = deephash.HasherForType[Grid[T]]()
		hashers[rt] = h
	}
	return h.(func(*Grid[T]) deephash.Sum)(&g)
}

// GridSpace is a Space over the cells of a grid. Every move goes to one of
// the four immediate neighbors, costs 1, and is allowed only onto cells for
// which Open returns true.
type GridSpace[T any] struct {
	Grid Grid[T]
	Open func(T) bool
}

func (s GridSpace[T]) ForSuccessors(p Pt, f func(cost int, next Pt) (keepGoing bool)) {
	p.ForImmediateNeighbors(func(n Pt) bool {
		v, ok := s.Grid.AtOk(n)
		if !ok || !s.Open(v) {
			return true
		}
		return f(1, n)
	})
}

// Path is a point and a direction.
type Path struct {
	Pt  Pt
	Dir Direction
}

// Forward returns p moved one step in its direction.
func (p Path) Forward() Path {
	p.Pt = p.Pt.Add(p.Dir.Delta())
	return p
}

// Turned returns p turned 90 degrees in place.
func (p Path) Turned(right bool) Path {
	p.Dir = p.Dir.Turn(right)
	return p
}

type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) Turn(right bool) Direction {
	if right {
		return (d + 1) % 4
	}
	return (d + 3) % 4
}

// Delta returns the unit step for d, with Y growing downward.
func (d Direction) Delta() Pt {
	switch d {
	case Up:
		return Pt{0, -1}
	case Right:
		return Pt{1, 0}
	case Down:
		return Pt{0, 1}
	case Left:
		return Pt{-1, 0}
	}
	panic("bad")
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "<"
	case Right:
		return ">"
	case Up:
		return "^"
	case Down:
		return "v"
	}
	return ""
}

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) Add(q Pt2[T]) Pt2[T] {
	return Pt2[T]{p.X + q.X, p.Y + q.Y}
}

func (p Pt2[T]) ForImmediateNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	p.ForNeighbors(func(n Pt2[T]) bool {
		if p.X == n.X || p.Y == n.Y {
			return f(n)
		}
		return true
	})
}

func (p Pt2[T]) ForNeighbors(f func(Pt2[T]) (keepGoing bool)) {
	for y := T(-1); y <= 1; y++ {
		for x := T(-1); x <= 1; x++ {
			if x == 0 && y == 0 {
				continue
			}
			if !f(Pt2[T]{p.X + x, p.Y + y}) {
				return
			}
		}
	}
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff[T](a.X, b.X) + AbsDiff[T](a.Y, b.Y)
}
