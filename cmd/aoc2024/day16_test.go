package main

import (
	"testing"

	"github.com/stretchr/testify/require"

	aoc "github.com/maisem/aoc2024"
)

const smallMaze = `
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
`

const bigMaze = `
#################
#...#...#...#..E#
#.#.#.#.#.#.#.#.#
#.#.#.#...#...#.#
#.#.#.#.###.#.#.#
#...#.#.#.....#.#
#.#.#.#.#.#####.#
#.#...#.#.#.....#
#.#.#####.#.###.#
#.#.#.......#...#
#.#.###.#####.###
#.#.#...#.....#.#
#.#.#.#####.###.#
#.#.#.........#.#
#.#.#.#########.#
#S#.............#
#################
`

func mustMaze(t *testing.T, in string) *reindeerMaze {
	t.Helper()
	m, err := parseReindeerMaze(aoc.ParseGrid([]byte(in)))
	require.NoError(t, err)
	return m
}

func TestReindeerMaze(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantScore int
		wantSeats int
	}{
		{"small", smallMaze, 7036, 45},
		{"big", bigMaze, 11048, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := mustMaze(t, tt.in)
			score, ok := m.lowestScore()
			require.True(t, ok)
			require.Equal(t, tt.wantScore, score)

			dijkstra, ok := aoc.BestCost(m.starts(), m, m.atEnd, nil)
			require.True(t, ok)
			require.Equal(t, score, dijkstra, "heuristic changed the answer")

			seats, ok := m.bestSeats()
			require.True(t, ok)
			require.Equal(t, tt.wantSeats, seats)
		})
	}
}

func TestReindeerMazeBestPath(t *testing.T) {
	m := mustMaze(t, smallMaze)
	path, cost, ok := aoc.BestPath(m.starts(), m, m.atEnd, m.distToEnd)
	require.True(t, ok)
	require.Equal(t, 7036, cost)
	require.Equal(t, m.starts()[0].State, path[0])
	require.Equal(t, m.end, path[len(path)-1].Pt)

	var turns, moves int
	for i := 1; i < len(path); i++ {
		if path[i].Pt == path[i-1].Pt {
			turns++
		} else {
			moves++
			require.True(t, m.open(path[i].Pt), "path walks through a wall at %v", path[i].Pt)
		}
	}
	require.Equal(t, cost, turns*turnCost+moves*moveCost)
}

func TestReindeerMazeWalledOff(t *testing.T) {
	m := mustMaze(t, `
#####
#S#E#
#####
`)
	_, ok := m.lowestScore()
	require.False(t, ok)
	_, ok = m.bestSeats()
	require.False(t, ok)
}

func TestParseReindeerMazeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"no start", "#.E#"},
		{"no end", "#S.#"},
		{"two starts", "#SSE#"},
		{"two ends", "#SEE#"},
		{"bad cell", "#S?E#"},
	}
	for _, tt := range tests {
		_, err := parseReindeerMaze(aoc.ParseGrid([]byte(tt.in)))
		require.Error(t, err, tt.name)
	}
}
