package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	aoc "github.com/maisem/aoc2024"
)

const sampleBytes = `5,4
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
`

func parseBytes(t *testing.T, in string) []aoc.Pt {
	t.Helper()
	var out []aoc.Pt
	for _, line := range strings.Fields(in) {
		x, y := aoc.IntPair(line, ",")
		out = append(out, aoc.Pt{X: x, Y: y})
	}
	return out
}

func TestMemorySpace(t *testing.T) {
	m, err := newMemorySpace(7, 7, parseBytes(t, sampleBytes))
	require.NoError(t, err)

	steps, ok := m.exitSteps(12)
	require.True(t, ok)
	require.Equal(t, 22, steps)

	steps, ok = m.exitSteps(0)
	require.True(t, ok)
	require.Equal(t, 12, steps)

	p, ok := m.firstBlocker()
	require.True(t, ok)
	require.Equal(t, aoc.Pt{X: 6, Y: 1}, p)

	_, ok = m.exitSteps(21)
	require.False(t, ok)
	_, ok = m.exitSteps(20)
	require.True(t, ok)
}

func TestMemorySpaceWalledOff(t *testing.T) {
	m, err := newMemorySpace(7, 7, parseBytes(t, sampleBytes+"5,6\n6,5\n"))
	require.NoError(t, err)
	_, ok := m.exitSteps(len(m.falling))
	require.False(t, ok)

	m, err = newMemorySpace(7, 7, []aoc.Pt{{X: 5, Y: 6}, {X: 6, Y: 5}})
	require.NoError(t, err)
	_, ok = m.exitSteps(1)
	require.True(t, ok)
	_, ok = m.exitSteps(2)
	require.False(t, ok)
	p, ok := m.firstBlocker()
	require.True(t, ok)
	require.Equal(t, aoc.Pt{X: 6, Y: 5}, p)
}

func TestMemorySpaceNeverBlocked(t *testing.T) {
	m, err := newMemorySpace(7, 7, []aoc.Pt{{X: 3, Y: 3}})
	require.NoError(t, err)
	_, ok := m.firstBlocker()
	require.False(t, ok)
}

func TestNewMemorySpaceOutOfRange(t *testing.T) {
	_, err := newMemorySpace(7, 7, []aoc.Pt{{X: 7, Y: 0}})
	require.Error(t, err)
}
