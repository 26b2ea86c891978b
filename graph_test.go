package aoc

import (
	"reflect"
	"testing"
)

func TestAllShortestPaths(t *testing.T) {
	var g Graph[string]
	g.AddArc("a", "b", 4)
	g.AddArc("b", "c", 1)
	g.AddArc("a", "c", 7)
	g.AddEdge("c", "d", 2)
	g.AddNode("e")

	got := g.AllShortestPaths()
	tests := []struct {
		a, b   string
		want   int
		wantOK bool
	}{
		{"a", "a", 0, true},
		{"a", "c", 5, true},
		{"a", "d", 7, true},
		{"d", "c", 2, true},
		{"c", "a", 0, false},
		{"a", "e", 0, false},
	}
	for _, tt := range tests {
		d, ok := got[Edge[string]{tt.a, tt.b}]
		if ok != tt.wantOK || d != tt.want {
			t.Errorf("dist %s->%s = %d, %v; want %d, %v", tt.a, tt.b, d, ok, tt.want, tt.wantOK)
		}
	}
}

func TestGraphRemoveNode(t *testing.T) {
	var g Graph[int]
	g.AddEdge(1, 2, 1)
	g.AddEdge(2, 3, 1)
	g.AddArc(3, 4, 1)

	g2 := g.Clone()
	g2.RemoveNode(3)
	if got, want := g2.ReachableNodes(1), map[int]bool{1: true, 2: true}; !reflect.DeepEqual(got, want) {
		t.Errorf("after RemoveNode, reachable = %v; want %v", got, want)
	}
	if got := len(g.ReachableNodes(1)); got != 4 {
		t.Errorf("original graph reaches %d nodes; want 4", got)
	}
	if _, ok := g2.Edges[2][3]; ok {
		t.Error("edge to removed node remains")
	}
}
