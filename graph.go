package aoc

import (
	"math"

	"golang.org/x/exp/maps"
)

// Graph is an explicit weighted graph. Edges[a][b] is the cost of the edge
// from a to b.
type Graph[K comparable] struct {
	Nodes map[K]bool
	Edges map[K]map[K]int
}

func (g *Graph[K]) Clone() *Graph[K] {
	var out Graph[K]
	out.Nodes = maps.Clone(g.Nodes)
	out.Edges = maps.Clone(g.Edges)
	for k, e := range g.Edges {
		out.Edges[k] = maps.Clone(e)
	}
	return &out
}

// ForSuccessors implements Space.
func (g *Graph[K]) ForSuccessors(k K, f func(cost int, next K) (keepGoing bool)) {
	for n, d := range g.Edges[k] {
		if !f(d, n) {
			return
		}
	}
}

func (g *Graph[K]) AddNode(a K) {
	InitMap(&g.Nodes)
	g.Nodes[a] = true
}

func (g *Graph[K]) RemoveNode(a K) {
	for _, e := range g.Edges {
		delete(e, a)
	}
	delete(g.Edges, a)
	delete(g.Nodes, a)
}

// AddArc adds a directed edge from a to b.
func (g *Graph[K]) AddArc(a, b K, dist int) {
	InitMap(&g.Edges)
	g.AddNode(a)
	g.AddNode(b)
	if g.Edges[a] == nil {
		g.Edges[a] = make(map[K]int)
	}
	g.Edges[a][b] = dist
}

// AddEdge adds an undirected edge between a and b.
func (g *Graph[K]) AddEdge(a, b K, dist int) {
	g.AddArc(a, b, dist)
	g.AddArc(b, a, dist)
}

func (g *Graph[K]) ReachableNodes(a K) map[K]bool {
	visited := make(map[K]bool)
	q := NewQueue(a)
	q.While(func(v K) bool {
		if visited[v] {
			return true
		}
		visited[v] = true
		for k := range g.Edges[v] {
			q.Push(k)
		}
		return true
	})
	return visited
}

type Edge[T comparable] struct {
	A, B T
}

// AllShortestPaths returns the cost of the cheapest path between every
// ordered pair of nodes, using Floyd–Warshall. Unreachable pairs are absent.
func (g *Graph[K]) AllShortestPaths() map[Edge[K]]int {
	type key = Edge[K]
	dist := map[key]int{}
	for k1 := range g.Nodes {
		for k2 := range g.Nodes {
			if k1 == k2 {
				dist[key{k1, k1}] = 0
			} else if v, ok := g.Edges[k1][k2]; ok {
				dist[key{k1, k2}] = v
			} else {
				dist[key{k1, k2}] = math.MaxInt
			}
		}
	}
	for via := range g.Nodes {
		for k1 := range g.Nodes {
			e1 := dist[key{k1, via}]
			if e1 == math.MaxInt {
				continue
			}
			for k2 := range g.Nodes {
				e2 := dist[key{via, k2}]
				if e2 == math.MaxInt {
					continue
				}
				if e := e1 + e2; e < dist[key{k1, k2}] {
					dist[key{k1, k2}] = e
				}
			}
		}
	}
	maps.DeleteFunc(dist, func(_ key, v int) bool { return v == math.MaxInt })
	return dist
}
