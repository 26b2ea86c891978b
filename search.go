package aoc

import (
	"fmt"
	"slices"
)

// Step is a state paired with a cost. For a start state, Cost is the upfront
// cost of starting there. For a successor, it is the cost of the edge.
type Step[S comparable] struct {
	Cost  int
	State S
}

// Space is an implicit search graph.
type Space[S comparable] interface {
	// ForSuccessors calls f for every state reachable from s in one step,
	// along with the non-negative cost of that step. It stops early if f
	// returns false.
	//
	// It must not have side effects; the search may ask for the successors
	// of the same state more than once.
	ForSuccessors(s S, f func(cost int, next S) (keepGoing bool))
}

// SpaceFunc adapts a function to a Space.
type SpaceFunc[S comparable] func(s S, f func(cost int, next S) (keepGoing bool))

func (fn SpaceFunc[S]) ForSuccessors(s S, f func(cost int, next S) (keepGoing bool)) {
	fn(s, f)
}

// Heuristic estimates the remaining cost from a state to the nearest goal.
// It must never overestimate. A nil Heuristic is treated as zero.
type Heuristic[S comparable] func(S) int

type frontierEntry[S comparable] struct {
	cost  int
	state S
}

type searcher[S comparable] struct {
	sp     Space[S]
	isGoal func(S) bool
	h      Heuristic[S]

	frontier *PQ[frontierEntry[S]]
	best     map[S]int
	settled  map[S]bool
	parents  map[S]S // nil unless the path is wanted
}

func newSearcher[S comparable](sp Space[S], isGoal func(S) bool, h Heuristic[S], withParents bool) *searcher[S] {
	s := &searcher[S]{
		sp:       sp,
		isGoal:   isGoal,
		h:        h,
		frontier: MinQueue[frontierEntry[S]](),
		best:     make(map[S]int),
		settled:  make(map[S]bool),
	}
	if withParents {
		s.parents = make(map[S]S)
	}
	return s
}

func (s *searcher[S]) push(cost int, st S) {
	p := cost
	if s.h != nil {
		p += s.h(st)
	}
	s.frontier.PushValue(frontierEntry[S]{cost: cost, state: st}, p)
}

// run expands states in priority order until a goal is popped or the
// frontier is empty.
func (s *searcher[S]) run(starts []Step[S]) (goal S, cost int, ok bool) {
	for _, st := range starts {
		if st.Cost < 0 {
			panic(fmt.Sprintf("negative start cost %d for %v", st.Cost, st.State))
		}
		if c, ok := s.best[st.State]; ok && c <= st.Cost {
			continue
		}
		s.best[st.State] = st.Cost
		s.push(st.Cost, st.State)
	}
	for s.frontier.Len() > 0 {
		cur := s.frontier.Pop().V
		if s.settled[cur.state] {
			continue
		}
		if s.isGoal(cur.state) {
			return cur.state, cur.cost, true
		}
		s.settled[cur.state] = true
		s.sp.ForSuccessors(cur.state, func(w int, next S) bool {
			if w < 0 {
				panic(fmt.Sprintf("negative edge cost %d from %v to %v", w, cur.state, next))
			}
			if s.settled[next] {
				return true
			}
			nc := cur.cost + w
			if c, ok := s.best[next]; ok && c <= nc {
				return true
			}
			s.best[next] = nc
			if s.parents != nil {
				s.parents[next] = cur.state
			}
			s.push(nc, next)
			return true
		})
	}
	return goal, 0, false
}

// BestCost returns the cost of the cheapest path from any of the start states
// to a state for which isGoal returns true. The cost of a path is the cost of
// its start state plus the costs of its edges. If h is nil the search is
// Dijkstra's algorithm, otherwise it is A*.
//
// It reports false if no goal is reachable.
func BestCost[S comparable](starts []Step[S], sp Space[S], isGoal func(S) bool, h Heuristic[S]) (cost int, ok bool) {
	_, cost, ok = newSearcher(sp, isGoal, h, false).run(starts)
	return cost, ok
}

// BestPath is like BestCost but also returns one cheapest path, from its start
// state to its goal state inclusive.
func BestPath[S comparable](starts []Step[S], sp Space[S], isGoal func(S) bool, h Heuristic[S]) (path []S, cost int, ok bool) {
	s := newSearcher(sp, isGoal, h, true)
	goal, cost, ok := s.run(starts)
	if !ok {
		return nil, 0, false
	}
	path = append(path, goal)
	for cur := goal; ; {
		prev, ok := s.parents[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	slices.Reverse(path)
	return path, cost, true
}

type enumerator[S comparable] struct {
	sp     Space[S]
	isGoal func(S) bool
	best   int

	minSeen map[S]int
	onPath  map[S]bool
	path    Stack[S]
	paths   [][]S
}

func (e *enumerator[S]) visit(st S, cost int) {
	if e.isGoal(st) {
		if cost == e.best {
			e.paths = append(e.paths, append(e.path.Slice(), st))
		}
		return
	}
	if e.onPath[st] {
		return
	}
	// Equal-cost arrivals are expanded again: a state may sit on several
	// optimal paths at the same cost.
	if c, ok := e.minSeen[st]; ok && c < cost {
		return
	}
	e.minSeen[st] = cost

	e.onPath[st] = true
	e.path.Push(st)
	e.sp.ForSuccessors(st, func(w int, next S) bool {
		if nc := cost + w; nc <= e.best {
			e.visit(next, nc)
		}
		return true
	})
	e.path.Pop()
	delete(e.onPath, st)
}

// AllBestPaths returns every path from a start state to a goal state whose
// total cost is exactly best, which is normally the result of BestCost for
// the same arguments. Each path runs from its start state to its goal state
// inclusive, and never continues past a goal.
//
// If best is not achievable the result is empty.
func AllBestPaths[S comparable](starts []Step[S], sp Space[S], isGoal func(S) bool, best int) [][]S {
	e := &enumerator[S]{
		sp:      sp,
		isGoal:  isGoal,
		best:    best,
		minSeen: make(map[S]int),
		onPath:  make(map[S]bool),
	}
	for _, st := range starts {
		if st.Cost > best {
			continue
		}
		e.visit(st.State, st.Cost)
	}
	return e.paths
}

// StatesOnPaths returns the set of states that appear on any of paths.
func StatesOnPaths[S comparable](paths [][]S) map[S]bool {
	out := make(map[S]bool)
	for _, p := range paths {
		for _, s := range p {
			out[s] = true
		}
	}
	return out
}
