package network

import (
	"container/heap"
	"errors"
	"math"
	"slices"

	"github.com/katalvlaran/lvlath/algorithms"
	"github.com/katalvlaran/lvlath/core"
)

// ErrNoRoute is returned by [Graph.ShortestRoute] when the destination is
// not reachable from the source.
var ErrNoRoute = errors.New("no route")

// Route is an ordered station sequence from source to destination inclusive.
type Route struct {
	Stations []string // Source first, destination last
	Weight   int      // Sum of connection weights along Stations
}

// Len returns the number of stations on the route, both endpoints included.
func (r Route) Len() int { return len(r.Stations) }

// Source returns the first station, or "" for an empty route.
func (r Route) Source() string {
	if len(r.Stations) == 0 {
		return ""
	}
	return r.Stations[0]
}

// Destination returns the last station, or "" for an empty route.
func (r Route) Destination() string {
	if len(r.Stations) == 0 {
		return ""
	}
	return r.Stations[len(r.Stations)-1]
}

// ShortestRoute returns the lowest-weight route from src to dest.
//
// Both arguments must be canonical identifiers (see [Graph.Resolve]);
// otherwise ErrUnknownStation is returned. If dest cannot be reached the
// result is ErrNoRoute and an empty Route. src == dest yields a single
// station route of weight 0.
//
// The search stops as soon as dest is settled. Runs in O((V+E) log V).
func (g *Graph) ShortestRoute(src, dest string) (Route, error) {
	if _, ok := g.stations[src]; !ok {
		return Route{}, ErrUnknownStation
	}
	if _, ok := g.stations[dest]; !ok {
		return Route{}, ErrUnknownStation
	}

	s := g.search(src, dest)
	d, ok := s.dist[dest]
	if !ok {
		return Route{}, ErrNoRoute
	}
	path, err := s.path(src, dest)
	if err != nil {
		return Route{}, err
	}
	return Route{Stations: path, Weight: d}, nil
}

// ShortestDistances returns the minimum total weight from src to every
// station reachable from it, src included at 0. Unreachable stations are
// absent from the map. Returns nil if src is unknown.
//
// The whole component is settled, so this runs lvlath's Dijkstra over an
// undirected weighted copy of the graph instead of the route search.
func (g *Graph) ShortestDistances(src string) map[string]int {
	if _, ok := g.stations[src]; !ok {
		return nil
	}
	// An isolated station is not a vertex of the copy.
	if g.stations[src].Degree() == 0 {
		return map[string]int{src: 0}
	}

	cg := core.NewGraph(false, true)
	for _, c := range g.Connections() {
		cg.AddEdge(c.From, c.To, int64(c.Weight))
	}
	dist, _, err := algorithms.Dijkstra(cg, src)
	if err != nil {
		return map[string]int{src: 0}
	}

	out := make(map[string]int, len(dist))
	for id, d := range dist {
		if d == math.MaxInt64 {
			continue
		}
		out[id] = int(d)
	}
	return out
}

// search holds the state of one Dijkstra run. A station missing from dist
// has infinite tentative distance.
type search struct {
	dist    map[string]int
	prev    map[string]string
	settled map[string]bool
}

// search runs Dijkstra from src and returns as soon as stop is settled.
// Neighbors are relaxed in name order and ties on distance go to the
// earlier push, so equal-weight routes resolve the same way every run.
func (g *Graph) search(src, stop string) *search {
	s := &search{
		dist:    map[string]int{src: 0},
		prev:    make(map[string]string),
		settled: make(map[string]bool),
	}

	pq := &queue{}
	heap.Push(pq, &entry{station: src})

	for pq.Len() > 0 {
		cur := heap.Pop(pq).(*entry)
		if s.settled[cur.station] {
			continue
		}
		s.settled[cur.station] = true
		if cur.station == stop {
			break
		}

		for _, c := range g.Neighbors(cur.station) {
			if s.settled[c.To] {
				continue
			}
			next := cur.dist + c.Weight
			if old, ok := s.dist[c.To]; ok && next >= old {
				continue
			}
			s.dist[c.To] = next
			s.prev[c.To] = cur.station
			heap.Push(pq, &entry{station: c.To, dist: next})
		}
	}
	return s
}

// path walks predecessor links back from dest. Every step must find a
// predecessor until src is reached; a missing link means dest was never
// connected to src and is reported as ErrNoRoute.
func (s *search) path(src, dest string) ([]string, error) {
	path := []string{dest}
	for at := dest; at != src; {
		p, ok := s.prev[at]
		if !ok || len(path) > len(s.dist) {
			return nil, ErrNoRoute
		}
		path = append(path, p)
		at = p
	}
	slices.Reverse(path)
	return path, nil
}

// =============================================================================
// Priority Queue
// =============================================================================

type entry struct {
	station string
	dist    int
	seq     int // push order, breaks ties between equal distances
}

// queue is a binary min-heap ordered by distance, then push order.
type queue struct {
	items []*entry
	next  int
}

func (q *queue) Len() int { return len(q.items) }

func (q *queue) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	return a.seq < b.seq
}

func (q *queue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *queue) Push(x any) {
	e := x.(*entry)
	e.seq = q.next
	q.next++
	q.items = append(q.items, e)
}

func (q *queue) Pop() any {
	old := q.items
	n := len(old)
	e := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]
	return e
}
