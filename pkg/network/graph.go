package network

import (
	"errors"
	"slices"
	"strings"
)

var (
	// ErrInvalidStation is returned by [Graph.AddStation] and
	// [Graph.AddConnection] when a station name is empty or has leading or
	// trailing white space.
	ErrInvalidStation = errors.New("invalid station name")

	// ErrAmbiguousStation is returned when a station differs from an existing
	// one only by letter case. Lookups fold case, so both could not be told apart.
	ErrAmbiguousStation = errors.New("station name collides with an existing station")

	// ErrInvalidWeight is returned by [Graph.AddConnection] for weights <= 0.
	ErrInvalidWeight = errors.New("connection weight must be positive")

	// ErrSelfLoop is returned by [Graph.AddConnection] when both endpoints
	// are the same station.
	ErrSelfLoop = errors.New("connection endpoints must differ")

	// ErrUnknownStation is returned when an identifier is not in the graph.
	ErrUnknownStation = errors.New("unknown station")

	// ErrAsymmetricConnection is returned by [Graph.Validate] when a
	// connection is missing its reverse or the two directions disagree on weight.
	ErrAsymmetricConnection = errors.New("connection is not symmetric")
)

// Connection is one side of an undirected edge.
type Connection struct {
	From   string // Station the connection is read from
	To     string // Neighbor station
	Weight int    // Distance/time units, always > 0
}

// Station is a named node and its neighbors.
type Station struct {
	ID        string
	neighbors map[string]int
}

// Degree returns the number of neighbors.
func (s *Station) Degree() int { return len(s.neighbors) }

// Graph is an undirected weighted transit graph.
//
// The zero value is not usable; create graphs with [New].
type Graph struct {
	stations map[string]*Station
	order    []string          // insertion order of station IDs
	folded   map[string]string // folded name -> canonical ID
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		stations: make(map[string]*Station),
		folded:   make(map[string]string),
	}
}

// AddStation inserts a station with no neighbors. Adding an identifier that
// already exists resets its neighbor set and drops the reverse side of each
// of its former connections.
//
// Returns ErrInvalidStation for an empty or padded name and
// ErrAmbiguousStation if the name matches a different station under case
// folding.
func (g *Graph) AddStation(name string) error {
	if err := g.checkName(name); err != nil {
		return err
	}
	if s, ok := g.stations[name]; ok {
		for to := range s.neighbors {
			delete(g.stations[to].neighbors, name)
		}
		s.neighbors = make(map[string]int)
		return nil
	}
	g.insert(name)
	return nil
}

// AddConnection adds an undirected edge of the given weight between a and b.
// Endpoints that do not exist yet are created. Adding the same pair again
// overwrites the weight in both directions.
func (g *Graph) AddConnection(a, b string, weight int) error {
	if weight <= 0 {
		return ErrInvalidWeight
	}
	if a == b {
		return ErrSelfLoop
	}
	for _, name := range []string{a, b} {
		if err := g.checkName(name); err != nil {
			return err
		}
	}
	sa := g.ensure(a)
	sb := g.ensure(b)
	sa.neighbors[b] = weight
	sb.neighbors[a] = weight
	return nil
}

func (g *Graph) checkName(name string) error {
	if name == "" || strings.TrimSpace(name) != name {
		return ErrInvalidStation
	}
	if id, ok := g.folded[fold(name)]; ok && id != name {
		return ErrAmbiguousStation
	}
	return nil
}

func (g *Graph) ensure(name string) *Station {
	if s, ok := g.stations[name]; ok {
		return s
	}
	return g.insert(name)
}

func (g *Graph) insert(name string) *Station {
	s := &Station{ID: name, neighbors: make(map[string]int)}
	g.stations[name] = s
	g.order = append(g.order, name)
	g.folded[fold(name)] = name
	return s
}

// Exists reports whether name matches a station, ignoring case and
// surrounding white space.
func (g *Graph) Exists(name string) bool {
	_, ok := g.Resolve(name)
	return ok
}

// Resolve returns the canonical identifier matching name, ignoring case and
// surrounding white space. Resolving a canonical identifier returns it unchanged.
func (g *Graph) Resolve(name string) (string, bool) {
	id, ok := g.folded[fold(name)]
	return id, ok
}

// Station returns the station with the exact identifier id.
func (g *Graph) Station(id string) (*Station, bool) {
	s, ok := g.stations[id]
	return s, ok
}

// Stations returns all station identifiers in insertion order.
func (g *Graph) Stations() []string { return slices.Clone(g.order) }

// StationCount returns the number of stations.
func (g *Graph) StationCount() int { return len(g.stations) }

// ConnectionCount returns the number of undirected connections.
func (g *Graph) ConnectionCount() int {
	n := 0
	for _, s := range g.stations {
		n += len(s.neighbors)
	}
	return n / 2
}

// Neighbors returns the connections leaving id, sorted by neighbor name.
// Returns nil if id is unknown or isolated.
func (g *Graph) Neighbors(id string) []Connection {
	s, ok := g.stations[id]
	if !ok || len(s.neighbors) == 0 {
		return nil
	}
	out := make([]Connection, 0, len(s.neighbors))
	for to, w := range s.neighbors {
		out = append(out, Connection{From: id, To: to, Weight: w})
	}
	slices.SortFunc(out, func(a, b Connection) int { return strings.Compare(a.To, b.To) })
	return out
}

// Weight returns the weight of the connection between a and b.
func (g *Graph) Weight(a, b string) (int, bool) {
	s, ok := g.stations[a]
	if !ok {
		return 0, false
	}
	w, ok := s.neighbors[b]
	return w, ok
}

// Connections returns every undirected connection once, ordered by the
// insertion order of the From station and then by neighbor name.
func (g *Graph) Connections() []Connection {
	pos := make(map[string]int, len(g.order))
	for i, id := range g.order {
		pos[id] = i
	}
	var out []Connection
	for _, id := range g.order {
		for _, c := range g.Neighbors(id) {
			if pos[c.To] > pos[id] {
				out = append(out, c)
			}
		}
	}
	return out
}

// Validate checks that every neighbor is a known station and that every
// connection has a reverse with the same weight.
func (g *Graph) Validate() error {
	for _, id := range g.order {
		for to, w := range g.stations[id].neighbors {
			other, ok := g.stations[to]
			if !ok {
				return ErrUnknownStation
			}
			if back, ok := other.neighbors[id]; !ok || back != w {
				return ErrAsymmetricConnection
			}
		}
	}
	return nil
}

func fold(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
