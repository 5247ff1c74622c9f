// Package planner answers journey queries against a loaded transit network.
//
// A [Planner] owns the station graph, the line table and the fare policy for
// its lifetime and never mutates them, so one value can serve concurrent
// queries. [Planner.Plan] runs a whole query:
//
//  1. resolve the source, then the destination, ignoring case
//  2. reject a query whose endpoints are the same station
//  3. find the lowest-weight route
//  4. derive the fare, the travel time and the line-change advisory
//
// Failures are coded errors from pkg/errors, with messages suitable for
// showing to the user as they are:
//
//	j, err := p.Plan(ctx, "majlis park", "DWARKA")
//	if err != nil {
//	    fmt.Println(errors.UserMessage(err))
//	}
package planner

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"time"

	merrors "github.com/matzehuels/metroroute/pkg/errors"
	"github.com/matzehuels/metroroute/pkg/fare"
	"github.com/matzehuels/metroroute/pkg/lines"
	"github.com/matzehuels/metroroute/pkg/netdata"
	"github.com/matzehuels/metroroute/pkg/network"
	"github.com/matzehuels/metroroute/pkg/observability"
)

// Journey is the answer to a single query.
type Journey struct {
	From           string   `json:"from"`
	To             string   `json:"to"`
	Stations       []string `json:"stations"`
	Weight         int      `json:"weight"`
	StationCount   int      `json:"station_count"`
	Fare           int      `json:"fare"`
	FareText       string   `json:"fare_text"`
	Minutes        int      `json:"minutes"`
	ChangeRequired bool     `json:"change_required"`
	Interchanges   []string `json:"interchanges,omitempty"`
	Legs           []Leg    `json:"legs"`
}

// Leg is one connection travelled on a journey.
type Leg struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int    `json:"weight"`
}

// Stop is a station and its shortest distance from a fixed origin.
type Stop struct {
	Station string `json:"station"`
	Weight  int    `json:"weight"`
}

// Planner answers queries against one immutable network.
type Planner struct {
	name  string
	graph *network.Graph
	lines *lines.Table
	fare  fare.Policy
}

// Option configures a Planner.
type Option func(*Planner)

// WithName sets the network name reported by [Planner.Name].
func WithName(name string) Option {
	return func(p *Planner) { p.name = name }
}

// New creates a planner. The caller must not modify g afterwards.
func New(g *network.Graph, t *lines.Table, policy fare.Policy, opts ...Option) *Planner {
	p := &Planner{graph: g, lines: t, fare: policy}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// FromNetwork creates a planner for a loaded network document.
func FromNetwork(n *netdata.Network, opts ...Option) *Planner {
	opts = append([]Option{WithName(n.Name)}, opts...)
	return New(n.Graph, n.Lines, n.Fare, opts...)
}

// Load reads a network file and creates a planner for it. An empty path
// loads the built-in network.
func Load(ctx context.Context, path string, opts ...Option) (*Planner, error) {
	start := time.Now()
	n, err := netdata.Load(path)
	if err != nil {
		return nil, err
	}
	observability.Route().OnNetworkLoad(ctx, n.Name, n.Graph.StationCount(), n.Graph.ConnectionCount(), time.Since(start))
	return FromNetwork(n, opts...), nil
}

// Name returns the network name.
func (p *Planner) Name() string { return p.name }

// Graph returns the station graph. It must be treated as read-only.
func (p *Planner) Graph() *network.Graph { return p.graph }

// Lines returns the line table.
func (p *Planner) Lines() *lines.Table { return p.lines }

// Fare returns the fare policy.
func (p *Planner) Fare() fare.Policy { return p.fare }

// Network returns the planner's data as a network value, for export.
func (p *Planner) Network() *netdata.Network {
	return &netdata.Network{Name: p.name, Graph: p.graph, Lines: p.lines, Fare: p.fare}
}

// =============================================================================
// Queries
// =============================================================================

// Plan finds the cheapest journey between two station names.
//
// Checks run in this order, and the first failure is returned:
//   - source does not resolve: UNKNOWN_STATION
//   - destination does not resolve: UNKNOWN_STATION
//   - both resolve to the same station: TRIVIAL_QUERY
//   - destination unreachable: NO_ROUTE
func (p *Planner) Plan(ctx context.Context, from, to string) (j *Journey, err error) {
	start := time.Now()
	observability.Route().OnQueryStart(ctx, from, to)
	defer func() {
		n := 0
		if j != nil {
			n = j.StationCount
		}
		observability.Route().OnQueryComplete(ctx, from, to, n, time.Since(start), err)
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := p.resolve(from, "Source")
	if err != nil {
		return nil, err
	}
	dest, err := p.resolve(to, "Destination")
	if err != nil {
		return nil, err
	}
	if src == dest {
		return nil, merrors.New(merrors.ErrCodeTrivialQuery, "Source and destination are the same. No need to travel!")
	}

	route, err := p.graph.ShortestRoute(src, dest)
	if errors.Is(err, network.ErrNoRoute) {
		return nil, merrors.Wrap(merrors.ErrCodeNoRoute, err, "No route between %s and %s.", src, dest)
	}
	if err != nil {
		return nil, merrors.Wrap(merrors.ErrCodeInternal, err, "route %s to %s", src, dest)
	}

	count := route.Len()
	j = &Journey{
		From:           route.Source(),
		To:             route.Destination(),
		Stations:       route.Stations,
		Weight:         route.Weight,
		StationCount:   count,
		Fare:           p.fare.Fare(count),
		FareText:       p.fare.Format(p.fare.Fare(count)),
		Minutes:        p.fare.Minutes(count),
		ChangeRequired: !p.lines.SameLine(src, dest),
		Legs:           p.legs(route.Stations),
	}
	if j.ChangeRequired {
		j.Interchanges = p.lines.Interchanges()
	}
	return j, nil
}

func (p *Planner) legs(stations []string) []Leg {
	out := make([]Leg, 0, len(stations)-1)
	for i := 0; i+1 < len(stations); i++ {
		w, _ := p.graph.Weight(stations[i], stations[i+1])
		out = append(out, Leg{From: stations[i], To: stations[i+1], Weight: w})
	}
	return out
}

// Reachable lists every station reachable from the named origin with its
// shortest distance, nearest first. The origin itself is included at 0.
func (p *Planner) Reachable(ctx context.Context, from string) ([]Stop, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	src, err := p.resolve(from, "Source")
	if err != nil {
		return nil, err
	}

	dist := p.graph.ShortestDistances(src)
	stops := make([]Stop, 0, len(dist))
	for id, w := range dist {
		stops = append(stops, Stop{Station: id, Weight: w})
	}
	slices.SortFunc(stops, func(a, b Stop) int {
		if c := cmp.Compare(a.Weight, b.Weight); c != 0 {
			return c
		}
		return cmp.Compare(a.Station, b.Station)
	})
	return stops, nil
}

// resolve maps user input to a canonical station identifier. role names the
// endpoint in the error message.
func (p *Planner) resolve(name, role string) (string, error) {
	if err := merrors.ValidateStationName(name); err != nil {
		return "", merrors.Wrap(merrors.ErrCodeUnknownStation, err, "%s station doesn't exist!", role)
	}
	id, ok := p.graph.Resolve(name)
	if !ok {
		return "", merrors.New(merrors.ErrCodeUnknownStation, "%s station doesn't exist!", role)
	}
	return id, nil
}
