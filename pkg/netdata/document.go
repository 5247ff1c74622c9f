package netdata

import (
	"fmt"
	"slices"

	"github.com/go-playground/validator/v10"

	merrors "github.com/matzehuels/metroroute/pkg/errors"
	"github.com/matzehuels/metroroute/pkg/fare"
	"github.com/matzehuels/metroroute/pkg/lines"
	"github.com/matzehuels/metroroute/pkg/network"
)

// =============================================================================
// Document - Network Serialization
// =============================================================================

// Document is the canonical serialization format for a transit network.
type Document struct {
	Name        string       `toml:"name" yaml:"name" json:"name,omitempty"`
	Fare        fare.Policy  `toml:"fare" yaml:"fare" json:"fare"`
	Lines       []lines.Line `toml:"lines" yaml:"lines" json:"lines" validate:"dive"`
	Stations    []Station    `toml:"stations,omitempty" yaml:"stations,omitempty" json:"stations,omitempty" validate:"dive"`
	Connections []Connection `toml:"connections" yaml:"connections" json:"connections" validate:"dive"`
}

// Station is a station that belongs to no line, or one that should be
// created before any connection mentions it.
type Station struct {
	Name string `toml:"name" yaml:"name" json:"name" validate:"required"`
}

// Connection is an undirected weighted edge.
type Connection struct {
	From   string `toml:"from" yaml:"from" json:"from" validate:"required"`
	To     string `toml:"to" yaml:"to" json:"to" validate:"required,nefield=From"`
	Weight int    `toml:"weight" yaml:"weight" json:"weight" validate:"gt=0"`
}

// Network is a loaded document: graph, line table and fare policy.
type Network struct {
	Name  string
	Graph *network.Graph
	Lines *lines.Table
	Fare  fare.Policy
}

var validate = validator.New()

// Validate checks the document's field constraints.
func (d *Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		return merrors.Wrap(merrors.ErrCodeInvalidNetwork, err, "invalid network document")
	}
	return nil
}

// Build validates the document and constructs the network. Every station a
// line lists ends up in the graph, and the resulting graph passes
// [network.Graph.Validate].
func (d *Document) Build() (*Network, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	g := network.New()
	for _, l := range d.Lines {
		for _, s := range l.Stations {
			if err := addStation(g, s); err != nil {
				return nil, err
			}
		}
	}
	for _, s := range d.Stations {
		if err := addStation(g, s.Name); err != nil {
			return nil, err
		}
	}
	for _, c := range d.Connections {
		if err := g.AddConnection(c.From, c.To, c.Weight); err != nil {
			return nil, merrors.Wrap(merrors.ErrCodeInvalidNetwork, err, "connection %s - %s", c.From, c.To)
		}
	}
	if err := g.Validate(); err != nil {
		return nil, merrors.Wrap(merrors.ErrCodeInvalidNetwork, err, "network graph")
	}

	table, err := lines.New(d.Lines)
	if err != nil {
		return nil, merrors.Wrap(merrors.ErrCodeInvalidNetwork, err, "line table")
	}
	if err := table.Validate(g.Exists); err != nil {
		return nil, merrors.Wrap(merrors.ErrCodeInvalidNetwork, err, "line table")
	}

	return &Network{
		Name:  d.Name,
		Graph: g,
		Lines: table,
		Fare:  d.Fare.WithDefaults(),
	}, nil
}

// addStation adds a station unless it already exists, so a station listed
// on several lines keeps the neighbors it has.
func addStation(g *network.Graph, name string) error {
	if _, ok := g.Station(name); ok {
		return nil
	}
	if err := g.AddStation(name); err != nil {
		return merrors.Wrap(merrors.ErrCodeInvalidNetwork, err, "station %q", name)
	}
	return nil
}

// FromNetwork converts a network back to its serialization format.
// Stations not served by any line are listed under Stations, and each
// connection appears once.
func FromNetwork(n *Network) *Document {
	doc := &Document{
		Name:  n.Name,
		Fare:  n.Fare,
		Lines: n.Lines.Lines(),
	}

	onLine := make(map[string]bool)
	for _, l := range doc.Lines {
		for _, s := range l.Stations {
			onLine[s] = true
		}
	}
	for _, id := range n.Graph.Stations() {
		if !onLine[id] {
			doc.Stations = append(doc.Stations, Station{Name: id})
		}
	}
	for _, c := range n.Graph.Connections() {
		doc.Connections = append(doc.Connections, Connection{From: c.From, To: c.To, Weight: c.Weight})
	}
	return doc
}

// StationNames returns every station named anywhere in the document, in
// build order, without duplicates.
func (d *Document) StationNames() []string {
	var out []string
	add := func(s string) {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	for _, l := range d.Lines {
		for _, s := range l.Stations {
			add(s)
		}
	}
	for _, s := range d.Stations {
		add(s.Name)
	}
	for _, c := range d.Connections {
		add(c.From)
		add(c.To)
	}
	return out
}

func (d *Document) String() string {
	return fmt.Sprintf("%s (%d lines, %d stations, %d connections)",
		d.Name, len(d.Lines), len(d.StationNames()), len(d.Connections))
}
