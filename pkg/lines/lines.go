// Package lines holds the static line membership table of a transit network
// and answers whether two stations share a line.
//
// A [Table] is immutable once built. Station comparisons fold case and trim
// white space, the same rule station lookup in package network applies, so a resolved
// identifier and a literal from the table always compare equal.
//
//	t, _ := lines.New([]lines.Line{
//	    {Name: "Pink", Stations: []string{"Majlis Park", "Azadpur", "Karkarduma"}},
//	    {Name: "Blue", Stations: []string{"Dwarka", "Karkarduma"}},
//	})
//	t.SameLine("Majlis Park", "Azadpur") // true
//	t.SameLine("Majlis Park", "Dwarka")  // false
//	t.Interchanges()                     // [Karkarduma]
package lines

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrDuplicateLine is returned by [New] when two lines share a name.
	ErrDuplicateLine = errors.New("duplicate line name")

	// ErrEmptyLine is returned by [New] for a line without a name or stations.
	ErrEmptyLine = errors.New("line must have a name and at least one station")

	// ErrUnknownStation is returned by [Table.Validate] when a listed station
	// is not part of the network.
	ErrUnknownStation = errors.New("line lists unknown station")
)

// Line is a named, ordered list of stations served by one service.
type Line struct {
	Name     string   `toml:"name" yaml:"name" json:"name" validate:"required"`
	Colour   string   `toml:"colour" yaml:"colour" json:"colour,omitempty"`
	Stations []string `toml:"stations" yaml:"stations" json:"stations" validate:"min=1,dive,required"`
}

// Table is an immutable set of lines.
type Table struct {
	lines   []Line
	members map[string][]int // folded station -> indexes into lines
}

// New builds a table from lines. The input slices are copied.
func New(lines []Line) (*Table, error) {
	t := &Table{members: make(map[string][]int)}
	seen := make(map[string]bool, len(lines))

	for i, l := range lines {
		if l.Name == "" || len(l.Stations) == 0 {
			return nil, fmt.Errorf("line %d: %w", i, ErrEmptyLine)
		}
		key := fold(l.Name)
		if seen[key] {
			return nil, fmt.Errorf("%s: %w", l.Name, ErrDuplicateLine)
		}
		seen[key] = true

		l.Stations = slices.Clone(l.Stations)
		t.lines = append(t.lines, l)
		for _, s := range l.Stations {
			k := fold(s)
			if !slices.Contains(t.members[k], i) {
				t.members[k] = append(t.members[k], i)
			}
		}
	}
	return t, nil
}

// Lines returns a copy of every line in table order.
func (t *Table) Lines() []Line {
	out := make([]Line, len(t.lines))
	for i, l := range t.lines {
		l.Stations = slices.Clone(l.Stations)
		out[i] = l
	}
	return out
}

// Line returns the named line, matched case-insensitively.
func (t *Table) Line(name string) (Line, bool) {
	for _, l := range t.lines {
		if strings.EqualFold(l.Name, name) {
			l.Stations = slices.Clone(l.Stations)
			return l, true
		}
	}
	return Line{}, false
}

// SameLine reports whether at least one line serves both a and b.
func (t *Table) SameLine(a, b string) bool {
	la, lb := t.members[fold(a)], t.members[fold(b)]
	for _, i := range la {
		if slices.Contains(lb, i) {
			return true
		}
	}
	return false
}

// LinesOf returns the names of the lines serving station, in table order.
func (t *Table) LinesOf(station string) []string {
	idx := t.members[fold(station)]
	if len(idx) == 0 {
		return nil
	}
	names := make([]string, len(idx))
	for i, j := range idx {
		names[i] = t.lines[j].Name
	}
	return names
}

// Interchanges returns stations served by two or more lines, in the order
// they first appear in the table.
func (t *Table) Interchanges() []string {
	var out []string
	seen := make(map[string]bool)
	for _, l := range t.lines {
		for _, s := range l.Stations {
			k := fold(s)
			if seen[k] || len(t.members[k]) < 2 {
				continue
			}
			seen[k] = true
			out = append(out, s)
		}
	}
	return out
}

// Validate checks every listed station with exists and reports the first
// one it rejects.
func (t *Table) Validate(exists func(string) bool) error {
	for _, l := range t.lines {
		for _, s := range l.Stations {
			if !exists(s) {
				return fmt.Errorf("%s line: %q: %w", l.Name, s, ErrUnknownStation)
			}
		}
	}
	return nil
}

func fold(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
