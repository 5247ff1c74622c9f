package network

import (
	"errors"
	"slices"
	"testing"
)

func TestAddStation(t *testing.T) {
	g := New()
	if err := g.AddStation("Majlis Park"); err != nil {
		t.Fatalf("AddStation: %v", err)
	}
	if g.StationCount() != 1 {
		t.Errorf("StationCount() = %d, want 1", g.StationCount())
	}
	if s, ok := g.Station("Majlis Park"); !ok || s.Degree() != 0 {
		t.Errorf("Station() = %v, %v; want bare station", s, ok)
	}
}

func TestAddStationErrors(t *testing.T) {
	tests := []struct {
		name    string
		setup   []string
		add     string
		wantErr error
	}{
		{"empty", nil, "", ErrInvalidStation},
		{"blank", nil, "   ", ErrInvalidStation},
		{"leading space", nil, " Azadpur", ErrInvalidStation},
		{"case collision", []string{"Azadpur"}, "AZADPUR", ErrAmbiguousStation},
		{"same id overwrites", []string{"Azadpur"}, "Azadpur", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			for _, s := range tt.setup {
				if err := g.AddStation(s); err != nil {
					t.Fatalf("setup AddStation(%q): %v", s, err)
				}
			}
			err := g.AddStation(tt.add)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddStation(%q) error = %v, want %v", tt.add, err, tt.wantErr)
			}
		})
	}
}

func TestAddStationOverwriteKeepsSymmetry(t *testing.T) {
	g := New()
	_ = g.AddConnection("A", "B", 4)
	_ = g.AddConnection("A", "C", 2)

	if err := g.AddStation("A"); err != nil {
		t.Fatalf("AddStation: %v", err)
	}
	if got := g.Neighbors("A"); got != nil {
		t.Errorf("Neighbors(A) = %v, want none after overwrite", got)
	}
	if _, ok := g.Weight("B", "A"); ok {
		t.Error("B should no longer list A as a neighbor")
	}
	if err := g.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
	if g.StationCount() != 3 {
		t.Errorf("StationCount() = %d, want 3", g.StationCount())
	}
}

func TestAddConnection(t *testing.T) {
	g := New()
	if err := g.AddConnection("Majlis Park", "Azadpur", 5); err != nil {
		t.Fatalf("AddConnection: %v", err)
	}

	for _, pair := range [][2]string{{"Majlis Park", "Azadpur"}, {"Azadpur", "Majlis Park"}} {
		w, ok := g.Weight(pair[0], pair[1])
		if !ok || w != 5 {
			t.Errorf("Weight(%q, %q) = %d, %v; want 5, true", pair[0], pair[1], w, ok)
		}
	}
	if g.StationCount() != 2 {
		t.Errorf("endpoints should be created implicitly, StationCount() = %d", g.StationCount())
	}
	if g.ConnectionCount() != 1 {
		t.Errorf("ConnectionCount() = %d, want 1", g.ConnectionCount())
	}
}

func TestAddConnectionLastWriteWins(t *testing.T) {
	g := New()
	_ = g.AddConnection("Karkarduma", "Anand Vihar ISBT", 2)
	_ = g.AddConnection("Anand Vihar ISBT", "Karkarduma", 3)

	for _, pair := range [][2]string{{"Karkarduma", "Anand Vihar ISBT"}, {"Anand Vihar ISBT", "Karkarduma"}} {
		if w, _ := g.Weight(pair[0], pair[1]); w != 3 {
			t.Errorf("Weight(%q, %q) = %d, want 3", pair[0], pair[1], w)
		}
	}
	if g.ConnectionCount() != 1 {
		t.Errorf("ConnectionCount() = %d, want 1", g.ConnectionCount())
	}
}

func TestAddConnectionErrors(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		weight  int
		wantErr error
	}{
		{"zero weight", "A", "B", 0, ErrInvalidWeight},
		{"negative weight", "A", "B", -3, ErrInvalidWeight},
		{"self loop", "A", "A", 1, ErrSelfLoop},
		{"empty endpoint", "A", "", 1, ErrInvalidStation},
		{"case collision", "a", "B", 1, ErrAmbiguousStation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			_ = g.AddStation("A")
			err := g.AddConnection(tt.a, tt.b, tt.weight)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AddConnection(%q, %q, %d) error = %v, want %v", tt.a, tt.b, tt.weight, err, tt.wantErr)
			}
			if g.StationCount() != 1 {
				t.Errorf("failed AddConnection should not create stations, StationCount() = %d", g.StationCount())
			}
		})
	}
}

func TestExistsAndResolve(t *testing.T) {
	g := New()
	_ = g.AddStation("Majlis Park")
	_ = g.AddStation("tilak nagar")

	tests := []struct {
		input  string
		want   string
		wantOK bool
	}{
		{"Majlis Park", "Majlis Park", true},
		{"MAJLIS PARK", "Majlis Park", true},
		{"majlis park", "Majlis Park", true},
		{"  Majlis Park\n", "Majlis Park", true},
		{"Tilak Nagar", "tilak nagar", true},
		{"Majlis", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := g.Resolve(tt.input)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Resolve(%q) = %q, %v; want %q, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
			if g.Exists(tt.input) != tt.wantOK {
				t.Errorf("Exists(%q) = %v, want %v", tt.input, !tt.wantOK, tt.wantOK)
			}
		})
	}
}

func TestResolveIdempotent(t *testing.T) {
	g := New()
	for _, s := range []string{"Majlis Park", "Anand Vihar ISBT", "tilak nagar", "IP Extension"} {
		_ = g.AddStation(s)
	}
	for _, input := range []string{"majlis PARK", "anand vihar isbt", "TILAK NAGAR", "ip extension"} {
		first, ok := g.Resolve(input)
		if !ok {
			t.Fatalf("Resolve(%q) failed", input)
		}
		second, ok := g.Resolve(first)
		if !ok || second != first {
			t.Errorf("Resolve(Resolve(%q)) = %q, want %q", input, second, first)
		}
	}
}

func TestStationsInsertionOrder(t *testing.T) {
	g := New()
	_ = g.AddStation("C")
	_ = g.AddConnection("A", "B", 1)
	_ = g.AddStation("C")

	want := []string{"C", "A", "B"}
	if got := g.Stations(); !slices.Equal(got, want) {
		t.Errorf("Stations() = %v, want %v", got, want)
	}
}

func TestNeighborsSorted(t *testing.T) {
	g := New()
	_ = g.AddConnection("Hub", "Zeta", 1)
	_ = g.AddConnection("Hub", "Alpha", 2)
	_ = g.AddConnection("Hub", "Mid", 3)

	var got []string
	for _, c := range g.Neighbors("Hub") {
		if c.From != "Hub" {
			t.Errorf("From = %q, want Hub", c.From)
		}
		got = append(got, c.To)
	}
	want := []string{"Alpha", "Mid", "Zeta"}
	if !slices.Equal(got, want) {
		t.Errorf("Neighbors(Hub) = %v, want %v", got, want)
	}
	if g.Neighbors("missing") != nil {
		t.Error("Neighbors of unknown station should be nil")
	}
}

func TestConnectionsListedOnce(t *testing.T) {
	g := New()
	_ = g.AddConnection("A", "B", 1)
	_ = g.AddConnection("B", "C", 2)
	_ = g.AddConnection("C", "A", 3)

	got := g.Connections()
	if len(got) != 3 {
		t.Fatalf("Connections() len = %d, want 3: %v", len(got), got)
	}
	want := []Connection{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 3},
		{From: "B", To: "C", Weight: 2},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Connections() = %v, want %v", got, want)
	}
}

func TestValidate(t *testing.T) {
	g := New()
	_ = g.AddConnection("A", "B", 1)
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}

	// Corrupt one direction directly.
	g.stations["A"].neighbors["B"] = 7
	if err := g.Validate(); !errors.Is(err, ErrAsymmetricConnection) {
		t.Errorf("Validate() = %v, want ErrAsymmetricConnection", err)
	}

	g.stations["A"].neighbors["B"] = 1
	g.stations["A"].neighbors["ghost"] = 1
	if err := g.Validate(); !errors.Is(err, ErrUnknownStation) && !errors.Is(err, ErrAsymmetricConnection) {
		t.Errorf("Validate() = %v, want an invariant error", err)
	}
}
