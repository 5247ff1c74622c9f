package fare

import "testing"

func TestFare(t *testing.T) {
	p := Default()

	tests := []struct {
		count int
		want  int
	}{
		{-1, 0},
		{0, 0},
		{1, 5},
		{2, 10},
		{3, 15},
		{14, 70},
	}

	for _, tt := range tests {
		if got := p.Fare(tt.count); got != tt.want {
			t.Errorf("Fare(%d) = %d, want %d", tt.count, got, tt.want)
		}
	}
}

func TestFareMonotonic(t *testing.T) {
	for _, p := range []Policy{Default(), {UnitFare: 0}, {UnitFare: 12}} {
		prev := p.Fare(-5)
		for n := -4; n <= 100; n++ {
			got := p.Fare(n)
			if got < prev {
				t.Fatalf("policy %+v: Fare(%d) = %d < Fare(%d) = %d", p, n, got, n-1, prev)
			}
			prev = got
		}
	}
}

func TestMinutes(t *testing.T) {
	p := Default()
	if got := p.Minutes(3); got != 6 {
		t.Errorf("Minutes(3) = %d, want 6", got)
	}
	if got := p.Minutes(-2); got != 0 {
		t.Errorf("Minutes(-2) = %d, want 0", got)
	}
}

func TestFormat(t *testing.T) {
	if got := Default().Format(15); got != "₹15" {
		t.Errorf("Format(15) = %q, want %q", got, "₹15")
	}
	p := Policy{Currency: "EUR "}
	if got := p.Format(3); got != "EUR 3" {
		t.Errorf("Format(3) = %q, want %q", got, "EUR 3")
	}
}

func TestWithDefaults(t *testing.T) {
	got := Policy{UnitFare: 8}.WithDefaults()
	want := Policy{UnitFare: 8, MinutesPerStation: DefaultMinutesPerStation, Currency: DefaultCurrency}
	if got != want {
		t.Errorf("WithDefaults() = %+v, want %+v", got, want)
	}
	if got := (Policy{}).WithDefaults(); got != Default() {
		t.Errorf("zero policy WithDefaults() = %+v, want %+v", got, Default())
	}
}
