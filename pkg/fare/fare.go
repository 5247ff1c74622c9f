// Package fare derives ticket prices and travel time estimates from the
// number of stations on a route.
package fare

import "fmt"

// Defaults for the built-in network.
const (
	DefaultUnitFare          = 5
	DefaultMinutesPerStation = 2
	DefaultCurrency          = "₹"
)

// Policy is a flat per-station pricing rule. Counts include both endpoints
// of the route.
type Policy struct {
	UnitFare          int    `toml:"unit" yaml:"unit" json:"unit" validate:"gte=0"`
	MinutesPerStation int    `toml:"minutes_per_station" yaml:"minutes_per_station" json:"minutes_per_station" validate:"gte=0"`
	Currency          string `toml:"currency" yaml:"currency" json:"currency"`
}

// Default returns the policy used when a network file does not set one.
func Default() Policy {
	return Policy{
		UnitFare:          DefaultUnitFare,
		MinutesPerStation: DefaultMinutesPerStation,
		Currency:          DefaultCurrency,
	}
}

// WithDefaults fills zero fields from [Default].
func (p Policy) WithDefaults() Policy {
	d := Default()
	if p.UnitFare == 0 {
		p.UnitFare = d.UnitFare
	}
	if p.MinutesPerStation == 0 {
		p.MinutesPerStation = d.MinutesPerStation
	}
	if p.Currency == "" {
		p.Currency = d.Currency
	}
	return p
}

// Fare returns stationCount * UnitFare. Negative counts are treated as 0.
func (p Policy) Fare(stationCount int) int {
	return max(stationCount, 0) * p.UnitFare
}

// Minutes returns the estimated travel time for stationCount stations.
func (p Policy) Minutes(stationCount int) int {
	return max(stationCount, 0) * p.MinutesPerStation
}

// Format renders amount with the policy's currency symbol, e.g. "₹15".
func (p Policy) Format(amount int) string {
	return fmt.Sprintf("%s%d", p.Currency, amount)
}
