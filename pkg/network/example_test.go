package network_test

import (
	"errors"
	"fmt"

	"github.com/matzehuels/metroroute/pkg/network"
)

func ExampleGraph_ShortestRoute() {
	g := network.New()
	_ = g.AddConnection("Majlis Park", "Azadpur", 5)
	_ = g.AddConnection("Azadpur", "Shalimar Bagh", 3)

	r, err := g.ShortestRoute("Majlis Park", "Shalimar Bagh")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(r.Stations)
	fmt.Println("Weight:", r.Weight)
	// Output:
	// [Majlis Park Azadpur Shalimar Bagh]
	// Weight: 8
}

func ExampleGraph_Resolve() {
	g := network.New()
	_ = g.AddStation("Anand Vihar ISBT")

	id, ok := g.Resolve("anand vihar isbt")
	fmt.Println(id, ok)
	fmt.Println(g.Exists("ANAND VIHAR ISBT"))
	// Output:
	// Anand Vihar ISBT true
	// true
}

func ExampleGraph_ShortestRoute_noRoute() {
	g := network.New()
	_ = g.AddConnection("Dwarka", "Rajouri Garden", 6)
	_ = g.AddStation("tilak nagar")

	_, err := g.ShortestRoute("Dwarka", "tilak nagar")
	fmt.Println(errors.Is(err, network.ErrNoRoute))
	// Output:
	// true
}
