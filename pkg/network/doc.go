// Package network provides the weighted undirected graph that models a
// transit network, along with case-insensitive station lookup and
// shortest-path search.
//
// # Overview
//
// A [Graph] maps station identifiers to their connections. Every connection
// is undirected and carries a positive integer weight (distance or travel
// time units). The graph keeps stations in insertion order so listings and
// tie-breaking are stable for a fixed build order.
//
//	g := network.New()
//	_ = g.AddConnection("Majlis Park", "Azadpur", 5)
//	_ = g.AddConnection("Azadpur", "Shalimar Bagh", 3)
//
//	r, err := g.ShortestRoute("Majlis Park", "Shalimar Bagh")
//	// r.Stations == [Majlis Park Azadpur Shalimar Bagh], r.Weight == 8
//
// # Station Lookup
//
// Identifiers are case-preserving. [Graph.Resolve] and [Graph.Exists] match
// user input case-insensitively through a folded-name index that is updated
// on every insertion. Two identifiers that differ only by case cannot
// coexist: [Graph.AddStation] returns [ErrAmbiguousStation].
//
// # Shortest Paths
//
// [Graph.ShortestRoute] runs Dijkstra's algorithm with a binary heap and
// stops as soon as the destination is settled. When the destination cannot
// be reached it returns [ErrNoRoute] instead of a partial path. Among
// equal-cost paths the one discovered first wins; neighbors are relaxed in
// name order and the heap breaks ties by push order.
//
// # Concurrency
//
// A Graph is built once and then read. Concurrent reads (lookups and route
// queries) are safe; mutation while reading is not.
package network
