// Package netdata loads and saves transit network documents.
//
// A [Document] is the on-disk description of a network: the fare policy,
// the lines, stations that belong to no line, and the weighted connections.
// It is the serialization boundary between files and the in-memory types:
//
//   - [Document]: serialization type (this package)
//   - network.Graph: stations and connections
//   - lines.Table: line membership
//   - fare.Policy: pricing
//
// Use [Document.Build] to turn a document into a [Network], and [FromNetwork]
// to go the other way.
//
// # Formats
//
// Documents are read and written as TOML, YAML or JSON. File functions pick
// the format from the extension:
//
//	doc, _ := netdata.ReadFile("network.yaml")
//	n, _ := doc.Build()
//	_ = netdata.WriteFile(netdata.FromNetwork(n), "network.toml")
//
// Unknown keys are rejected in every format so typos surface at load time.
//
// # Build Order
//
// Build adds line stations in line order, then the extra stations, then the
// connections in document order. Re-adding a connection overwrites its
// weight, so the last entry for a pair wins.
//
// # Built-in Data
//
// [Default] returns the embedded Delhi Metro Pink and Blue line network.
package netdata
