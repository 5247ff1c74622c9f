// Package pkg holds the metroroute libraries.
//
// # Overview
//
// Metroroute answers one question: what is the cheapest way from station A
// to station B, what does it cost, and do I need to change lines? The
// libraries are layered so each can be used on its own:
//
//  1. [network] - station registry, undirected weighted graph, Dijkstra
//  2. [lines] - line membership and interchange detection
//  3. [fare] - fare and travel-time policy
//  4. [netdata] - network documents (TOML, YAML, JSON) and the built-in
//     Delhi Metro data
//  5. [planner] - whole queries: resolve, route, price, advise
//  6. [render] - Graphviz maps with an optional highlighted route
//  7. [cache] - file, Redis and in-memory caches for rendered maps
//
// Supporting packages: [errors] (coded errors), [observability] (hooks)
// and [buildinfo] (version information).
//
// # Data Flow
//
//	network file or built-in data
//	         ↓
//	    [netdata] (decode + validate + build)
//	         ↓
//	    [planner] (graph + lines + fare)
//	         ↓
//	    Journey / Graphviz map / JSON API
//
// # Quick Start
//
//	p, err := planner.Load(ctx, "") // built-in Delhi Metro
//	if err != nil {
//	    return err
//	}
//	j, err := p.Plan(ctx, "Majlis Park", "Dwarka")
//	if err != nil {
//	    fmt.Println(errors.UserMessage(err))
//	    return nil
//	}
//	fmt.Println(j.Stations, j.FareText, j.Minutes, j.ChangeRequired)
//
// [network]: https://pkg.go.dev/github.com/matzehuels/metroroute/pkg/network
// [lines]: https://pkg.go.dev/github.com/matzehuels/metroroute/pkg/lines
// [fare]: https://pkg.go.dev/github.com/matzehuels/metroroute/pkg/fare
// [netdata]: https://pkg.go.dev/github.com/matzehuels/metroroute/pkg/netdata
// [planner]: https://pkg.go.dev/github.com/matzehuels/metroroute/pkg/planner
// [render]: https://pkg.go.dev/github.com/matzehuels/metroroute/pkg/render
// [cache]: https://pkg.go.dev/github.com/matzehuels/metroroute/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/metroroute/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/metroroute/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/metroroute/pkg/buildinfo
package pkg
