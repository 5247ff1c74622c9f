// Package render draws transit networks as Graphviz diagrams.
//
// # Overview
//
// [ToDOT] turns a station graph and its line table into DOT source:
//
//   - stations become nodes, interchanges drawn with a double outline
//   - connections become undirected edges labelled with their weight
//   - an edge takes the colour of the line that serves both endpoints
//   - an optional route is highlighted on top
//
// [RenderSVG] lays the DOT out in-process with go-graphviz. [Renderer] adds
// a content-addressed cache in front of it, so re-drawing an unchanged map
// costs one hash.
//
//	dot := render.ToDOT(g, table, render.Options{Route: journey.Stations})
//	svg, err := render.RenderSVG(ctx, dot)
//
// # Dependencies
//
// SVG output uses [github.com/goccy/go-graphviz], which embeds Graphviz as
// WebAssembly; no system install is required.
package render
