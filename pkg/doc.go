// Package pkg provides the core libraries for GraphML export.
//
// # Overview
//
// The module turns in-memory graphs into GraphML, the XML interchange format
// understood by graph tools such as yEd, Gephi, and igraph. The pkg directory
// is organized into three areas:
//
//  1. [graph] - The graph model (vertices, edges, attribute bags) plus the
//     JSON and TOML graph description codecs that feed the CLI.
//  2. [graphml] - The export pass: attribute type resolution, <data>
//     serialization, key accumulation, and document assembly.
//  3. [buildinfo] - Build-time version information injected via ldflags.
//
// # Architecture
//
// The data flow through an export:
//
//	JSON/TOML graph description (optional, CLI input)
//	         ↓
//	    [graph] package (Graph, Vertex, Edge, Attributes)
//	         ↓
//	    [graphml] package (type inference → data elements → key declarations)
//	         ↓
//	    GraphML XML document
//
// # Quick Start
//
// Build a graph and export it:
//
//	import (
//	    "github.com/modolabs/graphml/pkg/graph"
//	    "github.com/modolabs/graphml/pkg/graphml"
//	)
//
//	g := graph.New()
//	g.AddVertex(graph.Vertex{ID: "a", Attrs: graph.Attributes{"weight": 3.5}})
//	g.AddVertex(graph.Vertex{ID: "b"})
//	g.AddEdge(graph.Edge{From: "a", To: "b", Directed: true})
//
//	out, err := graphml.Marshal(g)
//
// Or decode a graph description first:
//
//	g, err := graph.ImportJSON("topology.json")
//	if err != nil { ... }
//	err = graphml.WriteFile(g, "topology.graphml")
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/graphml/...  # Specific package
//	go test -run Example       # Examples only
//
// [graph]: https://pkg.go.dev/github.com/modolabs/graphml/pkg/graph
// [graphml]: https://pkg.go.dev/github.com/modolabs/graphml/pkg/graphml
// [buildinfo]: https://pkg.go.dev/github.com/modolabs/graphml/pkg/buildinfo
package pkg
