// Package graph provides the in-memory graph model consumed by the GraphML
// exporter.
//
// # Overview
//
// A [Graph] holds uniquely identified vertices and any mix of directed and
// undirected edges between them. Vertices and edges carry [Attributes] - flat
// bags of scalar values (booleans, integers, floats, strings, or anything
// implementing fmt.Stringer) that the exporter turns into typed GraphML
// <data> elements.
//
// # Basic Usage
//
// Create a graph with [New], add vertices with [Graph.AddVertex], and edges
// with [Graph.AddEdge]. Vertices must have unique non-empty IDs, and edges
// can only connect existing vertices:
//
//	g := graph.New()
//	g.AddVertex(graph.Vertex{ID: "a", Attrs: graph.Attributes{"weight": 3.5}})
//	g.AddVertex(graph.Vertex{ID: "b"})
//	g.AddEdge(graph.Edge{From: "a", To: "b", Directed: true})
//
// # Iteration Order
//
// [Graph.Vertices] and [Graph.Edges] return elements in insertion order.
// Exports of an unmodified graph are therefore deterministic: the same graph
// always serializes to byte-identical output.
//
// # Graph Descriptions
//
// The package reads and writes a small interchange format so graphs can be
// fed to the CLI from files. [ReadJSON] and [ImportJSON] decode JSON
// descriptions (numbers keep their integer/float distinction), [ReadTOML]
// and [ImportTOML] decode TOML descriptions (TOML's native types flow into
// the attribute bags unchanged), and [WriteJSON] and [ExportJSON] write the
// JSON form back out. None of these are GraphML parsers - GraphML itself is
// write-only in this module.
//
// # Concurrency
//
// Graph instances are not safe for concurrent modification. Callers must
// synchronize access if multiple goroutines mutate the same graph; read-only
// use, including concurrent exports of the same graph, is safe.
package graph
