// Package graphml serializes graphs to the GraphML XML format.
//
// # Overview
//
// GraphML is an XML-based interchange format for graphs: vertices become
// <node> elements, edges become <edge> elements, and attribute bags become
// typed <data> children described by document-level <key> declarations.
// This package is the write side only - it turns a [graph.Graph] into a
// finished document in a single linear pass and performs no I/O of its own
// beyond the writer handed to it.
//
// # Basic Usage
//
// Build a graph with the [graph] package and hand it to [Marshal], [Write],
// or [WriteFile]:
//
//	g := graph.New()
//	g.AddVertex(graph.Vertex{ID: "a", Attrs: graph.Attributes{"weight": 3.5}})
//	g.AddVertex(graph.Vertex{ID: "b"})
//	g.AddEdge(graph.Edge{From: "a", To: "b", Directed: true})
//
//	out, err := graphml.Marshal(g)
//
// The three entry points share one pass; they differ only in where the bytes
// go. All of them either produce the complete document or fail without
// output.
//
// # Attribute Types
//
// Attribute values are mapped to GraphML types by [TypeOf]: booleans to
// boolean, all integer widths to int, float32 and float64 to float, and
// strings to string. Values implementing fmt.Stringer are converted to their
// String() form first and export as strings - this is how time.Time and
// similar types travel. A nil value is skipped entirely. Anything else aborts
// the export with an [*UnsupportedTypeError]; there is no lossy fallback.
//
// The long and double members of the GraphML type enum are declared by
// [Type] for completeness but never produced.
//
// # Key Declarations
//
// Each attribute id is declared by exactly one <key> element, carrying the
// scope (for="node" or for="edge") and type of the id's first occurrence in
// the pass. Vertices are scanned before edges, and later occurrences never
// update the declaration, so an id used with a float on one vertex and an
// int on another declares float, and an id used on both nodes and edges is
// declared only for the scope seen first. That single-scope declaration is
// an inherited quirk of the format's ecosystem: readers that expect
// per-scope keys will see the other scope's <data> elements referencing a
// key declared for a different element kind.
//
// The <key> elements are placed after the <graph> element rather than before
// it, again matching the consuming ecosystem rather than the schema's
// conventional order.
//
// # Determinism
//
// Vertex and edge order follow the graph's insertion order, <data> children
// are sorted by attribute id, and <key> declarations keep first-seen order.
// Exporting an unmodified graph repeatedly yields byte-identical documents.
//
// # Concurrency
//
// An export pass keeps all of its state (the document tree and the key
// accumulator) local to the call. Concurrent exports of independent graphs
// are safe; exporting a graph while another goroutine mutates it is not.
package graphml
