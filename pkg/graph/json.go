package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type jsonGraph struct {
	Vertices []jsonVertex `json:"vertices"`
	Edges    []jsonEdge   `json:"edges"`
}

type jsonVertex struct {
	ID    string     `json:"id"`
	Attrs Attributes `json:"attrs,omitempty"`
}

type jsonEdge struct {
	From     string     `json:"from"`
	To       string     `json:"to"`
	Directed bool       `json:"directed,omitempty"`
	Attrs    Attributes `json:"attrs,omitempty"`
}

// ReadJSON decodes a JSON graph description from r.
//
// The input must be a JSON object with "vertices" and "edges" arrays:
//
//	{
//	  "vertices": [
//	    {"id": "a", "attrs": {"weight": 3.5}},
//	    {"id": "b"}
//	  ],
//	  "edges": [
//	    {"from": "a", "to": "b", "directed": true}
//	  ]
//	}
//
// Each vertex must have an "id" field; "attrs" is an optional object of
// scalar values. Each edge must have "from" and "to" fields referencing
// vertex IDs; "directed" defaults to false and "attrs" is optional.
//
// Numbers are decoded via [json.Number] and resolved to int64 or float64,
// so integer attribute values keep their integer kind instead of collapsing
// to float64 the way plain interface decoding would.
//
// ReadJSON returns an error if the JSON is malformed, a vertex ID is empty
// or duplicated, or an edge references an unknown vertex. Errors are wrapped
// with the offending vertex or edge for context; use errors.Is to check for
// the package's sentinel errors.
//
// The returned Graph is independent of r and can be modified safely after
// ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Graph, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var data jsonGraph
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := New()
	for _, v := range data.Vertices {
		if err := g.AddVertex(Vertex{ID: v.ID, Attrs: resolveNumbers(v.Attrs)}); err != nil {
			return nil, fmt.Errorf("vertex %s: %w", v.ID, err)
		}
	}
	for _, e := range data.Edges {
		edge := Edge{From: e.From, To: e.To, Directed: e.Directed, Attrs: resolveNumbers(e.Attrs)}
		if err := g.AddEdge(edge); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
	}
	return g, nil
}

// resolveNumbers replaces json.Number attribute values with int64 or float64.
// A json.Number left in the bag would satisfy fmt.Stringer and export as a
// string attribute rather than a numeric one. Numbers too large for float64
// fall back to their literal text.
func resolveNumbers(attrs Attributes) Attributes {
	for k, v := range attrs {
		n, ok := v.(json.Number)
		if !ok {
			continue
		}
		if i, err := n.Int64(); err == nil {
			attrs[k] = i
			continue
		}
		if f, err := n.Float64(); err == nil {
			attrs[k] = f
			continue
		}
		attrs[k] = n.String()
	}
	return attrs
}

// ImportJSON reads a JSON graph description from the file at path.
//
// ImportJSON opens the file, decodes it using [ReadJSON], and closes the
// file. The error wraps the underlying cause with the file path for context.
func ImportJSON(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

// WriteJSON encodes g as an indented JSON graph description and writes it
// to w. The output can be re-read with [ReadJSON] for round-trip processing.
func WriteJSON(g *Graph, w io.Writer) error {
	out := jsonGraph{
		Vertices: make([]jsonVertex, len(g.Vertices())),
		Edges:    make([]jsonEdge, len(g.Edges())),
	}
	for i, v := range g.Vertices() {
		out.Vertices[i] = jsonVertex{ID: v.ID, Attrs: v.Attrs}
	}
	for i, e := range g.Edges() {
		out.Edges[i] = jsonEdge{From: e.From, To: e.To, Directed: e.Directed, Attrs: e.Attrs}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes g as a JSON graph description to the file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
