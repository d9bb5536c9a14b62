package graph

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
)

type tomlGraph struct {
	Vertices []tomlVertex `toml:"vertices"`
	Edges    []tomlEdge   `toml:"edges"`
}

type tomlVertex struct {
	ID    string     `toml:"id"`
	Attrs Attributes `toml:"attrs"`
}

type tomlEdge struct {
	From     string     `toml:"from"`
	To       string     `toml:"to"`
	Directed bool       `toml:"directed"`
	Attrs    Attributes `toml:"attrs"`
}

// ReadTOML decodes a TOML graph description from r.
//
// The input uses arrays of tables for vertices and edges:
//
//	[[vertices]]
//	id = "a"
//	[vertices.attrs]
//	weight = 3.5
//
//	[[edges]]
//	from = "a"
//	to = "b"
//	directed = true
//
// TOML's native types carry straight through to the attribute bags: integers
// arrive as int64, floats as float64, booleans as bool, strings as string,
// and datetimes as time.Time.
//
// ReadTOML returns the same validation errors as [ReadJSON]: malformed
// input, empty or duplicate vertex IDs, and edges referencing unknown
// vertices, each wrapped with the offending element for context.
func ReadTOML(r io.Reader) (*Graph, error) {
	var data tomlGraph
	if _, err := toml.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := New()
	for _, v := range data.Vertices {
		if err := g.AddVertex(Vertex{ID: v.ID, Attrs: v.Attrs}); err != nil {
			return nil, fmt.Errorf("vertex %s: %w", v.ID, err)
		}
	}
	for _, e := range data.Edges {
		edge := Edge{From: e.From, To: e.To, Directed: e.Directed, Attrs: e.Attrs}
		if err := g.AddEdge(edge); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
	}
	return g, nil
}

// ImportTOML reads a TOML graph description from the file at path.
//
// ImportTOML opens the file, decodes it using [ReadTOML], and closes the
// file. The error wraps the underlying cause with the file path for context.
func ImportTOML(path string) (*Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadTOML(f)
}
