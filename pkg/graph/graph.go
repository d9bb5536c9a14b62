package graph

import (
	"errors"
	"slices"
)

var (
	// ErrInvalidVertexID is returned by [Graph.AddVertex] when the vertex ID
	// is empty. All vertices must have non-empty identifiers.
	ErrInvalidVertexID = errors.New("vertex ID must not be empty")

	// ErrDuplicateVertexID is returned by [Graph.AddVertex] when a vertex with
	// the same ID already exists in the graph. Vertex IDs must be unique.
	ErrDuplicateVertexID = errors.New("duplicate vertex ID")

	// ErrUnknownSourceVertex is returned by [Graph.AddEdge] when the From
	// vertex does not exist in the graph.
	ErrUnknownSourceVertex = errors.New("unknown source vertex")

	// ErrUnknownTargetVertex is returned by [Graph.AddEdge] when the To
	// vertex does not exist in the graph.
	ErrUnknownTargetVertex = errors.New("unknown target vertex")
)

// Attributes stores the typed key-value pairs attached to a vertex or edge.
// Values are expected to be booleans, integers, floating-point numbers,
// strings, or values implementing [fmt.Stringer]; what the GraphML exporter
// makes of each kind is its concern, not this package's. Attribute maps are
// never nil - they are automatically initialized to empty maps when needed.
type Attributes map[string]any

// Vertex is a node in the graph. Its ID doubles as the display label in
// exported documents.
//
// The zero value is not usable - ID must be set before adding to a Graph.
type Vertex struct {
	ID    string     // Unique identifier (also used as display label)
	Attrs Attributes // Typed key-value attributes (never nil after AddVertex)
}

// Edge connects two vertices. When Directed is false the endpoint order
// carries no meaning beyond determining the exported source and target.
type Edge struct {
	From     string     // First endpoint vertex ID
	To       string     // Last endpoint vertex ID
	Directed bool       // Whether the edge has a direction (From to To)
	Attrs    Attributes // Typed key-value attributes (never nil after AddEdge)
}

// Graph is a mixed graph: a set of uniquely identified vertices plus
// directed and undirected edges between them. Vertices and edges are kept
// in insertion order, which is the iteration order of [Graph.Vertices] and
// [Graph.Edges] - repeated exports of an unmodified graph therefore see the
// elements in the same order every time.
//
// The zero value is not usable - use New to create a valid Graph instance.
// Graph is not safe for concurrent use without external synchronization.
type Graph struct {
	vertices map[string]*Vertex
	order    []string // vertex IDs in insertion order
	edges    []Edge
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{vertices: make(map[string]*Vertex)}
}

// AddVertex adds a vertex to the graph.
// Returns ErrInvalidVertexID if the vertex ID is empty, or
// ErrDuplicateVertexID if a vertex with the same ID already exists. The
// vertex's Attrs field is automatically initialized to an empty map if nil.
func (g *Graph) AddVertex(v Vertex) error {
	if v.ID == "" {
		return ErrInvalidVertexID
	}
	if _, exists := g.vertices[v.ID]; exists {
		return ErrDuplicateVertexID
	}
	if v.Attrs == nil {
		v.Attrs = Attributes{}
	}
	vertex := &v
	g.vertices[vertex.ID] = vertex
	g.order = append(g.order, vertex.ID)
	return nil
}

// AddEdge adds an edge between two existing vertices.
// Returns ErrUnknownSourceVertex if the From vertex doesn't exist, or
// ErrUnknownTargetVertex if the To vertex doesn't exist. The edge's Attrs
// field is automatically initialized to an empty map if nil.
//
// Multiple edges between the same endpoints are allowed, as are self-loops.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.vertices[e.From]; !ok {
		return ErrUnknownSourceVertex
	}
	if _, ok := g.vertices[e.To]; !ok {
		return ErrUnknownTargetVertex
	}
	if e.Attrs == nil {
		e.Attrs = Attributes{}
	}
	g.edges = append(g.edges, e)
	return nil
}

// Vertices returns all vertices in insertion order.
// The returned slice contains pointers to the actual vertex structs, so
// attribute modifications affect the graph.
func (g *Graph) Vertices() []*Vertex {
	vertices := make([]*Vertex, len(g.order))
	for i, id := range g.order {
		vertices[i] = g.vertices[id]
	}
	return vertices
}

// Edges returns a copy of all edges in insertion order.
// Modifications to the returned slice do not affect the graph.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// Vertex returns the vertex with the given ID and true, or nil and false if
// not found. The returned pointer refers to the actual vertex in the graph.
func (g *Graph) Vertex(id string) (*Vertex, bool) {
	v, ok := g.vertices[id]
	return v, ok
}

// VertexCount returns the number of vertices in the graph.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }
