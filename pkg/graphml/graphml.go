package graphml

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"

	"github.com/beevik/etree"

	"github.com/modolabs/graphml/pkg/graph"
)

// GraphML 1.0 namespace and schema location, fixed on every document root.
const (
	xmlnsGraphML   = "http://graphml.graphdrawing.org/xmlns"
	xmlnsXSI       = "http://www.w3.org/2001/XMLSchema-instance"
	schemaLocation = xmlnsGraphML + " " + xmlnsGraphML + "/1.0/graphml.xsd"
)

// Marshal serializes g as a GraphML document and returns the UTF-8 XML bytes.
//
// The document layout is fixed: a <graphml> root carrying the GraphML 1.0
// namespace, one <graph edgeDefault="undirected"> child holding the <node>
// elements in vertex insertion order followed by the <edge> elements in edge
// insertion order, and finally one <key> declaration per attribute id,
// appended to the root after the <graph> element in first-seen order.
//
// Within each node or edge the <data> children appear in sorted attribute-id
// order, so marshalling an unmodified graph twice produces byte-identical
// output.
//
// Marshal fails only when an attribute value has no GraphML type (see
// [TypeOf]); the returned error wraps an [*UnsupportedTypeError] with the
// owning element and attribute id, and no partial document is returned.
func Marshal(g *graph.Graph) ([]byte, error) {
	doc, err := buildDocument(g)
	if err != nil {
		return nil, err
	}
	return doc.WriteToBytes()
}

// Write serializes g as a GraphML document to w. The document is fully
// assembled before the first byte is written, so a failed export never
// produces partial output.
func Write(g *graph.Graph, w io.Writer) error {
	doc, err := buildDocument(g)
	if err != nil {
		return err
	}
	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// WriteFile serializes g as a GraphML document to the file at path, creating
// or truncating it. This is a convenience wrapper around [Write] for
// file-based output.
func WriteFile(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(g, f)
}

// buildDocument runs the export pass: one linear walk over vertices then
// edges, threading the key accumulator through both loops, then the
// accumulated <key> declarations. The element order produced here is the
// package's output contract, not an implementation detail.
func buildDocument(g *graph.Graph) (*etree.Document, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("graphml")
	root.CreateAttr("xmlns", xmlnsGraphML)
	root.CreateAttr("xmlns:xsi", xmlnsXSI)
	root.CreateAttr("xsi:schemaLocation", schemaLocation)

	graphEl := root.CreateElement("graph")
	graphEl.CreateAttr("edgeDefault", "undirected")

	keys := newKeySet()

	for _, v := range g.Vertices() {
		el := graphEl.CreateElement("node")
		el.CreateAttr("id", v.ID)
		el.CreateAttr("label", v.ID)
		if err := writeData(el, v.Attrs, ScopeNode, keys); err != nil {
			return nil, fmt.Errorf("node %q: %w", v.ID, err)
		}
	}

	for _, e := range g.Edges() {
		el := graphEl.CreateElement("edge")
		el.CreateAttr("source", e.From)
		el.CreateAttr("target", e.To)
		if e.Directed {
			el.CreateAttr("directed", "true")
		}
		if err := writeData(el, e.Attrs, ScopeEdge, keys); err != nil {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, err)
		}
	}

	// Key declarations go after the <graph> element, not before it as the
	// schema suggests. Readers in the ecosystem this format feeds expect the
	// trailing position, so it is kept for output compatibility.
	for _, def := range keys.all() {
		el := root.CreateElement("key")
		el.CreateAttr("id", def.id)
		el.CreateAttr("attr.name", def.id)
		el.CreateAttr("attr.type", string(def.typ))
		el.CreateAttr("for", string(def.scope))
	}

	doc.Indent(2)
	return doc, nil
}

// writeData appends one <data key=ID>text</data> child to parent per non-nil
// attribute, iterating the bag in sorted attribute-id order, and registers
// each id's scope and type in keys (first-write-wins).
//
// Values implementing [fmt.Stringer] are replaced by their String() form
// before type resolution and therefore export as string attributes.
func writeData(parent *etree.Element, attrs graph.Attributes, scope Scope, keys *keySet) error {
	for _, id := range slices.Sorted(maps.Keys(attrs)) {
		value := attrs[id]
		if value == nil {
			continue
		}
		if s, ok := value.(fmt.Stringer); ok {
			value = s.String()
		}

		typ, text, err := resolveValue(value)
		if err != nil {
			return fmt.Errorf("attribute %q: %w", id, err)
		}

		el := parent.CreateElement("data")
		el.CreateAttr("key", id)
		el.SetText(text)

		keys.register(id, scope, typ)
	}
	return nil
}
