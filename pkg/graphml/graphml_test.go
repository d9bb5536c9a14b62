package graphml

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/modolabs/graphml/pkg/graph"
)

// coord is a Stringer used to exercise the serializable-to-text path.
type coord struct{ x, y int }

func (c coord) String() string { return fmt.Sprintf("%d,%d", c.x, c.y) }

func mustMarshal(t *testing.T, g *graph.Graph) string {
	t.Helper()
	out, err := Marshal(g)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	return string(out)
}

func TestMarshalEmptyGraph(t *testing.T) {
	out := mustMarshal(t, graph.New())

	if !strings.Contains(out, `<graphml xmlns="http://graphml.graphdrawing.org/xmlns"`) {
		t.Errorf("missing graphml root with namespace:\n%s", out)
	}
	if !strings.Contains(out, `xsi:schemaLocation="http://graphml.graphdrawing.org/xmlns http://graphml.graphdrawing.org/xmlns/1.0/graphml.xsd"`) {
		t.Errorf("missing schema location:\n%s", out)
	}
	if !strings.Contains(out, `<graph edgeDefault="undirected"/>`) {
		t.Errorf("empty graph should produce a self-closed graph element:\n%s", out)
	}
	if strings.Contains(out, "<key") {
		t.Errorf("empty graph should declare no keys:\n%s", out)
	}
	if strings.Contains(out, "<node") || strings.Contains(out, "<edge") {
		t.Errorf("empty graph should contain no nodes or edges:\n%s", out)
	}
}

func TestMarshalDirectedEdge(t *testing.T) {
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "a"})
	g.AddVertex(graph.Vertex{ID: "b"})
	g.AddEdge(graph.Edge{From: "a", To: "b", Directed: true})

	out := mustMarshal(t, g)

	if !strings.Contains(out, `<node id="a" label="a"/>`) {
		t.Errorf("missing node a:\n%s", out)
	}
	if !strings.Contains(out, `<node id="b" label="b"/>`) {
		t.Errorf("missing node b:\n%s", out)
	}
	if n := strings.Count(out, `<edge source="a" target="b" directed="true"/>`); n != 1 {
		t.Errorf("directed edge count = %d, want 1:\n%s", n, out)
	}
}

func TestMarshalUndirectedEdgeOmitsDirected(t *testing.T) {
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "a"})
	g.AddVertex(graph.Vertex{ID: "b"})
	g.AddEdge(graph.Edge{From: "a", To: "b"})

	out := mustMarshal(t, g)

	if !strings.Contains(out, `<edge source="a" target="b"/>`) {
		t.Errorf("missing undirected edge:\n%s", out)
	}
	if strings.Contains(out, "directed=") {
		t.Errorf("undirected edge must omit the directed attribute:\n%s", out)
	}
}

func TestMarshalDataElements(t *testing.T) {
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "api", Attrs: graph.Attributes{
		"replicas": 3,
		"public":   false,
		"region":   "eu-west-1",
		"load":     0.75,
	}})

	out := mustMarshal(t, g)

	for _, want := range []string{
		`<data key="load">0.75</data>`,
		`<data key="public">false</data>`,
		`<data key="region">eu-west-1</data>`,
		`<data key="replicas">3</data>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s:\n%s", want, out)
		}
	}

	for _, want := range []string{
		`<key id="load" attr.name="load" attr.type="float" for="node"/>`,
		`<key id="public" attr.name="public" attr.type="boolean" for="node"/>`,
		`<key id="region" attr.name="region" attr.type="string" for="node"/>`,
		`<key id="replicas" attr.name="replicas" attr.type="int" for="node"/>`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %s:\n%s", want, out)
		}
	}
}

func TestMarshalUintptrAttribute(t *testing.T) {
	// uintptr is an integer kind like the sized uints and shares their key type.
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "proc", Attrs: graph.Attributes{"addr": uintptr(42)}})

	out := mustMarshal(t, g)

	if !strings.Contains(out, `<data key="addr">42</data>`) {
		t.Errorf("missing data element for uintptr attribute:\n%s", out)
	}
	if !strings.Contains(out, `<key id="addr" attr.name="addr" attr.type="int" for="node"/>`) {
		t.Errorf("uintptr should declare an int key:\n%s", out)
	}
}

func TestMarshalDataSortedByAttributeID(t *testing.T) {
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "v", Attrs: graph.Attributes{
		"zeta":  1,
		"alpha": 2,
		"mid":   3,
	}})

	out := mustMarshal(t, g)

	alpha := strings.Index(out, `key="alpha"`)
	mid := strings.Index(out, `key="mid"`)
	zeta := strings.Index(out, `key="zeta"`)
	if alpha == -1 || mid == -1 || zeta == -1 {
		t.Fatalf("missing data elements:\n%s", out)
	}
	if !(alpha < mid && mid < zeta) {
		t.Errorf("data elements should be sorted by attribute id (alpha=%d mid=%d zeta=%d):\n%s",
			alpha, mid, zeta, out)
	}
}

func TestMarshalKeyFirstWriteWins(t *testing.T) {
	// First vertex carries weight as a float, a later vertex as an int. The
	// declaration must keep the first-seen type and must not be duplicated.
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "a", Attrs: graph.Attributes{"weight": 3.5}})
	g.AddVertex(graph.Vertex{ID: "b", Attrs: graph.Attributes{"weight": 7}})

	out := mustMarshal(t, g)

	if n := strings.Count(out, `<key id="weight"`); n != 1 {
		t.Fatalf("weight key count = %d, want 1:\n%s", n, out)
	}
	if !strings.Contains(out, `<key id="weight" attr.name="weight" attr.type="float" for="node"/>`) {
		t.Errorf("weight key should keep the first-seen float type:\n%s", out)
	}
	// Both data elements are still written with their own textual values.
	if !strings.Contains(out, `<data key="weight">3.5</data>`) {
		t.Errorf("missing float weight data:\n%s", out)
	}
	if !strings.Contains(out, `<data key="weight">7</data>`) {
		t.Errorf("missing int weight data:\n%s", out)
	}
}

func TestMarshalCrossScopeKeyCollision(t *testing.T) {
	// "weight" appears on a node first, then on an edge. Only the node-scope
	// declaration survives; the edge data still references the same key id.
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "a", Attrs: graph.Attributes{"weight": 1}})
	g.AddVertex(graph.Vertex{ID: "b"})
	g.AddEdge(graph.Edge{From: "a", To: "b", Attrs: graph.Attributes{"weight": 2}})

	out := mustMarshal(t, g)

	if n := strings.Count(out, `<key id="weight"`); n != 1 {
		t.Fatalf("weight key count = %d, want 1:\n%s", n, out)
	}
	if !strings.Contains(out, `<key id="weight" attr.name="weight" attr.type="int" for="node"/>`) {
		t.Errorf("collision should keep the first-seen node scope:\n%s", out)
	}
}

func TestMarshalEdgeScopeKey(t *testing.T) {
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "a"})
	g.AddVertex(graph.Vertex{ID: "b"})
	g.AddEdge(graph.Edge{From: "a", To: "b", Attrs: graph.Attributes{"hops": 2}})

	out := mustMarshal(t, g)

	if !strings.Contains(out, `<key id="hops" attr.name="hops" attr.type="int" for="edge"/>`) {
		t.Errorf("missing edge-scoped key:\n%s", out)
	}
}

func TestMarshalUnsupportedType(t *testing.T) {
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "a", Attrs: graph.Attributes{
		"blob": struct{ X int }{X: 1},
	}})

	out, err := Marshal(g)
	if err == nil {
		t.Fatal("Marshal should fail on an unsupported attribute type")
	}
	if out != nil {
		t.Errorf("failed export must not return output, got %d bytes", len(out))
	}

	var typeErr *UnsupportedTypeError
	if !errors.As(err, &typeErr) {
		t.Fatalf("err = %v, want wrapped *UnsupportedTypeError", err)
	}
	// The wrapping carries the owning element and attribute id for diagnosis.
	if !strings.Contains(err.Error(), `node "a"`) {
		t.Errorf("error should name the owning node: %v", err)
	}
	if !strings.Contains(err.Error(), `attribute "blob"`) {
		t.Errorf("error should name the attribute: %v", err)
	}
}

func TestMarshalUnsupportedEdgeAttribute(t *testing.T) {
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "a"})
	g.AddVertex(graph.Vertex{ID: "b"})
	g.AddEdge(graph.Edge{From: "a", To: "b", Attrs: graph.Attributes{
		"route": []string{"a", "b"},
	}})

	_, err := Marshal(g)
	if err == nil {
		t.Fatal("Marshal should fail on an unsupported edge attribute")
	}
	if !strings.Contains(err.Error(), "edge a->b") {
		t.Errorf("error should name the owning edge: %v", err)
	}
}

func TestMarshalNilAttributeSkipped(t *testing.T) {
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "a", Attrs: graph.Attributes{"ghost": nil}})

	out := mustMarshal(t, g)

	if strings.Contains(out, "ghost") {
		t.Errorf("nil attribute should produce no data and no key:\n%s", out)
	}
	if !strings.Contains(out, `<node id="a" label="a"/>`) {
		t.Errorf("node with only nil attributes should be empty:\n%s", out)
	}
}

func TestMarshalNilAttributeElsewhereNonNil(t *testing.T) {
	// A nil value contributes nothing, but the same id with a real value on
	// another element still gets its data and key.
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "a", Attrs: graph.Attributes{"weight": nil}})
	g.AddVertex(graph.Vertex{ID: "b", Attrs: graph.Attributes{"weight": 4}})

	out := mustMarshal(t, g)

	if n := strings.Count(out, `<data key="weight">`); n != 1 {
		t.Errorf("data count = %d, want 1:\n%s", n, out)
	}
	if !strings.Contains(out, `<key id="weight" attr.name="weight" attr.type="int" for="node"/>`) {
		t.Errorf("missing key from the non-nil occurrence:\n%s", out)
	}
}

func TestMarshalStringerAttribute(t *testing.T) {
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "a", Attrs: graph.Attributes{"pos": coord{3, 4}}})

	out := mustMarshal(t, g)

	if !strings.Contains(out, `<data key="pos">3,4</data>`) {
		t.Errorf("Stringer should export its String() form:\n%s", out)
	}
	if !strings.Contains(out, `<key id="pos" attr.name="pos" attr.type="string" for="node"/>`) {
		t.Errorf("Stringer should be declared as a string attribute:\n%s", out)
	}
}

func TestMarshalEscapesText(t *testing.T) {
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "a", Attrs: graph.Attributes{
		"note": "x < y & y > z",
	}})

	out := mustMarshal(t, g)

	if !strings.Contains(out, "x &lt; y &amp; y") {
		t.Errorf("text content should be XML-escaped:\n%s", out)
	}
	if strings.Contains(out, "x < y") {
		t.Errorf("raw markup characters leaked into text content:\n%s", out)
	}
}

func TestMarshalPreservesInsertionOrder(t *testing.T) {
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "zeta"})
	g.AddVertex(graph.Vertex{ID: "alpha"})
	g.AddEdge(graph.Edge{From: "zeta", To: "alpha"})
	g.AddEdge(graph.Edge{From: "alpha", To: "zeta"})

	out := mustMarshal(t, g)

	zeta := strings.Index(out, `<node id="zeta"`)
	alpha := strings.Index(out, `<node id="alpha"`)
	if zeta == -1 || alpha == -1 {
		t.Fatalf("missing nodes:\n%s", out)
	}
	if zeta > alpha {
		t.Errorf("nodes should keep insertion order, not sort lexically:\n%s", out)
	}

	first := strings.Index(out, `<edge source="zeta" target="alpha"/>`)
	second := strings.Index(out, `<edge source="alpha" target="zeta"/>`)
	if first == -1 || second == -1 {
		t.Fatalf("missing edges:\n%s", out)
	}
	if first > second {
		t.Errorf("edges should keep insertion order:\n%s", out)
	}
}

func TestMarshalKeysFollowGraphElement(t *testing.T) {
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "a", Attrs: graph.Attributes{"weight": 1}})

	out := mustMarshal(t, g)

	graphEnd := strings.Index(out, "</graph>")
	key := strings.Index(out, "<key ")
	if graphEnd == -1 || key == -1 {
		t.Fatalf("missing graph close or key:\n%s", out)
	}
	if key < graphEnd {
		t.Errorf("key declarations must follow the graph element:\n%s", out)
	}
}

func TestMarshalKeysInFirstSeenOrder(t *testing.T) {
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "a", Attrs: graph.Attributes{"zeta": 1}})
	g.AddVertex(graph.Vertex{ID: "b", Attrs: graph.Attributes{"alpha": 2}})
	g.AddEdge(graph.Edge{From: "a", To: "b", Attrs: graph.Attributes{"mid": 3}})

	out := mustMarshal(t, g)

	zeta := strings.Index(out, `<key id="zeta"`)
	alpha := strings.Index(out, `<key id="alpha"`)
	mid := strings.Index(out, `<key id="mid"`)
	if zeta == -1 || alpha == -1 || mid == -1 {
		t.Fatalf("missing keys:\n%s", out)
	}
	if !(zeta < alpha && alpha < mid) {
		t.Errorf("keys should appear in first-seen order (zeta=%d alpha=%d mid=%d):\n%s",
			zeta, alpha, mid, out)
	}
}

func TestMarshalIdempotent(t *testing.T) {
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "a", Attrs: graph.Attributes{"weight": 3.5, "name": "alpha"}})
	g.AddVertex(graph.Vertex{ID: "b", Attrs: graph.Attributes{"weight": 7}})
	g.AddEdge(graph.Edge{From: "a", To: "b", Directed: true, Attrs: graph.Attributes{"hops": 2}})

	first, err := Marshal(g)
	if err != nil {
		t.Fatalf("first Marshal: %v", err)
	}
	second, err := Marshal(g)
	if err != nil {
		t.Fatalf("second Marshal: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("repeated exports differ:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestWriteMatchesMarshal(t *testing.T) {
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "a", Attrs: graph.Attributes{"weight": 3.5}})
	g.AddVertex(graph.Vertex{ID: "b"})
	g.AddEdge(graph.Edge{From: "a", To: "b", Directed: true})

	want, err := Marshal(g)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var buf bytes.Buffer
	if err := Write(g, &buf); err != nil {
		t.Fatalf("Write: %v", err)
	}

	if !bytes.Equal(buf.Bytes(), want) {
		t.Errorf("Write output differs from Marshal:\nWrite:\n%s\nMarshal:\n%s", buf.Bytes(), want)
	}
}

func TestWriteNoPartialOutput(t *testing.T) {
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "a", Attrs: graph.Attributes{
		"blob": map[string]int{"x": 1},
	}})

	var buf bytes.Buffer
	if err := Write(g, &buf); err == nil {
		t.Fatal("Write should fail on an unsupported attribute type")
	}
	if buf.Len() != 0 {
		t.Errorf("failed Write must not emit partial output, got %d bytes:\n%s", buf.Len(), buf.Bytes())
	}
}

func TestWriteFile(t *testing.T) {
	g := graph.New()
	g.AddVertex(graph.Vertex{ID: "a"})

	path := filepath.Join(t.TempDir(), "out.graphml")
	if err := WriteFile(g, path); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("<graphml")) {
		t.Errorf("output file missing graphml root:\n%s", data)
	}
	if !bytes.Contains(data, []byte(`<node id="a" label="a"/>`)) {
		t.Errorf("output file missing node:\n%s", data)
	}
}

func TestWriteFileCreateError(t *testing.T) {
	g := graph.New()

	err := WriteFile(g, filepath.Join(t.TempDir(), "missing", "out.graphml"))
	if err == nil {
		t.Error("WriteFile should fail when the directory does not exist")
	}
}
