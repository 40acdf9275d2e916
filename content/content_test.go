package content

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"

	"docstyle/params"
)

func mustDecode(t *testing.T, src string) params.Value {
	t.Helper()
	v, err := params.DecodeJSON(strings.NewReader(src))
	if err != nil {
		t.Fatalf("DecodeJSON() error = %v", err)
	}
	return v
}

func testLogger(t *testing.T) *zap.Logger {
	return zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
}

const sampleDocument = `{
	"kind": "document",
	"children": [
		{"kind": "paragraph", "id": "intro", "params": {"align": "center"}},
		{"kind": "table", "params": {"style": {"grid": {}}}, "children": [
			{"kind": "row", "children": [
				{"kind": "cell", "params": {"background_color": [1, 0, 0]}},
				{"kind": "cell"}
			]}
		]}
	]
}`

func TestBuild(t *testing.T) {
	tree, err := Build(mustDecode(t, sampleDocument), testLogger(t))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if tree.Root.Kind != KindDocument {
		t.Errorf("root kind = %v, want document", tree.Root.Kind)
	}
	if got := tree.Root.Count(); got != 6 {
		t.Errorf("Count() = %d, want 6", got)
	}

	var ids []string
	tree.Root.Walk(func(n *Node, _ []*Node) bool {
		ids = append(ids, n.ID)
		return true
	})
	if want := []string{"n1", "intro", "n3", "n4", "n5", "n6"}; !slices.Equal(ids, want) {
		t.Errorf("ids = %v, want %v", ids, want)
	}

	intro, ok := tree.Lookup("intro")
	if !ok {
		t.Fatal("Lookup(intro) failed")
	}
	if s, _ := intro.Params().Text("align"); s != "center" {
		t.Errorf("intro align = %q, want center", s)
	}
	cell, ok := tree.Lookup("n5")
	if !ok || cell.Kind != KindCell {
		t.Fatalf("Lookup(n5) = %v, %v", cell, ok)
	}
	if _, ok := cell.Params().Array("background_color"); !ok {
		t.Error("cell background_color lost")
	}
}

func TestBuild_ArrayRoot(t *testing.T) {
	tree, err := Build(mustDecode(t, `[{"kind": "paragraph"}, {"kind": "text"}]`), testLogger(t))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if tree.Root.Kind != KindDocument || len(tree.Root.Children) != 2 {
		t.Errorf("root = %v with %d children", tree.Root.Kind, len(tree.Root.Children))
	}
}

func TestBuild_Lenient(t *testing.T) {
	src := `{"kind": "document", "params": 5, "children": [
		{"kind": "figure", "children": [{"kind": "paragraph"}]},
		42,
		{"kind": "paragraph", "children": "none"},
		{"kind": "Paragraph", "id": "dup"},
		{"kind": "paragraph", "id": "dup"}
	]}`
	tree, err := Build(mustDecode(t, src), testLogger(t))
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if tree.Root.Params().Len() != 0 {
		t.Error("non-object params must be ignored")
	}
	if got := len(tree.Root.Children); got != 3 {
		t.Fatalf("children = %d, want 3", got)
	}
	dup, _ := tree.Lookup("dup")
	if dup != tree.Root.Children[1] {
		t.Error("first node with duplicate id must be indexed")
	}
}

func TestBuild_Errors(t *testing.T) {
	for _, src := range []string{
		`"text"`,
		`{"id": "x"}`,
		`{"kind": 1}`,
		`{"kind": "document", "children": [{"params": {}}]}`,
		`{"kind": "figure"}`,
	} {
		if tree, err := Build(mustDecode(t, src), nil); err == nil {
			t.Errorf("Build(%s) = %v, want error", src, tree)
		}
	}
}

func TestWalk_SkipChildren(t *testing.T) {
	tree, err := Build(mustDecode(t, sampleDocument), nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	var kinds []Kind
	tree.Root.Walk(func(n *Node, ancestors []*Node) bool {
		kinds = append(kinds, n.Kind)
		if n.Kind == KindTable && len(ancestors) != 1 {
			t.Errorf("table ancestors = %d, want 1", len(ancestors))
		}
		return n.Kind != KindTable
	})
	if want := []Kind{KindDocument, KindParagraph, KindTable}; !slices.Equal(kinds, want) {
		t.Errorf("visited %v, want %v", kinds, want)
	}
}

func TestNilNode(t *testing.T) {
	var n *Node
	if n.Params().Len() != 0 {
		t.Error("nil node must have empty params")
	}
	n.Walk(func(*Node, []*Node) bool {
		t.Error("nil node must not be visited")
		return true
	})
}

func TestParseKind(t *testing.T) {
	for _, name := range KindNames() {
		k, err := ParseKind(strings.ToUpper(name))
		if err != nil {
			t.Errorf("ParseKind(%q) error = %v", name, err)
			continue
		}
		if k.String() != name {
			t.Errorf("ParseKind(%q) = %v", name, k)
		}
	}
	if _, err := ParseKind("image"); !errors.Is(err, ErrInvalidKind) {
		t.Errorf("ParseKind(image) error = %v, want ErrInvalidKind", err)
	}

	var k Kind
	if err := k.UnmarshalText([]byte("Cell")); err != nil || k != KindCell {
		t.Errorf("UnmarshalText(Cell) = %v, %v", k, err)
	}
	if b, err := KindRow.MarshalText(); err != nil || string(b) != "row" {
		t.Errorf("MarshalText() = %q, %v", b, err)
	}
}

func TestTree_String(t *testing.T) {
	tree, err := Build(mustDecode(t, sampleDocument), nil)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	out := tree.String()
	for _, want := range []string{
		"document[n1]\n",
		"  paragraph[intro]\n",
		"    align: \"center\"\n",
		"      cell[n5]\n",
		"        background_color: [3]\n",
		"Index: 6\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("String() does not contain %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "  n5 -> cell") > strings.Index(out, "  n6 -> cell") {
		t.Errorf("index is not sorted:\n%s", out)
	}
}
