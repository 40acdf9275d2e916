package content

import (
	"maps"
	"slices"
	"sort"
	"strconv"

	"github.com/maruel/natural"

	"docstyle/params"
	"docstyle/utils/debug"
)

type treeWriter struct {
	*debug.TreeWriter
}

// String returns a readable dump of the whole tree followed by its id index.
// It exists solely for manual inspection during debugging.
func (t *Tree) String() string {
	if t == nil {
		return "<nil Tree>"
	}

	tw := treeWriter{debug.NewTreeWriter()}
	t.Root.Walk(func(n *Node, ancestors []*Node) bool {
		depth := len(ancestors)
		tw.Line(depth, "%s[%s]", n.Kind, n.ID)
		for k, v := range n.Params().All() {
			tw.value(depth+1, k, v)
		}
		return true
	})

	if len(t.Index) > 0 {
		tw.Line(0, "Index: %d", len(t.Index))
		keys := slices.Collect(maps.Keys(t.Index))
		sort.Sort(natural.StringSlice(keys))
		for _, k := range keys {
			tw.Line(1, "%s -> %s", k, t.Index[k].Kind)
		}
	}
	return tw.String()
}

func (tw treeWriter) value(depth int, label string, v params.Value) {
	switch v := v.(type) {
	case params.Number:
		tw.Line(depth, "%s: %g", label, float64(v))
	case params.Text:
		tw.TextBlock(depth, label, string(v))
	case params.Object:
		tw.Line(depth, "%s: {%d}", label, v.Len())
		for k, m := range v.All() {
			tw.value(depth+1, k, m)
		}
	case params.Array:
		tw.Line(depth, "%s: [%d]", label, len(v))
		for i, e := range v {
			tw.value(depth+1, strconv.Itoa(i), e)
		}
	}
}
