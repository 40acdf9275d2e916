package content

import (
	"errors"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"docstyle/params"
)

// Tree is a document tree with its id index.
type Tree struct {
	Root  *Node
	Index map[string]*Node
}

// Lookup returns node by id.
func (t *Tree) Lookup(id string) (*Node, bool) {
	n, ok := t.Index[id]
	return n, ok
}

// Build creates document tree from decoded document value. Every node is an
// object of the form
//
//	{kind: "table", id: "t1", params: {...}, children: [...]}
//
// where only kind is required. A root array is wrapped into a document node.
// Nodes without id get "n<N>" with N being their position in depth first
// order.
//
// Structural problems which make a node meaningless (missing kind) are
// errors, anything else is logged and skipped.
func Build(v params.Value, log *zap.Logger) (*Tree, error) {
	if log == nil {
		log = zap.NewNop()
	}
	b := &builder{log: log.Named("content"), index: make(map[string]*Node)}

	var (
		root *Node
		err  error
	)
	switch v := v.(type) {
	case params.Array:
		root = &Node{Kind: KindDocument}
		b.assignID(root, "")
		root.Children, err = b.children(v, "$")
	case params.Object:
		root, err = b.node(v, "$")
	default:
		return nil, errors.New("document must be an object or an array of nodes")
	}
	if err != nil {
		return nil, err
	}
	if root == nil {
		return nil, errors.New("document root was skipped")
	}
	return &Tree{Root: root, Index: b.index}, nil
}

type builder struct {
	log   *zap.Logger
	seq   int
	index map[string]*Node
}

func (b *builder) assignID(n *Node, id string) {
	b.seq++
	if id == "" {
		id = "n" + strconv.Itoa(b.seq)
	}
	n.ID = id
	if _, exists := b.index[id]; exists {
		b.log.Warn("Duplicate node id, only first node is indexed", zap.String("id", id))
		return
	}
	b.index[id] = n
}

// node returns nil node without error when node was skipped.
func (b *builder) node(o params.Object, path string) (*Node, error) {
	kv, ok := o.Get("kind")
	if !ok {
		return nil, fmt.Errorf("%s: node has no kind", path)
	}
	name, ok := params.AsText(kv)
	if !ok {
		return nil, fmt.Errorf("%s: node kind must be text, got %s", path, kv.Kind())
	}
	kind, err := ParseKind(name)
	if err != nil {
		b.log.Warn("Skipping node of unknown kind", zap.String("path", path), zap.Error(err))
		return nil, nil
	}

	n := &Node{Kind: kind}

	id, _ := o.Text("id")
	b.assignID(n, id)

	if pv, ok := o.Get("params"); ok {
		if p, ok := params.AsObject(pv); ok {
			n.params = p
		} else {
			b.log.Warn("Ignoring node params which are not an object", zap.String("path", path), zap.Stringer("type", pv.Kind()))
		}
	}

	if cv, ok := o.Get("children"); ok {
		children, ok := params.AsArray(cv)
		if !ok {
			b.log.Warn("Ignoring node children which are not an array", zap.String("path", path), zap.Stringer("type", cv.Kind()))
			return n, nil
		}
		if n.Children, err = b.children(children, path); err != nil {
			return nil, err
		}
	}
	return n, nil
}

func (b *builder) children(arr params.Array, path string) ([]*Node, error) {
	nodes := make([]*Node, 0, len(arr))
	for i, cv := range arr {
		cpath := path + ".children[" + strconv.Itoa(i) + "]"
		co, ok := params.AsObject(cv)
		if !ok {
			b.log.Warn("Skipping child which is not an object", zap.String("path", cpath), zap.Stringer("type", cv.Kind()))
			continue
		}
		c, err := b.node(co, cpath)
		if err != nil {
			return nil, err
		}
		if c != nil {
			nodes = append(nodes, c)
		}
	}
	return nodes, nil
}
