package convert

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"docstyle/content"
	"docstyle/params"
	"docstyle/style"
)

// fontSizeKey names node parameter which sets font size for the node and all
// its descendants.
const fontSizeKey = "font_size"

// Options control style resolution.
type Options struct {
	// FontSize is used for paragraphs when neither paragraph nor any of its
	// ancestors has font_size parameter.
	FontSize float32
	// Workers limits number of nodes resolved concurrently, 0 means number
	// of CPUs.
	Workers int
}

// Result is resolved style of a single node. Only one of Table, Cell and
// Paragraph is set, matching node kind.
type Result struct {
	ID        string                `yaml:"id"`
	Kind      content.Kind          `yaml:"kind"`
	FontSize  float32               `yaml:"font_size,omitempty"`
	Table     *style.TableStyle     `yaml:"table,omitempty"`
	Cell      *style.CellStyle      `yaml:"cell,omitempty"`
	Paragraph *style.ParagraphStyle `yaml:"paragraph,omitempty"`

	node *content.Node
}

type job struct {
	node     *content.Node
	fontSize float32
}

// inheritedFontSize returns font size of the closest node, starting with n
// itself, which has numeric font_size parameter.
func inheritedFontSize(n *content.Node, ancestors []*content.Node, def float32) float32 {
	if v, ok := n.Params().Number(fontSizeKey); ok {
		return float32(v)
	}
	for i := len(ancestors) - 1; i >= 0; i-- {
		if v, ok := ancestors[i].Params().Number(fontSizeKey); ok {
			return float32(v)
		}
	}
	return def
}

func styled(k content.Kind) bool {
	return k == content.KindTable || k == content.KindCell || k == content.KindParagraph
}

// ResolveTree resolves styles of all tables, cells and paragraphs in the tree.
// Results are returned in document order regardless of resolution order.
func ResolveTree(ctx context.Context, tree *content.Tree, opts Options, log *zap.Logger) ([]Result, error) {
	if log == nil {
		log = zap.NewNop()
	}

	var jobs []job
	tree.Root.Walk(func(n *content.Node, ancestors []*content.Node) bool {
		if styled(n.Kind) {
			jobs = append(jobs, job{node: n, fontSize: inheritedFontSize(n, ancestors, opts.FontSize)})
		}
		return true
	})

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	log.Debug("Resolving styles", zap.Int("nodes", len(jobs)), zap.Int("workers", workers))

	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, j := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = resolveNode(j)
			log.Debug("Node resolved", zap.String("id", j.node.ID), zap.Stringer("kind", j.node.Kind))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// group context is canceled by Wait, check the one we were given
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func resolveNode(j job) Result {
	r := Result{ID: j.node.ID, Kind: j.node.Kind, node: j.node}
	switch j.node.Kind {
	case content.KindTable:
		ts := style.ResolveTable(j.node)
		r.Table = &ts
	case content.KindCell:
		cs := style.ResolveCell(j.node)
		r.Cell = &cs
	case content.KindParagraph:
		ps := style.ResolveParagraph(j.node, j.fontSize)
		r.Paragraph = &ps
		r.FontSize = j.fontSize
	}
	return r
}

// ResolveParams resolves style of requested kind directly from parameter bag,
// without document tree. Parameter font_size, when present, overrides
// fontSize.
func ResolveParams(kind content.Kind, id string, p params.Object, fontSize float32) Result {
	n := content.NewNode(kind, id, p)
	return resolveNode(job{node: n, fontSize: inheritedFontSize(n, nil, fontSize)})
}
