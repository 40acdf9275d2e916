package convert

import (
	"fmt"
	"io"

	yaml "gopkg.in/yaml.v3"

	"docstyle/config"
	"docstyle/content"
	"docstyle/style"
	"docstyle/utils/debug"
)

// Render writes results in requested format. Tree is only used by tree
// output, it may be nil when results were not produced from a tree.
func Render(w io.Writer, format config.OutputFmt, tree *content.Tree, results []Result) error {
	switch format {
	case config.OutputFmtYaml:
		return renderYAML(w, results)
	case config.OutputFmtTree:
		_, err := renderTree(tree, results).WriteTo(w)
		return err
	}
	return fmt.Errorf("unsupported output format %s", format)
}

func renderYAML(w io.Writer, results []Result) error {
	doc := struct {
		Styles []Result `yaml:"styles"`
	}{Styles: results}
	if doc.Styles == nil {
		doc.Styles = []Result{}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("unable to encode styles: %w", err)
	}
	return enc.Close()
}

func renderTree(tree *content.Tree, results []Result) *debug.TreeWriter {
	tw := debug.NewTreeWriter()

	if tree == nil {
		for _, r := range results {
			tw.Line(0, "%s[%s]", r.Kind, r.ID)
			writeStyle(tw, 1, r)
		}
		return tw
	}

	byNode := make(map[*content.Node]Result, len(results))
	for _, r := range results {
		byNode[r.node] = r
	}
	tree.Root.Walk(func(n *content.Node, ancestors []*content.Node) bool {
		depth := len(ancestors)
		tw.Line(depth, "%s[%s]", n.Kind, n.ID)
		if r, ok := byNode[n]; ok {
			writeStyle(tw, depth+1, r)
		}
		return true
	})
	return tw
}

func writeStyle(tw *debug.TreeWriter, depth int, r Result) {
	switch {
	case r.Table != nil:
		ts := r.Table
		tw.Field(depth, "grid_visible", ts.GridVisible)
		tw.Field(depth, "grid_width", ts.GridWidth)
		tw.Field(depth, "grid_color", ts.GridColor)
		tw.Field(depth, "padding", formatPadding(ts.Padding))
		tw.Field(depth, "vertical_align", ts.VerticalAlign)
		tw.Field(depth, "horizontal_align", ts.HorizontalAlign)
	case r.Cell != nil:
		if r.Cell.Background != nil {
			tw.Field(depth, "background_color", *r.Cell.Background)
		} else {
			tw.Field(depth, "background_color", "none")
		}
	case r.Paragraph != nil:
		ps := r.Paragraph
		tw.Field(depth, "font_size", r.FontSize)
		tw.Field(depth, "leading", ps.Leading)
		tw.Field(depth, "align", ps.Align)
		if ps.Bullet != nil {
			tw.TextBlock(depth, "bullet", *ps.Bullet)
		}
		tw.Field(depth, "bullet_indent", ps.BulletIndent)
		tw.Field(depth, "padding", formatPadding(ps.Padding))
	}
}

func formatPadding(p style.Padding) string {
	return fmt.Sprintf("top=%g left=%g bottom=%g right=%g", p.Top, p.Left, p.Bottom, p.Right)
}
