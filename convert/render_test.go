package convert

import (
	"bytes"
	"context"
	"strings"
	"testing"

	yaml "gopkg.in/yaml.v3"

	"docstyle/config"
	"docstyle/content"
	"docstyle/params"
)

func TestRender_YAML(t *testing.T) {
	tree := buildTree(t, sampleDocument)
	results, err := ResolveTree(context.Background(), tree, Options{FontSize: 10}, nil)
	if err != nil {
		t.Fatalf("ResolveTree() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Render(&buf, config.OutputFmtYaml, tree, results); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	var doc struct {
		Styles []struct {
			ID        string         `yaml:"id"`
			Kind      string         `yaml:"kind"`
			FontSize  float32        `yaml:"font_size"`
			Table     map[string]any `yaml:"table"`
			Cell      map[string]any `yaml:"cell"`
			Paragraph map[string]any `yaml:"paragraph"`
		} `yaml:"styles"`
	}
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("rendered YAML is not valid: %v\n%s", err, buf.String())
	}
	if len(doc.Styles) != len(results) {
		t.Fatalf("rendered %d styles, want %d", len(doc.Styles), len(results))
	}

	p1 := doc.Styles[0]
	if p1.ID != "p1" || p1.Kind != "paragraph" || p1.FontSize != 12 {
		t.Errorf("styles[0] = %s %s %v", p1.ID, p1.Kind, p1.FontSize)
	}
	if p1.Paragraph["align"] != "right" || p1.Paragraph["leading"] != 14 {
		t.Errorf("styles[0].paragraph = %v", p1.Paragraph)
	}
	if _, ok := p1.Paragraph["bullet"]; ok {
		t.Error("absent bullet must be omitted")
	}
	if p1.Table != nil || p1.Cell != nil {
		t.Error("paragraph must have only paragraph style")
	}

	t1 := doc.Styles[1]
	if t1.Kind != "table" || t1.Table["grid_visible"] != true || t1.Table["vertical_align"] != "top" {
		t.Errorf("styles[1] = %s %v", t1.Kind, t1.Table)
	}

	c1 := doc.Styles[2]
	bg, _ := c1.Cell["background_color"].(map[string]any)
	if bg["g"] != 0.5 || bg["b"] != 1 {
		t.Errorf("styles[2].cell = %v", c1.Cell)
	}
	if c2 := doc.Styles[4]; len(c2.Cell) != 0 {
		t.Errorf("styles[4].cell = %v, want empty", c2.Cell)
	}
}

func TestRender_YAMLEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, config.OutputFmtYaml, nil, nil); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got := buf.String(); got != "styles: []\n" {
		t.Errorf("Render() = %q", got)
	}
}

func TestRender_Tree(t *testing.T) {
	tree := buildTree(t, sampleDocument)
	results, err := ResolveTree(context.Background(), tree, Options{FontSize: 10}, nil)
	if err != nil {
		t.Fatalf("ResolveTree() error = %v", err)
	}

	var buf bytes.Buffer
	if err := Render(&buf, config.OutputFmtTree, tree, results); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"document[n1]\n",
		"  paragraph[p1]\n    font_size: 12\n    leading: 14\n    align: right\n",
		"  table[t1]\n    grid_visible: true\n    grid_width: 2\n    grid_color: rgb(0, 0, 0)\n",
		"    padding: top=0 left=0 bottom=0 right=0\n",
		"    row[n4]\n",
		"      cell[c1]\n        background_color: rgb(0, 0.5, 1)\n",
		"        paragraph[p2]\n          font_size: 8\n          leading: 10\n",
		"      cell[c2]\n        background_color: none\n",
		"    bullet: \"-\"\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Render() does not contain %q:\n%s", want, out)
		}
	}
}

func TestRender_TreeWithoutTree(t *testing.T) {
	p := params.NewObject(params.Member{Key: "background_color", Value: params.Array{params.Number(1), params.Number(1), params.Number(1)}})
	results := []Result{ResolveParams(content.KindCell, "params", p, 10)}

	var buf bytes.Buffer
	if err := Render(&buf, config.OutputFmtTree, nil, results); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if got, want := buf.String(), "cell[params]\n  background_color: rgb(1, 1, 1)\n"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_UnknownFormat(t *testing.T) {
	if err := Render(&bytes.Buffer{}, config.OutputFmt(42), nil, nil); err == nil {
		t.Error("expected error for unknown output format")
	}
}
