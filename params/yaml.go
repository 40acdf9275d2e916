package params

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

const (
	// maximum nesting, protects from self-referencing anchors
	maxYAMLDepth = 64
	// maximum number of values in decoded document, aliases count as many
	// times as they are referenced
	maxYAMLValues = 1 << 20
)

// ErrDocumentTooLarge is returned when alias expansion would produce more
// values than any sane parameter document has.
var ErrDocumentTooLarge = errors.New("document expands to too many values")

// DecodeYAML reads a single YAML document. Mapping key order is preserved,
// aliases and merge keys are expanded. Anchored nodes are converted once and
// shared by all aliases referring to them.
func DecodeYAML(data []byte) (Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}
	d := yamlDecoder{anchors: make(map[*yaml.Node]yamlValue)}
	v, err := d.node(&doc, 0)
	if err != nil {
		return nil, err
	}
	return v.v, nil
}

// yamlValue is converted node with number of values it expands to.
type yamlValue struct {
	v    Value
	size int
}

type yamlDecoder struct {
	anchors map[*yaml.Node]yamlValue
}

func (d *yamlDecoder) node(n *yaml.Node, depth int) (yamlValue, error) {
	if depth > maxYAMLDepth {
		return yamlValue{}, fmt.Errorf("line %d: document nesting is too deep", n.Line)
	}
	if n.Kind == yaml.AliasNode {
		return d.node(n.Alias, depth+1)
	}
	if yv, ok := d.anchors[n]; ok {
		return yv, nil
	}

	yv, err := d.convert(n, depth)
	if err != nil {
		return yamlValue{}, err
	}
	if yv.size > maxYAMLValues {
		return yamlValue{}, fmt.Errorf("line %d: %w", n.Line, ErrDocumentTooLarge)
	}
	if len(n.Anchor) > 0 {
		d.anchors[n] = yv
	}
	return yv, nil
}

func (d *yamlDecoder) convert(n *yaml.Node, depth int) (yamlValue, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		return d.node(n.Content[0], depth+1)

	case yaml.MappingNode:
		var o Object
		size := 1
		for i := 0; i+1 < len(n.Content); i += 2 {
			k, v := n.Content[i], n.Content[i+1]
			if k.Kind == yaml.ScalarNode && k.ShortTag() == "!!merge" {
				merged, err := d.node(v, depth+1)
				if err != nil {
					return yamlValue{}, err
				}
				if o, err = mergeYAML(o, merged.v, k.Line); err != nil {
					return yamlValue{}, err
				}
				size += merged.size
				continue
			}
			if k.Kind != yaml.ScalarNode {
				return yamlValue{}, fmt.Errorf("line %d: only scalar mapping keys are supported", k.Line)
			}
			val, err := d.node(v, depth+1)
			if err != nil {
				return yamlValue{}, err
			}
			o = o.with(k.Value, val.v)
			size += val.size
		}
		return yamlValue{v: o, size: size}, nil

	case yaml.SequenceNode:
		a := make(Array, 0, len(n.Content))
		size := 1
		for _, c := range n.Content {
			val, err := d.node(c, depth+1)
			if err != nil {
				return yamlValue{}, err
			}
			a = append(a, val.v)
			size += val.size
		}
		return yamlValue{v: a, size: size}, nil

	case yaml.ScalarNode:
		v, err := fromYAMLScalar(n)
		return yamlValue{v: v, size: 1}, err
	}
	return yamlValue{}, fmt.Errorf("line %d: unexpected yaml node kind %d", n.Line, n.Kind)
}

// mergeYAML adds keys of merged mapping (or of every mapping in merged
// sequence, earlier ones first) which o does not have yet.
func mergeYAML(o Object, merged Value, line int) (Object, error) {
	var sources []Object
	switch m := merged.(type) {
	case Object:
		sources = []Object{m}
	case Array:
		for _, e := range m {
			eo, ok := e.(Object)
			if !ok {
				return o, fmt.Errorf("line %d: merge sequence may only hold mappings, got %s", line, e.Kind())
			}
			sources = append(sources, eo)
		}
	default:
		return o, fmt.Errorf("line %d: merge requires a mapping or a sequence of mappings, got %s", line, merged.Kind())
	}
	for _, src := range sources {
		for key, val := range src.All() {
			if !o.Has(key) {
				o = o.with(key, val)
			}
		}
	}
	return o, nil
}

func fromYAMLScalar(n *yaml.Node) (Value, error) {
	switch n.ShortTag() {
	case "!!int", "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: bad number %q: %w", n.Line, n.Value, err)
		}
		return Number(f), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: bad boolean %q: %w", n.Line, n.Value, err)
		}
		return boolLiteral(b), nil
	case "!!null":
		return Text(nullLiteral), nil
	case "!!str":
		return Text(n.Value), nil
	}
	// custom tags - keep numbers numeric, everything else verbatim
	if f, err := strconv.ParseFloat(strings.TrimSpace(n.Value), 64); err == nil && n.Style&(yaml.DoubleQuotedStyle|yaml.SingleQuotedStyle) == 0 {
		return Number(f), nil
	}
	return Text(n.Value), nil
}
