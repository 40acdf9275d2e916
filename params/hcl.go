package params

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
)

// DecodeHCL reads an HCL body. Top-level attributes and unlabeled blocks
// become members of the returned Object in source order:
//
//	leading = 14
//	padding { top = 2 }
//
// Object and tuple constructor expressions keep their source order as well,
// all other expressions are evaluated without variables or functions.
func DecodeHCL(src []byte, filename string) (Value, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.InitialPos)
	if diags.HasErrors() {
		return nil, diags
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("unexpected body type %T", file.Body)
	}
	if len(body.Attributes) == 0 && len(body.Blocks) == 0 {
		return nil, ErrEmptyDocument
	}
	o, err := fromHCLBody(body)
	if err != nil {
		return nil, err
	}
	return o, nil
}

type hclMember struct {
	start int
	key   string
	get   func() (Value, error)
}

func fromHCLBody(body *hclsyntax.Body) (Object, error) {
	members := make([]hclMember, 0, len(body.Attributes)+len(body.Blocks))
	for name, attr := range body.Attributes {
		members = append(members, hclMember{
			start: attr.SrcRange.Start.Byte,
			key:   name,
			get:   func() (Value, error) { return fromHCLExpr(attr.Expr) },
		})
	}
	for _, block := range body.Blocks {
		if len(block.Labels) > 0 {
			return Object{}, fmt.Errorf("%s: labeled blocks are not supported", block.TypeRange)
		}
		members = append(members, hclMember{
			start: block.TypeRange.Start.Byte,
			key:   block.Type,
			get: func() (Value, error) {
				o, err := fromHCLBody(block.Body)
				if err != nil {
					return nil, err
				}
				return o, nil
			},
		})
	}
	slices.SortFunc(members, func(a, b hclMember) int { return a.start - b.start })

	var o Object
	for _, m := range members {
		v, err := m.get()
		if err != nil {
			return Object{}, fmt.Errorf("in %q: %w", m.key, err)
		}
		o = o.with(m.key, v)
	}
	return o, nil
}

func fromHCLExpr(expr hclsyntax.Expression) (Value, error) {
	switch e := expr.(type) {
	case *hclsyntax.ObjectConsExpr:
		var o Object
		for _, item := range e.Items {
			kv, diags := item.KeyExpr.Value(nil)
			if diags.HasErrors() {
				return nil, diags
			}
			key, err := hclKey(kv)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", item.KeyExpr.Range(), err)
			}
			v, err := fromHCLExpr(item.ValueExpr)
			if err != nil {
				return nil, fmt.Errorf("in %q: %w", key, err)
			}
			o = o.with(key, v)
		}
		return o, nil

	case *hclsyntax.TupleConsExpr:
		a := make(Array, 0, len(e.Exprs))
		for i, ex := range e.Exprs {
			v, err := fromHCLExpr(ex)
			if err != nil {
				return nil, fmt.Errorf("in element %d: %w", i, err)
			}
			a = append(a, v)
		}
		return a, nil

	case *hclsyntax.ParenthesesExpr:
		return fromHCLExpr(e.Expression)
	}

	v, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, diags
	}
	return FromCty(v)
}

func hclKey(v cty.Value) (string, error) {
	if v.IsNull() || !v.IsKnown() {
		return "", fmt.Errorf("object key must be known and not null")
	}
	sv, err := convert.Convert(v, cty.String)
	if err != nil {
		return "", fmt.Errorf("object key must be a string: %w", err)
	}
	return sv.AsString(), nil
}

// FromCty converts an evaluated cty value. Object and map attributes come out
// in cty iteration order, which is lexical.
func FromCty(v cty.Value) (Value, error) {
	v, _ = v.Unmark()
	if !v.IsKnown() {
		return nil, fmt.Errorf("value is not known")
	}
	if v.IsNull() {
		return Text(nullLiteral), nil
	}

	ty := v.Type()
	switch {
	case ty == cty.String:
		return Text(v.AsString()), nil

	case ty == cty.Number:
		f, _ := v.AsBigFloat().Float64()
		return Number(f), nil

	case ty == cty.Bool:
		return Text(strconv.FormatBool(v.True())), nil

	case ty.IsListType() || ty.IsTupleType() || ty.IsSetType():
		a := make(Array, 0, v.LengthInt())
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			ov, err := FromCty(ev)
			if err != nil {
				return nil, fmt.Errorf("in element %d: %w", len(a), err)
			}
			a = append(a, ov)
		}
		return a, nil

	case ty.IsObjectType() || ty.IsMapType():
		var o Object
		for it := v.ElementIterator(); it.Next(); {
			k, ev := it.Element()
			ov, err := FromCty(ev)
			if err != nil {
				return nil, fmt.Errorf("in attribute %q: %w", k.AsString(), err)
			}
			o = o.with(k.AsString(), ov)
		}
		return o, nil
	}
	return nil, fmt.Errorf("unsupported cty type %s", ty.FriendlyName())
}
