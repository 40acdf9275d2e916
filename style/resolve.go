package style

import (
	"docstyle/params"
)

// Node is anything carrying a parameter bag, usually *content.Node.
type Node interface {
	Params() params.Object
}

func paramsOf(n Node) params.Object {
	if n == nil {
		return params.Object{}
	}
	return n.Params()
}

// readField returns value stored in obj under key if match accepts it,
// otherwise def. Absence and mismatch are indistinguishable to the caller.
func readField[T any](obj params.Object, key string, match func(params.Value) (T, bool), def T) T {
	v, ok := obj.Get(key)
	if !ok {
		return def
	}
	if t, ok := match(v); ok {
		return t
	}
	return def
}

func number(v params.Value) (float32, bool) {
	n, ok := params.AsNumber(v)
	return float32(n), ok
}

func textPtr(v params.Value) (*string, bool) {
	s, ok := params.AsText(v)
	if !ok {
		return nil, false
	}
	return &s, true
}

func horizontal(v params.Value) (HorizontalAlign, bool) {
	s, ok := params.AsText(v)
	return ParseHorizontalAlign(s), ok
}

func vertical(v params.Value) (VerticalAlign, bool) {
	s, ok := params.AsText(v)
	return ParseVerticalAlign(s), ok
}

// DecodeColor decodes an array of exactly three elements as [r, g, b]. Any
// other value gives false. Elements that are not numbers leave their channel
// at 0 without failing the whole color.
func DecodeColor(v params.Value) (Color, bool) {
	arr, ok := params.AsArray(v)
	if !ok || len(arr) != 3 {
		return Color{}, false
	}
	var c Color
	for i, ch := range []*float32{&c.R, &c.G, &c.B} {
		if n, ok := number(arr[i]); ok {
			*ch = n
		}
	}
	return c, true
}

func colorPtr(v params.Value) (*Color, bool) {
	c, ok := DecodeColor(v)
	if !ok {
		return nil, false
	}
	return &c, true
}

// resolvePadding reads top, left, bottom and right of obj over def.
func resolvePadding(obj params.Object, def Padding) Padding {
	return Padding{
		Top:    readField(obj, "top", number, def.Top),
		Left:   readField(obj, "left", number, def.Left),
		Bottom: readField(obj, "bottom", number, def.Bottom),
		Right:  readField(obj, "right", number, def.Right),
	}
}

// ResolveTable reads table style from params "style" object:
//
//	style.grid                 presence enables grid
//	style.grid.width           number
//	style.grid.color           [r, g, b]
//	style.padding.{top,left,bottom,right}
//	style.align.horizontal     "center" | "right"
//	style.align.vertical       "middle" | "bottom"
func ResolveTable(n Node) TableStyle {
	ts := DefaultTableStyle()

	st, ok := paramsOf(n).Object("style")
	if !ok {
		return ts
	}

	if grid, ok := st.Get("grid"); ok {
		ts.GridVisible = true
		if g, ok := params.AsObject(grid); ok {
			ts.GridWidth = readField(g, "width", number, ts.GridWidth)
			ts.GridColor = readField(g, "color", DecodeColor, ts.GridColor)
		}
	}
	if pad, ok := st.Object("padding"); ok {
		ts.Padding = resolvePadding(pad, ts.Padding)
	}
	if align, ok := st.Object("align"); ok {
		ts.HorizontalAlign = readField(align, "horizontal", horizontal, ts.HorizontalAlign)
		ts.VerticalAlign = readField(align, "vertical", vertical, ts.VerticalAlign)
	}
	return ts
}

// ResolveCell reads cell background from params "background_color".
func ResolveCell(n Node) CellStyle {
	cs := DefaultCellStyle()
	cs.Background = readField(paramsOf(n), "background_color", colorPtr, cs.Background)
	return cs
}

// ResolveParagraph reads paragraph style from top level params. Font size of
// the paragraph text determines default leading.
func ResolveParagraph(n Node, fontSize float32) ParagraphStyle {
	p := paramsOf(n)
	ps := DefaultParagraphStyle(fontSize)

	ps.Leading = readField(p, "leading", number, ps.Leading)
	ps.Align = readField(p, "align", horizontal, ps.Align)
	ps.Bullet = readField(p, "bullet", textPtr, ps.Bullet)
	ps.BulletIndent = readField(p, "bullet_indent", number, ps.BulletIndent)
	if pad, ok := p.Object("padding"); ok {
		ps.Padding = resolvePadding(pad, ps.Padding)
	}
	return ps
}
