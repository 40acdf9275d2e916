// Package style resolves the dynamic parameters of a content node into typed
// style descriptors for the layout engine.
//
// Resolution is total: absent, mistyped or otherwise unusable parameters
// leave the corresponding field at its default, and no function in this
// package returns an error. Values are never clamped, a color channel of 2.5
// or a negative padding is passed through as given.
package style

import (
	"fmt"
)

// Color is an RGB color with channels nominally in [0, 1].
type Color struct {
	R float32 `yaml:"r"`
	G float32 `yaml:"g"`
	B float32 `yaml:"b"`
}

// Black is the default grid color.
var Black = Color{}

// String returns color in "rgb(r, g, b)" notation.
func (c Color) String() string {
	return fmt.Sprintf("rgb(%g, %g, %g)", c.R, c.G, c.B)
}

// HorizontalAlign specifies horizontal alignment of content.
type HorizontalAlign int

const (
	AlignLeft HorizontalAlign = iota
	AlignCenter
	AlignRight
)

// String returns alignment keyword.
func (a HorizontalAlign) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a HorizontalAlign) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ParseHorizontalAlign maps keyword to alignment. Anything other than "center"
// or "right" is AlignLeft.
func ParseHorizontalAlign(s string) HorizontalAlign {
	switch s {
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignLeft
	}
}

// VerticalAlign specifies vertical alignment of content.
type VerticalAlign int

const (
	AlignTop VerticalAlign = iota
	AlignMiddle
	AlignBottom
)

// String returns alignment keyword.
func (a VerticalAlign) String() string {
	switch a {
	case AlignMiddle:
		return "middle"
	case AlignBottom:
		return "bottom"
	default:
		return "top"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a VerticalAlign) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// ParseVerticalAlign maps keyword to alignment. Anything other than "middle"
// or "bottom" is AlignTop.
func ParseVerticalAlign(s string) VerticalAlign {
	switch s {
	case "middle":
		return AlignMiddle
	case "bottom":
		return AlignBottom
	default:
		return AlignTop
	}
}

// Padding holds space around content for each edge.
type Padding struct {
	Top    float32 `yaml:"top"`
	Left   float32 `yaml:"left"`
	Bottom float32 `yaml:"bottom"`
	Right  float32 `yaml:"right"`
}

// TableStyle describes table grid, cell padding and cell content alignment.
type TableStyle struct {
	GridVisible     bool            `yaml:"grid_visible"`
	GridWidth       float32         `yaml:"grid_width"`
	GridColor       Color           `yaml:"grid_color"`
	Padding         Padding         `yaml:"padding"`
	VerticalAlign   VerticalAlign   `yaml:"vertical_align"`
	HorizontalAlign HorizontalAlign `yaml:"horizontal_align"`
}

// DefaultTableStyle returns table style used when nothing is specified.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		GridWidth:       1.0,
		GridColor:       Black,
		VerticalAlign:   AlignTop,
		HorizontalAlign: AlignLeft,
	}
}

// CellStyle describes a single table cell. Nil Background means no fill.
type CellStyle struct {
	Background *Color `yaml:"background_color,omitempty"`
}

// DefaultCellStyle returns cell style used when nothing is specified.
func DefaultCellStyle() CellStyle {
	return CellStyle{}
}

// ParagraphStyle describes paragraph layout. Nil Bullet means the paragraph is
// not a list item.
type ParagraphStyle struct {
	Leading      float32         `yaml:"leading"`
	Align        HorizontalAlign `yaml:"align"`
	Bullet       *string         `yaml:"bullet,omitempty"`
	BulletIndent float32         `yaml:"bullet_indent"`
	Padding      Padding         `yaml:"padding"`
}

// DefaultLeadingGap is added to font size to get default leading.
const DefaultLeadingGap = 2.0

// DefaultParagraphStyle returns paragraph style used when nothing is
// specified for text of the given font size.
func DefaultParagraphStyle(fontSize float32) ParagraphStyle {
	return ParagraphStyle{
		Leading: fontSize + DefaultLeadingGap,
		Align:   AlignLeft,
	}
}
