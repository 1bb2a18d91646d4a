// Package drawing holds positioned shapes arranged in display lists.
//
// Every drawing stores the absolute position of its own shape, so moving a
// drawing means moving each of its descendants by the same amount.
package drawing

import (
	"fmt"
	"image/color"
)

type RGB struct {
	R, G, B uint8
}

func NewRGB(r, g, b uint8) RGB {
	return RGB{R: r, G: g, B: b}
}

func Black() RGB { return RGB{} }

func White() RGB { return RGB{R: 255, G: 255, B: 255} }

func (that RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", that.R, that.G, that.B)
}

func (that RGB) RGBA() color.RGBA {
	return color.RGBA{R: that.R, G: that.G, B: that.B, A: 255}
}

type Style struct {
	Fill        RGB
	Filled      bool
	Stroke      RGB
	StrokeWidth float64
}

func Filled(c RGB) Style {
	return Style{Fill: c, Filled: true}
}

func Stroked(c RGB, width float64) Style {
	return Style{Stroke: c, StrokeWidth: width}
}

// Shape - something that occupies space once it is placed at x, y.
type Shape interface {
	Bounds(x, y float64) Bounds
}

type Rectangle struct {
	Width  float64
	Height float64
}

func (that Rectangle) Bounds(x, y float64) Bounds {
	return Bounds{Left: x, Right: x + that.Width, Top: y, Bottom: y + that.Height}
}

// Line - a segment from the drawing position to position + (DX, DY).
type Line struct {
	DX float64
	DY float64
}

func (that Line) Bounds(x, y float64) Bounds {
	return NewBounds(x, y, x+that.DX, y+that.DY)
}

// Text - a single line of text whose top-left corner is the drawing position.
type Text struct {
	Content string
	Size    float64
}

// advance is the average glyph width relative to the font size.
const advance = 0.6

func (that Text) Bounds(x, y float64) Bounds {
	width := float64(len([]rune(that.Content))) * that.Size * advance
	return Bounds{Left: x, Right: x + width, Top: y, Bottom: y + that.Size}
}

type DisplayList []*Drawing

func (that *DisplayList) Add(d *Drawing) {
	*that = append(*that, d)
}

// Drawing - a shape (optional) together with the drawings layered on top of it.
type Drawing struct {
	Shape   Shape
	Style   Style
	X       float64
	Y       float64
	Display DisplayList
}

func New() *Drawing {
	return &Drawing{}
}

// Group - a shapeless drawing that owns items.
func Group(items ...*Drawing) *Drawing {
	d := New()
	d.Display = append(d.Display, items...)

	return d
}

func (that *Drawing) WithShape(shape Shape) *Drawing {
	that.Shape = shape
	return that
}

func (that *Drawing) WithStyle(style Style) *Drawing {
	that.Style = style
	return that
}

func (that *Drawing) WithXY(x, y float64) *Drawing {
	that.X = x
	that.Y = y

	return that
}

// Bounds - the smallest rectangle enclosing every shape of the drawing and its
// descendants. ok is false when there are no shapes at all.
func (that *Drawing) Bounds() (Bounds, bool) {
	var (
		bounds Bounds
		ok     bool
	)

	that.Walk(func(d *Drawing) {
		if d.Shape == nil {
			return
		}

		b := d.Shape.Bounds(d.X, d.Y)
		if !ok {
			bounds, ok = b, true
			return
		}

		bounds = bounds.Union(b)
	})

	return bounds, ok
}

// Translate moves the drawing and all of its descendants.
func (that *Drawing) Translate(dx, dy float64) {
	that.Walk(func(d *Drawing) {
		d.X += dx
		d.Y += dy
	})
}

// Walk visits the drawing and then its display list, depth first, in paint order.
func (that *Drawing) Walk(fn func(d *Drawing)) {
	fn(that)
	for _, child := range that.Display {
		child.Walk(fn)
	}
}

// Canvas - the page a renderer paints; Display is painted first to last.
type Canvas struct {
	Width   float64
	Height  float64
	Display DisplayList
}

func NewCanvas(width, height float64) *Canvas {
	return &Canvas{Width: width, Height: height}
}
