package render

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/rocketscienceinc/tictactoe-tree/internal/drawing"
)

// baseline is where the text baseline sits below the top of a line of text, relative to its size.
const baseline = 0.8

type SVG struct{}

func NewSVG() *SVG {
	return &SVG{}
}

func (that *SVG) ContentType() string {
	return "image/svg+xml"
}

func (that *SVG) Render(w io.Writer, canvas *drawing.Canvas) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(canvas.Width), num(canvas.Height), num(canvas.Width), num(canvas.Height))

	for _, item := range canvas.Display {
		item.Walk(func(d *drawing.Drawing) {
			writeElement(bw, d)
		})
	}

	fmt.Fprintln(bw, "</svg>")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write svg: %w", err)
	}

	return nil
}

func writeElement(w *bufio.Writer, d *drawing.Drawing) {
	switch shape := d.Shape.(type) {
	case drawing.Rectangle:
		fmt.Fprintf(w, `<rect x="%s" y="%s" width="%s" height="%s"%s/>`+"\n",
			num(d.X), num(d.Y), num(shape.Width), num(shape.Height), paint(d.Style))
	case drawing.Line:
		fmt.Fprintf(w, `<line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`+"\n",
			num(d.X), num(d.Y), num(d.X+shape.DX), num(d.Y+shape.DY), paint(d.Style))
	case drawing.Text:
		fmt.Fprintf(w, `<text x="%s" y="%s" font-family="sans-serif" font-size="%s"%s>`,
			num(d.X), num(d.Y+shape.Size*baseline), num(shape.Size), paint(d.Style))
		_ = xml.EscapeText(w, []byte(shape.Content))
		fmt.Fprintln(w, "</text>")
	}
}

func paint(style drawing.Style) string {
	fill := "none"
	if style.Filled {
		fill = style.Fill.Hex()
	}

	attrs := fmt.Sprintf(` fill="%s"`, fill)
	if style.StrokeWidth > 0 {
		attrs += fmt.Sprintf(` stroke="%s" stroke-width="%s"`, style.Stroke.Hex(), num(style.StrokeWidth))
	}

	return attrs
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
