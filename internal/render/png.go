package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/rocketscienceinc/tictactoe-tree/internal/drawing"
)

// MaxPixels bounds the working image, supersampling included.
const MaxPixels = 64 << 20

var ErrCanvasTooLarge = errors.New("canvas is too large to rasterize")

type PNGOptions struct {
	Scale       float64
	Supersample int
}

type PNG struct {
	scale       float64
	supersample int
}

func NewPNG(options PNGOptions) *PNG {
	scale := options.Scale
	if scale <= 0 {
		scale = 1
	}

	supersample := options.Supersample
	if supersample < 1 {
		supersample = 1
	}

	return &PNG{scale: scale, supersample: supersample}
}

func (that *PNG) ContentType() string {
	return "image/png"
}

// Size - pixel dimensions of the encoded image for canvas.
func (that *PNG) Size(canvas *drawing.Canvas) (int, int) {
	width := int(math.Ceil(canvas.Width * that.scale))
	height := int(math.Ceil(canvas.Height * that.scale))

	return max(width, 1), max(height, 1)
}

func (that *PNG) Render(w io.Writer, canvas *drawing.Canvas) error {
	width, height := that.Size(canvas)

	ss := that.supersample
	if width*ss*height*ss > MaxPixels {
		return fmt.Errorf("%w: %dx%d at supersample %d", ErrCanvasTooLarge, width, height, ss)
	}

	img, err := rasterize(canvas, that.scale*float64(ss), width*ss, height*ss)
	if err != nil {
		return err
	}

	if ss > 1 {
		small := image.NewRGBA(image.Rect(0, 0, width, height))
		draw.CatmullRom.Scale(small, small.Bounds(), img, img.Bounds(), draw.Src, nil)
		img = small
	}

	if err = png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}

	return nil
}

type painter struct {
	img   *image.RGBA
	scale float64

	lines     *vector.Rasterizer
	lineColor color.RGBA
	pending   bool

	font  *opentype.Font
	faces map[float64]font.Face
}

func rasterize(canvas *drawing.Canvas, scale float64, width, height int) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	p := &painter{
		img:   img,
		scale: scale,
		lines: vector.NewRasterizer(width, height),
		font:  regular,
		faces: make(map[float64]font.Face),
	}
	defer p.close()

	for _, item := range canvas.Display {
		item.Walk(func(d *drawing.Drawing) {
			if err != nil {
				return
			}

			err = p.paint(d)
		})
	}

	if err != nil {
		return nil, err
	}

	p.flush()

	return img, nil
}

func (that *painter) paint(d *drawing.Drawing) error {
	switch shape := d.Shape.(type) {
	case drawing.Line:
		that.line(d, shape)
	case drawing.Rectangle:
		that.flush()
		that.rectangle(d, shape)
	case drawing.Text:
		that.flush()
		return that.text(d, shape)
	}

	return nil
}

func (that *painter) rectangle(d *drawing.Drawing, shape drawing.Rectangle) {
	if !d.Style.Filled {
		return
	}

	r := image.Rect(
		round(d.X*that.scale), round(d.Y*that.scale),
		round((d.X+shape.Width)*that.scale), round((d.Y+shape.Height)*that.scale),
	)

	draw.Draw(that.img, r, image.NewUniform(d.Style.Fill.RGBA()), image.Point{}, draw.Over)
}

// line adds the stroke outline to the rasterizer; consecutive lines of one
// color are filled together.
func (that *painter) line(d *drawing.Drawing, shape drawing.Line) {
	length := math.Hypot(shape.DX, shape.DY)
	if length == 0 || d.Style.StrokeWidth <= 0 {
		return
	}

	c := d.Style.Stroke.RGBA()
	if that.pending && c != that.lineColor {
		that.flush()
	}

	that.lineColor = c
	that.pending = true

	half := d.Style.StrokeWidth / 2
	nx := -shape.DY / length * half
	ny := shape.DX / length * half

	x1, y1 := d.X, d.Y
	x2, y2 := d.X+shape.DX, d.Y+shape.DY

	that.lines.MoveTo(that.point(x1+nx, y1+ny))
	that.lines.LineTo(that.point(x2+nx, y2+ny))
	that.lines.LineTo(that.point(x2-nx, y2-ny))
	that.lines.LineTo(that.point(x1-nx, y1-ny))
	that.lines.ClosePath()
}

func (that *painter) flush() {
	if !that.pending {
		return
	}

	bounds := that.img.Bounds()
	that.lines.DrawOp = draw.Over
	that.lines.Draw(that.img, bounds, image.NewUniform(that.lineColor), image.Point{})
	that.lines.Reset(bounds.Dx(), bounds.Dy())
	that.pending = false
}

func (that *painter) text(d *drawing.Drawing, shape drawing.Text) error {
	size := shape.Size * that.scale
	if size <= 0 || shape.Content == "" {
		return nil
	}

	face, ok := that.faces[size]
	if !ok {
		var err error

		face, err = opentype.NewFace(that.font, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
		if err != nil {
			return fmt.Errorf("failed to create font face: %w", err)
		}

		that.faces[size] = face
	}

	fill := d.Style.Fill
	if !d.Style.Filled {
		fill = d.Style.Stroke
	}

	drawer := &font.Drawer{
		Dst:  that.img,
		Src:  image.NewUniform(fill.RGBA()),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(round(d.X * that.scale)),
			Y: fixed.I(round(d.Y*that.scale)) + face.Metrics().Ascent,
		},
	}
	drawer.DrawString(shape.Content)

	return nil
}

func (that *painter) point(x, y float64) (float32, float32) {
	return float32(x * that.scale), float32(y * that.scale)
}

func (that *painter) close() {
	for _, face := range that.faces {
		_ = face.Close()
	}
}

func round(v float64) int {
	return int(math.Round(v))
}
