package layout

import "github.com/rocketscienceinc/tictactoe-tree/internal/drawing"

type Margin struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// Config - geometry and colors of the rendered tree.
type Config struct {
	// SideLength and LineWidth are whole pixels; cell size uses integer division.
	SideLength int
	LineWidth  int

	HorizontalGap float64
	VerticalGap   float64
	Margin        Margin

	Background drawing.RGB
	EmptyColor drawing.RGB
	XColor     drawing.RGB
	OColor     drawing.RGB

	LineColor      drawing.RGB
	ConnectorWidth float64

	CaptionSize  float64
	CaptionColor drawing.RGB
}

func DefaultConfig() Config {
	return Config{
		SideLength:     256,
		LineWidth:      10,
		HorizontalGap:  256,
		VerticalGap:    256,
		Margin:         Margin{Left: 100, Right: 100, Top: 100, Bottom: 150},
		Background:     drawing.Black(),
		EmptyColor:     drawing.White(),
		XColor:         drawing.NewRGB(255, 0, 0),
		OColor:         drawing.NewRGB(0, 255, 0),
		LineColor:      drawing.Black(),
		ConnectorWidth: 4,
		CaptionSize:    48,
		CaptionColor:   drawing.Black(),
	}
}
