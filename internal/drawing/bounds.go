package drawing

import "math"

type Bounds struct {
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// NewBounds normalizes two corners so that Left <= Right and Top <= Bottom.
func NewBounds(x1, y1, x2, y2 float64) Bounds {
	return Bounds{
		Left:   math.Min(x1, x2),
		Right:  math.Max(x1, x2),
		Top:    math.Min(y1, y2),
		Bottom: math.Max(y1, y2),
	}
}

func (that Bounds) Width() float64 { return that.Right - that.Left }

func (that Bounds) Height() float64 { return that.Bottom - that.Top }

func (that Bounds) CenterX() float64 { return (that.Left + that.Right) / 2 }

func (that Bounds) CenterY() float64 { return (that.Top + that.Bottom) / 2 }

func (that Bounds) Union(other Bounds) Bounds {
	return Bounds{
		Left:   math.Min(that.Left, other.Left),
		Right:  math.Max(that.Right, other.Right),
		Top:    math.Min(that.Top, other.Top),
		Bottom: math.Max(that.Bottom, other.Bottom),
	}
}

func (that Bounds) Translate(dx, dy float64) Bounds {
	return Bounds{
		Left:   that.Left + dx,
		Right:  that.Right + dx,
		Top:    that.Top + dy,
		Bottom: that.Bottom + dy,
	}
}
