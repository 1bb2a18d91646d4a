package drawing

// Beside moves right so that its left edge sits gap past the right edge of left
// and the two top edges line up. An empty left leaves right where it is.
// The returned bounds enclose both drawings.
func Beside(left, right *Drawing, gap float64) Bounds {
	rb, ok := right.Bounds()
	if !ok {
		lb, _ := left.Bounds()
		return lb
	}

	lb, ok := left.Bounds()
	if !ok {
		return rb
	}

	dx := lb.Right + gap - rb.Left
	dy := lb.Top - rb.Top
	right.Translate(dx, dy)

	return lb.Union(rb.Translate(dx, dy))
}

// Above moves top so that its bottom edge sits gap*(depth+1) above the top edge
// of bottom, horizontally centered on it. A larger depth leaves more room for
// lines fanning out from bottom to the pieces of top.
func Above(top, bottom *Drawing, gap float64, depth int) Bounds {
	bb, ok := bottom.Bounds()
	if !ok {
		tb, _ := top.Bounds()
		return tb
	}

	tb, ok := top.Bounds()
	if !ok {
		return bb
	}

	offset := gap * float64(depth+1)
	dx := bb.CenterX() - tb.CenterX()
	dy := bb.Top - offset - tb.Bottom
	top.Translate(dx, dy)

	return bb.Union(tb.Translate(dx, dy))
}

// Center moves d so its bounds are centered on a width x height page, shifted
// down by baselineY.
func Center(d *Drawing, width, height, baselineY float64) {
	b, ok := d.Bounds()
	if !ok {
		return
	}

	dx := (width-b.Width())/2 - b.Left
	dy := (height-b.Height())/2 + baselineY - b.Top
	if dx == 0 && dy == 0 {
		return
	}

	d.Translate(dx, dy)
}
