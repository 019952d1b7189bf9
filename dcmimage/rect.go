package dcmimage

// Rect is an axis-aligned pixel region: top-left corner (X, Y), size (W, H).
type Rect struct {
	X, Y, W, H int
}

// Within reports whether the rect's bottom-right corner lies inside an
// image of the given width and height.
func (r Rect) Within(width, height int) bool {
	return r.X >= 0 && r.Y >= 0 && r.W >= 0 && r.H >= 0 &&
		r.X+r.W <= width && r.Y+r.H <= height
}
