package appbar

import "fmt"

// Rect is a screen rectangle in the shell's RECT layout. Right and Bottom
// are exclusive.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// Width returns Right-Left.
func (r Rect) Width() int32 { return r.Right - r.Left }

// Height returns Bottom-Top.
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// Empty reports whether the rectangle has no area. Inverted rectangles are
// empty even when their width or height would wrap back to a positive value.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// span returns the rectangle's extent perpendicular to edge.
func (r Rect) span(edge Edge) int32 {
	if edge.Vertical() {
		return r.Width()
	}
	return r.Height()
}

// Intersects reports whether r and other share any area.
func (r Rect) Intersects(other Rect) bool {
	return r.Left < other.Right && other.Left < r.Right &&
		r.Top < other.Bottom && other.Top < r.Bottom
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// EnforceThickness anchors rc at edge and sets the span perpendicular to
// that edge to thickness. The other three coordinates are left unchanged.
func EnforceThickness(rc Rect, edge Edge, thickness int32) Rect {
	switch edge {
	case EdgeTop:
		rc.Bottom = rc.Top + thickness
	case EdgeBottom:
		rc.Top = rc.Bottom - thickness
	case EdgeLeft:
		rc.Right = rc.Left + thickness
	case EdgeRight:
		rc.Left = rc.Right - thickness
	}
	return rc
}

// Result is the committed bar geometry reported to the caller.
type Result struct {
	X      int
	Y      int
	Width  int
	Height int
}

// ResultFromRect converts a committed rectangle into origin and size.
func ResultFromRect(rc Rect) Result {
	return Result{
		X:      int(rc.Left),
		Y:      int(rc.Top),
		Width:  int(rc.Width()),
		Height: int(rc.Height()),
	}
}

// String formats the result as "x y width height".
func (r Result) String() string {
	return fmt.Sprintf("%d %d %d %d", r.X, r.Y, r.Width, r.Height)
}
