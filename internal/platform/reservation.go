package platform

import "github.com/example/goappbar/internal/appbar"

// reservation is screen space held by a docked bar.
type reservation struct {
	window appbar.WindowHandle
	edge   appbar.Edge
	rect   appbar.Rect
}

// avoid trims candidate so it no longer overlaps any reservation held by a
// window other than self. The side of candidate facing a reservation's edge
// is moved past that reservation, so the candidate keeps its own edge.
func avoid(candidate appbar.Rect, others []reservation, self appbar.WindowHandle) appbar.Rect {
	for _, other := range others {
		if other.window == self || !candidate.Intersects(other.rect) {
			continue
		}
		switch other.edge {
		case appbar.EdgeTop:
			candidate.Top = other.rect.Bottom
		case appbar.EdgeBottom:
			candidate.Bottom = other.rect.Top
		case appbar.EdgeLeft:
			candidate.Left = other.rect.Right
		case appbar.EdgeRight:
			candidate.Right = other.rect.Left
		}
	}
	return candidate
}
