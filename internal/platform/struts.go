package platform

import (
	"github.com/BurntSushi/xgbutil/ewmh"

	"github.com/example/goappbar/internal/appbar"
)

// strutFor converts a committed bar rectangle into the EWMH partial strut
// reserving it. Struts are distances from the root window's sides.
func strutFor(edge appbar.Edge, rc appbar.Rect, rootWidth, rootHeight int32) *ewmh.WmStrutPartial {
	sp := &ewmh.WmStrutPartial{}
	switch edge {
	case appbar.EdgeTop:
		sp.Top = clampUint(rc.Bottom)
		sp.TopStartX = clampUint(rc.Left)
		sp.TopEndX = clampUint(rc.Right - 1)
	case appbar.EdgeBottom:
		sp.Bottom = clampUint(rootHeight - rc.Top)
		sp.BottomStartX = clampUint(rc.Left)
		sp.BottomEndX = clampUint(rc.Right - 1)
	case appbar.EdgeLeft:
		sp.Left = clampUint(rc.Right)
		sp.LeftStartY = clampUint(rc.Top)
		sp.LeftEndY = clampUint(rc.Bottom - 1)
	case appbar.EdgeRight:
		sp.Right = clampUint(rootWidth - rc.Left)
		sp.RightStartY = clampUint(rc.Top)
		sp.RightEndY = clampUint(rc.Bottom - 1)
	}
	return sp
}

// strutReservations expands a dock's partial strut into one reservation per
// reserved side.
func strutReservations(window appbar.WindowHandle, sp *ewmh.WmStrutPartial, rootWidth, rootHeight int32) []reservation {
	var out []reservation
	if sp.Top > 0 {
		out = append(out, reservation{window: window, edge: appbar.EdgeTop, rect: appbar.Rect{
			Left: int32(sp.TopStartX), Top: 0, Right: int32(sp.TopEndX) + 1, Bottom: int32(sp.Top),
		}})
	}
	if sp.Bottom > 0 {
		out = append(out, reservation{window: window, edge: appbar.EdgeBottom, rect: appbar.Rect{
			Left: int32(sp.BottomStartX), Top: rootHeight - int32(sp.Bottom), Right: int32(sp.BottomEndX) + 1, Bottom: rootHeight,
		}})
	}
	if sp.Left > 0 {
		out = append(out, reservation{window: window, edge: appbar.EdgeLeft, rect: appbar.Rect{
			Left: 0, Top: int32(sp.LeftStartY), Right: int32(sp.Left), Bottom: int32(sp.LeftEndY) + 1,
		}})
	}
	if sp.Right > 0 {
		out = append(out, reservation{window: window, edge: appbar.EdgeRight, rect: appbar.Rect{
			Left: rootWidth - int32(sp.Right), Top: int32(sp.RightStartY), Right: rootWidth, Bottom: int32(sp.RightEndY) + 1,
		}})
	}
	return out
}

// fullSpanStrut widens a legacy _NET_WM_STRUT to span the whole root window.
func fullSpanStrut(s *ewmh.WmStrut, rootWidth, rootHeight int32) *ewmh.WmStrutPartial {
	return &ewmh.WmStrutPartial{
		Left:         s.Left,
		Right:        s.Right,
		Top:          s.Top,
		Bottom:       s.Bottom,
		LeftStartY:   0,
		LeftEndY:     clampUint(rootHeight - 1),
		RightStartY:  0,
		RightEndY:    clampUint(rootHeight - 1),
		TopStartX:    0,
		TopEndX:      clampUint(rootWidth - 1),
		BottomStartX: 0,
		BottomEndX:   clampUint(rootWidth - 1),
	}
}

func clampUint(v int32) uint {
	if v < 0 {
		return 0
	}
	return uint(v)
}
