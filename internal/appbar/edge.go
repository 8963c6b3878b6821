package appbar

import "strings"

// Edge identifies the screen side a bar is docked to. The numeric values
// match the shell's ABE_* constants so backends can pass them through.
type Edge uint32

const (
	EdgeLeft   Edge = 0
	EdgeTop    Edge = 1
	EdgeRight  Edge = 2
	EdgeBottom Edge = 3
)

var edgeNames = map[string]Edge{
	"top":    EdgeTop,
	"bottom": EdgeBottom,
	"left":   EdgeLeft,
	"right":  EdgeRight,
}

// ParseEdge maps a position name to an Edge, ignoring case. The boolean is
// false when the name is not recognized, in which case EdgeTop is returned.
func ParseEdge(name string) (Edge, bool) {
	edge, ok := edgeNames[strings.ToLower(name)]
	if !ok {
		return EdgeTop, false
	}
	return edge, true
}

// ResolveEdge is ParseEdge without the recognition flag.
func ResolveEdge(name string) Edge {
	edge, _ := ParseEdge(name)
	return edge
}

// Vertical reports whether the bar spans the screen height (left or right).
func (e Edge) Vertical() bool {
	return e == EdgeLeft || e == EdgeRight
}

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeTop:
		return "top"
	case EdgeRight:
		return "right"
	case EdgeBottom:
		return "bottom"
	default:
		return "unknown"
	}
}
