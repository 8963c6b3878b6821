package appbar

import "github.com/google/uuid"

// Session is a pending or committed bar registration for one window. It
// lives for a single Set call; the docking service keeps the durable state.
type Session struct {
	ID     string
	Window WindowHandle
	Edge   Edge
	Rect   Rect

	// Reused is set by the backend when the window was already registered
	// before this session started.
	Reused bool
}

// NewSession seeds a session with the requested edge and bounds.
func NewSession(window WindowHandle, edge Edge, bounds Rect) *Session {
	return &Session{
		ID:     uuid.NewString(),
		Window: window,
		Edge:   edge,
		Rect:   bounds,
	}
}

// Shell is the desktop docking service. Callback notifications are never
// requested.
type Shell interface {
	// Register claims a slot on edge for window.
	Register(edge Edge, bounds Rect, window WindowHandle) (*Session, error)
	// QueryPos proposes a rectangle for s.Rect that avoids every other bar.
	QueryPos(s *Session) (Rect, error)
	// SetPos commits rc as the reserved region and returns the rectangle
	// the service actually reserved.
	SetPos(s *Session, rc Rect) (Rect, error)
	// Remove unregisters window. Unknown windows are not an error.
	Remove(window WindowHandle) error
}

// Screen reports the primary display's bounds.
type Screen interface {
	PrimaryBounds() (Rect, error)
}
