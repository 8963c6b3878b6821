package platform

import (
	"sync"

	"github.com/example/goappbar/internal/appbar"
	"github.com/example/goappbar/internal/config"
	"github.com/example/goappbar/internal/logging"
)

// Simulated is an in-memory docking service. It follows the shell's
// contract closely enough to dry-run a negotiation on any platform; its
// state lives only as long as the value.
type Simulated struct {
	mu     sync.Mutex
	bounds appbar.Rect
	bars   []reservation
}

var _ Backend = (*Simulated)(nil)

// NewSimulated builds a desktop from layout, docking its bars in order.
func NewSimulated(layout *config.Layout) *Simulated {
	s := &Simulated{bounds: layout.Bounds()}
	for _, bar := range layout.Bars {
		window := appbar.WindowHandle(bar.Window)
		edge := bar.ResolvedEdge()
		rc := appbar.EnforceThickness(avoid(s.bounds, s.bars, window), edge, bar.Thickness)
		s.bars = append(s.bars, reservation{window: window, edge: edge, rect: rc})
		logging.Debugf("simulated desktop: window %s holds %s on %s edge", window, rc, edge)
	}
	return s
}

// PrimaryBounds returns the layout's screen rectangle.
func (s *Simulated) PrimaryBounds() (appbar.Rect, error) {
	return s.bounds, nil
}

// Register adds a pending reservation for window.
func (s *Simulated) Register(edge appbar.Edge, bounds appbar.Rect, window appbar.WindowHandle) (*appbar.Session, error) {
	if window == 0 {
		return nil, appbar.ErrInvalidWindow
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := appbar.NewSession(window, edge, bounds)
	if s.index(window) >= 0 {
		sess.Reused = true
		return sess, nil
	}
	s.bars = append(s.bars, reservation{window: window, edge: edge})
	return sess, nil
}

// QueryPos trims the session rectangle against every other bar.
func (s *Simulated) QueryPos(sess *appbar.Session) (appbar.Rect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.index(sess.Window) < 0 {
		return appbar.Rect{}, ErrNotRegistered
	}
	return avoid(sess.Rect, s.bars, sess.Window), nil
}

// SetPos trims rc once more and stores it as the window's reservation.
func (s *Simulated) SetPos(sess *appbar.Session, rc appbar.Rect) (appbar.Rect, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(sess.Window)
	if idx < 0 {
		return appbar.Rect{}, ErrNotRegistered
	}
	rc = avoid(rc, s.bars, sess.Window)
	s.bars[idx].edge = sess.Edge
	s.bars[idx].rect = rc
	return rc, nil
}

// Remove drops window's reservation if it has one.
func (s *Simulated) Remove(window appbar.WindowHandle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.index(window); idx >= 0 {
		s.bars = append(s.bars[:idx], s.bars[idx+1:]...)
	}
	return nil
}

// Reserved reports the rectangle held by window.
func (s *Simulated) Reserved(window appbar.WindowHandle) (appbar.Rect, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(window)
	if idx < 0 {
		return appbar.Rect{}, false
	}
	return s.bars[idx].rect, true
}

// Close is a no-op.
func (s *Simulated) Close() error {
	return nil
}

func (s *Simulated) index(window appbar.WindowHandle) int {
	for i, bar := range s.bars {
		if bar.window == window {
			return i
		}
	}
	return -1
}
