package appbar

import (
	"context"

	"github.com/example/goappbar/internal/logging"
)

// Request describes the bar a caller wants docked.
type Request struct {
	Edge      Edge
	Thickness int32
	Window    WindowHandle
}

// Negotiator runs the register, query, enforce and commit sequence against
// a docking service.
type Negotiator struct {
	shell  Shell
	screen Screen
}

// NewNegotiator constructs a Negotiator for the given backend capabilities.
func NewNegotiator(shell Shell, screen Screen) *Negotiator {
	return &Negotiator{shell: shell, screen: screen}
}

// Set docks req.Window to req.Edge and returns the committed geometry.
//
// Every shell call is checked. A window that is already registered is
// renegotiated in place. When a later step fails after a fresh
// registration, the registration is removed again so no partial reservation
// survives.
func (n *Negotiator) Set(ctx context.Context, req Request) (Result, error) {
	thickness, _ := NormalizeThickness(req.Thickness)

	bounds, err := n.screen.PrimaryBounds()
	if err != nil {
		return Result{}, &DockError{Step: StepScreen, Window: req.Window, Err: err}
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	sess, err := n.shell.Register(req.Edge, bounds, req.Window)
	if err != nil {
		return Result{}, &DockError{Step: StepRegister, Window: req.Window, Err: err}
	}
	if sess.Reused {
		logging.Warnf("window %s is already registered; renegotiating on the %s edge", sess.Window, sess.Edge)
	}
	logging.Debugf("session %s: registered window %s on %s edge within %s", sess.ID, sess.Window, sess.Edge, bounds)

	committed, err := n.negotiate(ctx, sess, thickness)
	if err != nil {
		n.rollback(sess)
		return Result{}, err
	}
	return ResultFromRect(committed), nil
}

func (n *Negotiator) negotiate(ctx context.Context, sess *Session, thickness int32) (Rect, error) {
	if err := ctx.Err(); err != nil {
		return Rect{}, err
	}

	proposed, err := n.shell.QueryPos(sess)
	if err != nil {
		return Rect{}, &DockError{Step: StepQuery, Window: sess.Window, Err: err}
	}
	logging.Debugf("session %s: shell proposed %s", sess.ID, proposed)
	if proposed.Empty() {
		return Rect{}, &DockError{Step: StepQuery, Window: sess.Window, Err: ErrDegenerateRect}
	}
	if room := proposed.span(sess.Edge); thickness > room {
		logging.Warnf("thickness %d does not fit the %d pixels left on the %s edge, using %d", thickness, room, sess.Edge, room)
		thickness = room
	}

	sess.Rect = EnforceThickness(proposed, sess.Edge, thickness)
	if err := ctx.Err(); err != nil {
		return Rect{}, err
	}

	committed, err := n.shell.SetPos(sess, sess.Rect)
	if err != nil {
		return Rect{}, &DockError{Step: StepCommit, Window: sess.Window, Err: err}
	}
	sess.Rect = committed
	logging.Debugf("session %s: committed %s", sess.ID, committed)

	if committed.Empty() {
		return Rect{}, &DockError{Step: StepCommit, Window: sess.Window, Err: ErrDegenerateRect}
	}
	return committed, nil
}

func (n *Negotiator) rollback(sess *Session) {
	if sess.Reused {
		return
	}
	if err := n.shell.Remove(sess.Window); err != nil {
		logging.Warnf("session %s: failed to unregister window %s after error: %v", sess.ID, sess.Window, err)
		return
	}
	logging.Debugf("session %s: rolled back registration of window %s", sess.ID, sess.Window)
}

// Remove unregisters window. It does not check that the window was ever
// registered.
func (n *Negotiator) Remove(ctx context.Context, window WindowHandle) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := n.shell.Remove(window); err != nil {
		return &DockError{Step: StepRemove, Window: window, Err: err}
	}
	logging.Debugf("unregistered window %s", window)
	return nil
}
