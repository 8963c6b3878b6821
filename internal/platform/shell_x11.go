//go:build linux

package platform

import (
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil"
	"github.com/BurntSushi/xgbutil/ewmh"
	"github.com/BurntSushi/xgbutil/xprop"

	"github.com/example/goappbar/internal/appbar"
	"github.com/example/goappbar/internal/logging"
)

// X11Shell docks windows through EWMH struts. The window manager plays the
// role of the shell: it keeps maximized windows out of strut space.
type X11Shell struct {
	xu    *xgbutil.XUtil
	root  xproto.Window
	randr bool
}

var _ Backend = (*X11Shell)(nil)

// NewX11Shell connects to the X server named by $DISPLAY.
func NewX11Shell() (*X11Shell, error) {
	xu, err := xgbutil.NewConn()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to X11: %w", err)
	}
	s := &X11Shell{xu: xu, root: xu.RootWin()}
	if err := randr.Init(xu.Conn()); err != nil {
		logging.Debugf("randr unavailable, docking against the root window: %v", err)
	} else {
		s.randr = true
	}
	return s, nil
}

func openNative(name string) (Backend, error) {
	if name != BackendX11 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, name)
	}
	return NewX11Shell()
}

// PrimaryBounds returns the area of the RandR primary output. Without RandR
// or a primary output it falls back to the whole root window.
func (s *X11Shell) PrimaryBounds() (appbar.Rect, error) {
	if s.randr {
		rc, err := s.primaryOutputBounds()
		if err == nil {
			return rc, nil
		}
		logging.Debugf("primary output unavailable, using root window: %v", err)
	}
	return s.rootBounds()
}

func (s *X11Shell) primaryOutputBounds() (appbar.Rect, error) {
	conn := s.xu.Conn()
	primary, err := randr.GetOutputPrimary(conn, s.root).Reply()
	if err != nil {
		return appbar.Rect{}, fmt.Errorf("get primary output: %w", err)
	}
	if primary == nil || primary.Output == 0 {
		return appbar.Rect{}, errors.New("no primary output configured")
	}

	resources, err := randr.GetScreenResources(conn, s.root).Reply()
	if err != nil {
		return appbar.Rect{}, fmt.Errorf("get screen resources: %w", err)
	}
	output, err := randr.GetOutputInfo(conn, primary.Output, resources.ConfigTimestamp).Reply()
	if err != nil {
		return appbar.Rect{}, fmt.Errorf("get output info: %w", err)
	}
	if output.Crtc == 0 {
		return appbar.Rect{}, fmt.Errorf("primary output %s is disabled", output.Name)
	}
	crtc, err := randr.GetCrtcInfo(conn, output.Crtc, resources.ConfigTimestamp).Reply()
	if err != nil {
		return appbar.Rect{}, fmt.Errorf("get crtc info: %w", err)
	}
	rc, ok := crtcBounds(crtc)
	if !ok {
		return appbar.Rect{}, fmt.Errorf("primary output %s has no active mode", output.Name)
	}
	return rc, nil
}

// rootBounds returns the root window extent. Struts are always measured
// from the root window's sides, whatever head the bar sits on.
func (s *X11Shell) rootBounds() (appbar.Rect, error) {
	geom, err := xproto.GetGeometry(s.xu.Conn(), xproto.Drawable(s.root)).Reply()
	if err != nil {
		return appbar.Rect{}, fmt.Errorf("root geometry: %w", err)
	}
	return appbar.Rect{Right: int32(geom.Width), Bottom: int32(geom.Height)}, nil
}

// Register marks window as a dock. A window that already carries a strut
// is reported as Reused.
func (s *X11Shell) Register(edge appbar.Edge, bounds appbar.Rect, window appbar.WindowHandle) (*appbar.Session, error) {
	win, err := xwindow(window)
	if err != nil {
		return nil, err
	}
	if _, err := xproto.GetGeometry(s.xu.Conn(), xproto.Drawable(win)).Reply(); err != nil {
		return nil, fmt.Errorf("%w: %v", appbar.ErrInvalidWindow, err)
	}

	sess := appbar.NewSession(window, edge, bounds)
	if _, err := ewmh.WmStrutPartialGet(s.xu, win); err == nil {
		sess.Reused = true
	}
	if err := claimDockType(s, win); err != nil {
		return nil, fmt.Errorf("set dock window type: %w", err)
	}
	return sess, nil
}

// QueryPos trims the session rectangle, which starts as the primary output's
// bounds, against the struts of every other dock window.
func (s *X11Shell) QueryPos(sess *appbar.Session) (appbar.Rect, error) {
	root, err := s.rootBounds()
	if err != nil {
		return appbar.Rect{}, err
	}
	others, err := s.dockReservations(root)
	if err != nil {
		return appbar.Rect{}, err
	}
	return avoid(sess.Rect, others, sess.Window), nil
}

// SetPos publishes the strut for rc. The window itself is not moved; the
// caller positions it from the returned rectangle.
func (s *X11Shell) SetPos(sess *appbar.Session, rc appbar.Rect) (appbar.Rect, error) {
	win, err := xwindow(sess.Window)
	if err != nil {
		return appbar.Rect{}, err
	}
	root, err := s.rootBounds()
	if err != nil {
		return appbar.Rect{}, err
	}

	sp := strutFor(sess.Edge, rc, root.Right, root.Bottom)
	if err := ewmh.WmStrutPartialSet(s.xu, win, sp); err != nil {
		return appbar.Rect{}, fmt.Errorf("set _NET_WM_STRUT_PARTIAL: %w", err)
	}
	// Older window managers only read _NET_WM_STRUT.
	legacy := &ewmh.WmStrut{Left: sp.Left, Right: sp.Right, Top: sp.Top, Bottom: sp.Bottom}
	if err := ewmh.WmStrutSet(s.xu, win, legacy); err != nil {
		return appbar.Rect{}, fmt.Errorf("set _NET_WM_STRUT: %w", err)
	}
	return rc, nil
}

// Remove deletes the window's struts and restores the window type it had
// before Register made it a dock.
func (s *X11Shell) Remove(window appbar.WindowHandle) error {
	win, err := xwindow(window)
	if err != nil {
		return err
	}

	for _, name := range []string{"_NET_WM_STRUT_PARTIAL", "_NET_WM_STRUT"} {
		if err := s.deleteProp(win, name); err != nil {
			return err
		}
	}

	if err := releaseDockType(s, win); err != nil {
		logging.Debugf("restore window type for %s: %v", window, err)
	}
	return nil
}

// Close disconnects from the X server.
func (s *X11Shell) Close() error {
	s.xu.Conn().Close()
	return nil
}

func (s *X11Shell) dockReservations(bounds appbar.Rect) ([]reservation, error) {
	clients, err := ewmh.ClientListGet(s.xu)
	if err != nil {
		return nil, fmt.Errorf("read client list: %w", err)
	}

	var out []reservation
	for _, id := range clients {
		if !s.isDock(id) {
			continue
		}

		sp, err := ewmh.WmStrutPartialGet(s.xu, id)
		if err != nil {
			// Some docks only set _NET_WM_STRUT (no partial ranges).
			legacy, err := ewmh.WmStrutGet(s.xu, id)
			if err != nil {
				continue
			}
			sp = fullSpanStrut(legacy, bounds.Right, bounds.Bottom)
		}
		out = append(out, strutReservations(appbar.WindowHandle(id), sp, bounds.Right, bounds.Bottom)...)
	}
	return out, nil
}

func (s *X11Shell) isDock(win xproto.Window) bool {
	types, err := ewmh.WmWindowTypeGet(s.xu, win)
	if err != nil {
		return false
	}
	return containsString(types, windowTypeDock)
}

func (s *X11Shell) atoms(win xproto.Window, prop string) ([]string, bool) {
	reply, err := xprop.GetProperty(s.xu, win, prop)
	values, err := xprop.PropValAtoms(s.xu, reply, err)
	if err != nil {
		return nil, false
	}
	return values, true
}

func (s *X11Shell) setAtoms(win xproto.Window, prop string, values []string) error {
	atoms, err := xprop.StrToAtoms(s.xu, values)
	if err != nil {
		return fmt.Errorf("intern atoms for %s: %w", prop, err)
	}
	return xprop.ChangeProp32(s.xu, win, prop, "ATOM", atoms...)
}

func (s *X11Shell) deleteProp(win xproto.Window, prop string) error {
	atom, err := xprop.Atm(s.xu, prop)
	if err != nil {
		return fmt.Errorf("intern %s: %w", prop, err)
	}
	if err := xproto.DeletePropertyChecked(s.xu.Conn(), win, atom).Check(); err != nil {
		return fmt.Errorf("delete %s: %w", prop, err)
	}
	return nil
}

func xwindow(window appbar.WindowHandle) (xproto.Window, error) {
	if uint64(window) > math.MaxUint32 {
		return 0, appbar.ErrInvalidWindow
	}
	return xproto.Window(window), nil
}
