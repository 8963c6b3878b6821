//go:build windows

package platform

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/example/goappbar/internal/appbar"
)

// SHAppBarMessage messages.
const (
	abmNew      = 0x00000000
	abmRemove   = 0x00000001
	abmQueryPos = 0x00000002
	abmSetPos   = 0x00000003
)

// GetSystemMetrics indices.
const (
	smCxScreen = 0
	smCyScreen = 1
)

var (
	shell32 = windows.NewLazySystemDLL("shell32.dll")
	user32  = windows.NewLazySystemDLL("user32.dll")

	procSHAppBarMessage  = shell32.NewProc("SHAppBarMessage")
	procGetSystemMetrics = user32.NewProc("GetSystemMetrics")
	procIsWindow         = user32.NewProc("IsWindow")
)

// appBarData mirrors APPBARDATA.
type appBarData struct {
	cbSize           uint32
	hWnd             windows.HWND
	uCallbackMessage uint32
	uEdge            uint32
	rc               windows.Rect
	lParam           uintptr
}

// WindowsShell talks to the Explorer shell through SHAppBarMessage.
type WindowsShell struct{}

var _ Backend = (*WindowsShell)(nil)

// NewWindowsShell returns the Explorer docking service.
func NewWindowsShell() *WindowsShell {
	return &WindowsShell{}
}

func openNative(name string) (Backend, error) {
	if name != BackendWindows {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBackend, name)
	}
	return NewWindowsShell(), nil
}

// PrimaryBounds reads the primary display size from GetSystemMetrics.
func (s *WindowsShell) PrimaryBounds() (appbar.Rect, error) {
	if err := procGetSystemMetrics.Find(); err != nil {
		return appbar.Rect{}, fmt.Errorf("load GetSystemMetrics: %w", err)
	}
	cx, _, _ := procGetSystemMetrics.Call(smCxScreen)
	cy, _, _ := procGetSystemMetrics.Call(smCyScreen)
	if int32(cx) <= 0 || int32(cy) <= 0 {
		return appbar.Rect{}, errors.New("GetSystemMetrics reported an empty primary display")
	}
	return appbar.Rect{Right: int32(cx), Bottom: int32(cy)}, nil
}

// Register sends ABM_NEW. The shell answers FALSE for a window that already
// is an appbar; such sessions are marked Reused.
func (s *WindowsShell) Register(edge appbar.Edge, bounds appbar.Rect, window appbar.WindowHandle) (*appbar.Session, error) {
	if err := procIsWindow.Find(); err != nil {
		return nil, fmt.Errorf("load IsWindow: %w", err)
	}
	if ok, _, _ := procIsWindow.Call(uintptr(window)); ok == 0 {
		return nil, appbar.ErrInvalidWindow
	}

	sess := appbar.NewSession(window, edge, bounds)
	abd := newAppBarData(sess)
	r, err := appBarMessage(abmNew, abd)
	if err != nil {
		return nil, err
	}
	sess.Reused = r == 0
	return sess, nil
}

// QueryPos sends ABM_QUERYPOS for the session rectangle.
func (s *WindowsShell) QueryPos(sess *appbar.Session) (appbar.Rect, error) {
	abd := newAppBarData(sess)
	if _, err := appBarMessage(abmQueryPos, abd); err != nil {
		return appbar.Rect{}, err
	}
	return fromWinRect(abd.rc), nil
}

// SetPos sends ABM_SETPOS and returns the rectangle the shell kept.
func (s *WindowsShell) SetPos(sess *appbar.Session, rc appbar.Rect) (appbar.Rect, error) {
	abd := newAppBarData(sess)
	abd.rc = toWinRect(rc)
	if _, err := appBarMessage(abmSetPos, abd); err != nil {
		return appbar.Rect{}, err
	}
	return fromWinRect(abd.rc), nil
}

// Remove sends ABM_REMOVE, which the shell accepts for any window.
func (s *WindowsShell) Remove(window appbar.WindowHandle) error {
	abd := &appBarData{hWnd: windows.HWND(window)}
	abd.cbSize = uint32(unsafe.Sizeof(*abd))
	_, err := appBarMessage(abmRemove, abd)
	return err
}

// Close is a no-op; the DLLs stay loaded for the process.
func (s *WindowsShell) Close() error {
	return nil
}

func newAppBarData(sess *appbar.Session) *appBarData {
	abd := &appBarData{
		hWnd:             windows.HWND(sess.Window),
		uCallbackMessage: 0, // no callbacks
		uEdge:            uint32(sess.Edge),
		rc:               toWinRect(sess.Rect),
	}
	abd.cbSize = uint32(unsafe.Sizeof(*abd))
	return abd
}

func appBarMessage(msg uint32, abd *appBarData) (uintptr, error) {
	if err := procSHAppBarMessage.Find(); err != nil {
		return 0, fmt.Errorf("load SHAppBarMessage: %w", err)
	}
	r, _, _ := procSHAppBarMessage.Call(uintptr(msg), uintptr(unsafe.Pointer(abd)))
	return r, nil
}

func toWinRect(rc appbar.Rect) windows.Rect {
	return windows.Rect{Left: rc.Left, Top: rc.Top, Right: rc.Right, Bottom: rc.Bottom}
}

func fromWinRect(rc windows.Rect) appbar.Rect {
	return appbar.Rect{Left: rc.Left, Top: rc.Top, Right: rc.Right, Bottom: rc.Bottom}
}
