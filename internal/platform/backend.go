package platform

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/example/goappbar/internal/appbar"
	"github.com/example/goappbar/internal/config"
	"github.com/example/goappbar/internal/logging"
)

// Backend names accepted by Open.
const (
	BackendWindows = "windows"
	BackendX11     = "x11"
	BackendSim     = "sim"
)

var (
	// ErrUnknownBackend implies the configured backend name is not recognized.
	ErrUnknownBackend = errors.New("unknown docking backend")

	// ErrUnsupportedBackend implies the backend is not compiled for this platform.
	ErrUnsupportedBackend = errors.New("docking backend not available on this platform")

	// ErrNotRegistered implies a query or commit for a window without a registration.
	ErrNotRegistered = errors.New("window is not registered")
)

// Backend is a docking service together with the screen it docks on.
type Backend interface {
	appbar.Shell
	appbar.Screen
	io.Closer
}

// DefaultBackend returns the native backend name for the running OS.
func DefaultBackend() string {
	switch runtime.GOOS {
	case "windows":
		return BackendWindows
	case "linux":
		return BackendX11
	default:
		return BackendSim
	}
}

// Open connects to the backend selected by opts.
func Open(opts config.Options) (Backend, error) {
	name := opts.Backend
	if name == "" {
		name = DefaultBackend()
	}
	logging.Debugf("using %s docking backend", name)

	switch name {
	case BackendSim:
		layout, err := config.LoadLayout(opts.Layout)
		if err != nil {
			return nil, err
		}
		return NewSimulated(layout), nil
	case BackendWindows, BackendX11:
		return openNative(name)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
}
