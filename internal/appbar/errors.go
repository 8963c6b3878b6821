package appbar

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidHandle implies the window handle text is not a non-zero decimal integer.
	ErrInvalidHandle = errors.New("invalid window handle")

	// ErrInvalidWindow implies the docking service rejected the handle as not naming a live window.
	ErrInvalidWindow = errors.New("window is gone or invalid")

	// ErrDegenerateRect implies the committed rectangle has no area.
	ErrDegenerateRect = errors.New("docking service returned an empty rectangle")
)

// Negotiation steps reported in DockError.
const (
	StepScreen   = "screen"
	StepRegister = "register"
	StepQuery    = "query"
	StepCommit   = "commit"
	StepRemove   = "remove"
)

// DockError records which step of the docking protocol failed.
type DockError struct {
	Step   string
	Window WindowHandle
	Err    error
}

func (e *DockError) Error() string {
	return fmt.Sprintf("%s window %s: %v", e.Step, e.Window, e.Err)
}

func (e *DockError) Unwrap() error {
	return e.Err
}
