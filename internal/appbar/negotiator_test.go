package appbar

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fullHD = Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080}

type fakeScreen struct {
	bounds Rect
	err    error
}

func (s fakeScreen) PrimaryBounds() (Rect, error) { return s.bounds, s.err }

// fakeShell echoes the requested extent on QueryPos and SetPos unless a hook
// overrides it, and records every call in order.
type fakeShell struct {
	calls []string

	reused      bool
	registerErr error
	queryErr    error
	setErr      error
	removeErr   error

	queryHook func(Rect) Rect
	setHook   func(Rect) Rect

	committed Rect
	removed   []WindowHandle
}

func (f *fakeShell) Register(edge Edge, bounds Rect, window WindowHandle) (*Session, error) {
	f.calls = append(f.calls, "register")
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	sess := NewSession(window, edge, bounds)
	sess.Reused = f.reused
	return sess, nil
}

func (f *fakeShell) QueryPos(s *Session) (Rect, error) {
	f.calls = append(f.calls, "query")
	if f.queryErr != nil {
		return Rect{}, f.queryErr
	}
	if f.queryHook != nil {
		return f.queryHook(s.Rect), nil
	}
	return s.Rect, nil
}

func (f *fakeShell) SetPos(s *Session, rc Rect) (Rect, error) {
	f.calls = append(f.calls, "commit")
	if f.setErr != nil {
		return Rect{}, f.setErr
	}
	if f.setHook != nil {
		rc = f.setHook(rc)
	}
	f.committed = rc
	return rc, nil
}

func (f *fakeShell) Remove(window WindowHandle) error {
	f.calls = append(f.calls, "remove")
	f.removed = append(f.removed, window)
	return f.removeErr
}

func TestNegotiatorSetTop(t *testing.T) {
	shell := &fakeShell{}
	n := NewNegotiator(shell, fakeScreen{bounds: fullHD})

	res, err := n.Set(context.Background(), Request{Edge: EdgeTop, Thickness: 50, Window: 42})
	require.NoError(t, err)

	assert.Equal(t, Result{X: 0, Y: 0, Width: 1920, Height: 50}, res)
	assert.Equal(t, []string{"register", "query", "commit"}, shell.calls)
}

func TestNegotiatorSetRight(t *testing.T) {
	shell := &fakeShell{}
	n := NewNegotiator(shell, fakeScreen{bounds: fullHD})

	res, err := n.Set(context.Background(), Request{Edge: EdgeRight, Thickness: 30, Window: 42})
	require.NoError(t, err)

	assert.Equal(t, Result{X: 1890, Y: 0, Width: 30, Height: 1080}, res)
}

func TestNegotiatorDefaultsNonPositiveThickness(t *testing.T) {
	shell := &fakeShell{}
	n := NewNegotiator(shell, fakeScreen{bounds: fullHD})

	res, err := n.Set(context.Background(), Request{Edge: EdgeBottom, Thickness: -5, Window: 42})
	require.NoError(t, err)

	assert.Equal(t, Result{X: 0, Y: 1040, Width: 1920, Height: 40}, res)
}

func TestNegotiatorKeepsShellAdjustmentOffAxis(t *testing.T) {
	// A 48px taskbar at the bottom shortens a left bar.
	shell := &fakeShell{queryHook: func(rc Rect) Rect {
		rc.Bottom = 1032
		rc.Right = 1500
		return rc
	}}
	n := NewNegotiator(shell, fakeScreen{bounds: fullHD})

	res, err := n.Set(context.Background(), Request{Edge: EdgeLeft, Thickness: 64, Window: 7})
	require.NoError(t, err)

	assert.Equal(t, Result{X: 0, Y: 0, Width: 64, Height: 1032}, res)
}

func TestNegotiatorReportsCommittedRect(t *testing.T) {
	shell := &fakeShell{setHook: func(rc Rect) Rect {
		rc.Top += 10
		rc.Bottom += 10
		return rc
	}}
	n := NewNegotiator(shell, fakeScreen{bounds: fullHD})

	res, err := n.Set(context.Background(), Request{Edge: EdgeTop, Thickness: 40, Window: 7})
	require.NoError(t, err)

	assert.Equal(t, Result{X: 0, Y: 10, Width: 1920, Height: 40}, res)
}

func TestNegotiatorRegisterFailure(t *testing.T) {
	shell := &fakeShell{registerErr: ErrInvalidWindow}
	n := NewNegotiator(shell, fakeScreen{bounds: fullHD})

	_, err := n.Set(context.Background(), Request{Edge: EdgeTop, Thickness: 40, Window: 9})
	require.ErrorIs(t, err, ErrInvalidWindow)

	var dockErr *DockError
	require.ErrorAs(t, err, &dockErr)
	assert.Equal(t, StepRegister, dockErr.Step)
	assert.Equal(t, WindowHandle(9), dockErr.Window)
	assert.Equal(t, []string{"register"}, shell.calls)
}

func TestNegotiatorScreenFailure(t *testing.T) {
	boom := errors.New("no display")
	shell := &fakeShell{}
	n := NewNegotiator(shell, fakeScreen{err: boom})

	_, err := n.Set(context.Background(), Request{Edge: EdgeTop, Thickness: 40, Window: 9})
	require.ErrorIs(t, err, boom)
	assert.Empty(t, shell.calls)
}

func TestNegotiatorRollsBackFreshRegistration(t *testing.T) {
	boom := errors.New("shell hung up")
	shell := &fakeShell{setErr: boom}
	n := NewNegotiator(shell, fakeScreen{bounds: fullHD})

	_, err := n.Set(context.Background(), Request{Edge: EdgeTop, Thickness: 40, Window: 11})
	require.ErrorIs(t, err, boom)

	var dockErr *DockError
	require.ErrorAs(t, err, &dockErr)
	assert.Equal(t, StepCommit, dockErr.Step)
	assert.Equal(t, []string{"register", "query", "commit", "remove"}, shell.calls)
	assert.Equal(t, []WindowHandle{11}, shell.removed)
}

func TestNegotiatorDoesNotRollBackReusedRegistration(t *testing.T) {
	shell := &fakeShell{reused: true, queryErr: errors.New("query refused")}
	n := NewNegotiator(shell, fakeScreen{bounds: fullHD})

	_, err := n.Set(context.Background(), Request{Edge: EdgeTop, Thickness: 40, Window: 11})
	require.Error(t, err)
	assert.Equal(t, []string{"register", "query"}, shell.calls)
	assert.Empty(t, shell.removed)
}

func TestNegotiatorReusedRegistrationSucceeds(t *testing.T) {
	shell := &fakeShell{reused: true}
	n := NewNegotiator(shell, fakeScreen{bounds: fullHD})

	res, err := n.Set(context.Background(), Request{Edge: EdgeBottom, Thickness: 30, Window: 11})
	require.NoError(t, err)
	assert.Equal(t, Result{X: 0, Y: 1050, Width: 1920, Height: 30}, res)
}

func TestNegotiatorRejectsDegenerateCommit(t *testing.T) {
	shell := &fakeShell{setHook: func(Rect) Rect { return Rect{} }}
	n := NewNegotiator(shell, fakeScreen{bounds: fullHD})

	_, err := n.Set(context.Background(), Request{Edge: EdgeTop, Thickness: 40, Window: 3})
	require.ErrorIs(t, err, ErrDegenerateRect)
	assert.Equal(t, []WindowHandle{3}, shell.removed)
}

func TestNegotiatorHonorsCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	shell := &fakeShell{}
	n := NewNegotiator(shell, fakeScreen{bounds: fullHD})

	_, err := n.Set(ctx, Request{Edge: EdgeTop, Thickness: 40, Window: 3})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, shell.calls)
}

func TestNegotiatorRemove(t *testing.T) {
	shell := &fakeShell{}
	n := NewNegotiator(shell, fakeScreen{bounds: fullHD})

	require.NoError(t, n.Remove(context.Background(), 77))
	assert.Equal(t, []WindowHandle{77}, shell.removed)

	shell.removeErr = ErrInvalidWindow
	err := n.Remove(context.Background(), 78)
	require.ErrorIs(t, err, ErrInvalidWindow)

	var dockErr *DockError
	require.ErrorAs(t, err, &dockErr)
	assert.Equal(t, StepRemove, dockErr.Step)
}

func TestNegotiatorClampsThicknessToProposedRoom(t *testing.T) {
	// A 48px top bar already holds the top of the screen.
	shell := &fakeShell{queryHook: func(rc Rect) Rect {
		rc.Top = 48
		return rc
	}}
	n := NewNegotiator(shell, fakeScreen{bounds: fullHD})

	res, err := n.Set(context.Background(), Request{Edge: EdgeTop, Thickness: 2147483647, Window: 5})
	require.NoError(t, err)
	assert.Equal(t, Result{X: 0, Y: 48, Width: 1920, Height: 1032}, res)
	assert.Equal(t, Rect{Left: 0, Top: 48, Right: 1920, Bottom: 1080}, shell.committed)

	res, err = n.Set(context.Background(), Request{Edge: EdgeRight, Thickness: 5000, Window: 6})
	require.NoError(t, err)
	assert.Equal(t, Result{X: 0, Y: 48, Width: 1920, Height: 1032}, res)
}

func TestNegotiatorRejectsEmptyProposal(t *testing.T) {
	shell := &fakeShell{queryHook: func(rc Rect) Rect {
		rc.Top = rc.Bottom
		return rc
	}}
	n := NewNegotiator(shell, fakeScreen{bounds: fullHD})

	_, err := n.Set(context.Background(), Request{Edge: EdgeTop, Thickness: 40, Window: 8})
	require.ErrorIs(t, err, ErrDegenerateRect)

	var dockErr *DockError
	require.ErrorAs(t, err, &dockErr)
	assert.Equal(t, StepQuery, dockErr.Step)
	assert.Equal(t, []string{"register", "query", "remove"}, shell.calls)
}
